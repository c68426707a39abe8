package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	response "github.com/JeSappelleWilly/dokalbot/internal/adapter/http/dto/response"
	"github.com/JeSappelleWilly/dokalbot/internal/usecase"
	"github.com/JeSappelleWilly/dokalbot/pkg"
)

// OrderHandler exposes read access to placed orders.
type OrderHandler struct {
	usecase usecase.ICheckoutUseCase
}

func NewOrderHandler(uc usecase.ICheckoutUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// GetOrderByID returns a single order snapshot.
func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	orderID := c.Param("order_id")

	order, err := h.usecase.GetOrder(c.Request.Context(), orderID)
	if err != nil {
		if errors.Is(err, usecase.ErrOrderNotFound) {
			appErr := pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		log.Error().Err(err).Str("order_id", orderID).Msg("order lookup failed")
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "Internal error", http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}
