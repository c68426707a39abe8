package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/JeSappelleWilly/dokalbot/internal/adapter/http/handlers"
)

const (
	PathWebhook = "/webhook"
	PathOrders  = "/orders"
)

func addWebhookRoutes(rg *gin.RouterGroup, webhookHandler *handlers.WebhookHandler) {
	webhook := rg.Group(PathWebhook)
	{
		webhook.GET("", webhookHandler.Verify)
		webhook.POST("", webhookHandler.Receive)
	}
}

func addOrderRoutes(rg *gin.RouterGroup, orderHandler *handlers.OrderHandler) {
	orders := rg.Group(PathOrders)
	{
		orders.GET("/:order_id", orderHandler.GetOrderByID)
	}
}
