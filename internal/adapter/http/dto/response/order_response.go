package response

import (
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

type OrderResponse struct {
	ID               string              `json:"id"`
	CustomerID       string              `json:"customer_id"`
	Items            []OrderItemResponse `json:"items"`
	Subtotal         float64             `json:"subtotal"`
	Tax              float64             `json:"tax"`
	Total            float64             `json:"total"`
	DeliveryType     string              `json:"delivery_type"`
	DeliveryAddress  string              `json:"delivery_address,omitempty"`
	PaymentMethod    string              `json:"payment_method"`
	Status           string              `json:"status"`
	CreatedAt        time.Time           `json:"created_at"`
	EstimatedReadyAt time.Time           `json:"estimated_ready_at"`
}

type OrderItemResponse struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	UnitPrice           float64 `json:"unit_price"`
	Quantity            int     `json:"quantity"`
	LineTotal           float64 `json:"line_total"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

func FromOrder(o entities.Order) OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			ID:                  it.ID,
			Name:                it.Name,
			UnitPrice:           it.UnitPrice,
			Quantity:            it.Quantity,
			LineTotal:           it.LineTotal(),
			SpecialInstructions: it.SpecialInstructions,
		})
	}
	return OrderResponse{
		ID:               o.ID,
		CustomerID:       o.CustomerID,
		Items:            items,
		Subtotal:         o.Subtotal,
		Tax:              o.Tax,
		Total:            o.Total,
		DeliveryType:     string(o.DeliveryType),
		DeliveryAddress:  o.DeliveryAddress,
		PaymentMethod:    string(o.PaymentMethod),
		Status:           string(o.Status),
		CreatedAt:        o.CreatedAt,
		EstimatedReadyAt: o.EstimatedReadyAt,
	}
}
