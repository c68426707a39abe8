package response

import (
	"testing"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

func TestFromOrder(t *testing.T) {
	created := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	order := entities.Order{
		ID:         "ORD-ABC12345",
		CustomerID: "5511999999999",
		Items: []entities.CartItem{
			{ID: "grill-1", Name: "Ribeye Steak", UnitPrice: 28.99, Quantity: 2, SpecialInstructions: "medium rare"},
		},
		Subtotal:         57.98,
		Tax:              4.64,
		Total:            62.62,
		DeliveryType:     entities.DeliveryTypeDelivery,
		DeliveryAddress:  "Av. Paulista, 1000",
		PaymentMethod:    entities.PaymentMethodCreditCard,
		Status:           entities.OrderStatusPaymentConfirmed,
		CreatedAt:        created,
		EstimatedReadyAt: created.Add(35 * time.Minute),
	}

	resp := FromOrder(order)

	if resp.ID != "ORD-ABC12345" || resp.Status != "payment_confirmed" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	if resp.Items[0].LineTotal != 57.98 {
		t.Fatalf("unexpected line total: %v", resp.Items[0].LineTotal)
	}
	if resp.Items[0].SpecialInstructions != "medium rare" {
		t.Fatalf("instructions lost: %+v", resp.Items[0])
	}
	if resp.DeliveryType != "delivery" || resp.PaymentMethod != "credit_card" {
		t.Fatalf("unexpected enums: %+v", resp)
	}
}
