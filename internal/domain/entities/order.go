package entities

import "time"

type DeliveryType string

const (
	DeliveryTypePickup   DeliveryType = "pickup"
	DeliveryTypeDelivery DeliveryType = "delivery"
)

type PaymentMethod string

const (
	PaymentMethodCash          PaymentMethod = "cash"
	PaymentMethodCreditCard    PaymentMethod = "credit_card"
	PaymentMethodMobilePayment PaymentMethod = "mobile_payment"
)

// OrderStatus tracks the payment lifecycle of a placed order. Transitions are
// monotonic: payment_confirmed is terminal and is never reverted; a failed
// payment is retried by re-requesting proof or placing a new order, never by
// rewriting the failed order's snapshot.
type OrderStatus string

const (
	OrderStatusPending                    OrderStatus = "pending"
	OrderStatusPendingPaymentConfirmation OrderStatus = "pending_payment_confirmation"
	OrderStatusPaymentConfirmed           OrderStatus = "payment_confirmed"
	OrderStatusPaymentFailed              OrderStatus = "payment_failed"
)

// Order is the immutable snapshot created at checkout confirmation. Only
// Status changes after creation.
type Order struct {
	ID               string        `json:"id"`
	CustomerID       string        `json:"customer_id"`
	Items            []CartItem    `json:"items"`
	Subtotal         float64       `json:"subtotal"`
	Tax              float64       `json:"tax"`
	Total            float64       `json:"total"`
	Discounts        []Discount    `json:"discounts"`
	DeliveryType     DeliveryType  `json:"delivery_type"`
	DeliveryAddress  string        `json:"delivery_address,omitempty"`
	PaymentMethod    PaymentMethod `json:"payment_method"`
	Status           OrderStatus   `json:"status"`
	CreatedAt        time.Time     `json:"created_at"`
	EstimatedReadyAt time.Time     `json:"estimated_ready_at"`
}
