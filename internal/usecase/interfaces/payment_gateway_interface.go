package interfaces

import (
	"context"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

// PaymentResult is the outcome of a synchronous charge attempt.
type PaymentResult struct {
	Approved   bool
	ProviderID string
	Status     string
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
// Implementations must bound the call with a timeout; a timeout surfaces as a
// declined charge, never as a stuck order.
type IPaymentGateway interface {
	Charge(ctx context.Context, order entities.Order) (PaymentResult, error)
}
