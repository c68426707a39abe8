package interfaces

import (
	"context"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

// IOrderEventPublisher announces confirmed orders to downstream fulfillment.
// Publishing is best-effort; a broker outage must not fail a checkout that
// already charged the customer.
type IOrderEventPublisher interface {
	PublishOrderConfirmed(ctx context.Context, order entities.Order) error
}
