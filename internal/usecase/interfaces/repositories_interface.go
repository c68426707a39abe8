package interfaces

import (
	"context"
	"time"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

// IConversationStateRepository persists the single per-customer conversation
// state record with a sliding expiry.
type IConversationStateRepository interface {
	Get(ctx context.Context, customerID string) (entities.ConversationState, bool, error)
	Save(ctx context.Context, customerID string, state entities.ConversationState, ttl time.Duration) error
	Delete(ctx context.Context, customerID string) error
}

// ICartRepository persists the per-customer cart with a sliding expiry.
// Delete removes the key itself, not an empty cart record.
type ICartRepository interface {
	Get(ctx context.Context, customerID string) (entities.Cart, bool, error)
	Save(ctx context.Context, customerID string, cart entities.Cart, ttl time.Duration) error
	Delete(ctx context.Context, customerID string) error
}

// IOrderRepository persists order snapshots. Orders outlive carts and state;
// the ttl is their last-resort cleanup, not a correctness mechanism.
type IOrderRepository interface {
	Save(ctx context.Context, order entities.Order, ttl time.Duration) error
	GetByID(ctx context.Context, orderID string) (entities.Order, error)
	UpdateStatus(ctx context.Context, orderID string, status entities.OrderStatus) error
}

// IDedupRepository backs the duplicate-delivery guard.
//
// Mark records the event id and reports whether it had already been recorded,
// atomically, so two concurrent deliveries of the same id cannot both pass.
type IDedupRepository interface {
	Seen(ctx context.Context, eventID string) (bool, error)
	Mark(ctx context.Context, eventID string, receivedAt time.Time, ttl time.Duration) (alreadySeen bool, err error)
}
