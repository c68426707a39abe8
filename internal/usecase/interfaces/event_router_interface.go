package interfaces

import (
	"context"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

// IEventRouter is the single entry point for inbound channel events.
type IEventRouter interface {
	HandleEvent(ctx context.Context, event entities.InboundEvent) error
}
