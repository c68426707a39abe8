package interfaces

import (
	"context"

	"github.com/JeSappelleWilly/dokalbot/internal/domain/entities"
)

// IMessenger abstracts the outbound messaging channel. Sends are
// fire-and-forget from the core's perspective; failures are logged by callers
// but never abort a conversation turn that already mutated state.
type IMessenger interface {
	SendText(ctx context.Context, to, body string) error
	SendReplyButtons(ctx context.Context, to, body string, buttons []entities.Button, opts *entities.SendOptions) error
	SendList(ctx context.Context, to, buttonLabel, body string, sections []entities.ListSection, opts *entities.SendOptions) error
	RequestLocation(ctx context.Context, to, body string) error
	SendTemplate(ctx context.Context, to, name, languageCode string, bodyParams []string) error
}
