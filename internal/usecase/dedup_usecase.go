package usecase

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/JeSappelleWilly/dokalbot/internal/usecase/interfaces"
)

// DuplicateGuard is the at-most-once gate for inbound events. It must run
// before any side-effecting handler. Entries expire with the store's TTL;
// replays older than the retention window are allowed through, which is
// acceptable because the channel's own retry window is shorter.
type DuplicateGuard struct {
	repo interfaces.IDedupRepository
	ttl  time.Duration
	now  func() time.Time
}

func NewDuplicateGuard(repo interfaces.IDedupRepository, ttl time.Duration) *DuplicateGuard {
	return &DuplicateGuard{repo: repo, ttl: ttl, now: time.Now}
}

func (g *DuplicateGuard) HasProcessed(ctx context.Context, eventID string) (bool, error) {
	return g.repo.Seen(ctx, eventID)
}

func (g *DuplicateGuard) MarkProcessed(ctx context.Context, eventID string) error {
	_, err := g.repo.Mark(ctx, eventID, g.now(), g.ttl)
	return err
}

// CheckAndMark records the event id and reports whether it was already
// recorded. On a store failure the event is let through: dropping a fresh
// customer message is worse than rarely double-handling one.
func (g *DuplicateGuard) CheckAndMark(ctx context.Context, eventID string) bool {
	alreadySeen, err := g.repo.Mark(ctx, eventID, g.now(), g.ttl)
	if err != nil {
		log.Error().Err(err).Str("event_id", eventID).Msg("dedup store failed; processing anyway")
		return false
	}
	if alreadySeen {
		log.Info().Str("event_id", eventID).Msg("duplicate event dropped")
	}
	return alreadySeen
}
