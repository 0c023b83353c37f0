package draft

import (
	"context"
	"log/slog"
	"time"

	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

// DiscardDraftUseCase closes drafts without saving.
type DiscardDraftUseCase struct {
	registry *Registry
}

// NewDiscardDraftUseCase creates a new DiscardDraftUseCase instance.
func NewDiscardDraftUseCase(registry *Registry) *DiscardDraftUseCase {
	return &DiscardDraftUseCase{
		registry: registry,
	}
}

// Execute discards the draft.
func (uc *DiscardDraftUseCase) Execute(_ context.Context, input DraftInput) error {
	desk, err := uc.registry.Desk(input.Kind)
	if err != nil {
		return err
	}
	if !desk.Discard(input.Handle) {
		return domainerror.NewRecordError(
			domainerror.ErrCodeDraftNotFound,
			"draft "+input.Handle+" not found",
			domainerror.ErrDraftNotFound,
		)
	}
	return nil
}

// ExpireDraftsUseCase drops drafts left open for too long.
type ExpireDraftsUseCase struct {
	registry *Registry
	ttl      time.Duration
}

// NewExpireDraftsUseCase creates a new ExpireDraftsUseCase instance.
func NewExpireDraftsUseCase(registry *Registry, ttl time.Duration) *ExpireDraftsUseCase {
	return &ExpireDraftsUseCase{
		registry: registry,
		ttl:      ttl,
	}
}

// Execute expires drafts untouched for longer than the TTL and returns how
// many were dropped.
func (uc *ExpireDraftsUseCase) Execute(_ context.Context, now time.Time) int {
	before := now.Add(-uc.ttl)

	total := 0
	for _, kind := range uc.registry.Kinds() {
		desk, _ := uc.registry.Desk(kind)
		if n := desk.Expire(before); n > 0 {
			slog.Info("Expired stale drafts", "kind", kind, "count", n)
			total += n
		}
	}
	return total
}

// Run expires drafts every interval until ctx is done.
func (uc *ExpireDraftsUseCase) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			uc.Execute(ctx, now)
		}
	}
}
