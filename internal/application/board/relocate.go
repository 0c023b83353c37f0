package board

import (
	"context"
	"log/slog"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

// Drop is a drag gesture that ended on a column.
type Drop struct {
	ID       string
	ToBucket string
}

// MoveFunc mutates the discriminant of the record with the given id.
type MoveFunc func(ctx context.Context, id, toBucket string) error

// LocateFunc returns the bucket a record currently sits in.
type LocateFunc func(id string) (string, bool)

// Relocator turns drops into RecordRelocated events and hands each one to
// the store's status mutation exactly once.
type Relocator struct {
	kind      string
	buckets   map[string]struct{}
	locate    LocateFunc
	move      MoveFunc
	publisher adapter.EventPublisher
}

// NewRelocator creates a relocator for a board with the given buckets.
func NewRelocator(kind string, buckets []string, locate LocateFunc, move MoveFunc, publisher adapter.EventPublisher) *Relocator {
	set := make(map[string]struct{}, len(buckets))
	for _, b := range buckets {
		set[b] = struct{}{}
	}
	return &Relocator{
		kind:      kind,
		buckets:   set,
		locate:    locate,
		move:      move,
		publisher: publisher,
	}
}

// Relocate applies a drop. The move callback runs once per successful
// drop; a drop on an unknown column or of an unknown record never reaches
// it. The relocation is published after the store has been updated.
func (r *Relocator) Relocate(ctx context.Context, drop Drop) (entity.RecordRelocated, error) {
	if _, ok := r.buckets[drop.ToBucket]; !ok {
		return entity.RecordRelocated{}, domainerror.NewPlannerError(
			domainerror.ErrCodeUnknownBucket,
			"unknown column "+drop.ToBucket,
			domainerror.ErrUnknownBucket,
		)
	}

	from, ok := r.locate(drop.ID)
	if !ok {
		return entity.RecordRelocated{}, domainerror.NewNotFoundError(r.kind, drop.ID)
	}

	event := entity.RecordRelocated{
		ID:         drop.ID,
		FromBucket: from,
		ToBucket:   drop.ToBucket,
	}

	if err := r.move(ctx, event.ID, event.ToBucket); err != nil {
		return entity.RecordRelocated{}, err
	}

	if r.publisher != nil {
		if err := r.publisher.Publish(ctx, entity.NewRelocatedMessage(event)); err != nil {
			slog.Warn("Failed to publish relocation",
				"kind", r.kind,
				"id", event.ID,
				"error", err,
			)
		}
	}

	return event, nil
}
