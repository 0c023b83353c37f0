package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/application/board"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// RelocateTaskInput represents a drop on the task board.
type RelocateTaskInput struct {
	ID       string
	ToBucket string
}

// RelocateTaskOutput represents the output of a drop.
type RelocateTaskOutput struct {
	Relocated entity.RecordRelocated
}

// RelocateTaskUseCase turns board drops into status changes.
type RelocateTaskUseCase struct {
	relocator *board.Relocator
}

// NewRelocateTaskUseCase creates a new RelocateTaskUseCase instance. Drops
// go through changeStatus so they are validated and notified like any
// other status change.
func NewRelocateTaskUseCase(tasks *store.Store[entity.Task], changeStatus *ChangeTaskStatusUseCase, publisher adapter.EventPublisher) *RelocateTaskUseCase {
	locate := func(id string) (string, bool) {
		t, ok := tasks.Get(id)
		if !ok {
			return "", false
		}
		return statusOf(t), true
	}
	move := func(ctx context.Context, id, to string) error {
		_, err := changeStatus.Execute(ctx, ChangeTaskStatusInput{ID: id, Status: entity.TaskStatus(to)})
		return err
	}

	return &RelocateTaskUseCase{
		relocator: board.NewRelocator(Kind, BoardColumns(), locate, move, publisher),
	}
}

// Execute performs the drop.
func (uc *RelocateTaskUseCase) Execute(ctx context.Context, input RelocateTaskInput) (*RelocateTaskOutput, error) {
	relocated, err := uc.relocator.Relocate(ctx, board.Drop{ID: input.ID, ToBucket: input.ToBucket})
	if err != nil {
		return nil, err
	}

	return &RelocateTaskOutput{
		Relocated: relocated,
	}, nil
}
