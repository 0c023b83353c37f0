package goal

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	ID string
}

// DeleteGoalUseCase handles goal deletion logic.
type DeleteGoalUseCase struct {
	goals    *store.Store[entity.Goal]
	notifier *notify.Notifier
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(goals *store.Store[entity.Goal], notifier *notify.Notifier) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{
		goals:    goals,
		notifier: notifier,
	}
}

// Execute performs the goal deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) error {
	if !uc.goals.Remove(input.ID) {
		return domainerror.NewNotFoundError(Kind, input.ID)
	}

	uc.notifier.Destructive(ctx, "Goal deleted", "The financial goal has been deleted")
	return nil
}
