package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	ID string
}

// DeleteTaskUseCase removes a task.
type DeleteTaskUseCase struct {
	tasks    *store.Store[entity.Task]
	notifier *notify.Notifier
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(tasks *store.Store[entity.Task], notifier *notify.Notifier) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{
		tasks:    tasks,
		notifier: notifier,
	}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) error {
	if !uc.tasks.Remove(input.ID) {
		return domainerror.NewNotFoundError(Kind, input.ID)
	}

	uc.notifier.Destructive(ctx, "Task deleted", "The task has been deleted successfully")
	return nil
}
