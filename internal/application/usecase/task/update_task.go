package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// UpdateTaskInput represents the input for task update.
type UpdateTaskInput struct {
	ID    string
	Patch entity.TaskPatch
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task entity.Task
}

// UpdateTaskUseCase edits a copy of a task and replaces it in place.
type UpdateTaskUseCase struct {
	editor   *editor.Editor[entity.Task]
	notifier *notify.Notifier
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(editor *editor.Editor[entity.Task], notifier *notify.Notifier) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	task, err := uc.editor.Edit(input.ID, input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Task updated", "Your task was updated successfully")

	return &UpdateTaskOutput{
		Task: task,
	}, nil
}
