package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	Patch entity.TaskPatch
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task entity.Task
}

// CreateTaskUseCase stages a task from the template and commits it.
type CreateTaskUseCase struct {
	editor   *editor.Editor[entity.Task]
	notifier *notify.Notifier
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(editor *editor.Editor[entity.Task], notifier *notify.Notifier) *CreateTaskUseCase {
	return &CreateTaskUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the task creation.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	task, err := uc.editor.Create(input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Task added", "Your task was added successfully")

	return &CreateTaskOutput{
		Task: task,
	}, nil
}
