package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// ToggleTaskInput represents the input for the completion checkbox.
type ToggleTaskInput struct {
	ID string
}

// ToggleTaskUseCase flips a task between completed and todo. Tasks in
// progress are completed.
type ToggleTaskUseCase struct {
	editor   *editor.Editor[entity.Task]
	notifier *notify.Notifier
}

// NewToggleTaskUseCase creates a new ToggleTaskUseCase instance.
func NewToggleTaskUseCase(editor *editor.Editor[entity.Task], notifier *notify.Notifier) *ToggleTaskUseCase {
	return &ToggleTaskUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the toggle.
func (uc *ToggleTaskUseCase) Execute(ctx context.Context, input ToggleTaskInput) (*UpdateTaskOutput, error) {
	task, err := uc.editor.Edit(input.ID, func(t entity.Task) entity.Task {
		if t.Status == entity.TaskStatusCompleted {
			t.Status = entity.TaskStatusTodo
		} else {
			t.Status = entity.TaskStatusCompleted
		}
		return t
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Task updated", movedTo(task.Status))

	return &UpdateTaskOutput{
		Task: task,
	}, nil
}
