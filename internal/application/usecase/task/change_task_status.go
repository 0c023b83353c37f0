package task

import (
	"context"
	"strings"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// ChangeTaskStatusInput represents the input for moving a task.
type ChangeTaskStatusInput struct {
	ID     string
	Status entity.TaskStatus
}

// ChangeTaskStatusUseCase moves a task to another board column.
type ChangeTaskStatusUseCase struct {
	editor   *editor.Editor[entity.Task]
	notifier *notify.Notifier
}

// NewChangeTaskStatusUseCase creates a new ChangeTaskStatusUseCase instance.
func NewChangeTaskStatusUseCase(editor *editor.Editor[entity.Task], notifier *notify.Notifier) *ChangeTaskStatusUseCase {
	return &ChangeTaskStatusUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the status change.
func (uc *ChangeTaskStatusUseCase) Execute(ctx context.Context, input ChangeTaskStatusInput) (*UpdateTaskOutput, error) {
	if !entity.IsValidTaskStatus(input.Status) {
		return nil, invalidStatus()
	}

	task, err := uc.editor.Edit(input.ID, func(t entity.Task) entity.Task {
		t.Status = input.Status
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

func movedTo(status entity.TaskStatus) string {
	return "Task moved to " + strings.ReplaceAll(string(status), "-", " ")
}
