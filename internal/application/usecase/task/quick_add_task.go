package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// QuickAddTaskInput represents the input for the one-line task form.
type QuickAddTaskInput struct {
	Title string
}

// QuickAddTaskUseCase adds a medium priority todo with only a title.
type QuickAddTaskUseCase struct {
	editor   *editor.Editor[entity.Task]
	notifier *notify.Notifier
}

// NewQuickAddTaskUseCase creates a new QuickAddTaskUseCase instance.
func NewQuickAddTaskUseCase(editor *editor.Editor[entity.Task], notifier *notify.Notifier) *QuickAddTaskUseCase {
	return &QuickAddTaskUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the quick add. A blank title is refused like any other
// draft with an empty required field.
func (uc *QuickAddTaskUseCase) Execute(ctx context.Context, input QuickAddTaskInput) (*CreateTaskOutput, error) {
	task, err := uc.editor.CreateFrom(entity.NewTask(input.Title), func(t entity.Task) entity.Task { return t })
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Task added", "Your task was added successfully")

	return &CreateTaskOutput{
		Task: task,
	}, nil
}
