package goal

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// CreateGoalInput represents the input for goal creation.
type CreateGoalInput struct {
	Patch entity.GoalPatch
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal entity.Goal
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	editor   *editor.Editor[entity.Goal]
	notifier *notify.Notifier
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(editor *editor.Editor[entity.Goal], notifier *notify.Notifier) *CreateGoalUseCase {
	return &CreateGoalUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	goal, err := uc.editor.Create(input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Goal added", "Your financial goal has been added successfully")

	return &CreateGoalOutput{
		Goal: goal,
	}, nil
}
