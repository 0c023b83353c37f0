package goal

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// UpdateGoalInput represents the input for goal update.
type UpdateGoalInput struct {
	ID    string
	Patch entity.GoalPatch
}

// UpdateGoalOutput represents the output of goal update.
type UpdateGoalOutput struct {
	Goal entity.Goal
}

// UpdateGoalUseCase handles goal update logic.
type UpdateGoalUseCase struct {
	editor   *editor.Editor[entity.Goal]
	notifier *notify.Notifier
}

// NewUpdateGoalUseCase creates a new UpdateGoalUseCase instance.
func NewUpdateGoalUseCase(editor *editor.Editor[entity.Goal], notifier *notify.Notifier) *UpdateGoalUseCase {
	return &UpdateGoalUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the goal update.
func (uc *UpdateGoalUseCase) Execute(ctx context.Context, input UpdateGoalInput) (*UpdateGoalOutput, error) {
	goal, err := uc.editor.Edit(input.ID, input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Goal updated", "Your financial goal has been updated successfully")

	return &UpdateGoalOutput{
		Goal: goal,
	}, nil
}
