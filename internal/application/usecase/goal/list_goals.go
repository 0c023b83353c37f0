package goal

import (
	"context"

	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/finance"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// GoalOutput represents a single goal in the output.
type GoalOutput struct {
	Goal     entity.Goal
	Progress int64 // Rounded percentage, may exceed 100
}

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals []GoalOutput
}

// ListGoalsUseCase handles listing goals logic.
type ListGoalsUseCase struct {
	goals *store.Store[entity.Goal]
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(goals *store.Store[entity.Goal]) *ListGoalsUseCase {
	return &ListGoalsUseCase{
		goals: goals,
	}
}

// Execute performs the goal listing.
func (uc *ListGoalsUseCase) Execute(_ context.Context) (*ListGoalsOutput, error) {
	goals := uc.goals.List()

	output := &ListGoalsOutput{
		Goals: make([]GoalOutput, 0, len(goals)),
	}
	for _, g := range goals {
		output.Goals = append(output.Goals, GoalOutput{
			Goal:     g,
			Progress: finance.GoalProgress(g),
		})
	}

	return output, nil
}
