package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/board"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// ListTasksInput represents the input for listing tasks.
type ListTasksInput struct {
	Query  string             // Matched against title and description
	Status *entity.TaskStatus // Optional
}

// ListTasksOutput represents the output of listing tasks.
type ListTasksOutput struct {
	Tasks []entity.Task
}

// ListTasksUseCase handles listing tasks in store order.
type ListTasksUseCase struct {
	tasks *store.Store[entity.Task]
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(tasks *store.Store[entity.Task]) *ListTasksUseCase {
	return &ListTasksUseCase{
		tasks: tasks,
	}
}

// Execute performs the task listing.
func (uc *ListTasksUseCase) Execute(_ context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	var byStatus store.Predicate[entity.Task]
	if input.Status != nil {
		if !entity.IsValidTaskStatus(*input.Status) {
			return nil, invalidStatus()
		}
		status := *input.Status
		byStatus = func(t entity.Task) bool { return t.Status == status }
	}

	tasks := uc.tasks.List(byStatus, func(t entity.Task) bool {
		return board.MatchesText(input.Query, t.Title, t.Description)
	})

	return &ListTasksOutput{
		Tasks: tasks,
	}, nil
}
