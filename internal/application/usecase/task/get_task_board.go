package task

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/board"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// GetTaskBoardInput represents the input for the task board.
type GetTaskBoardInput struct {
	Query string
}

// GetTaskBoardOutput holds one column per task status, in display order.
type GetTaskBoardOutput struct {
	Columns []board.Bucket[entity.Task]
}

// GetTaskBoardUseCase partitions the tasks by status.
type GetTaskBoardUseCase struct {
	tasks *store.Store[entity.Task]
}

// NewGetTaskBoardUseCase creates a new GetTaskBoardUseCase instance.
func NewGetTaskBoardUseCase(tasks *store.Store[entity.Task]) *GetTaskBoardUseCase {
	return &GetTaskBoardUseCase{
		tasks: tasks,
	}
}

// Execute builds the board.
func (uc *GetTaskBoardUseCase) Execute(_ context.Context, input GetTaskBoardInput) (*GetTaskBoardOutput, error) {
	tasks := uc.tasks.List(func(t entity.Task) bool {
		return board.MatchesText(input.Query, t.Title, t.Description)
	})

	return &GetTaskBoardOutput{
		Columns: board.Partition(tasks, statusOf, BoardColumns()),
	}, nil
}

// BoardColumns returns the bucket keys of the task board.
func BoardColumns() []string {
	keys := make([]string, len(entity.TaskStatuses))
	for i, s := range entity.TaskStatuses {
		keys[i] = string(s)
	}
	return keys
}

func statusOf(t entity.Task) string {
	return string(t.Status)
}
