package project

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/board"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// StatusAll disables the status filter.
const StatusAll = "all"

// ListProjectsInput represents the input for listing projects.
type ListProjectsInput struct {
	Query  string // Matched against name and description
	Status string // A project status or StatusAll; empty means StatusAll
}

// ListProjectsOutput represents the output of listing projects.
type ListProjectsOutput struct {
	Projects []entity.Project
}

// ListProjectsUseCase handles listing projects in store order.
type ListProjectsUseCase struct {
	projects *store.Store[entity.Project]
}

// NewListProjectsUseCase creates a new ListProjectsUseCase instance.
func NewListProjectsUseCase(projects *store.Store[entity.Project]) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projects: projects,
	}
}

// Execute performs the project listing.
func (uc *ListProjectsUseCase) Execute(_ context.Context, input ListProjectsInput) (*ListProjectsOutput, error) {
	var byStatus store.Predicate[entity.Project]
	if input.Status != "" && input.Status != StatusAll {
		status := entity.ProjectStatus(input.Status)
		if !entity.IsValidProjectStatus(status) {
			return nil, invalidStatus()
		}
		byStatus = func(p entity.Project) bool { return p.Status == status }
	}

	projects := uc.projects.List(byStatus, func(p entity.Project) bool {
		return board.MatchesText(input.Query, p.Name, p.Description)
	})

	return &ListProjectsOutput{
		Projects: projects,
	}, nil
}
