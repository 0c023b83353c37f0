package project

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// DeleteProjectInput represents the input for project deletion.
type DeleteProjectInput struct {
	ID string
}

// DeleteProjectUseCase handles project deletion logic.
type DeleteProjectUseCase struct {
	projects *store.Store[entity.Project]
	notifier *notify.Notifier
}

// NewDeleteProjectUseCase creates a new DeleteProjectUseCase instance.
func NewDeleteProjectUseCase(projects *store.Store[entity.Project], notifier *notify.Notifier) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projects: projects,
		notifier: notifier,
	}
}

// Execute performs the project deletion.
func (uc *DeleteProjectUseCase) Execute(ctx context.Context, input DeleteProjectInput) error {
	if !uc.projects.Remove(input.ID) {
		return domainerror.NewNotFoundError(Kind, input.ID)
	}

	uc.notifier.Destructive(ctx, "Project deleted", "The project has been deleted successfully")
	return nil
}
