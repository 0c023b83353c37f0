package project

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// UpdateProjectInput represents the input for project update.
type UpdateProjectInput struct {
	ID    string
	Patch entity.ProjectPatch
}

// UpdateProjectOutput represents the output of project update.
type UpdateProjectOutput struct {
	Project entity.Project
}

// UpdateProjectUseCase handles project update logic.
type UpdateProjectUseCase struct {
	editor   *editor.Editor[entity.Project]
	notifier *notify.Notifier
}

// NewUpdateProjectUseCase creates a new UpdateProjectUseCase instance.
func NewUpdateProjectUseCase(editor *editor.Editor[entity.Project], notifier *notify.Notifier) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the project update.
func (uc *UpdateProjectUseCase) Execute(ctx context.Context, input UpdateProjectInput) (*UpdateProjectOutput, error) {
	project, err := uc.editor.Edit(input.ID, input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Project updated", "The project has been updated successfully")

	return &UpdateProjectOutput{
		Project: project,
	}, nil
}
