package project

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// CreateProjectInput represents the input for project creation.
type CreateProjectInput struct {
	Patch entity.ProjectPatch
}

// CreateProjectOutput represents the output of project creation.
type CreateProjectOutput struct {
	Project entity.Project
}

// CreateProjectUseCase handles project creation logic.
type CreateProjectUseCase struct {
	editor   *editor.Editor[entity.Project]
	notifier *notify.Notifier
}

// NewCreateProjectUseCase creates a new CreateProjectUseCase instance.
func NewCreateProjectUseCase(editor *editor.Editor[entity.Project], notifier *notify.Notifier) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the project creation.
func (uc *CreateProjectUseCase) Execute(ctx context.Context, input CreateProjectInput) (*CreateProjectOutput, error) {
	project, err := uc.editor.Create(input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Project created", "New project has been created successfully")

	return &CreateProjectOutput{
		Project: project,
	}, nil
}
