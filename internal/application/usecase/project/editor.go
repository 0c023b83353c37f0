// Package project contains project-related use cases.
package project

import (
	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// Kind names project records in drafts and errors.
const Kind = "project"

// NewEditor creates the project editor over s.
func NewEditor(s *store.Store[entity.Project]) *editor.Editor[entity.Project] {
	return editor.New(Kind, s, entity.NewProject,
		editor.WithValidator(Validate),
	)
}

// Validate checks the project status and numeric ranges. Progress is not
// reconciled with the task counters.
func Validate(p entity.Project, _ string) error {
	if !entity.IsValidProjectStatus(p.Status) {
		return invalidStatus()
	}
	if p.Progress < 0 || p.Progress > 100 {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidProgress,
			"progress must be between 0 and 100",
			domainerror.ErrInvalidProgress,
		)
	}
	if p.TeamSize < 1 {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidTeamSize,
			"team size must be at least 1",
			domainerror.ErrInvalidTeamSize,
		)
	}
	if p.TasksCompleted < 0 || p.TotalTasks < 0 {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidTaskCounters,
			"task counters must not be negative",
			domainerror.ErrInvalidTaskCounters,
		)
	}
	return nil
}

func invalidStatus() error {
	return domainerror.NewPlannerError(
		domainerror.ErrCodeInvalidProjectStatus,
		"status must be 'active', 'completed', or 'on-hold'",
		domainerror.ErrInvalidProjectStatus,
	)
}
