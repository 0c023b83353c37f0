// Package task contains task-related use cases.
package task

import (
	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// Kind names task records in drafts and errors.
const Kind = "task"

// NewEditor creates the task editor over s.
func NewEditor(s *store.Store[entity.Task]) *editor.Editor[entity.Task] {
	return editor.New(Kind, s, func() entity.Task { return entity.NewTask("") },
		editor.WithValidator(Validate),
	)
}

// Validate checks the task enums before a draft is committed.
func Validate(t entity.Task, _ string) error {
	if !entity.IsValidTaskPriority(t.Priority) {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidTaskPriority,
			"priority must be 'low', 'medium', or 'high'",
			domainerror.ErrInvalidTaskPriority,
		)
	}
	if !entity.IsValidTaskStatus(t.Status) {
		return invalidStatus()
	}
	return nil
}

func invalidStatus() error {
	return domainerror.NewPlannerError(
		domainerror.ErrCodeInvalidTaskStatus,
		"status must be 'todo', 'in-progress', or 'completed'",
		domainerror.ErrInvalidTaskStatus,
	)
}
