// Package event contains calendar event use cases.
package event

import (
	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// Kind names calendar event records in drafts and errors.
const Kind = "event"

// NewEditor creates the event editor over s. Drafts opened without a
// selected day start today at noon.
func NewEditor(s *store.Store[entity.CalendarEvent]) *editor.Editor[entity.CalendarEvent] {
	return editor.New(Kind, s, func() entity.CalendarEvent { return entity.NewCalendarEvent(entity.Today()) },
		editor.WithValidator(Validate),
	)
}

// Validate checks the event type and range.
func Validate(e entity.CalendarEvent, _ string) error {
	if !entity.IsValidCalendarEventType(e.Type) {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidEventType,
			"type must be 'task', 'meeting', 'finance', or 'other'",
			domainerror.ErrInvalidEventType,
		)
	}
	if e.EndDate != nil && e.EndDate.Before(e.StartDate) {
		return domainerror.NewPlannerError(
			domainerror.ErrCodeInvalidEventRange,
			"event cannot end before it starts",
			domainerror.ErrInvalidEventRange,
		)
	}
	return nil
}
