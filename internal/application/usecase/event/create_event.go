package event

import (
	"context"
	"time"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// CreateEventInput represents the input for event creation.
type CreateEventInput struct {
	Day   time.Time // Selected calendar day; zero means today
	Patch entity.CalendarEventPatch
}

// CreateEventOutput represents the output of event creation.
type CreateEventOutput struct {
	Event entity.CalendarEvent
}

// CreateEventUseCase handles event creation logic.
type CreateEventUseCase struct {
	editor   *editor.Editor[entity.CalendarEvent]
	notifier *notify.Notifier
}

// NewCreateEventUseCase creates a new CreateEventUseCase instance.
func NewCreateEventUseCase(editor *editor.Editor[entity.CalendarEvent], notifier *notify.Notifier) *CreateEventUseCase {
	return &CreateEventUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the event creation.
func (uc *CreateEventUseCase) Execute(ctx context.Context, input CreateEventInput) (*CreateEventOutput, error) {
	day := input.Day
	if day.IsZero() {
		day = entity.Today()
	}

	event, err := uc.editor.CreateFrom(entity.NewCalendarEvent(day), input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Event added", "New event has been added to your calendar")

	return &CreateEventOutput{
		Event: event,
	}, nil
}
