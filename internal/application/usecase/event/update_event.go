package event

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// UpdateEventInput represents the input for event update.
type UpdateEventInput struct {
	ID    string
	Patch entity.CalendarEventPatch
}

// UpdateEventOutput represents the output of event update.
type UpdateEventOutput struct {
	Event entity.CalendarEvent
}

// UpdateEventUseCase handles event update logic.
type UpdateEventUseCase struct {
	editor   *editor.Editor[entity.CalendarEvent]
	notifier *notify.Notifier
}

// NewUpdateEventUseCase creates a new UpdateEventUseCase instance.
func NewUpdateEventUseCase(editor *editor.Editor[entity.CalendarEvent], notifier *notify.Notifier) *UpdateEventUseCase {
	return &UpdateEventUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the event update.
func (uc *UpdateEventUseCase) Execute(ctx context.Context, input UpdateEventInput) (*UpdateEventOutput, error) {
	event, err := uc.editor.Edit(input.ID, input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Event updated", "Your calendar event has been updated")

	return &UpdateEventOutput{
		Event: event,
	}, nil
}
