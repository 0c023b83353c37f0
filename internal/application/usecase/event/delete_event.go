package event

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// DeleteEventInput represents the input for event deletion.
type DeleteEventInput struct {
	ID string
}

// DeleteEventUseCase handles event deletion logic.
type DeleteEventUseCase struct {
	events   *store.Store[entity.CalendarEvent]
	notifier *notify.Notifier
}

// NewDeleteEventUseCase creates a new DeleteEventUseCase instance.
func NewDeleteEventUseCase(events *store.Store[entity.CalendarEvent], notifier *notify.Notifier) *DeleteEventUseCase {
	return &DeleteEventUseCase{
		events:   events,
		notifier: notifier,
	}
}

// Execute performs the event deletion.
func (uc *DeleteEventUseCase) Execute(ctx context.Context, input DeleteEventInput) error {
	if !uc.events.Remove(input.ID) {
		return domainerror.NewNotFoundError(Kind, input.ID)
	}

	uc.notifier.Destructive(ctx, "Event deleted", "The event has been removed from your calendar")
	return nil
}
