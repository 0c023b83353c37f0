package event

import (
	"context"
	"time"

	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// ListEventsInput represents the input for listing events.
type ListEventsInput struct {
	Day *time.Time // Optional; only events starting on this day
}

// ListEventsOutput represents the output of listing events.
type ListEventsOutput struct {
	Events []entity.CalendarEvent
}

// ListEventsUseCase handles listing calendar events in store order.
type ListEventsUseCase struct {
	events *store.Store[entity.CalendarEvent]
}

// NewListEventsUseCase creates a new ListEventsUseCase instance.
func NewListEventsUseCase(events *store.Store[entity.CalendarEvent]) *ListEventsUseCase {
	return &ListEventsUseCase{
		events: events,
	}
}

// Execute performs the event listing.
func (uc *ListEventsUseCase) Execute(_ context.Context, input ListEventsInput) (*ListEventsOutput, error) {
	var onDay store.Predicate[entity.CalendarEvent]
	if input.Day != nil {
		day := *input.Day
		onDay = func(e entity.CalendarEvent) bool { return entity.SameDay(e.StartDate, day) }
	}

	return &ListEventsOutput{
		Events: uc.events.List(onDay),
	}, nil
}
