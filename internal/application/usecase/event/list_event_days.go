package event

import (
	"context"
	"sort"
	"time"

	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// ListEventDaysInput selects a calendar month.
type ListEventDaysInput struct {
	Year  int
	Month time.Month
}

// ListEventDaysOutput holds the days of the month that have events,
// ascending.
type ListEventDaysOutput struct {
	Days []int
}

// ListEventDaysUseCase finds the days to mark on the month calendar.
type ListEventDaysUseCase struct {
	events *store.Store[entity.CalendarEvent]
}

// NewListEventDaysUseCase creates a new ListEventDaysUseCase instance.
func NewListEventDaysUseCase(events *store.Store[entity.CalendarEvent]) *ListEventDaysUseCase {
	return &ListEventDaysUseCase{
		events: events,
	}
}

// Execute performs the lookup.
func (uc *ListEventDaysUseCase) Execute(_ context.Context, input ListEventDaysInput) (*ListEventDaysOutput, error) {
	seen := make(map[int]struct{})
	for _, e := range uc.events.List() {
		y, m, d := e.StartDate.UTC().Date()
		if y == input.Year && m == input.Month {
			seen[d] = struct{}{}
		}
	}

	days := make([]int, 0, len(seen))
	for d := range seen {
		days = append(days, d)
	}
	sort.Ints(days)

	return &ListEventDaysOutput{
		Days: days,
	}, nil
}
