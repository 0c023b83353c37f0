package seed

import (
	"github.com/productivity-hub/backend/internal/application/usecase/dashboard"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// NewStores creates the workspace stores. With samples set they hold the
// sample records, otherwise they start empty.
func NewStores(samples bool) dashboard.Stores {
	if !samples {
		return dashboard.Stores{
			Tasks:        store.New[entity.Task](),
			Transactions: store.New[entity.Transaction](),
			Categories:   store.New[entity.Category](),
			Goals:        store.New[entity.Goal](),
			Projects:     store.New[entity.Project](),
			Events:       store.New[entity.CalendarEvent](),
		}
	}
	return dashboard.Stores{
		Tasks:        store.New(Tasks()...),
		Transactions: store.New(Transactions()...),
		Categories:   store.New(Categories()...),
		Goals:        store.New(Goals()...),
		Projects:     store.New(Projects()...),
		Events:       store.New(Events()...),
	}
}
