// Package dashboard contains the read-only aggregate views of the
// workspace.
package dashboard

import (
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// Stores are the record stores the dashboard reads from. Every view is
// recomputed from their current contents.
type Stores struct {
	Tasks        *store.Store[entity.Task]
	Transactions *store.Store[entity.Transaction]
	Categories   *store.Store[entity.Category]
	Goals        *store.Store[entity.Goal]
	Projects     *store.Store[entity.Project]
	Events       *store.Store[entity.CalendarEvent]
}
