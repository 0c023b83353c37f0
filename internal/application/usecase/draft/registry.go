package draft

import (
	"sort"

	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

// Registry holds one desk per record kind.
type Registry struct {
	desks map[string]Desk
}

// NewRegistry creates a registry of the given desks.
func NewRegistry(desks ...Desk) *Registry {
	r := &Registry{desks: make(map[string]Desk, len(desks))}
	for _, d := range desks {
		r.desks[d.Kind()] = d
	}
	return r
}

// Desk returns the desk for kind.
func (r *Registry) Desk(kind string) (Desk, error) {
	d, ok := r.desks[kind]
	if !ok {
		return nil, domainerror.NewRecordError(
			domainerror.ErrCodeUnknownDraftKind,
			"no drafts for "+kind,
			domainerror.ErrUnknownDraftKind,
		)
	}
	return d, nil
}

// Kinds returns the registered kinds, sorted.
func (r *Registry) Kinds() []string {
	kinds := make([]string, 0, len(r.desks))
	for k := range r.desks {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}
