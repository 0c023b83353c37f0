// Package store provides the in-memory ordered record stores that back every
// module of the workspace.
package store

import (
	"sync"

	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

// Predicate selects records in List.
type Predicate[T any] func(T) bool

// Store holds an ordered sequence of records of one entity type.
// Insertion order is preserved; updates replace in place and removals
// close the gap. It is safe for concurrent use.
type Store[T entity.Record[T]] struct {
	mu      sync.RWMutex
	records []T
	version uint64
	newID   func() string
}

// New creates a store seeded with the given records, in order.
func New[T entity.Record[T]](seed ...T) *Store[T] {
	return NewWithIDGenerator(entity.NewID, seed...)
}

// NewWithIDGenerator creates a store that assigns ids with newID.
func NewWithIDGenerator[T entity.Record[T]](newID func() string, seed ...T) *Store[T] {
	records := make([]T, len(seed))
	copy(records, seed)
	return &Store[T]{
		records: records,
		newID:   newID,
	}
}

// Add appends a record, assigning a fresh id if it has none, and returns
// the stored record.
func (s *Store[T]) Add(record T) T {
	if record.GetID() == "" {
		record = record.WithID(s.newID())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = append(s.records, record)
	s.version++
	return record
}

// Insert is Add for records that must not share an id with a stored one.
// The check and the append happen under one lock; a taken id returns
// ErrRecordExists and leaves the store unchanged.
func (s *Store[T]) Insert(record T) (T, error) {
	if record.GetID() == "" {
		record = record.WithID(s.newID())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.indexOf(record.GetID()) >= 0 {
		var zero T
		return zero, domainerror.ErrRecordExists
	}
	s.records = append(s.records, record)
	s.version++
	return record, nil
}

// Update replaces the record whose id matches with patch applied to it,
// keeping its position. It returns ErrRecordNotFound if no record matches
// and ErrRecordExists if the patch moves the record onto another's id.
func (s *Store[T]) Update(id string, patch func(T) T) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero T
	i := s.indexOf(id)
	if i < 0 {
		return zero, domainerror.ErrRecordNotFound
	}
	updated := patch(s.records[i])
	if newID := updated.GetID(); newID != id && s.indexOf(newID) >= 0 {
		return zero, domainerror.ErrRecordExists
	}
	s.records[i] = updated
	s.version++
	return updated, nil
}

func (s *Store[T]) indexOf(id string) int {
	for i, record := range s.records {
		if record.GetID() == id {
			return i
		}
	}
	return -1
}

// Remove filters out the record whose id matches. It reports whether a
// record was removed; removing a missing id is a no-op.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, record := range s.records {
		if record.GetID() == id {
			s.records = append(s.records[:i:i], s.records[i+1:]...)
			s.version++
			return true
		}
	}
	return false
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, record := range s.records {
		if record.GetID() == id {
			return record, true
		}
	}

	var zero T
	return zero, false
}

// List returns a copy of the records satisfying every predicate, in store
// order. With no predicates it returns all records.
func (s *Store[T]) List(predicates ...Predicate[T]) []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]T, 0, len(s.records))
outer:
	for _, record := range s.records {
		for _, keep := range predicates {
			if keep != nil && !keep(record) {
				continue outer
			}
		}
		result = append(result, record)
	}
	return result
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Version increases on every mutation.
func (s *Store[T]) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}
