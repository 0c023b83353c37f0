// Package persistence implements the durable session storages behind the
// session gate.
package persistence

import (
	"context"
	"sync"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// memorySessionStorage keeps the session user in process memory. It does
// not survive a restart and is used for tests and local runs.
type memorySessionStorage struct {
	mu   sync.Mutex
	user *entity.User
}

// NewMemorySessionStorage creates an empty in-memory session storage.
func NewMemorySessionStorage() adapter.SessionStorage {
	return &memorySessionStorage{}
}

// Load returns the stored user, or nil when none is stored.
func (s *memorySessionStorage) Load(_ context.Context) (*entity.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil, nil
	}
	u := *s.user
	return &u, nil
}

// Save stores a copy of the user.
func (s *memorySessionStorage) Save(_ context.Context, user *entity.User) error {
	u := *user

	s.mu.Lock()
	s.user = &u
	s.mu.Unlock()
	return nil
}

// Clear erases the stored user.
func (s *memorySessionStorage) Clear(_ context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()
	return nil
}

// Ping always succeeds.
func (s *memorySessionStorage) Ping(_ context.Context) error {
	return nil
}
