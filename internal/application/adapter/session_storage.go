// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

// SessionStorageKey is the single durable key holding the session user.
const SessionStorageKey = "user"

// SessionStorage is the durable store behind the session gate.
type SessionStorage interface {
	// Load returns the stored user, or nil when no user is stored.
	Load(ctx context.Context) (*entity.User, error)

	// Save stores the user, replacing any previous one.
	Save(ctx context.Context, user *entity.User) error

	// Clear erases the stored user.
	Clear(ctx context.Context) error

	// Ping reports whether the backing store is reachable.
	Ping(ctx context.Context) error
}
