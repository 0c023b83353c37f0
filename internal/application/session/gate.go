// Package session holds the session gate: the single authentication state
// that every workspace route is gated on.
package session

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

// DefaultDelay is the artificial latency of login and signup.
const DefaultDelay = time.Second

// State is the gate position.
type State string

const (
	StateAnonymous     State = "anonymous"
	StateAuthenticated State = "authenticated"
)

// Snapshot is a consistent view of the gate.
type Snapshot struct {
	State State
	User  *entity.User
}

// Gate is the session state holder. It is restored once from durable
// storage, moved to authenticated by Login or Signup and back to
// anonymous by Logout. Credentials are never checked: any non-empty input
// succeeds.
type Gate struct {
	storage adapter.SessionStorage
	delay   time.Duration

	mu   sync.RWMutex
	user *entity.User

	initOnce sync.Once
	initErr  error
}

// NewGate creates an anonymous gate backed by storage.
func NewGate(storage adapter.SessionStorage, delay time.Duration) *Gate {
	return &Gate{
		storage: storage,
		delay:   delay,
	}
}

// Init consults durable storage once and restores an authenticated session
// if a user is stored. Later calls return the first result.
func (g *Gate) Init(ctx context.Context) error {
	g.initOnce.Do(func() {
		user, err := g.storage.Load(ctx)
		if err != nil {
			g.initErr = fmt.Errorf("failed to restore session: %w", err)
			return
		}
		if user == nil {
			slog.Info("No stored session, starting anonymous")
			return
		}

		g.mu.Lock()
		g.user = user
		g.mu.Unlock()
		slog.Info("Session restored from storage", "email", user.Email)
	})
	return g.initErr
}

// Login authenticates as email after the artificial delay. The password
// is required but not verified.
func (g *Gate) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if err := requireFields(map[string]string{"email": email, "password": password}); err != nil {
		return nil, err
	}
	return g.authenticate(ctx, entity.NewUser(entity.DefaultUserName, strings.TrimSpace(email)))
}

// Signup authenticates as a new user with the given name after the
// artificial delay.
func (g *Gate) Signup(ctx context.Context, name, email, password string) (*entity.User, error) {
	if err := requireFields(map[string]string{"name": name, "email": email, "password": password}); err != nil {
		return nil, err
	}
	return g.authenticate(ctx, entity.NewUser(strings.TrimSpace(name), strings.TrimSpace(email)))
}

// Logout returns the gate to anonymous and erases durable storage.
func (g *Gate) Logout(ctx context.Context) {
	g.mu.Lock()
	g.user = nil
	g.mu.Unlock()

	if err := g.storage.Clear(ctx); err != nil {
		slog.Warn("Failed to clear stored session", "error", err)
	}
}

// Current returns the gate state and user.
func (g *Gate) Current() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if g.user == nil {
		return Snapshot{State: StateAnonymous}
	}
	u := *g.user
	return Snapshot{State: StateAuthenticated, User: &u}
}

// IsAuthenticated reports whether a user is logged in.
func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.user != nil
}

// Storage returns the durable storage behind the gate.
func (g *Gate) Storage() adapter.SessionStorage {
	return g.storage
}

func (g *Gate) authenticate(ctx context.Context, user *entity.User) (*entity.User, error) {
	if g.delay > 0 {
		timer := time.NewTimer(g.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	g.mu.Lock()
	g.user = user
	g.mu.Unlock()

	// The session is live even when it cannot be made durable; it is then
	// simply not restored on the next start.
	if err := g.storage.Save(ctx, user); err != nil {
		slog.Warn("Failed to persist session", "email", user.Email, "error", err)
	}

	u := *user
	return &u, nil
}

func requireFields(fields map[string]string) error {
	var missing []string
	for _, name := range []string{"name", "email", "password"} {
		value, ok := fields[name]
		if ok && strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return domainerror.NewAuthError(
		domainerror.ErrCodeMissingFields,
		strings.Join(missing, ", ")+" required",
		domainerror.ErrMissingCredentials,
	)
}
