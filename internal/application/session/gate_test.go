package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/integration/persistence"
)

type failingStorage struct {
	loadErr error
	saves   int
}

func (s *failingStorage) Load(context.Context) (*entity.User, error) { return nil, s.loadErr }
func (s *failingStorage) Save(context.Context, *entity.User) error {
	s.saves++
	return errors.New("disk full")
}
func (s *failingStorage) Clear(context.Context) error { return errors.New("disk full") }
func (s *failingStorage) Ping(context.Context) error  { return nil }

func TestGate_Init(t *testing.T) {
	ctx := context.Background()

	t.Run("empty storage stays anonymous", func(t *testing.T) {
		g := NewGate(persistence.NewMemorySessionStorage(), 0)
		if err := g.Init(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if g.IsAuthenticated() {
			t.Error("expected anonymous gate")
		}
		if snap := g.Current(); snap.State != StateAnonymous || snap.User != nil {
			t.Errorf("unexpected snapshot %+v", snap)
		}
	})

	t.Run("stored user is restored", func(t *testing.T) {
		storage := persistence.NewMemorySessionStorage()
		_ = storage.Save(ctx, entity.NewUser("Ann", "ann@x.io"))

		g := NewGate(storage, 0)
		if err := g.Init(ctx); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		snap := g.Current()
		if snap.State != StateAuthenticated {
			t.Fatalf("expected authenticated, got %s", snap.State)
		}
		if snap.User.Name != "Ann" || snap.User.Email != "ann@x.io" {
			t.Errorf("unexpected user %+v", snap.User)
		}
	})

	t.Run("storage is consulted once", func(t *testing.T) {
		storage := persistence.NewMemorySessionStorage()
		g := NewGate(storage, 0)
		_ = g.Init(ctx)

		_ = storage.Save(ctx, entity.NewUser("Late", "late@x.io"))
		_ = g.Init(ctx)
		if g.IsAuthenticated() {
			t.Error("expected second Init to be a no-op")
		}
	})

	t.Run("load failure is reported", func(t *testing.T) {
		g := NewGate(&failingStorage{loadErr: errors.New("boom")}, 0)
		if err := g.Init(ctx); err == nil {
			t.Error("expected error")
		}
		if g.IsAuthenticated() {
			t.Error("expected anonymous gate")
		}
	})
}

func TestGate_Login(t *testing.T) {
	ctx := context.Background()
	storage := persistence.NewMemorySessionStorage()
	g := NewGate(storage, 0)

	user, err := g.Login(ctx, "a@b.c", "x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != entity.DefaultUserName || user.Email != "a@b.c" {
		t.Errorf("unexpected user %+v", user)
	}
	if !g.IsAuthenticated() {
		t.Error("expected authenticated gate")
	}

	stored, _ := storage.Load(ctx)
	if stored == nil || stored.Email != "a@b.c" {
		t.Errorf("expected user to be persisted, got %+v", stored)
	}
}

func TestGate_Signup(t *testing.T) {
	ctx := context.Background()
	storage := persistence.NewMemorySessionStorage()
	g := NewGate(storage, 0)

	user, err := g.Signup(ctx, "Ann", "ann@x.io", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Name != "Ann" {
		t.Errorf("expected name Ann, got %s", user.Name)
	}

	stored, _ := storage.Load(ctx)
	if stored == nil || stored.Name != "Ann" {
		t.Errorf("expected signup user to be persisted, got %+v", stored)
	}
}

func TestGate_RejectsEmptyInput(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		run  func(g *Gate) error
	}{
		{name: "login without email", run: func(g *Gate) error { _, err := g.Login(ctx, "", "x"); return err }},
		{name: "login without password", run: func(g *Gate) error { _, err := g.Login(ctx, "a@b.c", " "); return err }},
		{name: "signup without name", run: func(g *Gate) error { _, err := g.Signup(ctx, "", "a@b.c", "x"); return err }},
		{name: "signup without email", run: func(g *Gate) error { _, err := g.Signup(ctx, "Ann", "", "x"); return err }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGate(persistence.NewMemorySessionStorage(), 0)
			err := tt.run(g)

			var authErr *domainerror.AuthError
			if !errors.As(err, &authErr) {
				t.Fatalf("expected AuthError, got %v", err)
			}
			if authErr.Code != domainerror.ErrCodeMissingFields {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingFields, authErr.Code)
			}
			if g.IsAuthenticated() {
				t.Error("expected gate to stay anonymous")
			}
		})
	}
}

func TestGate_Logout(t *testing.T) {
	ctx := context.Background()
	storage := persistence.NewMemorySessionStorage()
	g := NewGate(storage, 0)
	_, _ = g.Login(ctx, "a@b.c", "x")

	g.Logout(ctx)

	if g.IsAuthenticated() {
		t.Error("expected anonymous gate after logout")
	}
	stored, _ := storage.Load(ctx)
	if stored != nil {
		t.Errorf("expected storage to be cleared, got %+v", stored)
	}

	// A fresh gate on the same storage starts anonymous.
	fresh := NewGate(storage, 0)
	_ = fresh.Init(ctx)
	if fresh.IsAuthenticated() {
		t.Error("expected restart after logout to be anonymous")
	}
}

func TestGate_Delay(t *testing.T) {
	g := NewGate(persistence.NewMemorySessionStorage(), 50*time.Millisecond)

	start := time.Now()
	if _, err := g.Login(context.Background(), "a@b.c", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 50*time.Millisecond {
		t.Errorf("expected login to take at least 50ms, took %s", elapsed)
	}
}

func TestGate_DelayHonorsCancellation(t *testing.T) {
	g := NewGate(persistence.NewMemorySessionStorage(), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := g.Login(ctx, "a@b.c", "x"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if g.IsAuthenticated() {
		t.Error("expected cancelled login to leave the gate anonymous")
	}
}

func TestGate_PersistFailureStillAuthenticates(t *testing.T) {
	storage := &failingStorage{}
	g := NewGate(storage, 0)

	if _, err := g.Login(context.Background(), "a@b.c", "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.IsAuthenticated() {
		t.Error("expected authenticated gate")
	}
	if storage.saves != 1 {
		t.Errorf("expected one save attempt, got %d", storage.saves)
	}

	g.Logout(context.Background())
	if g.IsAuthenticated() {
		t.Error("expected logout to succeed despite storage failure")
	}
}
