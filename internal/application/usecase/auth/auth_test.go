package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/application/session"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/integration/persistence"
)

type stubTokenService struct {
	issued []string
	err    error
}

func (s *stubTokenService) GenerateAccessToken(_ context.Context, name, email string) (string, time.Time, error) {
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	s.issued = append(s.issued, email)
	return "token-" + email, time.Now().Add(time.Hour), nil
}

func (s *stubTokenService) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, errors.New("not implemented")
}

type recordingPublisher struct {
	messages []entity.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg entity.Message) error {
	p.messages = append(p.messages, msg)
	return nil
}

func TestLoginUserUseCase(t *testing.T) {
	ctx := context.Background()
	gate := session.NewGate(persistence.NewMemorySessionStorage(), 0)
	tokens := &stubTokenService{}
	uc := NewLoginUserUseCase(gate, tokens)

	out, err := uc.Execute(ctx, LoginUserInput{Email: "a@b.c", Password: "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.AccessToken != "token-a@b.c" {
		t.Errorf("unexpected token %q", out.AccessToken)
	}
	if out.User.Name != entity.DefaultUserName {
		t.Errorf("expected name %q, got %q", entity.DefaultUserName, out.User.Name)
	}
	if !gate.IsAuthenticated() {
		t.Error("expected gate to be authenticated")
	}
}

func TestLoginUserUseCase_MissingFields(t *testing.T) {
	gate := session.NewGate(persistence.NewMemorySessionStorage(), 0)
	tokens := &stubTokenService{}

	_, err := NewLoginUserUseCase(gate, tokens).Execute(context.Background(), LoginUserInput{Email: "a@b.c"})
	if !errors.Is(err, domainerror.ErrMissingCredentials) {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if len(tokens.issued) != 0 {
		t.Error("expected no token to be issued")
	}
}

func TestLoginUserUseCase_TokenFailure(t *testing.T) {
	gate := session.NewGate(persistence.NewMemorySessionStorage(), 0)
	_, err := NewLoginUserUseCase(gate, &stubTokenService{err: errors.New("no key")}).
		Execute(context.Background(), LoginUserInput{Email: "a@b.c", Password: "x"})
	if err == nil {
		t.Fatal("expected error")
	}
}

func TestRegisterUserUseCase(t *testing.T) {
	gate := session.NewGate(persistence.NewMemorySessionStorage(), 0)
	out, err := NewRegisterUserUseCase(gate, &stubTokenService{}).Execute(context.Background(), RegisterUserInput{
		Name: "Ann", Email: "ann@x.io", Password: "pw",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.User.Name != "Ann" {
		t.Errorf("expected Ann, got %s", out.User.Name)
	}
}

func TestLogoutAndSession(t *testing.T) {
	ctx := context.Background()
	gate := session.NewGate(persistence.NewMemorySessionStorage(), 0)
	_, _ = gate.Login(ctx, "a@b.c", "x")

	snap, _ := NewGetSessionUseCase(gate).Execute(ctx)
	if snap.State != session.StateAuthenticated {
		t.Fatalf("expected authenticated, got %s", snap.State)
	}

	pub := &recordingPublisher{}
	if err := NewLogoutUserUseCase(gate, notify.New(pub)).Execute(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap, _ = NewGetSessionUseCase(gate).Execute(ctx)
	if snap.State != session.StateAnonymous || snap.User != nil {
		t.Errorf("expected anonymous session, got %+v", snap)
	}
	if len(pub.messages) != 1 || pub.messages[0].Notification.Title != "Logged out" {
		t.Errorf("unexpected notifications %+v", pub.messages)
	}
}
