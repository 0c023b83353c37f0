package auth

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/application/session"
)

// LogoutUserUseCase closes the session gate. Every token issued before is
// refused from then on.
type LogoutUserUseCase struct {
	gate     *session.Gate
	notifier *notify.Notifier
}

// NewLogoutUserUseCase creates a new LogoutUserUseCase instance.
func NewLogoutUserUseCase(gate *session.Gate, notifier *notify.Notifier) *LogoutUserUseCase {
	return &LogoutUserUseCase{
		gate:     gate,
		notifier: notifier,
	}
}

// Execute performs the logout.
func (uc *LogoutUserUseCase) Execute(ctx context.Context) error {
	uc.gate.Logout(ctx)
	uc.notifier.Success(ctx, "Logged out", "You have been logged out successfully")
	return nil
}
