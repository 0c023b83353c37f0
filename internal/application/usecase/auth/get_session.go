package auth

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/session"
)

// GetSessionUseCase reports the gate state.
type GetSessionUseCase struct {
	gate *session.Gate
}

// NewGetSessionUseCase creates a new GetSessionUseCase instance.
func NewGetSessionUseCase(gate *session.Gate) *GetSessionUseCase {
	return &GetSessionUseCase{
		gate: gate,
	}
}

// Execute returns the current session.
func (uc *GetSessionUseCase) Execute(_ context.Context) (session.Snapshot, error) {
	return uc.gate.Current(), nil
}
