package auth

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/application/session"
)

// RegisterUserInput represents the input for signup.
type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

// RegisterUserUseCase opens the session gate as a newly named user.
type RegisterUserUseCase struct {
	gate         *session.Gate
	tokenService adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(gate *session.Gate, tokenService adapter.TokenService) *RegisterUserUseCase {
	return &RegisterUserUseCase{
		gate:         gate,
		tokenService: tokenService,
	}
}

// Execute performs the signup.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*LoginUserOutput, error) {
	user, err := uc.gate.Signup(ctx, input.Name, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	return issueToken(ctx, uc.tokenService, user)
}
