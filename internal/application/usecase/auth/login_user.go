// Package auth contains session use cases.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/application/session"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// LoginUserInput represents the input for user login.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput represents the output of login and signup.
type LoginUserOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.User
}

// LoginUserUseCase opens the session gate for any non-empty credentials.
type LoginUserUseCase struct {
	gate         *session.Gate
	tokenService adapter.TokenService
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(gate *session.Gate, tokenService adapter.TokenService) *LoginUserUseCase {
	return &LoginUserUseCase{
		gate:         gate,
		tokenService: tokenService,
	}
}

// Execute performs the user login.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	user, err := uc.gate.Login(ctx, input.Email, input.Password)
	if err != nil {
		return nil, err
	}
	return issueToken(ctx, uc.tokenService, user)
}

func issueToken(ctx context.Context, tokenService adapter.TokenService, user *entity.User) (*LoginUserOutput, error) {
	token, expiresAt, err := tokenService.GenerateAccessToken(ctx, user.Name, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	return &LoginUserOutput{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
