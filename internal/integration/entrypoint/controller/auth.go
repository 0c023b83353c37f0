package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/productivity-hub/backend/internal/application/usecase/auth"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

// AuthController handles session endpoints.
type AuthController struct {
	loginUseCase      *auth.LoginUserUseCase
	registerUseCase   *auth.RegisterUserUseCase
	logoutUseCase     *auth.LogoutUserUseCase
	getSessionUseCase *auth.GetSessionUseCase
}

// NewAuthController creates a new auth controller instance.
func NewAuthController(
	loginUseCase *auth.LoginUserUseCase,
	registerUseCase *auth.RegisterUserUseCase,
	logoutUseCase *auth.LogoutUserUseCase,
	getSessionUseCase *auth.GetSessionUseCase,
) *AuthController {
	return &AuthController{
		loginUseCase:      loginUseCase,
		registerUseCase:   registerUseCase,
		logoutUseCase:     logoutUseCase,
		getSessionUseCase: getSessionUseCase,
	}
}

// Login handles POST /auth/login requests.
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.loginUseCase.Execute(ctx.Request.Context(), auth.LoginUserInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
		User:        dto.ToUserResponse(output.User),
	})
}

// Signup handles POST /auth/signup requests.
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		badRequest(ctx, err)
		return
	}

	output, err := c.registerUseCase.Execute(ctx.Request.Context(), auth.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.AuthResponse{
		AccessToken: output.AccessToken,
		ExpiresAt:   output.ExpiresAt,
		User:        dto.ToUserResponse(output.User),
	})
}

// Logout handles POST /auth/logout requests.
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.logoutUseCase.Execute(ctx.Request.Context()); err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Logged out"})
}

// Session handles GET /auth/session requests.
func (c *AuthController) Session(ctx *gin.Context) {
	snapshot, err := c.getSessionUseCase.Execute(ctx.Request.Context())
	if err != nil {
		handleError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, dto.ToSessionResponse(snapshot))
}
