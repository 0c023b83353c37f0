// Package middleware provides HTTP middleware for the API endpoints.
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/productivity-hub/backend/internal/application/adapter"
	"github.com/productivity-hub/backend/internal/application/session"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

// ContextKey is a type for context keys.
type ContextKey string

const (
	// UserEmailKey is the context key for the authenticated user's email.
	UserEmailKey ContextKey = "user_email"
	// UserNameKey is the context key for the authenticated user's name.
	UserNameKey ContextKey = "user_name"
)

// AuthMiddleware admits requests carrying a valid token for the user the
// session gate is authenticated as.
type AuthMiddleware struct {
	tokenService adapter.TokenService
	gate         *session.Gate
}

// NewAuthMiddleware creates a new auth middleware instance.
func NewAuthMiddleware(tokenService adapter.TokenService, gate *session.Gate) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		gate:         gate,
	}
}

// Authenticate returns a Gin middleware handler that enforces authentication.
// Browsers cannot set headers on WebSocket upgrades, so the token may also
// arrive as the access_token query parameter.
func (m *AuthMiddleware) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c)
		if !ok {
			return
		}

		claims, err := m.tokenService.ValidateAccessToken(c.Request.Context(), token)
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token", domainerror.ErrCodeInvalidToken)
			return
		}

		snapshot := m.gate.Current()
		if snapshot.State != session.StateAuthenticated || snapshot.User.Email != claims.Email {
			abort(c, http.StatusUnauthorized, "Session is not authenticated", domainerror.ErrCodeNotAuthenticated)
			return
		}

		c.Set(string(UserEmailKey), snapshot.User.Email)
		c.Set(string(UserNameKey), snapshot.User.Name)

		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		if token := c.Query("access_token"); token != "" {
			return token, true
		}
		abort(c, http.StatusUnauthorized, "Authorization header is required", domainerror.ErrCodeMissingToken)
		return "", false
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		abort(c, http.StatusUnauthorized, "Invalid authorization header format", domainerror.ErrCodeInvalidToken)
		return "", false
	}

	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		abort(c, http.StatusUnauthorized, "Token is required", domainerror.ErrCodeMissingToken)
		return "", false
	}
	return token, true
}

func abort(c *gin.Context, status int, message string, code domainerror.AuthErrorCode) {
	c.JSON(status, dto.ErrorResponse{
		Error: message,
		Code:  string(code),
	})
	c.Abort()
}

// GetUserEmailFromContext extracts the user email from the Gin context.
func GetUserEmailFromContext(c *gin.Context) (string, bool) {
	email, exists := c.Get(string(UserEmailKey))
	if !exists {
		return "", false
	}
	emailStr, ok := email.(string)
	return emailStr, ok
}
