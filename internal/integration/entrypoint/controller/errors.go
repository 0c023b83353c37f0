// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

// handleError maps domain errors to HTTP responses.
func handleError(ctx *gin.Context, err error) {
	var (
		recErr   *domainerror.RecordError
		finErr   *domainerror.FinanceError
		plnErr   *domainerror.PlannerError
		authErr  *domainerror.AuthError
		fieldErr *dto.FieldError
	)

	switch {
	case errors.As(err, &recErr):
		ctx.JSON(statusForRecordError(recErr.Code), dto.ErrorResponse{
			Error:  recErr.Message,
			Code:   string(recErr.Code),
			Fields: recErr.Fields,
		})
	case errors.As(err, &finErr):
		ctx.JSON(statusForFinanceError(finErr.Code), dto.ErrorResponse{
			Error: finErr.Message,
			Code:  string(finErr.Code),
		})
	case errors.As(err, &plnErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: plnErr.Message,
			Code:  string(plnErr.Code),
		})
	case errors.As(err, &authErr):
		ctx.JSON(statusForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
	case errors.As(err, &fieldErr):
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "Invalid request body",
			Details: fieldErr.Error(),
			Fields:  []string{fieldErr.Field},
		})
	default:
		slog.Error("Request failed", "path", ctx.FullPath(), "error", err)
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "An internal error occurred",
		})
	}
}

// badRequest responds to a body that could not be bound.
func badRequest(ctx *gin.Context, err error) {
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Error:   "Invalid request body",
		Details: err.Error(),
	})
}

func statusForRecordError(code domainerror.RecordErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecordNotFound,
		domainerror.ErrCodeDraftNotFound,
		domainerror.ErrCodeUnknownDraftKind:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingRequiredFields:
		return http.StatusUnprocessableEntity
	case domainerror.ErrCodeDraftNotOpen, domainerror.ErrCodeRecordExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidRecordID, domainerror.ErrCodeInvalidDraftBody:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func statusForFinanceError(code domainerror.FinanceErrorCode) int {
	if code == domainerror.ErrCodeCategoryNameExists {
		return http.StatusConflict
	}
	return http.StatusBadRequest
}

func statusForAuthError(code domainerror.AuthErrorCode) int {
	switch code {
	case domainerror.ErrCodeMissingFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case domainerror.ErrCodeInvalidToken,
		domainerror.ErrCodeMissingToken,
		domainerror.ErrCodeNotAuthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
