package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "record not found",
			err:        domainerror.NewNotFoundError("task", "42"),
			wantStatus: http.StatusNotFound,
			wantCode:   "REC-010001",
		},
		{
			name:       "missing fields",
			err:        domainerror.NewMissingFieldsError([]string{"title"}),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   "REC-010002",
		},
		{
			name:       "draft not open",
			err:        domainerror.NewRecordError(domainerror.ErrCodeDraftNotOpen, "draft is closed", domainerror.ErrDraftNotOpen),
			wantStatus: http.StatusConflict,
			wantCode:   "REC-020002",
		},
		{
			name:       "duplicate category wrapped",
			err:        fmt.Errorf("create: %w", domainerror.NewFinanceError(domainerror.ErrCodeCategoryNameExists, "exists", domainerror.ErrCategoryNameExists)),
			wantStatus: http.StatusConflict,
			wantCode:   "FIN-010003",
		},
		{
			name:       "record id taken",
			err:        domainerror.NewExistsError("task", "42"),
			wantStatus: http.StatusConflict,
			wantCode:   "REC-010004",
		},
		{
			name:       "unknown transaction category",
			err:        domainerror.NewFinanceError(domainerror.ErrCodeUnknownCategory, "unknown", domainerror.ErrUnknownCategory),
			wantStatus: http.StatusBadRequest,
			wantCode:   "FIN-010004",
		},
		{
			name:       "invalid split",
			err:        domainerror.NewFinanceError(domainerror.ErrCodeSplitNotExpense, "only expenses", domainerror.ErrSplitNotExpense),
			wantStatus: http.StatusBadRequest,
			wantCode:   "FIN-020001",
		},
		{
			name:       "planner validation",
			err:        domainerror.NewPlannerError(domainerror.ErrCodeInvalidProgress, "bad progress", domainerror.ErrInvalidProgress),
			wantStatus: http.StatusBadRequest,
			wantCode:   "PLN-020002",
		},
		{
			name:       "missing credentials",
			err:        domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "missing", domainerror.ErrMissingCredentials),
			wantStatus: http.StatusBadRequest,
			wantCode:   "AUTH-010005",
		},
		{
			name:       "not authenticated",
			err:        domainerror.NewAuthError(domainerror.ErrCodeNotAuthenticated, "anonymous", domainerror.ErrNotAuthenticated),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH-030004",
		},
		{
			name:       "bad field",
			err:        &dto.FieldError{Field: "due_date", Err: errors.New("bad date")},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(w)
			ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			handleError(ctx, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			var body dto.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
				t.Fatalf("response is not JSON: %v", err)
			}
			if body.Code != tt.wantCode {
				t.Errorf("expected code %q, got %q", tt.wantCode, body.Code)
			}
			if body.Error == "" {
				t.Error("expected an error message")
			}
		})
	}
}

func TestHandleError_MissingFieldsListed(t *testing.T) {
	w := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(w)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	handleError(ctx, domainerror.NewMissingFieldsError([]string{"name", "deadline"}))

	var body dto.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Fields) != 2 || body.Fields[0] != "name" || body.Fields[1] != "deadline" {
		t.Errorf("unexpected fields %v", body.Fields)
	}
}
