package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/productivity-hub/backend/internal/application/usecase/category"
	"github.com/productivity-hub/backend/internal/application/usecase/draft"
	"github.com/productivity-hub/backend/internal/application/usecase/event"
	"github.com/productivity-hub/backend/internal/application/usecase/goal"
	"github.com/productivity-hub/backend/internal/application/usecase/project"
	"github.com/productivity-hub/backend/internal/application/usecase/task"
	"github.com/productivity-hub/backend/internal/application/usecase/transaction"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// BeginDraftRequest represents the request body for opening a draft. An
// empty source_id opens a create draft.
type BeginDraftRequest struct {
	SourceID string `json:"source_id"`
}

// DraftResponse represents a draft in API responses.
type DraftResponse struct {
	Handle    string    `json:"handle"`
	Kind      string    `json:"kind"`
	Mode      string    `json:"mode"`
	SourceID  string    `json:"source_id,omitempty"`
	State     string    `json:"state"`
	Record    any       `json:"record"`
	Missing   []string  `json:"missing"`
	CanSave   bool      `json:"can_save"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToDraftResponse converts a draft view to a DraftResponse DTO.
func ToDraftResponse(v *draft.View) DraftResponse {
	missing := v.Missing
	if missing == nil {
		missing = []string{}
	}
	return DraftResponse{
		Handle:    v.Handle,
		Kind:      v.Kind,
		Mode:      string(v.Mode),
		SourceID:  v.SourceID,
		State:     string(v.State),
		Record:    ToRecordResponse(v.Record),
		Missing:   missing,
		CanSave:   v.CanSave,
		UpdatedAt: v.UpdatedAt,
	}
}

// ToRecordResponse converts any domain record to its response DTO.
func ToRecordResponse(record any) any {
	switch r := record.(type) {
	case entity.Task:
		return ToTaskResponse(r)
	case entity.Transaction:
		return ToTransactionResponse(r)
	case entity.Category:
		return ToCategoryResponse(r)
	case entity.Goal:
		return ToGoalResponse(r)
	case entity.Project:
		return ToProjectResponse(r)
	case entity.CalendarEvent:
		return ToEventResponse(r)
	default:
		return record
	}
}

// DecodePatch decodes body into the patch type of the given record kind.
func DecodePatch(kind string, body []byte) (any, error) {
	switch kind {
	case task.Kind:
		return decodePatch[TaskRequest](body, TaskRequest.ToPatch)
	case transaction.Kind:
		return decodePatch[TransactionRequest](body, TransactionRequest.ToPatch)
	case category.Kind:
		return decodePatch[CategoryRequest](body, CategoryRequest.ToPatch)
	case goal.Kind:
		return decodePatch[GoalRequest](body, GoalRequest.ToPatch)
	case project.Kind:
		return decodePatch[ProjectRequest](body, ProjectRequest.ToPatch)
	case event.Kind:
		return decodePatch[EventRequest](body, EventRequest.ToPatch)
	default:
		return nil, fmt.Errorf("no patch format for %q", kind)
	}
}

func decodePatch[R any, P any](body []byte, toPatch func(R) (P, error)) (any, error) {
	var req R
	if err := json.Unmarshal(body, &req); err != nil {
		return nil, err
	}
	return toPatch(req)
}
