package dto

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/application/usecase/goal"
	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/finance"
)

// GoalRequest represents the request body for goal create, update and
// draft edits.
type GoalRequest struct {
	Name          *string          `json:"name,omitempty"`
	TargetAmount  *decimal.Decimal `json:"target_amount,omitempty"`
	CurrentAmount *decimal.Decimal `json:"current_amount,omitempty"`
	Deadline      *string          `json:"deadline,omitempty"`
}

// ToPatch converts the request to a goal patch.
func (r GoalRequest) ToPatch() (entity.GoalPatch, error) {
	deadline, err := parseDate("deadline", r.Deadline)
	if err != nil {
		return entity.GoalPatch{}, err
	}
	return entity.GoalPatch{
		Name:          r.Name,
		TargetAmount:  r.TargetAmount,
		CurrentAmount: r.CurrentAmount,
		Deadline:      deadline,
	}, nil
}

// GoalResponse represents a single goal in API responses.
type GoalResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	Deadline      string          `json:"deadline"`
	Progress      int64           `json:"progress"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain Goal entity to a GoalResponse DTO.
func ToGoalResponse(g entity.Goal) GoalResponse {
	return GoalResponse{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      formatDate(g.Deadline),
		Progress:      finance.GoalProgress(g),
	}
}

// ToGoalListResponse converts a list of GoalOutput to GoalListResponse.
func ToGoalListResponse(outputs []goal.GoalOutput) GoalListResponse {
	goals := make([]GoalResponse, len(outputs))
	for i, output := range outputs {
		r := ToGoalResponse(output.Goal)
		r.Progress = output.Progress
		goals[i] = r
	}
	return GoalListResponse{
		Goals: goals,
	}
}
