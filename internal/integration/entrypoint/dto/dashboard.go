package dto

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/application/usecase/dashboard"
)

// OverviewResponse represents the dashboard overview.
type OverviewResponse struct {
	Tasks struct {
		Total     int `json:"total"`
		Completed int `json:"completed"`
		Pending   int `json:"pending"`
	} `json:"tasks"`
	Projects struct {
		Total       int `json:"total"`
		Active      int `json:"active"`
		DueThisWeek int `json:"due_this_week"`
	} `json:"projects"`
	Finance SummaryResponse `json:"finance"`
	Budget  struct {
		Spent        decimal.Decimal `json:"spent"`
		Budget       decimal.Decimal `json:"budget"`
		WidthPercent float64         `json:"width_percent"`
		LabelPercent int64           `json:"label_percent"`
		Display      string          `json:"display"`
	} `json:"budget"`
	Goals       int             `json:"goals"`
	EventsToday []EventResponse `json:"events_today"`
}

// ToOverviewResponse converts the overview output to an OverviewResponse DTO.
func ToOverviewResponse(output *dashboard.GetOverviewOutput) OverviewResponse {
	var r OverviewResponse
	r.Tasks.Total = output.Tasks.Total
	r.Tasks.Completed = output.Tasks.Completed
	r.Tasks.Pending = output.Tasks.Pending
	r.Projects.Total = output.Projects.Total
	r.Projects.Active = output.Projects.Active
	r.Projects.DueThisWeek = output.Projects.DueThisWeek
	r.Finance = ToSummaryResponse(output.Finance)
	r.Budget.Spent = output.Budget.Spent
	r.Budget.Budget = output.Budget.Budget
	r.Budget.WidthPercent = output.Budget.WidthPercent
	r.Budget.LabelPercent = output.Budget.LabelPercent
	r.Budget.Display = output.Budget.Display
	r.Goals = output.Goals
	r.EventsToday = ToEventListResponse(output.EventsToday).Events
	return r
}
