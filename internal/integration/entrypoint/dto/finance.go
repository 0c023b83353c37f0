package dto

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/application/usecase/dashboard"
	"github.com/productivity-hub/backend/internal/domain/finance"
)

// SummaryResponse represents the income, expense and balance totals.
type SummaryResponse struct {
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
	Balance      decimal.Decimal `json:"balance"`
}

// BudgetUsageResponse represents one category's budget bar.
type BudgetUsageResponse struct {
	Category     CategoryResponse `json:"category"`
	WidthPercent float64          `json:"width_percent"`
	LabelPercent int64            `json:"label_percent"`
}

// BudgetsResponse represents the budget overview.
type BudgetsResponse struct {
	Budgets      []BudgetUsageResponse `json:"budgets"`
	TotalBudget  decimal.Decimal       `json:"total_budget"`
	TotalSpent   decimal.Decimal       `json:"total_spent"`
	LabelPercent int64                 `json:"label_percent"`
}

// PieSliceResponse represents one slice of the spending chart.
type PieSliceResponse struct {
	Category     string          `json:"category"`
	Color        string          `json:"color"`
	Spent        decimal.Decimal `json:"spent"`
	Percent      float64         `json:"percent"`
	LabelPercent int64           `json:"label_percent"`
	StartAngle   float64         `json:"start_angle"`
	SweepAngle   float64         `json:"sweep_angle"`
}

// SpendingResponse represents spending by category.
type SpendingResponse struct {
	TotalExpense decimal.Decimal    `json:"total_expense"`
	Slices       []PieSliceResponse `json:"slices"`
}

// ToSummaryResponse converts a finance summary to a SummaryResponse DTO.
func ToSummaryResponse(s finance.Summary) SummaryResponse {
	return SummaryResponse{
		TotalIncome:  s.TotalIncome,
		TotalExpense: s.TotalExpense,
		Balance:      s.Balance,
	}
}

// ToBudgetsResponse converts the budget usage output to a BudgetsResponse DTO.
func ToBudgetsResponse(output *dashboard.GetBudgetUsageOutput) BudgetsResponse {
	response := BudgetsResponse{
		Budgets:      make([]BudgetUsageResponse, len(output.Budgets)),
		TotalBudget:  output.TotalBudget,
		TotalSpent:   output.TotalSpent,
		LabelPercent: output.LabelPercent,
	}
	for i, b := range output.Budgets {
		response.Budgets[i] = BudgetUsageResponse{
			Category:     ToCategoryResponse(b.Category),
			WidthPercent: b.WidthPercent,
			LabelPercent: b.LabelPercent,
		}
	}
	return response
}

// ToSpendingResponse converts the breakdown output to a SpendingResponse DTO.
func ToSpendingResponse(output *dashboard.GetCategoryBreakdownOutput) SpendingResponse {
	response := SpendingResponse{
		TotalExpense: output.TotalExpense,
		Slices:       make([]PieSliceResponse, len(output.Slices)),
	}
	for i, s := range output.Slices {
		response.Slices[i] = PieSliceResponse{
			Category:     s.Category,
			Color:        s.Color,
			Spent:        s.Spent,
			Percent:      s.Percent,
			LabelPercent: s.LabelPercent,
			StartAngle:   s.StartAngle,
			SweepAngle:   s.SweepAngle,
		}
	}
	return response
}
