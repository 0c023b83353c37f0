package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/finance"
)

// GetCategoryBreakdownOutput represents the spending pie chart.
type GetCategoryBreakdownOutput struct {
	TotalExpense decimal.Decimal
	Slices       []finance.PieSlice // Empty when nothing was spent
}

// GetCategoryBreakdownUseCase handles the spending breakdown by category.
type GetCategoryBreakdownUseCase struct {
	stores Stores
}

// NewGetCategoryBreakdownUseCase creates a new GetCategoryBreakdownUseCase instance.
func NewGetCategoryBreakdownUseCase(stores Stores) *GetCategoryBreakdownUseCase {
	return &GetCategoryBreakdownUseCase{
		stores: stores,
	}
}

// Execute computes the slices.
func (uc *GetCategoryBreakdownUseCase) Execute(_ context.Context) (*GetCategoryBreakdownOutput, error) {
	transactions := uc.stores.Transactions.List()
	summary := finance.Summarize(transactions)

	slices := finance.PieSlices(uc.stores.Categories.List(), transactions, summary.TotalExpense)
	if slices == nil {
		slices = []finance.PieSlice{}
	}

	return &GetCategoryBreakdownOutput{
		TotalExpense: summary.TotalExpense,
		Slices:       slices,
	}, nil
}
