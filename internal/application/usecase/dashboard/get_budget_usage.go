package dashboard

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/finance"
)

// GetBudgetUsageOutput represents the budget overview.
type GetBudgetUsageOutput struct {
	Budgets      []finance.BudgetUsage
	TotalBudget  decimal.Decimal
	TotalSpent   decimal.Decimal
	LabelPercent int64 // Share of the total budget spent, unclamped
}

// GetBudgetUsageUseCase computes per-category budget bars.
type GetBudgetUsageUseCase struct {
	stores Stores
}

// NewGetBudgetUsageUseCase creates a new GetBudgetUsageUseCase instance.
func NewGetBudgetUsageUseCase(stores Stores) *GetBudgetUsageUseCase {
	return &GetBudgetUsageUseCase{
		stores: stores,
	}
}

// Execute computes the budget usage.
func (uc *GetBudgetUsageUseCase) Execute(_ context.Context) (*GetBudgetUsageOutput, error) {
	usages := finance.BudgetUsages(uc.stores.Categories.List(), uc.stores.Transactions.List())

	totalBudget, totalSpent := decimal.Zero, decimal.Zero
	for _, u := range usages {
		totalBudget = totalBudget.Add(u.Category.Budget)
		totalSpent = totalSpent.Add(u.Category.Spent)
	}

	return &GetBudgetUsageOutput{
		Budgets:      usages,
		TotalBudget:  totalBudget,
		TotalSpent:   totalSpent,
		LabelPercent: finance.RoundPercent(finance.Percent(totalSpent, totalBudget)),
	}, nil
}
