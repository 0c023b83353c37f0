package dashboard

import (
	"context"

	"github.com/productivity-hub/backend/internal/domain/finance"
)

// GetFinanceSummaryOutput represents the income, expense and balance cards.
type GetFinanceSummaryOutput struct {
	Summary finance.Summary
}

// GetFinanceSummaryUseCase totals the transactions.
type GetFinanceSummaryUseCase struct {
	stores Stores
}

// NewGetFinanceSummaryUseCase creates a new GetFinanceSummaryUseCase instance.
func NewGetFinanceSummaryUseCase(stores Stores) *GetFinanceSummaryUseCase {
	return &GetFinanceSummaryUseCase{
		stores: stores,
	}
}

// Execute computes the summary.
func (uc *GetFinanceSummaryUseCase) Execute(_ context.Context) (*GetFinanceSummaryOutput, error) {
	return &GetFinanceSummaryOutput{
		Summary: finance.Summarize(uc.stores.Transactions.List()),
	}, nil
}
