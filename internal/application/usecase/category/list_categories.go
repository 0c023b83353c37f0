package category

import (
	"context"

	"github.com/productivity-hub/backend/internal/domain/entity"
	"github.com/productivity-hub/backend/internal/domain/finance"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// ListCategoriesOutput represents the output of listing categories.
type ListCategoriesOutput struct {
	Categories []entity.Category // Spent derived from the current transactions
}

// ListCategoriesUseCase handles listing categories.
type ListCategoriesUseCase struct {
	categories   *store.Store[entity.Category]
	transactions *store.Store[entity.Transaction]
}

// NewListCategoriesUseCase creates a new ListCategoriesUseCase instance.
func NewListCategoriesUseCase(categories *store.Store[entity.Category], transactions *store.Store[entity.Transaction]) *ListCategoriesUseCase {
	return &ListCategoriesUseCase{
		categories:   categories,
		transactions: transactions,
	}
}

// Execute performs the category listing.
func (uc *ListCategoriesUseCase) Execute(_ context.Context) (*ListCategoriesOutput, error) {
	return &ListCategoriesOutput{
		Categories: finance.WithSpent(uc.categories.List(), uc.transactions.List()),
	}, nil
}
