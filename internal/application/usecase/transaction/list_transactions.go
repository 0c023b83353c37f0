package transaction

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/board"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// ListTransactionsInput represents the input for listing transactions.
type ListTransactionsInput struct {
	Query string                  // Matched against description and category
	Type  *entity.TransactionType // Optional
}

// TransactionItem is a list row. Only expenses offer the split action.
type TransactionItem struct {
	Transaction entity.Transaction
	Splittable  bool
}

// ListTransactionsOutput represents the output of listing transactions.
type ListTransactionsOutput struct {
	Transactions []TransactionItem
}

// ListTransactionsUseCase handles listing transactions in store order.
type ListTransactionsUseCase struct {
	transactions *store.Store[entity.Transaction]
}

// NewListTransactionsUseCase creates a new ListTransactionsUseCase instance.
func NewListTransactionsUseCase(transactions *store.Store[entity.Transaction]) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{
		transactions: transactions,
	}
}

// Execute performs the transaction listing.
func (uc *ListTransactionsUseCase) Execute(_ context.Context, input ListTransactionsInput) (*ListTransactionsOutput, error) {
	var byType store.Predicate[entity.Transaction]
	if input.Type != nil {
		if !entity.IsValidTransactionType(*input.Type) {
			return nil, domainerror.NewFinanceError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		tt := *input.Type
		byType = func(t entity.Transaction) bool { return t.Type == tt }
	}

	transactions := uc.transactions.List(byType, func(t entity.Transaction) bool {
		return board.MatchesText(input.Query, t.Description, t.Category)
	})

	output := &ListTransactionsOutput{
		Transactions: make([]TransactionItem, 0, len(transactions)),
	}
	for _, t := range transactions {
		output.Transactions = append(output.Transactions, TransactionItem{
			Transaction: t,
			Splittable:  t.IsExpense(),
		})
	}

	return output, nil
}
