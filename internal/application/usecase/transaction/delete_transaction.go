package transaction

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// DeleteTransactionInput represents the input for transaction deletion.
type DeleteTransactionInput struct {
	ID string
}

// DeleteTransactionUseCase removes a transaction.
type DeleteTransactionUseCase struct {
	transactions *store.Store[entity.Transaction]
	notifier     *notify.Notifier
}

// NewDeleteTransactionUseCase creates a new DeleteTransactionUseCase instance.
func NewDeleteTransactionUseCase(transactions *store.Store[entity.Transaction], notifier *notify.Notifier) *DeleteTransactionUseCase {
	return &DeleteTransactionUseCase{
		transactions: transactions,
		notifier:     notifier,
	}
}

// Execute performs the transaction deletion.
func (uc *DeleteTransactionUseCase) Execute(ctx context.Context, input DeleteTransactionInput) error {
	if !uc.transactions.Remove(input.ID) {
		return domainerror.NewNotFoundError(Kind, input.ID)
	}

	uc.notifier.Destructive(ctx, "Transaction deleted", "The transaction has been removed from your records")
	return nil
}
