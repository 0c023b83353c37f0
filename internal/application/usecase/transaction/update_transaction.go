package transaction

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// UpdateTransactionInput represents the input for transaction update.
type UpdateTransactionInput struct {
	ID    string
	Patch entity.TransactionPatch
}

// UpdateTransactionOutput represents the output of transaction update.
type UpdateTransactionOutput struct {
	Transaction entity.Transaction
}

// UpdateTransactionUseCase edits a copy of a transaction and replaces it in
// place.
type UpdateTransactionUseCase struct {
	editor   *editor.Editor[entity.Transaction]
	notifier *notify.Notifier
}

// NewUpdateTransactionUseCase creates a new UpdateTransactionUseCase instance.
func NewUpdateTransactionUseCase(editor *editor.Editor[entity.Transaction], notifier *notify.Notifier) *UpdateTransactionUseCase {
	return &UpdateTransactionUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the transaction update.
func (uc *UpdateTransactionUseCase) Execute(ctx context.Context, input UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	transaction, err := uc.editor.Edit(input.ID, input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Transaction updated", "Your transaction has been updated successfully")

	return &UpdateTransactionOutput{
		Transaction: transaction,
	}, nil
}
