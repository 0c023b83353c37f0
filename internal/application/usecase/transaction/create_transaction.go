package transaction

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// CreateTransactionInput represents the input for transaction creation.
type CreateTransactionInput struct {
	Patch entity.TransactionPatch
}

// CreateTransactionOutput represents the output of transaction creation.
type CreateTransactionOutput struct {
	Transaction entity.Transaction
}

// CreateTransactionUseCase stages a transaction from the template and
// commits it.
type CreateTransactionUseCase struct {
	editor   *editor.Editor[entity.Transaction]
	notifier *notify.Notifier
}

// NewCreateTransactionUseCase creates a new CreateTransactionUseCase instance.
func NewCreateTransactionUseCase(editor *editor.Editor[entity.Transaction], notifier *notify.Notifier) *CreateTransactionUseCase {
	return &CreateTransactionUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the transaction creation.
func (uc *CreateTransactionUseCase) Execute(ctx context.Context, input CreateTransactionInput) (*CreateTransactionOutput, error) {
	transaction, err := uc.editor.Create(input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Transaction added", "Your transaction has been added successfully")

	return &CreateTransactionOutput{
		Transaction: transaction,
	}, nil
}
