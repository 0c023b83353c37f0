package transaction

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/finance"
)

// SplitTransactionInput represents the input for splitting an expense.
type SplitTransactionInput struct {
	ID     string
	With   string
	Amount *decimal.Decimal // Optional, defaults to half the expense
}

// SplitTransactionOutput represents the output of a split.
type SplitTransactionOutput struct {
	Source entity.Transaction // Unchanged
	Split  entity.Transaction // The new income transaction
}

// SplitTransactionUseCase records the share another person owes for an
// expense as a new income transaction. The expense itself is not touched.
type SplitTransactionUseCase struct {
	editor   *editor.Editor[entity.Transaction]
	notifier *notify.Notifier
}

// NewSplitTransactionUseCase creates a new SplitTransactionUseCase instance.
func NewSplitTransactionUseCase(editor *editor.Editor[entity.Transaction], notifier *notify.Notifier) *SplitTransactionUseCase {
	return &SplitTransactionUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the split.
func (uc *SplitTransactionUseCase) Execute(ctx context.Context, input SplitTransactionInput) (*SplitTransactionOutput, error) {
	source, ok := uc.editor.Store().Get(input.ID)
	if !ok {
		return nil, domainerror.NewNotFoundError(Kind, input.ID)
	}

	if !source.IsExpense() {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeSplitNotExpense,
			"only expenses can be split",
			domainerror.ErrSplitNotExpense,
		)
	}

	with := strings.TrimSpace(input.With)
	if with == "" {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeMissingSplitParticipant,
			"name the person to split with",
			domainerror.ErrMissingSplitParticipant,
		)
	}

	amount := source.Amount.Div(decimal.NewFromInt(2))
	if input.Amount != nil {
		amount = *input.Amount
	}
	if !amount.IsPositive() || amount.GreaterThan(source.Amount) {
		return nil, domainerror.NewFinanceError(
			domainerror.ErrCodeInvalidSplitAmount,
			"split amount must be greater than zero and at most "+finance.FormatAmount(source.Amount),
			domainerror.ErrInvalidSplitAmount,
		)
	}

	split, err := uc.editor.CreateFrom(entity.NewTransaction(), func(t entity.Transaction) entity.Transaction {
		t.Description = fmt.Sprintf("Split from %s (%s)", source.Description, with)
		t.Amount = amount
		t.Type = entity.TransactionTypeIncome
		t.Category = entity.SplitCategory
		t.Date = entity.Today()
		t.SplitWith = []string{with}
		return t
	})
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Split created",
		fmt.Sprintf("Split created with %s for %s", with, finance.FormatAmount(amount)))

	return &SplitTransactionOutput{
		Source: source,
		Split:  split,
	}, nil
}
