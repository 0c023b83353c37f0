// Package transaction contains transaction-related use cases.
package transaction

import (
	"slices"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// Kind names transaction records in drafts and errors.
const Kind = "transaction"

// NewEditor creates the transaction editor over s. Categories are checked
// against the names in categories.
func NewEditor(s *store.Store[entity.Transaction], categories *store.Store[entity.Category]) *editor.Editor[entity.Transaction] {
	return editor.New(Kind, s, entity.NewTransaction,
		editor.WithValidator(NewValidator(s, categories)),
	)
}

// NewValidator returns the commit check for transactions in s: a known type,
// a non-negative amount and a category offered for the type. An edit may
// keep the category its source already has, even if that category has
// since been renamed or deleted.
func NewValidator(s *store.Store[entity.Transaction], categories *store.Store[entity.Category]) editor.Validator[entity.Transaction] {
	return func(t entity.Transaction, sourceID string) error {
		if !entity.IsValidTransactionType(t.Type) {
			return domainerror.NewFinanceError(
				domainerror.ErrCodeInvalidTransactionType,
				"type must be 'income' or 'expense'",
				domainerror.ErrInvalidTransactionType,
			)
		}
		if t.Amount.IsNegative() {
			return domainerror.NewFinanceError(
				domainerror.ErrCodeNegativeAmount,
				"amount must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		if sourceID != "" {
			if source, ok := s.Get(sourceID); ok && source.Category == t.Category {
				return nil
			}
		}
		if !knownCategory(categories, t) {
			return domainerror.NewFinanceError(
				domainerror.ErrCodeUnknownCategory,
				"category "+t.Category+" is not available for "+string(t.Type),
				domainerror.ErrUnknownCategory,
			)
		}
		return nil
	}
}

// knownCategory reports whether t's category is offered for its type:
// the fixed income list for income, the budget categories and Other for
// expenses.
func knownCategory(categories *store.Store[entity.Category], t entity.Transaction) bool {
	if t.Type == entity.TransactionTypeIncome {
		return slices.Contains(entity.IncomeCategories, t.Category)
	}
	if t.Category == entity.SplitCategory {
		return true
	}
	_, ok := categories.Get(t.Category)
	return ok
}
