// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType represents the type of transaction (expense or income).
type TransactionType string

const (
	TransactionTypeExpense TransactionType = "expense"
	TransactionTypeIncome  TransactionType = "income"
)

// SplitCategory is the category assigned to income created by a split.
// It is offered for both transaction types.
const SplitCategory = "Other"

// IncomeCategories are the fixed categories offered for income.
var IncomeCategories = []string{"Salary", "Freelance", "Investments", SplitCategory}

// Transaction represents a ledger entry in the Finance module.
type Transaction struct {
	ID          string
	Description string
	Amount      decimal.Decimal // Always non-negative; Type carries the sign
	Type        TransactionType
	Category    string // Checked against known names on save; orphans are legal afterwards
	Date        time.Time
	SplitWith   []string
}

// NewTransaction returns the template used when a transaction is added.
func NewTransaction() Transaction {
	return Transaction{
		Amount: decimal.Zero,
		Type:   TransactionTypeExpense,
		Date:   Today(),
	}
}

// GetID implements Record.
func (t Transaction) GetID() string { return t.ID }

// WithID implements Record.
func (t Transaction) WithID(id string) Transaction {
	t.ID = id
	return t
}

// MissingFields implements Record.
func (t Transaction) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(t.Description) == "" {
		missing = append(missing, "description")
	}
	if !t.Amount.IsPositive() {
		missing = append(missing, "amount")
	}
	if strings.TrimSpace(t.Category) == "" {
		missing = append(missing, "category")
	}
	if t.Date.IsZero() {
		missing = append(missing, "date")
	}
	return missing
}

// IsExpense reports whether the transaction is an expense.
func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeExpense
}

// IsValidTransactionType reports whether tt is a known transaction type.
func IsValidTransactionType(tt TransactionType) bool {
	return tt == TransactionTypeExpense || tt == TransactionTypeIncome
}

// TransactionPatch carries optional field edits for a transaction draft.
type TransactionPatch struct {
	Description *string
	Amount      *decimal.Decimal
	Type        *TransactionType
	Category    *string
	Date        *time.Time
}

// Apply returns a copy of t with the patch applied.
func (p TransactionPatch) Apply(t Transaction) Transaction {
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Date != nil {
		t.Date = *p.Date
	}
	return t
}
