package dto

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/application/usecase/transaction"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// TransactionRequest represents the request body for transaction create,
// update and draft edits.
type TransactionRequest struct {
	Description *string          `json:"description,omitempty"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Type        *string          `json:"type,omitempty"`
	Category    *string          `json:"category,omitempty"`
	Date        *string          `json:"date,omitempty"`
}

// ToPatch converts the request to a transaction patch.
func (r TransactionRequest) ToPatch() (entity.TransactionPatch, error) {
	date, err := parseDate("date", r.Date)
	if err != nil {
		return entity.TransactionPatch{}, err
	}

	patch := entity.TransactionPatch{
		Description: r.Description,
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        date,
	}
	if r.Type != nil {
		t := entity.TransactionType(*r.Type)
		patch.Type = &t
	}
	return patch, nil
}

// SplitTransactionRequest represents the request body for a split.
type SplitTransactionRequest struct {
	With   string           `json:"with"`
	Amount *decimal.Decimal `json:"amount,omitempty"`
}

// TransactionResponse represents a single transaction in API responses.
type TransactionResponse struct {
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Date        string          `json:"date"`
	SplitWith   []string        `json:"split_with,omitempty"`
	Splittable  bool            `json:"splittable"`
}

// TransactionListResponse represents the response for listing transactions.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
}

// SplitTransactionResponse represents the outcome of a split.
type SplitTransactionResponse struct {
	Source TransactionResponse `json:"source"`
	Split  TransactionResponse `json:"split"`
}

// ToTransactionResponse converts a domain Transaction entity to a
// TransactionResponse DTO.
func ToTransactionResponse(t entity.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		Description: t.Description,
		Amount:      t.Amount,
		Type:        string(t.Type),
		Category:    t.Category,
		Date:        formatDate(t.Date),
		SplitWith:   t.SplitWith,
		Splittable:  t.IsExpense(),
	}
}

// ToTransactionListResponse converts list items to a TransactionListResponse.
func ToTransactionListResponse(items []transaction.TransactionItem) TransactionListResponse {
	response := TransactionListResponse{Transactions: make([]TransactionResponse, len(items))}
	for i, item := range items {
		r := ToTransactionResponse(item.Transaction)
		r.Splittable = item.Splittable
		response.Transactions[i] = r
	}
	return response
}
