// Package error defines domain-specific errors for the Productivity Hub application.
package error

import "errors"

// Finance domain errors.
var (
	// ErrCategoryNameExists is returned when attempting to create a category with an existing name.
	ErrCategoryNameExists = errors.New("category name already exists")

	// ErrInvalidTransactionType is returned when the transaction type is not income or expense.
	ErrInvalidTransactionType = errors.New("invalid transaction type")

	// ErrNegativeAmount is returned when a money amount is below zero.
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrUnknownCategory is returned when a transaction names a category that is not offered for its type.
	ErrUnknownCategory = errors.New("unknown category")

	// ErrSplitNotExpense is returned when splitting a transaction that is not an expense.
	ErrSplitNotExpense = errors.New("only expenses can be split")

	// ErrInvalidSplitAmount is returned when the split amount is not within (0, amount].
	ErrInvalidSplitAmount = errors.New("invalid split amount")

	// ErrMissingSplitParticipant is returned when no participant is named for a split.
	ErrMissingSplitParticipant = errors.New("split participant is required")
)

// FinanceErrorCode defines error codes for finance errors.
// Format: FIN-XXYYYY where XX is category and YYYY is specific error.
type FinanceErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTransactionType FinanceErrorCode = "FIN-010001"
	ErrCodeNegativeAmount         FinanceErrorCode = "FIN-010002"
	ErrCodeCategoryNameExists     FinanceErrorCode = "FIN-010003"
	ErrCodeUnknownCategory        FinanceErrorCode = "FIN-010004"

	// Split errors (02XXXX)
	ErrCodeSplitNotExpense         FinanceErrorCode = "FIN-020001"
	ErrCodeInvalidSplitAmount      FinanceErrorCode = "FIN-020002"
	ErrCodeMissingSplitParticipant FinanceErrorCode = "FIN-020003"
)

// FinanceError represents a finance error with code and message.
type FinanceError struct {
	Code    FinanceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *FinanceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *FinanceError) Unwrap() error {
	return e.Err
}

// NewFinanceError creates a new FinanceError with the given code and message.
func NewFinanceError(code FinanceErrorCode, message string, err error) *FinanceError {
	return &FinanceError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
