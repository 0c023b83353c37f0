// Package error defines domain-specific errors for the Productivity Hub application.
package error

import (
	"errors"
	"strings"
)

// Record store and editor errors.
var (
	// ErrRecordNotFound is returned when no record in a store matches an id.
	ErrRecordNotFound = errors.New("record not found")

	// ErrRecordExists is returned when a record would take an id already held by another.
	ErrRecordExists = errors.New("record already exists")

	// ErrMissingRequiredFields is returned when a draft is committed with empty required fields.
	ErrMissingRequiredFields = errors.New("missing required fields")

	// ErrDraftNotFound is returned when a draft handle is unknown or already closed.
	ErrDraftNotFound = errors.New("draft not found")

	// ErrDraftNotOpen is returned when a draft is edited or committed while it is saving.
	ErrDraftNotOpen = errors.New("draft is not open")

	// ErrUnknownDraftKind is returned when a draft is requested for an unknown record kind.
	ErrUnknownDraftKind = errors.New("unknown draft kind")
)

// RecordErrorCode defines error codes for store and editor errors.
// Format: REC-XXYYYY where XX is category and YYYY is specific error.
type RecordErrorCode string

const (
	// Store errors (01XXXX)
	ErrCodeRecordNotFound        RecordErrorCode = "REC-010001"
	ErrCodeMissingRequiredFields RecordErrorCode = "REC-010002"
	ErrCodeInvalidRecordID       RecordErrorCode = "REC-010003"
	ErrCodeRecordExists          RecordErrorCode = "REC-010004"

	// Draft errors (02XXXX)
	ErrCodeDraftNotFound    RecordErrorCode = "REC-020001"
	ErrCodeDraftNotOpen     RecordErrorCode = "REC-020002"
	ErrCodeUnknownDraftKind RecordErrorCode = "REC-020003"
	ErrCodeInvalidDraftBody RecordErrorCode = "REC-020004"
)

// RecordError represents a store or editor error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Fields  []string // Missing required fields, when relevant
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg += " (" + strings.Join(e.Fields, ", ") + ")"
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// NewMissingFieldsError reports the required fields blocking a save.
func NewMissingFieldsError(fields []string) *RecordError {
	return &RecordError{
		Code:    ErrCodeMissingRequiredFields,
		Message: "required fields are empty",
		Fields:  fields,
		Err:     ErrMissingRequiredFields,
	}
}

// NewNotFoundError reports a missing record.
func NewNotFoundError(kind, id string) *RecordError {
	return &RecordError{
		Code:    ErrCodeRecordNotFound,
		Message: kind + " " + id + " not found",
		Err:     ErrRecordNotFound,
	}
}

// NewExistsError reports an id collision in a store.
func NewExistsError(kind, id string) *RecordError {
	return &RecordError{
		Code:    ErrCodeRecordExists,
		Message: kind + " " + id + " already exists",
		Err:     ErrRecordExists,
	}
}
