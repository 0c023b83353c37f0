// Package error defines domain-specific errors for the Productivity Hub application.
package error

import "errors"

// Planner (tasks, projects, calendar) domain errors.
var (
	// ErrInvalidTaskPriority is returned when the priority is not low, medium or high.
	ErrInvalidTaskPriority = errors.New("invalid task priority")

	// ErrInvalidTaskStatus is returned when the status is not a task board bucket.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrInvalidProjectStatus is returned when the project status is unknown.
	ErrInvalidProjectStatus = errors.New("invalid project status")

	// ErrInvalidProgress is returned when project progress is outside 0..100.
	ErrInvalidProgress = errors.New("progress must be between 0 and 100")

	// ErrInvalidTeamSize is returned when a project has no team members.
	ErrInvalidTeamSize = errors.New("team size must be at least 1")

	// ErrInvalidTaskCounters is returned when task counters are negative.
	ErrInvalidTaskCounters = errors.New("task counters must not be negative")

	// ErrInvalidEventType is returned when the calendar event type is unknown.
	ErrInvalidEventType = errors.New("invalid event type")

	// ErrInvalidEventRange is returned when an event ends before it starts.
	ErrInvalidEventRange = errors.New("event ends before it starts")

	// ErrUnknownBucket is returned when a record is dropped onto an unknown board column.
	ErrUnknownBucket = errors.New("unknown bucket")
)

// PlannerErrorCode defines error codes for planner errors.
// Format: PLN-XXYYYY where XX is category and YYYY is specific error.
type PlannerErrorCode string

const (
	// Task errors (01XXXX)
	ErrCodeInvalidTaskPriority PlannerErrorCode = "PLN-010001"
	ErrCodeInvalidTaskStatus   PlannerErrorCode = "PLN-010002"
	ErrCodeUnknownBucket       PlannerErrorCode = "PLN-010003"

	// Project errors (02XXXX)
	ErrCodeInvalidProjectStatus PlannerErrorCode = "PLN-020001"
	ErrCodeInvalidProgress      PlannerErrorCode = "PLN-020002"
	ErrCodeInvalidTeamSize      PlannerErrorCode = "PLN-020003"
	ErrCodeInvalidTaskCounters  PlannerErrorCode = "PLN-020004"

	// Calendar errors (03XXXX)
	ErrCodeInvalidEventType  PlannerErrorCode = "PLN-030001"
	ErrCodeInvalidEventRange PlannerErrorCode = "PLN-030002"
)

// PlannerError represents a planner error with code and message.
type PlannerError struct {
	Code    PlannerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PlannerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PlannerError) Unwrap() error {
	return e.Err
}

// NewPlannerError creates a new PlannerError with the given code and message.
func NewPlannerError(code PlannerErrorCode, message string, err error) *PlannerError {
	return &PlannerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
