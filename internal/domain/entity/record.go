// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire and fixture format for calendar dates.
const DateLayout = "2006-01-02"

// Record is implemented by every entity held in a record store.
type Record[T any] interface {
	// GetID returns the identity used by stores for update and removal.
	GetID() string

	// WithID returns a copy of the record carrying the given id.
	WithID(id string) T

	// MissingFields lists the required fields that are still empty.
	MissingFields() []string
}

// NewID generates a record id. Version 7 ids are ordered by creation time
// like the timestamps they replace, but carry random bits so two records
// created within the same millisecond never collide.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Today returns the current UTC date truncated to midnight.
func Today() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// SameDay reports whether a and b fall on the same calendar day in UTC.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
