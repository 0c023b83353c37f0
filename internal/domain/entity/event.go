// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// CalendarEventType categorises calendar entries.
type CalendarEventType string

const (
	CalendarEventTask    CalendarEventType = "task"
	CalendarEventMeeting CalendarEventType = "meeting"
	CalendarEventFinance CalendarEventType = "finance"
	CalendarEventOther   CalendarEventType = "other"
)

// CalendarEvent represents an entry in the Calendar module.
type CalendarEvent struct {
	ID           string
	Title        string
	Description  string
	StartDate    time.Time
	EndDate      *time.Time
	Type         CalendarEventType
	Participants []string // Only meaningful for meetings
}

// NewCalendarEvent returns the template used when an event is added on the
// given day. New events start at noon.
func NewCalendarEvent(day time.Time) CalendarEvent {
	y, m, d := day.Date()
	return CalendarEvent{
		StartDate: time.Date(y, m, d, 12, 0, 0, 0, day.Location()),
		Type:      CalendarEventTask,
	}
}

// GetID implements Record.
func (e CalendarEvent) GetID() string { return e.ID }

// WithID implements Record.
func (e CalendarEvent) WithID(id string) CalendarEvent {
	e.ID = id
	return e
}

// MissingFields implements Record.
func (e CalendarEvent) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(e.Title) == "" {
		missing = append(missing, "title")
	}
	if e.StartDate.IsZero() {
		missing = append(missing, "start_date")
	}
	return missing
}

// IsValidCalendarEventType reports whether t is a known event type.
func IsValidCalendarEventType(t CalendarEventType) bool {
	switch t {
	case CalendarEventTask, CalendarEventMeeting, CalendarEventFinance, CalendarEventOther:
		return true
	}
	return false
}

// CalendarEventPatch carries optional field edits for an event draft.
type CalendarEventPatch struct {
	Title        *string
	Description  *string
	StartDate    *time.Time
	EndDate      *time.Time
	ClearEndDate bool
	Type         *CalendarEventType
	Participants []string
}

// Apply returns a copy of e with the patch applied.
func (p CalendarEventPatch) Apply(e CalendarEvent) CalendarEvent {
	if p.Title != nil {
		e.Title = *p.Title
	}
	if p.Description != nil {
		e.Description = *p.Description
	}
	if p.StartDate != nil {
		e.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		end := *p.EndDate
		e.EndDate = &end
	}
	if p.ClearEndDate {
		e.EndDate = nil
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.Participants != nil {
		e.Participants = append([]string(nil), p.Participants...)
	}
	return e
}
