package dto

import (
	"time"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

// EventRequest represents the request body for event create, update and
// draft edits. Date-times are RFC3339; an empty end_date clears the end.
type EventRequest struct {
	Title        *string  `json:"title,omitempty"`
	Description  *string  `json:"description,omitempty"`
	StartDate    *string  `json:"start_date,omitempty"`
	EndDate      *string  `json:"end_date,omitempty"`
	Type         *string  `json:"type,omitempty"`
	Participants []string `json:"participants,omitempty"`
}

// ToPatch converts the request to an event patch.
func (r EventRequest) ToPatch() (entity.CalendarEventPatch, error) {
	start, err := parseDateTime("start_date", r.StartDate)
	if err != nil {
		return entity.CalendarEventPatch{}, err
	}
	end, err := parseDateTime("end_date", r.EndDate)
	if err != nil {
		return entity.CalendarEventPatch{}, err
	}

	patch := entity.CalendarEventPatch{
		Title:        r.Title,
		Description:  r.Description,
		StartDate:    start,
		EndDate:      end,
		ClearEndDate: r.EndDate != nil && *r.EndDate == "",
		Participants: r.Participants,
	}
	if r.Type != nil {
		t := entity.CalendarEventType(*r.Type)
		patch.Type = &t
	}
	return patch, nil
}

// CreateEventRequest adds the selected calendar day to an event request.
type CreateEventRequest struct {
	EventRequest
	Day *string `json:"day,omitempty"`
}

// ParseDay returns the selected day, or the zero time when none is given.
func (r CreateEventRequest) ParseDay() (time.Time, error) {
	day, err := parseDate("day", r.Day)
	if err != nil || day == nil {
		return time.Time{}, err
	}
	return *day, nil
}

// EventResponse represents a single event in API responses.
type EventResponse struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Type         string     `json:"type"`
	Participants []string   `json:"participants,omitempty"`
}

// EventListResponse represents the response for listing events.
type EventListResponse struct {
	Events []EventResponse `json:"events"`
}

// EventDaysResponse lists the days of a month that have events.
type EventDaysResponse struct {
	Year  int   `json:"year"`
	Month int   `json:"month"`
	Days  []int `json:"days"`
}

// ToEventResponse converts a domain CalendarEvent entity to an EventResponse DTO.
func ToEventResponse(e entity.CalendarEvent) EventResponse {
	return EventResponse{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		StartDate:    e.StartDate,
		EndDate:      e.EndDate,
		Type:         string(e.Type),
		Participants: e.Participants,
	}
}

// ToEventListResponse converts events to an EventListResponse.
func ToEventListResponse(events []entity.CalendarEvent) EventListResponse {
	items := make([]EventResponse, len(events))
	for i, e := range events {
		items[i] = ToEventResponse(e)
	}
	return EventListResponse{Events: items}
}
