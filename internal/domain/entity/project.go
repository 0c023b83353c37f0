// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// ProjectStatus represents the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusOnHold    ProjectStatus = "on-hold"
)

// Project represents a tracked project. Progress is entered by hand and is
// not derived from the task counters.
type Project struct {
	ID             string
	Name           string
	Description    string
	Progress       int
	DueDate        time.Time
	Status         ProjectStatus
	TeamSize       int
	TasksCompleted int
	TotalTasks     int
}

// NewProject returns the template used when a project is added.
func NewProject() Project {
	return Project{
		Status:   ProjectStatusActive,
		TeamSize: 1,
	}
}

// GetID implements Record.
func (p Project) GetID() string { return p.ID }

// WithID implements Record.
func (p Project) WithID(id string) Project {
	p.ID = id
	return p
}

// MissingFields implements Record.
func (p Project) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(p.Name) == "" {
		missing = append(missing, "name")
	}
	if p.DueDate.IsZero() {
		missing = append(missing, "due_date")
	}
	return missing
}

// IsValidProjectStatus reports whether s is a known project status.
func IsValidProjectStatus(s ProjectStatus) bool {
	return s == ProjectStatusActive || s == ProjectStatusCompleted || s == ProjectStatusOnHold
}

// ProjectPatch carries optional field edits for a project draft.
type ProjectPatch struct {
	Name           *string
	Description    *string
	Progress       *int
	DueDate        *time.Time
	Status         *ProjectStatus
	TeamSize       *int
	TasksCompleted *int
	TotalTasks     *int
}

// Apply returns a copy of p with the patch applied.
func (pp ProjectPatch) Apply(p Project) Project {
	if pp.Name != nil {
		p.Name = *pp.Name
	}
	if pp.Description != nil {
		p.Description = *pp.Description
	}
	if pp.Progress != nil {
		p.Progress = *pp.Progress
	}
	if pp.DueDate != nil {
		p.DueDate = *pp.DueDate
	}
	if pp.Status != nil {
		p.Status = *pp.Status
	}
	if pp.TeamSize != nil {
		p.TeamSize = *pp.TeamSize
	}
	if pp.TasksCompleted != nil {
		p.TasksCompleted = *pp.TasksCompleted
	}
	if pp.TotalTasks != nil {
		p.TotalTasks = *pp.TotalTasks
	}
	return p
}
