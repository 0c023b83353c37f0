// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"
)

// TaskPriority represents how urgent a task is.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// TaskStatus represents the board column a task belongs to.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// TaskStatuses lists the task board buckets in display order.
var TaskStatuses = []TaskStatus{TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted}

// Task represents a to-do item in the Tasks module.
type Task struct {
	ID          string
	Title       string
	Description string
	Priority    TaskPriority
	Status      TaskStatus
	DueDate     time.Time // Zero when the task has no due date
}

// NewTask returns the template used when a task is added. Quick-add tasks
// are this template with a title.
func NewTask(title string) Task {
	return Task{
		Title:    title,
		Priority: TaskPriorityMedium,
		Status:   TaskStatusTodo,
	}
}

// GetID implements Record.
func (t Task) GetID() string { return t.ID }

// WithID implements Record.
func (t Task) WithID(id string) Task {
	t.ID = id
	return t
}

// MissingFields implements Record.
func (t Task) MissingFields() []string {
	if strings.TrimSpace(t.Title) == "" {
		return []string{"title"}
	}
	return nil
}

// IsValidTaskPriority reports whether p is a known priority.
func IsValidTaskPriority(p TaskPriority) bool {
	return p == TaskPriorityLow || p == TaskPriorityMedium || p == TaskPriorityHigh
}

// IsValidTaskStatus reports whether s is a known status.
func IsValidTaskStatus(s TaskStatus) bool {
	for _, status := range TaskStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// TaskPatch carries optional field edits for a task draft.
type TaskPatch struct {
	Title       *string
	Description *string
	Priority    *TaskPriority
	Status      *TaskStatus
	DueDate     *time.Time
}

// Apply returns a copy of t with the patch applied.
func (p TaskPatch) Apply(t Task) Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.DueDate != nil {
		t.DueDate = *p.DueDate
	}
	return t
}
