package dto

import (
	"github.com/productivity-hub/backend/internal/application/board"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// TaskRequest represents the request body for task create, update and
// draft edits. Omitted fields are left unchanged; an empty due_date clears
// the due date.
type TaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty"`
	Status      *string `json:"status,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
}

// ToPatch converts the request to a task patch.
func (r TaskRequest) ToPatch() (entity.TaskPatch, error) {
	due, err := parseDate("due_date", r.DueDate)
	if err != nil {
		return entity.TaskPatch{}, err
	}

	patch := entity.TaskPatch{
		Title:       r.Title,
		Description: r.Description,
		DueDate:     due,
	}
	if r.Priority != nil {
		p := entity.TaskPriority(*r.Priority)
		patch.Priority = &p
	}
	if r.Status != nil {
		s := entity.TaskStatus(*r.Status)
		patch.Status = &s
	}
	return patch, nil
}

// QuickAddTaskRequest represents the request body for quick-add.
type QuickAddTaskRequest struct {
	Title string `json:"title"`
}

// ChangeTaskStatusRequest represents the request body for a status change.
type ChangeTaskStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// DropRequest represents a drop on the task board.
type DropRequest struct {
	ID string `json:"id" binding:"required"`
	To string `json:"to" binding:"required"`
}

// TaskResponse represents a single task in API responses.
type TaskResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date,omitempty"`
}

// TaskListResponse represents the response for listing tasks.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
}

// BoardColumnResponse represents one column of the task board.
type BoardColumnResponse struct {
	Status string         `json:"status"`
	Count  int            `json:"count"`
	Tasks  []TaskResponse `json:"tasks"`
}

// BoardResponse represents the task board.
type BoardResponse struct {
	Columns []BoardColumnResponse `json:"columns"`
}

// RelocatedResponse represents the outcome of a drop.
type RelocatedResponse struct {
	ID         string `json:"id"`
	FromBucket string `json:"from_bucket"`
	ToBucket   string `json:"to_bucket"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(t entity.Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Priority:    string(t.Priority),
		Status:      string(t.Status),
		DueDate:     formatDate(t.DueDate),
	}
}

// ToTaskListResponse converts tasks to a TaskListResponse.
func ToTaskListResponse(tasks []entity.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskResponse(t)
	}
	return TaskListResponse{Tasks: items}
}

// ToBoardResponse converts board buckets to a BoardResponse.
func ToBoardResponse(columns []board.Bucket[entity.Task]) BoardResponse {
	response := BoardResponse{Columns: make([]BoardColumnResponse, len(columns))}
	for i, col := range columns {
		response.Columns[i] = BoardColumnResponse{
			Status: col.Key,
			Count:  col.Count,
			Tasks:  ToTaskListResponse(col.Items).Tasks,
		}
	}
	return response
}

// ToRelocatedResponse converts a relocation to a RelocatedResponse.
func ToRelocatedResponse(r entity.RecordRelocated) RelocatedResponse {
	return RelocatedResponse{
		ID:         r.ID,
		FromBucket: r.FromBucket,
		ToBucket:   r.ToBucket,
	}
}
