package dto

import (
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// ProjectRequest represents the request body for project create, update
// and draft edits.
type ProjectRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Progress       *int    `json:"progress,omitempty"`
	DueDate        *string `json:"due_date,omitempty"`
	Status         *string `json:"status,omitempty"`
	TeamSize       *int    `json:"team_size,omitempty"`
	TasksCompleted *int    `json:"tasks_completed,omitempty"`
	TotalTasks     *int    `json:"total_tasks,omitempty"`
}

// ToPatch converts the request to a project patch.
func (r ProjectRequest) ToPatch() (entity.ProjectPatch, error) {
	due, err := parseDate("due_date", r.DueDate)
	if err != nil {
		return entity.ProjectPatch{}, err
	}

	patch := entity.ProjectPatch{
		Name:           r.Name,
		Description:    r.Description,
		Progress:       r.Progress,
		DueDate:        due,
		TeamSize:       r.TeamSize,
		TasksCompleted: r.TasksCompleted,
		TotalTasks:     r.TotalTasks,
	}
	if r.Status != nil {
		s := entity.ProjectStatus(*r.Status)
		patch.Status = &s
	}
	return patch, nil
}

// ProjectResponse represents a single project in API responses.
type ProjectResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Progress       int    `json:"progress"`
	DueDate        string `json:"due_date"`
	Status         string `json:"status"`
	TeamSize       int    `json:"team_size"`
	TasksCompleted int    `json:"tasks_completed"`
	TotalTasks     int    `json:"total_tasks"`
}

// ProjectListResponse represents the response for listing projects.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

// ToProjectResponse converts a domain Project entity to a ProjectResponse DTO.
func ToProjectResponse(p entity.Project) ProjectResponse {
	return ProjectResponse{
		ID:             p.ID,
		Name:           p.Name,
		Description:    p.Description,
		Progress:       p.Progress,
		DueDate:        formatDate(p.DueDate),
		Status:         string(p.Status),
		TeamSize:       p.TeamSize,
		TasksCompleted: p.TasksCompleted,
		TotalTasks:     p.TotalTasks,
	}
}

// ToProjectListResponse converts projects to a ProjectListResponse.
func ToProjectListResponse(projects []entity.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i, p := range projects {
		items[i] = ToProjectResponse(p)
	}
	return ProjectListResponse{Projects: items}
}
