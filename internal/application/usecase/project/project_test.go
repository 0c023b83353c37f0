package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

func ptr[T any](v T) *T { return &v }

func fixture() *store.Store[entity.Project] {
	due := time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)
	return store.New(
		entity.Project{ID: "1", Name: "Marketing Campaign", Description: "Q4 social media and content marketing campaign", Progress: 75, DueDate: due, Status: entity.ProjectStatusActive, TeamSize: 4, TasksCompleted: 15, TotalTasks: 20},
		entity.Project{ID: "2", Name: "Product Launch", Description: "New product line launch and marketing materials", Progress: 40, DueDate: due, Status: entity.ProjectStatusActive, TeamSize: 6, TasksCompleted: 8, TotalTasks: 20},
		entity.Project{ID: "3", Name: "Website Redesign", Description: "Complete overhaul of company website and brand refresh", Progress: 100, DueDate: due, Status: entity.ProjectStatusCompleted, TeamSize: 3, TasksCompleted: 12, TotalTasks: 12},
	)
}

func TestListProjectsUseCase(t *testing.T) {
	uc := NewListProjectsUseCase(fixture())

	tests := []struct {
		name  string
		input ListProjectsInput
		ids   []string
		err   error
	}{
		{name: "default", input: ListProjectsInput{}, ids: []string{"1", "2", "3"}},
		{name: "all", input: ListProjectsInput{Status: StatusAll}, ids: []string{"1", "2", "3"}},
		{name: "status", input: ListProjectsInput{Status: "completed"}, ids: []string{"3"}},
		{name: "description text", input: ListProjectsInput{Query: "marketing"}, ids: []string{"1", "2"}},
		{name: "text and status", input: ListProjectsInput{Query: "website", Status: "active"}, ids: []string{}},
		{name: "unknown status", input: ListProjectsInput{Status: "archived"}, err: domainerror.ErrInvalidProjectStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(context.Background(), tt.input)
			if tt.err != nil {
				if !errors.Is(err, tt.err) {
					t.Errorf("expected %v, got %v", tt.err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Projects) != len(tt.ids) {
				t.Fatalf("expected %d projects, got %d", len(tt.ids), len(out.Projects))
			}
			for i, id := range tt.ids {
				if out.Projects[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, out.Projects[i].ID)
				}
			}
		})
	}
}

func TestCreateProjectUseCase(t *testing.T) {
	due := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		patch entity.ProjectPatch
		want  error
	}{
		{name: "valid", patch: entity.ProjectPatch{Name: ptr("Docs"), DueDate: &due}},
		{name: "no due date", patch: entity.ProjectPatch{Name: ptr("Docs")}, want: domainerror.ErrMissingRequiredFields},
		{name: "progress above 100", patch: entity.ProjectPatch{Name: ptr("Docs"), DueDate: &due, Progress: ptr(101)}, want: domainerror.ErrInvalidProgress},
		{name: "empty team", patch: entity.ProjectPatch{Name: ptr("Docs"), DueDate: &due, TeamSize: ptr(0)}, want: domainerror.ErrInvalidTeamSize},
		{name: "negative counters", patch: entity.ProjectPatch{Name: ptr("Docs"), DueDate: &due, TotalTasks: ptr(-1)}, want: domainerror.ErrInvalidTaskCounters},
		{name: "unknown status", patch: entity.ProjectPatch{Name: ptr("Docs"), DueDate: &due, Status: ptr(entity.ProjectStatus("paused"))}, want: domainerror.ErrInvalidProjectStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projects := fixture()
			out, err := NewCreateProjectUseCase(NewEditor(projects), notify.New(nil)).Execute(context.Background(), CreateProjectInput{Patch: tt.patch})
			if tt.want != nil {
				if !errors.Is(err, tt.want) {
					t.Errorf("expected %v, got %v", tt.want, err)
				}
				if projects.Len() != 3 {
					t.Errorf("expected store unchanged, got %d", projects.Len())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Project.Status != entity.ProjectStatusActive || out.Project.TeamSize != 1 || out.Project.Progress != 0 {
				t.Errorf("expected template defaults, got %+v", out.Project)
			}
		})
	}
}

func TestUpdateProjectUseCase_ProgressIsManual(t *testing.T) {
	projects := fixture()
	out, err := NewUpdateProjectUseCase(NewEditor(projects), notify.New(nil)).Execute(context.Background(), UpdateProjectInput{
		ID:    "2",
		Patch: entity.ProjectPatch{TasksCompleted: ptr(20)},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Project.Progress != 40 {
		t.Errorf("expected progress to stay 40, got %d", out.Project.Progress)
	}
}

func TestDeleteProjectUseCase(t *testing.T) {
	projects := fixture()
	uc := NewDeleteProjectUseCase(projects, notify.New(nil))

	if err := uc.Execute(context.Background(), DeleteProjectInput{ID: "3"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := uc.Execute(context.Background(), DeleteProjectInput{ID: "3"}); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}
