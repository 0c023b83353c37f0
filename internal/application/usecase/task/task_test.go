package task

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []entity.Message
}

func (p *recordingPublisher) Publish(_ context.Context, msg entity.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return nil
}

func (p *recordingPublisher) last() entity.Message {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.messages[len(p.messages)-1]
}

func ptr[T any](v T) *T { return &v }

func fixture() *store.Store[entity.Task] {
	return store.New(
		entity.Task{ID: "1", Title: "Complete project proposal", Priority: entity.TaskPriorityHigh, Status: entity.TaskStatusTodo},
		entity.Task{ID: "2", Title: "Review budget report", Priority: entity.TaskPriorityMedium, Status: entity.TaskStatusTodo},
		entity.Task{ID: "3", Title: "Team meeting notes", Description: "weekly", Priority: entity.TaskPriorityLow, Status: entity.TaskStatusCompleted},
		entity.Task{ID: "4", Title: "Update website content", Priority: entity.TaskPriorityMedium, Status: entity.TaskStatusInProgress},
	)
}

func TestListTasksUseCase(t *testing.T) {
	uc := NewListTasksUseCase(fixture())
	ctx := context.Background()

	tests := []struct {
		name  string
		input ListTasksInput
		ids   []string
	}{
		{name: "all in store order", input: ListTasksInput{}, ids: []string{"1", "2", "3", "4"}},
		{name: "text filter", input: ListTasksInput{Query: "REVIEW"}, ids: []string{"2"}},
		{name: "text filter on description", input: ListTasksInput{Query: "week"}, ids: []string{"3"}},
		{name: "status filter", input: ListTasksInput{Status: ptr(entity.TaskStatusTodo)}, ids: []string{"1", "2"}},
		{name: "both filters", input: ListTasksInput{Query: "proposal", Status: ptr(entity.TaskStatusTodo)}, ids: []string{"1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := uc.Execute(ctx, tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(out.Tasks) != len(tt.ids) {
				t.Fatalf("expected %d tasks, got %d", len(tt.ids), len(out.Tasks))
			}
			for i, id := range tt.ids {
				if out.Tasks[i].ID != id {
					t.Errorf("position %d: expected %s, got %s", i, id, out.Tasks[i].ID)
				}
			}
		})
	}

	t.Run("unknown status", func(t *testing.T) {
		_, err := uc.Execute(ctx, ListTasksInput{Status: ptr(entity.TaskStatus("done"))})
		if !errors.Is(err, domainerror.ErrInvalidTaskStatus) {
			t.Errorf("expected ErrInvalidTaskStatus, got %v", err)
		}
	})
}

func TestGetTaskBoardUseCase(t *testing.T) {
	out, err := NewGetTaskBoardUseCase(fixture()).Execute(context.Background(), GetTaskBoardInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]int{"todo": 2, "in-progress": 1, "completed": 1}
	if len(out.Columns) != 3 {
		t.Fatalf("expected 3 columns, got %d", len(out.Columns))
	}
	for _, col := range out.Columns {
		if col.Count != want[col.Key] {
			t.Errorf("column %s: expected %d, got %d", col.Key, want[col.Key], col.Count)
		}
	}
	if out.Columns[0].Key != "todo" || out.Columns[2].Key != "completed" {
		t.Errorf("unexpected column order: %s, %s", out.Columns[0].Key, out.Columns[2].Key)
	}
}

func TestCreateTaskUseCase(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults and notification", func(t *testing.T) {
		tasks := fixture()
		pub := &recordingPublisher{}
		uc := NewCreateTaskUseCase(NewEditor(tasks), notify.New(pub))

		out, err := uc.Execute(ctx, CreateTaskInput{Patch: entity.TaskPatch{Title: ptr("Write tests")}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Task.ID == "" {
			t.Error("expected an id to be assigned")
		}
		if out.Task.Priority != entity.TaskPriorityMedium || out.Task.Status != entity.TaskStatusTodo {
			t.Errorf("expected template defaults, got %s/%s", out.Task.Priority, out.Task.Status)
		}
		if tasks.Len() != 5 {
			t.Errorf("expected 5 tasks, got %d", tasks.Len())
		}
		list := tasks.List()
		if list[4].ID != out.Task.ID {
			t.Error("expected new task to be appended")
		}
		if msg := pub.last(); msg.Notification.Title != "Task added" {
			t.Errorf("unexpected notification %q", msg.Notification.Title)
		}
	})

	t.Run("empty title is blocked", func(t *testing.T) {
		tasks := fixture()
		uc := NewCreateTaskUseCase(NewEditor(tasks), notify.New(nil))

		_, err := uc.Execute(ctx, CreateTaskInput{})
		if !errors.Is(err, domainerror.ErrMissingRequiredFields) {
			t.Fatalf("expected ErrMissingRequiredFields, got %v", err)
		}
		if tasks.Len() != 4 {
			t.Errorf("expected store unchanged, got %d tasks", tasks.Len())
		}
	})

	t.Run("invalid priority", func(t *testing.T) {
		uc := NewCreateTaskUseCase(NewEditor(fixture()), notify.New(nil))
		_, err := uc.Execute(ctx, CreateTaskInput{Patch: entity.TaskPatch{
			Title:    ptr("x"),
			Priority: ptr(entity.TaskPriority("urgent")),
		}})
		if !errors.Is(err, domainerror.ErrInvalidTaskPriority) {
			t.Errorf("expected ErrInvalidTaskPriority, got %v", err)
		}
	})
}

func TestQuickAddTaskUseCase(t *testing.T) {
	tasks := fixture()
	uc := NewQuickAddTaskUseCase(NewEditor(tasks), notify.New(nil))

	out, err := uc.Execute(context.Background(), QuickAddTaskInput{Title: "Call bank"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.Priority != entity.TaskPriorityMedium || out.Task.Status != entity.TaskStatusTodo {
		t.Errorf("expected medium/todo, got %s/%s", out.Task.Priority, out.Task.Status)
	}

	if _, err := uc.Execute(context.Background(), QuickAddTaskInput{Title: "  "}); err == nil {
		t.Error("expected blank title to be refused")
	}
	if tasks.Len() != 5 {
		t.Errorf("expected 5 tasks, got %d", tasks.Len())
	}
}

func TestUpdateTaskUseCase(t *testing.T) {
	tasks := fixture()
	uc := NewUpdateTaskUseCase(NewEditor(tasks), notify.New(nil))

	out, err := uc.Execute(context.Background(), UpdateTaskInput{
		ID:    "2",
		Patch: entity.TaskPatch{Title: ptr("Review Q4 budget")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Task.ID != "2" || out.Task.Title != "Review Q4 budget" {
		t.Errorf("unexpected task %+v", out.Task)
	}
	if got := tasks.List()[1]; got.Title != "Review Q4 budget" {
		t.Errorf("expected in-place update, position 1 holds %q", got.Title)
	}

	_, err = uc.Execute(context.Background(), UpdateTaskInput{ID: "missing"})
	if !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestChangeTaskStatusUseCase(t *testing.T) {
	tasks := fixture()
	pub := &recordingPublisher{}
	uc := NewChangeTaskStatusUseCase(NewEditor(tasks), notify.New(pub))

	if _, err := uc.Execute(context.Background(), ChangeTaskStatusInput{ID: "1", Status: entity.TaskStatusInProgress}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := tasks.Get("1")
	if got.Status != entity.TaskStatusInProgress {
		t.Errorf("expected in-progress, got %s", got.Status)
	}
	if desc := pub.last().Notification.Description; desc != "Task moved to in progress" {
		t.Errorf("unexpected description %q", desc)
	}

	_, err := uc.Execute(context.Background(), ChangeTaskStatusInput{ID: "1", Status: "archived"})
	if !errors.Is(err, domainerror.ErrInvalidTaskStatus) {
		t.Errorf("expected ErrInvalidTaskStatus, got %v", err)
	}
}

func TestToggleTaskUseCase(t *testing.T) {
	tests := []struct {
		id   string
		want entity.TaskStatus
	}{
		{id: "1", want: entity.TaskStatusCompleted},
		{id: "3", want: entity.TaskStatusTodo},
		{id: "4", want: entity.TaskStatusCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			uc := NewToggleTaskUseCase(NewEditor(fixture()), notify.New(nil))
			out, err := uc.Execute(context.Background(), ToggleTaskInput{ID: tt.id})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Task.Status != tt.want {
				t.Errorf("expected %s, got %s", tt.want, out.Task.Status)
			}
		})
	}
}

func TestRelocateTaskUseCase(t *testing.T) {
	tasks := fixture()
	pub := &recordingPublisher{}
	notifier := notify.New(pub)
	uc := NewRelocateTaskUseCase(tasks, NewChangeTaskStatusUseCase(NewEditor(tasks), notifier), pub)

	out, err := uc.Execute(context.Background(), RelocateTaskInput{ID: "1", ToBucket: "completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := entity.RecordRelocated{ID: "1", FromBucket: "todo", ToBucket: "completed"}
	if out.Relocated != want {
		t.Errorf("expected %+v, got %+v", want, out.Relocated)
	}
	if got, _ := tasks.Get("1"); got.Status != entity.TaskStatusCompleted {
		t.Errorf("expected task to be completed, got %s", got.Status)
	}
	if msg := pub.last(); msg.Kind != entity.MessageKindRelocated {
		t.Errorf("expected relocation to be published last, got %s", msg.Kind)
	}

	_, err = uc.Execute(context.Background(), RelocateTaskInput{ID: "1", ToBucket: "archived"})
	if !errors.Is(err, domainerror.ErrUnknownBucket) {
		t.Errorf("expected ErrUnknownBucket, got %v", err)
	}
}

func TestDeleteTaskUseCase(t *testing.T) {
	tasks := fixture()
	pub := &recordingPublisher{}
	uc := NewDeleteTaskUseCase(tasks, notify.New(pub))

	if err := uc.Execute(context.Background(), DeleteTaskInput{ID: "2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tasks.Len() != 3 {
		t.Errorf("expected 3 tasks, got %d", tasks.Len())
	}
	if v := pub.last().Notification.Variant; v != entity.NotificationDestructive {
		t.Errorf("expected destructive notification, got %s", v)
	}

	err := uc.Execute(context.Background(), DeleteTaskInput{ID: "2"})
	if !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}
