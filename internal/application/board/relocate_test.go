package board

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

type recordingPublisher struct {
	mu       sync.Mutex
	messages []entity.Message
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, msg entity.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, msg)
	return p.err
}

type moveCall struct {
	id string
	to string
}

func newTaskRelocator(s *store.Store[entity.Task], calls *[]moveCall, pub *recordingPublisher) *Relocator {
	keys := []string{"todo", "in-progress", "completed"}
	locate := func(id string) (string, bool) {
		task, ok := s.Get(id)
		return string(task.Status), ok
	}
	move := func(_ context.Context, id, to string) error {
		*calls = append(*calls, moveCall{id: id, to: to})
		_, err := s.Update(id, func(t entity.Task) entity.Task {
			t.Status = entity.TaskStatus(to)
			return t
		})
		return err
	}
	return NewRelocator("task", keys, locate, move, pub)
}

func TestRelocator_DropOnCompleted(t *testing.T) {
	s := store.New(entity.Task{ID: "T1", Title: "write", Status: entity.TaskStatusTodo})
	var calls []moveCall
	pub := &recordingPublisher{}
	r := newTaskRelocator(s, &calls, pub)

	event, err := r.Relocate(context.Background(), Drop{ID: "T1", ToBucket: "completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(calls) != 1 || calls[0] != (moveCall{id: "T1", to: "completed"}) {
		t.Fatalf("expected exactly one move (T1, completed), got %+v", calls)
	}
	if event.FromBucket != "todo" || event.ToBucket != "completed" {
		t.Errorf("unexpected event %+v", event)
	}

	completed := s.List(func(t entity.Task) bool { return t.Status == entity.TaskStatusCompleted })
	todo := s.List(func(t entity.Task) bool { return t.Status == entity.TaskStatusTodo })
	if len(completed) != 1 || completed[0].ID != "T1" {
		t.Errorf("expected [T1] completed, got %+v", completed)
	}
	if len(todo) != 0 {
		t.Errorf("expected no todo tasks, got %+v", todo)
	}

	if len(pub.messages) != 1 || pub.messages[0].Kind != entity.MessageKindRelocated {
		t.Fatalf("expected one relocation message, got %+v", pub.messages)
	}
	if pub.messages[0].Relocated.ID != "T1" {
		t.Errorf("expected relocation of T1, got %+v", pub.messages[0].Relocated)
	}
}

func TestRelocator_UnknownBucket(t *testing.T) {
	s := store.New(entity.Task{ID: "T1", Title: "write", Status: entity.TaskStatusTodo})
	var calls []moveCall
	r := newTaskRelocator(s, &calls, &recordingPublisher{})

	_, err := r.Relocate(context.Background(), Drop{ID: "T1", ToBucket: "archive"})
	if !errors.Is(err, domainerror.ErrUnknownBucket) {
		t.Errorf("expected ErrUnknownBucket, got %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("expected no move, got %+v", calls)
	}
}

func TestRelocator_UnknownRecord(t *testing.T) {
	s := store.New[entity.Task]()
	var calls []moveCall
	r := newTaskRelocator(s, &calls, &recordingPublisher{})

	_, err := r.Relocate(context.Background(), Drop{ID: "ghost", ToBucket: "todo"})
	if !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
	if len(calls) != 0 {
		t.Errorf("expected no move, got %+v", calls)
	}
}

func TestRelocator_PublishFailureDoesNotFailDrop(t *testing.T) {
	s := store.New(entity.Task{ID: "T1", Title: "write", Status: entity.TaskStatusTodo})
	var calls []moveCall
	pub := &recordingPublisher{err: errors.New("broker down")}
	r := newTaskRelocator(s, &calls, pub)

	if _, err := r.Relocate(context.Background(), Drop{ID: "T1", ToBucket: "in-progress"}); err != nil {
		t.Fatalf("expected publish failure to be swallowed, got %v", err)
	}
	task, _ := s.Get("T1")
	if task.Status != entity.TaskStatusInProgress {
		t.Errorf("expected in-progress, got %s", task.Status)
	}
}
