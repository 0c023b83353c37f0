package editor

import (
	"errors"
	"testing"
	"time"

	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

func newTaskEditor(seed ...entity.Task) *Editor[entity.Task] {
	s := store.New(seed...)
	return New("task", s, func() entity.Task { return entity.NewTask("") })
}

func setTitle(title string) func(entity.Task) entity.Task {
	return func(t entity.Task) entity.Task {
		t.Title = title
		return t
	}
}

func TestEditor_BeginAdd(t *testing.T) {
	e := newTaskEditor()

	d := e.BeginAdd()
	if d.State != StateOpen {
		t.Errorf("expected open draft, got %s", d.State)
	}
	if d.Mode != ModeCreate {
		t.Errorf("expected create mode, got %s", d.Mode)
	}
	if d.Record.ID != "" {
		t.Errorf("expected empty id, got %q", d.Record.ID)
	}
	if d.Record.Status != entity.TaskStatusTodo || d.Record.Priority != entity.TaskPriorityMedium {
		t.Errorf("expected todo/medium defaults, got %s/%s", d.Record.Status, d.Record.Priority)
	}
	if d.CanSave() {
		t.Error("expected a draft without a title to be unsaveable")
	}
}

func TestEditor_UpdateIsImmutable(t *testing.T) {
	e := newTaskEditor(entity.Task{ID: "1", Title: "original", Status: entity.TaskStatusTodo})

	d, err := e.BeginEdit("1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := e.Update(d.Handle, setTitle("changed"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Record.Title != "changed" {
		t.Errorf("expected draft title changed, got %q", updated.Record.Title)
	}
	if d.Record.Title != "original" {
		t.Error("expected earlier draft snapshot to be untouched")
	}

	stored, _ := e.Store().Get("1")
	if stored.Title != "original" {
		t.Errorf("expected store untouched before commit, got %q", stored.Title)
	}
}

func TestEditor_CommitCreate(t *testing.T) {
	e := newTaskEditor(entity.Task{ID: "1", Title: "existing"})

	d := e.BeginAdd()
	if _, err := e.Update(d.Handle, setTitle("new task")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	saved, mode, err := e.Commit(d.Handle)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != ModeCreate {
		t.Errorf("expected create, got %s", mode)
	}
	if saved.ID == "" {
		t.Error("expected a generated id")
	}

	list := e.Store().List()
	if len(list) != 2 || list[1].Title != "new task" {
		t.Fatalf("expected new task appended, got %+v", list)
	}

	if _, err := e.Get(d.Handle); !errors.Is(err, domainerror.ErrDraftNotFound) {
		t.Errorf("expected committed draft to be closed, got %v", err)
	}
}

func TestEditor_CommitEditKeepsPosition(t *testing.T) {
	e := newTaskEditor(
		entity.Task{ID: "1", Title: "a"},
		entity.Task{ID: "2", Title: "b"},
		entity.Task{ID: "3", Title: "c"},
	)

	saved, err := e.Edit("2", setTitle("b2"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.ID != "2" {
		t.Errorf("expected id 2 kept, got %s", saved.ID)
	}

	list := e.Store().List()
	if list[1].Title != "b2" || len(list) != 3 {
		t.Errorf("expected in-place replacement, got %+v", list)
	}
}

func TestEditor_CommitBlockedOnMissingFields(t *testing.T) {
	e := newTaskEditor()

	d := e.BeginAdd()
	_, _, err := e.Commit(d.Handle)

	var recErr *domainerror.RecordError
	if !errors.As(err, &recErr) {
		t.Fatalf("expected RecordError, got %v", err)
	}
	if recErr.Code != domainerror.ErrCodeMissingRequiredFields {
		t.Errorf("expected missing fields code, got %s", recErr.Code)
	}
	if len(recErr.Fields) != 1 || recErr.Fields[0] != "title" {
		t.Errorf("expected [title], got %v", recErr.Fields)
	}
	if e.Store().Len() != 0 {
		t.Error("expected store untouched")
	}

	still, err := e.Get(d.Handle)
	if err != nil || still.State != StateOpen {
		t.Errorf("expected draft to stay open, got %v %v", still.State, err)
	}
}

func TestEditor_ProjectWithoutDueDateCannotSave(t *testing.T) {
	s := store.New[entity.Project]()
	e := New("project", s, entity.NewProject)

	d := e.BeginAdd()
	d, _ = e.Update(d.Handle, func(p entity.Project) entity.Project {
		p.Name = "Launch"
		p.Description = "Everything else is valid"
		p.Progress = 10
		p.TeamSize = 3
		return p
	})
	if d.CanSave() {
		t.Fatal("expected save to be disabled without a due date")
	}
	if _, _, err := e.Commit(d.Handle); !errors.Is(err, domainerror.ErrMissingRequiredFields) {
		t.Errorf("expected ErrMissingRequiredFields, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("expected no project stored")
	}
}

func TestEditor_ValidatorRefusesCommit(t *testing.T) {
	boom := errors.New("invalid")
	s := store.New[entity.Task]()
	e := New("task", s, func() entity.Task { return entity.NewTask("") },
		WithValidator(func(task entity.Task, _ string) error {
			if task.Title == "bad" {
				return boom
			}
			return nil
		}),
	)

	if _, err := e.Create(setTitle("bad")); !errors.Is(err, boom) {
		t.Errorf("expected validator error, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("expected nothing stored")
	}
	if e.Open() != 0 {
		t.Errorf("expected refused one-step create to discard its draft, %d open", e.Open())
	}
}

func TestEditor_Discard(t *testing.T) {
	e := newTaskEditor(entity.Task{ID: "1", Title: "keep"})

	d, _ := e.BeginEdit("1")
	_, _ = e.Update(d.Handle, setTitle("throw away"))

	if !e.Discard(d.Handle) {
		t.Error("expected discard to succeed")
	}
	if e.Discard(d.Handle) {
		t.Error("expected second discard to be a no-op")
	}

	stored, _ := e.Store().Get("1")
	if stored.Title != "keep" {
		t.Errorf("expected store untouched, got %q", stored.Title)
	}
}

func TestEditor_BeginEditMissingRecord(t *testing.T) {
	e := newTaskEditor()

	if _, err := e.BeginEdit("nope"); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestEditor_CommitAfterSourceRemoved(t *testing.T) {
	e := newTaskEditor(entity.Task{ID: "1", Title: "a"})

	d, _ := e.BeginEdit("1")
	e.Store().Remove("1")

	if _, _, err := e.Commit(d.Handle); !errors.Is(err, domainerror.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
	if e.Store().Len() != 0 {
		t.Error("expected removed record not to be resurrected")
	}
}

func TestEditor_Expire(t *testing.T) {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }

	s := store.New[entity.Task]()
	e := New("task", s, func() entity.Task { return entity.NewTask("") }, WithClock[entity.Task](clock))

	old := e.BeginAdd()
	now = now.Add(time.Hour)
	fresh := e.BeginAdd()

	if n := e.Expire(now.Add(-30 * time.Minute)); n != 1 {
		t.Fatalf("expected 1 expired draft, got %d", n)
	}
	if _, err := e.Get(old.Handle); err == nil {
		t.Error("expected old draft to be expired")
	}
	if _, err := e.Get(fresh.Handle); err != nil {
		t.Errorf("expected fresh draft to remain, got %v", err)
	}
}

func TestEditor_CommitConflictKeepsDraftOpen(t *testing.T) {
	categories := store.New[entity.Category]()
	e := New("category", categories, entity.NewCategory)
	name := func(c entity.Category) entity.Category {
		c.Name = "Travel"
		return c
	}

	first, second := e.BeginAdd(), e.BeginAdd()
	if _, err := e.Update(first.Handle, name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Update(second.Handle, name); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, _, err := e.Commit(first.Handle); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, _, err := e.Commit(second.Handle)
	if !errors.Is(err, domainerror.ErrRecordExists) {
		t.Fatalf("expected ErrRecordExists, got %v", err)
	}
	if categories.Len() != 1 {
		t.Errorf("expected one stored category, got %d", categories.Len())
	}
	d, err := e.Get(second.Handle)
	if err != nil || d.State != StateOpen {
		t.Errorf("expected the refused draft to stay open, got %+v, %v", d, err)
	}
}
