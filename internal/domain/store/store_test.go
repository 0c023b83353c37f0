package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func titles(tasks []entity.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestStore_Add(t *testing.T) {
	s := NewWithIDGenerator(sequentialIDs(), entity.Task{ID: "seed", Title: "seeded"})

	t.Run("assigns an id when absent and appends", func(t *testing.T) {
		added := s.Add(entity.NewTask("first"))
		if added.ID != "id-1" {
			t.Errorf("expected id id-1, got %q", added.ID)
		}
		got := titles(s.List())
		want := []string{"seeded", "first"}
		if !equalStrings(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("keeps an existing id", func(t *testing.T) {
		added := s.Add(entity.Task{ID: "custom", Title: "second"})
		if added.ID != "custom" {
			t.Errorf("expected id custom, got %q", added.ID)
		}
	})

	t.Run("version increases", func(t *testing.T) {
		if s.Version() != 2 {
			t.Errorf("expected version 2, got %d", s.Version())
		}
	})
}

func TestStore_Update(t *testing.T) {
	s := NewWithIDGenerator(sequentialIDs(),
		entity.Task{ID: "a", Title: "A"},
		entity.Task{ID: "b", Title: "B"},
		entity.Task{ID: "c", Title: "C"},
	)

	t.Run("replaces in place", func(t *testing.T) {
		updated, err := s.Update("b", func(task entity.Task) entity.Task {
			task.Title = "B2"
			return task
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Title != "B2" {
			t.Errorf("expected B2, got %s", updated.Title)
		}
		want := []string{"A", "B2", "C"}
		if got := titles(s.List()); !equalStrings(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("missing id returns ErrRecordNotFound", func(t *testing.T) {
		before := s.Version()
		_, err := s.Update("zzz", func(task entity.Task) entity.Task { return task })
		if !errors.Is(err, domainerror.ErrRecordNotFound) {
			t.Errorf("expected ErrRecordNotFound, got %v", err)
		}
		if s.Version() != before {
			t.Error("expected version unchanged on failed update")
		}
	})
}

func TestStore_Remove(t *testing.T) {
	s := New(
		entity.Task{ID: "a", Title: "A"},
		entity.Task{ID: "b", Title: "B"},
		entity.Task{ID: "c", Title: "C"},
	)

	if !s.Remove("b") {
		t.Error("expected Remove to report true")
	}
	if s.Remove("b") {
		t.Error("expected second Remove to be a no-op")
	}

	want := []string{"A", "C"}
	if got := titles(s.List()); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
	if _, ok := s.Get("b"); ok {
		t.Error("expected removed record to be gone")
	}
}

func TestStore_ListWithPredicates(t *testing.T) {
	s := New(
		entity.Task{ID: "1", Title: "one", Status: entity.TaskStatusTodo, Priority: entity.TaskPriorityHigh},
		entity.Task{ID: "2", Title: "two", Status: entity.TaskStatusCompleted, Priority: entity.TaskPriorityHigh},
		entity.Task{ID: "3", Title: "three", Status: entity.TaskStatusTodo, Priority: entity.TaskPriorityLow},
	)

	todo := func(t entity.Task) bool { return t.Status == entity.TaskStatusTodo }
	high := func(t entity.Task) bool { return t.Priority == entity.TaskPriorityHigh }

	tests := []struct {
		name       string
		predicates []Predicate[entity.Task]
		want       []string
	}{
		{name: "no predicate", want: []string{"one", "two", "three"}},
		{name: "single predicate", predicates: []Predicate[entity.Task]{todo}, want: []string{"one", "three"}},
		{name: "all predicates must hold", predicates: []Predicate[entity.Task]{todo, high}, want: []string{"one"}},
		{name: "nil predicate ignored", predicates: []Predicate[entity.Task]{nil}, want: []string{"one", "two", "three"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(s.List(tt.predicates...))
			if !equalStrings(got, tt.want) {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestStore_ListReturnsCopy(t *testing.T) {
	s := New(entity.Task{ID: "1", Title: "one"})

	list := s.List()
	list[0].Title = "mutated"

	got, _ := s.Get("1")
	if got.Title != "one" {
		t.Errorf("expected store to be unaffected, got %q", got.Title)
	}
}

func TestStore_NetEffectOfMixedOperations(t *testing.T) {
	s := NewWithIDGenerator[entity.Task](sequentialIDs())

	a := s.Add(entity.NewTask("a"))
	b := s.Add(entity.NewTask("b"))
	c := s.Add(entity.NewTask("c"))
	s.Remove(a.ID)
	_, _ = s.Update(c.ID, func(task entity.Task) entity.Task {
		task.Title = "c2"
		return task
	})
	s.Add(entity.NewTask("d"))
	_, _ = s.Update(b.ID, func(task entity.Task) entity.Task {
		task.Title = "b2"
		return task
	})

	want := []string{"b2", "c2", "d"}
	if got := titles(s.List()); !equalStrings(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestStore_CategoryKeyedByName(t *testing.T) {
	s := New(entity.Category{Name: "Food"})

	added := s.Add(entity.Category{Name: "Housing"})
	if added.GetID() != "Housing" {
		t.Errorf("expected category keyed by name, got %q", added.GetID())
	}
	if _, ok := s.Get("Food"); !ok {
		t.Error("expected Food to be found by name")
	}
}

func TestStore_ConcurrentAdds(t *testing.T) {
	s := New[entity.Task]()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Add(entity.NewTask(fmt.Sprintf("task-%d", i)))
		}(i)
	}
	wg.Wait()

	if s.Len() != 50 {
		t.Fatalf("expected 50 records, got %d", s.Len())
	}

	seen := make(map[string]bool)
	for _, task := range s.List() {
		if seen[task.ID] {
			t.Fatalf("duplicate id %s", task.ID)
		}
		seen[task.ID] = true
	}
}

func TestStore_Insert(t *testing.T) {
	s := New(entity.Category{Name: "Food"})

	tests := []struct {
		name    string
		record  entity.Category
		wantErr error
		wantLen int
	}{
		{name: "new name", record: entity.Category{Name: "Housing"}, wantLen: 2},
		{name: "taken name", record: entity.Category{Name: "Food"}, wantErr: domainerror.ErrRecordExists, wantLen: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Insert(tt.record)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
			if s.Len() != tt.wantLen {
				t.Errorf("expected %d records, got %d", tt.wantLen, s.Len())
			}
		})
	}
}

func TestStore_ConcurrentInsertSameKey(t *testing.T) {
	s := New[entity.Category]()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		inserted int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Insert(entity.Category{Name: "Travel"}); err == nil {
				mu.Lock()
				inserted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if inserted != 1 || s.Len() != 1 {
		t.Errorf("expected exactly one insert, got %d (len %d)", inserted, s.Len())
	}
}

func TestStore_UpdateRejectsTakenKey(t *testing.T) {
	s := New(entity.Category{Name: "Food"}, entity.Category{Name: "Housing"})

	_, err := s.Update("Housing", func(c entity.Category) entity.Category {
		c.Name = "Food"
		return c
	})
	if !errors.Is(err, domainerror.ErrRecordExists) {
		t.Fatalf("expected ErrRecordExists, got %v", err)
	}
	if _, ok := s.Get("Housing"); !ok {
		t.Error("expected Housing to be kept")
	}

	renamed, err := s.Update("Housing", func(c entity.Category) entity.Category {
		c.Name = "Home"
		return c
	})
	if err != nil || renamed.Name != "Home" {
		t.Errorf("expected rename to Home, got %+v, %v", renamed, err)
	}
}
