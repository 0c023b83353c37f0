package dto

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/usecase/draft"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

func ptr[T any](v T) *T { return &v }

func TestTaskRequest_ToPatch(t *testing.T) {
	tests := []struct {
		name      string
		req       TaskRequest
		wantDue   *time.Time
		wantField string
	}{
		{name: "due date omitted", req: TaskRequest{Title: ptr("Plan")}},
		{name: "due date set", req: TaskRequest{DueDate: ptr("2024-03-01")}, wantDue: ptr(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))},
		{name: "empty due date clears", req: TaskRequest{DueDate: ptr("")}, wantDue: &time.Time{}},
		{name: "malformed due date", req: TaskRequest{DueDate: ptr("03/01/2024")}, wantField: "due_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			patch, err := tt.req.ToPatch()
			if tt.wantField != "" {
				var fieldErr *FieldError
				if !errors.As(err, &fieldErr) || fieldErr.Field != tt.wantField {
					t.Fatalf("expected field error on %s, got %v", tt.wantField, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			switch {
			case tt.wantDue == nil && patch.DueDate != nil:
				t.Errorf("expected no due date, got %v", patch.DueDate)
			case tt.wantDue != nil && (patch.DueDate == nil || !patch.DueDate.Equal(*tt.wantDue)):
				t.Errorf("expected due date %v, got %v", tt.wantDue, patch.DueDate)
			}
		})
	}
}

func TestEventRequest_ToPatch_ClearsEndDate(t *testing.T) {
	patch, err := EventRequest{EndDate: ptr("")}.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !patch.ClearEndDate || patch.EndDate != nil {
		t.Errorf("expected the end date to be cleared, got %+v", patch)
	}

	patch, err = EventRequest{EndDate: ptr("2024-03-01T15:00:00Z")}.ToPatch()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if patch.ClearEndDate || patch.EndDate == nil {
		t.Errorf("expected an end date, got %+v", patch)
	}
}

func TestDecodePatch(t *testing.T) {
	t.Run("task", func(t *testing.T) {
		got, err := DecodePatch("task", []byte(`{"title":"Plan","priority":"high"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		patch, ok := got.(entity.TaskPatch)
		if !ok {
			t.Fatalf("expected entity.TaskPatch, got %T", got)
		}
		if *patch.Title != "Plan" || *patch.Priority != entity.TaskPriorityHigh {
			t.Errorf("unexpected patch %+v", patch)
		}
	})

	t.Run("goal", func(t *testing.T) {
		got, err := DecodePatch("goal", []byte(`{"target_amount":"1500.50"}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		patch, ok := got.(entity.GoalPatch)
		if !ok {
			t.Fatalf("expected entity.GoalPatch, got %T", got)
		}
		if !patch.TargetAmount.Equal(decimal.RequireFromString("1500.50")) {
			t.Errorf("unexpected target amount %s", patch.TargetAmount)
		}
	})

	t.Run("malformed body", func(t *testing.T) {
		if _, err := DecodePatch("task", []byte(`{"title":`)); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("unknown kind", func(t *testing.T) {
		if _, err := DecodePatch("unicorn", []byte(`{}`)); err == nil {
			t.Error("expected error")
		}
	})
}

func TestToDraftResponse(t *testing.T) {
	v := &draft.View{
		Handle: "h1",
		Kind:   "task",
		Mode:   editor.ModeCreate,
		State:  editor.StateOpen,
		Record: entity.NewTask("Plan"),
	}

	got := ToDraftResponse(v)

	if got.Missing == nil || len(got.Missing) != 0 {
		t.Errorf("expected an empty missing list, got %v", got.Missing)
	}
	rec, ok := got.Record.(TaskResponse)
	if !ok {
		t.Fatalf("expected TaskResponse, got %T", got.Record)
	}
	if rec.Title != "Plan" || rec.Priority != "medium" || rec.DueDate != "" {
		t.Errorf("unexpected record %+v", rec)
	}
	if got.Mode != "create" || got.State != "open" {
		t.Errorf("unexpected mode/state %s/%s", got.Mode, got.State)
	}
}
