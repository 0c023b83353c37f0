package draft

import (
	"context"
	"strings"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
)

// CommitDraftUseCase saves drafts into their store.
type CommitDraftUseCase struct {
	registry *Registry
	notifier *notify.Notifier
}

// NewCommitDraftUseCase creates a new CommitDraftUseCase instance.
func NewCommitDraftUseCase(registry *Registry, notifier *notify.Notifier) *CommitDraftUseCase {
	return &CommitDraftUseCase{
		registry: registry,
		notifier: notifier,
	}
}

// Execute commits the draft. A draft with empty required fields stays open
// and the error lists the fields.
func (uc *CommitDraftUseCase) Execute(ctx context.Context, input DraftInput) (*View, error) {
	desk, err := uc.registry.Desk(input.Kind)
	if err != nil {
		return nil, err
	}
	v, err := desk.Commit(input.Handle)
	if err != nil {
		return nil, err
	}

	title := capitalize(v.Kind) + " added"
	description := "Your " + v.Kind + " was added successfully"
	if v.Mode == editor.ModeEdit {
		title = capitalize(v.Kind) + " updated"
		description = "Your " + v.Kind + " was updated successfully"
	}
	uc.notifier.Success(ctx, title, description)

	return &v, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
