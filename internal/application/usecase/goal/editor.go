// Package goal contains goal-related use cases.
package goal

import (
	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// Kind names goal records in drafts and errors.
const Kind = "goal"

// NewEditor creates the goal editor over s.
func NewEditor(s *store.Store[entity.Goal]) *editor.Editor[entity.Goal] {
	return editor.New(Kind, s, entity.NewGoal,
		editor.WithValidator(Validate),
	)
}

// Validate rejects negative amounts. A current amount above the target is
// allowed.
func Validate(g entity.Goal, _ string) error {
	if g.TargetAmount.IsNegative() || g.CurrentAmount.IsNegative() {
		return domainerror.NewFinanceError(
			domainerror.ErrCodeNegativeAmount,
			"goal amounts must not be negative",
			domainerror.ErrNegativeAmount,
		)
	}
	return nil
}
