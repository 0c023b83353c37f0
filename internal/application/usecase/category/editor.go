// Package category contains category-related use cases.
package category

import (
	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// Kind names category records in drafts and errors.
const Kind = "category"

// NewEditor creates the category editor over s. Names are unique: a draft
// may keep its own name but not take another category's.
func NewEditor(s *store.Store[entity.Category]) *editor.Editor[entity.Category] {
	return editor.New(Kind, s, entity.NewCategory,
		editor.WithValidator(NewValidator(s)),
		editor.WithConflict(nameExists),
	)
}

func nameExists(c entity.Category) error {
	return domainerror.NewFinanceError(
		domainerror.ErrCodeCategoryNameExists,
		"a category named "+c.Name+" already exists",
		domainerror.ErrCategoryNameExists,
	)
}

// NewValidator returns the commit check for categories in s.
func NewValidator(s *store.Store[entity.Category]) editor.Validator[entity.Category] {
	return func(c entity.Category, sourceID string) error {
		if c.Budget.IsNegative() {
			return domainerror.NewFinanceError(
				domainerror.ErrCodeNegativeAmount,
				"budget must not be negative",
				domainerror.ErrNegativeAmount,
			)
		}
		if c.Name == sourceID {
			return nil
		}
		if _, exists := s.Get(c.Name); exists {
			return nameExists(c)
		}
		return nil
	}
}
