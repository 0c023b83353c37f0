package category

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// CreateCategoryInput represents the input for category creation.
type CreateCategoryInput struct {
	Patch entity.CategoryPatch
}

// CreateCategoryOutput represents the output of category creation.
type CreateCategoryOutput struct {
	Category entity.Category
}

// CreateCategoryUseCase handles category creation logic.
type CreateCategoryUseCase struct {
	editor   *editor.Editor[entity.Category]
	notifier *notify.Notifier
}

// NewCreateCategoryUseCase creates a new CreateCategoryUseCase instance.
func NewCreateCategoryUseCase(editor *editor.Editor[entity.Category], notifier *notify.Notifier) *CreateCategoryUseCase {
	return &CreateCategoryUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the category creation.
func (uc *CreateCategoryUseCase) Execute(ctx context.Context, input CreateCategoryInput) (*CreateCategoryOutput, error) {
	category, err := uc.editor.Create(input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Category added", "Budget category "+category.Name+" has been added")

	return &CreateCategoryOutput{
		Category: category,
	}, nil
}
