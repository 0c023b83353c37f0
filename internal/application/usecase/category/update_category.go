package category

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/editor"
	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
)

// UpdateCategoryInput represents the input for category update. Name is the
// current name; renaming goes through Patch.Name.
type UpdateCategoryInput struct {
	Name  string
	Patch entity.CategoryPatch
}

// UpdateCategoryOutput represents the output of category update.
type UpdateCategoryOutput struct {
	Category entity.Category
}

// UpdateCategoryUseCase handles category update logic. Transactions keep
// the category string they were saved with.
type UpdateCategoryUseCase struct {
	editor   *editor.Editor[entity.Category]
	notifier *notify.Notifier
}

// NewUpdateCategoryUseCase creates a new UpdateCategoryUseCase instance.
func NewUpdateCategoryUseCase(editor *editor.Editor[entity.Category], notifier *notify.Notifier) *UpdateCategoryUseCase {
	return &UpdateCategoryUseCase{
		editor:   editor,
		notifier: notifier,
	}
}

// Execute performs the category update.
func (uc *UpdateCategoryUseCase) Execute(ctx context.Context, input UpdateCategoryInput) (*UpdateCategoryOutput, error) {
	category, err := uc.editor.Edit(input.Name, input.Patch.Apply)
	if err != nil {
		return nil, err
	}

	uc.notifier.Success(ctx, "Category updated", "Budget category "+category.Name+" has been updated")

	return &UpdateCategoryOutput{
		Category: category,
	}, nil
}
