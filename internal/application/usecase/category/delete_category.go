package category

import (
	"context"

	"github.com/productivity-hub/backend/internal/application/notify"
	"github.com/productivity-hub/backend/internal/domain/entity"
	domainerror "github.com/productivity-hub/backend/internal/domain/error"
	"github.com/productivity-hub/backend/internal/domain/store"
)

// DeleteCategoryInput represents the input for category deletion.
type DeleteCategoryInput struct {
	Name string
}

// DeleteCategoryUseCase removes a category. Transactions referencing it are
// kept and become orphans.
type DeleteCategoryUseCase struct {
	categories *store.Store[entity.Category]
	notifier   *notify.Notifier
}

// NewDeleteCategoryUseCase creates a new DeleteCategoryUseCase instance.
func NewDeleteCategoryUseCase(categories *store.Store[entity.Category], notifier *notify.Notifier) *DeleteCategoryUseCase {
	return &DeleteCategoryUseCase{
		categories: categories,
		notifier:   notifier,
	}
}

// Execute performs the category deletion.
func (uc *DeleteCategoryUseCase) Execute(ctx context.Context, input DeleteCategoryInput) error {
	if !uc.categories.Remove(input.Name) {
		return domainerror.NewNotFoundError(Kind, input.Name)
	}

	uc.notifier.Destructive(ctx, "Category deleted", "Budget category "+input.Name+" has been removed")
	return nil
}
