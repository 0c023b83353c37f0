package draft

import "context"

// UpdateDraftInput represents a field edit on a draft.
type UpdateDraftInput struct {
	Kind   string
	Handle string
	Patch  any // The entity patch type of Kind
}

// UpdateDraftUseCase edits drafts. The record is replaced, never mutated.
type UpdateDraftUseCase struct {
	registry *Registry
}

// NewUpdateDraftUseCase creates a new UpdateDraftUseCase instance.
func NewUpdateDraftUseCase(registry *Registry) *UpdateDraftUseCase {
	return &UpdateDraftUseCase{
		registry: registry,
	}
}

// Execute applies the patch.
func (uc *UpdateDraftUseCase) Execute(_ context.Context, input UpdateDraftInput) (*View, error) {
	desk, err := uc.registry.Desk(input.Kind)
	if err != nil {
		return nil, err
	}
	v, err := desk.Apply(input.Handle, input.Patch)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
