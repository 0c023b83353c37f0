package draft

import "context"

// BeginDraftInput represents the input for opening a draft. An empty
// SourceID opens a create draft from the kind's template.
type BeginDraftInput struct {
	Kind     string
	SourceID string
}

// BeginDraftUseCase opens drafts.
type BeginDraftUseCase struct {
	registry *Registry
}

// NewBeginDraftUseCase creates a new BeginDraftUseCase instance.
func NewBeginDraftUseCase(registry *Registry) *BeginDraftUseCase {
	return &BeginDraftUseCase{
		registry: registry,
	}
}

// Execute opens the draft.
func (uc *BeginDraftUseCase) Execute(_ context.Context, input BeginDraftInput) (*View, error) {
	desk, err := uc.registry.Desk(input.Kind)
	if err != nil {
		return nil, err
	}

	if input.SourceID == "" {
		v := desk.BeginAdd()
		return &v, nil
	}

	v, err := desk.BeginEdit(input.SourceID)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
