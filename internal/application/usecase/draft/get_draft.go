package draft

import "context"

// DraftInput addresses an open draft.
type DraftInput struct {
	Kind   string
	Handle string
}

// GetDraftUseCase reads a draft.
type GetDraftUseCase struct {
	registry *Registry
}

// NewGetDraftUseCase creates a new GetDraftUseCase instance.
func NewGetDraftUseCase(registry *Registry) *GetDraftUseCase {
	return &GetDraftUseCase{
		registry: registry,
	}
}

// Execute returns the draft.
func (uc *GetDraftUseCase) Execute(_ context.Context, input DraftInput) (*View, error) {
	desk, err := uc.registry.Desk(input.Kind)
	if err != nil {
		return nil, err
	}
	v, err := desk.Get(input.Handle)
	if err != nil {
		return nil, err
	}
	return &v, nil
}
