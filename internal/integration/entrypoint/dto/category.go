package dto

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

// CategoryRequest represents the request body for category create, update
// and draft edits.
type CategoryRequest struct {
	Name   *string          `json:"name,omitempty"`
	Budget *decimal.Decimal `json:"budget,omitempty"`
	Color  *string          `json:"color,omitempty"`
}

// ToPatch converts the request to a category patch.
func (r CategoryRequest) ToPatch() (entity.CategoryPatch, error) {
	return entity.CategoryPatch{
		Name:   r.Name,
		Budget: r.Budget,
		Color:  r.Color,
	}, nil
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	Name   string          `json:"name"`
	Budget decimal.Decimal `json:"budget"`
	Spent  decimal.Decimal `json:"spent"`
	Color  string          `json:"color"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(c entity.Category) CategoryResponse {
	return CategoryResponse{
		Name:   c.Name,
		Budget: c.Budget,
		Spent:  c.Spent,
		Color:  c.Color,
	}
}

// ToCategoryListResponse converts categories to a CategoryListResponse.
func ToCategoryListResponse(categories []entity.Category) CategoryListResponse {
	items := make([]CategoryResponse, len(categories))
	for i, c := range categories {
		items[i] = ToCategoryResponse(c)
	}
	return CategoryListResponse{Categories: items}
}
