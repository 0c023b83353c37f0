// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCategoryColor is the presentation tag used when none is given.
const DefaultCategoryColor = "bg-gray-500"

// Category represents a budget bucket. Its name is the identity that
// transactions reference.
type Category struct {
	Name   string
	Budget decimal.Decimal
	Spent  decimal.Decimal // Derived from transactions on every read, never stored
	Color  string
}

// NewCategory returns the template used when a category is added.
func NewCategory() Category {
	return Category{
		Budget: decimal.Zero,
		Spent:  decimal.Zero,
		Color:  DefaultCategoryColor,
	}
}

// GetID implements Record.
func (c Category) GetID() string { return c.Name }

// WithID implements Record. A category is keyed by its name, so a store
// never assigns it a generated id.
func (c Category) WithID(string) Category { return c }

// MissingFields implements Record.
func (c Category) MissingFields() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name"}
	}
	return nil
}

// CategoryPatch carries optional field edits for a category draft.
type CategoryPatch struct {
	Name   *string
	Budget *decimal.Decimal
	Color  *string
}

// Apply returns a copy of c with the patch applied.
func (p CategoryPatch) Apply(c Category) Category {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Budget != nil {
		c.Budget = *p.Budget
	}
	if p.Color != nil {
		c.Color = *p.Color
	}
	return c
}
