// Package entity defines the core business entities for the domain layer.
package entity

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Goal represents a savings target in the Finance module.
type Goal struct {
	ID            string
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal // May exceed TargetAmount
	Deadline      time.Time
}

// NewGoal returns the template used when a goal is added.
func NewGoal() Goal {
	return Goal{
		TargetAmount:  decimal.Zero,
		CurrentAmount: decimal.Zero,
	}
}

// GetID implements Record.
func (g Goal) GetID() string { return g.ID }

// WithID implements Record.
func (g Goal) WithID(id string) Goal {
	g.ID = id
	return g
}

// MissingFields implements Record.
func (g Goal) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(g.Name) == "" {
		missing = append(missing, "name")
	}
	if !g.TargetAmount.IsPositive() {
		missing = append(missing, "target_amount")
	}
	if g.Deadline.IsZero() {
		missing = append(missing, "deadline")
	}
	return missing
}

// GoalPatch carries optional field edits for a goal draft.
type GoalPatch struct {
	Name          *string
	TargetAmount  *decimal.Decimal
	CurrentAmount *decimal.Decimal
	Deadline      *time.Time
}

// Apply returns a copy of g with the patch applied.
func (p GoalPatch) Apply(g Goal) Goal {
	if p.Name != nil {
		g.Name = *p.Name
	}
	if p.TargetAmount != nil {
		g.TargetAmount = *p.TargetAmount
	}
	if p.CurrentAmount != nil {
		g.CurrentAmount = *p.CurrentAmount
	}
	if p.Deadline != nil {
		g.Deadline = *p.Deadline
	}
	return g
}
