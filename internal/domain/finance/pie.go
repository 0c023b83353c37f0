package finance

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

var degreesPerPercent = decimal.NewFromFloat(3.6)

// PieSlice is one category's share of total expense on the spending chart.
type PieSlice struct {
	Category     string
	Color        string
	Spent        decimal.Decimal
	Percent      float64
	LabelPercent int64
	StartAngle   float64 // Degrees, accumulated from prior categories in store order
	SweepAngle   float64 // Degrees
}

// PieSlices computes the spending chart. Categories are visited in store
// order; each slice starts where the previous categories' shares end.
// Categories with no spend produce no slice and add nothing to the offset.
// A non-positive totalExpense yields no slices.
//
// totalExpense is passed in rather than derived so that expenses in
// unknown categories still shrink every share.
func PieSlices(categories []entity.Category, transactions []entity.Transaction, totalExpense decimal.Decimal) []PieSlice {
	if !totalExpense.IsPositive() {
		return nil
	}

	slices := make([]PieSlice, 0, len(categories))
	offset := decimal.Zero
	for _, c := range categories {
		spent := CategorySpent(transactions, c.Name)
		percent := Percent(spent, totalExpense)
		if !percent.IsPositive() {
			continue
		}

		sweep := percent.Mul(degreesPerPercent)
		slices = append(slices, PieSlice{
			Category:     c.Name,
			Color:        c.Color,
			Spent:        spent,
			Percent:      percent.InexactFloat64(),
			LabelPercent: RoundPercent(percent),
			StartAngle:   offset.InexactFloat64(),
			SweepAngle:   sweep.InexactFloat64(),
		})
		offset = offset.Add(sweep)
	}
	return slices
}
