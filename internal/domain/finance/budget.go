package finance

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

// BudgetUsage describes how much of a category budget has been spent.
type BudgetUsage struct {
	Category entity.Category
	// WidthPercent is clamped to [0, 100] for progress bars.
	WidthPercent float64
	// LabelPercent is the rounded, unclamped percentage; it exceeds 100
	// when the category is over budget.
	LabelPercent int64
}

// PercentOfBudget returns the clamped bar width and the unclamped label
// percentage of c.Spent over c.Budget.
func PercentOfBudget(c entity.Category) (width float64, label int64) {
	p := Percent(c.Spent, c.Budget)
	label = RoundPercent(p)

	clamped := decimal.Max(decimal.Zero, decimal.Min(hundred, p))
	width = clamped.InexactFloat64()
	return width, label
}

// BudgetUsages derives spent for every category and computes its usage.
func BudgetUsages(categories []entity.Category, transactions []entity.Transaction) []BudgetUsage {
	withSpent := WithSpent(categories, transactions)
	usages := make([]BudgetUsage, len(withSpent))
	for i, c := range withSpent {
		width, label := PercentOfBudget(c)
		usages[i] = BudgetUsage{
			Category:     c,
			WidthPercent: width,
			LabelPercent: label,
		}
	}
	return usages
}

// GoalProgress returns the rounded percentage of a goal reached. It is not
// clamped: a goal past its target reports more than 100.
func GoalProgress(g entity.Goal) int64 {
	return RoundPercent(Percent(g.CurrentAmount, g.TargetAmount))
}
