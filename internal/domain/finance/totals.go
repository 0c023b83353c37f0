// Package finance holds the pure aggregation functions of the Finance
// module. Nothing here caches: every call recomputes from the records given.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/productivity-hub/backend/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Summary holds the headline figures of a transaction set.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Balance      decimal.Decimal
}

// TotalByType sums the amounts of transactions of the given type.
func TotalByType(transactions []entity.Transaction, transactionType entity.TransactionType) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == transactionType {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// Balance is total income minus total expense.
func Balance(transactions []entity.Transaction) decimal.Decimal {
	return TotalByType(transactions, entity.TransactionTypeIncome).
		Sub(TotalByType(transactions, entity.TransactionTypeExpense))
}

// Summarize computes income, expense and balance in one pass.
func Summarize(transactions []entity.Transaction) Summary {
	income := TotalByType(transactions, entity.TransactionTypeIncome)
	expense := TotalByType(transactions, entity.TransactionTypeExpense)
	return Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Balance:      income.Sub(expense),
	}
}

// CategorySpent sums expenses whose category equals name exactly
// (case-sensitive). Income is ignored.
func CategorySpent(transactions []entity.Transaction, name string) decimal.Decimal {
	total := decimal.Zero
	for _, t := range transactions {
		if t.Type == entity.TransactionTypeExpense && t.Category == name {
			total = total.Add(t.Amount)
		}
	}
	return total
}

// WithSpent returns copies of categories with Spent derived from
// transactions, in the same order.
func WithSpent(categories []entity.Category, transactions []entity.Transaction) []entity.Category {
	out := make([]entity.Category, len(categories))
	for i, c := range categories {
		c.Spent = CategorySpent(transactions, c.Name)
		out[i] = c
	}
	return out
}

// Percent returns part/whole*100, or zero when whole is not positive.
func Percent(part, whole decimal.Decimal) decimal.Decimal {
	if !whole.IsPositive() {
		return decimal.Zero
	}
	return part.Div(whole).Mul(hundred)
}

// RoundPercent rounds a percentage to a whole number for labels.
func RoundPercent(p decimal.Decimal) int64 {
	return p.Round(0).IntPart()
}
