package finance

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the display currency of every amount in the workspace.
const Currency = money.USD

// FormatAmount renders a decimal amount in the display currency, e.g.
// "$1,250.00". Amounts are rounded to the currency's minor unit.
func FormatAmount(amount decimal.Decimal) string {
	cur := *money.New(0, Currency).Currency()
	minor := amount.Shift(int32(cur.Fraction)).Round(0)
	return cur.Formatter().Format(minor.IntPart())
}
