package calculation

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is a liquidity source the cash waterfall can deposit to or drain.
// Withdraw never errors: it pays out at most Value and returns the amount paid.
type Account interface {
	Name() string
	Value() decimal.Decimal
	Contribute(amount decimal.Decimal)
	Withdraw(amount decimal.Decimal, month time.Month) decimal.Decimal
}

// clampWithdrawal returns the amount an account holding value can pay toward amount
func clampWithdrawal(amount, value decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() {
		return decimal.Zero
	}
	return decimal.Min(amount, value)
}
