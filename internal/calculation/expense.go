package calculation

import (
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Expense is a recurring monthly cost active within [Start, End]
type Expense struct {
	params         domain.ExpenseParameters
	active         dateutil.Interval
	monthlyExpense decimal.Decimal
}

func NewExpense(params domain.ExpenseParameters) *Expense {
	return &Expense{
		params:         params,
		active:         dateutil.Interval{Start: params.Start, End: dateutil.OrForever(params.End)},
		monthlyExpense: params.InitialMonthlyExpense,
	}
}

func (e *Expense) Name() string {
	return e.params.Name
}

// MonthlyExpense returns the current monthly cost
func (e *Expense) MonthlyExpense() decimal.Decimal {
	return e.monthlyExpense
}

func (e *Expense) IsActive(date time.Time) bool {
	return e.active.Contains(date)
}

// IncrementYear applies inflation and the expense's own real increase
func (e *Expense) IncrementYear(inflationRate decimal.Decimal) {
	factor := growthFactor(inflationRate).Mul(growthFactor(e.params.RealIncreaseRate))
	e.monthlyExpense = roundMoney(e.monthlyExpense.Mul(factor))
}
