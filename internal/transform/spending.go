package transform

import (
	"fmt"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// ScaleExpenses changes monthly spending by Percent (e.g. -10 cuts it by a tenth).
// An empty Expense applies to every expense.
type ScaleExpenses struct {
	Expense string
	Percent decimal.Decimal
}

func (se *ScaleExpenses) Name() string {
	return "scale_expenses"
}

func (se *ScaleExpenses) Description() string {
	target := "all expenses"
	if se.Expense != "" {
		target = se.Expense
	}
	return fmt.Sprintf("Change %s by %s%%", target, signed(se.Percent))
}

func (se *ScaleExpenses) Validate(base *domain.ModelParameters) error {
	if err := validateBase(se.Name(), base); err != nil {
		return err
	}
	if se.Percent.LessThan(minusHundred) {
		return NewTransformError(se.Name(), "validate", fmt.Sprintf("percent must be at least -100, got %s", se.Percent), nil)
	}
	if se.Expense == "" {
		return nil
	}
	for _, e := range base.Expenses {
		if e.Name == se.Expense {
			return nil
		}
	}
	return NewTransformError(se.Name(), "validate", fmt.Sprintf("expense %s not found", se.Expense), nil)
}

func (se *ScaleExpenses) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	factor := decimal.NewFromInt(1).Add(se.Percent.Div(decimal.NewFromInt(100)))
	for i := range modified.Expenses {
		e := &modified.Expenses[i]
		if se.Expense == "" || e.Name == se.Expense {
			e.InitialMonthlyExpense = e.InitialMonthlyExpense.Mul(factor)
		}
	}
	return modified, nil
}
