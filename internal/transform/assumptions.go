package transform

import (
	"fmt"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
)

var minusHundred = decimal.NewFromInt(-100)

// AdjustInflation shifts the inflation rate by Delta percentage points.
type AdjustInflation struct {
	Delta decimal.Decimal
}

func (ai *AdjustInflation) Name() string {
	return "adjust_inflation"
}

func (ai *AdjustInflation) Description() string {
	return fmt.Sprintf("Shift inflation by %s points", signed(ai.Delta))
}

func (ai *AdjustInflation) Validate(base *domain.ModelParameters) error {
	if err := validateBase(ai.Name(), base); err != nil {
		return err
	}
	if !base.InflationRate.Add(ai.Delta).GreaterThan(minusHundred) {
		return NewTransformError(ai.Name(), "validate", "resulting inflation rate must be greater than -100%", nil)
	}
	return nil
}

func (ai *AdjustInflation) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	modified.InflationRate = modified.InflationRate.Add(ai.Delta)
	return modified, nil
}

// AdjustReturns shifts the brokerage and every 401(k) return rate by Delta points.
// The savings APY is left alone.
type AdjustReturns struct {
	Delta decimal.Decimal
}

func (ar *AdjustReturns) Name() string {
	return "adjust_returns"
}

func (ar *AdjustReturns) Description() string {
	return fmt.Sprintf("Shift investment returns by %s points", signed(ar.Delta))
}

func (ar *AdjustReturns) Validate(base *domain.ModelParameters) error {
	if err := validateBase(ar.Name(), base); err != nil {
		return err
	}
	rates := []decimal.Decimal{base.BrokerageAccount.AnnualReturnRate}
	for _, a := range base.RetirementAccounts {
		rates = append(rates, a.AnnualReturnRate)
	}
	for _, j := range base.Jobs {
		rates = append(rates, j.RetirementAccount.AnnualReturnRate)
	}
	for _, r := range rates {
		if !r.Add(ar.Delta).GreaterThan(minusHundred) {
			return NewTransformError(ar.Name(), "validate", "resulting return rate must be greater than -100%", nil)
		}
	}
	return nil
}

func (ar *AdjustReturns) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	modified.BrokerageAccount.AnnualReturnRate = modified.BrokerageAccount.AnnualReturnRate.Add(ar.Delta)
	for i := range modified.RetirementAccounts {
		modified.RetirementAccounts[i].AnnualReturnRate = modified.RetirementAccounts[i].AnnualReturnRate.Add(ar.Delta)
	}
	for i := range modified.Jobs {
		acct := &modified.Jobs[i].RetirementAccount
		acct.AnnualReturnRate = acct.AnnualReturnRate.Add(ar.Delta)
	}
	return modified, nil
}

// SetEmergencyFund replaces the savings target that surplus cash fills first.
type SetEmergencyFund struct {
	Amount decimal.Decimal
}

func (sef *SetEmergencyFund) Name() string {
	return "set_emergency_fund"
}

func (sef *SetEmergencyFund) Description() string {
	return "Set the emergency fund target to $" + sef.Amount.StringFixed(2)
}

func (sef *SetEmergencyFund) Validate(base *domain.ModelParameters) error {
	if err := validateBase(sef.Name(), base); err != nil {
		return err
	}
	if sef.Amount.IsNegative() {
		return NewTransformError(sef.Name(), "validate", fmt.Sprintf("amount must be non-negative, got %s", sef.Amount), nil)
	}
	return nil
}

func (sef *SetEmergencyFund) Apply(base *domain.ModelParameters) (*domain.ModelParameters, error) {
	modified := base.DeepCopy()
	modified.TargetEmergencyFund = sef.Amount
	return modified, nil
}

func signed(d decimal.Decimal) string {
	if d.IsNegative() {
		return d.String()
	}
	return "+" + d.String()
}
