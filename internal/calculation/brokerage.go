package calculation

import (
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// realizedGains accumulates sales for a 1099-B
type realizedGains struct {
	costBasis decimal.Decimal
	proceeds  decimal.Decimal
}

// BrokerageAccount is a taxable account using average-cost basis
type BrokerageAccount struct {
	params            domain.BrokerageAccountParameters
	currentYear       int
	value             decimal.Decimal
	costBasis         decimal.Decimal
	monthlyReturnRate decimal.Decimal
	currentTaxInfo    realizedGains
	previousTaxInfo   realizedGains
}

func NewBrokerageAccount(params domain.BrokerageAccountParameters, year int) *BrokerageAccount {
	return &BrokerageAccount{
		params:            params,
		currentYear:       year,
		value:             params.InitialValue,
		costBasis:         params.InitialCostBasis,
		monthlyReturnRate: AnnualToMonthlyRate(params.AnnualReturnRate),
	}
}

func (ba *BrokerageAccount) Name() string {
	return ba.params.Name
}

func (ba *BrokerageAccount) Value() decimal.Decimal {
	return ba.value
}

// CostBasis returns the remaining average cost basis
func (ba *BrokerageAccount) CostBasis() decimal.Decimal {
	return ba.costBasis
}

func (ba *BrokerageAccount) Contribute(amount decimal.Decimal) {
	ba.value = ba.value.Add(amount)
	ba.costBasis = ba.costBasis.Add(amount)
}

// Withdraw sells amount (capped at value) and removes the same fraction of cost basis.
func (ba *BrokerageAccount) Withdraw(amount decimal.Decimal, _ time.Month) decimal.Decimal {
	amount = clampWithdrawal(amount, ba.value)

	costBasis := decimal.Zero
	if ba.value.IsPositive() {
		costBasis = roundMoney(ba.costBasis.Mul(amount).Div(ba.value))
	}

	ba.value = ba.value.Sub(amount)
	ba.costBasis = ba.costBasis.Sub(costBasis)

	ba.currentTaxInfo.costBasis = ba.currentTaxInfo.costBasis.Add(costBasis)
	ba.currentTaxInfo.proceeds = ba.currentTaxInfo.proceeds.Add(amount)

	return amount
}

func (ba *BrokerageAccount) ReceiveMonthlyReturn() {
	ba.value = roundMoney(ba.value.Mul(growthFactor(ba.monthlyReturnRate)))
}

// PreviousYear1099B reports last year's sales
func (ba *BrokerageAccount) PreviousYear1099B() domain.Form1099B {
	return domain.Form1099B{
		Year:        ba.currentYear - 1,
		AccountName: ba.params.Name,
		CostBasis:   ba.previousTaxInfo.costBasis,
		Proceeds:    ba.previousTaxInfo.proceeds,
	}
}

// IncrementYear charges the annual management fee, then rolls the tax year.
func (ba *BrokerageAccount) IncrementYear() {
	ba.value = ba.value.Sub(percentOf(ba.params.ManagementFeeRate, ba.value))

	ba.currentYear++
	ba.previousTaxInfo = ba.currentTaxInfo
	ba.currentTaxInfo = realizedGains{}
}
