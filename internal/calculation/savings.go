package calculation

import (
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
)

// SavingsAccount is an interest-bearing cash account
type SavingsAccount struct {
	params                 domain.SavingsAccountParameters
	currentYear            int
	value                  decimal.Decimal
	monthlyInterestRate    decimal.Decimal
	currentAnnualInterest  decimal.Decimal
	previousAnnualInterest decimal.Decimal
}

// NewSavingsAccount opens the account at the start of year
func NewSavingsAccount(params domain.SavingsAccountParameters, year int) *SavingsAccount {
	return &SavingsAccount{
		params:              params,
		currentYear:         year,
		value:               params.InitialValue,
		monthlyInterestRate: APYToMonthlyRate(params.AnnualPercentageYield),
	}
}

func (sa *SavingsAccount) Name() string {
	return sa.params.Name
}

func (sa *SavingsAccount) Value() decimal.Decimal {
	return sa.value
}

// MonthlyInterestRate returns the monthly rate in percent
func (sa *SavingsAccount) MonthlyInterestRate() decimal.Decimal {
	return sa.monthlyInterestRate
}

func (sa *SavingsAccount) Contribute(amount decimal.Decimal) {
	sa.value = sa.value.Add(amount)
}

// Withdraw has no tax consequence, so month is unused.
func (sa *SavingsAccount) Withdraw(amount decimal.Decimal, _ time.Month) decimal.Decimal {
	amount = clampWithdrawal(amount, sa.value)
	sa.value = sa.value.Sub(amount)
	return amount
}

// ReceiveMonthlyInterest credits one month of interest
func (sa *SavingsAccount) ReceiveMonthlyInterest() {
	interest := percentOf(sa.monthlyInterestRate, sa.value)
	sa.value = sa.value.Add(interest)
	sa.currentAnnualInterest = sa.currentAnnualInterest.Add(interest)
}

// PreviousYear1099Int reports the interest earned last year
func (sa *SavingsAccount) PreviousYear1099Int() domain.Form1099Int {
	return domain.Form1099Int{
		Year:        sa.currentYear - 1,
		AccountName: sa.params.Name,
		Interest:    sa.previousAnnualInterest,
	}
}

func (sa *SavingsAccount) IncrementYear() {
	sa.currentYear++
	sa.previousAnnualInterest = sa.currentAnnualInterest
	sa.currentAnnualInterest = decimal.Zero
}
