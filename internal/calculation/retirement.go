package calculation

import (
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// distributions splits a year's withdrawals by penalty treatment
type distributions struct {
	early       decimal.Decimal
	penaltyFree decimal.Decimal
}

// RetirementAccount401k is a tax-deferred employer plan account
type RetirementAccount401k struct {
	params                    domain.RetirementAccountParameters
	currentYear               int
	value                     decimal.Decimal
	monthlyReturnRate         decimal.Decimal
	penaltyFreeWithdrawalDate time.Time
	currentTaxableIncome      distributions
	previousTaxableIncome     distributions
}

// NewRetirementAccount401k opens an account for employee, who must match params.EmployeeID.
func NewRetirementAccount401k(params domain.RetirementAccountParameters, year int, employee domain.Person, penaltyFreeWithdrawalAge dateutil.Age) (*RetirementAccount401k, error) {
	if employee.ID != params.EmployeeID {
		return nil, configErrorf("retirement account "+params.Name, "expected employee %d but got %d", params.EmployeeID, employee.ID)
	}

	return &RetirementAccount401k{
		params:                    params,
		currentYear:               year,
		value:                     params.InitialValue,
		monthlyReturnRate:         AnnualToMonthlyRate(params.AnnualReturnRate),
		penaltyFreeWithdrawalDate: dateutil.AgeToDate(penaltyFreeWithdrawalAge, employee.Birthday),
	}, nil
}

func (ra *RetirementAccount401k) Name() string {
	return ra.params.Name
}

func (ra *RetirementAccount401k) Value() decimal.Decimal {
	return ra.value
}

// EmployeeID returns the id of the account owner
func (ra *RetirementAccount401k) EmployeeID() int {
	return ra.params.EmployeeID
}

// PenaltyFreeWithdrawalDate is the first date withdrawals are not early distributions
func (ra *RetirementAccount401k) PenaltyFreeWithdrawalDate() time.Time {
	return ra.penaltyFreeWithdrawalDate
}

func (ra *RetirementAccount401k) Contribute(amount decimal.Decimal) {
	ra.value = ra.value.Add(amount)
}

// Withdraw pays out up to amount and books it as early or penalty-free income
// depending on whether the withdrawal month precedes the penalty-free date.
func (ra *RetirementAccount401k) Withdraw(amount decimal.Decimal, month time.Month) decimal.Decimal {
	amount = clampWithdrawal(amount, ra.value)
	ra.value = ra.value.Sub(amount)

	if dateutil.MonthOf(ra.currentYear, month).Before(ra.penaltyFreeWithdrawalDate) {
		ra.currentTaxableIncome.early = ra.currentTaxableIncome.early.Add(amount)
	} else {
		ra.currentTaxableIncome.penaltyFree = ra.currentTaxableIncome.penaltyFree.Add(amount)
	}

	return amount
}

func (ra *RetirementAccount401k) ReceiveMonthlyReturn() {
	ra.value = roundMoney(ra.value.Mul(growthFactor(ra.monthlyReturnRate)))
}

// PreviousYear1099Rs returns one form per non-empty bucket, early distributions first.
func (ra *RetirementAccount401k) PreviousYear1099Rs() []domain.Form1099R {
	var docs []domain.Form1099R

	if ra.previousTaxableIncome.early.IsPositive() {
		docs = append(docs, domain.Form1099R{
			Year:                ra.currentYear - 1,
			AccountName:         ra.params.Name,
			TaxableIncome:       ra.previousTaxableIncome.early,
			IsEarlyDistribution: true,
		})
	}

	if ra.previousTaxableIncome.penaltyFree.IsPositive() {
		docs = append(docs, domain.Form1099R{
			Year:                ra.currentYear - 1,
			AccountName:         ra.params.Name,
			TaxableIncome:       ra.previousTaxableIncome.penaltyFree,
			IsEarlyDistribution: false,
		})
	}

	return docs
}

func (ra *RetirementAccount401k) IncrementYear() {
	ra.currentYear++
	ra.previousTaxableIncome = ra.currentTaxableIncome
	ra.currentTaxableIncome = distributions{}
}
