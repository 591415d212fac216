package calculation

import (
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// Paystub is one month of pay from a job
type Paystub struct {
	CompanyName string
	EmployeeID  int
	// Income is taxable pay after the employee's 401(k) deferral
	Income decimal.Decimal
	// Contribution401k includes the employer match
	Contribution401k decimal.Decimal
}

// Job pays a salary and bonus and funds the 401(k) account it owns
type Job struct {
	params   domain.JobParameters
	employee domain.Person
	active   dateutil.Interval

	salary                  decimal.Decimal
	bonus                   decimal.Decimal
	monthly401kContribution decimal.Decimal

	currentYear                 int
	currentAnnualTaxableIncome  decimal.Decimal
	previousAnnualTaxableIncome decimal.Decimal

	retirementAccount *RetirementAccount401k
}

// NewJob creates a job for employee in year. max401kContribution and
// penaltyFreeWithdrawalAge come from that year's tax table.
func NewJob(params domain.JobParameters, year int, employee domain.Person, max401kContribution decimal.Decimal, penaltyFreeWithdrawalAge dateutil.Age) (*Job, error) {
	if employee.ID != params.EmployeeID {
		return nil, configErrorf("job "+params.CompanyName, "expected employee %d but got %d", params.EmployeeID, employee.ID)
	}

	accountParams := params.RetirementAccount
	accountParams.EmployeeID = params.EmployeeID
	if accountParams.Name == "" {
		accountParams.Name = params.CompanyName + " 401(k)"
	}
	account, err := NewRetirementAccount401k(accountParams, year, employee, penaltyFreeWithdrawalAge)
	if err != nil {
		return nil, err
	}

	j := &Job{
		params:            params,
		employee:          employee,
		active:            dateutil.Interval{Start: params.StartDate, End: dateutil.OrForever(params.EndDate)},
		salary:            params.InitialSalary,
		bonus:             params.InitialBonus,
		currentYear:       year,
		retirementAccount: account,
	}
	j.monthly401kContribution = j.computeMonthly401kContribution(max401kContribution)
	return j, nil
}

// CompanyName returns the employer name
func (j *Job) CompanyName() string {
	return j.params.CompanyName
}

// Salary returns the current annual salary
func (j *Job) Salary() decimal.Decimal {
	return j.salary
}

// Bonus returns the current annual bonus
func (j *Job) Bonus() decimal.Decimal {
	return j.bonus
}

// Monthly401kContribution returns the deferral taken from each paystub this year
func (j *Job) Monthly401kContribution() decimal.Decimal {
	return j.monthly401kContribution
}

// RetirementAccount returns the 401(k) account this job owns
func (j *Job) RetirementAccount() *RetirementAccount401k {
	return j.retirementAccount
}

// computeMonthly401kContribution spreads the annual target over the months worked this year
func (j *Job) computeMonthly401kContribution(max401kContribution decimal.Decimal) decimal.Decimal {
	numMonths := dateutil.NumOverlapMonths(j.active, j.currentYear)
	if numMonths == 0 {
		return decimal.Zero
	}
	annual := percentOf(j.params.PercentOfMax401kContribution, max401kContribution)
	return roundMoney(annual.Div(decimal.NewFromInt(int64(numMonths))))
}

func (j *Job) IsActive(date time.Time) bool {
	return j.active.Contains(date)
}

// SendMonthlyPaystub pays one month, deferring the 401(k) contribution (capped at
// the month's pay) plus the employer match into the job's retirement account.
func (j *Job) SendMonthlyPaystub(month time.Month) Paystub {
	income := roundMoney(j.salary.Div(twelve))
	if month == j.params.BonusMonth {
		income = income.Add(j.bonus)
	}

	contribution := decimal.Min(income, j.monthly401kContribution)
	income = income.Sub(contribution)
	match := percentOf(j.params.Company401kMatchRate, contribution)

	j.currentAnnualTaxableIncome = j.currentAnnualTaxableIncome.Add(income)
	j.retirementAccount.Contribute(contribution.Add(match))

	return Paystub{
		CompanyName:      j.params.CompanyName,
		EmployeeID:       j.params.EmployeeID,
		Income:           income,
		Contribution401k: contribution.Add(match),
	}
}

// PreviousYearW2 reports last year's taxable wages
func (j *Job) PreviousYearW2() domain.W2 {
	return domain.W2{
		Year:          j.currentYear - 1,
		CompanyName:   j.params.CompanyName,
		EmployeeID:    j.params.EmployeeID,
		TaxableIncome: j.previousAnnualTaxableIncome,
	}
}

// IncrementYear rolls the tax year and, unless the job has ended, indexes pay to
// inflation, adds the real raise once the job has started, and recomputes the
// monthly 401(k) contribution against the new annual limit.
func (j *Job) IncrementYear(inflationRate, max401kContribution decimal.Decimal) {
	j.currentYear++
	j.previousAnnualTaxableIncome = j.currentAnnualTaxableIncome
	j.currentAnnualTaxableIncome = decimal.Zero

	if j.active.End.Year() < j.currentYear {
		return
	}

	incomeFactor := growthFactor(inflationRate)
	if j.active.Start.Year() <= j.currentYear {
		incomeFactor = incomeFactor.Mul(growthFactor(j.params.RealRaiseRate))
	}

	j.salary = roundMoney(j.salary.Mul(incomeFactor))
	j.bonus = roundMoney(j.bonus.Mul(incomeFactor))
	j.monthly401kContribution = j.computeMonthly401kContribution(max401kContribution)
}
