package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testMax401k = decimal.NewFromInt(20000)

func jobParams() domain.JobParameters {
	return domain.JobParameters{
		CompanyName:                  "test company",
		EmployeeID:                   1,
		StartDate:                    date(2024, time.June),
		EndDate:                      date(2035, time.February),
		InitialSalary:                decimal.NewFromInt(100000),
		InitialBonus:                 decimal.NewFromInt(20000),
		BonusMonth:                   time.December,
		RealRaiseRate:                decimal.NewFromInt(2),
		PercentOfMax401kContribution: decimal.NewFromInt(90),
		Company401kMatchRate:         decimal.NewFromInt(50),
	}
}

func newTestJob(t *testing.T, params domain.JobParameters, year int) *Job {
	t.Helper()
	job, err := NewJob(params, year, testEmployee, testMax401k, penaltyFreeAge)
	require.NoError(t, err)
	return job
}

func TestNewJob(t *testing.T) {
	job := newTestJob(t, jobParams(), 2024)

	assertMoney(t, 0.9*20000/7, job.Monthly401kContribution())
	assert.Equal(t, "test company 401(k)", job.RetirementAccount().Name())
	assert.Equal(t, 1, job.RetirementAccount().EmployeeID())
	assert.True(t, job.RetirementAccount().Value().IsZero())
}

func TestNewJobEmployeeMismatch(t *testing.T) {
	params := jobParams()
	params.EmployeeID = 3

	_, err := NewJob(params, 2024, testEmployee, testMax401k, penaltyFreeAge)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Contains(t, err.Error(), "test company")
}

func TestJobIsActive(t *testing.T) {
	job := newTestJob(t, jobParams(), 2024)

	assert.False(t, job.IsActive(date(2024, time.May)))
	assert.True(t, job.IsActive(date(2024, time.June)))
	assert.True(t, job.IsActive(date(2035, time.February)))
	assert.False(t, job.IsActive(date(2035, time.March)))
}

func TestJobSendMonthlyPaystub(t *testing.T) {
	contribution := 0.9 * 20000 / 7

	t.Run("regular month", func(t *testing.T) {
		job := newTestJob(t, jobParams(), 2024)
		paystub := job.SendMonthlyPaystub(time.July)

		assert.Equal(t, "test company", paystub.CompanyName)
		assertMoney(t, 100000.0/12-contribution, paystub.Income)
		assertMoney(t, 1.5*contribution, paystub.Contribution401k)
		assertMoney(t, 1.5*contribution, job.RetirementAccount().Value())
	})

	t.Run("bonus month", func(t *testing.T) {
		job := newTestJob(t, jobParams(), 2024)
		paystub := job.SendMonthlyPaystub(time.December)

		assertMoney(t, 100000.0/12+20000-contribution, paystub.Income)
		assertMoney(t, 1.5*contribution, paystub.Contribution401k)
	})

	t.Run("contribution capped at pay", func(t *testing.T) {
		params := jobParams()
		params.StartDate = date(2024, time.January)
		params.InitialSalary = decimal.NewFromInt(12000)
		params.InitialBonus = decimal.Zero
		params.PercentOfMax401kContribution = decimal.NewFromInt(100)

		job := newTestJob(t, params, 2024)
		paystub := job.SendMonthlyPaystub(time.March)

		assert.True(t, paystub.Income.IsZero())
		assertMoney(t, 1500, paystub.Contribution401k)
	})
}

func TestJobPreviousYearW2(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		job := newTestJob(t, jobParams(), 2024)
		w2 := job.PreviousYearW2()
		assert.Equal(t, 2023, w2.Year)
		assert.True(t, w2.TaxableIncome.IsZero())
	})

	t.Run("two paystubs", func(t *testing.T) {
		job := newTestJob(t, jobParams(), 2024)
		job.SendMonthlyPaystub(time.July)
		job.SendMonthlyPaystub(time.August)
		job.IncrementYear(decimal.NewFromInt(3), testMax401k)

		w2 := job.PreviousYearW2()
		assert.Equal(t, 2024, w2.Year)
		assert.Equal(t, 1, w2.EmployeeID)
		assertMoney(t, 2*(100000.0/12-0.9*20000/7), w2.TaxableIncome)
	})
}

func TestJobIncrementYear(t *testing.T) {
	t.Run("active job gets inflation and raise", func(t *testing.T) {
		job := newTestJob(t, jobParams(), 2024)
		job.IncrementYear(decimal.NewFromInt(3), decimal.NewFromInt(21000))

		assertMoney(t, 100000*1.03*1.02, job.Salary())
		assertMoney(t, 20000*1.03*1.02, job.Bonus())
		assertMoney(t, 0.9*21000/12, job.Monthly401kContribution())
	})

	t.Run("ended job is frozen", func(t *testing.T) {
		params := jobParams()
		params.StartDate = date(2020, time.January)
		params.EndDate = date(2024, time.December)

		job := newTestJob(t, params, 2024)
		job.IncrementYear(decimal.NewFromInt(3), decimal.NewFromInt(21000))

		assertMoney(t, 100000, job.Salary())
		assertMoney(t, 20000, job.Bonus())
	})

	t.Run("future job only tracks inflation", func(t *testing.T) {
		params := jobParams()
		params.StartDate = date(2027, time.January)
		params.EndDate = time.Time{}

		job := newTestJob(t, params, 2025)
		assert.True(t, job.Monthly401kContribution().IsZero())

		job.IncrementYear(decimal.NewFromInt(3), testMax401k)
		assertMoney(t, 100000*1.03, job.Salary())
		assert.True(t, job.Monthly401kContribution().IsZero())

		job.IncrementYear(decimal.NewFromInt(3), testMax401k)
		assertMoney(t, 100000*1.03*1.03*1.02, job.Salary())
		assertMoney(t, 0.9*20000/12, job.Monthly401kContribution())
	})
}
