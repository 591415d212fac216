package calculation

import (
	"errors"
	"testing"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var penaltyFreeAge = dateutil.Age{Years: 59, Months: 6}

func savingsParams() domain.SavingsAccountParameters {
	return domain.SavingsAccountParameters{
		Name:                  "savings account",
		InitialValue:          decimal.NewFromInt(100000),
		AnnualPercentageYield: annualRateForMonthly(2),
	}
}

func brokerageParams() domain.BrokerageAccountParameters {
	return domain.BrokerageAccountParameters{
		Name:              "brokerage account",
		InitialValue:      decimal.NewFromInt(100000),
		InitialCostBasis:  decimal.NewFromInt(25000),
		AnnualReturnRate:  annualRateForMonthly(2),
		ManagementFeeRate: decimal.NewFromInt(1),
	}
}

func retirementParams() domain.RetirementAccountParameters {
	return domain.RetirementAccountParameters{
		Name:             "test 401(k)",
		EmployeeID:       1,
		InitialValue:     decimal.NewFromInt(100000),
		AnnualReturnRate: annualRateForMonthly(2),
	}
}

var testEmployee = domain.Person{
	ID:       1,
	Name:     "employee",
	Birthday: time.Date(1990, time.March, 20, 0, 0, 0, 0, time.UTC),
}

func TestSavingsAccount(t *testing.T) {
	t.Run("monthly rate", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		assert.InDelta(t, 2, account.MonthlyInterestRate().InexactFloat64(), 1e-9)
	})

	t.Run("contribute", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		account.Contribute(decimal.NewFromInt(100))
		assert.True(t, account.Value().Equal(decimal.NewFromInt(100100)))
	})

	t.Run("withdraw", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		got := account.Withdraw(decimal.NewFromInt(10000), time.January)
		assert.True(t, got.Equal(decimal.NewFromInt(10000)))
		assert.True(t, account.Value().Equal(decimal.NewFromInt(90000)))
	})

	t.Run("withdraw caps at value", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		got := account.Withdraw(decimal.NewFromInt(100001), time.January)
		assert.True(t, got.Equal(decimal.NewFromInt(100000)))
		assert.True(t, account.Value().IsZero())
	})

	t.Run("withdraw non-positive is a no-op", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		assert.True(t, account.Withdraw(decimal.NewFromInt(-5), time.January).IsZero())
		assert.True(t, account.Value().Equal(decimal.NewFromInt(100000)))
	})

	t.Run("monthly interest", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		account.ReceiveMonthlyInterest()
		assertMoney(t, 102000, account.Value())
	})

	t.Run("1099-INT before any interest", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		doc := account.PreviousYear1099Int()
		assert.Equal(t, 2023, doc.Year)
		assert.True(t, doc.Interest.IsZero())
	})

	t.Run("1099-INT after a year", func(t *testing.T) {
		account := NewSavingsAccount(savingsParams(), 2024)
		account.ReceiveMonthlyInterest()
		account.IncrementYear()

		doc := account.PreviousYear1099Int()
		assert.Equal(t, 2024, doc.Year)
		assert.Equal(t, "savings account", doc.AccountName)
		assertMoney(t, 2000, doc.Interest)
	})
}

func TestBrokerageAccount(t *testing.T) {
	t.Run("contribute adds to basis", func(t *testing.T) {
		account := NewBrokerageAccount(brokerageParams(), 2020)
		account.Contribute(decimal.NewFromInt(100))
		assertMoney(t, 100100, account.Value())
		assertMoney(t, 25100, account.CostBasis())
	})

	t.Run("withdraw removes proportional basis", func(t *testing.T) {
		account := NewBrokerageAccount(brokerageParams(), 2020)
		got := account.Withdraw(decimal.NewFromInt(100), time.March)
		assertMoney(t, 100, got)
		assertMoney(t, 99900, account.Value())
		assertMoney(t, 24975, account.CostBasis())
	})

	t.Run("monthly return leaves basis alone", func(t *testing.T) {
		account := NewBrokerageAccount(brokerageParams(), 2020)
		account.ReceiveMonthlyReturn()
		assertMoney(t, 102000, account.Value())
		assertMoney(t, 25000, account.CostBasis())
	})

	t.Run("1099-B", func(t *testing.T) {
		account := NewBrokerageAccount(brokerageParams(), 2020)
		account.Withdraw(decimal.NewFromInt(100), time.March)
		account.IncrementYear()

		doc := account.PreviousYear1099B()
		assert.Equal(t, 2020, doc.Year)
		assertMoney(t, 25, doc.CostBasis)
		assertMoney(t, 100, doc.Proceeds)
		assertMoney(t, 75, doc.Gain())
	})

	t.Run("management fee charged on rollover", func(t *testing.T) {
		account := NewBrokerageAccount(brokerageParams(), 2020)
		account.IncrementYear()
		assertMoney(t, 99000, account.Value())
	})

	t.Run("draining the account empties basis", func(t *testing.T) {
		account := NewBrokerageAccount(brokerageParams(), 2020)
		got := account.Withdraw(decimal.NewFromInt(250000), time.March)
		assertMoney(t, 100000, got)
		assert.True(t, account.Value().IsZero())
		assertMoney(t, 0, account.CostBasis())
	})
}

func TestBrokerageWithdrawProportionality(t *testing.T) {
	for _, fraction := range []float64{0.1, 0.25, 0.5, 0.9} {
		account := NewBrokerageAccount(brokerageParams(), 2020)
		account.Withdraw(dec(fraction*100000), time.June)
		assertMoney(t, (1-fraction)*25000, account.CostBasis(), "fraction %v", fraction)
	}
}

func TestWithdrawConservesValue(t *testing.T) {
	for _, amount := range []int64{0, 1, 5000, 100000, 250000} {
		accounts := []Account{
			NewSavingsAccount(savingsParams(), 2024),
			NewBrokerageAccount(brokerageParams(), 2024),
		}
		account, err := NewRetirementAccount401k(retirementParams(), 2024, testEmployee, penaltyFreeAge)
		require.NoError(t, err)
		accounts = append(accounts, account)

		for _, a := range accounts {
			before := a.Value()
			withdrawn := a.Withdraw(decimal.NewFromInt(amount), time.May)
			assert.True(t, withdrawn.Add(a.Value()).Equal(before), "%s amount %d", a.Name(), amount)
			assert.False(t, a.Value().IsNegative(), "%s amount %d", a.Name(), amount)
		}
	}
}

func TestRetirementAccount401k(t *testing.T) {
	t.Run("penalty free date", func(t *testing.T) {
		account, err := NewRetirementAccount401k(retirementParams(), 2020, testEmployee, penaltyFreeAge)
		require.NoError(t, err)
		expected := time.Date(2049, time.September, 20, 0, 0, 0, 0, time.UTC)
		assert.True(t, expected.Equal(account.PenaltyFreeWithdrawalDate()))
	})

	t.Run("employee mismatch", func(t *testing.T) {
		other := testEmployee
		other.ID = 7
		_, err := NewRetirementAccount401k(retirementParams(), 2020, other, penaltyFreeAge)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidConfig))

		var cfgErr *ConfigError
		require.ErrorAs(t, err, &cfgErr)
		assert.Contains(t, cfgErr.Component, "test 401(k)")
	})

	t.Run("contribute and return", func(t *testing.T) {
		account, err := NewRetirementAccount401k(retirementParams(), 2020, testEmployee, penaltyFreeAge)
		require.NoError(t, err)
		account.Contribute(decimal.NewFromInt(100))
		assert.True(t, account.Value().Equal(decimal.NewFromInt(100100)))

		account, err = NewRetirementAccount401k(retirementParams(), 2020, testEmployee, penaltyFreeAge)
		require.NoError(t, err)
		account.ReceiveMonthlyReturn()
		assertMoney(t, 102000, account.Value())
	})

	t.Run("withdraw caps at value", func(t *testing.T) {
		account, err := NewRetirementAccount401k(retirementParams(), 2020, testEmployee, penaltyFreeAge)
		require.NoError(t, err)
		assertMoney(t, 100000, account.Withdraw(decimal.NewFromInt(100100), time.January))
		assert.True(t, account.Value().IsZero())
	})

	t.Run("1099-R split around the penalty free date", func(t *testing.T) {
		account, err := NewRetirementAccount401k(retirementParams(), 2049, testEmployee, penaltyFreeAge)
		require.NoError(t, err)

		assertMoney(t, 100, account.Withdraw(decimal.NewFromInt(100), time.August))
		assertMoney(t, 200, account.Withdraw(decimal.NewFromInt(200), time.October))
		account.IncrementYear()

		docs := account.PreviousYear1099Rs()
		require.Len(t, docs, 2)

		assert.Equal(t, 2049, docs[0].Year)
		assert.True(t, docs[0].IsEarlyDistribution)
		assertMoney(t, 100, docs[0].TaxableIncome)

		assert.Equal(t, 2049, docs[1].Year)
		assert.False(t, docs[1].IsEarlyDistribution)
		assertMoney(t, 200, docs[1].TaxableIncome)
	})

	t.Run("no withdrawals issue no 1099-R", func(t *testing.T) {
		account, err := NewRetirementAccount401k(retirementParams(), 2049, testEmployee, penaltyFreeAge)
		require.NoError(t, err)
		account.IncrementYear()
		assert.Empty(t, account.PreviousYear1099Rs())
	})
}

func TestExpense(t *testing.T) {
	params := domain.ExpenseParameters{
		Name:                  "rent",
		Start:                 date(2025, time.January),
		End:                   date(2035, time.January),
		InitialMonthlyExpense: decimal.NewFromInt(1000),
		RealIncreaseRate:      decimal.NewFromInt(2),
	}

	expense := NewExpense(params)
	assert.Equal(t, "rent", expense.Name())
	assert.False(t, expense.IsActive(date(2024, time.December)))
	assert.True(t, expense.IsActive(date(2025, time.January)))
	assert.True(t, expense.IsActive(date(2035, time.January)))
	assert.False(t, expense.IsActive(date(2035, time.February)))

	expense.IncrementYear(decimal.NewFromInt(3))
	assertMoney(t, 1000*1.03*1.02, expense.MonthlyExpense())
}

func TestExpenseOpenEnded(t *testing.T) {
	expense := NewExpense(domain.ExpenseParameters{
		Name:                  "food",
		Start:                 date(2025, time.January),
		InitialMonthlyExpense: decimal.NewFromInt(500),
	})
	assert.True(t, expense.IsActive(date(2090, time.June)))
}
