package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModelParameters_DeepCopy(t *testing.T) {
	principal := decimal.NewFromInt(150000)
	original := &ModelParameters{
		StartYear:     2025,
		DurationYears: 10,
		People:        []Person{{ID: 1, Name: "Alex"}},
		Jobs:          []JobParameters{{CompanyName: "Acme", EmployeeID: 1}},
		Expenses:      []ExpenseParameters{{Name: "Living", InitialMonthlyExpense: decimal.NewFromInt(3000)}},
		Houses:        []HouseParameters{{Name: "Condo", RemainingPrincipal: &principal}},
		RetirementAccounts: []RetirementAccountParameters{
			{Name: "Old 401(k)", EmployeeID: 1},
		},
	}

	copied := original.DeepCopy()
	require.NotSame(t, original, copied)
	assert.Equal(t, original, copied)

	copied.People[0].Name = "Sam"
	copied.Jobs[0].CompanyName = "Globex"
	copied.Expenses[0].InitialMonthlyExpense = decimal.Zero
	copied.RetirementAccounts[0].Name = "New"
	*copied.Houses[0].RemainingPrincipal = decimal.NewFromInt(1)
	copied.Houses = append(copied.Houses, HouseParameters{Name: "Cabin"})

	assert.Equal(t, "Alex", original.People[0].Name)
	assert.Equal(t, "Acme", original.Jobs[0].CompanyName)
	assert.True(t, original.Expenses[0].InitialMonthlyExpense.Equal(decimal.NewFromInt(3000)))
	assert.Equal(t, "Old 401(k)", original.RetirementAccounts[0].Name)
	assert.True(t, original.Houses[0].RemainingPrincipal.Equal(decimal.NewFromInt(150000)))
	assert.Len(t, original.Houses, 1)
}

func TestModelParameters_DeepCopy_NilFields(t *testing.T) {
	var nilParams *ModelParameters
	assert.Nil(t, nilParams.DeepCopy())

	copied := (&ModelParameters{StartYear: 2030}).DeepCopy()
	assert.Nil(t, copied.Houses)
	assert.Nil(t, copied.Jobs)
	assert.Equal(t, 2030, copied.StartYear)
	assert.Equal(t, 0, copied.TotalMonths())
}

func TestParseFilingStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected FilingStatus
	}{
		{"joint", FilingStatusJoint},
		{"JOINT", FilingStatusJoint},
		{"married_filing_jointly", FilingStatusJoint},
		{" mfj ", FilingStatusJoint},
		{"single", FilingStatusSingle},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFilingStatus(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ParseFilingStatus("head_of_household")
	assert.ErrorContains(t, err, `unrecognized filing status "head_of_household"`)
}

func TestForm1099B_Gain(t *testing.T) {
	gain := Form1099B{CostBasis: decimal.NewFromInt(600), Proceeds: decimal.NewFromInt(1000)}.Gain()
	assert.True(t, gain.Equal(decimal.NewFromInt(400)))

	loss := Form1099B{CostBasis: decimal.NewFromInt(1000), Proceeds: decimal.NewFromInt(600)}.Gain()
	assert.True(t, loss.IsZero())
}

func TestForecastHelpers(t *testing.T) {
	empty := &Forecast{}
	assert.Empty(t, empty.Annual())
	assert.Nil(t, empty.AssetNames())
	assert.True(t, empty.Final().NetWorth.IsZero())

	f := &Forecast{}
	start := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		f.Months = append(f.Months, MonthSummary{
			Date:     start.AddDate(0, i, 0),
			NetWorth: decimal.NewFromInt(int64(i)),
			Assets: []AssetSummary{
				{Name: "Savings", Kind: AssetSavings, Value: decimal.NewFromInt(int64(i))},
				{Name: "Brokerage", Kind: AssetBrokerage},
			},
		})
	}

	annual := f.Annual()
	require.Len(t, annual, 4)
	assert.Equal(t, 2026, annual[1].Date.Year())
	assert.Equal(t, time.June, annual[3].Date.Month())
	assert.True(t, f.Final().NetWorth.Equal(decimal.NewFromInt(29)))
	assert.Equal(t, []string{"Savings", "Brokerage"}, f.AssetNames())

	v, ok := f.Months[5].AssetValue("Savings")
	assert.True(t, ok)
	assert.True(t, v.Equal(decimal.NewFromInt(5)))

	_, ok = f.Months[5].AssetValue("Condo")
	assert.False(t, ok)
}
