package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInputParser(t *testing.T) {
	parser := NewInputParser()
	assert.NotNil(t, parser, "Should create input parser")
}

func TestInputParser_LoadFromFile_FileNotFound(t *testing.T) {
	parser := NewInputParser()

	params, err := parser.LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, params, "Should return nil parameters")
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestInputParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644))

	parser := NewInputParser()
	params, err := parser.LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, params)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestInputParser_LoadFromFile_Household(t *testing.T) {
	parser := NewInputParser()

	params, err := parser.LoadFromFile(filepath.Join("testdata", "household.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 2025, params.StartYear)
	assert.Equal(t, 30, params.DurationYears)
	assert.True(t, params.InflationRate.Equal(decimal.NewFromInt(3)))
	assert.Equal(t, domain.FilingStatusJoint, params.Tax.FilingStatus, "alias should resolve")

	require.Len(t, params.People, 1)
	assert.True(t, params.People[0].Birthday.Equal(time.Date(1990, time.February, 10, 0, 0, 0, 0, time.UTC)))

	require.Len(t, params.Jobs, 1)
	job := params.Jobs[0]
	assert.Equal(t, time.December, job.BonusMonth)
	assert.True(t, job.StartDate.Equal(time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)), "dates snap to month start")
	assert.Equal(t, "Initech 401(k)", job.RetirementAccount.Name)
	assert.True(t, job.RetirementAccount.InitialValue.Equal(decimal.NewFromInt(10000)))

	require.Len(t, params.Expenses, 1)
	assert.True(t, params.Expenses[0].End.IsZero(), "open-ended expense")

	require.Len(t, params.Houses, 1)
	assert.True(t, params.Houses[0].PropertyTaxRate.Equal(decimal.NewFromFloat(1.2)))
	assert.Nil(t, params.Houses[0].RemainingPrincipal)

	assert.True(t, params.BrokerageAccount.ManagementFeeRate.Equal(decimal.NewFromFloat(0.1)))
	assert.Empty(t, params.RetirementAccounts)
}

func TestInputParser_ParseDefaultsFilingStatus(t *testing.T) {
	params := CreateExampleConfiguration()
	params.Tax.FilingStatus = ""

	var buf bytes.Buffer
	require.NoError(t, encodeParams(&buf, params))

	parsed, err := NewInputParser().Parse(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, domain.FilingStatusJoint, parsed.Tax.FilingStatus)
}

func TestInputParser_ParseUnknownFilingStatus(t *testing.T) {
	params := CreateExampleConfiguration()
	params.Tax.FilingStatus = "head_of_household"

	var buf bytes.Buffer
	require.NoError(t, encodeParams(&buf, params))

	_, err := NewInputParser().Parse(buf.Bytes())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unrecognized filing status")
}

func TestInputParser_ValidateConfiguration(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.ModelParameters)
		message string
	}{
		{
			name:    "zero duration",
			mutate:  func(p *domain.ModelParameters) { p.DurationYears = 0 },
			message: "duration years must be between 1 and 100",
		},
		{
			name:    "start year out of range",
			mutate:  func(p *domain.ModelParameters) { p.StartYear = 1492 },
			message: "start year must be between",
		},
		{
			name:    "inflation at -100",
			mutate:  func(p *domain.ModelParameters) { p.InflationRate = decimal.NewFromInt(-100) },
			message: "inflation rate must be greater than -100%",
		},
		{
			name:    "no people",
			mutate:  func(p *domain.ModelParameters) { p.People = nil },
			message: "at least one person is required",
		},
		{
			name:    "duplicate person id",
			mutate:  func(p *domain.ModelParameters) { p.People[1].ID = p.People[0].ID },
			message: "duplicate id 1",
		},
		{
			name:    "person without birthday",
			mutate:  func(p *domain.ModelParameters) { p.People[0].Birthday = time.Time{} },
			message: "birthday is required",
		},
		{
			name:    "person born after the start year begins",
			mutate:  func(p *domain.ModelParameters) { p.People[0].Birthday = time.Date(p.StartYear, time.March, 1, 0, 0, 0, 0, time.UTC) },
			message: "is after the start of",
		},
		{
			name:    "job for unknown person",
			mutate:  func(p *domain.ModelParameters) { p.Jobs[0].EmployeeID = 99 },
			message: "unknown employee id 99",
		},
		{
			name:    "job ends before it starts",
			mutate:  func(p *domain.ModelParameters) { p.Jobs[0].EndDate = month(2010, time.January) },
			message: "end date cannot be before start date",
		},
		{
			name:    "bonus month out of range",
			mutate:  func(p *domain.ModelParameters) { p.Jobs[0].BonusMonth = 13 },
			message: "bonus month must be between 1 and 12",
		},
		{
			name:    "contribution over max",
			mutate:  func(p *domain.ModelParameters) { p.Jobs[0].PercentOfMax401kContribution = decimal.NewFromInt(120) },
			message: "percent of max 401(k) contribution",
		},
		{
			name:    "negative expense",
			mutate:  func(p *domain.ModelParameters) { p.Expenses[0].InitialMonthlyExpense = decimal.NewFromInt(-1) },
			message: "initial monthly expense cannot be negative",
		},
		{
			name:    "house sold before bought",
			mutate:  func(p *domain.ModelParameters) { p.Houses[1].SellDate = month(2028, time.January) },
			message: "sell date must be after buy date",
		},
		{
			name:    "owned house without principal",
			mutate:  func(p *domain.ModelParameters) { p.Houses[0].RemainingPrincipal = nil },
			message: "remaining principal is required",
		},
		{
			name:    "negative savings",
			mutate:  func(p *domain.ModelParameters) { p.SavingsAccount.InitialValue = decimal.NewFromInt(-5) },
			message: "savings account validation failed",
		},
		{
			name:    "negative cost basis",
			mutate:  func(p *domain.ModelParameters) { p.BrokerageAccount.InitialCostBasis = decimal.NewFromInt(-5) },
			message: "initial cost basis cannot be negative",
		},
		{
			name:    "retirement account for unknown person",
			mutate:  func(p *domain.ModelParameters) { p.RetirementAccounts[0].EmployeeID = 7 },
			message: "unknown employee id 7",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := CreateExampleConfiguration()
			tt.mutate(params)

			err := parser.ValidateConfiguration(params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestInputParser_ValidateConfiguration_BirthdayAtStart(t *testing.T) {
	params := CreateExampleConfiguration()
	params.People[0].Birthday = time.Date(params.StartYear, time.January, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, NewInputParser().ValidateConfiguration(params))
}

func TestCreateExampleConfiguration(t *testing.T) {
	params := CreateExampleConfiguration()
	require.NoError(t, NewInputParser().ValidateConfiguration(params))

	var buf bytes.Buffer
	require.NoError(t, WriteExampleConfiguration(&buf))

	parsed, err := NewInputParser().Parse(buf.Bytes())
	require.NoError(t, err)

	assert.Equal(t, params.StartYear, parsed.StartYear)
	assert.Len(t, parsed.People, 2)
	assert.Len(t, parsed.Jobs, 2)
	assert.Len(t, parsed.Houses, 2)
	require.NotNil(t, parsed.Houses[0].RemainingPrincipal)
	assert.True(t, parsed.Houses[0].RemainingPrincipal.Equal(*params.Houses[0].RemainingPrincipal))
	assert.True(t, parsed.Houses[1].SellDate.IsZero())
	assert.True(t, parsed.Jobs[0].StartDate.Equal(params.Jobs[0].StartDate))
}
