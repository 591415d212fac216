package config

import (
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInputParser_LoadTaxTables(t *testing.T) {
	tables, err := NewInputParser().LoadTaxTables(filepath.Join("testdata", "tax_tables.yaml"))
	require.NoError(t, err)

	single := tables[domain.FilingStatusSingle]
	assert.Equal(t, 2024, single.Year)
	require.Len(t, single.IncomeTaxBrackets, 7)
	assert.True(t, single.IncomeTaxBrackets[1].Start.Equal(decimal.NewFromInt(11600)))
	assert.Equal(t, 59, single.PenaltyFreeWithdrawalAge.Years)
	assert.Equal(t, 6, single.PenaltyFreeWithdrawalAge.Months)

	joint, ok := tables[domain.FilingStatusJoint]
	require.True(t, ok, "statuses missing from the file keep their defaults")
	assert.Equal(t, 2023, joint.Year)
}

func TestInputParser_LoadTaxTables_Missing(t *testing.T) {
	_, err := NewInputParser().LoadTaxTables("missing.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read tax tables")
}

func TestInputParser_ParseTaxTables_Errors(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"empty", "{}", "defines no filing status"},
		{"bad yaml", "single: [", "failed to parse tax tables"},
		{"unknown status", "widowed:\n  year: 2024\n", "unrecognized filing status"},
		{"no brackets", "single:\n  year: 2024\n", "at least one income tax bracket"},
		{
			name:    "first bracket not zero",
			yaml:    "single:\n  year: 2024\n  income_tax_brackets:\n    - {start: 100, rate: 10}\n",
			message: "first bracket must start at 0",
		},
		{
			name:    "unsorted brackets",
			yaml:    "single:\n  year: 2024\n  income_tax_brackets:\n    - {start: 0, rate: 10}\n    - {start: 5000, rate: 12}\n    - {start: 4000, rate: 22}\n",
			message: "bracket 2 must start above bracket 1",
		},
		{
			name:    "rate over 100",
			yaml:    "single:\n  year: 2024\n  income_tax_brackets:\n    - {start: 0, rate: 120}\n",
			message: "bracket 0 rate must be between 0 and 100",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewInputParser().ParseTaxTables([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}
