package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/nwgo/internal/calculation"
	"github.com/rgehrsitz/nwgo/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadTaxTables reads a YAML file of base-year tax tables keyed by filing
// status. Statuses in the file replace the built-in tables; the rest are kept.
func (ip *InputParser) LoadTaxTables(filename string) (domain.TaxTables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read tax tables %s: %w", filename, err)
	}
	return ip.ParseTaxTables(data)
}

// ParseTaxTables decodes tax tables and merges them over the defaults
func (ip *InputParser) ParseTaxTables(data []byte) (domain.TaxTables, error) {
	var raw map[string]domain.TaxData
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse tax tables: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("tax tables file defines no filing status")
	}

	tables := calculation.DefaultTaxTables()
	for key, table := range raw {
		status, err := domain.ParseFilingStatus(key)
		if err != nil {
			return nil, fmt.Errorf("tax table %q: %w", key, err)
		}
		if err := ip.ValidateTaxData(&table); err != nil {
			return nil, fmt.Errorf("tax table %q validation failed: %w", key, err)
		}
		tables[status] = table
	}

	return tables, nil
}

// ValidateTaxData checks that brackets start at zero and rise strictly
func (ip *InputParser) ValidateTaxData(data *domain.TaxData) error {
	if data.Year == 0 {
		return fmt.Errorf("year is required")
	}
	if len(data.IncomeTaxBrackets) == 0 {
		return fmt.Errorf("at least one income tax bracket is required")
	}
	if !data.IncomeTaxBrackets[0].Start.IsZero() {
		return fmt.Errorf("first bracket must start at 0")
	}
	for i, b := range data.IncomeTaxBrackets {
		if b.Rate.IsNegative() || b.Rate.GreaterThan(hundred) {
			return fmt.Errorf("bracket %d rate must be between 0 and 100", i)
		}
		if i > 0 && !b.Start.GreaterThan(data.IncomeTaxBrackets[i-1].Start) {
			return fmt.Errorf("bracket %d must start above bracket %d", i, i-1)
		}
	}
	if data.StandardDeduction.IsNegative() {
		return fmt.Errorf("standard deduction cannot be negative")
	}
	if data.Max401kContribution.IsNegative() {
		return fmt.Errorf("max 401(k) contribution cannot be negative")
	}
	if data.CapitalGainsRate.IsNegative() || data.EarlyWithdrawalPenaltyRate.IsNegative() {
		return fmt.Errorf("rates cannot be negative")
	}
	return nil
}
