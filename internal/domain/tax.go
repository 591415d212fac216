package domain

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// FilingStatus selects a tax table
type FilingStatus string

const (
	FilingStatusJoint  FilingStatus = "joint"
	FilingStatusSingle FilingStatus = "single"
)

// ParseFilingStatus resolves user input and common aliases to a FilingStatus
func ParseFilingStatus(s string) (FilingStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "joint", "married_filing_jointly", "mfj":
		return FilingStatusJoint, nil
	case "single":
		return FilingStatusSingle, nil
	default:
		return "", fmt.Errorf("unrecognized filing status %q", s)
	}
}

// TaxBracket is a marginal rate applied from Start up to the next bracket's Start
type TaxBracket struct {
	Start decimal.Decimal `yaml:"start" json:"start"`
	Rate  decimal.Decimal `yaml:"rate" json:"rate"`
}

// TaxData is one year's tax table for a filing status.
// Dollar amounts are indexed to inflation; rates and ages are not.
type TaxData struct {
	Year                       int             `yaml:"year" json:"year"`
	IncomeTaxBrackets          []TaxBracket    `yaml:"income_tax_brackets" json:"income_tax_brackets"`
	StandardDeduction          decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	CapitalGainsRate           decimal.Decimal `yaml:"capital_gains_rate" json:"capital_gains_rate"`
	Max401kContribution        decimal.Decimal `yaml:"max_401k_contribution" json:"max_401k_contribution"`
	PenaltyFreeWithdrawalAge   dateutil.Age    `yaml:"penalty_free_withdrawal_age" json:"penalty_free_withdrawal_age"`
	EarlyWithdrawalPenaltyRate decimal.Decimal `yaml:"early_withdrawal_penalty_rate" json:"early_withdrawal_penalty_rate"`
}

// TaxTables maps each filing status to its base-year table
type TaxTables map[FilingStatus]TaxData

// W2 reports a job's taxable wages for a year
type W2 struct {
	Year          int             `json:"year"`
	CompanyName   string          `json:"company_name"`
	EmployeeID    int             `json:"employee_id"`
	TaxableIncome decimal.Decimal `json:"taxable_income"`
}

// Form1099Int reports interest earned by a savings account
type Form1099Int struct {
	Year        int             `json:"year"`
	AccountName string          `json:"account_name"`
	Interest    decimal.Decimal `json:"interest"`
}

// Form1099B reports brokerage sales
type Form1099B struct {
	Year        int             `json:"year"`
	AccountName string          `json:"account_name"`
	CostBasis   decimal.Decimal `json:"cost_basis"`
	Proceeds    decimal.Decimal `json:"proceeds"`
}

// Gain returns realised gain, never negative
func (f Form1099B) Gain() decimal.Decimal {
	return decimal.Max(decimal.Zero, f.Proceeds.Sub(f.CostBasis))
}

// Form1099R reports retirement account distributions
type Form1099R struct {
	Year                int             `json:"year"`
	AccountName         string          `json:"account_name"`
	TaxableIncome       decimal.Decimal `json:"taxable_income"`
	IsEarlyDistribution bool            `json:"is_early_distribution"`
}

// Form1098 reports mortgage interest and property tax for a house
type Form1098 struct {
	Year                 int             `json:"year"`
	HouseName            string          `json:"house_name"`
	MortgageInterestPaid decimal.Decimal `json:"mortgage_interest_paid"`
	PropertyTax          decimal.Decimal `json:"property_tax"`
}

// TaxDocuments bundles every form issued for one tax year
type TaxDocuments struct {
	W2s          []W2
	Form1099Ints []Form1099Int
	Form1099Bs   []Form1099B
	Form1099Rs   []Form1099R
	Form1098s    []Form1098
}

// TaxBill is the liability computed for one tax year
type TaxBill struct {
	Year                   int             `json:"year"`
	OrdinaryIncome         decimal.Decimal `json:"ordinary_income"`
	Deduction              decimal.Decimal `json:"deduction"`
	FederalIncomeTax       decimal.Decimal `json:"federal_income_tax"`
	StateTax               decimal.Decimal `json:"state_tax"`
	CapitalGainsTax        decimal.Decimal `json:"capital_gains_tax"`
	EarlyWithdrawalPenalty decimal.Decimal `json:"early_withdrawal_penalty"`
	PropertyTax            decimal.Decimal `json:"property_tax"`
	Total                  decimal.Decimal `json:"total"`
}
