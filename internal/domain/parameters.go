package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// All rates in parameter records are percentages: 5 means 5%.

// Person is a household member. IDs are supplied by the caller and must be unique.
type Person struct {
	ID       int       `yaml:"id" json:"id"`
	Name     string    `yaml:"name" json:"name"`
	Birthday time.Time `yaml:"birthday" json:"birthday"`
}

// TaxParameters selects the household's filing table and flat state rate
type TaxParameters struct {
	FilingStatus       FilingStatus    `yaml:"filing_status" json:"filing_status"`
	EffectiveStateRate decimal.Decimal `yaml:"effective_state_rate" json:"effective_state_rate"`
}

// RetirementAccountParameters describes a 401(k)-style account
type RetirementAccountParameters struct {
	Name             string          `yaml:"name" json:"name"`
	EmployeeID       int             `yaml:"employee_id" json:"employee_id"`
	InitialValue     decimal.Decimal `yaml:"initial_value" json:"initial_value"`
	AnnualReturnRate decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
}

// JobParameters describes one period of employment and its 401(k) plan
type JobParameters struct {
	CompanyName string `yaml:"company_name" json:"company_name"`
	EmployeeID  int    `yaml:"employee_id" json:"employee_id"`

	StartDate time.Time `yaml:"start_date" json:"start_date"`
	// EndDate is inclusive; the zero value means the job never ends
	EndDate   time.Time `yaml:"end_date,omitempty" json:"end_date,omitempty"`

	InitialSalary decimal.Decimal `yaml:"initial_salary" json:"initial_salary"`
	InitialBonus  decimal.Decimal `yaml:"initial_bonus" json:"initial_bonus"`
	BonusMonth    time.Month      `yaml:"bonus_month" json:"bonus_month"`
	RealRaiseRate decimal.Decimal `yaml:"real_raise_rate" json:"real_raise_rate"`

	PercentOfMax401kContribution decimal.Decimal `yaml:"percent_of_max_401k_contribution" json:"percent_of_max_401k_contribution"`
	Company401kMatchRate         decimal.Decimal `yaml:"company_401k_match_rate" json:"company_401k_match_rate"`

	// RetirementAccount is the plan account owned by this job
	RetirementAccount RetirementAccountParameters `yaml:"retirement_account" json:"retirement_account"`
}

// ExpenseParameters describes a recurring monthly cost
type ExpenseParameters struct {
	Name                  string          `yaml:"name" json:"name"`
	Start                 time.Time       `yaml:"start" json:"start"`
	End                   time.Time       `yaml:"end,omitempty" json:"end,omitempty"`
	InitialMonthlyExpense decimal.Decimal `yaml:"initial_monthly_expense" json:"initial_monthly_expense"`
	RealIncreaseRate      decimal.Decimal `yaml:"real_increase_rate" json:"real_increase_rate"`
}

// HouseParameters describes a mortgage-financed home
type HouseParameters struct {
	Name     string    `yaml:"name" json:"name"`
	BuyDate  time.Time `yaml:"buy_date" json:"buy_date"`
	SellDate time.Time `yaml:"sell_date,omitempty" json:"sell_date,omitempty"`

	// HomeValue is in start-year dollars
	HomeValue                 decimal.Decimal `yaml:"home_value" json:"home_value"`
	HomeValueAnnualGrowthRate decimal.Decimal `yaml:"home_value_annual_growth_rate" json:"home_value_annual_growth_rate"`

	MortgageRate        decimal.Decimal `yaml:"mortgage_rate" json:"mortgage_rate"`
	MortgageLengthYears int             `yaml:"mortgage_length_years" json:"mortgage_length_years"`
	DownPaymentRate     decimal.Decimal `yaml:"down_payment_rate" json:"down_payment_rate"`

	// Required when BuyDate precedes the first simulated year
	RemainingPrincipal *decimal.Decimal `yaml:"remaining_principal,omitempty" json:"remaining_principal,omitempty"`
	HomeBuyPrice       *decimal.Decimal `yaml:"home_buy_price,omitempty" json:"home_buy_price,omitempty"`

	MonthlyCommonFee decimal.Decimal `yaml:"monthly_common_fee" json:"monthly_common_fee"`
	PropertyTaxRate  decimal.Decimal `yaml:"property_tax_rate" json:"property_tax_rate"`
	InsuranceRate    decimal.Decimal `yaml:"insurance_rate" json:"insurance_rate"`
	MaintenanceRate  decimal.Decimal `yaml:"maintenance_rate" json:"maintenance_rate"`

	ClosingCostRate decimal.Decimal `yaml:"closing_cost_rate" json:"closing_cost_rate"`
	SellingCostRate decimal.Decimal `yaml:"selling_cost_rate" json:"selling_cost_rate"`
}

// SavingsAccountParameters describes the household's cash account
type SavingsAccountParameters struct {
	Name                  string          `yaml:"name" json:"name"`
	InitialValue          decimal.Decimal `yaml:"initial_value" json:"initial_value"`
	AnnualPercentageYield decimal.Decimal `yaml:"annual_percentage_yield" json:"annual_percentage_yield"`
}

// BrokerageAccountParameters describes the taxable investment account
type BrokerageAccountParameters struct {
	Name              string          `yaml:"name" json:"name"`
	InitialValue      decimal.Decimal `yaml:"initial_value" json:"initial_value"`
	InitialCostBasis  decimal.Decimal `yaml:"initial_cost_basis" json:"initial_cost_basis"`
	AnnualReturnRate  decimal.Decimal `yaml:"annual_return_rate" json:"annual_return_rate"`
	ManagementFeeRate decimal.Decimal `yaml:"management_fee_rate" json:"management_fee_rate"`
}

// ModelParameters is the complete, immutable input to a simulation
type ModelParameters struct {
	StartYear           int             `yaml:"start_year" json:"start_year"`
	DurationYears       int             `yaml:"duration_years" json:"duration_years"`
	InflationRate       decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	TargetEmergencyFund decimal.Decimal `yaml:"target_emergency_fund" json:"target_emergency_fund"`

	People             []Person                      `yaml:"people" json:"people"`
	Tax                TaxParameters                 `yaml:"tax" json:"tax"`
	Jobs               []JobParameters               `yaml:"jobs" json:"jobs"`
	Expenses           []ExpenseParameters           `yaml:"expenses" json:"expenses"`
	Houses             []HouseParameters             `yaml:"houses" json:"houses"`
	SavingsAccount     SavingsAccountParameters      `yaml:"savings_account" json:"savings_account"`
	BrokerageAccount   BrokerageAccountParameters    `yaml:"brokerage_account" json:"brokerage_account"`
	RetirementAccounts []RetirementAccountParameters `yaml:"retirement_accounts" json:"retirement_accounts"`
}

// TotalMonths returns the number of simulated months
func (p *ModelParameters) TotalMonths() int {
	return 12 * p.DurationYears
}
