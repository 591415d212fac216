package config

import (
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	maxDurationYears = 100
	maxStartYear     = 2200
	minStartYear     = 1900
)

var (
	minusHundred = decimal.NewFromInt(-100)
	hundred      = decimal.NewFromInt(100)
)

// InputParser handles parsing of household configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads model parameters from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.ModelParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates model parameters
func (ip *InputParser) Parse(data []byte) (*domain.ModelParameters, error) {
	var params domain.ModelParameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.normalize(&params); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := ip.ValidateConfiguration(&params); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &params, nil
}

// normalize resolves filing status aliases and snaps dates to month starts
func (ip *InputParser) normalize(params *domain.ModelParameters) error {
	if params.Tax.FilingStatus == "" {
		params.Tax.FilingStatus = domain.FilingStatusJoint
	} else {
		status, err := domain.ParseFilingStatus(string(params.Tax.FilingStatus))
		if err != nil {
			return err
		}
		params.Tax.FilingStatus = status
	}

	for i := range params.Jobs {
		params.Jobs[i].StartDate = monthStart(params.Jobs[i].StartDate)
		params.Jobs[i].EndDate = monthStart(params.Jobs[i].EndDate)
	}
	for i := range params.Expenses {
		params.Expenses[i].Start = monthStart(params.Expenses[i].Start)
		params.Expenses[i].End = monthStart(params.Expenses[i].End)
	}
	for i := range params.Houses {
		params.Houses[i].BuyDate = monthStart(params.Houses[i].BuyDate)
		params.Houses[i].SellDate = monthStart(params.Houses[i].SellDate)
	}

	return nil
}

func monthStart(t time.Time) time.Time {
	if t.IsZero() {
		return t
	}
	return dateutil.MonthStart(t)
}

// ValidateConfiguration validates the loaded parameters
func (ip *InputParser) ValidateConfiguration(params *domain.ModelParameters) error {
	if err := ip.validateGlobals(params); err != nil {
		return fmt.Errorf("global settings validation failed: %w", err)
	}

	ids := make(map[int]bool, len(params.People))
	for i, person := range params.People {
		if err := ip.validatePerson(&person, params.StartYear); err != nil {
			return fmt.Errorf("person %d (%s) validation failed: %w", i, person.Name, err)
		}
		if ids[person.ID] {
			return fmt.Errorf("person %d (%s): duplicate id %d", i, person.Name, person.ID)
		}
		ids[person.ID] = true
	}

	for i, job := range params.Jobs {
		if err := ip.validateJob(&job, ids); err != nil {
			return fmt.Errorf("job %d (%s) validation failed: %w", i, job.CompanyName, err)
		}
	}

	for i, expense := range params.Expenses {
		if err := ip.validateExpense(&expense); err != nil {
			return fmt.Errorf("expense %d (%s) validation failed: %w", i, expense.Name, err)
		}
	}

	for i, house := range params.Houses {
		if err := ip.validateHouse(&house, params.StartYear); err != nil {
			return fmt.Errorf("house %d (%s) validation failed: %w", i, house.Name, err)
		}
	}

	if err := ip.validateSavings(&params.SavingsAccount); err != nil {
		return fmt.Errorf("savings account validation failed: %w", err)
	}
	if err := ip.validateBrokerage(&params.BrokerageAccount); err != nil {
		return fmt.Errorf("brokerage account validation failed: %w", err)
	}

	for i, account := range params.RetirementAccounts {
		if err := ip.validateRetirementAccount(&account); err != nil {
			return fmt.Errorf("retirement account %d (%s) validation failed: %w", i, account.Name, err)
		}
		if !ids[account.EmployeeID] {
			return fmt.Errorf("retirement account %d (%s): unknown employee id %d", i, account.Name, account.EmployeeID)
		}
	}

	return nil
}

func (ip *InputParser) validateGlobals(params *domain.ModelParameters) error {
	if params.StartYear < minStartYear || params.StartYear > maxStartYear {
		return fmt.Errorf("start year must be between %d and %d", minStartYear, maxStartYear)
	}
	if params.DurationYears <= 0 || params.DurationYears > maxDurationYears {
		return fmt.Errorf("duration years must be between 1 and %d", maxDurationYears)
	}
	if err := validateRate("inflation rate", params.InflationRate); err != nil {
		return err
	}
	if params.TargetEmergencyFund.IsNegative() {
		return fmt.Errorf("target emergency fund cannot be negative")
	}
	if err := validateRate("effective state rate", params.Tax.EffectiveStateRate); err != nil {
		return err
	}
	if len(params.People) == 0 {
		return fmt.Errorf("at least one person is required")
	}
	return nil
}

func (ip *InputParser) validatePerson(person *domain.Person, startYear int) error {
	if person.Name == "" {
		return fmt.Errorf("name is required")
	}
	if person.Birthday.IsZero() {
		return fmt.Errorf("birthday is required")
	}
	if dateutil.YearsBetween(person.Birthday, dateutil.MonthOf(startYear, time.January)) < 0 {
		return fmt.Errorf("birthday %s is after the start of %d", person.Birthday.Format("2006-01-02"), startYear)
	}
	return nil
}

func (ip *InputParser) validateJob(job *domain.JobParameters, ids map[int]bool) error {
	if job.CompanyName == "" {
		return fmt.Errorf("company name is required")
	}
	if !ids[job.EmployeeID] {
		return fmt.Errorf("unknown employee id %d", job.EmployeeID)
	}
	if job.StartDate.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if !job.EndDate.IsZero() && job.EndDate.Before(job.StartDate) {
		return fmt.Errorf("end date cannot be before start date")
	}
	if job.InitialSalary.IsNegative() {
		return fmt.Errorf("initial salary cannot be negative")
	}
	if job.InitialBonus.IsNegative() {
		return fmt.Errorf("initial bonus cannot be negative")
	}
	if job.BonusMonth < time.January || job.BonusMonth > time.December {
		return fmt.Errorf("bonus month must be between 1 and 12")
	}
	if err := validateRate("real raise rate", job.RealRaiseRate); err != nil {
		return err
	}
	if job.PercentOfMax401kContribution.IsNegative() || job.PercentOfMax401kContribution.GreaterThan(hundred) {
		return fmt.Errorf("percent of max 401(k) contribution must be between 0 and 100")
	}
	if job.Company401kMatchRate.IsNegative() {
		return fmt.Errorf("company 401(k) match rate cannot be negative")
	}
	if err := ip.validateRetirementAccount(&job.RetirementAccount); err != nil {
		return fmt.Errorf("retirement account: %w", err)
	}
	return nil
}

func (ip *InputParser) validateExpense(expense *domain.ExpenseParameters) error {
	if expense.Name == "" {
		return fmt.Errorf("name is required")
	}
	if expense.Start.IsZero() {
		return fmt.Errorf("start date is required")
	}
	if !expense.End.IsZero() && expense.End.Before(expense.Start) {
		return fmt.Errorf("end date cannot be before start date")
	}
	if expense.InitialMonthlyExpense.IsNegative() {
		return fmt.Errorf("initial monthly expense cannot be negative")
	}
	return validateRate("real increase rate", expense.RealIncreaseRate)
}

func (ip *InputParser) validateHouse(house *domain.HouseParameters, startYear int) error {
	if house.Name == "" {
		return fmt.Errorf("name is required")
	}
	if house.BuyDate.IsZero() {
		return fmt.Errorf("buy date is required")
	}
	if !house.SellDate.IsZero() && !house.SellDate.After(house.BuyDate) {
		return fmt.Errorf("sell date must be after buy date")
	}
	if !house.HomeValue.IsPositive() {
		return fmt.Errorf("home value must be positive")
	}
	if house.MortgageLengthYears < 0 {
		return fmt.Errorf("mortgage length cannot be negative")
	}
	if house.DownPaymentRate.IsNegative() || house.DownPaymentRate.GreaterThan(hundred) {
		return fmt.Errorf("down payment rate must be between 0 and 100")
	}

	rates := map[string]decimal.Decimal{
		"home value annual growth rate": house.HomeValueAnnualGrowthRate,
		"mortgage rate":                 house.MortgageRate,
		"property tax rate":             house.PropertyTaxRate,
		"insurance rate":                house.InsuranceRate,
		"maintenance rate":              house.MaintenanceRate,
		"closing cost rate":             house.ClosingCostRate,
		"selling cost rate":             house.SellingCostRate,
	}
	names := make([]string, 0, len(rates))
	for name := range rates {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := validateRate(name, rates[name]); err != nil {
			return err
		}
	}

	alreadyBought := house.BuyDate.Before(dateutil.MonthOf(startYear, time.January))
	alreadySold := !house.SellDate.IsZero() && house.SellDate.Before(dateutil.MonthOf(startYear, time.January))
	if alreadyBought && !alreadySold {
		if house.RemainingPrincipal == nil {
			return fmt.Errorf("remaining principal is required for a home bought before %d", startYear)
		}
		if house.HomeBuyPrice == nil {
			return fmt.Errorf("home buy price is required for a home bought before %d", startYear)
		}
		if house.RemainingPrincipal.IsNegative() {
			return fmt.Errorf("remaining principal cannot be negative")
		}
	}
	return nil
}

func (ip *InputParser) validateSavings(account *domain.SavingsAccountParameters) error {
	if account.InitialValue.IsNegative() {
		return fmt.Errorf("initial value cannot be negative")
	}
	return validateRate("annual percentage yield", account.AnnualPercentageYield)
}

func (ip *InputParser) validateBrokerage(account *domain.BrokerageAccountParameters) error {
	if account.InitialValue.IsNegative() {
		return fmt.Errorf("initial value cannot be negative")
	}
	if account.InitialCostBasis.IsNegative() {
		return fmt.Errorf("initial cost basis cannot be negative")
	}
	if account.ManagementFeeRate.IsNegative() || account.ManagementFeeRate.GreaterThan(hundred) {
		return fmt.Errorf("management fee rate must be between 0 and 100")
	}
	return validateRate("annual return rate", account.AnnualReturnRate)
}

func (ip *InputParser) validateRetirementAccount(account *domain.RetirementAccountParameters) error {
	if account.InitialValue.IsNegative() {
		return fmt.Errorf("initial value cannot be negative")
	}
	return validateRate("annual return rate", account.AnnualReturnRate)
}

// validateRate rejects percentages at or below -100, which would wipe out a balance
func validateRate(name string, rate decimal.Decimal) error {
	if rate.LessThanOrEqual(minusHundred) {
		return fmt.Errorf("%s must be greater than -100%%", name)
	}
	return nil
}
