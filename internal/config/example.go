package config

import (
	"fmt"
	"io"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

// CreateExampleConfiguration returns a two-earner household that buys a home
// and keeps an old employer's 401(k)
func CreateExampleConfiguration() *domain.ModelParameters {
	remainingPrincipal := decimal.NewFromInt(180000)
	homeBuyPrice := decimal.NewFromInt(300000)

	return &domain.ModelParameters{
		StartYear:           2025,
		DurationYears:       40,
		InflationRate:       decimal.NewFromFloat(2.5),
		TargetEmergencyFund: decimal.NewFromInt(30000),
		People: []domain.Person{
			{ID: 1, Name: "Alex", Birthday: time.Date(1990, time.March, 20, 0, 0, 0, 0, time.UTC)},
			{ID: 2, Name: "Sam", Birthday: time.Date(1988, time.October, 5, 0, 0, 0, 0, time.UTC)},
		},
		Tax: domain.TaxParameters{
			FilingStatus:       domain.FilingStatusJoint,
			EffectiveStateRate: decimal.NewFromInt(4),
		},
		Jobs: []domain.JobParameters{
			{
				CompanyName:                  "Acme Corp",
				EmployeeID:                   1,
				StartDate:                    month(2018, time.September),
				EndDate:                      month(2050, time.March),
				InitialSalary:                decimal.NewFromInt(120000),
				InitialBonus:                 decimal.NewFromInt(10000),
				BonusMonth:                   time.December,
				RealRaiseRate:                decimal.NewFromInt(1),
				PercentOfMax401kContribution: decimal.NewFromInt(60),
				Company401kMatchRate:         decimal.NewFromInt(50),
				RetirementAccount: domain.RetirementAccountParameters{
					Name:             "Acme 401(k)",
					InitialValue:     decimal.NewFromInt(85000),
					AnnualReturnRate: decimal.NewFromInt(6),
				},
			},
			{
				CompanyName:                  "Globex",
				EmployeeID:                   2,
				StartDate:                    month(2025, time.June),
				EndDate:                      month(2052, time.December),
				InitialSalary:                decimal.NewFromInt(95000),
				BonusMonth:                   time.March,
				RealRaiseRate:                decimal.NewFromFloat(1.5),
				PercentOfMax401kContribution: decimal.NewFromInt(50),
				Company401kMatchRate:         decimal.NewFromInt(100),
				RetirementAccount: domain.RetirementAccountParameters{
					Name:             "Globex 401(k)",
					AnnualReturnRate: decimal.NewFromInt(6),
				},
			},
		},
		Expenses: []domain.ExpenseParameters{
			{
				Name:                  "Living",
				Start:                 month(2025, time.January),
				InitialMonthlyExpense: decimal.NewFromInt(4500),
				RealIncreaseRate:      decimal.NewFromFloat(0.5),
			},
			{
				Name:                  "Childcare",
				Start:                 month(2027, time.January),
				End:                   month(2032, time.August),
				InitialMonthlyExpense: decimal.NewFromInt(1800),
			},
		},
		Houses: []domain.HouseParameters{
			{
				Name:                      "Condo",
				BuyDate:                   month(2021, time.May),
				SellDate:                  month(2029, time.June),
				HomeValue:                 decimal.NewFromInt(340000),
				HomeValueAnnualGrowthRate: decimal.NewFromInt(3),
				MortgageRate:              decimal.NewFromFloat(3.25),
				MortgageLengthYears:       30,
				DownPaymentRate:           decimal.NewFromInt(20),
				RemainingPrincipal:        &remainingPrincipal,
				HomeBuyPrice:              &homeBuyPrice,
				MonthlyCommonFee:          decimal.NewFromInt(350),
				PropertyTaxRate:           decimal.NewFromFloat(1.1),
				InsuranceRate:             decimal.NewFromFloat(0.3),
				MaintenanceRate:           decimal.NewFromInt(1),
				ClosingCostRate:           decimal.NewFromInt(3),
				SellingCostRate:           decimal.NewFromInt(6),
			},
			{
				Name:                      "House",
				BuyDate:                   month(2029, time.June),
				HomeValue:                 decimal.NewFromInt(650000),
				HomeValueAnnualGrowthRate: decimal.NewFromInt(3),
				MortgageRate:              decimal.NewFromFloat(5.5),
				MortgageLengthYears:       30,
				DownPaymentRate:           decimal.NewFromInt(20),
				PropertyTaxRate:           decimal.NewFromFloat(1.1),
				InsuranceRate:             decimal.NewFromFloat(0.3),
				MaintenanceRate:           decimal.NewFromInt(1),
				ClosingCostRate:           decimal.NewFromInt(3),
				SellingCostRate:           decimal.NewFromInt(6),
			},
		},
		SavingsAccount: domain.SavingsAccountParameters{
			Name:                  "High Yield Savings",
			InitialValue:          decimal.NewFromInt(40000),
			AnnualPercentageYield: decimal.NewFromFloat(4.2),
		},
		BrokerageAccount: domain.BrokerageAccountParameters{
			Name:              "Index Funds",
			InitialValue:      decimal.NewFromInt(60000),
			InitialCostBasis:  decimal.NewFromInt(45000),
			AnnualReturnRate:  decimal.NewFromInt(7),
			ManagementFeeRate: decimal.NewFromFloat(0.05),
		},
		RetirementAccounts: []domain.RetirementAccountParameters{
			{
				Name:             "Sam Old 401(k)",
				EmployeeID:       2,
				InitialValue:     decimal.NewFromInt(42000),
				AnnualReturnRate: decimal.NewFromInt(6),
			},
		},
	}
}

// WriteExampleConfiguration writes the example household as YAML
func WriteExampleConfiguration(w io.Writer) error {
	if err := encodeParams(w, CreateExampleConfiguration()); err != nil {
		return fmt.Errorf("failed to encode example configuration: %w", err)
	}
	return nil
}

func encodeParams(w io.Writer, params *domain.ModelParameters) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(params); err != nil {
		return err
	}
	return enc.Close()
}
