package calculation

import (
	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// TAX MODEL ASSUMPTIONS:
//
// 1. Federal brackets, standard deduction and the 401(k) cap are indexed to
//    inflation from the table's base year. Rates and ages are not.
//
// 2. State tax is a flat effective rate on ordinary income with no deduction.
//
// 3. Capital gains are taxed at a single rate; losses are not netted.
//
// 4. Property tax reported on a 1098 is both deductible and paid with the bill.

func brackets(pairs ...int64) []domain.TaxBracket {
	out := make([]domain.TaxBracket, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, domain.TaxBracket{
			Start: decimal.NewFromInt(pairs[i]),
			Rate:  decimal.NewFromInt(pairs[i+1]),
		})
	}
	return out
}

// DefaultTaxTables returns the built-in 2023 tables
func DefaultTaxTables() domain.TaxTables {
	return domain.TaxTables{
		domain.FilingStatusJoint: {
			Year: 2023,
			IncomeTaxBrackets: brackets(
				0, 10,
				22000, 12,
				89450, 22,
				190750, 24,
				364200, 32,
				462500, 35,
				693750, 37,
			),
			StandardDeduction:          decimal.NewFromInt(29200),
			CapitalGainsRate:           decimal.NewFromInt(15),
			Max401kContribution:        decimal.NewFromInt(22500),
			PenaltyFreeWithdrawalAge:   dateutil.Age{Years: 59, Months: 6},
			EarlyWithdrawalPenaltyRate: decimal.NewFromInt(10),
		},
		domain.FilingStatusSingle: {
			Year: 2023,
			IncomeTaxBrackets: brackets(
				0, 10,
				11000, 12,
				44725, 22,
				95375, 24,
				182100, 32,
				231250, 35,
				578125, 37,
			),
			StandardDeduction:          decimal.NewFromInt(14600),
			CapitalGainsRate:           decimal.NewFromInt(15),
			Max401kContribution:        decimal.NewFromInt(22500),
			PenaltyFreeWithdrawalAge:   dateutil.Age{Years: 59, Months: 6},
			EarlyWithdrawalPenaltyRate: decimal.NewFromInt(10),
		},
	}
}

// adjustTaxData indexes every dollar amount in data by numYears of inflation
func adjustTaxData(data domain.TaxData, inflationRate decimal.Decimal, numYears int) domain.TaxData {
	factor := growthFactor(inflationRate).Pow(decimal.NewFromInt(int64(numYears)))

	adjusted := make([]domain.TaxBracket, len(data.IncomeTaxBrackets))
	for i, b := range data.IncomeTaxBrackets {
		adjusted[i] = domain.TaxBracket{Start: roundMoney(b.Start.Mul(factor)), Rate: b.Rate}
	}

	return domain.TaxData{
		Year:                       data.Year + numYears,
		IncomeTaxBrackets:          adjusted,
		StandardDeduction:          roundMoney(data.StandardDeduction.Mul(factor)),
		CapitalGainsRate:           data.CapitalGainsRate,
		Max401kContribution:        roundMoney(data.Max401kContribution.Mul(factor)),
		PenaltyFreeWithdrawalAge:   data.PenaltyFreeWithdrawalAge,
		EarlyWithdrawalPenaltyRate: data.EarlyWithdrawalPenaltyRate,
	}
}

// ComputeProgressiveTax integrates income over brackets sorted by Start. The
// last bracket has no upper bound. Negative income owes nothing.
func ComputeProgressiveTax(income decimal.Decimal, taxBrackets []domain.TaxBracket) decimal.Decimal {
	var tax decimal.Decimal

	for i, bracket := range taxBrackets {
		if income.LessThanOrEqual(bracket.Start) {
			break
		}

		incomeInBracket := income.Sub(bracket.Start)
		if i+1 < len(taxBrackets) {
			incomeInBracket = decimal.Min(incomeInBracket, taxBrackets[i+1].Start.Sub(bracket.Start))
		}
		tax = tax.Add(percentOf(bracket.Rate, incomeInBracket))
	}

	return tax
}

// TaxManager tracks the inflation-indexed tax tables for the current and
// previous tax year and computes the household's annual bill.
type TaxManager struct {
	params   domain.TaxParameters
	current  domain.TaxData
	previous domain.TaxData
}

// NewTaxManager indexes the table for params.FilingStatus to year and year-1.
// A nil tables falls back to DefaultTaxTables.
func NewTaxManager(params domain.TaxParameters, year int, inflationRate decimal.Decimal, tables domain.TaxTables) (*TaxManager, error) {
	if tables == nil {
		tables = DefaultTaxTables()
	}

	base, ok := tables[params.FilingStatus]
	if !ok {
		return nil, configErrorf("tax manager", "no tax table for filing status %q", params.FilingStatus)
	}
	if len(base.IncomeTaxBrackets) == 0 {
		return nil, configErrorf("tax manager", "tax table for %q has no brackets", params.FilingStatus)
	}

	return &TaxManager{
		params:   params,
		current:  adjustTaxData(base, inflationRate, year-base.Year),
		previous: adjustTaxData(base, inflationRate, year-1-base.Year),
	}, nil
}

// CurrentTaxData returns the table for the year in progress
func (tm *TaxManager) CurrentTaxData() domain.TaxData {
	return tm.current
}

// PreviousTaxData returns the table for the year whose bill is due
func (tm *TaxManager) PreviousTaxData() domain.TaxData {
	return tm.previous
}

func (tm *TaxManager) Max401kContribution() decimal.Decimal {
	return tm.current.Max401kContribution
}

func (tm *TaxManager) PenaltyFreeWithdrawalAge() dateutil.Age {
	return tm.current.PenaltyFreeWithdrawalAge
}

// ComputePreviousYearTax totals last year's liability from the documents every
// account issued for it.
func (tm *TaxManager) ComputePreviousYearTax(docs domain.TaxDocuments) domain.TaxBill {
	data := tm.previous
	bill := domain.TaxBill{Year: data.Year}

	for _, d := range docs.W2s {
		bill.OrdinaryIncome = bill.OrdinaryIncome.Add(d.TaxableIncome)
	}
	for _, d := range docs.Form1099Ints {
		bill.OrdinaryIncome = bill.OrdinaryIncome.Add(d.Interest)
	}

	var earlyDistributions decimal.Decimal
	for _, d := range docs.Form1099Rs {
		bill.OrdinaryIncome = bill.OrdinaryIncome.Add(d.TaxableIncome)
		if d.IsEarlyDistribution {
			earlyDistributions = earlyDistributions.Add(d.TaxableIncome)
		}
	}

	var itemized decimal.Decimal
	for _, d := range docs.Form1098s {
		itemized = itemized.Add(d.MortgageInterestPaid).Add(d.PropertyTax)
		bill.PropertyTax = bill.PropertyTax.Add(d.PropertyTax)
	}
	bill.Deduction = decimal.Max(data.StandardDeduction, itemized)

	taxableIncome := decimal.Max(decimal.Zero, bill.OrdinaryIncome.Sub(bill.Deduction))
	bill.FederalIncomeTax = ComputeProgressiveTax(taxableIncome, data.IncomeTaxBrackets)

	bill.StateTax = percentOf(tm.params.EffectiveStateRate, bill.OrdinaryIncome)

	var gains decimal.Decimal
	for _, d := range docs.Form1099Bs {
		gains = gains.Add(d.Gain())
	}
	bill.CapitalGainsTax = percentOf(data.CapitalGainsRate, gains)

	bill.EarlyWithdrawalPenalty = percentOf(data.EarlyWithdrawalPenaltyRate, earlyDistributions)

	bill.Total = bill.FederalIncomeTax.
		Add(bill.StateTax).
		Add(bill.CapitalGainsTax).
		Add(bill.EarlyWithdrawalPenalty).
		Add(bill.PropertyTax)

	return bill
}

// IncrementYear shifts the current table to previous and indexes a new current one
func (tm *TaxManager) IncrementYear(inflationRate decimal.Decimal) {
	tm.previous = tm.current
	tm.current = adjustTaxData(tm.current, inflationRate, 1)
}
