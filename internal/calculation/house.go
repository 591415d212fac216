package calculation

import (
	"math"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// HouseState is the ownership lifecycle of a house
type HouseState int

const (
	HouseNotBought HouseState = iota
	HouseOwned
	HouseSold
)

func (s HouseState) String() string {
	switch s {
	case HouseNotBought:
		return "not bought"
	case HouseOwned:
		return "owned"
	case HouseSold:
		return "sold"
	default:
		return "unknown"
	}
}

// houseTaxInfo accumulates a year's deductible housing costs
type houseTaxInfo struct {
	interestPayment   decimal.Decimal
	assessedHomeValue decimal.Decimal
}

// House is a mortgage-financed home bought and optionally sold during the run
type House struct {
	params      domain.HouseParameters
	currentYear int
	state       HouseState

	buyMonth  time.Time
	sellMonth time.Time

	homeValue                  decimal.Decimal
	homeValueMonthlyGrowthRate decimal.Decimal

	remainingPrincipal     decimal.Decimal
	monthlyMortgagePayment decimal.Decimal
	// monthlyMortgageRate is in percent
	monthlyMortgageRate decimal.Decimal

	monthlyCommonFee decimal.Decimal

	currentTaxInfo  houseTaxInfo
	previousTaxInfo houseTaxInfo
}

// NewHouse places the house in its lifecycle as of January of year. A house
// bought before then must carry its remaining principal and original price.
func NewHouse(params domain.HouseParameters, year int) (*House, error) {
	h := &House{
		params:                     params,
		currentYear:                year,
		state:                      HouseNotBought,
		buyMonth:                   dateutil.MonthStart(params.BuyDate),
		sellMonth:                  dateutil.MonthStart(dateutil.OrForever(params.SellDate)),
		homeValue:                  params.HomeValue,
		homeValueMonthlyGrowthRate: AnnualToMonthlyRate(params.HomeValueAnnualGrowthRate),
		monthlyMortgageRate:        params.MortgageRate.Div(twelve),
		monthlyCommonFee:           params.MonthlyCommonFee,
		currentTaxInfo:             houseTaxInfo{assessedHomeValue: params.HomeValue},
	}

	startOfYear := dateutil.MonthOf(year, time.January)
	switch {
	case h.sellMonth.Before(startOfYear):
		h.state = HouseSold
	case h.buyMonth.Before(startOfYear):
		if params.RemainingPrincipal == nil {
			return nil, configErrorf("house "+params.Name, "remaining principal is required for a home bought before %d", year)
		}
		if params.HomeBuyPrice == nil {
			return nil, configErrorf("house "+params.Name, "home buy price is required for a home bought before %d", year)
		}
		h.state = HouseOwned
		h.remainingPrincipal = *params.RemainingPrincipal
		h.monthlyMortgagePayment = computeMonthlyMortgagePayment(*params.HomeBuyPrice, params.MortgageRate, params.MortgageLengthYears, params.DownPaymentRate)
	}

	return h, nil
}

// computeMonthlyMortgagePayment returns the fixed-rate amortized payment on the
// financed part of homePrice. mortgageRate and downPaymentRate are percentages.
func computeMonthlyMortgagePayment(homePrice, mortgageRate decimal.Decimal, mortgageYears int, downPaymentRate decimal.Decimal) decimal.Decimal {
	principal := one.Sub(downPaymentRate.Div(hundred)).Mul(homePrice)
	n := mortgageYears * 12
	if n <= 0 {
		return roundMoney(principal)
	}
	if mortgageRate.IsZero() {
		return roundMoney(principal.Div(decimal.NewFromInt(int64(n))))
	}

	r := mortgageRate.InexactFloat64() / 1200
	a := math.Pow(1+r, float64(n))
	factor := decimal.NewFromFloat(a / (a - 1) * r)
	return roundMoney(principal.Mul(factor))
}

func (h *House) Name() string {
	return h.params.Name
}

// State returns where the house is in its lifecycle
func (h *House) State() HouseState {
	return h.state
}

// HomeValue returns the current market value
func (h *House) HomeValue() decimal.Decimal {
	return h.homeValue
}

// RemainingPrincipal returns the unpaid mortgage balance
func (h *House) RemainingPrincipal() decimal.Decimal {
	return h.remainingPrincipal
}

// MonthlyMortgagePayment returns the fixed scheduled payment
func (h *House) MonthlyMortgagePayment() decimal.Decimal {
	return h.monthlyMortgagePayment
}

// HomeValueMonthlyGrowthRate returns the monthly appreciation rate in percent
func (h *House) HomeValueMonthlyGrowthRate() decimal.Decimal {
	return h.homeValueMonthlyGrowthRate
}

// buyHome takes out the mortgage and returns the cash paid at closing as a negative amount
func (h *House) buyHome() decimal.Decimal {
	h.state = HouseOwned
	h.monthlyMortgagePayment = computeMonthlyMortgagePayment(h.homeValue, h.params.MortgageRate, h.params.MortgageLengthYears, h.params.DownPaymentRate)

	downPayment := percentOf(h.params.DownPaymentRate, h.homeValue)
	closingCost := percentOf(h.params.ClosingCostRate, h.homeValue)
	h.remainingPrincipal = h.homeValue.Sub(downPayment)

	return downPayment.Add(closingCost).Neg()
}

// sellHome returns the proceeds after paying off the mortgage and selling costs
func (h *House) sellHome() decimal.Decimal {
	h.state = HouseSold
	costs := percentOf(h.params.SellingCostRate, h.homeValue).Add(h.remainingPrincipal)
	return h.homeValue.Sub(costs)
}

// makeMonthlyMortgagePayment accrues a month of interest and pays the scheduled
// payment. The payment is charged for as long as the house is owned; principal
// never drops below zero.
func (h *House) makeMonthlyMortgagePayment() decimal.Decimal {
	interest := percentOf(h.monthlyMortgageRate, h.remainingPrincipal)
	h.currentTaxInfo.interestPayment = h.currentTaxInfo.interestPayment.Add(interest)

	owed := h.remainingPrincipal.Add(interest)
	h.remainingPrincipal = decimal.Max(decimal.Zero, owed.Sub(h.monthlyMortgagePayment))

	return h.monthlyMortgagePayment
}

// makeMonthlyPayments returns this month's total housing cost
func (h *House) makeMonthlyPayments() decimal.Decimal {
	mortgage := h.makeMonthlyMortgagePayment()
	insurance := roundMoney(h.params.InsuranceRate.Div(hundred).Mul(h.homeValue).Div(twelve))
	maintenance := roundMoney(h.params.MaintenanceRate.Div(hundred).Mul(h.homeValue).Div(twelve))
	return mortgage.Add(h.monthlyCommonFee).Add(insurance).Add(maintenance)
}

// ApplyMonthlyAppreciation grows the home value while it is owned
func (h *House) ApplyMonthlyAppreciation() {
	if h.state == HouseOwned {
		h.homeValue = roundMoney(h.homeValue.Mul(growthFactor(h.homeValueMonthlyGrowthRate)))
	}
}

// ExecuteMonthlyCashflow returns the net cash effect of the house for month.
// The purchase month pays closing costs and the first month's payments; the sale
// month only receives the proceeds.
func (h *House) ExecuteMonthlyCashflow(month time.Month) decimal.Decimal {
	current := dateutil.MonthOf(h.currentYear, month)

	switch {
	case current.Equal(h.buyMonth) && h.state == HouseNotBought:
		balance := h.buyHome()
		return balance.Sub(h.makeMonthlyPayments())
	case current.Equal(h.sellMonth) && h.state == HouseOwned:
		return h.sellHome()
	case h.state == HouseOwned && current.After(h.buyMonth) && current.Before(h.sellMonth):
		return h.makeMonthlyPayments().Neg()
	default:
		return decimal.Zero
	}
}

// IncrementYear inflates the common fee, and the home value until purchase,
// then rolls the tax year with the current value as the new assessment.
func (h *House) IncrementYear(inflationRate decimal.Decimal) {
	h.currentYear++

	inflationFactor := growthFactor(inflationRate)
	h.monthlyCommonFee = roundMoney(h.monthlyCommonFee.Mul(inflationFactor))
	if h.state == HouseNotBought {
		h.homeValue = roundMoney(h.homeValue.Mul(inflationFactor))
	}

	h.previousTaxInfo = h.currentTaxInfo
	h.currentTaxInfo = houseTaxInfo{assessedHomeValue: h.homeValue}
}

// previousYearPropertyTax prorates the annual property tax over the months owned last year
func (h *House) previousYearPropertyTax() decimal.Decimal {
	ownership := dateutil.Interval{Start: h.buyMonth, End: h.sellMonth}
	months := dateutil.NumOverlapMonths(ownership, h.currentYear-1)
	if months == 0 {
		return decimal.Zero
	}
	rate := h.params.PropertyTaxRate.Mul(decimal.NewFromInt(int64(months))).Div(twelve)
	return percentOf(rate, h.previousTaxInfo.assessedHomeValue)
}

// PreviousYear1098 reports last year's mortgage interest and property tax
func (h *House) PreviousYear1098() domain.Form1098 {
	return domain.Form1098{
		Year:                 h.currentYear - 1,
		HouseName:            h.params.Name,
		MortgageInterestPaid: h.previousTaxInfo.interestPayment,
		PropertyTax:          h.previousYearPropertyTax(),
	}
}

// HomeEquity is home value less the mortgage while owned, otherwise zero
func (h *House) HomeEquity() decimal.Decimal {
	if h.state != HouseOwned {
		return decimal.Zero
	}
	return h.homeValue.Sub(h.remainingPrincipal)
}
