package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// moneyPlaces bounds the scale of balances that are multiplied every month
const moneyPlaces = 10

var (
	hundred = decimal.NewFromInt(100)
	twelve  = decimal.NewFromInt(12)
	one     = decimal.NewFromInt(1)
)

// AnnualToMonthlyRate converts an annual compounding rate (percent) to the
// monthly rate (percent) that compounds to it over 12 months.
func AnnualToMonthlyRate(annualRate decimal.Decimal) decimal.Decimal {
	return monthlyCompoundingRate(annualRate)
}

// APYToMonthlyRate converts an annual percentage yield to a monthly rate (percent).
// APY is already an effective yield, so the conversion is the same.
func APYToMonthlyRate(apy decimal.Decimal) decimal.Decimal {
	return monthlyCompoundingRate(apy)
}

func monthlyCompoundingRate(annualRate decimal.Decimal) decimal.Decimal {
	a := annualRate.InexactFloat64()
	return decimal.NewFromFloat(100 * (math.Pow(1+a/100, 1.0/12) - 1))
}

// percentOf returns rate% of amount
func percentOf(rate, amount decimal.Decimal) decimal.Decimal {
	return roundMoney(rate.Div(hundred).Mul(amount))
}

// growthFactor returns 1 + rate/100
func growthFactor(rate decimal.Decimal) decimal.Decimal {
	return one.Add(rate.Div(hundred))
}

func roundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyPlaces)
}
