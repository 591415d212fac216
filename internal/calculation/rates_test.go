package calculation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnnualToMonthlyRate(t *testing.T) {
	tests := []struct {
		name    string
		annual  float64
		monthly float64
	}{
		{"zero", 0, 0},
		{"two percent monthly", 100 * (math.Pow(1.02, 12) - 1), 2},
		{"twelve percent annual", 12, 0.948879293},
		{"negative", -10, -0.874161},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.monthly, AnnualToMonthlyRate(dec(tt.annual)).InexactFloat64(), 1e-6)
		})
	}
}

func TestMonthlyRateCompoundsToAnnual(t *testing.T) {
	for _, annual := range []float64{0.5, 3, 7, 12.5, 40} {
		monthly := AnnualToMonthlyRate(dec(annual)).InexactFloat64()
		compounded := 100 * (math.Pow(1+monthly/100, 12) - 1)
		assert.InDelta(t, annual, compounded, 1e-9, "annual rate %v", annual)
	}
}

func TestAPYToMonthlyRate(t *testing.T) {
	apy := annualRateForMonthly(2)
	assert.InDelta(t, 2, APYToMonthlyRate(apy).InexactFloat64(), 1e-9)
	assert.True(t, APYToMonthlyRate(apy).Equal(AnnualToMonthlyRate(apy)))
}

func TestPercentOf(t *testing.T) {
	assert.True(t, percentOf(dec(15), dec(200)).Equal(dec(30)))
	assert.True(t, growthFactor(dec(3)).Equal(dec(1.03)))
}
