package calculation

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const moneyDelta = 0.01

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func date(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// annualRateForMonthly returns the annual rate that compounds to monthly each month
func annualRateForMonthly(monthly float64) decimal.Decimal {
	return dec(100 * (math.Pow(1+monthly/100, 12) - 1))
}

func assertMoney(t *testing.T, expected float64, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.InDelta(t, expected, actual.InexactFloat64(), moneyDelta, msgAndArgs...)
}

// recordingLogger captures formatted messages by level
type recordingLogger struct {
	debug, info, warn, errs []string
}

func (l *recordingLogger) Debugf(format string, args ...any) {
	l.debug = append(l.debug, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Infof(format string, args ...any) {
	l.info = append(l.info, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Warnf(format string, args ...any) {
	l.warn = append(l.warn, fmt.Sprintf(format, args...))
}

func (l *recordingLogger) Errorf(format string, args ...any) {
	l.errs = append(l.errs, fmt.Sprintf(format, args...))
}
