package dateutil

import (
	"fmt"
	"time"
)

// MonthLayout is the layout used for month-granular dates in output
const MonthLayout = "2006-01"

// Forever is the stand-in end date for open-ended intervals
var Forever = time.Date(9999, time.December, 1, 0, 0, 0, 0, time.UTC)

// Age is a duration expressed in whole years plus months
type Age struct {
	Years  int `yaml:"years" json:"years"`
	Months int `yaml:"months" json:"months"`
}

// TotalMonths returns the age in months
func (a Age) TotalMonths() int {
	return 12*a.Years + a.Months
}

// String returns a human readable age such as "59y6m"
func (a Age) String() string {
	return fmt.Sprintf("%dy%dm", a.Years, a.Months)
}

// Interval is a closed range of dates [Start, End]
type Interval struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether date falls inside the interval, both ends inclusive
func (i Interval) Contains(date time.Time) bool {
	return !date.Before(i.Start) && !date.After(i.End)
}

// AgeToDate returns the date a person born on birthday reaches age.
// Month overflow follows time.AddDate normalisation, so Jan 31 + 1 month is Mar 2/3.
func AgeToDate(age Age, birthday time.Time) time.Time {
	return birthday.AddDate(0, age.TotalMonths(), 0)
}

// NumOverlapMonths returns how many calendar months of interval fall in year
func NumOverlapMonths(interval Interval, year int) int {
	if interval.Start.Year() > year || interval.End.Year() < year {
		return 0
	}

	firstMonth := 0
	lastMonth := 11
	if interval.Start.Year() == year {
		firstMonth = MonthIndex(interval.Start)
	}
	if interval.End.Year() == year {
		lastMonth = MonthIndex(interval.End)
	}

	return lastMonth - firstMonth + 1
}

// MonthIndex returns the zero-based month of date (0 = January)
func MonthIndex(date time.Time) int {
	return int(date.Month()) - 1
}

// MonthStart returns the first instant of the month containing date, in UTC
func MonthStart(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// MonthOf returns the first day of the given year and month, in UTC
func MonthOf(year int, month time.Month) time.Time {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
}

// OrForever returns date, or Forever when date is the zero time
func OrForever(date time.Time) time.Time {
	if date.IsZero() {
		return Forever
	}
	return date
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// FormatMonth formats date as YYYY-MM
func FormatMonth(date time.Time) string {
	return date.Format(MonthLayout)
}

// ParseMonth parses a YYYY-MM string into the first day of that month
func ParseMonth(s string) (time.Time, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
	}
	return t, nil
}

// YearsBetween returns whole years elapsed from birth to atDate
func YearsBetween(birth, atDate time.Time) int {
	years := atDate.Year() - birth.Year()
	if atDate.Month() < birth.Month() ||
		(atDate.Month() == birth.Month() && atDate.Day() < birth.Day()) {
		years--
	}
	return years
}
