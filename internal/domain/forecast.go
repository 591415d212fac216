package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AssetKind labels the source of an AssetSummary
type AssetKind string

const (
	AssetSavings    AssetKind = "savings"
	AssetBrokerage  AssetKind = "brokerage"
	AssetHome       AssetKind = "home_equity"
	AssetRetirement AssetKind = "retirement"
)

// AssetSummary is the value of one tracked asset at a point in time
type AssetSummary struct {
	Name  string          `yaml:"name" json:"name"`
	Kind  AssetKind       `yaml:"kind" json:"kind"`
	Value decimal.Decimal `yaml:"value" json:"value"`
}

// MonthSummary is a snapshot of the household after a simulated month
type MonthSummary struct {
	Date       time.Time       `yaml:"date" json:"date"`
	NetWorth   decimal.Decimal `yaml:"net_worth" json:"net_worth"`
	Assets     []AssetSummary  `yaml:"assets" json:"assets"`
	IsBankrupt bool            `yaml:"is_bankrupt" json:"is_bankrupt"`
	// Shortfall is the deficit left uncovered after every account was drained
	Shortfall  decimal.Decimal `yaml:"shortfall" json:"shortfall"`
}

// AssetValue returns the value of the named asset and whether it was found
func (ms MonthSummary) AssetValue(name string) (decimal.Decimal, bool) {
	for _, a := range ms.Assets {
		if a.Name == name {
			return a.Value, true
		}
	}
	return decimal.Zero, false
}

// Forecast is the time series produced by a simulation run
type Forecast struct {
	StartYear     int            `yaml:"start_year" json:"start_year"`
	DurationYears int            `yaml:"duration_years" json:"duration_years"`
	Months        []MonthSummary `yaml:"months" json:"months"`
	Bankrupt      bool           `yaml:"bankrupt" json:"bankrupt"`
	BankruptDate  *time.Time     `yaml:"bankrupt_date,omitempty" json:"bankrupt_date,omitempty"`
}

// Final returns the last snapshot, or the zero summary for an empty forecast
func (f *Forecast) Final() MonthSummary {
	if len(f.Months) == 0 {
		return MonthSummary{}
	}
	return f.Months[len(f.Months)-1]
}

// Annual returns the snapshot at the start of each year plus the final one
func (f *Forecast) Annual() []MonthSummary {
	var out []MonthSummary
	for i, m := range f.Months {
		if i%12 == 0 || i == len(f.Months)-1 {
			out = append(out, m)
		}
	}
	return out
}

// AssetNames returns asset labels in the order they are reported
func (f *Forecast) AssetNames() []string {
	if len(f.Months) == 0 {
		return nil
	}
	names := make([]string, 0, len(f.Months[0].Assets))
	for _, a := range f.Months[0].Assets {
		names = append(names, a.Name)
	}
	return names
}
