package compare

import (
	"fmt"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/internal/output"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// ComparisonResult holds the headline metrics of one simulated scenario
type ComparisonResult struct {
	ScenarioName string `json:"scenarioName"`
	Description  string `json:"description"`

	// Key Metrics
	FinalDate       time.Time       `json:"finalDate"`
	FinalNetWorth   decimal.Decimal `json:"finalNetWorth"`
	MinNetWorth     decimal.Decimal `json:"minNetWorth"`
	MinNetWorthDate time.Time       `json:"minNetWorthDate"`
	Bankrupt        bool            `json:"bankrupt"`
	BankruptDate    *time.Time      `json:"bankruptDate,omitempty"`

	// Comparison to Base
	NetWorthDiffFromBase decimal.Decimal `json:"netWorthDiffFromBase"`
	NetWorthPctFromBase  decimal.Decimal `json:"netWorthPctFromBase"`
	MinNetWorthDiff      decimal.Decimal `json:"minNetWorthDiff"`

	Forecast *domain.Forecast `json:"-"`
}

// BankruptMonth returns the bankruptcy month as YYYY-MM, or "" when solvent
func (r *ComparisonResult) BankruptMonth() string {
	if !r.Bankrupt || r.BankruptDate == nil {
		return ""
	}
	return dateutil.FormatMonth(*r.BankruptDate)
}

// ComparisonSet represents a collection of scenario comparisons
type ComparisonSet struct {
	BaseScenarioName   string             `json:"baseScenarioName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	ConfigPath         string             `json:"configPath"`
}

// MetricsCalculator extracts key metrics from forecasts
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the comparison metrics for a forecast
func (mc *MetricsCalculator) CalculateMetrics(name string, forecast *domain.Forecast) ComparisonResult {
	result := ComparisonResult{
		ScenarioName: name,
		Forecast:     forecast,
		Bankrupt:     forecast.Bankrupt,
		BankruptDate: forecast.BankruptDate,
	}
	if len(forecast.Months) == 0 {
		return result
	}

	final := forecast.Final()
	result.FinalDate = final.Date
	result.FinalNetWorth = final.NetWorth

	result.MinNetWorth = forecast.Months[0].NetWorth
	result.MinNetWorthDate = forecast.Months[0].Date
	for _, m := range forecast.Months[1:] {
		if m.NetWorth.LessThan(result.MinNetWorth) {
			result.MinNetWorth = m.NetWorth
			result.MinNetWorthDate = m.Date
		}
	}

	return result
}

// CalculateComparison computes comparison metrics between a scenario and a base
func (mc *MetricsCalculator) CalculateComparison(scenario, base ComparisonResult) ComparisonResult {
	scenario.NetWorthDiffFromBase = scenario.FinalNetWorth.Sub(base.FinalNetWorth)

	if !base.FinalNetWorth.IsZero() {
		scenario.NetWorthPctFromBase = scenario.NetWorthDiffFromBase.
			Div(base.FinalNetWorth.Abs()).
			Mul(decimal.NewFromInt(100))
	}

	scenario.MinNetWorthDiff = scenario.MinNetWorth.Sub(base.MinNetWorth)

	return scenario
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	// Highest final net worth
	best := -1
	for i, alt := range compSet.AlternativeResults {
		if alt.FinalNetWorth.GreaterThan(base.FinalNetWorth) &&
			(best < 0 || alt.FinalNetWorth.GreaterThan(compSet.AlternativeResults[best].FinalNetWorth)) {
			best = i
		}
	}
	if best >= 0 {
		alt := compSet.AlternativeResults[best]
		recommendations = append(recommendations,
			fmt.Sprintf("Highest Net Worth: %s ends %s above the base plan",
				alt.ScenarioName, output.FormatCurrency(alt.NetWorthDiffFromBase)))
	} else {
		recommendations = append(recommendations, "No alternative ends with a higher net worth than the base plan")
	}

	// Largest cushion at the worst point
	safest := -1
	for i, alt := range compSet.AlternativeResults {
		if alt.MinNetWorth.GreaterThan(base.MinNetWorth) &&
			(safest < 0 || alt.MinNetWorth.GreaterThan(compSet.AlternativeResults[safest].MinNetWorth)) {
			safest = i
		}
	}
	if safest >= 0 {
		alt := compSet.AlternativeResults[safest]
		recommendations = append(recommendations,
			fmt.Sprintf("Largest Cushion: %s never drops below %s",
				alt.ScenarioName, output.FormatCurrency(alt.MinNetWorth)))
	}

	for _, alt := range compSet.AlternativeResults {
		switch {
		case base.Bankrupt && !alt.Bankrupt:
			recommendations = append(recommendations,
				fmt.Sprintf("Solvency: %s avoids the bankruptcy the base plan hits in %s",
					alt.ScenarioName, base.BankruptMonth()))
		case !base.Bankrupt && alt.Bankrupt:
			recommendations = append(recommendations,
				fmt.Sprintf("Warning: %s runs out of money in %s",
					alt.ScenarioName, alt.BankruptMonth()))
		}
	}

	return recommendations
}
