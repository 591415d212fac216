package output

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"html/template"
	"strings"
	"testing"
	"time"

	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func month(year int, m time.Month) time.Time {
	return time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)
}

func snapshot(date time.Time, savings, brokerage, home int64) domain.MonthSummary {
	s, b, h := decimal.NewFromInt(savings), decimal.NewFromInt(brokerage), decimal.NewFromInt(home)
	return domain.MonthSummary{
		Date:     date,
		NetWorth: s.Add(b).Add(h),
		Assets: []domain.AssetSummary{
			{Name: "Savings", Kind: domain.AssetSavings, Value: s},
			{Name: "Brokerage", Kind: domain.AssetBrokerage, Value: b},
			{Name: "Condo", Kind: domain.AssetHome, Value: h},
		},
	}
}

// 25 snapshots: the opening month plus two simulated years
func sampleForecast() *domain.Forecast {
	f := &domain.Forecast{StartYear: 2025, DurationYears: 2}
	for i := 0; i <= 24; i++ {
		date := month(2025, time.January).AddDate(0, i, 0)
		f.Months = append(f.Months, snapshot(date, 1000+int64(i)*100, 5000, 20000))
	}
	return f
}

func bankruptForecast() *domain.Forecast {
	f := &domain.Forecast{StartYear: 2025, DurationYears: 1}
	f.Months = append(f.Months, snapshot(month(2025, time.January), 100, 0, 0))
	broke := snapshot(month(2025, time.February), 0, 0, 0)
	broke.IsBankrupt = true
	broke.Shortfall = decimal.NewFromInt(250)
	broke.NetWorth = decimal.NewFromInt(-250)
	f.Months = append(f.Months, broke)
	f.Bankrupt = true
	bd := month(2025, time.January)
	f.BankruptDate = &bd
	return f
}

func TestGetFormatterByName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"console", "console"},
		{"csv", "csv"},
		{"json", "json"},
		{"yaml", "yaml"},
		{"html", "html"},
		{" JSON ", "json"},
		{"yml", "yaml"},
		{"table", "console"},
		{"csv-monthly", "csv"},
		{"json-pretty", "json"},
		{"html-report", "html"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			f := GetFormatterByName(tt.input)
			require.NotNil(t, f)
			assert.Equal(t, tt.expected, f.Name())
		})
	}

	assert.Nil(t, GetFormatterByName("pdf"))
}

func TestAvailableNames(t *testing.T) {
	assert.Equal(t, []string{"console", "csv", "html", "json", "yaml"}, AvailableFormatterNames())

	aliases := AvailableFormatAliases()
	assert.Contains(t, aliases, "yml")
	assert.IsIncreasing(t, aliases)
}

func TestFormatterFunc(t *testing.T) {
	ff := FormatterFunc{ID: "count", F: func(f *domain.Forecast) ([]byte, error) {
		return []byte(strings.Repeat("x", len(f.Months))), nil
	}}

	var buf bytes.Buffer
	require.NoError(t, WriteFormatted(&buf, ff, sampleForecast()))
	assert.Equal(t, "count", ff.Name())
	assert.Len(t, buf.String(), 25)

	err := WriteFormatted(&buf, ff, nil)
	assert.ErrorContains(t, err, "nothing to format")
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount   string
		expected string
	}{
		{"0", "$0.00"},
		{"12.5", "$12.50"},
		{"999.999", "$1,000.00"},
		{"1234567.891", "$1,234,567.89"},
		{"-4321", "-$4,321.00"},
		{"100000", "$100,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}

	assert.Equal(t, "2.50%", FormatPercentage(decimal.RequireFromString("2.5")))
	assert.Equal(t, "+$10.00", FormatChange(decimal.NewFromInt(5), decimal.NewFromInt(15)))
	assert.Equal(t, "-$10.00", FormatChange(decimal.NewFromInt(15), decimal.NewFromInt(5)))
}

func TestCSVFormatter(t *testing.T) {
	data, err := CSVFormatter{}.Format(sampleForecast())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 26)

	assert.Equal(t, []string{"Date", "Savings", "Brokerage", "Condo", "NetWorth", "IsBankrupt", "Shortfall"}, records[0])
	assert.Equal(t, []string{"2025-01", "1000.00", "5000.00", "20000.00", "26000.00", "false", "0.00"}, records[1])
	assert.Equal(t, "2027-01", records[25][0])
	assert.Equal(t, "3400.00", records[25][1])
}

func TestJSONFormatter(t *testing.T) {
	data, err := JSONFormatter{}.Format(bankruptForecast())
	require.NoError(t, err)

	var decoded struct {
		Bankrupt     bool   `json:"bankrupt"`
		BankruptDate string `json:"bankrupt_date"`
		Months       []struct {
			NetWorth   string `json:"net_worth"`
			IsBankrupt bool   `json:"is_bankrupt"`
		} `json:"months"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Bankrupt)
	assert.True(t, strings.HasPrefix(decoded.BankruptDate, "2025-01-01"))
	require.Len(t, decoded.Months, 2)
	assert.Equal(t, "-250", decoded.Months[1].NetWorth)
	assert.True(t, decoded.Months[1].IsBankrupt)
}

func TestYAMLFormatter(t *testing.T) {
	data, err := YAMLFormatter{}.Format(sampleForecast())
	require.NoError(t, err)

	var decoded domain.Forecast
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, 2025, decoded.StartYear)
	require.Len(t, decoded.Months, 25)
	assert.True(t, decoded.Months[0].NetWorth.Equal(decimal.NewFromInt(26000)))
	assert.Equal(t, []string{"Savings", "Brokerage", "Condo"}, decoded.AssetNames())
	assert.Nil(t, decoded.BankruptDate)
}

func TestConsoleFormatter(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(sampleForecast())
	require.NoError(t, err)
	out := string(data)

	assert.Contains(t, out, "NET WORTH FORECAST")
	for _, header := range []string{"Date", "Savings", "Brokerage", "Condo", "Net Worth"} {
		assert.Contains(t, out, header)
	}
	assert.Contains(t, out, "2025-01")
	assert.Contains(t, out, "2026-01")
	assert.Contains(t, out, "2027-01")
	assert.NotContains(t, out, "2025-06")
	assert.Contains(t, out, "Final net worth:   $28,400.00 (+$2,400.00)")
	assert.NotContains(t, out, "Bankrupt in")
}

func TestConsoleFormatterBankrupt(t *testing.T) {
	data, err := ConsoleFormatter{}.Format(bankruptForecast())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bankrupt in 2025-01")
	assert.Contains(t, string(data), "$250.00")

	data, err = ConsoleFormatter{}.Format(&domain.Forecast{StartYear: 2025})
	require.NoError(t, err)
	assert.Contains(t, string(data), "No months simulated.")
}

func TestHTMLFormatter(t *testing.T) {
	data, err := HTMLFormatter{}.Format(bankruptForecast())
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<th>Condo</th>")
	assert.Contains(t, out, `class="bankrupt"`)
	assert.Contains(t, out, "Bankrupt in 2025-01")
	assert.Contains(t, out, "-$250.00")
	for _, a := range DefaultAssumptions {
		assert.Contains(t, out, "<li>"+template.HTMLEscapeString(a)+"</li>")
	}
}
