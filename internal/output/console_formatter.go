package output

import (
	"bytes"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
)

var (
	consoleTitleStyle  = lipgloss.NewStyle().Bold(true)
	consoleHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	consoleCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	consoleDateStyle   = lipgloss.NewStyle().Padding(0, 1)
	consoleWarnStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF5F87"))
)

// ConsoleFormatter renders a yearly net worth table for terminals.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(forecast *domain.Forecast) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, consoleTitleStyle.Render("NET WORTH FORECAST"))
	fmt.Fprintln(&buf, "==================")
	fmt.Fprintf(&buf, "Start year: %d   Duration: %d years   Months simulated: %d\n",
		forecast.StartYear, forecast.DurationYears, len(forecast.Months))
	fmt.Fprintln(&buf)

	if len(forecast.Months) == 0 {
		fmt.Fprintln(&buf, "No months simulated.")
		return buf.Bytes(), nil
	}

	names := forecast.AssetNames()
	headers := append([]string{"Date"}, names...)
	headers = append(headers, "Net Worth")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return consoleHeaderStyle
			case col == 0:
				return consoleDateStyle
			default:
				return consoleCellStyle
			}
		})
	for _, month := range forecast.Annual() {
		t.Row(summaryRow(month, names)...)
	}
	fmt.Fprintln(&buf, t.String())
	fmt.Fprintln(&buf)

	first, final := forecast.Months[0], forecast.Final()
	fmt.Fprintf(&buf, "Opening net worth: %s\n", FormatCurrency(first.NetWorth))
	fmt.Fprintf(&buf, "Final net worth:   %s (%s)\n", FormatCurrency(final.NetWorth), FormatChange(first.NetWorth, final.NetWorth))
	if forecast.Bankrupt && forecast.BankruptDate != nil {
		fmt.Fprintln(&buf, consoleWarnStyle.Render(fmt.Sprintf("Bankrupt in %s: shortfall %s",
			dateutil.FormatMonth(*forecast.BankruptDate), FormatCurrency(final.Shortfall))))
	}

	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "Assumptions:")
	for _, a := range DefaultAssumptions {
		fmt.Fprintf(&buf, "  - %s\n", a)
	}
	return buf.Bytes(), nil
}

// summaryRow lays out one snapshot as date, asset values in names order, net worth
func summaryRow(month domain.MonthSummary, names []string) []string {
	row := make([]string, 0, len(names)+2)
	row = append(row, dateutil.FormatMonth(month.Date))
	for _, name := range names {
		v, _ := month.AssetValue(name)
		row = append(row, FormatCurrency(v))
	}
	return append(row, FormatCurrency(month.NetWorth))
}
