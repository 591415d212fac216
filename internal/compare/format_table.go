package compare

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/rgehrsitz/nwgo/internal/output"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
	"github.com/shopspring/decimal"
)

var (
	tableTitleStyle  = lipgloss.NewStyle().Bold(true)
	tableHeaderStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	tableNameStyle   = lipgloss.NewStyle().Padding(0, 1)
	tableCellStyle   = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing scenarios
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(tableTitleStyle.Render("NET WORTH SCENARIO COMPARISON") + "\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	fmt.Fprintf(&sb, "Base Scenario: %s\n", compSet.BaseScenarioName)
	if compSet.ConfigPath != "" {
		fmt.Fprintf(&sb, "Configuration: %s\n", compSet.ConfigPath)
	}
	sb.WriteString("\n")

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Scenario", "Final Net Worth", "vs Base", "Lowest Net Worth", "Bankrupt").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableNameStyle
			default:
				return tableCellStyle
			}
		})

	if compSet.BaseResult != nil {
		t.Row(tf.formatRow(compSet.BaseResult, true)...)
	}
	for i := range compSet.AlternativeResults {
		t.Row(tf.formatRow(&compSet.AlternativeResults[i], false)...)
	}
	sb.WriteString(t.String() + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nSCENARIOS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			fmt.Fprintf(&sb, "%s: %s\n", alt.ScenarioName, alt.Description)
			fmt.Fprintf(&sb, "  Final Net Worth:  %s (%s)\n",
				tf.signedCurrency(alt.NetWorthDiffFromBase), output.FormatPercentage(alt.NetWorthPctFromBase))
			if !alt.MinNetWorthDiff.IsZero() {
				fmt.Fprintf(&sb, "  Lowest Point:     %s\n", tf.signedCurrency(alt.MinNetWorthDiff))
			}
		}
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, rec := range compSet.Recommendations {
			fmt.Fprintf(&sb, "• %s\n", rec)
		}
	}

	return sb.String()
}

// formatRow formats a single scenario row
func (tf *TableFormatter) formatRow(result *ComparisonResult, isBase bool) []string {
	name := result.ScenarioName
	vsBase := tf.signedCurrency(result.NetWorthDiffFromBase)
	if isBase {
		name += " (base)"
		vsBase = "-"
	}

	bankrupt := "no"
	if result.Bankrupt {
		bankrupt = result.BankruptMonth()
	}

	return []string{
		name,
		output.FormatCurrency(result.FinalNetWorth),
		vsBase,
		fmt.Sprintf("%s (%s)", output.FormatCurrency(result.MinNetWorth), dateutil.FormatMonth(result.MinNetWorthDate)),
		bankrupt,
	}
}

func (tf *TableFormatter) signedCurrency(d decimal.Decimal) string {
	if d.IsNegative() {
		return output.FormatCurrency(d)
	}
	return "+" + output.FormatCurrency(d)
}
