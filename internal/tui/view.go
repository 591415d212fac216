package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/rgehrsitz/nwgo/internal/output"
	"github.com/rgehrsitz/nwgo/internal/tui/components"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return AppStyle.Render(InfoStyle.Render(m.loadingMessage))
	}
	if m.err != nil {
		return AppStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			ErrorStyle.Render("Error: "+m.err.Error()),
			"",
			m.help.View(m.keys),
		))
	}
	if m.forecast == nil {
		return AppStyle.Render("No forecast loaded")
	}

	var content string
	switch m.currentScene {
	case SceneChart:
		content = m.renderChart()
	default:
		content = m.renderTable()
	}

	return AppStyle.Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		m.renderMetrics(),
		content,
		"",
		m.help.View(m.keys),
	))
}

func (m Model) renderTitleBar() string {
	title := TitleStyle.Render("NWGO - Net Worth Forecast")
	sub := fmt.Sprintf("%s / %d-%d", m.currentScene, m.forecast.StartYear, m.forecast.StartYear+m.forecast.DurationYears)
	return lipgloss.JoinVertical(lipgloss.Left, title, SubtitleStyle.Render(sub))
}

func (m Model) renderMetrics() string {
	if len(m.forecast.Months) == 0 {
		return ""
	}
	first, final := m.forecast.Months[0], m.forecast.Final()

	lowest := first
	for _, month := range m.forecast.Months {
		if month.NetWorth.LessThan(lowest.NetWorth) {
			lowest = month
		}
	}

	finalCard := components.NewMetricCard("Final net worth", FormatCurrency(final.NetWorth)).
		WithTrend(!final.NetWorth.LessThan(first.NetWorth), output.FormatChange(first.NetWorth, final.NetWorth))
	if m.forecast.Bankrupt && m.forecast.BankruptDate != nil {
		finalCard.WithDescription("bankrupt " + dateutil.FormatMonth(*m.forecast.BankruptDate))
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Opening net worth", FormatCurrency(first.NetWorth)).
			WithDescription(dateutil.FormatMonth(first.Date)),
		finalCard,
		components.NewMetricCard("Lowest net worth", FormatCurrency(lowest.NetWorth)).
			WithDescription(dateutil.FormatMonth(lowest.Date)),
	}
	return components.MetricGrid(cards, 3)
}

func (m Model) renderTable() string {
	view := m.table.View()
	if snap, ok := m.SelectedSnapshot(); ok && snap.IsBankrupt {
		view += "\n" + ErrorStyle.Render(fmt.Sprintf("%s: shortfall %s", dateutil.FormatMonth(snap.Date), FormatCurrency(snap.Shortfall)))
	}
	return view
}

func (m Model) renderChart() string {
	chart := components.NewBarChart("Net worth by year").WithWidth(max(40, m.width-4))
	for _, month := range m.annual {
		chart.AddBar(dateutil.FormatMonth(month.Date), month.NetWorth.InexactFloat64())
	}
	return chart.Render()
}
