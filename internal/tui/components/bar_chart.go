package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rgehrsitz/nwgo/internal/tui/tuistyles"
)

// Bar is one labelled value in a BarChart
type Bar struct {
	Label string
	Value float64
}

// BarChart draws horizontal bars scaled to the largest magnitude.
// Negative values are drawn in the danger colour.
type BarChart struct {
	Title string
	Bars  []Bar
	Width int
}

// NewBarChart creates a new bar chart
func NewBarChart(title string) *BarChart {
	return &BarChart{Title: title, Width: 60}
}

// AddBar appends a bar
func (c *BarChart) AddBar(label string, value float64) *BarChart {
	c.Bars = append(c.Bars, Bar{Label: label, Value: value})
	return c
}

// WithWidth sets the chart width
func (c *BarChart) WithWidth(width int) *BarChart {
	c.Width = width
	return c
}

// Render returns the styled chart
func (c *BarChart) Render() string {
	if len(c.Bars) == 0 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	var content strings.Builder
	if c.Title != "" {
		content.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		content.WriteString("\n\n")
	}

	labelWidth := 0
	maxAbs := 0.0
	for _, b := range c.Bars {
		labelWidth = max(labelWidth, lipgloss.Width(b.Label))
		maxAbs = math.Max(maxAbs, math.Abs(b.Value))
	}

	valueWidth := 10
	barSpace := max(1, c.Width-labelWidth-valueWidth-3)
	positive := lipgloss.NewStyle().Foreground(tuistyles.ColorSuccess)
	negative := lipgloss.NewStyle().Foreground(tuistyles.ColorDanger)
	labelStyle := lipgloss.NewStyle().Width(labelWidth).Foreground(tuistyles.ColorMuted)

	for i, b := range c.Bars {
		n := 0
		if maxAbs > 0 {
			n = int(math.Round(math.Abs(b.Value) / maxAbs * float64(barSpace)))
		}
		bar := positive.Render(strings.Repeat("█", n))
		if b.Value < 0 {
			bar = negative.Render(strings.Repeat("░", n))
		}
		fmt.Fprintf(&content, "%s │%s %s", labelStyle.Render(b.Label), bar, formatChartValue(b.Value))
		if i < len(c.Bars)-1 {
			content.WriteString("\n")
		}
	}

	return content.String()
}

// formatChartValue abbreviates large dollar values, e.g. 1.25M or -340K
func formatChartValue(value float64) string {
	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1_000_000:
		return fmt.Sprintf("%s$%.2fM", sign, abs/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%s$%.0fK", sign, abs/1_000)
	default:
		return fmt.Sprintf("%s$%.0f", sign, abs)
	}
}
