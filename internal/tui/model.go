package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nwgo/internal/calculation"
	"github.com/rgehrsitz/nwgo/internal/config"
	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/pkg/dateutil"
)

// Model represents the entire application state
type Model struct {
	currentScene Scene

	// Terminal dimensions
	width  int
	height int

	configPath    string
	taxTablesPath string

	params   *domain.ModelParameters
	forecast *domain.Forecast
	annual   []domain.MonthSummary

	table table.Model
	help  help.Model
	keys  keyMap

	err error

	loading        bool
	loadingMessage string
}

// NewModel creates a new application model. taxTablesPath may be empty.
func NewModel(configPath, taxTablesPath string) Model {
	t := table.New(table.WithFocused(true), table.WithHeight(10))
	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(TableHeaderStyle).BorderBottom(true)
	s.Selected = s.Selected.Inherit(TableHighlightStyle)
	t.SetStyles(s)

	return Model{
		currentScene:   SceneTable,
		configPath:     configPath,
		taxTablesPath:  taxTablesPath,
		table:          t,
		help:           help.New(),
		keys:           defaultKeyMap(),
		width:          80,
		height:         24,
		loading:        true,
		loadingMessage: "Running simulation...",
	}
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return loadForecastCmd(m.configPath, m.taxTablesPath)
}

// loadForecastCmd returns a command that loads the configuration and runs it
func loadForecastCmd(configPath, taxTablesPath string) tea.Cmd {
	return func() tea.Msg {
		parser := config.NewInputParser()
		params, err := parser.LoadFromFile(configPath)
		if err != nil {
			return ErrorMsg{Err: err}
		}

		sim := calculation.NewSimulator()
		if taxTablesPath != "" {
			tables, err := parser.LoadTaxTables(taxTablesPath)
			if err != nil {
				return ErrorMsg{Err: err}
			}
			sim.TaxTables = tables
		}

		forecast, err := sim.Run(context.Background(), *params)
		if err != nil {
			return ErrorMsg{Err: err}
		}
		return ForecastLoadedMsg{Params: params, Forecast: forecast}
	}
}

// setForecast rebuilds the table from the yearly snapshots of f
func (m *Model) setForecast(params *domain.ModelParameters, f *domain.Forecast) {
	m.params = params
	m.forecast = f
	m.annual = f.Annual()

	names := f.AssetNames()
	columns := []table.Column{{Title: "Date", Width: 8}}
	for _, name := range names {
		columns = append(columns, table.Column{Title: name, Width: max(14, len(name))})
	}
	columns = append(columns, table.Column{Title: "Net Worth", Width: 15})

	rows := make([]table.Row, 0, len(m.annual))
	for _, month := range m.annual {
		row := table.Row{dateutil.FormatMonth(month.Date)}
		for _, name := range names {
			v, _ := month.AssetValue(name)
			row = append(row, FormatCurrency(v))
		}
		row = append(row, FormatCurrency(month.NetWorth))
		rows = append(rows, row)
	}

	// Columns first: rows wider than the column set cannot be rendered.
	m.table.SetRows(nil)
	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	m.table.SetCursor(0)
}

// SelectedSnapshot returns the snapshot under the table cursor
func (m Model) SelectedSnapshot() (domain.MonthSummary, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.annual) {
		return domain.MonthSummary{}, false
	}
	return m.annual[i], true
}
