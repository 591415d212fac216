package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.table.SetHeight(max(3, msg.Height-14))
		return m, nil

	case ErrorMsg:
		m.loading = false
		m.err = msg.Err
		return m, nil

	case ForecastLoadedMsg:
		m.loading = false
		m.err = nil
		m.setForecast(msg.Params, msg.Forecast)
		return m, nil
	}

	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Rerun):
		if m.loading {
			return m, nil
		}
		m.loading = true
		m.loadingMessage = "Running simulation..."
		return m, loadForecastCmd(m.configPath, m.taxTablesPath)

	case key.Matches(msg, m.keys.Switch):
		if m.currentScene == SceneTable {
			m.currentScene = SceneChart
		} else {
			m.currentScene = SceneTable
		}
		return m, nil
	}

	if m.currentScene == SceneTable {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}
