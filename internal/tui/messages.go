package tui

import (
	"github.com/rgehrsitz/nwgo/internal/domain"
)

// Scene represents different screens in the TUI
type Scene int

const (
	SceneTable Scene = iota
	SceneChart
)

// String returns the scene name shown in the title bar
func (s Scene) String() string {
	switch s {
	case SceneTable:
		return "Yearly snapshots"
	case SceneChart:
		return "Net worth chart"
	default:
		return "Unknown"
	}
}

// ErrorMsg displays an error to the user
type ErrorMsg struct {
	Err error
}

// ForecastLoadedMsg carries a finished simulation
type ForecastLoadedMsg struct {
	Params   *domain.ModelParameters
	Forecast *domain.Forecast
}
