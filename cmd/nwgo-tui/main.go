package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/nwgo/internal/tui"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: nwgo-tui <config-file> [tax-tables-file]")
		os.Exit(1)
	}
	configPath := os.Args[1]
	taxTablesPath := ""
	if len(os.Args) > 2 {
		taxTablesPath = os.Args[2]
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		fmt.Printf("Error: Config file not found: %s\n", configPath)
		os.Exit(1)
	}

	p := tea.NewProgram(
		tui.NewModel(configPath, taxTablesPath),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
