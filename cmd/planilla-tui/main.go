package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nicalabs/planilla/internal/config"
	"github.com/nicalabs/planilla/internal/tui"
)

func main() {
	// Optional rates file as the only argument.
	ratesPath := ""
	if len(os.Args) > 1 {
		ratesPath = os.Args[1]
	}
	rates, err := config.LoadRates(ratesPath)
	if err != nil {
		fmt.Printf("Error loading rates: %v\n", err)
		os.Exit(1)
	}

	p := tea.NewProgram(tui.NewModel(rates), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
