package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/app"
	"github.com/llehouerou/drawer/internal/config"
	"github.com/llehouerou/drawer/internal/state"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	stateMgr, err := state.Open()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening state store: %v\n", err)
		os.Exit(1)
	}
	defer stateMgr.Close()

	p := tea.NewProgram(
		app.New(cfg, stateMgr),
		tea.WithAltScreen(),
		// Motion events while a button is held are what the gesture
		// engines run on.
		tea.WithMouseAllMotion(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
