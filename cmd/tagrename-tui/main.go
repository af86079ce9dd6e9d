package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mydehq/tagrename/internal/config"
	"github.com/mydehq/tagrename/internal/tui"
)

func main() {
	path := "."
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	var formats []string
	if cfg, err := config.LoadGlobal(); err == nil {
		formats = cfg.Formats
	}

	p := tea.NewProgram(tui.NewModel(path, formats), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
