/*
Gridtea shows two independent grids of the same data side by side in a
bubbletea program.

Usage:

	gridtea [config.toml]

The configuration is the one of gridview.  Each grid keeps its own
selection and sort state; tab moves the key focus to the other grid.
The arrow keys, page up/down, home and end (or h, j, k, l, g and G)
move the selection of the focused grid, enter submits it and the digit
n sorts by the n-th column.  The last event of each grid is shown below
the grids.  q or ctrl+c quits.
*/
package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/slukits/grid/cmd/gridview/model"
)

func main() {
	cfg := model.DefaultConfig()
	if len(os.Args) > 1 {
		var err error
		if cfg, err = model.LoadConfig(os.Args[1]); err != nil {
			log.Fatal(err)
		}
	}
	if cfg.Title == model.DefaultConfig().Title {
		cfg.Title = "gridtea"
	}
	logger, err := model.NewLogger(cfg.Log)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	sheet, err := model.NewSheet(cfg, nil)
	if err != nil {
		log.Fatal(err)
	}
	a, err := newApp(cfg, sheet, logger)
	if err != nil {
		log.Fatal(err)
	}
	logger.Info("start")
	if _, err := tea.NewProgram(a, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}
