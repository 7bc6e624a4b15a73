// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/slukits/grid"
	"github.com/slukits/grid/cmd/gridview/model"
	"github.com/slukits/grid/pkg/teagrid"
	"go.uber.org/zap"
)

const (
	left  = "left"
	right = "right"
)

// chrome is the number of lines beside the grids: the title, the
// status line and the help line.
const chrome = 3

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	paneStyle  = lipgloss.NewStyle().MarginRight(2)
	helpStyle  = lipgloss.NewStyle().Faint(true)
)

// app shows two independent snapshots of the same sheet side by side.
type app struct {
	title  string
	log    *zap.Logger
	gg     [2]teagrid.Model
	focus  int
	status [2]string
}

func newApp(cfg *model.Config, sheet *model.Sheet, log *zap.Logger) (
	*app, error,
) {
	a := &app{title: cfg.Title, log: log}
	for i, id := range []string{left, right} {
		g, err := sheet.Snapshot()
		if err != nil {
			return nil, err
		}
		a.gg[i] = teagrid.New(g, teagrid.WithID(id))
		a.status[i] = "-"
	}
	a.gg[0].Focus()
	return a, nil
}

func (a *app) Init() tea.Cmd { return nil }

func (a *app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			a.log.Info("quit")
			return a, tea.Quit
		case "tab":
			a.gg[a.focus].Blur()
			a.focus = (a.focus + 1) % len(a.gg)
			a.gg[a.focus].Focus()
			return a, nil
		}
	case tea.WindowSizeMsg:
		for i := range a.gg {
			a.gg[i].SetHeight(msg.Height - chrome)
		}
		return a, nil
	case teagrid.EventsMsg:
		a.report(msg)
		return a, nil
	}
	var cmd tea.Cmd
	a.gg[a.focus], cmd = a.gg[a.focus].Update(msg)
	return a, cmd
}

func (a *app) report(msg teagrid.EventsMsg) {
	i := 0
	if msg.ID == right {
		i = 1
	}
	for _, e := range msg.Events {
		a.status[i] = describe(a.gg[i].Grid(), e)
		a.log.Debug("grid event",
			zap.String("grid", msg.ID), zap.String("event", a.status[i]))
	}
}

// describe returns a short human readable description of given event
// of given grid.
func describe(g teagrid.Grid, e grid.Event) string {
	switch e := e.(type) {
	case grid.Submitted:
		if e.Cell {
			return fmt.Sprintf("submitted R%d %s",
				e.Row+1, columnLabel(g, e.Column))
		}
		return fmt.Sprintf("submitted row %d", e.Row+1)
	case grid.SelectionChanged:
		switch e.Selection.State {
		case grid.RowSelected:
			return fmt.Sprintf("row %d", e.Selection.Row+1)
		case grid.CellSelected:
			return fmt.Sprintf("R%d %s", e.Selection.Row+1,
				columnLabel(g, e.Selection.Column))
		}
		return "no selection"
	case grid.Sorted:
		if !e.Active {
			return "unsorted"
		}
		return fmt.Sprintf("sorted by %s %s",
			columnLabel(g, e.Column), e.Direction)
	}
	return ""
}

func columnLabel(g teagrid.Grid, id grid.ColumnID) string {
	for _, c := range g.Columns() {
		if c.ID == id {
			return c.Label
		}
	}
	return "?"
}

func (a *app) View() string {
	pp := make([]string, len(a.gg))
	for i, m := range a.gg {
		pp[i] = paneStyle.Render(m.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(a.title),
		lipgloss.JoinHorizontal(lipgloss.Top, pp...),
		fmt.Sprintf("%s: %s | %s: %s",
			left, a.status[0], right, a.status[1]),
		helpStyle.Render("tab: switch grid; 1-9: sort; q: quit"),
	)
}
