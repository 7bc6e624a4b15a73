// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"

	"github.com/slukits/grid"
	"github.com/slukits/gounit"
)

const (
	fxMsg     = "init fixture message"
	fxStatus  = "init fixture status"
	fxBtt1    = "add"
	fxBtt2    = "second"
	fxRnBtt1  = 'a'
	fxLabels0 = "name"
	fxLabels1 = "count"
)

// fxInit implements the Initer interface for view tests.  Its grid is
// a sortable table with the columns name and count holding the rows
// b/5, a/3 and c/3.
type fxInit struct {
	t *gounit.T

	g *grid.Grid[grid.Row]

	updateMessage, updateStatus func(string)
	updateTable                 func(Grid)
	edit                        func(*Edit)

	// bb are the button definitions reported to the view; they default
	// to fxBtt1 and fxBtt2.
	bb []ButtonDef

	// errs are the errors returned from button definitions.
	errs []error

	// ee are the grid events reported to the listener.
	ee []grid.Event

	// clicked are the labels of clicked buttons.
	clicked []string
}

func newFX(t *gounit.T, mode grid.Mode) *fxInit {
	g, err := grid.NewTableBuilder().
		ColumnHeader(fxLabels0, fxLabels1).
		Data([][]string{{"b", "5"}, {"a", "3"}, {"c", "3"}}).
		Sortable(true).
		SelectionMode(mode).
		Build()
	t.FatalOn(err)
	return &fxInit{t: t, g: g}
}

// fxRows replaces fx's grid with a sortable table of given number of
// rows having a single column whose cells are "v<n>".
func (fx *fxInit) fxRows(n int) *fxInit {
	dd := [][]string{}
	for i := 0; i < n; i++ {
		dd = append(dd, []string{fmt.Sprintf("v%d", i)})
	}
	g, err := grid.NewTableBuilder().ColumnHeader("value").
		Data(dd).Build()
	fx.t.FatalOn(err)
	fx.g = g
	return fx
}

func (fx *fxInit) Message(upd func(string)) string {
	fx.updateMessage = upd
	return fxMsg
}

func (fx *fxInit) Status(upd func(string)) string {
	fx.updateStatus = upd
	return fxStatus
}

func (fx *fxInit) Table(upd func(Grid)) (Grid, func(grid.Event)) {
	fx.updateTable = upd
	lst := func(e grid.Event) { fx.ee = append(fx.ee, e) }
	if fx.g == nil {
		return nil, lst
	}
	return fx.g, lst
}

func (fx *fxInit) Editor(edit func(*Edit)) {
	fx.edit = edit
}

func (fx *fxInit) ForButton(cb func(ButtonDef) error) {
	bb := fx.bb
	if bb == nil {
		bb = []ButtonDef{
			{Label: fxBtt1, Rune: fxRnBtt1, Listener: fx.click},
			{Label: fxBtt2, Listener: fx.click},
		}
	}
	for _, bd := range bb {
		if err := cb(bd); err != nil {
			fx.errs = append(fx.errs, err)
		}
	}
}

func (fx *fxInit) click(label string) {
	fx.clicked = append(fx.clicked, label)
}

// submitted returns the reported submit events.
func (fx *fxInit) submitted() (ss []grid.Submitted) {
	for _, e := range fx.ee {
		if s, ok := e.(grid.Submitted); ok {
			ss = append(ss, s)
		}
	}
	return ss
}

// sorted returns the reported sort events.
func (fx *fxInit) sorted() (ss []grid.Sorted) {
	for _, e := range fx.ee {
		if s, ok := e.(grid.Sorted); ok {
			ss = append(ss, s)
		}
	}
	return ss
}
