// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"time"

	"github.com/slukits/gounit"
	"github.com/slukits/lines"
)

// Testing augments a lines fixture of a view with functionality useful
// for testing but not meant for production.  A Testing instance may be
// obtained by
//
//	tt := view.NewTesting(t, 0, view.New(i))
//
// whereas t is an *gounit.T and i a view.Initer implementation.
type Testing struct {
	T *gounit.T
	*lines.Fixture
	vw *view
}

// NewTesting creates a lines fixture for given view component c which
// must have been created by [New].  A zero timeout defaults to the
// lines fixture's default timeout.
func NewTesting(
	t *gounit.T, timeout time.Duration, c lines.Componenter,
) *Testing {
	vw, ok := c.(*view)
	if !ok {
		t.Fatalf("given component must be a view; got %T", c)
		return nil
	}
	return &Testing{
		T:       t,
		Fixture: lines.TermFixture(t.GoT(), timeout, vw),
		vw:      vw,
	}
}

// ClickButton clicks the button in the button-bar with given label.
// ClickButton does not return before subsequent view-changes triggered
// by requested button click are processed.
func (t *Testing) ClickButton(label string) {
	bb := t.getButtonBar()
	if bb == nil {
		return
	}
	for _, b := range bb.bb {
		if b.label != label {
			continue
		}
		t.FireComponentClick(b, 0, 0)
		return
	}
	t.T.Fatalf("gridview: view: fixture: no button labeled %q", label)
}

// ClickHeader clicks the header of the column at given position.
func (t *Testing) ClickHeader(pos int) {
	tbl := t.getTable()
	if tbl == nil {
		return
	}
	if pos < 0 || pos >= len(tbl.ss) {
		t.T.Fatalf("gridview: view: fixture: no column at %d", pos)
		return
	}
	t.FireComponentClick(tbl, tbl.ss[pos].from, 0)
}

// ClickCell clicks the cell in the column at given position of given
// displayed line, i.e. line zero is the first displayed row.
func (t *Testing) ClickCell(line, pos int) {
	tbl := t.getTable()
	if tbl == nil {
		return
	}
	if pos < 0 || pos >= len(tbl.ss) {
		t.T.Fatalf("gridview: view: fixture: no column at %d", pos)
		return
	}
	t.FireComponentClick(tbl, tbl.ss[pos].from, line+1)
}

// MessageBar returns the test-screen portion of the message bar.
func (t *Testing) MessageBar() lines.StringScreen {
	mb, ok := t.vw.CC[0].(*messageBar)
	if !ok {
		t.T.Fatal("gridview: view: fixture: " +
			"expected first component to be the message bar")
		return nil
	}
	return t.ScreenOf(mb)
}

// Table returns the test-screen portion of the table.
func (t *Testing) Table() lines.StringScreen {
	tbl := t.getTable()
	if tbl == nil {
		return nil
	}
	return t.ScreenOf(tbl)
}

// StatusBar returns the test-screen portion of the status bar.
func (t *Testing) StatusBar() lines.StringScreen {
	sb, ok := t.vw.CC[2].(*statusBar)
	if !ok {
		t.T.Fatal("gridview: view: fixture: " +
			"expected third component to be the status bar")
		return nil
	}
	return t.ScreenOf(sb)
}

// ButtonBar returns the test-screen portion of the button bar.
func (t *Testing) ButtonBar() lines.StringScreen {
	bb := t.getButtonBar()
	if bb == nil {
		return nil
	}
	return t.ScreenOf(bb)
}

func (t *Testing) getTable() *table {
	tbl, ok := t.vw.CC[1].(*table)
	if !ok {
		t.T.Fatal("gridview: view: fixture: " +
			"expected second component to be the table")
		return nil
	}
	return tbl
}

func (t *Testing) getButtonBar() *buttonBar {
	bb, ok := t.vw.CC[3].(*buttonBar)
	if !ok {
		t.T.Fatal("gridview: view: fixture: " +
			"expected forth component to be a button bar")
		return nil
	}
	return bb
}
