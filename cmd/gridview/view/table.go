// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/slukits/grid"
	"github.com/slukits/ints"
	"github.com/slukits/lines"
)

// Grid is the grid functionality the table component displays and
// forwards user input to.
type Grid interface {
	Len() int
	Columns() []grid.Column
	CellText(row int, id grid.ColumnID) (string, error)
	RowHeaderText(row int) (string, error)
	Selection() grid.Selection
	Select(row int) error
	SelectCell(row int, id grid.ColumnID) error
	Sort() grid.SortState
	Dispatch(grid.Input)
	ActivateHeader(grid.ColumnID) error
	Events() []grid.Event
	SetPageSize(int)
}

// header is the update data activating the column at given position.
type header int

// span is the horizontal screen range [from,to) of a displayed column.
type span struct {
	id       grid.ColumnID
	from, to int
}

type table struct {
	lines.Component
	g        Grid
	listener func(grid.Event)

	// first is the first displayed row.
	first int

	// hw is the row header width; zero if there are no row headers.
	hw int
	ss []span
}

func (t *table) OnLayout(e *lines.Env) (reflow bool) {
	t.render(e)
	return false
}

func (t *table) OnUpdate(e *lines.Env, data interface{}) {
	switch dt := data.(type) {
	case Grid:
		t.g = dt
	case grid.Input:
		if t.g == nil {
			return
		}
		t.g.Dispatch(dt)
	case header:
		if t.g == nil {
			return
		}
		cc := t.g.Columns()
		if int(dt) >= len(cc) {
			return
		}
		t.g.ActivateHeader(cc[dt].ID)
	}
	t.report()
	t.render(e)
}

// OnClick activates a column header if the first line is clicked.
// Otherwise the row respectively the cell at the click position is
// selected.
func (t *table) OnClick(e *lines.Env, x, y int) {
	if t.g == nil {
		return
	}
	id, ok := t.columnAt(x)
	if y == 0 {
		if ok {
			t.g.ActivateHeader(id)
		}
		t.report()
		t.render(e)
		return
	}
	row := t.first + y - 1
	if row >= t.g.Len() {
		return
	}
	if ok && t.g.Selection().Mode == grid.CellMode {
		t.g.SelectCell(row, id)
	} else {
		t.g.Select(row)
	}
	t.report()
	t.render(e)
}

func (t *table) columnAt(x int) (grid.ColumnID, bool) {
	for _, s := range t.ss {
		if x >= s.from && x < s.to {
			return s.id, true
		}
	}
	return 0, false
}

func (t *table) report() {
	for _, evt := range t.g.Events() {
		if t.listener == nil {
			continue
		}
		t.listener(evt)
	}
}

func (t *table) render(e *lines.Env) {
	if t.g == nil {
		return
	}
	_, _, _, height := t.Dim().Printable()
	rows := height - 1
	if rows < 1 {
		return
	}
	t.g.SetPageSize(rows)
	cc := t.g.Columns()
	ww := t.widths(cc)
	sel := t.g.Selection()
	t.scroll(sel.Row, rows)

	written := &ints.Set{}
	fmt.Fprint(e.LL(0), t.headerLine(cc, ww))
	written.Add(0)
	for i := 0; i < rows && t.first+i < t.g.Len(); i++ {
		row := t.first + i
		var w io.Writer = e.LL(i + 1)
		if sel.State == grid.RowSelected && sel.Row == row {
			w = e.AA(lines.Reverse).LL(i + 1)
		}
		fmt.Fprint(w, t.rowLine(row, cc, ww, sel))
		written.Add(i + 1)
	}
	for i := 0; i < t.Len(); i++ {
		if written.Has(i) {
			continue
		}
		t.Reset(i)
	}
}

// scroll adjusts the first displayed row so that given selected row is
// visible.
func (t *table) scroll(selected, rows int) {
	if selected >= 0 {
		if selected < t.first {
			t.first = selected
		}
		if selected >= t.first+rows {
			t.first = selected - rows + 1
		}
	}
	if last := t.g.Len() - rows; t.first > last {
		t.first = last
	}
	if t.first < 0 {
		t.first = 0
	}
}

// widths calculates the display width of each column and of the row
// headers and records the screen spans of the columns.
func (t *table) widths(cc []grid.Column) []int {
	t.hw = 0
	for i := 0; i < t.g.Len(); i++ {
		h, _ := t.g.RowHeaderText(i)
		if w := runewidth.StringWidth(h); w > t.hw {
			t.hw = w
		}
	}
	ww := make([]int, len(cc))
	for i, c := range cc {
		ww[i] = c.Width
		if w := runewidth.StringWidth(t.label(c)); w > ww[i] {
			ww[i] = w
		}
		for r := 0; r < t.g.Len(); r++ {
			txt, _ := t.g.CellText(r, c.ID)
			if w := runewidth.StringWidth(txt); w > ww[i] {
				ww[i] = w
			}
		}
	}
	t.ss = t.ss[:0]
	x := 0
	if t.hw > 0 {
		x = t.hw + 2
	}
	for i, c := range cc {
		t.ss = append(t.ss, span{id: c.ID, from: x, to: x + ww[i] + 2})
		x += ww[i] + 2
	}
	return ww
}

// label returns given column's label with a sort marker if it is the
// sort column.
func (t *table) label(c grid.Column) string {
	srt := t.g.Sort()
	if !srt.Active || srt.Column != c.ID {
		return c.Label
	}
	if srt.Direction == grid.Descending {
		return c.Label + "v"
	}
	return c.Label + "^"
}

func (t *table) headerLine(cc []grid.Column, ww []int) string {
	b := strings.Builder{}
	if t.hw > 0 {
		b.WriteString(strings.Repeat(" ", t.hw+2))
	}
	for i, c := range cc {
		b.WriteString(" " + c.Align.Pad(t.label(c), ww[i]) + " ")
	}
	return b.String()
}

func (t *table) rowLine(
	row int, cc []grid.Column, ww []int, sel grid.Selection,
) string {
	b := strings.Builder{}
	if t.hw > 0 {
		h, _ := t.g.RowHeaderText(row)
		b.WriteString(" " + runewidth.FillRight(h, t.hw) + " ")
	}
	for i, c := range cc {
		txt, _ := t.g.CellText(row, c.ID)
		txt = c.Align.Pad(txt, ww[i])
		if sel.State == grid.CellSelected &&
			sel.Row == row && sel.Column == c.ID {
			b.WriteString("[" + txt + "]")
			continue
		}
		b.WriteString(" " + txt + " ")
	}
	return b.String()
}
