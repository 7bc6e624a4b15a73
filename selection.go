// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Mode is the selection granularity of a grid.
type Mode uint8

const (
	// RowMode selects whole rows.
	RowMode Mode = iota

	// CellMode selects single cells.
	CellMode
)

func (m Mode) String() string {
	if m == CellMode {
		return "cell"
	}
	return "row"
}

// State of a grid's selection.
type State uint8

const (
	Unselected State = iota
	RowSelected
	CellSelected
)

func (s State) String() string {
	switch s {
	case RowSelected:
		return "row selected"
	case CellSelected:
		return "cell selected"
	default:
		return "unselected"
	}
}

// Selection is a snapshot of a grid's selection.  Row is a display
// index and Index the storage index it resolves to.  Row and Index are
// -1 if nothing is selected; Column is only set if a cell is selected.
type Selection struct {
	Mode   Mode
	State  State
	Row    int
	Index  int
	Column ColumnID
}

// selection is tracked by storage index, i.e. it follows its row
// through sorting and mutations.
type selection struct {
	selected bool
	storage  int
	column   ColumnID
}

// Selection returns a snapshot of g's current selection.
func (g *Grid[I]) Selection() Selection {
	if !g.sel.selected {
		return Selection{Mode: g.mode, Row: -1, Index: -1}
	}
	s := Selection{
		Mode:  g.mode,
		State: RowSelected,
		Row:   g.pos[g.sel.storage],
		Index: g.sel.storage,
	}
	if g.mode == CellMode {
		s.State = CellSelected
		s.Column = g.sel.column
	}
	return s
}

// SelectionMode returns g's selection mode.
func (g *Grid[I]) SelectionMode() Mode { return g.mode }

// SetSelectionMode changes g's selection mode.  A selected row becomes
// a selected cell in the first column and a selected cell becomes a
// selected row.
func (g *Grid[I]) SetSelectionMode(m Mode) {
	if m == g.mode {
		return
	}
	before := g.Selection()
	g.mode = m
	if m == CellMode && g.sel.selected {
		if g.cc.len() == 0 {
			g.sel.selected = false
		} else {
			g.sel.column = g.cc.at(0).ID
		}
	}
	g.changed(before)
}

// ClearSelection unselects g's selection.
func (g *Grid[I]) ClearSelection() {
	before := g.Selection()
	g.sel.selected = false
	g.changed(before)
}

// Select selects the row with given display index.  In cell mode the
// selected column is kept or the first column is selected.  Select
// fails with [ErrIndexOutOfRange] for an invalid display index and in
// cell mode with [ErrInvalidColumn] if g has no columns.
func (g *Grid[I]) Select(row int) error {
	if row < 0 || row >= len(g.order) {
		return fmt.Errorf("%w%d", ErrIndexOutOfRange, row)
	}
	if g.mode == CellMode && g.cc.len() == 0 {
		return fmt.Errorf("%wno columns", ErrInvalidColumn)
	}
	before := g.Selection()
	g.selectDisplay(row)
	g.changed(before)
	return nil
}

// SelectCell selects given display row and given column.  In row mode
// only the row is selected after both arguments have been validated.
func (g *Grid[I]) SelectCell(row int, col ColumnID) error {
	if row < 0 || row >= len(g.order) {
		return fmt.Errorf("%w%d", ErrIndexOutOfRange, row)
	}
	if _, err := g.cc.byID(col); err != nil {
		return err
	}
	before := g.Selection()
	g.sel = selection{selected: true, storage: g.order[row], column: col}
	g.changed(before)
	return nil
}

// MoveSelection moves the selection by given number of display rows.
// The target is clamped to the available rows.  Is nothing selected a
// positive delta counts from before the first row and a negative delta
// from after the last row.  MoveSelection is a no-op if there are no
// rows, or in cell mode no columns.
func (g *Grid[I]) MoveSelection(delta int) {
	n := len(g.order)
	if n == 0 || delta == 0 || (g.mode == CellMode && g.cc.len() == 0) {
		return
	}
	cur := -1
	switch {
	case g.sel.selected:
		cur = g.pos[g.sel.storage]
	case delta < 0:
		cur = n
	}
	before := g.Selection()
	g.selectDisplay(step(cur, delta, 0, n-1))
	g.changed(before)
}

// MoveColumnSelection moves a selected cell by given number of columns
// clamped to the available columns.  It is a no-op in row mode or if
// nothing is selected.
func (g *Grid[I]) MoveColumnSelection(delta int) {
	if g.mode != CellMode || !g.sel.selected || delta == 0 {
		return
	}
	before := g.Selection()
	pos := g.cc.index(g.sel.column)
	g.sel.column = g.cc.at(step(pos, delta, 0, g.cc.len()-1)).ID
	g.changed(before)
}

// Submit reports the current selection as submitted.  The returned
// event is also queued, see [Grid.Events].  Submit returns false and
// queues nothing if nothing is selected.
func (g *Grid[I]) Submit() (Submitted, bool) {
	if !g.sel.selected {
		return Submitted{}, false
	}
	s := Submitted{Row: g.pos[g.sel.storage], Index: g.sel.storage}
	if g.mode == CellMode {
		s.Column, s.Cell = g.sel.column, true
	}
	g.emit(s)
	return s, true
}

func (g *Grid[I]) selectDisplay(row int) {
	g.sel.selected = true
	g.sel.storage = g.order[row]
	if g.mode == CellMode && g.cc.index(g.sel.column) < 0 {
		g.sel.column = g.cc.at(0).ID
	}
}

// changed queues a SelectionChanged event if g's selection differs from
// given selection.
func (g *Grid[I]) changed(before Selection) {
	if now := g.Selection(); now != before {
		g.emit(SelectionChanged{Selection: now})
	}
}

// step moves cur by delta and clamps the result to min and max without
// overflowing for huge deltas.
func step(cur, delta, min, max int) int {
	switch {
	case delta > 0 && delta > max-cur:
		return max
	case delta < 0 && delta < min-cur:
		return min
	}
	return clamp(cur+delta, min, max)
}

func clamp[N constraints.Integer](n, min, max N) N {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
