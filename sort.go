// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import (
	"golang.org/x/exp/slices"
)

// Direction of a grid's sort.
type Direction uint8

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Flipped returns the opposite direction of d.
func (d Direction) Flipped() Direction {
	if d == Descending {
		return Ascending
	}
	return Descending
}

// SortState reports by which column and in which direction a grid's
// rows are ordered.  If Active is false rows are displayed in insertion
// order.
type SortState struct {
	Column    ColumnID
	Direction Direction
	Active    bool
}

// Sortable reports if g's rows may be sorted.
func (g *Grid[I]) Sortable() bool { return g.sortable }

// SetSortable switches sorting on or off.  Switching it off resets the
// display order to insertion order.
func (g *Grid[I]) SetSortable(sortable bool) {
	g.sortable = sortable
	if sortable || !g.srt.Active {
		return
	}
	g.ClearSort()
}

// Sort returns g's current sort state.
func (g *Grid[I]) Sort() SortState { return g.srt }

// SortBy orders g's rows by the column with given id in given
// direction.  Rows with equal keys keep their insertion order in both
// directions.  SortBy fails with [ErrInvalidColumn] for an unknown
// column and is a no-op for a grid which is not sortable.
func (g *Grid[I]) SortBy(id ColumnID, d Direction) error {
	if !g.sortable {
		return nil
	}
	if _, err := g.cc.byID(id); err != nil {
		return err
	}
	before := g.Selection()
	g.srt = SortState{Column: id, Direction: d, Active: true}
	g.reorder()
	g.emit(Sorted{SortState: g.srt})
	g.changed(before)
	return nil
}

// ToggleSort flips the sort direction if given column is the sort
// column; otherwise it sorts ascending by given column.
func (g *Grid[I]) ToggleSort(id ColumnID) error {
	if g.srt.Active && g.srt.Column == id {
		return g.SortBy(id, g.srt.Direction.Flipped())
	}
	return g.SortBy(id, Ascending)
}

// ClearSort resets the display order to insertion order.
func (g *Grid[I]) ClearSort() {
	if !g.srt.Active {
		return
	}
	before := g.Selection()
	g.srt = SortState{}
	g.reorder()
	g.emit(Sorted{SortState: g.srt})
	g.changed(before)
}

// reorder recomputes the display order and its inverse from the
// current sort state.
func (g *Grid[I]) reorder() {
	order := make([]int, g.rr.len())
	for i := range order {
		order[i] = i
	}
	if g.srt.Active {
		if c, err := g.cc.byID(g.srt.Column); err == nil {
			g.sortOrder(order, c)
		}
	}
	g.order = order
	g.pos = make([]int, len(order))
	for display, storage := range order {
		g.pos[storage] = display
	}
}

func (g *Grid[I]) sortOrder(order []int, c Column) {
	ii, desc := g.rr.ii, g.srt.Direction == Descending
	slices.SortStableFunc(order, func(a, b int) bool {
		if desc {
			return compare(ii[a], ii[b], c) > 0
		}
		return compare(ii[a], ii[b], c) < 0
	})
}

func compare[I Item](a, b I, c Column) int {
	if o, ok := any(a).(Orderer[I]); ok {
		return o.Compare(b, c)
	}
	return CompareText(a.Cell(c), b.Cell(c))
}
