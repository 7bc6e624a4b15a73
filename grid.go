// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// DefaultPageSize is the number of rows a PageUp or PageDown input
// moves the selection if no other page size was configured.
const DefaultPageSize = 10

// Grid is the state of a table or array widget over items of type I:
// its columns, its rows in insertion order, the display order of these
// rows, and the selection.  A Grid is not safe for concurrent use.
type Grid[I Item] struct {
	cc       columns
	rr       store[I]
	sortable bool
	srt      SortState

	// order maps display indices to storage indices while pos is its
	// inverse.
	order []int
	pos   []int

	mode     Mode
	sel      selection
	pageSize int
	ee       []Event
}

// Option configures a new grid.
type Option func(*options)

type options struct {
	sortable bool
	mode     Mode
	pageSize int
}

// Sortable makes a new grid sortable.
func Sortable(sortable bool) Option {
	return func(o *options) { o.sortable = sortable }
}

// Selecting sets the selection mode of a new grid.
func Selecting(m Mode) Option {
	return func(o *options) { o.mode = m }
}

// PageSize sets the number of rows a page input moves the selection.
// Values smaller than one are ignored.
func PageSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.pageSize = n
		}
	}
}

// New returns a grid without columns and rows configured by given
// options.  By default a grid is not sortable and selects rows.
func New[I Item](oo ...Option) *Grid[I] {
	o := options{pageSize: DefaultPageSize}
	for _, opt := range oo {
		opt(&o)
	}
	return &Grid[I]{
		sortable: o.sortable,
		mode:     o.mode,
		pageSize: o.pageSize,
	}
}

// PageSize returns the number of rows a page input moves the
// selection.
func (g *Grid[I]) PageSize() int { return g.pageSize }

// SetPageSize sets the number of rows a page input moves the selection.
// Values smaller than one are ignored.
func (g *Grid[I]) SetPageSize(n int) {
	if n > 0 {
		g.pageSize = n
	}
}

// Order returns a copy of g's display order, i.e. the storage indices
// of g's rows in the order they are displayed.  Any mutation of g
// invalidates a returned order.
func (g *Grid[I]) Order() []int { return slices.Clone(g.order) }

// Resolve returns the storage index of the row with given display
// index.
func (g *Grid[I]) Resolve(row int) (int, error) {
	if row < 0 || row >= len(g.order) {
		return -1, fmt.Errorf("%w%d", ErrIndexOutOfRange, row)
	}
	return g.order[row], nil
}

// DisplayIndex returns the display index of the row with given storage
// index.
func (g *Grid[I]) DisplayIndex(idx int) (int, error) {
	if idx < 0 || idx >= len(g.pos) {
		return -1, fmt.Errorf("%w%d", ErrIndexOutOfRange, idx)
	}
	return g.pos[idx], nil
}

// At returns the item displayed at given display index.
func (g *Grid[I]) At(row int) (I, error) {
	idx, err := g.Resolve(row)
	if err != nil {
		var zero I
		return zero, err
	}
	return g.rr.ii[idx], nil
}

// CellText returns the text of the cell in given display row and given
// column.
func (g *Grid[I]) CellText(row int, id ColumnID) (string, error) {
	i, err := g.At(row)
	if err != nil {
		return "", err
	}
	c, err := g.cc.byID(id)
	if err != nil {
		return "", err
	}
	return i.Cell(c), nil
}

// RowHeaderText returns the row header of given display row which is
// the empty string for items without row header.
func (g *Grid[I]) RowHeaderText(row int) (string, error) {
	i, err := g.At(row)
	if err != nil {
		return "", err
	}
	if h, ok := any(i).(RowHeaderer); ok {
		return h.RowHeader(), nil
	}
	return "", nil
}

// ForRows calls back for each display row in display order with the
// row's display index, its storage index and its item until the
// callback returns true.
func (g *Grid[I]) ForRows(cb func(row, idx int, i I) (stop bool)) {
	for row, idx := range g.order {
		if cb(row, idx, g.rr.ii[idx]) {
			return
		}
	}
}
