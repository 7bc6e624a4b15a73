// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// Item is the capability every row of a grid must have: it provides
// the text of its cell in given column.  Typed items usually switch on
// the column's ID while positional items like [Row] use its Index.
type Item interface {
	Cell(Column) string
}

// Orderer is implemented by items of a sortable grid which know how to
// compare themselves with an other item by given column.  Compare
// returns a negative number if the receiver is ordered before other, a
// positive number if it is ordered after other and zero otherwise.  A
// sortable grid whose items are no Orderer compares cell texts.
type Orderer[I any] interface {
	Compare(other I, c Column) int
}

// RowHeaderer is implemented by items having a row header, e.g.
// [ArrayRow].
type RowHeaderer interface {
	RowHeader() string
}

// Shaper is implemented by positional items whose cells must follow
// the shape changes of a grid's columns.  All methods return a changed
// copy and leave the receiver untouched.
type Shaper[I any] interface {

	// Resize pads or truncates the cells to given number n.
	Resize(n int) I

	// InsertCell inserts an empty cell at given position.
	InsertCell(at int) I

	// RemoveCell removes the cell at given position.
	RemoveCell(at int) I

	// MoveCell moves the cell at position from to position to.
	MoveCell(from, to int) I
}

// Row is a positional row of cell texts as it is created by a
// [TableBuilder].
type Row []string

// Cell returns the text at c's position or the empty string if r has no
// cell at that position.
func (r Row) Cell(c Column) string {
	if c.Index < 0 || c.Index >= len(r) {
		return ""
	}
	return r[c.Index]
}

// Compare compares the cells in given column, see [CompareText].
func (r Row) Compare(other Row, c Column) int {
	return CompareText(r.Cell(c), other.Cell(c))
}

func (r Row) Resize(n int) Row {
	if n <= len(r) {
		return slices.Clone(r[:n])
	}
	return append(slices.Clone(r), make(Row, n-len(r))...)
}

func (r Row) InsertCell(at int) Row {
	if at > len(r) {
		return r.Resize(at + 1)
	}
	return slices.Insert(slices.Clone(r), at, "")
}

func (r Row) RemoveCell(at int) Row {
	if at < 0 || at >= len(r) {
		return slices.Clone(r)
	}
	return slices.Delete(slices.Clone(r), at, at+1)
}

func (r Row) MoveCell(from, to int) Row {
	if from < 0 || from >= len(r) || to < 0 || to >= len(r) {
		return slices.Clone(r)
	}
	cell := r[from]
	return slices.Insert(
		slices.Delete(slices.Clone(r), from, from+1), to, cell)
}

// ArrayRow is a row with a row header as it is created by an
// [ArrayBuilder].
type ArrayRow struct {
	Header string
	Cells  Row
}

func (r ArrayRow) Cell(c Column) string { return r.Cells.Cell(c) }

func (r ArrayRow) RowHeader() string { return r.Header }

func (r ArrayRow) Compare(other ArrayRow, c Column) int {
	return r.Cells.Compare(other.Cells, c)
}

func (r ArrayRow) Resize(n int) ArrayRow {
	return ArrayRow{Header: r.Header, Cells: r.Cells.Resize(n)}
}

func (r ArrayRow) InsertCell(at int) ArrayRow {
	return ArrayRow{Header: r.Header, Cells: r.Cells.InsertCell(at)}
}

func (r ArrayRow) RemoveCell(at int) ArrayRow {
	return ArrayRow{Header: r.Header, Cells: r.Cells.RemoveCell(at)}
}

func (r ArrayRow) MoveCell(from, to int) ArrayRow {
	return ArrayRow{Header: r.Header, Cells: r.Cells.MoveCell(from, to)}
}

// CompareText compares given strings a and b numerically if both parse
// as numbers and lexically if neither does.  A number is less than a
// text; "NaN" counts as text.
func CompareText(a, b string) int {
	fa, okA := number(a)
	fb, okB := number(b)
	switch {
	case okA && !okB:
		return -1
	case !okA && okB:
		return 1
	case !okA:
		return strings.Compare(a, b)
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	}
	return 0
}

func number(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}
