// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// ShapePolicy decides how a builder handles data rows whose cell count
// differs from the column count.
type ShapePolicy uint8

const (
	// ShapeReject fails a build with [ErrShapeMismatch].
	ShapeReject ShapePolicy = iota

	// ShapePad pads missing cells with the empty string and truncates
	// surplus cells.
	ShapePad
)

type buildDef struct {
	labels   []string
	data     [][]string
	sortable bool
	mode     Mode
	align    Align
	shape    ShapePolicy
}

func newGrid[I Item](s *buildDef) (*Grid[I], error) {
	g := New[I](Sortable(s.sortable), Selecting(s.mode))
	for _, l := range s.labels {
		if _, err := g.AddColumn(l, Aligned(s.align)); err != nil {
			return nil, err
		}
	}
	return g, nil
}

func (s *buildDef) rows() ([]Row, error) {
	rr := make([]Row, 0, len(s.data))
	for i, d := range s.data {
		r := Row(slices.Clone(d))
		if len(r) != len(s.labels) {
			if s.shape == ShapeReject {
				return nil, fmt.Errorf("%wrow %d: %d cells; want %d",
					ErrShapeMismatch, i, len(r), len(s.labels))
			}
			r = r.Resize(len(s.labels))
		}
		rr = append(rr, r)
	}
	return rr, nil
}

// TableBuilder assembles a grid of [Row] items from column labels and a
// block of cell texts:
//
//	g, err := grid.NewTableBuilder().
//		ColumnHeader("name", "count").
//		Data([][]string{{"B", "5"}, {"A", "3"}}).
//		Sortable(true).
//		Build()
//
// The built grid is independent of the builder's data; later changes
// go through the grid's operations.
type TableBuilder struct {
	def buildDef
}

// NewTableBuilder returns a builder for a non-sortable grid in row
// mode which rejects data rows not matching the column count.
func NewTableBuilder() *TableBuilder { return &TableBuilder{} }

// ColumnHeader sets the labels of the columns in display order.
func (b *TableBuilder) ColumnHeader(labels ...string) *TableBuilder {
	b.def.labels = slices.Clone(labels)
	return b
}

// Data sets the rows' cell texts.
func (b *TableBuilder) Data(dd [][]string) *TableBuilder {
	b.def.data = dd
	return b
}

// Sortable sets if the built grid is sortable.
func (b *TableBuilder) Sortable(sortable bool) *TableBuilder {
	b.def.sortable = sortable
	return b
}

// SelectionMode sets the selection mode of the built grid.
func (b *TableBuilder) SelectionMode(m Mode) *TableBuilder {
	b.def.mode = m
	return b
}

// Align sets the alignment hint of all columns.
func (b *TableBuilder) Align(a Align) *TableBuilder {
	b.def.align = a
	return b
}

// Shape sets the policy for data rows not matching the column count.
func (b *TableBuilder) Shape(p ShapePolicy) *TableBuilder {
	b.def.shape = p
	return b
}

// Build returns a new grid holding a copy of the builder's data.  It
// fails with [ErrShapeMismatch] if the shape policy is [ShapeReject]
// and a data row's cell count differs from the column count.
func (b *TableBuilder) Build() (*Grid[Row], error) {
	rr, err := b.def.rows()
	if err != nil {
		return nil, err
	}
	g, err := newGrid[Row](&b.def)
	if err != nil {
		return nil, err
	}
	g.SetItems(rr)
	g.Events()
	return g, nil
}

// ArrayBuilder assembles a grid of [ArrayRow] items, i.e. a table whose
// rows have a row header.
type ArrayBuilder struct {
	def     buildDef
	headers []string
}

// NewArrayBuilder returns a builder for a non-sortable array grid in
// row mode which rejects data rows not matching the column count.
func NewArrayBuilder() *ArrayBuilder { return &ArrayBuilder{} }

// ColumnHeader sets the labels of the columns in display order.
func (b *ArrayBuilder) ColumnHeader(labels ...string) *ArrayBuilder {
	b.def.labels = slices.Clone(labels)
	return b
}

// RowHeader sets the row headers of the data rows.
func (b *ArrayBuilder) RowHeader(headers ...string) *ArrayBuilder {
	b.headers = slices.Clone(headers)
	return b
}

// Data sets the rows' cell texts.
func (b *ArrayBuilder) Data(dd [][]string) *ArrayBuilder {
	b.def.data = dd
	return b
}

// Sortable sets if the built grid is sortable.
func (b *ArrayBuilder) Sortable(sortable bool) *ArrayBuilder {
	b.def.sortable = sortable
	return b
}

// SelectionMode sets the selection mode of the built grid.
func (b *ArrayBuilder) SelectionMode(m Mode) *ArrayBuilder {
	b.def.mode = m
	return b
}

// Align sets the alignment hint of all columns.
func (b *ArrayBuilder) Align(a Align) *ArrayBuilder {
	b.def.align = a
	return b
}

// Shape sets the policy for data rows not matching the column count and
// row headers not matching the number of data rows.
func (b *ArrayBuilder) Shape(p ShapePolicy) *ArrayBuilder {
	b.def.shape = p
	return b
}

// Build returns a new grid holding a copy of the builder's data.  It
// fails with [ErrShapeMismatch] if the shape policy is [ShapeReject]
// and a data row's cell count differs from the column count or the
// number of row headers differs from the number of data rows.
func (b *ArrayBuilder) Build() (*Grid[ArrayRow], error) {
	rr, err := b.def.rows()
	if err != nil {
		return nil, err
	}
	hh := b.headers
	if len(hh) != len(rr) {
		if b.def.shape == ShapeReject {
			return nil, fmt.Errorf("%w%d row headers; want %d",
				ErrShapeMismatch, len(hh), len(rr))
		}
		hh = []string(Row(hh).Resize(len(rr)))
	}
	g, err := newGrid[ArrayRow](&b.def)
	if err != nil {
		return nil, err
	}
	ar := make([]ArrayRow, len(rr))
	for i, r := range rr {
		ar[i] = ArrayRow{Header: hh[i], Cells: r}
	}
	g.SetItems(ar)
	g.Events()
	return g, nil
}
