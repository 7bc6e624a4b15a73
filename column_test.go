// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid_test

import (
	"testing"

	"github.com/slukits/grid"
	. "github.com/slukits/gounit"
)

type Columns struct{ Suite }

func (s *Columns) SetUp(t *T) { t.Parallel() }

func (s *Columns) Get_sequential_ids_by_default(t *T) {
	g := grid.New[grid.Row]()
	for i := 0; i < 3; i++ {
		id, err := g.AddColumn("C")
		t.FatalOn(err)
		t.Eq(grid.ColumnID(i), id)
	}
}

func (s *Columns) Never_reuse_an_id_of_a_removed_column(t *T) {
	g := grid.New[grid.Row]()
	_, err := g.AddColumn("C1")
	t.FatalOn(err)
	id, err := g.AddColumn("C2")
	t.FatalOn(err)
	t.FatalOn(g.RemoveColumn(id))
	next, err := g.AddColumn("C3")
	t.FatalOn(err)
	t.Not.Eq(id, next)
}

func (s *Columns) Continue_ids_after_an_explicit_id(t *T) {
	g := grid.New[grid.Row]()
	_, err := g.AddColumn("C1", grid.WithID(7))
	t.FatalOn(err)
	id, err := g.AddColumn("C2")
	t.FatalOn(err)
	t.Eq(grid.ColumnID(8), id)
}

func (s *Columns) Fail_to_add_a_taken_id(t *T) {
	g := grid.New[grid.Row]()
	_, err := g.AddColumn("C1", grid.WithID(1))
	t.FatalOn(err)
	_, err = g.AddColumn("C2", grid.WithID(1))
	t.ErrIs(err, grid.ErrInvalidColumn)
	t.Eq(1, g.ColumnsLen())
}

func (s *Columns) Fail_to_add_beyond_the_last_position(t *T) {
	g := grid.New[grid.Row]()
	_, err := g.AddColumn("C1", grid.At(1))
	t.ErrIs(err, grid.ErrIndexOutOfRange)
	t.Eq(0, g.ColumnsLen())
}

func (s *Columns) Fail_to_remove_an_unknown_id(t *T) {
	g := fxTable()
	t.ErrIs(g.RemoveColumn(42), grid.ErrInvalidColumn)
	t.Eq(3, g.ColumnsLen())
}

func (s *Columns) Are_reported_in_display_order_with_position(t *T) {
	g := fxTable()
	id, err := g.AddColumn("C0", grid.At(0),
		grid.Aligned(grid.AlignRight), grid.Width(4))
	t.FatalOn(err)
	cc := g.Columns()
	t.Eq(4, len(cc))
	t.Eq(grid.Column{ID: id, Label: "C0", Align: grid.AlignRight,
		Width: 4, Index: 0}, cc[0])
	for i, c := range cc {
		t.Eq(i, c.Index)
	}
	c, err := g.Column(cc[2].ID)
	t.FatalOn(err)
	t.Eq(cc[2], c)
	c, err = g.ColumnAt(3)
	t.FatalOn(err)
	t.Eq("C3", c.Label)
	_, err = g.ColumnAt(4)
	t.ErrIs(err, grid.ErrIndexOutOfRange)
	_, err = g.Column(42)
	t.ErrIs(err, grid.ErrInvalidColumn)
}

func (s *Columns) Extend_every_row_with_an_empty_cell(t *T) {
	g := fxTable()
	_, err := g.AddColumn("C", grid.At(1))
	t.FatalOn(err)
	for _, r := range g.Items() {
		t.Eq(4, len(r))
		t.Eq("", r[1])
	}
	i, err := g.Item(2)
	t.FatalOn(err)
	t.Eq(grid.Row{"r2c0", "", "r2c1", "r2c2"}, i)
}

func (s *Columns) Restore_row_shapes_adding_and_removing_a_column(t *T) {
	g := fxTable()
	before := g.Items()
	id, err := g.AddColumn("C", grid.At(2))
	t.FatalOn(err)
	t.FatalOn(g.RemoveColumn(id))
	t.Eq(before, g.Items())
}

func (s *Columns) Resize_rows_removing_and_adding_the_last_column(t *T) {
	g := fxTable()
	cc := g.Columns()
	t.FatalOn(g.RemoveColumn(cc[2].ID))
	for _, r := range g.Items() {
		t.Eq(2, len(r))
	}
	_, err := g.AddColumn("C4")
	t.FatalOn(err)
	for idx, r := range g.Items() {
		t.Eq(3, len(r))
		t.Eq("", r[2])
		txt, err := g.CellText(idx, cc[0].ID)
		t.FatalOn(err)
		t.Eq(r[0], txt)
	}
}

func (s *Columns) Keep_referring_to_their_cells_after_removals(t *T) {
	g := fxTable()
	cc := g.Columns()
	t.FatalOn(g.RemoveColumn(cc[0].ID))
	txt, err := g.CellText(1, cc[2].ID)
	t.FatalOn(err)
	t.Eq("r1c2", txt)
}

func (s *Columns) Move_their_cells_when_moved(t *T) {
	g := fxTable()
	cc := g.Columns()
	t.FatalOn(g.MoveColumn(cc[2].ID, 0))
	moved := g.Columns()
	t.Eq(cc[2].ID, moved[0].ID)
	t.Eq(cc[0].ID, moved[1].ID)
	i, err := g.Item(0)
	t.FatalOn(err)
	t.Eq(grid.Row{"r0c2", "r0c0", "r0c1"}, i)
	txt, err := g.CellText(0, cc[2].ID)
	t.FatalOn(err)
	t.Eq("r0c2", txt)
	t.ErrIs(g.MoveColumn(cc[0].ID, 3), grid.ErrIndexOutOfRange)
	t.ErrIs(g.MoveColumn(42, 0), grid.ErrInvalidColumn)
}

func (s *Columns) Leave_typed_items_alone(t *T) {
	g := fxPairs()
	_, err := g.AddColumn("extra", grid.At(0))
	t.FatalOn(err)
	txt, err := g.CellText(0, countColumn)
	t.FatalOn(err)
	t.Eq("5", txt)
}

func TestColumns(t *testing.T) {
	t.Parallel()
	Run(&Columns{}, t)
}

type Alignment struct{ Suite }

func (s *Alignment) SetUp(t *T) { t.Parallel() }

func (s *Alignment) Pads_to_given_width(t *T) {
	t.Eq("ab  ", grid.AlignLeft.Pad("ab", 4))
	t.Eq("  ab", grid.AlignRight.Pad("ab", 4))
	t.Eq(" ab ", grid.AlignCenter.Pad("ab", 4))
	t.Eq(" ab  ", grid.AlignCenter.Pad("ab", 5))
}

func (s *Alignment) Truncates_wider_text(t *T) {
	t.Eq("abc", grid.AlignRight.Pad("abcdef", 3))
}

func TestAlignment(t *testing.T) {
	t.Parallel()
	Run(&Alignment{}, t)
}
