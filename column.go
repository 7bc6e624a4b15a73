// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"golang.org/x/exp/slices"
)

// ColumnID identifies a column of a grid.  An id stays valid until its
// column is removed and is never reassigned to an other column of the
// same grid.
type ColumnID int

// Align is a column's horizontal alignment hint for its cells.
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Pad fills given string s with blanks according to a's alignment so
// that it has given display width w.  A string wider than w is
// truncated.
func (a Align) Pad(s string, w int) string {
	sw := runewidth.StringWidth(s)
	if sw > w {
		return runewidth.Truncate(s, w, "")
	}
	switch a {
	case AlignCenter:
		left := (w - sw) / 2
		return runewidth.FillRight(
			runewidth.FillLeft(s, sw+left), w)
	case AlignRight:
		return runewidth.FillLeft(s, w)
	default:
		return runewidth.FillRight(s, w)
	}
}

// Column describes a grid column.  Index is the column's display
// position at the time the Column value was handed out by a grid.
type Column struct {
	ID    ColumnID
	Label string
	Align Align

	// Width is a width hint; zero means the width of the content.
	Width int

	Index int
}

// ColumnOption configures a column which is added to a grid.
type ColumnOption func(*columnDef)

type columnDef struct {
	Column
	pos   int
	hasID bool
}

// At inserts a new column at given display position instead of
// appending it.
func At(pos int) ColumnOption {
	return func(cd *columnDef) { cd.pos = pos }
}

// WithID sets the id of a new column instead of having the grid pick
// the next free id.
func WithID(id ColumnID) ColumnOption {
	return func(cd *columnDef) {
		cd.ID = id
		cd.hasID = true
	}
}

// Aligned sets the alignment hint of a new column.
func Aligned(a Align) ColumnOption {
	return func(cd *columnDef) { cd.Align = a }
}

// Width sets the width hint of a new column.
func Width(w int) ColumnOption {
	return func(cd *columnDef) { cd.Width = w }
}

// columns is the ordered column descriptor set of a grid.
type columns struct {
	cc   []Column
	next ColumnID
}

func (cc *columns) len() int { return len(cc.cc) }

func (cc *columns) index(id ColumnID) int {
	return slices.IndexFunc(cc.cc, func(c Column) bool {
		return c.ID == id
	})
}

func (cc *columns) at(pos int) Column {
	c := cc.cc[pos]
	c.Index = pos
	return c
}

func (cc *columns) byID(id ColumnID) (Column, error) {
	idx := cc.index(id)
	if idx < 0 {
		return Column{}, fmt.Errorf("%w%d", ErrInvalidColumn, id)
	}
	return cc.at(idx), nil
}

func (cc *columns) all() []Column {
	_cc := make([]Column, len(cc.cc))
	for i := range cc.cc {
		_cc[i] = cc.at(i)
	}
	return _cc
}

func (cc *columns) add(cd columnDef) (Column, error) {
	if cd.pos < 0 || cd.pos > len(cc.cc) {
		return Column{}, fmt.Errorf("%w%d", ErrIndexOutOfRange, cd.pos)
	}
	if !cd.hasID {
		cd.ID = cc.next
	}
	if cc.index(cd.ID) >= 0 {
		return Column{}, fmt.Errorf("%w%d", ErrInvalidColumn, cd.ID)
	}
	if cd.ID >= cc.next {
		cc.next = cd.ID + 1
	}
	cc.cc = slices.Insert(cc.cc, cd.pos, cd.Column)
	return cc.at(cd.pos), nil
}

func (cc *columns) remove(id ColumnID) (pos int, _ error) {
	pos = cc.index(id)
	if pos < 0 {
		return -1, fmt.Errorf("%w%d", ErrInvalidColumn, id)
	}
	cc.cc = slices.Delete(cc.cc, pos, pos+1)
	return pos, nil
}

func (cc *columns) move(id ColumnID, to int) (from int, _ error) {
	from = cc.index(id)
	if from < 0 {
		return -1, fmt.Errorf("%w%d", ErrInvalidColumn, id)
	}
	if to < 0 || to >= len(cc.cc) {
		return -1, fmt.Errorf("%w%d", ErrIndexOutOfRange, to)
	}
	c := cc.cc[from]
	cc.cc = slices.Insert(slices.Delete(cc.cc, from, from+1), to, c)
	return from, nil
}

// AddColumn appends a new column with given label to g's columns, or
// inserts it at the position given by the [At] option.  Rows
// implementing [Shaper] get an empty cell at the new column's
// position.  AddColumn fails with [ErrIndexOutOfRange] for a position
// beyond the column count and with [ErrInvalidColumn] if a requested id
// is already in use.
func (g *Grid[I]) AddColumn(
	label string, oo ...ColumnOption,
) (ColumnID, error) {
	cd := columnDef{Column: Column{Label: label}, pos: g.cc.len()}
	for _, o := range oo {
		o(&cd)
	}
	c, err := g.cc.add(cd)
	if err != nil {
		return 0, err
	}
	g.reshape(func(s Shaper[I]) I { return s.InsertCell(c.Index) })
	return c.ID, nil
}

// RemoveColumn removes the column with given id.  Rows implementing
// [Shaper] drop the column's cell.  Is the removed column the sort
// column the display order falls back to insertion order.  A cell
// selection in the removed column moves to the column which takes over
// its position or to the new last column; it is cleared if no column
// is left.
func (g *Grid[I]) RemoveColumn(id ColumnID) error {
	before := g.Selection()
	pos, err := g.cc.remove(id)
	if err != nil {
		return err
	}
	g.reshape(func(s Shaper[I]) I { return s.RemoveCell(pos) })
	if g.srt.Active && g.srt.Column == id {
		g.srt = SortState{}
		g.reorder()
		g.emit(Sorted{SortState: g.srt})
	}
	if g.sel.selected && g.mode == CellMode && g.sel.column == id {
		if g.cc.len() == 0 {
			g.sel.selected = false
		} else {
			g.sel.column = g.cc.at(clamp(pos, 0, g.cc.len()-1)).ID
		}
	}
	g.changed(before)
	return nil
}

// MoveColumn moves the column with given id to given display position.
// Rows implementing [Shaper] move their cells accordingly.
func (g *Grid[I]) MoveColumn(id ColumnID, pos int) error {
	from, err := g.cc.move(id, pos)
	if err != nil {
		return err
	}
	g.reshape(func(s Shaper[I]) I { return s.MoveCell(from, pos) })
	return nil
}

// Columns returns g's columns in display order.
func (g *Grid[I]) Columns() []Column { return g.cc.all() }

// Column returns the column with given id or fails with
// [ErrInvalidColumn].
func (g *Grid[I]) Column(id ColumnID) (Column, error) {
	return g.cc.byID(id)
}

// ColumnAt returns the column at given display position or fails with
// [ErrIndexOutOfRange].
func (g *Grid[I]) ColumnAt(pos int) (Column, error) {
	if pos < 0 || pos >= g.cc.len() {
		return Column{}, fmt.Errorf("%w%d", ErrIndexOutOfRange, pos)
	}
	return g.cc.at(pos), nil
}

// ColumnsLen returns the number of g's columns.
func (g *Grid[I]) ColumnsLen() int { return g.cc.len() }
