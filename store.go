// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// store holds a grid's items in insertion order.  Positions in store
// are the storage indices of a grid.
type store[I Item] struct {
	ii []I
}

func (s *store[I]) len() int { return len(s.ii) }

func (s *store[I]) set(ii []I) { s.ii = slices.Clone(ii) }

func (s *store[I]) add(i I) int {
	s.ii = append(s.ii, i)
	return len(s.ii) - 1
}

func (s *store[I]) valid(idx int) error {
	if idx < 0 || idx >= len(s.ii) {
		return fmt.Errorf("%w%d", ErrIndexOutOfRange, idx)
	}
	return nil
}

func (s *store[I]) item(idx int) (I, error) {
	if err := s.valid(idx); err != nil {
		var zero I
		return zero, err
	}
	return s.ii[idx], nil
}

func (s *store[I]) remove(idx int) (I, error) {
	i, err := s.item(idx)
	if err != nil {
		return i, err
	}
	s.ii = slices.Delete(s.ii, idx, idx+1)
	return i, nil
}

func (s *store[I]) update(idx int, i I) error {
	if err := s.valid(idx); err != nil {
		return err
	}
	s.ii[idx] = i
	return nil
}

// SetItems replaces all rows of g with given items.  The display order
// is reset to insertion order and the selection is cleared.  Given
// slice is copied.
func (g *Grid[I]) SetItems(ii []I) {
	before := g.Selection()
	g.rr.set(ii)
	for idx, i := range g.rr.ii {
		g.rr.ii[idx] = g.shaped(i)
	}
	g.srt = SortState{}
	g.sel.selected = false
	g.reorder()
	g.changed(before)
}

// AddRow appends given item to g's rows and returns its storage index.
// The display order is recomputed under the current sort state.
func (g *Grid[I]) AddRow(i I) int {
	before := g.Selection()
	idx := g.rr.add(g.shaped(i))
	g.reorder()
	g.changed(before)
	return idx
}

// RemoveRow removes and returns the item with given storage index.  The
// storage indices of subsequent rows shift down by one.  Is the removed
// row selected the selection is cleared; otherwise the selection stays
// on its row.
func (g *Grid[I]) RemoveRow(idx int) (I, error) {
	before := g.Selection()
	i, err := g.rr.remove(idx)
	if err != nil {
		return i, err
	}
	if g.sel.selected {
		switch {
		case g.sel.storage == idx:
			g.sel.selected = false
		case g.sel.storage > idx:
			g.sel.storage--
		}
	}
	g.reorder()
	g.changed(before)
	return i, nil
}

// UpdateRow replaces the item at given storage index.  The display order
// is recomputed under the current sort state.
func (g *Grid[I]) UpdateRow(idx int, i I) error {
	before := g.Selection()
	if err := g.rr.update(idx, g.shaped(i)); err != nil {
		return err
	}
	g.reorder()
	g.changed(before)
	return nil
}

// Item returns the item with given storage index or fails with
// [ErrIndexOutOfRange].
func (g *Grid[I]) Item(idx int) (I, error) { return g.rr.item(idx) }

// Items returns a copy of g's items in storage order.
func (g *Grid[I]) Items() []I { return slices.Clone(g.rr.ii) }

// Len returns the number of g's rows.
func (g *Grid[I]) Len() int { return g.rr.len() }

// shaped resizes given item to the column count if it is a Shaper.
func (g *Grid[I]) shaped(i I) I {
	s, ok := any(i).(Shaper[I])
	if !ok {
		return i
	}
	return s.Resize(g.cc.len())
}

// reshape applies given function to every row implementing Shaper and
// makes sure the result has as many cells as g has columns.
func (g *Grid[I]) reshape(f func(Shaper[I]) I) {
	for idx, i := range g.rr.ii {
		s, ok := any(i).(Shaper[I])
		if !ok {
			continue
		}
		g.rr.ii[idx] = g.shaped(f(s))
	}
}
