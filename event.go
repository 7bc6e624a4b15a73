// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

// Event is queued by a grid operation and retrieved by a grid's host
// through [Grid.Events].  It is one of [Submitted], [SelectionChanged]
// or [Sorted].
type Event interface {
	gridEvent()
}

// Submitted is queued by [Grid.Submit].  Row is the selected display
// index at the time of the submit and Index the storage index it
// resolved to.  Column is set iff Cell is true, i.e. the grid is in
// cell mode.
type Submitted struct {
	Row    int
	Index  int
	Column ColumnID
	Cell   bool
}

// SelectionChanged is queued whenever a grid operation changed the
// grid's selection.
type SelectionChanged struct {
	Selection Selection
}

// Sorted is queued whenever a grid's sort state has changed.
type Sorted struct {
	SortState
}

func (Submitted) gridEvent()        {}
func (SelectionChanged) gridEvent() {}
func (Sorted) gridEvent()           {}

// Events returns the events queued since the last call of Events.
func (g *Grid[I]) Events() []Event {
	ee := g.ee
	g.ee = nil
	return ee
}

func (g *Grid[I]) emit(e Event) { g.ee = append(g.ee, e) }
