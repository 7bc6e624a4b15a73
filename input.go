// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid

// Input is a navigation or submission request a host forwards from
// its input events to a grid, see [Grid.Dispatch].
type Input uint8

const (
	Up Input = iota + 1
	Down
	Left
	Right
	PageUp
	PageDown
	Home
	End
	Enter
)

var inputNames = map[Input]string{
	Up: "up", Down: "down", Left: "left", Right: "right",
	PageUp: "page up", PageDown: "page down", Home: "home", End: "end",
	Enter: "enter",
}

func (in Input) String() string {
	if s, ok := inputNames[in]; ok {
		return s
	}
	return "unknown"
}

// Dispatch updates g's selection according to given input.  Left and
// Right are ignored in row mode; Enter submits the selection.  Dispatch
// never fails, inputs which can't be applied are ignored.
func (g *Grid[I]) Dispatch(in Input) {
	switch in {
	case Up:
		g.MoveSelection(-1)
	case Down:
		g.MoveSelection(1)
	case Left:
		g.MoveColumnSelection(-1)
	case Right:
		g.MoveColumnSelection(1)
	case PageUp:
		g.MoveSelection(-g.pageSize)
	case PageDown:
		g.MoveSelection(g.pageSize)
	case Home:
		g.selectEdge(0)
	case End:
		g.selectEdge(len(g.order) - 1)
	case Enter:
		g.Submit()
	}
}

// ActivateHeader is the host's report that the header of the column
// with given id was chosen.  It toggles the sort by that column; see
// [Grid.ToggleSort].
func (g *Grid[I]) ActivateHeader(id ColumnID) error {
	return g.ToggleSort(id)
}

func (g *Grid[I]) selectEdge(row int) {
	if row < 0 || (g.mode == CellMode && g.cc.len() == 0) {
		return
	}
	before := g.Selection()
	g.selectDisplay(row)
	g.changed(before)
}
