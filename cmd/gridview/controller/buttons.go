// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"fmt"

	"github.com/slukits/grid"
	"github.com/slukits/grid/cmd/gridview/view"
	"go.uber.org/zap"
)

const (
	bttAddRow       = "add row"
	bttRemoveRow    = "remove row"
	bttAddColumn    = "add column"
	bttRemoveColumn = "remove column"
	bttResetSort    = "reset sort"
	bttQuit         = "quit"
)

type buttons struct {
	c    *controller
	dflt []view.ButtonDef
}

func (bb *buttons) defaults() []view.ButtonDef {
	if bb.dflt == nil {
		bb.dflt = []view.ButtonDef{
			{Label: bttAddRow, Rune: 'a', Listener: bb.listener},
			{Label: bttRemoveRow, Rune: 'r', Listener: bb.listener},
			{Label: bttAddColumn, Rune: 'c', Listener: bb.listener},
			{Label: bttRemoveColumn, Rune: 'v', Listener: bb.listener},
			{Label: bttResetSort, Rune: 's', Listener: bb.listener},
			{Label: bttQuit, Rune: 'q', Listener: bb.listener},
		}
	}
	return bb.dflt
}

func (bb *buttons) listener(label string) {
	c := bb.c
	c.log.Debug("button", zap.String("label", label))
	switch label {
	case bttAddRow:
		c.state.sheet.AddRow()
		c.refresh(fmt.Sprintf("added row %d", c.state.sheet.Len()))
	case bttRemoveRow:
		if !c.state.sheet.RemoveRow() {
			c.view.Update(message("no row to remove"))
			return
		}
		c.refresh("removed last row")
	case bttAddColumn:
		c.state.sheet.AddColumn()
		c.refresh(fmt.Sprintf("added column %d",
			c.state.sheet.ColumnsLen()))
	case bttRemoveColumn:
		if !c.state.sheet.RemoveColumn() {
			c.view.Update(message("no column to remove"))
			return
		}
		c.refresh("removed last column")
	case bttResetSort:
		c.state.sorted(grid.SortState{})
		c.refresh("sort reset")
	case bttQuit:
		if c.quit != nil {
			c.quit()
		}
	}
}
