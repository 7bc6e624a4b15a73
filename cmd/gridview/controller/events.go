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

// gridEvent is informed about the events of the displayed grid.
func (c *controller) gridEvent(e grid.Event) {
	switch e := e.(type) {
	case grid.SelectionChanged:
		c.state.selected(e.Selection)
	case grid.Sorted:
		c.state.sorted(e.SortState)
		c.log.Debug("sorted",
			zap.Bool("active", e.Active),
			zap.Stringer("direction", e.Direction),
		)
		c.view.Update(status(c.state.status()))
	case grid.Submitted:
		c.submitted(e)
	}
}

// submitted starts editing a submitted cell.  A submitted row is only
// reported in the message bar.
func (c *controller) submitted(s grid.Submitted) {
	if !s.Cell {
		c.view.Update(message(fmt.Sprintf("submitted row %d", s.Index+1)))
		return
	}
	col, err := c.state.column(s.Column)
	if err != nil {
		c.fail("submit", err)
		return
	}
	c.view.Update(&view.Edit{
		Prompt: fmt.Sprintf("Edit R%d C%d", s.Index+1, col+1),
		Text:   c.state.text(s.Row, s.Column),
		Done: func(text string, ok bool) {
			if !ok {
				return
			}
			c.commit(s.Index, col, text)
		},
	})
}

func (c *controller) commit(row, col int, text string) {
	if err := c.state.sheet.Set(row, col, text); err != nil {
		c.fail("edit", err)
		return
	}
	c.log.Info("edit",
		zap.Int("row", row), zap.Int("column", col),
		zap.String("text", text))
	c.refresh(fmt.Sprintf("set R%d C%d", row+1, col+1))
}
