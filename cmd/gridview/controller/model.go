// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"fmt"
	"sync"

	"github.com/slukits/grid"
	"github.com/slukits/grid/cmd/gridview/model"
)

// modelState holds the sheet and the user's sort and selection which
// are carried over from one grid snapshot to the next.  Columns are
// remembered by position since a snapshot's column ids are not stable.
type modelState struct {
	*sync.Mutex
	sheet *model.Sheet

	// g is the currently displayed snapshot.
	g model.Grid

	// srt is the sort state whose column is given by srtCol.
	srt    grid.SortState
	srtCol int

	// sel is the storage index of the selected row; -1 if none.
	sel    int
	selCol int
}

// snapshot creates a new grid from the sheet and reapplies the current
// sort and selection.  A selection of a removed row is cleared.
func (s *modelState) snapshot() (model.Grid, error) {
	s.Lock()
	defer s.Unlock()
	g, err := s.sheet.Snapshot()
	if err != nil {
		return nil, err
	}
	cc := g.Columns()
	if s.srt.Active && s.srtCol < len(cc) {
		if err := g.SortBy(cc[s.srtCol].ID, s.srt.Direction); err != nil {
			return nil, err
		}
		s.srt = g.Sort()
	} else {
		s.srt = grid.SortState{}
	}
	if s.sel >= g.Len() {
		s.sel = -1
	}
	if s.sel >= 0 {
		row, err := g.DisplayIndex(s.sel)
		if err != nil {
			return nil, err
		}
		s.restoreSelection(g, row, cc)
	}
	g.Events()
	s.g = g
	return g, nil
}

func (s *modelState) restoreSelection(
	g model.Grid, row int, cc []grid.Column,
) {
	if g.Selection().Mode != grid.CellMode {
		g.Select(row)
		return
	}
	if len(cc) == 0 {
		s.sel = -1
		return
	}
	if s.selCol >= len(cc) {
		s.selCol = len(cc) - 1
	}
	g.SelectCell(row, cc[s.selCol].ID)
}

// selected remembers given selection of the displayed grid.
func (s *modelState) selected(sel grid.Selection) {
	s.Lock()
	defer s.Unlock()
	s.sel = sel.Index
	if sel.State != grid.CellSelected {
		return
	}
	if c, err := s.g.Column(sel.Column); err == nil {
		s.selCol = c.Index
	}
}

// sorted remembers given sort state of the displayed grid.
func (s *modelState) sorted(srt grid.SortState) {
	s.Lock()
	defer s.Unlock()
	s.srt = srt
	if !srt.Active {
		return
	}
	if c, err := s.g.Column(srt.Column); err == nil {
		s.srtCol = c.Index
	}
}

// column returns the position of the column with given id in the
// displayed grid.
func (s *modelState) column(id grid.ColumnID) (int, error) {
	s.Lock()
	defer s.Unlock()
	c, err := s.g.Column(id)
	if err != nil {
		return 0, err
	}
	return c.Index, nil
}

// text returns the text of the cell in given display row and column of
// the displayed grid.
func (s *modelState) text(row int, id grid.ColumnID) string {
	s.Lock()
	defer s.Unlock()
	txt, _ := s.g.CellText(row, id)
	return txt
}

// status returns the status bar content for the displayed grid.
func (s *modelState) status() string {
	s.Lock()
	defer s.Unlock()
	str := fmt.Sprintf("rows: %d; columns: %d; sort: ",
		s.sheet.Len(), s.sheet.ColumnsLen())
	if !s.srt.Active || s.g == nil {
		return str + "none"
	}
	c, err := s.g.Column(s.srt.Column)
	if err != nil {
		return str + "none"
	}
	return fmt.Sprintf("%s%s %s", str, c.Label, s.srt.Direction)
}
