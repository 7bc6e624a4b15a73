// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"errors"
	"testing"

	. "github.com/slukits/gounit"
	"github.com/slukits/grid/cmd/gridview/model"
	"github.com/slukits/lines"
)

type AController struct{ Suite }

func (s *AController) SetUp(t *T) { t.Parallel() }

func (s *AController) Reports_fatal_config_errors(t *T) {
	var fatal []interface{}
	started := false
	New(InitFactories{
		Fatal: func(i ...interface{}) { fatal = i },
		Config: func() (*model.Config, error) {
			return nil, model.ErrConfig
		},
		Lines: func(c lines.Componenter) *lines.Lines {
			started = true
			return nil
		},
	})
	t.FatalIfNot(t.Eq(1, len(fatal)))
	t.True(errors.Is(fatal[0].(error), model.ErrConfig))
	t.Not.True(started)
}

func (s *AController) Reports_fatal_shape_errors(t *T) {
	var fatal []interface{}
	cfg := fxConfig("")
	cfg.Data = [][]string{{"x"}}
	New(InitFactories{
		Fatal:  func(i ...interface{}) { fatal = i },
		Config: func() (*model.Config, error) { return cfg, nil },
		Lines: func(c lines.Componenter) *lines.Lines {
			t.Fatal("unexpected ui start")
			return nil
		},
	})
	t.Eq(1, len(fatal))
}

func (s *AController) Displays_title_and_status(t *T) {
	tt := fx(t, fxConfig(""))
	t.Contains(tt.MessageBar(), "gridview (table)")
	t.Contains(tt.StatusBar(), "rows: 3; columns: 2; sort: none")
	t.Contains(tt.Table()[1], " b ")
}

func (s *AController) Adds_a_row_on_button_click(t *T) {
	tt := fx(t, fxConfig(""))
	tt.ClickButton(bttAddRow)
	t.Contains(tt.Table()[4], " 0 ")
	t.Contains(tt.Table()[4], " 1 ")
	t.Contains(tt.StatusBar(), "rows: 4")
	t.Contains(tt.MessageBar(), "added row 4")
}

func (s *AController) Adds_a_row_on_button_rune(t *T) {
	tt := fx(t, fxConfig(""))
	tt.FireRune('a')
	t.Contains(tt.StatusBar(), "rows: 4")
}

func (s *AController) Removes_last_rows(t *T) {
	tt := fx(t, fxConfig(""))
	tt.ClickButton(bttRemoveRow)
	t.Contains(tt.StatusBar(), "rows: 2")
	t.Not.Contains(tt.Table(), " c ")
	tt.ClickButton(bttRemoveRow)
	tt.ClickButton(bttRemoveRow)
	t.Contains(tt.StatusBar(), "rows: 0")
	tt.ClickButton(bttRemoveRow)
	t.Contains(tt.MessageBar(), "no row to remove")
}

func (s *AController) Adds_and_removes_last_columns(t *T) {
	tt := fx(t, fxConfig(""))
	tt.ClickButton(bttAddColumn)
	t.Contains(tt.Table()[0], "C3")
	t.Contains(tt.StatusBar(), "columns: 3")
	tt.ClickButton(bttRemoveColumn)
	tt.ClickButton(bttRemoveColumn)
	t.Contains(tt.StatusBar(), "columns: 1")
	t.Not.Contains(tt.Table()[0], "C2")
}

func (s *AController) Reports_sorting_in_the_status_bar(t *T) {
	tt := fx(t, fxConfig(""))
	tt.ClickHeader(1)
	t.Contains(tt.StatusBar(), "sort: C2 ascending")
	tt.ClickHeader(1)
	t.Contains(tt.StatusBar(), "sort: C2 descending")
}

func (s *AController) Keeps_the_sort_over_changes(t *T) {
	tt := fx(t, fxConfig(""))
	tt.FireRune('1')
	t.Contains(tt.Table()[1], " a ")
	tt.ClickButton(bttAddRow)
	t.Contains(tt.Table()[0], "C1^")
	t.Contains(tt.Table()[1], " 0 ")
	t.Contains(tt.Table()[2], " a ")
	t.Contains(tt.StatusBar(), "sort: C1 ascending")
}

func (s *AController) Resets_the_sort(t *T) {
	tt := fx(t, fxConfig(""))
	tt.FireRune('1')
	tt.ClickButton(bttResetSort)
	t.Contains(tt.Table()[1], " b ")
	t.Contains(tt.StatusBar(), "sort: none")
}

func (s *AController) Drops_the_sort_of_a_removed_column(t *T) {
	tt := fx(t, fxConfig(""))
	tt.FireRune('2')
	tt.ClickButton(bttRemoveColumn)
	t.Contains(tt.StatusBar(), "sort: none")
	t.Contains(tt.Table()[1], " b ")
}

func (s *AController) Keeps_the_selection_over_changes(t *T) {
	tt := fx(t, fxConfig("cell"))
	tt.FireKey(lines.Down)
	t.Contains(tt.Table()[1], "[b ]")
	tt.ClickButton(bttAddRow)
	t.Contains(tt.Table()[1], "[b ]")
}

func (s *AController) Clears_the_selection_of_a_removed_row(t *T) {
	tt := fx(t, fxConfig("cell"))
	tt.FireKey(lines.End)
	t.Contains(tt.Table()[3], "[c ]")
	tt.ClickButton(bttRemoveRow)
	t.Contains(tt.Table()[2], " a ")
	t.Not.Contains(tt.Table(), "[")
	tt.FireKey(lines.Down)
	t.Contains(tt.Table()[1], "[b ]")
}

func (s *AController) Reports_submitted_rows(t *T) {
	tt := fx(t, fxConfig(""))
	tt.FireKey(lines.Down)
	tt.FireKey(lines.Enter)
	t.Contains(tt.MessageBar(), "submitted row 1")
}

func (s *AController) Edits_submitted_cells(t *T) {
	tt := fx(t, fxConfig("cell"))
	tt.FireKey(lines.Down)
	tt.FireKey(lines.Enter)
	t.Contains(tt.MessageBar(), "Edit R1 C1: b")
	tt.FireRune('x')
	tt.FireKey(lines.Enter)
	t.Contains(tt.Table()[1], "bx")
	t.Contains(tt.MessageBar(), "set R1 C1")
}

func (s *AController) Discards_canceled_edits(t *T) {
	tt := fx(t, fxConfig("cell"))
	tt.FireKey(lines.Down)
	tt.FireKey(lines.Enter)
	tt.FireRune('x')
	tt.FireKey(lines.ESC)
	t.Not.Contains(tt.Table(), "bx")
	t.Contains(tt.MessageBar(), "gridview (table)")
}

func TestAController(t *testing.T) {
	t.Parallel()
	Run(&AController{}, t)
}
