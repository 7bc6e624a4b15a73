// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"testing"

	"github.com/slukits/grid"
	. "github.com/slukits/gounit"
	"github.com/slukits/lines"
)

type ANewView struct{ Suite }

func (s *ANewView) SetUp(t *T) { t.Parallel() }

func (s *ANewView) Displays_initial_message(t *T) {
	tt := NewTesting(t, 0, New(newFX(t, grid.RowMode)))
	t.Contains(tt.MessageBar(), fxMsg)
}

func (s *ANewView) Displays_initial_status(t *T) {
	tt := NewTesting(t, 0, New(newFX(t, grid.RowMode)))
	t.Contains(tt.StatusBar(), fxStatus)
}

func (s *ANewView) Displays_buttons_with_marked_runes(t *T) {
	tt := NewTesting(t, 0, New(newFX(t, grid.RowMode)))
	t.Contains(tt.ButtonBar(), "[a]dd")
	t.Contains(tt.ButtonBar(), fxBtt2)
}

func (s *ANewView) Displays_column_labels_and_rows(t *T) {
	tt := NewTesting(t, 0, New(newFX(t, grid.RowMode)))
	tbl := tt.Table()
	t.Contains(tbl[0], fxLabels0)
	t.Contains(tbl[0], fxLabels1)
	t.Contains(tbl[1], " b ")
	t.Contains(tbl[2], " a ")
	t.Contains(tbl[3], " c ")
	t.Eq(" name  count ", tbl[0][:13])
}

func (s *ANewView) Displays_row_headers_of_an_array(t *T) {
	fx := &fxInit{t: t}
	g, err := grid.NewArrayBuilder().ColumnHeader("C1").
		RowHeader("first", "second").Data([][]string{{"x"}, {"y"}}).
		Build()
	t.FatalOn(err)
	tt := NewTesting(t, 0, New(fx))
	fx.updateTable(g)
	t.Contains(tt.Table()[1], " first   x ")
	t.Contains(tt.Table()[2], " second  y ")
}

func (s *ANewView) Reports_ambiguous_button_definitions(t *T) {
	fx := newFX(t, grid.RowMode)
	fx.bb = []ButtonDef{
		{Label: "one", Rune: 'o'},
		{Label: "one"},
		{Label: "other", Rune: 'o'},
		{Label: "digit", Rune: '1'},
	}
	NewTesting(t, 0, New(fx))
	t.FatalIfNot(t.Eq(3, len(fx.errs)))
	t.ErrIs(fx.errs[0], ErrButtonLabelAmbiguity)
	t.ErrIs(fx.errs[1], ErrButtonRuneAmbiguity)
	t.ErrIs(fx.errs[2], ErrButtonRuneAmbiguity)
}

func TestANewView(t *testing.T) {
	t.Parallel()
	Run(&ANewView{}, t)
}

type AView struct{ Suite }

func (s *AView) SetUp(t *T) { t.Parallel() }

func (s *AView) Updates_the_message_bar(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	fx.updateMessage("new message")
	t.Contains(tt.MessageBar(), "new message")
	fx.updateMessage("")
	t.Contains(tt.MessageBar(), fxMsg)
}

func (s *AView) Updates_the_status_bar(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	fx.updateStatus("rows: 3")
	t.Contains(tt.StatusBar(), "rows: 3")
}

func (s *AView) Replaces_the_displayed_grid(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	fx.updateTable(fx.fxRows(2).g)
	t.Contains(tt.Table()[0], "value")
	t.Contains(tt.Table()[2], "v1")
	t.Not.Contains(tt.Table(), fxLabels1)
}

func (s *AView) Reports_button_clicks_and_runes(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	tt.ClickButton(fxBtt2)
	tt.FireRune(fxRnBtt1)
	t.Eq([]string{fxBtt2, fxBtt1}, fx.clicked)
}

func (s *AView) Selects_rows_by_keys(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	tt.FireKey(lines.Down)
	t.Eq(0, fx.g.Selection().Row)
	tt.FireKey(lines.End)
	t.Eq(2, fx.g.Selection().Row)
	tt.FireKey(lines.Up)
	t.Eq(1, fx.g.Selection().Row)
	t.Eq(3, len(fx.ee))
}

func (s *AView) Moves_cell_selection_by_keys(t *T) {
	fx := newFX(t, grid.CellMode)
	tt := NewTesting(t, 0, New(fx))
	tt.FireKey(lines.Down)
	tt.FireKey(lines.Right)
	sel := fx.g.Selection()
	t.Eq(grid.CellSelected, sel.State)
	t.Eq(fx.g.Columns()[1].ID, sel.Column)
	t.Contains(tt.Table()[1], "[5    ]")
}

func (s *AView) Pages_by_the_displayed_row_count(t *T) {
	fx := newFX(t, grid.RowMode).fxRows(40)
	tt := NewTesting(t, 0, New(fx))
	rows := len(tt.Table()) - 1
	tt.FireKey(lines.Down)
	tt.FireKey(lines.PgDn)
	t.Eq(rows, fx.g.Selection().Row)
}

func (s *AView) Scrolls_to_the_selected_row(t *T) {
	fx := newFX(t, grid.RowMode).fxRows(40)
	tt := NewTesting(t, 0, New(fx))
	t.Contains(tt.Table()[1], " v0 ")
	tt.FireKey(lines.End)
	tbl := tt.Table()
	t.Contains(tbl[0], "value")
	t.Contains(tbl[len(tbl)-1], " v39 ")
	t.Not.Contains(tbl, " v0 ")
	tt.FireKey(lines.Home)
	t.Contains(tt.Table()[1], " v0 ")
}

func (s *AView) Sorts_by_digit_runes(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	tt.FireRune('1')
	t.Contains(tt.Table()[0], "name^")
	t.Contains(tt.Table()[1], " a ")
	tt.FireRune('1')
	t.Contains(tt.Table()[0], "namev")
	t.Contains(tt.Table()[1], " c ")
	t.Eq(2, len(fx.sorted()))
}

func (s *AView) Ignores_digits_without_column(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	tt.FireRune('9')
	t.Not.True(fx.g.Sort().Active)
	t.Eq(0, len(fx.ee))
}

func (s *AView) Sorts_by_header_clicks(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	tt.ClickHeader(1)
	t.Contains(tt.Table()[0], "count^")
	t.Contains(tt.Table()[1], " a ")
	t.Contains(tt.Table()[2], " c ")
	t.Contains(tt.Table()[3], " b ")
}

func (s *AView) Selects_clicked_cells(t *T) {
	fx := newFX(t, grid.CellMode)
	tt := NewTesting(t, 0, New(fx))
	tt.ClickCell(1, 1)
	sel := fx.g.Selection()
	t.Eq(1, sel.Row)
	t.Eq(fx.g.Columns()[1].ID, sel.Column)
	t.Contains(tt.Table()[2], "[3    ]")
}

func (s *AView) Selects_clicked_rows(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	tt.ClickCell(2, 0)
	t.Eq(2, fx.g.Selection().Row)
}

func (s *AView) Reports_submits_to_the_table_listener(t *T) {
	fx := newFX(t, grid.CellMode)
	tt := NewTesting(t, 0, New(fx))
	tt.FireKey(lines.Down)
	tt.FireKey(lines.Enter)
	ss := fx.submitted()
	t.FatalIfNot(t.Eq(1, len(ss)))
	t.Eq(0, ss[0].Row)
	t.True(ss[0].Cell)
}

func (s *AView) Edits_text_in_the_message_bar(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	edited, committed := "", false
	fx.edit(&Edit{Prompt: "Edit", Text: "x", Done: func(s string, ok bool) {
		edited, committed = s, ok
	}})
	t.Contains(tt.MessageBar(), "Edit: x"+editCursor)
	t.Contains(tt.MessageBar(), editHint)
	tt.FireRune('y')
	tt.FireRune('1')
	t.Contains(tt.MessageBar(), "Edit: xy1")
	t.Not.True(fx.g.Sort().Active)
	tt.FireKey(lines.Backspace)
	t.Contains(tt.MessageBar(), "Edit: xy"+editCursor)
	tt.FireRune('2')
	tt.FireKey(lines.DEL)
	t.Contains(tt.MessageBar(), "Edit: xy"+editCursor)
	tt.FireKey(lines.Enter)
	t.True(committed)
	t.Eq("xy", edited)
	t.Contains(tt.MessageBar(), fxMsg)
	t.Not.Contains(tt.MessageBar(), editHint)
	t.Eq(0, len(fx.submitted()))
}

func (s *AView) Cancels_an_edit_on_escape(t *T) {
	fx := newFX(t, grid.RowMode)
	tt := NewTesting(t, 0, New(fx))
	done, committed := false, true
	fx.edit(&Edit{Prompt: "Edit", Done: func(_ string, ok bool) {
		done, committed = true, ok
	}})
	tt.FireRune(fxRnBtt1)
	tt.FireKey(lines.ESC)
	t.True(done)
	t.Contains(tt.MessageBar(), fxMsg)
	t.Not.Contains(tt.MessageBar(), editHint)
	t.Not.True(committed)
	t.Eq(0, len(fx.clicked))
	tt.FireKey(lines.Down)
	t.Eq(0, fx.g.Selection().Row)
}

func TestAView(t *testing.T) {
	t.Parallel()
	Run(&AView{}, t)
}
