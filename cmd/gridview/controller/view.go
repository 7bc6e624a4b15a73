// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
view.go contains the functionality of the controller needed to receive
user requests and update the view in response to a user request or a
model update.  The view is updated through a single (locking) function.
*/

package controller

import (
	"fmt"
	"sync"

	"github.com/slukits/grid"
	"github.com/slukits/grid/cmd/gridview/model"
	"github.com/slukits/grid/cmd/gridview/view"
)

// message updates the view's message bar.
type message string

// status updates the view's status bar.
type status string

// viewIniter implements view.Initer, i.e. provides the initial data to
// a new view and collects the provided view modifiers.
type viewIniter struct {
	controller *controller
	grid       model.Grid
}

func (i *viewIniter) Message(msg func(string)) string {
	i.controller.view.msg = msg
	return fmt.Sprintf("%s (%s)",
		i.controller.cfg.Title, i.controller.state.sheet.Kind())
}

func (i *viewIniter) Status(upd func(string)) string {
	i.controller.view.stt = upd
	return i.controller.state.status()
}

func (i *viewIniter) Table(upd func(view.Grid)) (
	view.Grid, func(grid.Event),
) {
	i.controller.view.tbl = upd
	return i.grid, i.controller.gridEvent
}

func (i *viewIniter) Editor(edit func(*view.Edit)) {
	i.controller.view.edit = edit
}

func (i *viewIniter) ForButton(cb func(view.ButtonDef) error) {
	for _, bd := range i.controller.bb.defaults() {
		if err := cb(bd); err != nil {
			i.controller.log.Sugar().Errorf("button: %v", err)
		}
	}
}

// viewUpdater collects the functions to update aspects of a view.
type viewUpdater struct {

	// Mutex avoids that the view is updated concurrently.
	*sync.Mutex

	// msg updates the view's message bar
	msg func(string)

	// stt updates the view's status bar
	stt func(string)

	// tbl replaces the grid of the view's table
	tbl func(view.Grid)

	// edit starts editing a text in the view's message bar
	edit func(*view.Edit)
}

// Update updates the view and should be the only way the view is
// updated to avoid data races.
func (vw *viewUpdater) Update(dd ...interface{}) {
	vw.Lock()
	defer vw.Unlock()

	for _, d := range dd {
		switch updData := d.(type) {
		case view.Grid:
			vw.tbl(updData)
		case message:
			vw.msg(string(updData))
		case status:
			vw.stt(string(updData))
		case *view.Edit:
			vw.edit(updData)
		}
	}
}
