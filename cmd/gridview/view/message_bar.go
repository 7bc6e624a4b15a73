// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"

	"github.com/slukits/lines"
)

const (
	editCursor = "_"
	editHint   = "enter: commit; esc: cancel"
)

// messageBar shows the latest message or its default.  During an edit
// it shows the edit's prompt and text followed by a cursor and a hint
// how to end the edit.
type messageBar struct {
	lines.Component
	dflt string
	msg  string
	edit *Edit
}

func (mb *messageBar) OnInit(e *lines.Env) {
	mb.Dim().SetHeight(3)
	fmt.Fprint(e.LL(1), mb.dflt)
}

// OnUpdate sets the message for a string and starts, continues or
// (for a nil Edit) ends an edit.  An ended edit also resets the
// message to the default.
func (mb *messageBar) OnUpdate(e *lines.Env, data interface{}) {
	switch data := data.(type) {
	case string:
		mb.msg = data
	case *Edit:
		if data == nil {
			mb.msg = ""
		}
		mb.edit = data
	}
	mb.write(e)
}

func (mb *messageBar) write(e *lines.Env) {
	if mb.edit != nil {
		fmt.Fprint(e.LL(1), mb.edit.String()+editCursor)
		fmt.Fprint(e.LL(2), editHint)
		return
	}
	mb.Reset(2)
	if mb.msg == "" {
		fmt.Fprint(e.LL(1), mb.dflt)
		return
	}
	fmt.Fprint(e.LL(1), mb.msg)
}
