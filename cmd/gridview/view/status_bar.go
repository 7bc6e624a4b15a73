// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"

	"github.com/slukits/lines"
)

type statusBar struct {
	lines.Component
	dflt string
}

func (sb *statusBar) OnInit(e *lines.Env) {
	sb.Dim().SetHeight(2)
	sb.print(e, sb.dflt)
}

func (sb *statusBar) OnUpdate(e *lines.Env, data interface{}) {
	s, _ := data.(string)
	if s == "" {
		s = sb.dflt
	}
	sb.print(e, s)
}

func (sb *statusBar) print(e *lines.Env, s string) {
	fmt.Fprint(e.BG(lines.Green).FG(lines.Black).LL(1), s)
}
