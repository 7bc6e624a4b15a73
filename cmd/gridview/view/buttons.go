// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/slukits/lines"
)

// ButtonDef defines a button's label and optional rune-event associated
// with defined button and a listener to which a button click or button
// rune-event is reported to.
type ButtonDef struct {
	Label    string
	Rune     rune
	Listener func(label string)
}

type buttonBar struct {
	lines.Component
	bb []*button
}

func (bb *buttonBar) OnInit(_ *lines.Env) {
	bb.Dim().SetHeight(1)
}

func (bb *buttonBar) ForChained(cb func(lines.Componenter) (stop bool)) {
	for _, b := range bb.bb {
		if b.label == "" {
			continue
		}
		if cb(b) {
			return
		}
	}
}

type button struct {
	lines.Component
	label    string
	listener func(string)
	rn       rune
}

func (b *button) OnInit(e *lines.Env) {
	lbl := b.uiLabel()
	b.Dim().SetWidth(runewidth.StringWidth(lbl) + 1)
	fmt.Fprint(e, lbl)
}

// uiLabel marks the button's rune in its label, e.g. "[a]dd row".
func (b *button) uiLabel() string {
	if b.rn == 0 || !strings.ContainsRune(b.label, b.rn) {
		return b.label
	}
	return strings.Replace(
		b.label, string(b.rn), fmt.Sprintf("[%c]", b.rn), 1)
}

func (b *button) OnClick(_ *lines.Env, _, _ int) {
	if b.listener == nil {
		return
	}
	b.listener(b.label)
}
