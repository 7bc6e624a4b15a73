// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package view

import (
	"errors"
	"fmt"

	"github.com/slukits/grid"
	"github.com/slukits/lines"
)

// An Initer implementation initializes a new view provided to the
// [New] constructor and it is provided with the functionality to
// manipulate the view, i.e. the screen content.
type Initer interface {

	// Message returns the message bar's default content and is provided
	// by a view with a function to update or reset the message bar's
	// content.  Calling update with the empty string resets the message
	// bar's content.
	Message(update func(string)) string

	// Status returns the status bar's default content and is provided
	// by a view with a function to update or reset the status bar's
	// content.
	Status(update func(string)) string

	// Table returns the initially displayed grid and a listener which
	// is informed about the grid events triggered by user input.  It is
	// provided with a function to replace the displayed grid.
	Table(update func(Grid)) (Grid, func(grid.Event))

	// Editor is provided with a function to start editing a text in
	// the message bar, see [Edit].
	Editor(edit func(*Edit))

	// ForButton is provided by a view with a callback function which
	// may be used to initialize the view's button bar.  A button
	// definition fails if its label or rune is ambiguous.
	ForButton(func(ButtonDef) error)
}

// Edit is a single line text input taking place in the message bar
// while the table receives no keyboard input.
type Edit struct {

	// Prompt is displayed in front of the edited text.
	Prompt string

	// Text is the initial text.
	Text string

	// Done is called with the edited text once enter is pressed
	// (ok=true) or the edit is canceled by escape (ok=false).
	Done func(text string, ok bool)
}

// String returns the prompt and the text as they are shown in the
// message bar.
func (e *Edit) String() string {
	return fmt.Sprintf("%s: %s", e.Prompt, e.Text)
}

// view implements the lines Componenter interface hence an instance of
// it can be used to initialize a lines terminal ui.  A view instance
// may be modified only by the functions provided to an Initer
// implementation.
type view struct {
	lines.Component
	lines.Stacking
	ll          *lines.Lines
	runeButtons map[rune]*button
	edit        *Edit
}

// New uses provided information of given Initer i implementation to
// initialize a new returned view instance.  In turn the Initer
// implementation is provided with the functionality to modify created
// view instance.  New's return value should only be used to
// initialize a lines instance, e.g.:
//
//	lines.Term(view.New(i)).WaitForQuit()
func New(i Initer) *view {
	new := &view{}
	new.CC = append(new.CC, &messageBar{
		dflt: i.Message(new.updateMessageBar)})
	tbl := &table{}
	tbl.g, tbl.listener = i.Table(new.updateTable)
	new.CC = append(new.CC, tbl)
	new.CC = append(new.CC, &statusBar{
		dflt: i.Status(new.updateStatusBar)})
	initButtons(i, new)
	i.Editor(new.startEdit)
	return new
}

func initButtons(i Initer, v *view) *buttonBar {
	bb := &buttonBar{}
	v.CC = append(v.CC, bb)
	i.ForButton(func(bd ButtonDef) error {
		if err := v.validateButtonDef(bd); err != nil {
			return err
		}
		bb.bb = append(bb.bb, &button{
			label: bd.Label, rn: bd.Rune, listener: bd.Listener})
		if bd.Rune != 0 {
			v.addRune(bd.Rune, bb.bb[len(bb.bb)-1])
		}
		return nil
	})
	return bb
}

func (v *view) OnInit(e *lines.Env) {
	v.ll = e.Lines
}

func (v *view) OnUpdate(e *lines.Env, data interface{}) {
	edt, ok := data.(*Edit)
	if !ok {
		return
	}
	v.edit = edt
	v.ll.Update(v.CC[0], edt, nil)
}

var keyInputs = map[lines.Key]grid.Input{
	lines.Up:    grid.Up,
	lines.Down:  grid.Down,
	lines.Left:  grid.Left,
	lines.Right: grid.Right,
	lines.PgUp:  grid.PageUp,
	lines.PgDn:  grid.PageDown,
	lines.Home:  grid.Home,
	lines.End:   grid.End,
	lines.Enter: grid.Enter,
}

func (v *view) OnKey(e *lines.Env, k lines.Key, _ lines.ModifierMask) {
	if v.edit != nil {
		v.editKey(k)
		return
	}
	in, ok := keyInputs[k]
	if !ok {
		return
	}
	v.ll.Update(v.CC[1], in, nil)
}

func (v *view) editKey(k lines.Key) {
	switch k {
	case lines.Enter:
		v.endEdit(true)
	case lines.ESC:
		v.endEdit(false)
	case lines.Backspace, lines.DEL:
		rr := []rune(v.edit.Text)
		if len(rr) == 0 {
			return
		}
		v.edit.Text = string(rr[:len(rr)-1])
		v.ll.Update(v.CC[0], v.edit, nil)
	}
}

func (v *view) endEdit(ok bool) {
	edt := v.edit
	v.edit = nil
	v.ll.Update(v.CC[0], (*Edit)(nil), nil)
	if edt.Done != nil {
		edt.Done(edt.Text, ok)
	}
}

// OnRune appends to an ongoing edit, activates the column header with
// given digit or reports a button's rune.  Handled runes don't bubble
// hence they don't trigger the quit feature.
func (v *view) OnRune(e *lines.Env, r rune, _ lines.ModifierMask) {
	if v.edit != nil {
		e.StopBubbling()
		v.edit.Text += string(r)
		v.ll.Update(v.CC[0], v.edit, nil)
		return
	}
	if r >= '1' && r <= '9' {
		e.StopBubbling()
		v.ll.Update(v.CC[1], header(r-'1'), nil)
		return
	}
	b, ok := v.runeButtons[r]
	if !ok || b.listener == nil {
		return
	}
	e.StopBubbling()
	b.listener(b.label)
}

func (v *view) updateMessageBar(s string) {
	v.ll.Update(v.CC[0], s, nil)
}

func (v *view) updateTable(g Grid) {
	v.ll.Update(v.CC[1], g, nil)
}

func (v *view) updateStatusBar(s string) {
	v.ll.Update(v.CC[2], s, nil)
}

func (v *view) startEdit(edt *Edit) {
	v.ll.Update(v, edt, nil)
}

func (v *view) addRune(r rune, b *button) {
	if v.runeButtons == nil {
		v.runeButtons = map[rune]*button{}
	}
	v.runeButtons[r] = b
}

// ErrButtonLabelAmbiguity is returned during a view's initialization
// iff a button should be created with a label which is already used by
// an other button.
var ErrButtonLabelAmbiguity = errors.New(
	"view: define button: ambiguous label: ")

// ErrButtonRuneAmbiguity is returned during a view's initialization
// iff a button should be created with a rune which is already used by
// an other button or which activates a column header.
var ErrButtonRuneAmbiguity = errors.New(
	"view: define button: ambiguous rune: ")

func (v *view) validateButtonDef(bd ButtonDef) error {
	if _, ok := v.runeButtons[bd.Rune]; ok {
		return fmt.Errorf("%w%c", ErrButtonRuneAmbiguity, bd.Rune)
	}
	if bd.Rune >= '1' && bd.Rune <= '9' {
		return fmt.Errorf("%w%c", ErrButtonRuneAmbiguity, bd.Rune)
	}
	if bd.Label == "" {
		return nil
	}
	for _, b := range v.CC[3].(*buttonBar).bb {
		if b.label == bd.Label {
			return fmt.Errorf("%w%s", ErrButtonLabelAmbiguity, bd.Label)
		}
	}
	return nil
}
