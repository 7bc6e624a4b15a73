// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package teagrid

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/slukits/grid"
)

var keyInputs = map[string]grid.Input{
	"up":     grid.Up,
	"k":      grid.Up,
	"down":   grid.Down,
	"j":      grid.Down,
	"left":   grid.Left,
	"h":      grid.Left,
	"right":  grid.Right,
	"l":      grid.Right,
	"pgup":   grid.PageUp,
	"pgdown": grid.PageDown,
	"home":   grid.Home,
	"g":      grid.Home,
	"end":    grid.End,
	"G":      grid.End,
	"enter":  grid.Enter,
}

func keyInput(km tea.KeyMsg) (grid.Input, bool) {
	in, ok := keyInputs[km.String()]
	return in, ok
}

// headerKey maps the digits 1 to 9 to the column positions 0 to 8.
func headerKey(km tea.KeyMsg) (int, bool) {
	if km.Type != tea.KeyRunes || len(km.Runes) != 1 {
		return 0, false
	}
	r := km.Runes[0]
	if r < '1' || r > '9' {
		return 0, false
	}
	return int(r - '1'), true
}
