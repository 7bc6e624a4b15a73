// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package teagrid

import "github.com/charmbracelet/lipgloss"

// Styles of a [Model]'s parts.
type Styles struct {
	Header    lipgloss.Style
	Sorted    lipgloss.Style
	RowHeader lipgloss.Style
	Cell      lipgloss.Style
	Selected  lipgloss.Style
}

// DefaultStyles returns bold headers, a highlighted sort column header
// and a reversed selection.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true),
		Sorted:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		RowHeader: lipgloss.NewStyle().Faint(true),
		Cell:      lipgloss.NewStyle(),
		Selected:  lipgloss.NewStyle().Reverse(true),
	}
}
