// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package teagrid hosts a grid in a bubbletea program.  A [Model] maps key
messages to grid inputs and renders the grid's visible rows styled by
lipgloss.  Grid events triggered by user input are returned from
[Model.Update] as an [EventsMsg] command, e.g.:

	func (a app) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	    switch msg := msg.(type) {
	    case teagrid.EventsMsg:
	        // react to submits, selection changes and sorting
	    }
	    var cmd tea.Cmd
	    a.grid, cmd = a.grid.Update(msg)
	    return a, cmd
	}
*/
package teagrid

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/slukits/grid"
)

// Grid is the grid functionality a [Model] displays and forwards user
// input to.
type Grid interface {
	Len() int
	Columns() []grid.Column
	CellText(row int, id grid.ColumnID) (string, error)
	RowHeaderText(row int) (string, error)
	Selection() grid.Selection
	Sort() grid.SortState
	Dispatch(grid.Input)
	ActivateHeader(grid.ColumnID) error
	Events() []grid.Event
	SetPageSize(int)
}

// EventsMsg reports the grid events of the model with given ID.
type EventsMsg struct {
	ID     string
	Events []grid.Event
}

// DefaultHeight is the number of lines of a model including the header
// line if no height is set.
const DefaultHeight = 11

// Model is a bubbletea model of a grid.  Its zero value displays
// nothing.
type Model struct {
	// ID identifies the model's events if several models are used.
	ID string

	Styles Styles

	g       Grid
	height  int
	first   int
	focused bool
}

// Option configures a new Model.
type Option func(*Model)

// WithID sets the id of a new model's events.
func WithID(id string) Option { return func(m *Model) { m.ID = id } }

// WithHeight sets the number of lines of a new model.
func WithHeight(h int) Option { return func(m *Model) { m.height = h } }

// WithStyles replaces the default styles of a new model.
func WithStyles(s Styles) Option { return func(m *Model) { m.Styles = s } }

// Focused makes a new model receive key messages.
func Focused() Option { return func(m *Model) { m.focused = true } }

// New returns a model displaying given grid.
func New(g Grid, oo ...Option) Model {
	m := Model{height: DefaultHeight, Styles: DefaultStyles()}
	for _, o := range oo {
		o(&m)
	}
	m.SetGrid(g)
	return m
}

// Grid returns the displayed grid.
func (m Model) Grid() Grid { return m.g }

// SetGrid replaces the displayed grid.  The grid's page size is set to
// the number of displayed rows.
func (m *Model) SetGrid(g Grid) {
	m.g = g
	if g == nil {
		return
	}
	m.SetHeight(m.height)
}

// Height returns the number of lines of m including the header.
func (m Model) Height() int { return m.height }

// SetHeight sets the number of lines of m including the header.
func (m *Model) SetHeight(h int) {
	if h < 2 {
		h = 2
	}
	m.height = h
	if m.g == nil {
		return
	}
	m.g.SetPageSize(h - 1)
	m.scroll()
}

// Focus makes m receive key messages.
func (m *Model) Focus() { m.focused = true }

// Blur makes m ignore key messages.
func (m *Model) Blur() { m.focused = false }

// Focused returns true if m receives key messages.
func (m Model) Focused() bool { return m.focused }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update forwards key messages of a focused model to its grid.  The
// digits 1 to 9 activate the header of the according column.  Events
// of the grid are returned as command providing an [EventsMsg].
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.g == nil || !m.focused {
		return m, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	if in, ok := keyInput(km); ok {
		m.g.Dispatch(in)
	} else if pos, ok := headerKey(km); ok {
		if cc := m.g.Columns(); pos < len(cc) {
			m.g.ActivateHeader(cc[pos].ID)
		}
	}
	m.scroll()
	return m, m.events()
}

func (m Model) events() tea.Cmd {
	ee := m.g.Events()
	if len(ee) == 0 {
		return nil
	}
	id := m.ID
	return func() tea.Msg { return EventsMsg{ID: id, Events: ee} }
}

// scroll adjusts the first displayed row to the selection.
func (m *Model) scroll() {
	rows := m.height - 1
	if sel := m.g.Selection(); sel.Row >= 0 {
		if sel.Row < m.first {
			m.first = sel.Row
		}
		if sel.Row >= m.first+rows {
			m.first = sel.Row - rows + 1
		}
	}
	if last := m.g.Len() - rows; m.first > last {
		m.first = last
	}
	if m.first < 0 {
		m.first = 0
	}
}

// View renders the header line and the visible rows.  A selected row
// is marked by ">" and a selected cell is framed by brackets.
func (m Model) View() string {
	if m.g == nil {
		return ""
	}
	cc := m.g.Columns()
	l := newLayout(m.g, cc)
	sel := m.g.Selection()
	srt := m.g.Sort()

	ll := []string{m.headerLine(l, cc, srt)}
	for r := m.first; r < m.g.Len() && len(ll) < m.height; r++ {
		ll = append(ll, m.rowLine(l, cc, r, sel))
	}
	return strings.Join(ll, "\n")
}

func (m Model) headerLine(
	l *layout, cc []grid.Column, srt grid.SortState,
) string {
	b := strings.Builder{}
	b.WriteString("  ")
	if l.hw > 0 {
		b.WriteString(strings.Repeat(" ", l.hw+2))
	}
	for i, c := range cc {
		lbl := " " + c.Align.Pad(label(c, srt), l.ww[i]) + " "
		if srt.Active && srt.Column == c.ID {
			b.WriteString(m.Styles.Sorted.Render(lbl))
			continue
		}
		b.WriteString(m.Styles.Header.Render(lbl))
	}
	return b.String()
}

func (m Model) rowLine(
	l *layout, cc []grid.Column, row int, sel grid.Selection,
) string {
	selected := sel.Row == row
	b := strings.Builder{}
	if selected && sel.State == grid.RowSelected {
		b.WriteString("> ")
	} else {
		b.WriteString("  ")
	}
	if l.hw > 0 {
		h, _ := m.g.RowHeaderText(row)
		b.WriteString(m.Styles.RowHeader.Render(
			" " + grid.AlignLeft.Pad(h, l.hw) + " "))
	}
	for i, c := range cc {
		txt, _ := m.g.CellText(row, c.ID)
		txt = c.Align.Pad(txt, l.ww[i])
		switch {
		case selected && sel.State == grid.CellSelected &&
			sel.Column == c.ID:
			b.WriteString(m.Styles.Selected.Render("[" + txt + "]"))
		case selected && sel.State == grid.RowSelected:
			b.WriteString(m.Styles.Selected.Render(" " + txt + " "))
		default:
			b.WriteString(m.Styles.Cell.Render(" " + txt + " "))
		}
	}
	return b.String()
}

// label returns given column's label with a sort marker if it is the
// sort column.
func label(c grid.Column, srt grid.SortState) string {
	if !srt.Active || srt.Column != c.ID {
		return c.Label
	}
	if srt.Direction == grid.Descending {
		return c.Label + "v"
	}
	return c.Label + "^"
}

// layout holds the display widths of a grid's row headers and columns.
type layout struct {
	hw int
	ww []int
}

func newLayout(g Grid, cc []grid.Column) *layout {
	l := &layout{ww: make([]int, len(cc))}
	srt := g.Sort()
	for r := 0; r < g.Len(); r++ {
		h, _ := g.RowHeaderText(r)
		if w := lipgloss.Width(h); w > l.hw {
			l.hw = w
		}
	}
	for i, c := range cc {
		l.ww[i] = c.Width
		if w := lipgloss.Width(label(c, srt)); w > l.ww[i] {
			l.ww[i] = w
		}
		for r := 0; r < g.Len(); r++ {
			txt, _ := g.CellText(r, c.ID)
			if w := lipgloss.Width(txt); w > l.ww[i] {
				l.ww[i] = w
			}
		}
	}
	return l
}
