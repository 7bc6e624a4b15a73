// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package grid_test

import (
	"strconv"
	"strings"

	"github.com/slukits/grid"
)

const (
	nameColumn grid.ColumnID = iota
	countColumn
)

// pair is a typed sortable item.
type pair struct {
	name  string
	count int
}

func (p pair) Cell(c grid.Column) string {
	switch c.ID {
	case nameColumn:
		return p.name
	case countColumn:
		return strconv.Itoa(p.count)
	}
	return ""
}

func (p pair) Compare(o pair, c grid.Column) int {
	if c.ID == countColumn {
		return p.count - o.count
	}
	return strings.Compare(p.name, o.name)
}

// label is an item without ordering capability.
type label string

func (l label) Cell(grid.Column) string { return string(l) }

// fxPairs returns a grid with the name and count columns holding the
// pairs ("B",5), ("A",3), ("C",3).
func fxPairs(oo ...grid.Option) *grid.Grid[pair] {
	g := grid.New[pair](oo...)
	if _, err := g.AddColumn("name", grid.WithID(nameColumn)); err != nil {
		panic(err)
	}
	if _, err := g.AddColumn("count", grid.WithID(countColumn)); err != nil {
		panic(err)
	}
	g.SetItems([]pair{{"B", 5}, {"A", 3}, {"C", 3}})
	return g
}

// fxTable returns a 3x3 table grid with given options whose cells
// are named r<row>c<column>.
func fxTable(oo ...grid.Option) *grid.Grid[grid.Row] {
	g := grid.New[grid.Row](oo...)
	for _, l := range []string{"C1", "C2", "C3"} {
		if _, err := g.AddColumn(l); err != nil {
			panic(err)
		}
	}
	g.SetItems([]grid.Row{
		{"r0c0", "r0c1", "r0c2"},
		{"r1c0", "r1c1", "r1c2"},
		{"r2c0", "r2c1", "r2c2"},
	})
	g.Events()
	return g
}

func isPermutation(order []int) bool {
	seen := map[int]bool{}
	for _, idx := range order {
		if idx < 0 || idx >= len(order) || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
