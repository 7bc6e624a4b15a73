// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/slukits/grid"
)

// Grid is the functionality of a grid snapshot a sheet hands out
// independently of the snapshot's item type.
type Grid interface {
	Len() int
	Columns() []grid.Column
	Column(grid.ColumnID) (grid.Column, error)
	CellText(row int, id grid.ColumnID) (string, error)
	RowHeaderText(row int) (string, error)
	Resolve(row int) (int, error)
	DisplayIndex(idx int) (int, error)
	Selection() grid.Selection
	Select(row int) error
	SelectCell(row int, id grid.ColumnID) error
	Sort() grid.SortState
	SortBy(grid.ColumnID, grid.Direction) error
	Sortable() bool
	Dispatch(grid.Input)
	ActivateHeader(grid.ColumnID) error
	Events() []grid.Event
	SetPageSize(int)
}

// Sheet is the canonical data of a grid viewing application.  It may
// be changed concurrently while the ui only ever sees grid snapshots
// created by [Sheet.Snapshot].
type Sheet struct {
	*sync.Mutex
	kind     Kind
	labels   []string
	headers  []string
	data     [][]string
	sortable bool
	mode     grid.Mode
	shape    grid.ShapePolicy
	fill     func() string
}

// RandomCells returns a cell filler producing random numbers from 0 to
// 999 seeded with given seed or the current time if seed is zero.
func RandomCells(seed int64) func() string {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	r := rand.New(rand.NewSource(seed))
	return func() string { return strconv.Itoa(r.Intn(1000)) }
}

// NewSheet creates a sheet from given configuration.  Given fill
// function provides the content of new cells; it defaults to
// [RandomCells] seeded by the configuration.
func NewSheet(cfg *Config, fill func() string) (*Sheet, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if fill == nil {
		fill = RandomCells(cfg.Seed)
	}
	mode, _ := cfg.SelectionMode()
	shape, _ := cfg.ShapePolicy()
	s := &Sheet{
		Mutex:    &sync.Mutex{},
		kind:     cfg.Kind,
		labels:   append([]string{}, cfg.Columns...),
		headers:  append([]string{}, cfg.RowHeaders...),
		sortable: cfg.Sortable,
		mode:     mode,
		shape:    shape,
		fill:     fill,
	}
	if s.kind == "" {
		s.kind = Table
	}
	for _, d := range cfg.Data {
		s.data = append(s.data, append([]string{}, d...))
	}
	if len(cfg.Data) == 0 {
		for i := 0; i < cfg.Rows; i++ {
			s.data = append(s.data, s.newRow())
		}
	}
	if s.kind == Array && len(cfg.RowHeaders) == 0 {
		for i := range s.data {
			s.headers = append(s.headers, rowHeader(i))
		}
	}
	return s, nil
}

// Kind returns the kind of the sheet.
func (s *Sheet) Kind() Kind { return s.kind }

// Len returns the number of rows.
func (s *Sheet) Len() int {
	s.Lock()
	defer s.Unlock()
	return len(s.data)
}

// ColumnsLen returns the number of columns.
func (s *Sheet) ColumnsLen() int {
	s.Lock()
	defer s.Unlock()
	return len(s.labels)
}

// AddRow appends a row of new cells; an array's row gets the header
// "Row <n>".
func (s *Sheet) AddRow() {
	s.Lock()
	defer s.Unlock()
	s.data = append(s.data, s.newRow())
	if s.kind == Array {
		s.headers = append(s.headers, rowHeader(len(s.data)-1))
	}
}

// RemoveRow removes the last row and returns false if there is none.
func (s *Sheet) RemoveRow() bool {
	s.Lock()
	defer s.Unlock()
	if len(s.data) == 0 {
		return false
	}
	s.data = s.data[:len(s.data)-1]
	if s.kind == Array && len(s.headers) > len(s.data) {
		s.headers = s.headers[:len(s.data)]
	}
	return true
}

// AddColumn appends a column labeled "C<n>" whose cells are filled in
// every row.
func (s *Sheet) AddColumn() {
	s.Lock()
	defer s.Unlock()
	for i, r := range s.data {
		s.data[i] = append(
			[]string(grid.Row(r).Resize(len(s.labels))), s.fill())
	}
	s.labels = append(s.labels, fmt.Sprintf("C%d", len(s.labels)+1))
}

// RemoveColumn removes the last column and returns false if there is
// none.
func (s *Sheet) RemoveColumn() bool {
	s.Lock()
	defer s.Unlock()
	if len(s.labels) == 0 {
		return false
	}
	s.labels = s.labels[:len(s.labels)-1]
	for i, r := range s.data {
		if len(r) > len(s.labels) {
			s.data[i] = r[:len(s.labels)]
		}
	}
	return true
}

// Set sets the text of the cell in given row and column.  The row is
// resized to the column count beforehand.
func (s *Sheet) Set(row, col int, text string) error {
	s.Lock()
	defer s.Unlock()
	if err := s.valid(row, col); err != nil {
		return err
	}
	r := s.data[row]
	if len(r) != len(s.labels) {
		r = []string(grid.Row(r).Resize(len(s.labels)))
	}
	r[col] = text
	s.data[row] = r
	return nil
}

// Cell returns the text of the cell in given row and column.
func (s *Sheet) Cell(row, col int) (string, error) {
	s.Lock()
	defer s.Unlock()
	if err := s.valid(row, col); err != nil {
		return "", err
	}
	if col >= len(s.data[row]) {
		return "", nil
	}
	return s.data[row][col], nil
}

// Snapshot builds a new grid from the sheet's current data.  The grid
// is not affected by later changes of the sheet.
func (s *Sheet) Snapshot() (Grid, error) {
	s.Lock()
	defer s.Unlock()
	if s.kind == Array {
		g, err := grid.NewArrayBuilder().
			ColumnHeader(s.labels...).
			RowHeader(s.headers...).
			Data(s.data).
			Sortable(s.sortable).
			SelectionMode(s.mode).
			Shape(s.shape).
			Build()
		if err != nil {
			return nil, err
		}
		return g, nil
	}
	g, err := grid.NewTableBuilder().
		ColumnHeader(s.labels...).
		Data(s.data).
		Sortable(s.sortable).
		SelectionMode(s.mode).
		Shape(s.shape).
		Build()
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (s *Sheet) valid(row, col int) error {
	if row < 0 || row >= len(s.data) {
		return fmt.Errorf("%wrow %d", grid.ErrIndexOutOfRange, row)
	}
	if col < 0 || col >= len(s.labels) {
		return fmt.Errorf("%wcolumn %d", grid.ErrIndexOutOfRange, col)
	}
	return nil
}

func (s *Sheet) newRow() []string {
	r := make([]string, len(s.labels))
	for i := range r {
		r[i] = s.fill()
	}
	return r
}

func rowHeader(idx int) string { return fmt.Sprintf("Row %d", idx+1) }
