// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package model

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/slukits/grid"
)

// Kind of a sheet: a table has no row headers while an array has.
type Kind string

const (
	Table Kind = "table"
	Array Kind = "array"
)

// Config holds the settings of a grid viewing application.  It is read
// from a toml file:
//
//	title = "numbers"
//	kind = "array"
//	columns = ["C1", "C2", "C3"]
//	rows = 10
//	sortable = true
//	selection = "cell"
//
//	[log]
//	level = "debug"
//	filename = "gridview.log"
//
// Is data given it is used instead of random rows.  Row headers
// default to "Row <n>" for arrays.
type Config struct {
	Title      string     `toml:"title"`
	Kind       Kind       `toml:"kind"`
	Columns    []string   `toml:"columns"`
	RowHeaders []string   `toml:"rowheaders"`
	Data       [][]string `toml:"data"`

	// Rows is the number of random rows if no data is given.
	Rows int `toml:"rows"`

	Sortable  bool   `toml:"sortable"`
	Selection string `toml:"selection"`

	// Shape is either "reject" or "pad"; see grid.ShapePolicy.
	Shape string `toml:"shape"`

	// Seed of the random cell values; zero seeds from the clock.
	Seed int64 `toml:"seed"`

	Log LogConfig `toml:"log"`
}

// ErrConfig is returned by [LoadConfig] and [Config.Validate] for
// invalid settings.
var ErrConfig = errors.New("gridview: config: ")

// DefaultConfig returns the settings used if no config file is given:
// a sortable table with three columns and ten random rows.
func DefaultConfig() *Config {
	return &Config{
		Title:    "gridview",
		Kind:     Table,
		Columns:  []string{"C1", "C2", "C3"},
		Rows:     10,
		Sortable: true,
	}
}

// LoadConfig reads the toml file at given path on top of the default
// configuration.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("%w%v", ErrConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports an error wrapping [ErrConfig] if a setting has an
// unknown value.
func (c *Config) Validate() error {
	switch c.Kind {
	case "", Table, Array:
	default:
		return fmt.Errorf("%wkind: %s", ErrConfig, c.Kind)
	}
	if _, err := c.SelectionMode(); err != nil {
		return err
	}
	if _, err := c.ShapePolicy(); err != nil {
		return err
	}
	if c.Rows < 0 {
		return fmt.Errorf("%wrows: %d", ErrConfig, c.Rows)
	}
	return nil
}

// SelectionMode maps the selection setting to a grid selection mode.
func (c *Config) SelectionMode() (grid.Mode, error) {
	switch c.Selection {
	case "", "row":
		return grid.RowMode, nil
	case "cell":
		return grid.CellMode, nil
	}
	return grid.RowMode, fmt.Errorf(
		"%wselection: %s", ErrConfig, c.Selection)
}

// ShapePolicy maps the shape setting to a grid shape policy.
func (c *Config) ShapePolicy() (grid.ShapePolicy, error) {
	switch c.Shape {
	case "", "reject":
		return grid.ShapeReject, nil
	case "pad":
		return grid.ShapePad, nil
	}
	return grid.ShapeReject, fmt.Errorf("%wshape: %s", ErrConfig, c.Shape)
}
