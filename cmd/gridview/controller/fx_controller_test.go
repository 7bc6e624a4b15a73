// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"fmt"
	"strconv"

	"github.com/slukits/gounit"
	"github.com/slukits/grid/cmd/gridview/model"
	"github.com/slukits/grid/cmd/gridview/view"
	"github.com/slukits/lines"
)

// fxConfig returns a configuration of a sortable table with the columns
// C1 and C2 holding the rows b/5, a/3 and c/3 in given selection mode.
func fxConfig(selection string) *model.Config {
	cfg := model.DefaultConfig()
	cfg.Columns = []string{"C1", "C2"}
	cfg.Data = [][]string{{"b", "5"}, {"a", "3"}, {"c", "3"}}
	cfg.Selection = selection
	return cfg
}

// counting returns a cell filler producing "0", "1", "2", ...
func counting() func() string {
	n := 0
	return func() string {
		n++
		return strconv.Itoa(n - 1)
	}
}

// fx starts a controller with given configuration and returns the
// testing instance of its view.
func fx(t *gounit.T, cfg *model.Config) *view.Testing {
	var tt *view.Testing
	New(InitFactories{
		Fatal: func(i ...interface{}) {
			t.Fatalf("unexpected error: %s", fmt.Sprint(i...))
		},
		Config: func() (*model.Config, error) { return cfg, nil },
		Fill:   counting(),
		Lines: func(c lines.Componenter) *lines.Lines {
			tt = view.NewTesting(t, 0, c)
			return tt.Lines
		},
	})
	return tt
}
