// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

/*
Package controller wires a gridview's model sheet to its terminal view.
User input is reported by the view to the controller which changes the
sheet accordingly and hands a new grid snapshot to the view.  Selection
and sorting are carried over from one snapshot to the next.
*/
package controller

import (
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/slukits/grid/cmd/gridview/model"
	"github.com/slukits/grid/cmd/gridview/view"
	"github.com/slukits/lines"
	"go.uber.org/zap"
)

// InitFactories allows to replace the default factories of the
// components a gridview consists of.  Zero values are replaced by
// their defaults.
type InitFactories struct {

	// Fatal reports fatal errors and defaults to log.Fatal.
	Fatal func(...interface{})

	// Config provides the configuration.  It defaults to loading the
	// toml file given as first command line argument or to
	// model.DefaultConfig if there is none.
	Config func() (*model.Config, error)

	// Fill provides the content of new cells and defaults to
	// model.RandomCells seeded by the configuration.
	Fill func() string

	// Logger creates the logger and defaults to model.NewLogger.
	Logger func(model.LogConfig) (*zap.Logger, error)

	// View creates the view component and defaults to view.New.
	View func(view.Initer) lines.Componenter

	// Lines creates the lines instance running the event loop with
	// given view component and defaults to lines.Term.
	Lines func(lines.Componenter) *lines.Lines
}

func (i InitFactories) withDefaults() InitFactories {
	if i.Fatal == nil {
		i.Fatal = log.Fatal
	}
	if i.Config == nil {
		i.Config = argsConfig
	}
	if i.Logger == nil {
		i.Logger = model.NewLogger
	}
	if i.View == nil {
		i.View = func(i view.Initer) lines.Componenter {
			return view.New(i)
		}
	}
	if i.Lines == nil {
		i.Lines = lines.Term
	}
	return i
}

func argsConfig() (*model.Config, error) {
	if len(os.Args) > 1 {
		return model.LoadConfig(os.Args[1])
	}
	return model.DefaultConfig(), nil
}

type controller struct {
	cfg   *model.Config
	log   *zap.Logger
	state *modelState
	view  *viewUpdater
	bb    *buttons
	quit  func()
}

// New starts the application and blocks until a quit event occurs.
// Fatal errors are reported to the Fatal factory in which case New
// returns without starting the ui.
func New(i InitFactories) {
	i = i.withDefaults()
	cfg, err := i.Config()
	if err != nil {
		i.Fatal(err)
		return
	}
	lg, err := i.Logger(cfg.Log)
	if err != nil {
		i.Fatal(err)
		return
	}
	defer lg.Sync()
	sht, err := model.NewSheet(cfg, i.Fill)
	if err != nil {
		i.Fatal(err)
		return
	}
	c := &controller{
		cfg:   cfg,
		log:   lg,
		state: &modelState{Mutex: &sync.Mutex{}, sheet: sht, sel: -1},
		view:  &viewUpdater{Mutex: &sync.Mutex{}},
	}
	g, err := c.state.snapshot()
	if err != nil {
		i.Fatal(err)
		return
	}
	c.bb = &buttons{c: c}
	lg.Info("start",
		zap.String("title", cfg.Title),
		zap.String("kind", string(sht.Kind())),
		zap.Int("rows", sht.Len()),
		zap.Int("columns", sht.ColumnsLen()),
	)
	ll := i.Lines(i.View(&viewIniter{controller: c, grid: g}))
	c.quit = ll.Quit
	ll.WaitForQuit()
}

// refresh hands a new snapshot of the sheet to the view.
func (c *controller) refresh(msg string) {
	g, err := c.state.snapshot()
	if err != nil {
		c.fail("snapshot", err)
		return
	}
	c.view.Update(g, message(msg), status(c.state.status()))
}

func (c *controller) fail(op string, err error) {
	c.log.Error(op, zap.Error(err))
	c.view.Update(message(fmt.Sprintf("%s: %v", op, err)))
}
