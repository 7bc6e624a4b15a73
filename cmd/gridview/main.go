/*
Gridview displays a sortable table or array of cells in the terminal
and lets a user navigate, sort and edit it.

Usage:

	gridview [config.toml]

Without a configuration a table of three columns and ten rows of random
numbers is shown.  A configuration may provide the title, the kind
(table or array), the column labels, row headers, the data and the
selection mode (row or cell) along with the logging setup, see
model.Config.  Sample ui:

	gridview (table)

	 C1^  C2   C3
	 12   905  33
	 87   14   640
	 ...

	rows: 10; columns: 3; sort: C1 ascending
	[a]dd row [r]emove row add [c]olumn remo[v]e column re[s]et sort [q]uit

The arrow keys, page up/down, home and end move the selection; enter
submits it.  A submitted cell is edited in the message bar, enter
commits the edit and escape cancels it.  Pressing the digit n or
clicking a column header sorts by the n-th respectively clicked column;
repeating it flips the sort direction.  The buttons may be clicked or
executed by pressing their marked key.
*/
package main

import (
	"github.com/slukits/grid/cmd/gridview/controller"
)

func main() {
	controller.New(controller.InitFactories{})
}
