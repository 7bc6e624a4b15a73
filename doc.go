// Package grid models the state of a table or array widget
// independently of a terminal ui toolkit:
//   - columns with stable ids, labels, and alignment/width hints
//   - rows of arbitrary item types in insertion order
//   - a stable display order computed by sorting
//   - a row or cell selection which is navigated and submitted
//
// A host, e.g. a terminal ui component, renders a grid by asking it for
// its cell texts in display order and translates its input events into
// grid operations:
//
//	g, err := grid.NewTableBuilder().
//	    ColumnHeader("C1", "C2").
//	    Data([][]string{{"b", "2"}, {"a", "1"}}).
//	    Sortable(true).
//	    Build()
//	if err != nil {
//	    panic(err)
//	}
//	g.ActivateHeader(g.Columns()[0].ID) // sort by C1
//	g.Dispatch(grid.Down)               // select the first row
//	g.Dispatch(grid.Enter)              // submit it
//	for _, e := range g.Events() {
//	    if s, ok := e.(grid.Submitted); ok {
//	        item, _ := g.Item(s.Index)
//	        fmt.Println(item) // [a 1]
//	    }
//	}
//
// A grid holds no callbacks.  Operations queue [Event]s which a host
// retrieves with [Grid.Events].  A grid's items either are the [Row]
// and [ArrayRow] types created by [TableBuilder] and [ArrayBuilder] or
// user defined types implementing [Item] and optionally [Orderer] and
// [RowHeaderer]:
//
//	type file struct{ name string; size int }
//
//	const (
//	    name grid.ColumnID = iota
//	    size
//	)
//
//	func (f file) Cell(c grid.Column) string {
//	    switch c.ID {
//	    case name:
//	        return f.name
//	    case size:
//	        return strconv.Itoa(f.size)
//	    }
//	    return ""
//	}
//
//	func (f file) Compare(o file, c grid.Column) int {
//	    if c.ID == size {
//	        return f.size - o.size
//	    }
//	    return strings.Compare(f.name, o.name)
//	}
//
//	g := grid.New[file](grid.Sortable(true))
//	g.AddColumn("name", grid.WithID(name))
//	g.AddColumn("size", grid.WithID(size), grid.Aligned(grid.AlignRight))
//	g.SetItems(files)
//
// A grid is not safe for concurrent use.  An application sharing its
// data between goroutines keeps it in its own synchronized model and
// builds a fresh grid from it whenever it changed.
package grid
