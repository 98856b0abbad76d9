package convert

import (
	"strconv"

	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/infer"
)

// TableOptions configures a tabular export.
type TableOptions struct {
	// Header takes column names from the first row and drops that row
	// from the data.
	Header bool
	// InferTypes types each column with the narrowest kind shared by all
	// of its values.
	InferTypes bool
}

// Column is a named, typed table column.
type Column struct {
	Name string     `json:"name"`
	Kind infer.Kind `json:"kind"`
}

// Table is a typed, column-named view of a sheet. Row values are strings
// unless types were inferred, in which case they are the Go values
// returned by infer.Parse. Absent cells are nil.
type Table struct {
	Name    string   `json:"name"`
	Columns []Column `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// TableFromGrid exports the grid as a table. Only stored cells take part
// in type inference. It fails only when the grid is too large to
// materialize.
func TableFromGrid(name string, g *grid.Grid, opts TableOptions) (Table, error) {
	t := Table{Name: name, Columns: []Column{}, Rows: [][]any{}}
	m, err := g.Dense()
	if err != nil {
		return t, err
	}
	if m.IsEmpty() {
		return t, nil
	}

	present := make([][]bool, m.Height())
	for y := range present {
		present[y] = make([]bool, m.Width())
	}
	for _, c := range g.Cells() {
		present[c.Address.Row][c.Address.Col] = true
	}
	return buildTable(t, m, func(x, y int) bool { return present[y][x] }, opts), nil
}

// TableFromMatrix exports m as a table. Empty strings count as absent
// cells.
func TableFromMatrix(name string, m grid.Matrix, opts TableOptions) Table {
	t := Table{Name: name, Columns: []Column{}, Rows: [][]any{}}
	if m.IsEmpty() {
		return t
	}
	return buildTable(t, m, func(x, y int) bool { return m.At(x, y) != "" }, opts)
}

func buildTable(t Table, m grid.Matrix, present func(x, y int) bool, opts TableOptions) Table {
	first := 0
	if opts.Header {
		first = 1
	}

	t.Columns = make([]Column, m.Width())
	seen := make(map[string]int)
	for x := range t.Columns {
		label := ""
		if opts.Header {
			label = m.At(x, 0)
		}
		t.Columns[x] = Column{Name: uniqueName(label, x, seen), Kind: infer.Text}
	}

	if m.Height() <= first {
		return t
	}

	if opts.InferTypes {
		for x := range t.Columns {
			var values []string
			for y := first; y < m.Height(); y++ {
				if present(x, y) {
					values = append(values, m.At(x, y))
				}
			}
			t.Columns[x].Kind = infer.LowestCommon(values)
		}
	}

	for y := first; y < m.Height(); y++ {
		row := make([]any, m.Width())
		for x := range row {
			if !present(x, y) {
				continue
			}
			v := m.At(x, y)
			row[x] = v
			if opts.InferTypes {
				if typed, ok := infer.Parse(v, t.Columns[x].Kind); ok {
					row[x] = typed
				}
			}
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// uniqueName returns label, or "ColumnN" when it is blank, suffixed with
// a counter when the name is already taken.
func uniqueName(label string, x int, seen map[string]int) string {
	name := label
	if name == "" {
		name = "Column" + strconv.Itoa(x+1)
	}
	base := name
	for seen[name] > 0 {
		seen[base]++
		name = base + "_" + strconv.Itoa(seen[base])
	}
	seen[name]++
	return name
}
