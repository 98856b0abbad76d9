// Package grid collects address-tagged cell values into a sparse grid and
// materializes dense matrices from it. It also holds the row-ordered cell
// store used by containers to apply single-cell and rectangle writes.
package grid

import (
	"slices"

	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/infer"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

// Cell is a cell value together with its position.
type Cell struct {
	Address address.Address `json:"-"`
	// Ref is the canonical reference of Address.
	Ref   string `json:"ref"`
	Value string `json:"value"`
}

// NewCell decodes ref and returns the cell holding value.
func NewCell(ref, value string) Cell {
	a := address.Decode(ref)
	return Cell{Address: a, Ref: a.String(), Value: value}
}

// Kind returns the inferred type of the cell text.
func (c Cell) Kind() infer.Kind {
	return infer.Infer(c.Value)
}

// Typed returns the cell text converted to its inferred type.
func (c Cell) Typed() any {
	return infer.Value(c.Value)
}

// Record is an (address, text) pair as delivered by a container.
type Record struct {
	Ref   string
	Value string
}

// Grid is a sparse collection of cells keyed by address. The zero value
// is not usable; call New.
type Grid struct {
	cells  map[address.Address]string
	width  int
	height int
}

// New returns an empty grid.
func New() *Grid {
	return &Grid{cells: make(map[address.Address]string)}
}

// FromRecords builds a grid from records in order. A later record for the
// same address replaces an earlier one.
func FromRecords(records []Record) *Grid {
	g := New()
	for _, r := range records {
		g.Put(r.Ref, r.Value)
	}
	return g
}

// FromRaw builds a grid from raw document cells, resolving shared string
// indexes through sst.
func FromRaw(raw []models.RawCell, sst models.SharedStrings) *Grid {
	g := New()
	for _, c := range raw {
		g.Put(c.Ref, sst.Resolve(c))
	}
	return g
}

// Put stores value at ref, replacing any previous value there.
func (g *Grid) Put(ref, value string) {
	g.PutAt(address.Decode(ref), value)
}

// PutAt stores value at a.
func (g *Grid) PutAt(a address.Address, value string) {
	g.cells[a] = value
	g.width = max(g.width, a.Col+1)
	g.height = max(g.height, a.Row+1)
}

// Bounds returns 1 + the largest column and 1 + the largest row present.
// An empty grid is (0, 0).
func (g *Grid) Bounds() (width, height int) {
	return g.width, g.height
}

// Len returns the number of stored cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// Get returns the cell at ref. Absence is reported by ok == false.
func (g *Grid) Get(ref string) (Cell, bool) {
	a := address.Decode(ref)
	return g.GetAt(a.Col, a.Row)
}

// GetAt returns the cell at (col, row).
func (g *Grid) GetAt(col, row int) (Cell, bool) {
	a := address.Address{Col: col, Row: row}
	v, ok := g.cells[a]
	if !ok {
		return Cell{}, false
	}
	return Cell{Address: a, Ref: a.String(), Value: v}, true
}

// Cells returns every stored cell in row-major order.
func (g *Grid) Cells() []Cell {
	cells := make([]Cell, 0, len(g.cells))
	for a, v := range g.cells {
		cells = append(cells, Cell{Address: a, Ref: a.String(), Value: v})
	}
	slices.SortFunc(cells, func(x, y Cell) int {
		switch {
		case x.Address.Less(y.Address):
			return -1
		case y.Address.Less(x.Address):
			return 1
		}
		return 0
	})
	return cells
}

// Dense materializes the grid as a Bounds()-sized matrix. Positions
// without a cell hold "". A grid whose bounds cover more than MaxCells
// positions returns an *AreaError.
func (g *Grid) Dense() (Matrix, error) {
	if err := CheckArea(g.width, g.height); err != nil {
		return Matrix{}, err
	}
	m := NewMatrix(g.width, g.height)
	for a, v := range g.cells {
		m.Set(a.Col, a.Row, v)
	}
	return m, nil
}

// Slice materializes the cells inside r. The range is first cut to the
// grid's bounds, so the matrix never extends past the last stored row or
// column; a range entirely outside the bounds gives an empty matrix.
func (g *Grid) Slice(r address.Range) (Matrix, error) {
	if r.Start.Col >= g.width || r.Start.Row >= g.height {
		return NewMatrix(0, 0), nil
	}
	r.End.Col = min(r.End.Col, g.width-1)
	r.End.Row = min(r.End.Row, g.height-1)
	if err := CheckArea(r.Width(), r.Height()); err != nil {
		return Matrix{}, err
	}
	m := NewMatrix(r.Width(), r.Height())
	for a, v := range g.cells {
		if r.Contains(a) {
			m.Set(a.Col-r.Start.Col, a.Row-r.Start.Row, v)
		}
	}
	return m, nil
}
