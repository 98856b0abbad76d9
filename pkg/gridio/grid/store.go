package grid

import (
	"cmp"
	"slices"
	"strings"

	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

// StoreOptions configures how a Store places new cells.
type StoreOptions struct {
	// ColumnOrdered places a new cell before the first cell of its row
	// with a larger decoded column. When false, the cell goes before the
	// first cell whose reference has the same length and sorts after it,
	// which matches how existing documents were written but can misplace
	// cells in rows that mix one- and two-letter columns.
	ColumnOrdered bool
}

// Store holds a sheet's cells the way a document does: rows in ascending
// row number, each row a sequence of cells.
type Store struct {
	rows []models.Row
	opts StoreOptions
}

// NewStore returns a store holding rows. Rows are sorted by index.
func NewStore(rows []models.Row, opts StoreOptions) *Store {
	s := &Store{opts: opts}
	s.Replace(rows)
	return s
}

// Upsert writes value at ref. An existing cell at the same address is
// overwritten in place; otherwise the cell is inserted into its row,
// creating the row if needed.
func (s *Store) Upsert(ref, value string) {
	a := address.Decode(ref)
	ref = a.String()

	for i := range s.rows {
		for j := range s.rows[i].Cells {
			c := &s.rows[i].Cells[j]
			if address.Decode(c.Ref) == a {
				c.Value = value
				c.Shared = false
				return
			}
		}
	}

	index := a.Row + 1
	i, found := slices.BinarySearchFunc(s.rows, index, func(r models.Row, target int) int {
		return cmp.Compare(r.Index, target)
	})
	if !found {
		s.rows = slices.Insert(s.rows, i, models.Row{Index: index})
	}
	row := &s.rows[i]

	var pos int
	if s.opts.ColumnOrdered {
		pos = slices.IndexFunc(row.Cells, func(c models.RawCell) bool {
			return address.Decode(c.Ref).Col > a.Col
		})
	} else {
		pos = slices.IndexFunc(row.Cells, func(c models.RawCell) bool {
			return len(c.Ref) == len(ref) && strings.ToUpper(c.Ref) > ref
		})
	}

	cell := models.RawCell{Ref: ref, Value: value}
	if pos < 0 {
		row.Cells = append(row.Cells, cell)
		return
	}
	row.Cells = slices.Insert(row.Cells, pos, cell)
}

// Replace discards every stored row and stores a copy of rows.
func (s *Store) Replace(rows []models.Row) {
	s.rows = cloneRows(rows)
	slices.SortStableFunc(s.rows, func(x, y models.Row) int {
		return cmp.Compare(x.Index, y.Index)
	})
}

// Rows returns a copy of the stored rows.
func (s *Store) Rows() []models.Row {
	return cloneRows(s.rows)
}

// RawCells returns every stored cell in row order.
func (s *Store) RawCells() []models.RawCell {
	return models.SheetData{Rows: s.rows}.RawCells()
}

// Len returns the number of stored cells.
func (s *Store) Len() int {
	n := 0
	for _, r := range s.rows {
		n += len(r.Cells)
	}
	return n
}

// RowsFromMatrix lays m out as document rows: one row per matrix row and
// one cell per matrix column. It fails with a *BoundsError before building
// anything when m is larger than MaxDimension in either direction.
func RowsFromMatrix(m Matrix) ([]models.Row, error) {
	if err := CheckBounds(m.Width(), m.Height()); err != nil {
		return nil, err
	}

	rows := make([]models.Row, m.Height())
	for y := range rows {
		cells := make([]models.RawCell, m.Width())
		for x := range cells {
			cells[x] = models.RawCell{Ref: address.Encode(x, y), Value: m.At(x, y)}
		}
		rows[y] = models.Row{Index: y + 1, Cells: cells}
	}
	return rows, nil
}

func cloneRows(rows []models.Row) []models.Row {
	out := make([]models.Row, len(rows))
	for i, r := range rows {
		out[i] = models.Row{Index: r.Index, Cells: slices.Clone(r.Cells)}
	}
	return out
}
