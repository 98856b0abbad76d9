package gridio

import (
	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/convert"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
	"github.com/ukaji3/gridio-go/pkg/gridio/parser"
)

// Sheet reads and writes one sheet of a Workbook. Every read builds a
// fresh grid from the container.
type Sheet struct {
	wb   *Workbook
	name string
}

// Name returns the sheet name.
func (s *Sheet) Name() string {
	return s.name
}

// Grid returns the sheet's stored cells.
func (s *Sheet) Grid() (*grid.Grid, error) {
	raw, err := s.wb.c.RawCells(s.name)
	if err != nil {
		return nil, err
	}
	sst, err := s.wb.c.SharedStrings()
	if err != nil {
		return nil, NewSheetError(s.name, "read", err)
	}
	g := grid.FromRaw(raw, sst)
	s.wb.log.Trace("read %d cells from sheet %q", g.Len(), s.name)
	return g, nil
}

// Matrix returns the sheet as a dense matrix starting at A1. A sheet
// whose used area is over grid.MaxCells fails with ErrBoundsExceeded.
func (s *Sheet) Matrix() (grid.Matrix, error) {
	g, err := s.Grid()
	if err != nil {
		return grid.Matrix{}, err
	}
	m, err := g.Dense()
	if err != nil {
		return grid.Matrix{}, NewSheetError(s.name, "read", err)
	}
	return m, nil
}

// Text returns the sheet as delimited text.
func (s *Sheet) Text() (string, error) {
	m, err := s.Matrix()
	if err != nil {
		return "", err
	}
	return convert.ToText(m, s.wb.opts.TextOptions()), nil
}

// Table exports the sheet as a table named after it.
func (s *Sheet) Table(opts convert.TableOptions) (convert.Table, error) {
	g, err := s.Grid()
	if err != nil {
		return convert.Table{}, err
	}
	t, err := convert.TableFromGrid(s.name, g, opts)
	if err != nil {
		return convert.Table{}, NewSheetError(s.name, "read", err)
	}
	return t, nil
}

// Rows returns the non-empty rows with typed values.
func (s *Sheet) Rows() ([]models.CellRow, error) {
	g, err := s.Grid()
	if err != nil {
		return nil, err
	}
	return parser.ExtractRows(g), nil
}

// Cell returns the cell at ref. An unset cell has an empty value.
func (s *Sheet) Cell(ref string) (grid.Cell, error) {
	a := address.Decode(ref)
	return s.CellAt(a.Col, a.Row)
}

// CellAt returns the cell at the zero-based position.
func (s *Sheet) CellAt(col, row int) (grid.Cell, error) {
	g, err := s.Grid()
	if err != nil {
		return grid.Cell{}, err
	}
	if c, ok := g.GetAt(col, row); ok {
		return c, nil
	}
	return grid.NewCell(address.Encode(col, row), ""), nil
}

// SetCell writes value at ref, overwriting an existing cell or inserting
// a new one.
func (s *Sheet) SetCell(ref, value string) error {
	return s.wb.c.WriteCell(s.name, address.Decode(ref).String(), value)
}

// SetCellAt writes value at the zero-based position.
func (s *Sheet) SetCellAt(col, row int, value string) error {
	return s.SetCell(address.Encode(col, row), value)
}

// SetMatrix replaces the whole sheet with m, one cell per matrix
// position starting at A1. A matrix larger than grid.MaxDimension in
// either direction is rejected with a *BoundsError and the sheet is left
// unchanged.
func (s *Sheet) SetMatrix(m grid.Matrix) error {
	rows, err := grid.RowsFromMatrix(m)
	if err != nil {
		s.wb.log.Warn("rejected %dx%d write to sheet %q", m.Width(), m.Height(), s.name)
		return NewSheetError(s.name, "replace", err)
	}
	if err := s.wb.c.ReplaceRows(s.name, rows); err != nil {
		return err
	}
	s.wb.log.Debug("wrote %dx%d matrix to sheet %q", m.Width(), m.Height(), s.name)
	return nil
}

// SetText parses delimited text and replaces the sheet with it.
func (s *Sheet) SetText(text string) error {
	return s.SetMatrix(convert.FromText(text, s.wb.opts.TextOptions()))
}

// SetRecords replaces the sheet with items, one row per item and one
// column per schema field, optionally below a header row.
func SetRecords[T any](s *Sheet, items []T, schema convert.Schema[T], header bool) error {
	return s.SetMatrix(convert.FromRecords(items, schema, header))
}

// Records reads the sheet back into items of type T.
func Records[T any](s *Sheet, schema convert.Schema[T], header bool) ([]T, error) {
	m, err := s.Matrix()
	if err != nil {
		return nil, err
	}
	items, err := convert.ToRecords(m, schema, header)
	if err != nil {
		return nil, NewSheetError(s.name, "read", err)
	}
	return items, nil
}
