// Package gridio reads and writes spreadsheet sheets as sparse grids,
// dense matrices, delimited text, records and typed tables.
package gridio

import (
	"github.com/ukaji3/gridio-go/pkg/gridio/convert"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
)

// Options configures a Workbook.
type Options struct {
	// Delimiter separates fields in delimited text. Defaults to ",".
	Delimiter string
	// LineTerminator separates rows in delimited text. Defaults to the
	// platform newline.
	LineTerminator string
	// Header makes Sheet.Table use the first row as column names.
	Header bool
	// InferTypes makes Sheet.Table type each column.
	InferTypes bool
	// ColumnOrderedInsert places new cells by decoded column in in-memory
	// containers. When false, cells are placed the way existing documents
	// expect: before the first same-length reference that sorts after
	// them.
	ColumnOrderedInsert bool
}

// DefaultOptions returns default workbook options.
func DefaultOptions() Options {
	return Options{
		Delimiter:      convert.DefaultDelimiter,
		LineTerminator: convert.Newline(),
	}
}

// TextOptions returns the delimited text settings.
func (o Options) TextOptions() convert.TextOptions {
	return convert.TextOptions{Delimiter: o.Delimiter, LineTerminator: o.LineTerminator}
}

// TableOptions returns the table export settings.
func (o Options) TableOptions() convert.TableOptions {
	return convert.TableOptions{Header: o.Header, InferTypes: o.InferTypes}
}

// StoreOptions returns the cell placement settings.
func (o Options) StoreOptions() grid.StoreOptions {
	return grid.StoreOptions{ColumnOrdered: o.ColumnOrderedInsert}
}
