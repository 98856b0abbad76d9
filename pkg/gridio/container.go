package gridio

import (
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

// Container stores the sheets of a document. Reads return snapshots;
// writes are applied completely or not at all.
type Container interface {
	// SheetNames lists the sheets in document order.
	SheetNames() []string
	// RawCells returns the stored cells of a sheet. Shared cells hold an
	// index into the table returned by SharedStrings.
	RawCells(sheet string) ([]models.RawCell, error)
	// SharedStrings returns the document's shared string table.
	SharedStrings() (models.SharedStrings, error)
	// WriteCell stores value at ref, overwriting or inserting the cell.
	WriteCell(sheet, ref, value string) error
	// ReplaceRows discards every row of the sheet and stores rows.
	ReplaceRows(sheet string, rows []models.Row) error
	// NextSheetID returns the id the next registered sheet will get.
	NextSheetID() (int, error)
	// RegisterSheet adds an empty sheet and returns its id.
	RegisterSheet(name string) (int, error)
	// RemoveSheet deletes a sheet.
	RemoveSheet(name string) error
}

// Persister is implemented by containers backed by a file.
type Persister interface {
	Save() error
	SaveAs(path string) error
}
