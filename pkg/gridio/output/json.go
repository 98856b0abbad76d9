// Package output serializes exports as JSON.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/ukaji3/gridio-go/pkg/gridio/convert"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

// ToJSON serializes v. HTML characters are not escaped so cell text is
// written as is.
func ToJSON(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// SheetRows is the JSON shape of a sheet's typed rows.
type SheetRows struct {
	BookName  string           `json:"book_name,omitempty"`
	SheetName string           `json:"sheet_name"`
	Rows      []models.CellRow `json:"rows"`
}

// RowsToJSON serializes the typed rows of one sheet.
func RowsToJSON(bookName, sheetName string, rows []models.CellRow, pretty bool) ([]byte, error) {
	if rows == nil {
		rows = []models.CellRow{}
	}
	return ToJSON(SheetRows{BookName: bookName, SheetName: sheetName, Rows: rows}, pretty)
}

// TableToJSON serializes a table export.
func TableToJSON(t convert.Table, pretty bool) ([]byte, error) {
	return ToJSON(t, pretty)
}
