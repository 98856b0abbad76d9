package models

// SheetData represents the raw content of a single sheet.
type SheetData struct {
	// ID is the workbook-level sheet id.
	ID int `json:"id"`
	// Name is the sheet name.
	Name string `json:"name"`
	// Part is the worksheet part path inside the package.
	Part string `json:"-"`
	// Rows contains the stored rows in document order.
	Rows []Row `json:"rows,omitempty"`
}

// RawCells flattens the sheet's rows into a single cell list.
func (s SheetData) RawCells() []RawCell {
	n := 0
	for _, r := range s.Rows {
		n += len(r.Cells)
	}
	cells := make([]RawCell, 0, n)
	for _, r := range s.Rows {
		cells = append(cells, r.Cells...)
	}
	return cells
}
