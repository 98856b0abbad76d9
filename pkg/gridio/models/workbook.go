package models

import "strconv"

// SharedStrings is the document-level table of deduplicated strings that
// cells reference by index.
type SharedStrings []string

// Lookup returns the string at index i.
func (s SharedStrings) Lookup(i int) (string, bool) {
	if i < 0 || i >= len(s) {
		return "", false
	}
	return s[i], true
}

// Resolve returns the text of a raw cell. A shared index that is out of
// range resolves to "", and one that is not a number is returned as is.
func (s SharedStrings) Resolve(c RawCell) string {
	if !c.Shared {
		return c.Value
	}
	i, err := strconv.Atoi(c.Value)
	if err != nil {
		return c.Value
	}
	v, _ := s.Lookup(i)
	return v
}

// WorkbookData represents a read snapshot of a workbook.
type WorkbookData struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets lists the sheets in workbook order.
	Sheets []SheetData `json:"sheets"`
	// SharedStrings is the shared string table.
	SharedStrings SharedStrings `json:"shared_strings,omitempty"`
}

// Sheet returns the sheet with the given name.
func (w *WorkbookData) Sheet(name string) (*SheetData, bool) {
	for i := range w.Sheets {
		if w.Sheets[i].Name == name {
			return &w.Sheets[i], true
		}
	}
	return nil, false
}

// SheetNames returns the sheet names in workbook order.
func (w *WorkbookData) SheetNames() []string {
	names := make([]string, len(w.Sheets))
	for i, s := range w.Sheets {
		names[i] = s.Name
	}
	return names
}
