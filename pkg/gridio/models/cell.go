// Package models defines data structures shared between the workbook
// reader, the cell grid and the containers.
package models

// CellRow represents a single row of non-empty cells.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column index (1-based, as string) to the typed cell value.
	C map[string]interface{} `json:"c"`
}

// RawCell is a cell record as stored in the document.
type RawCell struct {
	// Ref is the cell reference, e.g. "B3".
	Ref string `json:"ref"`
	// Value is the raw cell text. When Shared is set it holds the index
	// into the shared string table instead of the text itself.
	Value string `json:"value"`
	// Shared marks Value as a shared string index.
	Shared bool `json:"shared,omitempty"`
}

// Row is a document row holding cells in stored order.
type Row struct {
	// Index is the row number (1-based).
	Index int `json:"index"`
	// Cells are the row's cells in document order.
	Cells []RawCell `json:"cells"`
}
