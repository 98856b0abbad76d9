package parser

import (
	"testing"

	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/xuri/excelize/v2"
)

func TestExtractRows(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header1")
	f.SetCellValue(sheetName, "B1", "Header2")
	f.SetCellValue(sheetName, "A2", 100)
	f.SetCellValue(sheetName, "B2", 200.5)
	f.SetCellValue(sheetName, "A4", "Text")

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("Failed to write test workbook: %v", err)
	}
	wb, err := ReadWorkbookBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("ReadWorkbookBytes failed: %v", err)
	}
	sheet, ok := wb.Sheet(sheetName)
	if !ok {
		t.Fatalf("Sheet %q not found in %v", sheetName, wb.SheetNames())
	}

	rows := ExtractRows(grid.FromRaw(sheet.RawCells(), wb.SharedStrings))

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0].R != 1 {
		t.Errorf("Expected row 1, got %d", rows[0].R)
	}
	if rows[0].C["1"] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0].C["1"])
	}
	if rows[1].C["1"] != int64(100) {
		t.Errorf("Expected int64(100), got %v (type: %T)", rows[1].C["1"], rows[1].C["1"])
	}
	if rows[1].C["2"] != 200.5 {
		t.Errorf("Expected 200.5, got %v", rows[1].C["2"])
	}
	if rows[2].R != 4 {
		t.Errorf("Expected row 4 after the gap, got %d", rows[2].R)
	}
}

func TestExtractRowsSkipsEmptyValues(t *testing.T) {
	g := grid.FromRecords([]grid.Record{{Ref: "A1", Value: ""}, {Ref: "C2", Value: "x"}})

	rows := ExtractRows(g)
	if len(rows) != 1 || rows[0].R != 2 || rows[0].C["3"] != "x" {
		t.Errorf("unexpected rows %+v", rows)
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected interface{}
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"TRUE", true},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (type: %T), expected %v (type: %T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
