package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
	"github.com/xuri/excelize/v2"
)

const testWorkbookXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<workbook xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<sheets>
<sheet name="Data" sheetId="4" r:id="rId2"/>
<sheet name="Empty" sheetId="9" r:id="rId1"/>
</sheets>
</workbook>`

const testRelsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
<Relationship Id="rId1" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="worksheets/sheet2.xml"/>
<Relationship Id="rId2" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/worksheet" Target="/xl/worksheets/sheet1.xml"/>
<Relationship Id="rId3" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/sharedStrings" Target="sharedStrings.xml"/>
</Relationships>`

const testSharedStringsXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<sst xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main" count="2" uniqueCount="2">
<si><t>plain</t></si>
<si><r><t>rich </t></r><r><rPr><b/></rPr><t>text</t></r><rPh><t>ignored</t></rPh></si>
</sst>`

const testSheetXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main">
<dimension ref="A1:C3"/>
<sheetData>
<row r="1"><c r="A1" t="s"><v>0</v></c><c r="B1" t="s"><v>1</v></c></row>
<row><c t="inlineStr"><is><t>inline</t></is></c><c><v>42</v></c><c r="D2" t="b"><v>1</v></c></row>
<row r="5"><c r="C5" t="str"><v>formula result</v></c><c/></row>
</sheetData>
</worksheet>`

const testEmptySheetXML = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<worksheet xmlns="http://schemas.openxmlformats.org/spreadsheetml/2006/main"><sheetData/></worksheet>`

func buildPackage(t *testing.T, parts map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range parts {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func testPackage(t *testing.T) []byte {
	return buildPackage(t, map[string]string{
		"xl/workbook.xml":            testWorkbookXML,
		"xl/_rels/workbook.xml.rels": testRelsXML,
		"xl/sharedStrings.xml":       testSharedStringsXML,
		"xl/worksheets/sheet1.xml":   testSheetXML,
		"xl/worksheets/sheet2.xml":   testEmptySheetXML,
	})
}

func TestReadWorkbook(t *testing.T) {
	wb, err := ReadWorkbookBytes(testPackage(t))
	if err != nil {
		t.Fatalf("ReadWorkbookBytes failed: %v", err)
	}

	names := wb.SheetNames()
	if len(names) != 2 || names[0] != "Data" || names[1] != "Empty" {
		t.Fatalf("unexpected sheet order %v", names)
	}
	if wb.Sheets[0].ID != 4 || wb.Sheets[1].ID != 9 {
		t.Errorf("unexpected sheet ids %d, %d", wb.Sheets[0].ID, wb.Sheets[1].ID)
	}
	if wb.Sheets[0].Part != "xl/worksheets/sheet1.xml" {
		t.Errorf("unexpected part %q", wb.Sheets[0].Part)
	}
	if len(wb.SharedStrings) != 2 || wb.SharedStrings[1] != "rich text" {
		t.Errorf("unexpected shared strings %q", wb.SharedStrings)
	}
	if len(wb.Sheets[1].Rows) != 0 {
		t.Errorf("expected no rows in empty sheet, got %d", len(wb.Sheets[1].Rows))
	}

	rows := wb.Sheets[0].Rows
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[1].Index != 2 || rows[2].Index != 5 {
		t.Errorf("unexpected row indexes %d, %d", rows[1].Index, rows[2].Index)
	}

	want := []models.RawCell{
		{Ref: "A2", Value: "inline"},
		{Ref: "B2", Value: "42"},
		{Ref: "D2", Value: "1"},
	}
	for i, c := range want {
		if rows[1].Cells[i] != c {
			t.Errorf("row 2 cell %d = %+v, want %+v", i, rows[1].Cells[i], c)
		}
	}
	if got := rows[2].Cells[1].Ref; got != "D5" {
		t.Errorf("cell after C5 addressed as %q, want D5", got)
	}
	if !rows[0].Cells[0].Shared {
		t.Errorf("expected A1 to reference the shared string table")
	}

	g := grid.FromRaw(wb.Sheets[0].RawCells(), wb.SharedStrings)
	if c, _ := g.Get("B1"); c.Value != "rich text" {
		t.Errorf("B1 = %q, want %q", c.Value, "rich text")
	}
	if c, _ := g.Get("C5"); c.Value != "formula result" {
		t.Errorf("C5 = %q", c.Value)
	}
}

func TestReadWorkbookMissingWorkbookPart(t *testing.T) {
	data := buildPackage(t, map[string]string{"docProps/app.xml": "<Properties/>"})

	_, err := ReadWorkbookBytes(data)
	if !errors.Is(err, ErrInvalidPackage) {
		t.Errorf("expected ErrInvalidPackage, got %v", err)
	}
}

func TestReadWorkbookNotZip(t *testing.T) {
	_, err := ReadWorkbookBytes([]byte("name,value\n"))
	if !errors.Is(err, ErrInvalidPackage) {
		t.Errorf("expected ErrInvalidPackage, got %v", err)
	}
}

func TestOpenWorkbook(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Second"); err != nil {
		t.Fatalf("NewSheet failed: %v", err)
	}
	f.SetCellValue("Second", "C3", "value")

	path := filepath.Join(t.TempDir(), "book.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	wb, err := OpenWorkbook(path)
	if err != nil {
		t.Fatalf("OpenWorkbook failed: %v", err)
	}
	if wb.BookName != "book.xlsx" {
		t.Errorf("BookName = %q", wb.BookName)
	}
	sheet, ok := wb.Sheet("Second")
	if !ok {
		t.Fatalf("sheet Second missing from %v", wb.SheetNames())
	}
	g := grid.FromRaw(sheet.RawCells(), wb.SharedStrings)
	if c, ok := g.Get("C3"); !ok || c.Value != "value" {
		t.Errorf("C3 = %+v, %v", c, ok)
	}
}

func TestOpenWorkbookMissingFile(t *testing.T) {
	_, err := OpenWorkbook(filepath.Join(t.TempDir(), "missing.xlsx"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected ErrNotExist, got %v", err)
	}
}

func TestResolveRelativePath(t *testing.T) {
	tests := []struct {
		target, base, want string
	}{
		{"worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"/xl/worksheets/sheet1.xml", "xl", "xl/worksheets/sheet1.xml"},
		{"../drawings/drawing1.xml", "xl/worksheets", "xl/drawings/drawing1.xml"},
	}
	for _, tt := range tests {
		if got := resolveRelativePath(tt.target, tt.base); got != tt.want {
			t.Errorf("resolveRelativePath(%q, %q) = %q, want %q", tt.target, tt.base, got, tt.want)
		}
	}
}
