// Package parser reads the raw content of OOXML spreadsheet packages and
// derives row and table views from cell grids.
package parser

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

// OpenWorkbook reads the workbook stored at path.
func OpenWorkbook(path string) (*models.WorkbookData, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPackage, path, err)
		}
		return nil, err
	}
	defer r.Close()

	wb, err := ReadWorkbook(&r.Reader)
	if err != nil {
		return nil, err
	}
	wb.BookName = filepath.Base(path)
	return wb, nil
}

// ReadWorkbookBytes reads a workbook held in memory.
func ReadWorkbookBytes(data []byte) (*models.WorkbookData, error) {
	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPackage, err)
	}
	return ReadWorkbook(r)
}

// ReadWorkbook returns a snapshot of the sheets, raw cells and shared
// strings of the package. Sheets whose worksheet part is missing have no
// rows.
func ReadWorkbook(r *zip.Reader) (*models.WorkbookData, error) {
	workbookXML, err := readZipFile(r, workbookPart)
	if err != nil {
		return nil, err
	}
	if workbookXML == nil {
		return nil, fmt.Errorf("%w: missing %s", ErrInvalidPackage, workbookPart)
	}
	entries, err := parseWorkbookSheets(workbookXML)
	if err != nil {
		return nil, fmt.Errorf("%w: workbook: %v", ErrInvalidPackage, err)
	}

	rels := map[string]relationship{}
	relsXML, err := readZipFile(r, workbookRelsPart)
	if err != nil {
		return nil, err
	}
	if relsXML != nil {
		if rels, err = parseRels(relsXML, "xl"); err != nil {
			return nil, fmt.Errorf("%w: workbook rels: %v", ErrInvalidPackage, err)
		}
	}

	wb := &models.WorkbookData{Sheets: make([]models.SheetData, 0, len(entries))}

	sstPath := sharedStringPart
	for _, rel := range rels {
		if strings.HasSuffix(rel.typ, "/sharedStrings") {
			sstPath = rel.target
		}
	}
	sstXML, err := readZipFile(r, sstPath)
	if err != nil {
		return nil, err
	}
	if sstXML != nil {
		if wb.SharedStrings, err = parseSharedStrings(sstXML); err != nil {
			return nil, err
		}
	}

	for _, e := range entries {
		sheet := models.SheetData{ID: e.id, Name: e.name, Part: rels[e.rID].target}
		if sheet.Rows, err = readSheetRows(r, sheet.Part); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", e.name, err)
		}
		wb.Sheets = append(wb.Sheets, sheet)
	}

	return wb, nil
}

func readSheetRows(r *zip.Reader, part string) ([]models.Row, error) {
	if part == "" {
		return nil, nil
	}
	f := findZipFile(r, part)
	if f == nil {
		return nil, nil
	}
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return parseSheetData(rc)
}
