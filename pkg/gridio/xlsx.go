package gridio

import (
	"archive/zip"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"sync"
	"unicode/utf8"

	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
	"github.com/ukaji3/gridio-go/pkg/gridio/naming"
	"github.com/ukaji3/gridio-go/pkg/gridio/parser"
	"github.com/xuri/excelize/v2"
)

// XLSXContainer is a Container backed by an xlsx document. Reads see a
// snapshot of the document that is rebuilt after each write.
//
// Writes are held to the xlsx format limits: at most excelize.MaxColumns
// columns and excelize.TotalRows rows, reported as a *grid.BoundsError,
// and at most excelize.TotalCellChars characters per value, reported as
// ErrValueTooLong. A rejected write leaves the document unchanged.
type XLSXContainer struct {
	mu   sync.Mutex
	f    *excelize.File
	snap *models.WorkbookData
}

// OpenXLSX opens the xlsx file at path.
func OpenXLSX(path string) (*XLSXContainer, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidFormat, path)
		}
		return nil, err
	}
	return &XLSXContainer{f: f}, nil
}

// NewXLSX returns a container for a new document with one empty sheet.
func NewXLSX() *XLSXContainer {
	return &XLSXContainer{f: excelize.NewFile()}
}

// File returns the underlying document.
func (c *XLSXContainer) File() *excelize.File {
	return c.f
}

func (c *XLSXContainer) snapshot() (*models.WorkbookData, error) {
	if c.snap != nil {
		return c.snap, nil
	}
	buf, err := c.f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	wb, err := parser.ReadWorkbookBytes(buf.Bytes())
	if err != nil {
		return nil, err
	}
	c.snap = wb
	return wb, nil
}

func (c *XLSXContainer) hasSheet(name string) bool {
	idx, err := c.f.GetSheetIndex(name)
	return err == nil && idx >= 0
}

// SheetNames implements Container.
func (c *XLSXContainer) SheetNames() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.f.GetSheetList()
}

// RawCells implements Container.
func (c *XLSXContainer) RawCells(sheet string) ([]models.RawCell, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wb, err := c.snapshot()
	if err != nil {
		return nil, NewSheetError(sheet, "read", err)
	}
	s, ok := wb.Sheet(sheet)
	if !ok {
		return nil, NewSheetError(sheet, "read", ErrSheetNotFound)
	}
	return s.RawCells(), nil
}

// SharedStrings implements Container.
func (c *XLSXContainer) SharedStrings() (models.SharedStrings, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	wb, err := c.snapshot()
	if err != nil {
		return nil, err
	}
	return slices.Clone(wb.SharedStrings), nil
}

// checkCell validates ref and value against the xlsx format limits.
func checkCell(ref, value string) error {
	a := address.Decode(ref)
	if a.Col >= excelize.MaxColumns {
		return &grid.BoundsError{Axis: "width", Size: a.Col + 1, Limit: excelize.MaxColumns}
	}
	if a.Row >= excelize.TotalRows {
		return &grid.BoundsError{Axis: "height", Size: a.Row + 1, Limit: excelize.TotalRows}
	}
	if n := utf8.RuneCountInString(value); n > excelize.TotalCellChars {
		return fmt.Errorf("%w: %s has %d characters, limit %d", ErrValueTooLong, a, n, excelize.TotalCellChars)
	}
	return nil
}

// WriteCell implements Container.
func (c *XLSXContainer) WriteCell(sheet, ref, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasSheet(sheet) {
		return NewSheetError(sheet, "write", ErrSheetNotFound)
	}
	if err := checkCell(ref, value); err != nil {
		return NewSheetError(sheet, "write", err)
	}
	if err := c.f.SetCellStr(sheet, address.Decode(ref).String(), value); err != nil {
		return NewSheetError(sheet, "write", err)
	}
	c.snap = nil
	return nil
}

// ReplaceRows implements Container. Every reference is validated before
// the sheet is touched.
func (c *XLSXContainer) ReplaceRows(sheet string, rows []models.Row) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasSheet(sheet) {
		return NewSheetError(sheet, "replace", ErrSheetNotFound)
	}
	for _, r := range rows {
		for _, cell := range r.Cells {
			if err := checkCell(cell.Ref, cell.Value); err != nil {
				return NewSheetError(sheet, "replace", err)
			}
		}
	}

	wb, err := c.snapshot()
	if err != nil {
		return NewSheetError(sheet, "replace", err)
	}
	c.snap = nil
	if existing, ok := wb.Sheet(sheet); ok {
		for i := len(existing.Rows) - 1; i >= 0; i-- {
			if err := c.f.RemoveRow(sheet, existing.Rows[i].Index); err != nil {
				return NewSheetError(sheet, "replace", err)
			}
		}
	}
	for _, r := range rows {
		for _, cell := range r.Cells {
			if err := c.f.SetCellStr(sheet, address.Decode(cell.Ref).String(), cell.Value); err != nil {
				return NewSheetError(sheet, "replace", err)
			}
		}
	}
	return nil
}

// NextSheetID implements Container.
func (c *XLSXContainer) NextSheetID() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nextID(), nil
}

func (c *XLSXContainer) nextID() int {
	var ids []int
	for id := range c.f.GetSheetMap() {
		ids = append(ids, id)
	}
	return naming.NextSheetID(ids)
}

// RegisterSheet implements Container.
func (c *XLSXContainer) RegisterSheet(name string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.hasSheet(name) {
		return 0, NewSheetError(name, "register", ErrSheetExists)
	}
	if _, err := c.f.NewSheet(name); err != nil {
		return 0, NewSheetError(name, "register", err)
	}
	c.snap = nil
	for id, n := range c.f.GetSheetMap() {
		if n == name {
			return id, nil
		}
	}
	return 0, NewSheetError(name, "register", ErrSheetNotFound)
}

// RemoveSheet implements Container.
func (c *XLSXContainer) RemoveSheet(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasSheet(name) {
		return NewSheetError(name, "remove", ErrSheetNotFound)
	}
	if err := c.f.DeleteSheet(name); err != nil {
		return NewSheetError(name, "remove", err)
	}
	c.snap = nil
	return nil
}

// Save writes the document back to the file it was opened from.
func (c *XLSXContainer) Save() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.f.Path == "" {
		return ErrNotPersistent
	}
	return c.f.Save()
}

// SaveAs writes the document to path.
func (c *XLSXContainer) SaveAs(path string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.f.SaveAs(path)
}

// Close releases the document.
func (c *XLSXContainer) Close() error {
	return c.f.Close()
}
