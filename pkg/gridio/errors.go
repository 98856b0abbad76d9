package gridio

import (
	"errors"
	"fmt"

	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file is not a valid xlsx package.
var ErrInvalidFormat = parser.ErrInvalidPackage

// ErrSheetNotFound indicates that no sheet has the requested name.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrSheetExists indicates that a sheet with the requested name is
// already registered.
var ErrSheetExists = errors.New("sheet already exists")

// ErrInvalidSheetName indicates a sheet name that is empty after
// sanitizing.
var ErrInvalidSheetName = errors.New("invalid sheet name")

// ErrValueTooLong indicates a cell value longer than the container can
// store.
var ErrValueTooLong = errors.New("cell value too long")

// ErrNotPersistent is returned by Save and SaveAs when the container has
// no backing file.
var ErrNotPersistent = errors.New("container cannot be saved")

// ErrBoundsExceeded is returned when a matrix write is larger than
// grid.MaxDimension or the container's own limits in either direction,
// and when a sheet is too large to read as a matrix.
var ErrBoundsExceeded = grid.ErrBoundsExceeded

// BoundsError carries the offending axis of a rejected matrix write.
type BoundsError = grid.BoundsError

// SheetError represents a failed operation on one sheet.
type SheetError struct {
	Sheet string
	Op    string // "read", "write", "replace", "register", "remove"
	Err   error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("%s sheet %q: %v", e.Op, e.Sheet, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheet, op string, err error) *SheetError {
	return &SheetError{
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
