package gridio

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/ukaji3/gridio-go/pkg/gridio/convert"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/parser"
)

// OpenReadOnly reads the file at path into an in-memory workbook. The
// file is closed on return; changes to the workbook cannot be saved.
func OpenReadOnly(path string, opts Options) (*Workbook, error) {
	wb, err := parser.OpenWorkbook(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, err
	}
	return NewWorkbook(NewMemoryContainerFrom(wb, opts.StoreOptions()), opts), nil
}

func openSnapshotSheet(path, sheet string, opts Options) (*Sheet, error) {
	wb, err := OpenReadOnly(path, opts)
	if err != nil {
		return nil, err
	}
	return wb.Sheet(sheet)
}

// ReadMatrix returns one sheet of the file at path as a dense matrix.
func ReadMatrix(path, sheet string) (grid.Matrix, error) {
	s, err := openSnapshotSheet(path, sheet, DefaultOptions())
	if err != nil {
		return grid.Matrix{}, err
	}
	return s.Matrix()
}

// ReadText returns one sheet of the file at path as delimited text.
func ReadText(path, sheet string, opts convert.TextOptions) (string, error) {
	o := DefaultOptions()
	o.Delimiter, o.LineTerminator = opts.Delimiter, opts.LineTerminator
	s, err := openSnapshotSheet(path, sheet, o)
	if err != nil {
		return "", err
	}
	return s.Text()
}

// ReadTable returns one sheet of the file at path as a table.
func ReadTable(path, sheet string, opts convert.TableOptions) (convert.Table, error) {
	s, err := openSnapshotSheet(path, sheet, DefaultOptions())
	if err != nil {
		return convert.Table{}, err
	}
	return s.Table(opts)
}
