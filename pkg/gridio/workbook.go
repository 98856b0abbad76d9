package gridio

import (
	"context"
	"io"
	"slices"
	"strconv"

	"github.com/ukaji3/gridio-go/internal/logging"
	"github.com/ukaji3/gridio-go/pkg/gridio/convert"
	"github.com/ukaji3/gridio-go/pkg/gridio/naming"
	"golang.org/x/sync/errgroup"
)

// Workbook gives sheet-level access to a Container.
type Workbook struct {
	c    Container
	opts Options
	log  *logging.Logger
}

// NewWorkbook wraps c.
func NewWorkbook(c Container, opts Options) *Workbook {
	return &Workbook{c: c, opts: opts, log: logging.Default}
}

// Open opens the xlsx file at path.
func Open(path string, opts Options) (*Workbook, error) {
	c, err := OpenXLSX(path)
	if err != nil {
		return nil, err
	}
	logging.Default.Debug("opened workbook %s", path)
	return NewWorkbook(c, opts), nil
}

// Create returns a workbook for a new xlsx document. Use SaveAs to write
// it out.
func Create(opts Options) *Workbook {
	return NewWorkbook(NewXLSX(), opts)
}

// Container returns the underlying container.
func (w *Workbook) Container() Container {
	return w.c
}

// Options returns the workbook options.
func (w *Workbook) Options() Options {
	return w.opts
}

// SheetNames lists the sheets in document order.
func (w *Workbook) SheetNames() []string {
	return w.c.SheetNames()
}

// Sheets returns every sheet in document order.
func (w *Workbook) Sheets() []*Sheet {
	names := w.c.SheetNames()
	sheets := make([]*Sheet, len(names))
	for i, name := range names {
		sheets[i] = &Sheet{wb: w, name: name}
	}
	return sheets
}

// Sheet returns the sheet with the given name.
func (w *Workbook) Sheet(name string) (*Sheet, error) {
	if !slices.Contains(w.c.SheetNames(), name) {
		return nil, NewSheetError(name, "open", ErrSheetNotFound)
	}
	return &Sheet{wb: w, name: name}, nil
}

// AddSheet registers a new empty sheet. The name is sanitized first; a
// blank or reserved name becomes "Sheet<id>" with the id the container
// assigns next. A name that sanitizes to nothing, such as "[]", is
// rejected with ErrInvalidSheetName.
func (w *Workbook) AddSheet(name string) (*Sheet, error) {
	id, err := w.c.NextSheetID()
	if err != nil {
		return nil, err
	}
	clean := naming.Sanitize(name, strconv.Itoa(id))
	if clean == "" {
		return nil, NewSheetError(name, "register", ErrInvalidSheetName)
	}
	if _, err := w.c.RegisterSheet(clean); err != nil {
		return nil, err
	}
	w.log.Debug("added sheet %q (requested %q)", clean, name)
	return &Sheet{wb: w, name: clean}, nil
}

// RemoveSheet deletes the named sheet.
func (w *Workbook) RemoveSheet(name string) error {
	if err := w.c.RemoveSheet(name); err != nil {
		return err
	}
	w.log.Debug("removed sheet %q", name)
	return nil
}

// Save writes the workbook back to its file.
func (w *Workbook) Save() error {
	p, ok := w.c.(Persister)
	if !ok {
		return ErrNotPersistent
	}
	return p.Save()
}

// SaveAs writes the workbook to path.
func (w *Workbook) SaveAs(path string) error {
	p, ok := w.c.(Persister)
	if !ok {
		return ErrNotPersistent
	}
	if err := p.SaveAs(path); err != nil {
		return err
	}
	w.log.Debug("saved workbook to %s", path)
	return nil
}

// Close releases the container if it holds resources.
func (w *Workbook) Close() error {
	if c, ok := w.c.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Tables exports every sheet as a table. Sheets are read concurrently;
// the result is in document order.
func (w *Workbook) Tables(ctx context.Context, opts convert.TableOptions) ([]convert.Table, error) {
	names := w.c.SheetNames()
	tables := make([]convert.Table, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t, err := (&Sheet{wb: w, name: name}).Table(opts)
			if err != nil {
				return err
			}
			tables[i] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return tables, nil
}
