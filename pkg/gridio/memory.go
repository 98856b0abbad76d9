package gridio

import (
	"slices"
	"strings"
	"sync"

	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
	"github.com/ukaji3/gridio-go/pkg/gridio/naming"
)

type memorySheet struct {
	id    int
	name  string
	store *grid.Store
}

// MemoryContainer is a Container held entirely in memory. It is safe for
// concurrent use.
type MemoryContainer struct {
	mu     sync.RWMutex
	sheets []*memorySheet
	sst    models.SharedStrings
	opts   grid.StoreOptions
}

// NewMemoryContainer returns an empty container.
func NewMemoryContainer(opts grid.StoreOptions) *MemoryContainer {
	return &MemoryContainer{opts: opts}
}

// NewMemoryContainerFrom returns a container holding a copy of wb.
func NewMemoryContainerFrom(wb *models.WorkbookData, opts grid.StoreOptions) *MemoryContainer {
	c := NewMemoryContainer(opts)
	c.sst = slices.Clone(wb.SharedStrings)
	for _, s := range wb.Sheets {
		c.sheets = append(c.sheets, &memorySheet{
			id:    s.ID,
			name:  s.Name,
			store: grid.NewStore(s.Rows, opts),
		})
	}
	return c
}

func (c *MemoryContainer) find(name string) *memorySheet {
	for _, s := range c.sheets {
		if s.name == name {
			return s
		}
	}
	return nil
}

// SheetNames implements Container.
func (c *MemoryContainer) SheetNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.sheets))
	for i, s := range c.sheets {
		names[i] = s.name
	}
	return names
}

// RawCells implements Container.
func (c *MemoryContainer) RawCells(sheet string) ([]models.RawCell, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := c.find(sheet)
	if s == nil {
		return nil, NewSheetError(sheet, "read", ErrSheetNotFound)
	}
	return s.store.RawCells(), nil
}

// SharedStrings implements Container.
func (c *MemoryContainer) SharedStrings() (models.SharedStrings, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.sst), nil
}

// WriteCell implements Container.
func (c *MemoryContainer) WriteCell(sheet, ref, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.find(sheet)
	if s == nil {
		return NewSheetError(sheet, "write", ErrSheetNotFound)
	}
	s.store.Upsert(ref, value)
	return nil
}

// ReplaceRows implements Container.
func (c *MemoryContainer) ReplaceRows(sheet string, rows []models.Row) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.find(sheet)
	if s == nil {
		return NewSheetError(sheet, "replace", ErrSheetNotFound)
	}
	s.store.Replace(rows)
	return nil
}

// NextSheetID implements Container.
func (c *MemoryContainer) NextSheetID() (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nextID(), nil
}

func (c *MemoryContainer) nextID() int {
	ids := make([]int, len(c.sheets))
	for i, s := range c.sheets {
		ids[i] = s.id
	}
	return naming.NextSheetID(ids)
}

// RegisterSheet implements Container. Names are compared without regard
// to letter case; an empty name is rejected.
func (c *MemoryContainer) RegisterSheet(name string) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if name == "" {
		return 0, NewSheetError(name, "register", ErrInvalidSheetName)
	}
	for _, s := range c.sheets {
		if strings.EqualFold(s.name, name) {
			return 0, NewSheetError(name, "register", ErrSheetExists)
		}
	}
	id := c.nextID()
	c.sheets = append(c.sheets, &memorySheet{id: id, name: name, store: grid.NewStore(nil, c.opts)})
	return id, nil
}

// RemoveSheet implements Container.
func (c *MemoryContainer) RemoveSheet(name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.sheets, func(s *memorySheet) bool { return s.name == name })
	if i < 0 {
		return NewSheetError(name, "remove", ErrSheetNotFound)
	}
	c.sheets = slices.Delete(c.sheets, i, i+1)
	return nil
}

// Snapshot returns a copy of the container's content.
func (c *MemoryContainer) Snapshot() *models.WorkbookData {
	c.mu.RLock()
	defer c.mu.RUnlock()

	wb := &models.WorkbookData{
		Sheets:        make([]models.SheetData, len(c.sheets)),
		SharedStrings: slices.Clone(c.sst),
	}
	for i, s := range c.sheets {
		wb.Sheets[i] = models.SheetData{ID: s.id, Name: s.name, Rows: s.store.Rows()}
	}
	return wb
}
