package convert

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
)

// Field describes one column of a record type.
type Field[T any] struct {
	// Name is the header label.
	Name string
	// Get returns the field value of a record. A nil result renders as "".
	Get func(T) any
	// Set parses cell text into the field. Fields without Set are
	// skipped when reading records.
	Set func(*T, string) error
}

// Schema is the ordered list of fields of a record type.
type Schema[T any] []Field[T]

// Names returns the field names in order.
func (s Schema[T]) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// FromRecords lays items out one per row, field i in column i. When
// header is set the first row holds the field names.
func FromRecords[T any](items []T, schema Schema[T], header bool) grid.Matrix {
	if len(items) == 0 {
		return grid.NewMatrix(0, 0)
	}

	offset := 0
	if header {
		offset = 1
	}
	m := grid.NewMatrix(len(schema), len(items)+offset)
	if header {
		for x, f := range schema {
			m.Set(x, 0, f.Name)
		}
	}
	for y, item := range items {
		for x, f := range schema {
			if f.Get == nil {
				continue
			}
			m.Set(x, y+offset, FormatValue(f.Get(item)))
		}
	}
	return m
}

// ToRecords reads one record per matrix row, passing column i to field i.
// When header is set the first row is skipped.
func ToRecords[T any](m grid.Matrix, schema Schema[T], header bool) ([]T, error) {
	start := 0
	if header {
		start = 1
	}
	if m.Height() <= start {
		return nil, nil
	}

	items := make([]T, 0, m.Height()-start)
	for y := start; y < m.Height(); y++ {
		var item T
		for x, f := range schema {
			if f.Set == nil {
				continue
			}
			if err := f.Set(&item, m.At(x, y)); err != nil {
				return nil, fmt.Errorf("row %d, field %q: %w", y+1, f.Name, err)
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// FormatValue renders a field value as cell text. Nil values and nil
// pointers of the common scalar types render as "".
func FormatValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case *string:
		if t == nil {
			return ""
		}
		return *t
	case int:
		return strconv.Itoa(t)
	case *int:
		if t == nil {
			return ""
		}
		return strconv.Itoa(*t)
	case int64:
		return strconv.FormatInt(t, 10)
	case *int64:
		if t == nil {
			return ""
		}
		return strconv.FormatInt(*t, 10)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case *float64:
		if t == nil {
			return ""
		}
		return strconv.FormatFloat(*t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case *bool:
		if t == nil {
			return ""
		}
		return strconv.FormatBool(*t)
	case time.Time:
		return t.Format(time.RFC3339)
	case *time.Time:
		if t == nil {
			return ""
		}
		return t.Format(time.RFC3339)
	case fmt.Stringer:
		return t.String()
	}
	return fmt.Sprint(v)
}
