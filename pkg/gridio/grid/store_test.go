package grid

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

func refs(cells []models.RawCell) []string {
	out := make([]string, len(cells))
	for i, c := range cells {
		out[i] = c.Ref
	}
	return out
}

func TestStoreUpsertOverwritesInPlace(t *testing.T) {
	s := NewStore([]models.Row{
		{Index: 1, Cells: []models.RawCell{{Ref: "A1", Value: "0", Shared: true}, {Ref: "B1", Value: "b"}}},
	}, StoreOptions{})

	s.Upsert("a1", "new")

	rows := s.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, []string{"A1", "B1"}, refs(rows[0].Cells))
	assert.Equal(t, models.RawCell{Ref: "A1", Value: "new"}, rows[0].Cells[0])
}

func TestStoreUpsertInsertsBeforeSuccessor(t *testing.T) {
	s := NewStore([]models.Row{
		{Index: 1, Cells: []models.RawCell{{Ref: "A1"}, {Ref: "C1"}}},
	}, StoreOptions{})

	s.Upsert("B1", "b")

	assert.Equal(t, []string{"A1", "B1", "C1"}, refs(s.Rows()[0].Cells))
}

func TestStoreUpsertCreatesRowsInOrder(t *testing.T) {
	s := NewStore([]models.Row{
		{Index: 10, Cells: []models.RawCell{{Ref: "A10"}}},
		{Index: 1, Cells: []models.RawCell{{Ref: "A1"}}},
	}, StoreOptions{})

	s.Upsert("B5", "x")
	s.Upsert("C20", "y")

	var got []int
	for _, r := range s.Rows() {
		got = append(got, r.Index)
	}
	assert.Equal(t, []int{1, 5, 10, 20}, got)
	assert.Equal(t, 4, s.Len())
}

func TestStoreUpsertEqualLengthTieBreak(t *testing.T) {
	rows := []models.Row{
		{Index: 1, Cells: []models.RawCell{{Ref: "A1"}, {Ref: "B1"}, {Ref: "AA1"}}},
	}

	legacy := NewStore(rows, StoreOptions{})
	legacy.Upsert("C1", "c")
	// only same-length references are compared, so C1 lands after AA1
	assert.Equal(t, []string{"A1", "B1", "AA1", "C1"}, refs(legacy.Rows()[0].Cells))

	ordered := NewStore(rows, StoreOptions{ColumnOrdered: true})
	ordered.Upsert("C1", "c")
	assert.Equal(t, []string{"A1", "B1", "C1", "AA1"}, refs(ordered.Rows()[0].Cells))
}

func TestStoreRawCellsResolve(t *testing.T) {
	s := NewStore(nil, StoreOptions{})
	s.Upsert("B2", "two")
	s.Upsert("A1", "one")

	m, err := FromRaw(s.RawCells(), nil).Dense()
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"one", ""}, {"", "two"}}, m.Rows())
}

func TestRowsFromMatrix(t *testing.T) {
	// a 3 wide, 1 high matrix
	m := MatrixFromRows([][]string{{"one", "two", "three"}})

	rows, err := RowsFromMatrix(m)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Index)
	assert.Equal(t, []string{"A1", "B1", "C1"}, refs(rows[0].Cells))
	assert.Equal(t, "two", rows[0].Cells[1].Value)
}

func TestRowsFromMatrixBounds(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		axis          string
	}{
		{"too wide", MaxDimension + 1, 1, "width"},
		{"too high", 1, MaxDimension + 1, "height"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := RowsFromMatrix(NewMatrix(tt.width, tt.height))
			require.Error(t, err)
			assert.Nil(t, rows)
			assert.True(t, errors.Is(err, ErrBoundsExceeded))

			var be *BoundsError
			require.True(t, errors.As(err, &be))
			assert.Equal(t, tt.axis, be.Axis)
			assert.Equal(t, MaxDimension, be.Limit)
		})
	}

	assert.NoError(t, CheckBounds(MaxDimension, MaxDimension))
}

func TestStoreReplace(t *testing.T) {
	s := NewStore([]models.Row{{Index: 3, Cells: []models.RawCell{{Ref: "Z3"}}}}, StoreOptions{})

	rows, err := RowsFromMatrix(MatrixFromRows([][]string{{"a"}, {"b"}}))
	require.NoError(t, err)
	s.Replace(rows)

	assert.Equal(t, []string{"A1", "A2"}, refs(s.RawCells()))

	// the store keeps its own copy
	rows[0].Cells[0].Value = "changed"
	assert.Equal(t, "a", s.RawCells()[0].Value)
}
