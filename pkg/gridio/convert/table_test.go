package convert

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/infer"
)

func sampleGrid() *grid.Grid {
	return grid.FromRecords([]grid.Record{
		{"A1", "id"}, {"B1", "price"}, {"C1", "booked"}, {"D1", "date"},
		{"A2", "1"}, {"B2", "10"}, {"C2", "true"}, {"D2", "2022-08-19"},
		{"A3", "2"}, {"B3", "12.5"}, {"C3", "false"},
		{"A4", "3"}, {"B4", "7"}, {"D4", "2022-08-21"},
	})
}

func TestTableFromGridInferTypes(t *testing.T) {
	tbl, err := TableFromGrid("Sheet1", sampleGrid(), TableOptions{Header: true, InferTypes: true})
	require.NoError(t, err)

	assert.Equal(t, "Sheet1", tbl.Name)
	assert.Equal(t, []Column{
		{Name: "id", Kind: infer.Integer},
		{Name: "price", Kind: infer.Decimal},
		{Name: "booked", Kind: infer.Boolean},
		{Name: "date", Kind: infer.Timestamp},
	}, tbl.Columns)

	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, int64(1), tbl.Rows[0][0])
	assert.True(t, decimal.RequireFromString("12.5").Equal(tbl.Rows[1][1].(decimal.Decimal)))
	assert.Equal(t, true, tbl.Rows[0][2])
	assert.Nil(t, tbl.Rows[2][2])
	assert.Nil(t, tbl.Rows[1][3])
	assert.Equal(t, time.Date(2022, 8, 21, 0, 0, 0, 0, time.UTC), tbl.Rows[2][3])
}

func TestTableFromGridUntyped(t *testing.T) {
	tbl, err := TableFromGrid("Sheet1", sampleGrid(), TableOptions{})
	require.NoError(t, err)

	require.Len(t, tbl.Columns, 4)
	assert.Equal(t, "Column1", tbl.Columns[0].Name)
	assert.Equal(t, infer.Text, tbl.Columns[0].Kind)
	require.Len(t, tbl.Rows, 4)
	assert.Equal(t, "id", tbl.Rows[0][0])
	assert.Equal(t, "1", tbl.Rows[1][0])
}

func TestTableHeaderOnly(t *testing.T) {
	g := grid.FromRecords([]grid.Record{{"A1", "name"}, {"B1", "name"}, {"D1", ""}})

	tbl, err := TableFromGrid("Sheet1", g, TableOptions{Header: true, InferTypes: true})
	require.NoError(t, err)

	assert.Empty(t, tbl.Rows)
	assert.Equal(t, []string{"name", "name_2", "Column3", "Column4"}, columnNames(tbl))
}

func TestTableEmpty(t *testing.T) {
	tbl, err := TableFromGrid("Empty", grid.New(), TableOptions{Header: true, InferTypes: true})
	require.NoError(t, err)
	assert.Empty(t, tbl.Columns)
	assert.Empty(t, tbl.Rows)

	tbl = TableFromMatrix("Empty", grid.NewMatrix(0, 0), TableOptions{})
	assert.Empty(t, tbl.Rows)
}

func TestTableFromGridTooLarge(t *testing.T) {
	g := grid.FromRecords([]grid.Record{{"ZZZZZZZZZZZZ1", "x"}, {"A99999999", "y"}})

	tbl, err := TableFromGrid("Huge", g, TableOptions{Header: true})
	assert.True(t, errors.Is(err, grid.ErrBoundsExceeded))
	assert.Empty(t, tbl.Rows)
}

func TestTableFromMatrixSkipsEmpty(t *testing.T) {
	m := grid.MatrixFromRows([][]string{{"n"}, {"1"}, {""}, {"2"}})

	tbl := TableFromMatrix("m", m, TableOptions{Header: true, InferTypes: true})

	assert.Equal(t, infer.Integer, tbl.Columns[0].Kind)
	require.Len(t, tbl.Rows, 3)
	assert.Nil(t, tbl.Rows[1][0])
}

func TestDescribe(t *testing.T) {
	tbl, err := TableFromGrid("Sheet1", sampleGrid(), TableOptions{Header: true, InferTypes: true})
	require.NoError(t, err)

	sums := Describe(tbl)
	require.Len(t, sums, 4)

	price := sums[1]
	assert.Equal(t, "price", price.Name)
	assert.Equal(t, 3, price.Count)
	require.NotNil(t, price.Min)
	assert.InDelta(t, 7, *price.Min, 1e-9)
	assert.InDelta(t, 12.5, *price.Max, 1e-9)
	assert.InDelta(t, 29.5/3, *price.Mean, 1e-9)
	assert.InDelta(t, 10, *price.Median, 1e-9)

	booked := sums[2]
	assert.Equal(t, 2, booked.Count)
	assert.Equal(t, 1, booked.Empty)
	assert.Nil(t, booked.Mean)
}

func columnNames(t Table) []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}
