package convert

import (
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
)

type car struct {
	Make  string
	Model *string
	Price int
}

var carSchema = Schema[car]{
	{
		Name: "Make",
		Get:  func(c car) any { return c.Make },
		Set:  func(c *car, s string) error { c.Make = s; return nil },
	},
	{
		Name: "Model",
		Get:  func(c car) any { return c.Model },
		Set: func(c *car, s string) error {
			if s != "" {
				c.Model = &s
			}
			return nil
		},
	},
	{
		Name: "Price",
		Get:  func(c car) any { return c.Price },
		Set: func(c *car, s string) (err error) {
			c.Price, err = strconv.Atoi(s)
			return err
		},
	},
}

func strPtr(s string) *string { return &s }

func TestFromRecords(t *testing.T) {
	items := []car{
		{"Hyundai", strPtr("Creta"), 104400},
		{"Toyota", strPtr("Fortuner"), 324000},
		{"Mahindra", nil, 781000},
		{"Tata", strPtr("Punch"), 593000},
	}

	m := FromRecords(items, carSchema, true)

	require.Equal(t, 3, m.Width())
	require.Equal(t, 5, m.Height())
	assert.Equal(t, []string{"Make", "Model", "Price"}, m.Row(0))
	// B3 in sheet terms
	assert.Equal(t, "Fortuner", m.At(1, 2))
	assert.Equal(t, "", m.At(1, 3))
	assert.Equal(t, "781000", m.At(2, 3))

	noHeader := FromRecords(items, carSchema, false)
	assert.Equal(t, 4, noHeader.Height())
	assert.Equal(t, "Hyundai", noHeader.At(0, 0))

	assert.True(t, FromRecords[car](nil, carSchema, true).IsEmpty())
}

func TestToRecords(t *testing.T) {
	m := grid.MatrixFromRows([][]string{
		{"Make", "Model", "Price"},
		{"Tata", "Punch", "593000"},
		{"Mahindra", "", "781000"},
	})

	items, err := ToRecords(m, carSchema, true)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Tata", items[0].Make)
	assert.Equal(t, "Punch", *items[0].Model)
	assert.Nil(t, items[1].Model)
	assert.Equal(t, 781000, items[1].Price)
}

func TestToRecordsError(t *testing.T) {
	m := grid.MatrixFromRows([][]string{{"Tata", "Punch", "cheap"}})

	_, err := ToRecords(m, carSchema, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `row 1, field "Price"`)
}

func TestFormatValue(t *testing.T) {
	var nilInt *int
	ts := time.Date(2022, 8, 19, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		in   any
		want string
	}{
		{nil, ""},
		{nilInt, ""},
		{"s", "s"},
		{42, "42"},
		{int64(-7), "-7"},
		{2.5, "2.5"},
		{true, "true"},
		{ts, "2022-08-19T00:00:00Z"},
		{decimal.RequireFromString("1.25"), "1.25"},
		{uint8(3), "3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatValue(tt.in))
	}
}

func TestSchemaNames(t *testing.T) {
	assert.Equal(t, []string{"Make", "Model", "Price"}, carSchema.Names())
}
