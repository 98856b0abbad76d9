package parser

import (
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
	"github.com/ukaji3/gridio-go/pkg/gridio/infer"
	"github.com/ukaji3/gridio-go/pkg/gridio/models"
)

// ExtractRows returns the non-empty rows of g in ascending order. Cell
// values are converted to their inferred kind.
func ExtractRows(g *grid.Grid) []models.CellRow {
	var result []models.CellRow
	for _, c := range g.Cells() {
		if c.Value == "" {
			continue
		}
		rowNum := c.Address.Row + 1
		if n := len(result); n == 0 || result[n-1].R != rowNum {
			result = append(result, models.CellRow{R: rowNum, C: make(map[string]interface{})})
		}
		colStr := strconv.Itoa(c.Address.Col + 1)
		result[len(result)-1].C[colStr] = parseValue(c.Value)
	}
	return result
}

// parseValue returns the typed value of s. Decimals become float64 so
// that rows serialize as JSON numbers.
func parseValue(s string) interface{} {
	switch v := infer.Value(s).(type) {
	case decimal.Decimal:
		return v.InexactFloat64()
	default:
		return v
	}
}
