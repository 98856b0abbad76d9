package convert

import (
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
	"github.com/ukaji3/gridio-go/pkg/gridio/infer"
)

// ColumnSummary describes the values of one table column. The numeric
// fields are only set for integer and decimal columns with values.
type ColumnSummary struct {
	Name   string     `json:"name"`
	Kind   infer.Kind `json:"kind"`
	Count  int        `json:"count"`
	Empty  int        `json:"empty"`
	Min    *float64   `json:"min,omitempty"`
	Max    *float64   `json:"max,omitempty"`
	Mean   *float64   `json:"mean,omitempty"`
	Median *float64   `json:"median,omitempty"`
}

// Describe summarizes each column of t.
func Describe(t Table) []ColumnSummary {
	summaries := make([]ColumnSummary, len(t.Columns))
	for x, col := range t.Columns {
		s := ColumnSummary{Name: col.Name, Kind: col.Kind}
		var nums stats.Float64Data
		for _, row := range t.Rows {
			if x >= len(row) || row[x] == nil {
				s.Empty++
				continue
			}
			s.Count++
			if f, ok := toFloat(row[x]); ok {
				nums = append(nums, f)
			}
		}
		if (col.Kind == infer.Integer || col.Kind == infer.Decimal) && len(nums) > 0 {
			s.Min = stat(nums.Min)
			s.Max = stat(nums.Max)
			s.Mean = stat(nums.Mean)
			s.Median = stat(nums.Median)
		}
		summaries[x] = s
	}
	return summaries
}

func stat(fn func() (float64, error)) *float64 {
	v, err := fn()
	if err != nil {
		return nil
	}
	return &v
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int64:
		return float64(n), true
	case decimal.Decimal:
		return n.InexactFloat64(), true
	}
	return 0, false
}
