package parser

import (
	"github.com/ukaji3/gridio-go/pkg/gridio/address"
	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
)

// TableDetectionParams holds parameters for table detection.
type TableDetectionParams struct {
	DensityMin       float64
	CoverageMin      float64
	MinNonemptyCells int
}

// DefaultTableParams returns default table detection parameters.
func DefaultTableParams() TableDetectionParams {
	return TableDetectionParams{
		DensityMin:       0.04,
		CoverageMin:      0.2,
		MinNonemptyCells: 3,
	}
}

// DetectTables detects table-like regions in a sheet matrix.
// Returns a list of cell ranges (e.g., "A1:D10") that likely represent tables.
func DetectTables(m grid.Matrix, params TableDetectionParams) []string {
	if m.IsEmpty() {
		return nil
	}

	bounds, ok := findDataBounds(m)
	if !ok {
		return nil
	}

	nonEmptyCells := countNonEmptyCells(m, bounds)
	if nonEmptyCells < params.MinNonemptyCells {
		return nil
	}

	totalCells := bounds.Width() * bounds.Height()
	density := float64(nonEmptyCells) / float64(totalCells)
	if density < params.DensityMin {
		return nil
	}

	// The data block must cover enough of the used sheet area.
	coverage := float64(totalCells) / float64(m.Width()*m.Height())
	if coverage < params.CoverageMin {
		return nil
	}

	return []string{bounds.String()}
}

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(m grid.Matrix) (address.Range, bool) {
	minRow, maxRow := -1, -1
	minCol, maxCol := -1, -1

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			if m.At(x, y) == "" {
				continue
			}
			if minRow < 0 || y < minRow {
				minRow = y
			}
			if y > maxRow {
				maxRow = y
			}
			if minCol < 0 || x < minCol {
				minCol = x
			}
			if x > maxCol {
				maxCol = x
			}
		}
	}

	if minRow < 0 {
		return address.Range{}, false
	}
	return address.Range{
		Start: address.Address{Col: minCol, Row: minRow},
		End:   address.Address{Col: maxCol, Row: maxRow},
	}, true
}

// countNonEmptyCells counts non-empty cells within bounds.
func countNonEmptyCells(m grid.Matrix, bounds address.Range) int {
	count := 0
	for y := bounds.Start.Row; y <= bounds.End.Row; y++ {
		for x := bounds.Start.Col; x <= bounds.End.Col; x++ {
			if m.At(x, y) != "" {
				count++
			}
		}
	}
	return count
}
