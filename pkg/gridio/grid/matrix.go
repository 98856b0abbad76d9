package grid

import (
	"encoding/json"
	"slices"
)

// Matrix is a dense, fixed-size table of cell text indexed by column and
// row. Every position holds a value; unset positions are "".
type Matrix struct {
	width  int
	height int
	cells  []string // row-major
}

// NewMatrix allocates a width x height matrix of empty strings. It panics
// if the matrix would hold more than MaxCells positions; use CheckArea
// first for sizes that come from input.
func NewMatrix(width, height int) Matrix {
	if width <= 0 || height <= 0 {
		return Matrix{width: max(width, 0), height: max(height, 0)}
	}
	if err := CheckArea(width, height); err != nil {
		panic("grid: " + err.Error())
	}
	return Matrix{
		width:  width,
		height: height,
		cells:  make([]string, width*height),
	}
}

// MatrixFromRows builds a matrix from row slices. Ragged rows are padded
// with "" up to the longest row.
func MatrixFromRows(rows [][]string) Matrix {
	width := 0
	for _, r := range rows {
		width = max(width, len(r))
	}
	m := NewMatrix(width, len(rows))
	for y, r := range rows {
		copy(m.cells[y*width:], r)
	}
	return m
}

// Width returns the number of columns.
func (m Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m Matrix) Height() int { return m.height }

// IsEmpty reports whether the matrix has no cells.
func (m Matrix) IsEmpty() bool { return m.width == 0 || m.height == 0 }

// At returns the value at (col, row), or "" outside the matrix.
func (m Matrix) At(col, row int) string {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return ""
	}
	return m.cells[row*m.width+col]
}

// Set stores v at (col, row). It panics if the position is outside the
// matrix.
func (m *Matrix) Set(col, row int, v string) {
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		panic("grid: matrix position out of range")
	}
	m.cells[row*m.width+col] = v
}

// Row returns a copy of row y.
func (m Matrix) Row(y int) []string {
	if y < 0 || y >= m.height {
		return nil
	}
	return slices.Clone(m.cells[y*m.width : (y+1)*m.width])
}

// Column returns a copy of column x.
func (m Matrix) Column(x int) []string {
	if x < 0 || x >= m.width {
		return nil
	}
	col := make([]string, m.height)
	for y := range col {
		col[y] = m.cells[y*m.width+x]
	}
	return col
}

// Rows returns the matrix as row slices.
func (m Matrix) Rows() [][]string {
	rows := make([][]string, m.height)
	for y := range rows {
		rows[y] = m.Row(y)
	}
	return rows
}

// Equal reports whether both matrices have the same shape and values.
func (m Matrix) Equal(o Matrix) bool {
	return m.width == o.width && m.height == o.height && slices.Equal(m.cells, o.cells)
}

// Clone returns an independent copy.
func (m Matrix) Clone() Matrix {
	return Matrix{width: m.width, height: m.height, cells: slices.Clone(m.cells)}
}

// MarshalJSON encodes the matrix as an array of rows.
func (m Matrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Rows())
}
