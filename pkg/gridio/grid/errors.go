package grid

import (
	"errors"
	"fmt"
)

// MaxDimension is the largest number of rows or columns a rectangle write
// accepts.
const MaxDimension = 65534

// MaxCells is the largest number of positions a matrix built from a grid
// may hold.
const MaxCells = 1 << 28

// ErrBoundsExceeded indicates a matrix too large to be written as a sheet
// or to be materialized.
var ErrBoundsExceeded = errors.New("matrix exceeds size limit")

// BoundsError reports which matrix dimension is over its limit. Limit is
// MaxDimension unless a container enforces a smaller one.
type BoundsError struct {
	Axis  string // "width" or "height"
	Size  int
	Limit int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("matrix %s %d exceeds size limit %d", e.Axis, e.Size, e.Limit)
}

func (e *BoundsError) Unwrap() error {
	return ErrBoundsExceeded
}

// CheckBounds returns a *BoundsError if either dimension is over
// MaxDimension.
func CheckBounds(width, height int) error {
	if width > MaxDimension {
		return &BoundsError{Axis: "width", Size: width, Limit: MaxDimension}
	}
	if height > MaxDimension {
		return &BoundsError{Axis: "height", Size: height, Limit: MaxDimension}
	}
	return nil
}

// AreaError reports a matrix whose width times height is over MaxCells.
type AreaError struct {
	Width  int
	Height int
}

func (e *AreaError) Error() string {
	return fmt.Sprintf("matrix %dx%d exceeds %d cells", e.Width, e.Height, MaxCells)
}

func (e *AreaError) Unwrap() error {
	return ErrBoundsExceeded
}

// CheckArea returns an *AreaError if a width x height matrix would hold
// more than MaxCells positions.
func CheckArea(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width > MaxCells/height {
		return &AreaError{Width: width, Height: height}
	}
	return nil
}
