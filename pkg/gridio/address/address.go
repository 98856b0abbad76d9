// Package address converts between spreadsheet cell references such as "B3"
// and zero-based column and row indexes.
package address

import (
	"math"
	"strconv"
)

// MaxIndex is the largest column or row index Decode returns, so that
// index+1 always fits in an int.
const MaxIndex = math.MaxInt - 1

// limit is the largest 1-based value a decoded coordinate may have.
const limit = uint64(MaxIndex) + 1

// Address is a zero-based cell coordinate.
type Address struct {
	// Col is the column index (0 = "A").
	Col int `json:"col"`
	// Row is the row index (0 = row "1").
	Row int `json:"row"`
}

// String returns the reference form of the address, e.g. "B3".
func (a Address) String() string {
	return Encode(a.Col, a.Row)
}

// Less orders addresses row-major.
func (a Address) Less(b Address) bool {
	if a.Row != b.Row {
		return a.Row < b.Row
	}
	return a.Col < b.Col
}

// Decode parses a cell reference leniently. Letters form the column in
// bijective base 26 and digits form the 1-based row; every other character
// is ignored. A reference without letters decodes to column 0 and one
// without a usable row number decodes to row 0, so "" is (0, 0). Columns
// past MaxIndex saturate at MaxIndex.
func Decode(ref string) Address {
	var col, row uint64
	colSaturated, rowInvalid := false, false

	for i := 0; i < len(ref); i++ {
		c := ref[i]
		if 'a' <= c && c <= 'z' {
			c -= 'a' - 'A'
		}
		switch {
		case 'A' <= c && c <= 'Z':
			if colSaturated {
				continue
			}
			d := uint64(c-'A') + 1
			if col > (limit-d)/26 {
				colSaturated = true
				continue
			}
			col = col*26 + d
		case '0' <= c && c <= '9':
			if rowInvalid {
				continue
			}
			d := uint64(c - '0')
			if row > (limit-d)/10 {
				rowInvalid = true
				continue
			}
			row = row*10 + d
		}
	}

	var a Address
	switch {
	case colSaturated:
		a.Col = MaxIndex
	case col > 0:
		a.Col = int(col - 1)
	}
	if !rowInvalid && row > 0 {
		a.Row = int(row - 1)
	}
	return a
}

// Encode renders a zero-based coordinate as a cell reference. Negative
// indexes are treated as 0.
func Encode(col, row int) string {
	if row < 0 {
		row = 0
	}
	return ColumnName(col) + strconv.FormatUint(uint64(row)+1, 10)
}

// ColumnName returns the letters for a zero-based column index
// (0 -> "A", 25 -> "Z", 26 -> "AA").
func ColumnName(col int) string {
	if col < 0 {
		col = 0
	}
	// 14 letters cover math.MaxInt on 64-bit platforms.
	var buf [16]byte
	i := len(buf)
	for n := col; n >= 0; n = n/26 - 1 {
		i--
		buf[i] = byte('A' + n%26)
	}
	return string(buf[i:])
}

// ColumnIndex returns the zero-based index for column letters, ignoring
// any non-letter characters. Empty input is column 0.
func ColumnIndex(letters string) int {
	return Decode(letters).Col
}
