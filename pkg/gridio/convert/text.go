// Package convert reshapes dense matrices into delimited text, record
// slices and typed tables, and back.
package convert

import (
	"runtime"
	"strings"

	"github.com/ukaji3/gridio-go/pkg/gridio/grid"
)

// DefaultDelimiter separates fields when TextOptions.Delimiter is empty.
const DefaultDelimiter = ","

// TextOptions configures delimited text conversion.
type TextOptions struct {
	// Delimiter separates fields. Defaults to ",".
	Delimiter string
	// LineTerminator separates rows. Defaults to the platform newline.
	LineTerminator string
}

// Newline returns the platform line terminator.
func Newline() string {
	if runtime.GOOS == "windows" {
		return "\r\n"
	}
	return "\n"
}

func (o TextOptions) withDefaults() TextOptions {
	if o.Delimiter == "" {
		o.Delimiter = DefaultDelimiter
	}
	if o.LineTerminator == "" {
		o.LineTerminator = Newline()
	}
	return o
}

// ToText renders m row by row, quoting every value. Quotes, delimiters
// and line breaks inside values are written as is.
func ToText(m grid.Matrix, opts TextOptions) string {
	opts = opts.withDefaults()

	var sb strings.Builder
	for y := 0; y < m.Height(); y++ {
		if y > 0 {
			sb.WriteString(opts.LineTerminator)
		}
		for x := 0; x < m.Width(); x++ {
			if x > 0 {
				sb.WriteString(opts.Delimiter)
			}
			sb.WriteByte('"')
			sb.WriteString(m.At(x, y))
			sb.WriteByte('"')
		}
	}
	return sb.String()
}

// FromText splits s into rows on the line terminator and into fields on
// the delimiter. One pair of enclosing double quotes is removed from each
// field. The matrix is as wide as the longest line; shorter lines are
// padded with "". Blank input yields an empty matrix.
func FromText(s string, opts TextOptions) grid.Matrix {
	if strings.TrimSpace(s) == "" {
		return grid.NewMatrix(0, 0)
	}
	opts = opts.withDefaults()

	lines := strings.Split(s, opts.LineTerminator)
	rows := make([][]string, len(lines))
	for y, line := range lines {
		fields := strings.Split(line, opts.Delimiter)
		for x, f := range fields {
			fields[x] = unquote(f)
		}
		rows[y] = fields
	}
	return grid.MatrixFromRows(rows)
}

func unquote(f string) string {
	if len(f) >= 2 && f[0] == '"' && f[len(f)-1] == '"' {
		return f[1 : len(f)-1]
	}
	return f
}
