package address

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidReference indicates a reference that does not name a cell.
var ErrInvalidReference = errors.New("invalid cell reference")

// cellRefRe matches a strict cell reference like A1, $B$2, aa100.
var cellRefRe = regexp.MustCompile(`^\$?([A-Za-z]+)\$?([0-9]+)$`)

// Range is an inclusive rectangle of cells.
type Range struct {
	Start Address `json:"start"`
	End   Address `json:"end"`
}

// Width returns the number of columns in the range.
func (r Range) Width() int { return r.End.Col - r.Start.Col + 1 }

// Height returns the number of rows in the range.
func (r Range) Height() int { return r.End.Row - r.Start.Row + 1 }

// Contains reports whether a lies inside the range.
func (r Range) Contains(a Address) bool {
	return a.Col >= r.Start.Col && a.Col <= r.End.Col &&
		a.Row >= r.Start.Row && a.Row <= r.End.Row
}

// String returns "A1:D10", or just "A1" for a single cell.
func (r Range) String() string {
	if r.Start == r.End {
		return r.Start.String()
	}
	return r.Start.String() + ":" + r.End.String()
}

// ParseRange parses a range like "$A$1:$D$10" or a single cell "B2".
// Unlike Decode it is strict, since ranges usually come from user input
// rather than from documents. Reversed endpoints are normalized.
func ParseRange(ref string) (Range, error) {
	fromRef, toRef, hasColon := strings.Cut(strings.TrimSpace(ref), ":")
	if !hasColon {
		toRef = fromRef
	}

	start, err := parseStrict(fromRef)
	if err != nil {
		return Range{}, fmt.Errorf("invalid start of range %q: %w", ref, err)
	}
	end, err := parseStrict(toRef)
	if err != nil {
		return Range{}, fmt.Errorf("invalid end of range %q: %w", ref, err)
	}

	if start.Row > end.Row {
		start.Row, end.Row = end.Row, start.Row
	}
	if start.Col > end.Col {
		start.Col, end.Col = end.Col, start.Col
	}
	return Range{Start: start, End: end}, nil
}

// ParseSheetRange parses a qualified range such as "'My Sheet'!A1:B2".
// The sheet part is optional; when absent the returned sheet is "".
func ParseSheetRange(ref string) (string, Range, error) {
	sheet := ""
	rangeStr := ref
	if idx := strings.LastIndex(ref, "!"); idx >= 0 {
		sheet = unquoteSheet(ref[:idx])
		rangeStr = ref[idx+1:]
	}
	r, err := ParseRange(rangeStr)
	if err != nil {
		return "", Range{}, err
	}
	return sheet, r, nil
}

func unquoteSheet(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && strings.HasPrefix(s, "'") && strings.HasSuffix(s, "'") {
		s = strings.ReplaceAll(s[1:len(s)-1], "''", "'")
	}
	return s
}

func parseStrict(ref string) (Address, error) {
	m := cellRefRe.FindStringSubmatch(strings.TrimSpace(ref))
	if m == nil || strings.Trim(m[2], "0") == "" {
		return Address{}, fmt.Errorf("%w %q", ErrInvalidReference, ref)
	}
	return Decode(m[1] + m[2]), nil
}
