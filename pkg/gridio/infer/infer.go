// Package infer classifies raw cell text into the narrowest semantic type.
package infer

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Kind is a semantic cell type. Kinds are declared in inference priority
// order: a value is classified as the first kind it parses as.
type Kind int

const (
	// Boolean is "true" or "false" in any letter case.
	Boolean Kind = iota
	// Integer is a base-10 signed 64-bit integer.
	Integer
	// Decimal is an arbitrary-precision decimal number.
	Decimal
	// Timestamp is a date or date-time in one of the known layouts.
	Timestamp
	// Text is anything else.
	Text
)

var kindNames = [...]string{
	Boolean:   "bool",
	Integer:   "integer",
	Decimal:   "decimal",
	Timestamp: "timestamp",
	Text:      "text",
}

// String returns the lower-case kind name.
func (k Kind) String() string {
	if k < Boolean || k > Text {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind as its name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, name := range kindNames {
		if string(b) == name {
			*k = Kind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown kind %q", string(b))
}

// layouts are tried in order when parsing timestamps.
var layouts = [...]string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"01/02/2006 15:04:05",
	"01/02/2006 15:04",
	"01/02/2006",
	"1/2/2006",
	"2006/01/02",
	"2006/1/2",
	"02-Jan-2006",
	"2 Jan 2006",
	"January 2, 2006",
	time.RFC1123Z,
	time.RFC1123,
	time.RFC850,
	time.RFC822Z,
	time.RFC822,
	time.ANSIC,
	time.UnixDate,
}

// Infer returns the first kind, in priority order, that text parses as.
func Infer(text string) Kind {
	for k := Boolean; k < Text; k++ {
		if Is(text, k) {
			return k
		}
	}
	return Text
}

// LowestCommon returns the narrowest kind that every value parses as.
// Empty input is Text.
func LowestCommon(values []string) Kind {
	if len(values) == 0 {
		return Text
	}
	for k := Boolean; k < Text; k++ {
		if allAre(values, k) {
			return k
		}
	}
	return Text
}

func allAre(values []string, k Kind) bool {
	for _, v := range values {
		if !Is(v, k) {
			return false
		}
	}
	return true
}

// Is reports whether text parses as kind k. Every text is Text.
func Is(text string, k Kind) bool {
	_, ok := Parse(text, k)
	return ok
}

// Parse converts text to the Go value for kind k: bool, int64,
// decimal.Decimal, time.Time or string.
func Parse(text string, k Kind) (any, bool) {
	s := strings.TrimSpace(text)
	switch k {
	case Boolean:
		switch {
		case strings.EqualFold(s, "true"):
			return true, true
		case strings.EqualFold(s, "false"):
			return false, true
		}
	case Integer:
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i, true
		}
	case Decimal:
		if d, err := decimal.NewFromString(s); err == nil {
			return d, true
		}
	case Timestamp:
		if s == "" {
			return nil, false
		}
		for _, layout := range layouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, true
			}
		}
	case Text:
		return text, true
	}
	return nil, false
}

// Value returns text converted to its inferred kind.
func Value(text string) any {
	v, _ := Parse(text, Infer(text))
	return v
}
