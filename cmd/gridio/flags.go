package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// escapedString is a string flag that accepts backslash escapes such as
// \t or \r\n, and a few names for common separators.
type escapedString string

var _ pflag.Value = (*escapedString)(nil)

var separatorNames = map[string]string{
	"tab":       "\t",
	"comma":     ",",
	"semicolon": ";",
	"pipe":      "|",
	"space":     " ",
	"lf":        "\n",
	"crlf":      "\r\n",
}

func (e *escapedString) String() string {
	q := strconv.Quote(string(*e))
	return q[1 : len(q)-1]
}

func (e *escapedString) Set(s string) error {
	if v, ok := separatorNames[strings.ToLower(s)]; ok {
		*e = escapedString(v)
		return nil
	}
	v, err := strconv.Unquote(`"` + strings.ReplaceAll(s, `"`, `\"`) + `"`)
	if err != nil {
		return fmt.Errorf("invalid escape sequence in %q", s)
	}
	if v == "" {
		return fmt.Errorf("separator must not be empty")
	}
	*e = escapedString(v)
	return nil
}

func (e *escapedString) Type() string {
	return "string"
}
