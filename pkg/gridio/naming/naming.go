// Package naming produces valid sheet names.
package naming

import (
	"strings"
)

// MaxLength is the longest sheet name Sanitize returns, in characters.
const MaxLength = 30

// reserved cannot be used as a sheet name in any letter case.
const reserved = "history"

var banned = strings.NewReplacer(
	"/", "",
	`\`, "",
	"?", "",
	"*", "",
	":", "",
	"[", "",
	"]", "",
)

// Sanitize turns requested into a usable sheet name. Blank names and the
// reserved name "History" become "Sheet"+fallbackID. One leading and one
// trailing single quote are stripped, the characters / \ ? * : [ ] are
// removed, and the result is cut to MaxLength characters.
//
// Sanitize does not check the name against the sheets already present.
func Sanitize(requested, fallbackID string) string {
	name := requested
	if strings.TrimSpace(name) == "" || strings.EqualFold(name, reserved) {
		name = "Sheet" + fallbackID
	}
	name = strings.TrimPrefix(name, "'")
	name = strings.TrimSuffix(name, "'")
	name = banned.Replace(name)

	if r := []rune(name); len(r) > MaxLength {
		name = string(r[:MaxLength])
	}
	return name
}

// NextSheetID returns one more than the largest id in existing, or 1.
func NextSheetID(existing []int) int {
	next := 1
	for _, id := range existing {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
