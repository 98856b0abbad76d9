package naming

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name      string
		requested string
		fallback  string
		want      string
	}{
		{"empty", "", "7", "Sheet7"},
		{"whitespace", "   ", "3", "Sheet3"},
		{"reserved", "History", "2", "Sheet2"},
		{"reserved lower", "history", "4", "Sheet4"},
		{"reserved inside", "History 2020", "4", "History 2020"},
		{"quoted", "'Quoted'", "1", "Quoted"},
		{"one quote only", "'Open", "1", "Open"},
		{"inner quotes kept", "It's", "1", "It's"},
		{"banned", `/A\B?C`, "1", "ABC"},
		{"all banned", `Before *:[] After Banned Chars`, "1", "Before  After Banned Chars"},
		{"plain", "Data", "1", "Data"},
		{"unicode", "Données", "1", "Données"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.requested, tt.fallback))
		})
	}
}

func TestSanitizeTruncates(t *testing.T) {
	long := strings.Repeat("abcd", 10)
	assert.Equal(t, long[:30], Sanitize(long, "1"))

	id := uuid.NewString()
	got := Sanitize(id, "1")
	assert.Len(t, got, MaxLength)
	assert.Equal(t, id[:MaxLength], got)
}

func TestSanitizeTruncatesAfterRemoval(t *testing.T) {
	// 28 letters plus banned characters: nothing is cut once they are gone.
	in := strings.Repeat("x", 14) + "[][][]" + strings.Repeat("y", 14)
	assert.Equal(t, strings.Repeat("x", 14)+strings.Repeat("y", 14), Sanitize(in, "1"))
}

func TestSanitizeCountsRunes(t *testing.T) {
	in := strings.Repeat("ü", 40)
	got := Sanitize(in, "1")
	assert.Equal(t, MaxLength, utf8.RuneCountInString(got))
	assert.True(t, utf8.ValidString(got))
}

func TestNextSheetID(t *testing.T) {
	assert.Equal(t, 1, NextSheetID(nil))
	assert.Equal(t, 2, NextSheetID([]int{1}))
	assert.Equal(t, 8, NextSheetID([]int{3, 7, 2}))
	assert.Equal(t, 1, NextSheetID([]int{0}))
}
