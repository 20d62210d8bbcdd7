package cleanse

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var foldMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// DisplayName strips the team annotation from a raw player name:
// everything before the opening parenthesis, trimmed. Names without a
// parenthesis pass through unchanged.
func DisplayName(raw string) string {
	if open := strings.Index(raw, "("); open >= 0 {
		return strings.TrimSpace(raw[:open])
	}
	return raw
}

// Fold lowercases a name and strips combining marks, so accented spellings
// still match the plain-ASCII lookup tables.
func Fold(s string) string {
	folded, _, err := transform.String(foldMarks, s)
	if err != nil {
		folded = s
	}
	return strings.ToLower(folded)
}
