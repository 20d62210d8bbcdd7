// Package cleanse normalizes the inconsistent cell encodings found in the
// source tables: placeholder dashes, not-out asterisks, thousands
// separators, and names carrying team annotations.
package cleanse

import (
	"regexp"
	"strconv"
	"strings"
)

var nonNumeric = regexp.MustCompile(`[^0-9.]`)

// Number converts a raw cell value to a number. Absent, empty and
// placeholder cells become 0, as does anything that still fails to parse
// after stripping; cleanup is best-effort and never returns an error.
// Negative numbers and scientific notation are not a thing in these tables.
func Number(raw string) float64 {
	v := strings.TrimSpace(raw)
	if v == "" || v == "-" {
		return 0
	}

	// Handles values like "50.25*" and "1,234"
	v = strings.ReplaceAll(v, "*", "")
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimSpace(v)
	v = nonNumeric.ReplaceAllString(v, "")

	if v == "" {
		return 0
	}

	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return n
}

// Integer is Number truncated to an int, for counting stats
func Integer(raw string) int {
	return int(Number(raw))
}
