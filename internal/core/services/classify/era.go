// Package classify derives the fields the source tables never carry
// explicitly: a player's era, nationality and primary role. Every
// classifier is a pure function over static rule tables and returns a
// single deterministic label.
package classify

import (
	"regexp"
	"strconv"
)

// Era labels
const (
	EraModern  = "Modern"
	EraClassic = "Classic"
	EraVintage = "Vintage"
	EraUnknown = "Unknown"
)

var yearPattern = regexp.MustCompile(`\d{4}`)

// Era maps a career span string like "2008-2023" to a coarse era label.
// The last 4-digit run is the career-end year: 2010 and later is Modern,
// 1990 through 2009 is Classic, anything earlier is Vintage. Spans without
// a year resolve to Unknown.
func Era(span string) string {
	years := yearPattern.FindAllString(span, -1)
	if len(years) == 0 {
		return EraUnknown
	}

	endYear, err := strconv.Atoi(years[len(years)-1])
	if err != nil {
		return EraUnknown
	}

	switch {
	case endYear >= 2010:
		return EraModern
	case endYear >= 1990:
		return EraClassic
	default:
		return EraVintage
	}
}
