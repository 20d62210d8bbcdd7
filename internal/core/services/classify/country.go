package classify

import (
	"strings"

	"github.com/alejandroruanova/cricket-stats-service/internal/core/services/cleanse"
)

// CountryUnknown is returned when no heuristic resolves a nationality
const CountryUnknown = "Unknown"

// Regional and composite sides that appear as team annotations but are not
// nationalities. Tokens matching these are skipped in favor of an actual
// country elsewhere in the annotation.
var excludedTeams = map[string]struct{}{
	"Asia":   {},
	"ICC":    {},
	"Afr":    {},
	"Africa": {},
	"World":  {},
	"Rest":   {},
	"XI":     {},
}

// Team code abbreviations as they appear in the source annotations
var countryCodes = map[string]string{
	"SL":    "Sri Lanka",
	"SA":    "South Africa",
	"WI":    "West Indies",
	"NZ":    "New Zealand",
	"AUS":   "Australia",
	"INDIA": "India",
	"ENG":   "England",
	"PAK":   "Pakistan",
	"BDESH": "Bangladesh",
	"ZIM":   "Zimbabwe",
	"AFG":   "Afghanistan",
	"IRE":   "Ireland",
	"SCOT":  "Scotland",
	"Neth":  "Netherlands",
	"UAE":   "UAE",
	"KENYA": "Kenya",
	"Can":   "Canada",
	"Ber":   "Bermuda",
	"USA":   "USA",
	"Nep":   "Nepal",
	"HKG":   "Hong Kong",
	"Oman":  "Oman",
	"PNG":   "Papua New Guinea",
	"NAM":   "Namibia",
}

// Full country names searched for in names without a usable annotation
var commonCountries = []string{
	"India",
	"Australia",
	"England",
	"Pakistan",
	"South Africa",
	"West Indies",
	"Sri Lanka",
	"New Zealand",
	"Bangladesh",
	"Zimbabwe",
}

// Country extracts a nationality from a raw display name like
// "M Muralidaran (Asia/ICC/SL)". The parenthesized annotation is split on
// "/"; regional sides are skipped, code tokens are mapped to full names,
// and any other token passes through verbatim. Without a usable annotation
// the full name is searched for the common country names, folding case and
// accents. Anything else is Unknown.
func Country(rawName string) string {
	if open := strings.Index(rawName, "("); open >= 0 {
		if length := strings.Index(rawName[open+1:], ")"); length >= 0 {
			annotation := rawName[open+1 : open+1+length]

			for _, token := range strings.Split(annotation, "/") {
				token = strings.TrimSpace(token)
				if token == "" {
					continue
				}
				if _, excluded := excludedTeams[token]; excluded {
					continue
				}
				if full, ok := countryCodes[token]; ok {
					return full
				}
				// Likely already a full country name
				return token
			}
		}
	}

	folded := cleanse.Fold(rawName)
	for _, country := range commonCountries {
		if strings.Contains(folded, strings.ToLower(country)) {
			return country
		}
	}

	return CountryUnknown
}
