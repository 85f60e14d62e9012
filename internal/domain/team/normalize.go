package team

import (
	"regexp"
	"strings"
)

var countryPrefixPattern = regexp.MustCompile(`^(eng|es|it|de|fr|nl|pt|be|hr|ua|at|cz|sk|ch|rs|sct)\s+`)

// canonicalNames maps scraped club spellings to the ASCII names stored in both tables.
var canonicalNames = map[string]string{
	"AtlÃ©tico Madrid":     "Atletico Madrid",
	"Atlético Madrid":      "Atletico Madrid",
	"Atletico-Madrid":      "Atletico Madrid",
	"Atlético-Madrid":      "Atletico Madrid",
	"Aston-Villa":          "Aston Villa",
	"Real-Madrid":          "Real Madrid",
	"Bayern-Munich":        "Bayern Munich",
	"Manchester-City":      "Manchester City",
	"Club-Brugge":          "Club Brugge",
	"Dinamo-Zagreb":        "Dinamo Zagreb",
	"Red-Star":             "Red Star",
	"Sturm-Graz":           "Sturm Graz",
	"Sparta-Prague":        "Sparta Prague",
	"PSV-Eindhoven":        "PSV Eindhoven",
	"Sporting-CP":          "Sporting CP",
	"RB-Leipzig":           "RB Leipzig",
	"Young-Boys":           "Young Boys",
	"Paris-Saint-Germain":  "Paris Saint-Germain",
	"Bayer-Leverkusen":     "Bayer Leverkusen",
	"Red-Bull-Salzburg":    "RB Salzburg",
	"Shakhtar-Donetsk":     "Shakhtar Donetsk",
	"Slovan-Bratislava":    "Slovan Bratislava",
	"Internazionale":       "Inter Milan",
	"Inter":                "Inter Milan",
	"Leverkusen":           "Bayer Leverkusen",
	"Paris S-G":            "Paris Saint-Germain",
	"Shakhtar":             "Shakhtar Donetsk",
	"eng Liverpool":        "Liverpool",
	"eng Arsenal":          "Arsenal",
	"eng Aston Villa":      "Aston Villa",
	"eng Manchester City":  "Manchester City",
	"es Barcelona":         "Barcelona",
	"es Atlético Madrid":   "Atletico Madrid",
	"es Atletico Madrid":   "Atletico Madrid",
	"es Real Madrid":       "Real Madrid",
	"it Inter":             "Inter Milan",
	"de Leverkusen":        "Bayer Leverkusen",
	"fr Paris S-G":         "Paris Saint-Germain",
	"ua Shakhtar":          "Shakhtar Donetsk",
}

// NormalizeName returns the canonical club name.
// Exact aliases win; otherwise a leading country code is stripped and the remainder is mapped again.
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	if name == "" {
		return name
	}
	if canonical, ok := canonicalNames[name]; ok {
		return canonical
	}

	if !countryPrefixPattern.MatchString(name) {
		return name
	}
	stripped := countryPrefixPattern.ReplaceAllString(name, "")
	if canonical, ok := canonicalNames[stripped]; ok {
		return canonical
	}

	return stripped
}
