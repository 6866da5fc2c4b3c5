package locode

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

const (
	// substringBoost floors the score when one string literally contains the
	// other. Partial names are everywhere in AIS traffic ("PORT SAID" inside
	// "PORT SAID EAST ANCHORAGE") and a plain ratio punishes the length gap.
	substringBoost = 0.85

	// substringBoostMinLen keeps trivial containments out of the boost: a
	// bare 3-letter location code like "MAA" sits inside countless port
	// names and must fall through to the location-code fallback instead of
	// fuzzy-matching the first name that happens to contain it.
	substringBoostMinLen = 4
)

// similarity computes a normalized sequence-similarity ratio in [0, 1]
// between the two strings, upper-cased: 1.0 means identical, 0.0 disjoint.
// The ratio is the difflib-style one the fuzzywuzzy port provides. The
// substring boost only ever raises a score, never lowers one the ratio
// already placed above the floor.
func similarity(query, candidate string) float64 {
	q := strings.ToUpper(query)
	c := strings.ToUpper(candidate)
	if q == "" || c == "" {
		return 0
	}

	score := float64(fuzzy.Ratio(q, c)) / 100

	shorter, longer := q, c
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if score < substringBoost &&
		len(shorter) >= substringBoostMinLen &&
		strings.Contains(longer, shorter) {
		score = substringBoost
	}
	return score
}
