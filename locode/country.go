package locode

import (
	"regexp"
	"strings"
)

// countryTokenRe splits a cleaned destination into tokens. Hyphens are
// normally gone by this point, but commas survive normalization precisely so
// forms like "DAMPIER, AUSTRALIA" partition here.
var countryTokenRe = regexp.MustCompile(`[\s,\-]+`)

// resolveCountry detects an embedded country token and partitions the text
// into (country code, port-name candidate). The last token is checked first
// ("LAGOS NIGERIA"), then the first ("INDIA, KOCHI"); the two checks never
// combine. Matching is a case-insensitive exact comparison against the
// registry's known country names, never fuzzy. With no match (or fewer than
// two tokens) the full text is returned unchanged as the candidate.
func resolveCountry(reg *Registry, text string) (countryCode, remaining string, ok bool) {
	tokens := splitTokens(text)
	if len(tokens) < 2 {
		return "", text, false
	}

	if cc, found := reg.countryNames[strings.ToUpper(tokens[len(tokens)-1])]; found {
		return cc, strings.Join(tokens[:len(tokens)-1], " "), true
	}
	if cc, found := reg.countryNames[strings.ToUpper(tokens[0])]; found {
		return cc, strings.Join(tokens[1:], " "), true
	}
	return "", text, false
}

func splitTokens(text string) []string {
	parts := countryTokenRe.Split(text, -1)
	tokens := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}
