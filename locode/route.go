package locode

import (
	"regexp"
	"strings"
)

// routeSeparators, in priority order. Multi-character arrows come before the
// single-character ones that are their substrings, so "-->" is never
// mis-split by "-" or ">".
var routeSeparators = []string{"<>", ">>", "-->", "=>", "===", "->", ">"}

// The bare keyword form: "JPMIZ TO CNZOS". Word boundaries keep city names
// like PORTO or TORONTO intact. Input is already upper-cased here.
var toKeywordRe = regexp.MustCompile(`\bTO\b`)

// extractFinalLeg isolates the destination from a multi-leg route
// expression. The first separator (by priority order, not position) that
// occurs anywhere in the string wins; the string is split on all of its
// occurrences and the last non-empty segment is the destination. Without any
// separator the input is returned unchanged. This runs before punctuation
// stripping, which would otherwise destroy the arrow syntax.
func extractFinalLeg(text string) string {
	for _, sep := range routeSeparators {
		if !strings.Contains(text, sep) {
			continue
		}
		return lastNonEmpty(strings.Split(text, sep))
	}
	if toKeywordRe.MatchString(text) {
		return lastNonEmpty(toKeywordRe.Split(text, -1))
	}
	return text
}

func lastNonEmpty(segments []string) string {
	for i := len(segments) - 1; i >= 0; i-- {
		if seg := strings.TrimSpace(segments[i]); seg != "" {
			return seg
		}
	}
	return ""
}
