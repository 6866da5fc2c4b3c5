package locode

import (
	"regexp"
	"sort"
	"strings"
	"sync"
)

// DefaultNoiseTokens are the destination-field annotations that carry no
// location information. Operators append these to real port names ("GIBRALTAR
// EAST ANCH", "FUJAIRAH BUNKERING") or send them alone ("TBA"). The list is
// configuration, not logic: extend it with WithNoiseTokens or the service's
// NOISE_TOKENS setting without touching the decoder.
var DefaultNoiseTokens = []string{
	"TBA", "ANCH", "ANCHORING", "ANCHORAGE", "BUNKERING", "OPL", "OPEN",
	"IN ORDER", "FOR ORDER", "FOR ORDERS", "ORDERS", "ORDER",
	"UNKNOWN", "N/A", "NONE", "AWAITING",
	"EAST", "WEST", "NORTH", "SOUTH",
}

var (
	// Parenthesized and bracketed annotations: "SG SIN (ANCHORAGE)".
	bracketRe = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	// Route separators and punctuation become single spaces. Commas are
	// deliberately kept: the country resolver splits on them ("DAMPIER,
	// AUSTRALIA").
	punctRe = regexp.MustCompile("[<>=|/\\\\._\\-\"'`~!@#$%^&*(){}\\[\\]:;?]")
	spaceRe = regexp.MustCompile(`\s+`)
)

// foldCase is the loose normalization pass applied before route extraction:
// upper-case and trim only, so arrow separators are still visible.
func foldCase(text string) string {
	return strings.ToUpper(strings.TrimSpace(text))
}

// compileNoisePatterns turns noise tokens into word-boundary patterns.
// Tokens are folded through the same punctuation replacement as the input
// ("N/A" matches the "N A" it becomes), and applied longest-first so that
// "FOR ORDERS" strips before "ORDERS" can leave a dangling "FOR".
func compileNoisePatterns(tokens []string) []*regexp.Regexp {
	cleaned := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		tok = foldCase(tok)
		tok = punctRe.ReplaceAllString(tok, " ")
		tok = strings.TrimSpace(spaceRe.ReplaceAllString(tok, " "))
		if tok != "" {
			cleaned = append(cleaned, tok)
		}
	}
	sort.SliceStable(cleaned, func(i, j int) bool {
		return len(cleaned[i]) > len(cleaned[j])
	})

	patterns := make([]*regexp.Regexp, len(cleaned))
	for i, tok := range cleaned {
		patterns[i] = regexp.MustCompile(`\b` + regexp.QuoteMeta(tok) + `\b`)
	}
	return patterns
}

// defaultNoisePatterns is shared by decoders that don't add custom tokens.
var defaultNoisePatterns = sync.OnceValue(func() []*regexp.Regexp {
	return compileNoisePatterns(DefaultNoiseTokens)
})

// normalize is the full cleaning pass: upper-case, drop bracketed
// annotations, replace separators and punctuation with spaces, strip noise
// tokens on whole-word boundaries, collapse whitespace. Empty input
// normalizes to the empty string; there are no error conditions.
func (d *Decoder) normalize(text string) string {
	text = foldCase(text)
	text = bracketRe.ReplaceAllString(text, " ")
	text = punctRe.ReplaceAllString(text, " ")
	text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
	for _, p := range d.noise {
		text = p.ReplaceAllString(text, " ")
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
}
