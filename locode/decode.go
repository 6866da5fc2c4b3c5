package locode

import (
	"regexp"
	"strings"
)

// Fuzzy acceptance thresholds. The country-scoped pass is looser because the
// search space is already narrowed to one country's records; the global pass
// over the whole registry trades recall for precision.
const (
	scopedFuzzyThreshold = 0.65
	globalFuzzyThreshold = 0.75
)

// Decoder resolves raw AIS destination strings against a Registry. It is
// stateless apart from its configuration: Decode performs no I/O, holds no
// mutable state, and may be called concurrently without coordination.
type Decoder struct {
	reg   *Registry
	noise []*regexp.Regexp
}

// decoderConfig carries construction options.
type decoderConfig struct {
	extraNoiseTokens []string
}

// Option is a functional option for configuring a Decoder.
type Option func(*decoderConfig)

// WithNoiseTokens adds noise tokens to the default list. Tokens are matched
// on whole-word boundaries, case-insensitively.
func WithNoiseTokens(tokens ...string) Option {
	return func(c *decoderConfig) {
		c.extraNoiseTokens = append(c.extraNoiseTokens, tokens...)
	}
}

// NewDecoder creates a decoder over the given registry. The registry handle
// is explicit by design: pass a small synthetic registry to test decoding in
// isolation.
func NewDecoder(reg *Registry, opts ...Option) *Decoder {
	cfg := &decoderConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	d := &Decoder{reg: reg}
	if len(cfg.extraNoiseTokens) == 0 {
		d.noise = defaultNoisePatterns()
	} else {
		d.noise = compileNoisePatterns(append(append([]string{}, DefaultNoiseTokens...), cfg.extraNoiseTokens...))
	}
	return d
}

// Decode maps a raw destination string to a location record, or to an
// explicit unresolved result. It is deterministic and total: malformed or
// empty input yields an unmatched result, never an error.
//
// The stages run in a fixed confidence order and short-circuit on the first
// hit: exact port name, exact locode, country-scoped fuzzy, global fuzzy,
// bare location code. Exact textual agreement with a known entity outranks
// structured-code agreement; a lone 3-letter code is the weakest signal of
// all since location codes repeat across countries.
func (d *Decoder) Decode(rawInput string) DecodeResult {
	// Loose fold first so the route arrows survive long enough to be split
	// on, then the full cleanup runs against the isolated final leg.
	cleaned := d.normalize(extractFinalLeg(foldCase(rawInput)))
	if cleaned == "" {
		return newResult(nil, rawInput)
	}

	// The operator typed a full, unambiguous port name; never second-guess
	// that with country or code logic. First record in dataset order wins
	// when several countries share the name.
	if idxs := d.reg.byPortName[cleaned]; len(idxs) > 0 {
		return newResult(&d.reg.records[idxs[0]], rawInput)
	}

	countryCode, portText, hasCountry := resolveCountry(d.reg, cleaned)

	// Exact locode, tolerating spaced and hyphenated forms
	// ("GB HUL", "GB-HUL" — the hyphen is already a space by now).
	compact := strings.ReplaceAll(cleaned, " ", "")
	if len(compact) == 5 && isAlpha(compact) {
		if idx, ok := d.reg.byCode[compact]; ok {
			return newResult(&d.reg.records[idx], rawInput)
		}
	}

	// Fuzzy match inside the resolved country's bucket.
	if hasCountry {
		if idx, ok := d.bestMatch(portText, d.reg.byCountryCode[countryCode], scopedFuzzyThreshold); ok {
			return newResult(&d.reg.records[idx], rawInput)
		}
	}

	// Fuzzy match across every port name. A linear scan over the
	// full registry; bucketing by first letter or length would bound the
	// worst case, but the exhaustive highest-score-wins scan is what keeps
	// results deterministic.
	if idx, ok := d.bestMatch(cleaned, d.reg.allIdx, globalFuzzyThreshold); ok {
		return newResult(&d.reg.records[idx], rawInput)
	}

	// Bare 3-letter location code, the last resort. No country
	// scoping: a resolved country token would have left cleaned longer than
	// three characters, so the hint can never coexist with this form.
	if len(compact) == 3 && isAlpha(compact) {
		if idxs := d.reg.byLocationCode[compact]; len(idxs) > 0 {
			return newResult(&d.reg.records[idxs[0]], rawInput)
		}
	}

	return newResult(nil, rawInput)
}

// bestMatch scores query against the port names of the candidate records and
// returns the index of the best one at or above threshold. Ties break to the
// highest score, then to dataset insertion order (strict-greater comparison
// over an in-order scan).
func (d *Decoder) bestMatch(query string, candidates []int, threshold float64) (int, bool) {
	if query == "" {
		return 0, false
	}
	bestIdx := -1
	bestScore := 0.0
	for _, idx := range candidates {
		score := similarity(query, d.reg.records[idx].PortName)
		if score > bestScore {
			bestScore = score
			bestIdx = idx
		}
	}
	if bestIdx < 0 || bestScore < threshold {
		return 0, false
	}
	return bestIdx, true
}
