// Package locode implements the AIS destination decoder: an in-memory
// registry of UN/LOCODE maritime locations and a deterministic text
// resolution engine that maps free-text destination fields, as typed by
// vessel operators, onto registry records.
package locode

// Record is a single maritime location from the UN/LOCODE dataset.
// Records are immutable after registry construction.
type Record struct {
	Code         string  // 5-char locode: CountryCode + LocationCode
	PortName     string  // e.g. "Singapore"
	Country      string  // full country name, e.g. "Singapore"
	CountryCode  string  // ISO 3166-1 alpha-2, e.g. "SG"
	LocationCode string  // 3-letter location part, e.g. "SIN"
	Latitude     float64 // degrees, [-90, 90]
	Longitude    float64 // degrees, [-180, 180]
}

// DecodeResult is the outcome of a single Decode call. Record is nil when
// the input could not be resolved; RawInput always carries the original
// string verbatim for traceability.
type DecodeResult struct {
	RawInput string
	Record   *Record
}

// Matched reports whether the input resolved to a registry record.
func (r DecodeResult) Matched() bool {
	return r.Record != nil
}

// newResult maps a matched record (or nil) into the externally visible
// result shape.
func newResult(rec *Record, rawInput string) DecodeResult {
	return DecodeResult{RawInput: rawInput, Record: rec}
}

// isAlpha reports whether s is non-empty and consists only of ASCII letters.
// Registry codes are upper-cased on load, so only A-Z appears in practice,
// but decode inputs can carry anything.
func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'A' || c > 'Z') && (c < 'a' || c > 'z') {
			return false
		}
	}
	return true
}
