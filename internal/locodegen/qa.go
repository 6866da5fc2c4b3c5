package locodegen

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// NearDuplicate is a pair of distinct locodes in the same country whose port
// names differ by at most one edit, usually a typo or stale entry in the
// source data.
type NearDuplicate struct {
	A, B Record
}

// FindNearDuplicates scans the dataset for same-country port names within
// edit distance 1 of each other. Identical names are ignored; UN/LOCODE
// legitimately assigns multiple codes to one named place.
func FindNearDuplicates(records []Record) []NearDuplicate {
	byCountry := make(map[string][]Record)
	var order []string
	for _, rec := range records {
		if _, ok := byCountry[rec.CountryCode]; !ok {
			order = append(order, rec.CountryCode)
		}
		byCountry[rec.CountryCode] = append(byCountry[rec.CountryCode], rec)
	}

	var out []NearDuplicate
	for _, cc := range order {
		recs := byCountry[cc]
		for i := 0; i < len(recs); i++ {
			a := strings.ToUpper(recs[i].Port)
			for j := i + 1; j < len(recs); j++ {
				b := strings.ToUpper(recs[j].Port)
				if a == b {
					continue
				}
				// Cheap length gate before the real distance computation.
				if diff := len(a) - len(b); diff > 1 || diff < -1 {
					continue
				}
				if levenshtein.ComputeDistance(a, b) <= 1 {
					out = append(out, NearDuplicate{A: recs[i], B: recs[j]})
				}
			}
		}
	}
	return out
}
