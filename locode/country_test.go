package locode

import "testing"

func TestResolveCountry(t *testing.T) {
	reg := newTestRegistry(t)

	tests := []struct {
		in       string
		wantCC   string
		wantRest string
		wantOK   bool
	}{
		{"DAMPIER, AUSTRALIA", "AU", "DAMPIER", true},
		{"SANTOS BRAZIL", "BR", "SANTOS", true},
		{"LAGOS EGYPT", "EG", "LAGOS", true},
		// First-token form.
		{"INDIA, CHENNAI", "IN", "CHENNAI", true},
		{"TURKEY ISTANBUL", "TR", "ISTANBUL", true},
		// Last token wins over first; the checks never combine.
		{"TURKEY GIBRALTAR", "GI", "TURKEY", true},
		// Exact names only, never fuzzy.
		{"SANTOS BRAZL", "", "SANTOS BRAZL", false},
		{"HAMBURG GERMANY", "", "HAMBURG GERMANY", false},
		// A single token never resolves, even when it is a country name.
		{"AUSTRALIA", "", "AUSTRALIA", false},
		{"ROTTERDAM", "", "ROTTERDAM", false},
		{"", "", "", false},
		// Multi-word country names exceed the single-token check.
		{"HULL UNITED KINGDOM", "", "HULL UNITED KINGDOM", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			cc, rest, ok := resolveCountry(reg, tt.in)
			if ok != tt.wantOK || cc != tt.wantCC || rest != tt.wantRest {
				t.Errorf("resolveCountry(%q) = (%q, %q, %v), want (%q, %q, %v)",
					tt.in, cc, rest, ok, tt.wantCC, tt.wantRest, tt.wantOK)
			}
		})
	}
}
