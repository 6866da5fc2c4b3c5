package locode

import "testing"

func TestExtractFinalLeg(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"BEZEE <> GBHUL", "GBHUL"},
		{"LYBEN>>MTMAR", "MTMAR"},
		{"MXDBT --> USPOA", "USPOA"},
		{"SGSIN=>BRPMA", "BRPMA"},
		{"MUPLU>USHOU", "USHOU"},
		{`"===BS FPO`, "BS FPO"},
		{"JPMIZ TO CNZOS", "CNZOS"},
		// Malformed chains: split on all occurrences, keep the last leg.
		{"AUHIR=>CNSHA=>JPTYO", "JPTYO"},
		{"PORTSA<>BRRIO<>USNYC", "USNYC"},
		// Trailing separator: last non-empty segment wins.
		{"NLRTM =>", "NLRTM"},
		// TO only fires on word boundaries.
		{"TORONTO", "TORONTO"},
		{"PORTO", "PORTO"},
		// No separator at all.
		{"ROTTERDAM", "ROTTERDAM"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := extractFinalLeg(tt.in); got != tt.want {
				t.Errorf("extractFinalLeg(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestExtractFinalLegSeparatorPriority(t *testing.T) {
	// "<>" outranks ">" even though ">" appears first in the string: the
	// whole string splits on "<>", and each ">" stays inside its segment
	// until the later normalization pass.
	got := extractFinalLeg("A>B <> C")
	if got != "C" {
		t.Errorf("extractFinalLeg(A>B <> C) = %q, want C", got)
	}
}
