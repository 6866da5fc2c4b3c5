package locode

import (
	"io"
	"log/slog"
	"testing"
)

// testRecords is a small synthetic registry covering every decode stage.
// Dataset order matters: the two Victorias exercise the first-record
// tie-break for shared port names.
func testRecords() []Record {
	return []Record{
		{Code: "SGSIN", PortName: "Singapore", Country: "Singapore", CountryCode: "SG", LocationCode: "SIN", Latitude: 1.2644, Longitude: 103.8224},
		{Code: "TRIST", PortName: "Istanbul", Country: "Turkey", CountryCode: "TR", LocationCode: "IST", Latitude: 41.0082, Longitude: 28.9784},
		{Code: "GBHUL", PortName: "Hull", Country: "United Kingdom", CountryCode: "GB", LocationCode: "HUL", Latitude: 53.7444, Longitude: -0.3369},
		{Code: "BEZEE", PortName: "Zeebrugge", Country: "Belgium", CountryCode: "BE", LocationCode: "ZEE", Latitude: 51.3333, Longitude: 3.2},
		{Code: "AUDAM", PortName: "Dampier", Country: "Australia", CountryCode: "AU", LocationCode: "DAM", Latitude: -20.6625, Longitude: 116.7128},
		{Code: "GIGIB", PortName: "Gibraltar", Country: "Gibraltar", CountryCode: "GI", LocationCode: "GIB", Latitude: 36.1408, Longitude: -5.3536},
		{Code: "EGPSD", PortName: "Port Said", Country: "Egypt", CountryCode: "EG", LocationCode: "PSD", Latitude: 31.2565, Longitude: 32.2841},
		{Code: "AEFJR", PortName: "Fujairah", Country: "United Arab Emirates", CountryCode: "AE", LocationCode: "FJR", Latitude: 25.1164, Longitude: 56.3422},
		{Code: "INMAA", PortName: "Chennai", Country: "India", CountryCode: "IN", LocationCode: "MAA", Latitude: 13.0827, Longitude: 80.2707},
		{Code: "SCVIC", PortName: "Victoria", Country: "Seychelles", CountryCode: "SC", LocationCode: "VIC", Latitude: -4.6196, Longitude: 55.4513},
		{Code: "CAVIC", PortName: "Victoria", Country: "Canada", CountryCode: "CA", LocationCode: "VIC", Latitude: 48.4284, Longitude: -123.3656},
		{Code: "NLRTM", PortName: "Rotterdam", Country: "Netherlands", CountryCode: "NL", LocationCode: "RTM", Latitude: 51.9225, Longitude: 4.4792},
		{Code: "BRSSZ", PortName: "Santos", Country: "Brazil", CountryCode: "BR", LocationCode: "SSZ", Latitude: -23.9608, Longitude: -46.3336},
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(testRecords(), discardLogger())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func newTestDecoder(t *testing.T, opts ...Option) *Decoder {
	t.Helper()
	return NewDecoder(newTestRegistry(t), opts...)
}
