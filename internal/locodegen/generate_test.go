package locodegen_test

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ryantusi/GMS-Vessel-Tracker/internal/locodegen"
)

const csvHeader = "Change,Country,Location,Name,NameWoDiacritics,Subdivision,Status,Function,Date,IATA,Coordinates,Remarks\n"

func generate(t *testing.T, csvBody string, opts locodegen.Options) *locodegen.Result {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	res, err := locodegen.Generate(strings.NewReader(csvBody), opts)
	require.NoError(t, err)
	return res
}

func TestParseCoordinates(t *testing.T) {
	tests := []struct {
		name     string
		coord    string
		lat, lon float64
		ok       bool
	}{
		{name: "northeast", coord: "4230N 00131E", lat: 42.5, lon: 1.0 + 31.0/60.0, ok: true},
		{name: "southeast", coord: "0107S 03652E", lat: -(1.0 + 7.0/60.0), lon: 36.0 + 52.0/60.0, ok: true},
		{name: "northwest", coord: "5344N 00020W", lat: 53.0 + 44.0/60.0, lon: -(20.0 / 60.0), ok: true},
		{name: "extra whitespace", coord: "  4230N   00131E  ", lat: 42.5, lon: 1.0 + 31.0/60.0, ok: true},
		{name: "empty", coord: ""},
		{name: "single part", coord: "4230N"},
		{name: "three parts", coord: "4230N 00131E X"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lat, lon := locodegen.ParseCoordinates(tt.coord)
			if !tt.ok {
				assert.Nil(t, lat)
				assert.Nil(t, lon)
				return
			}
			require.NotNil(t, lat)
			require.NotNil(t, lon)
			assert.InDelta(t, tt.lat, *lat, 1e-9)
			assert.InDelta(t, tt.lon, *lon, 1e-9)
		})
	}
}

func TestParseCoordinatesAxesIndependent(t *testing.T) {
	lat, lon := locodegen.ParseCoordinates("42XXN 00131E")
	assert.Nil(t, lat)
	require.NotNil(t, lon)
	assert.InDelta(t, 1.0+31.0/60.0, *lon, 1e-9)

	lat, lon = locodegen.ParseCoordinates("4230N 00131Q")
	require.NotNil(t, lat)
	assert.InDelta(t, 42.5, *lat, 1e-9)
	assert.Nil(t, lon)
}

func TestGenerateBuildsRecords(t *testing.T) {
	body := csvHeader +
		",SG,SIN,Singapore,Singapore,,AI,1--4----,,SIN,0116N 10350E,\n" +
		",NL,RTM,Rotterdam,Rotterdam,ZH,AI,12345---,,RTM,5153N 00417E,\n"

	res := generate(t, body, locodegen.Options{})

	require.Len(t, res.Records, 2)

	sin := res.Records[0]
	assert.Equal(t, "SGSIN", sin.Locode)
	assert.Equal(t, "SIN", sin.PortCode)
	assert.Equal(t, "Singapore", sin.Port)
	assert.Equal(t, "SG", sin.CountryCode)
	assert.Equal(t, "Singapore", sin.Country)
	require.NotNil(t, sin.Lat)
	require.NotNil(t, sin.Lon)
	assert.InDelta(t, 1.0+16.0/60.0, *sin.Lat, 1e-9)
	assert.InDelta(t, 103.0+50.0/60.0, *sin.Lon, 1e-9)

	assert.Equal(t, "NLRTM", res.Records[1].Locode)
	assert.Contains(t, res.Records[1].Country, "Netherlands")
}

func TestGenerateSeaportFilter(t *testing.T) {
	body := csvHeader +
		",SG,SIN,Singapore,Singapore,,AI,1--4----,,SIN,0116N 10350E,\n" +
		",CH,ZRH,Zurich,Zurich,,AI,-234----,,ZRH,4722N 00832E,\n"

	res := generate(t, body, locodegen.Options{SeaportsOnly: true})

	require.Len(t, res.Records, 1)
	assert.Equal(t, "SGSIN", res.Records[0].Locode)
	assert.Equal(t, 1, res.Filtered)
}

func TestGenerateSkipsIncompleteRows(t *testing.T) {
	body := csvHeader +
		",SG,,Singapore region,,,AI,1-------,,,,\n" +
		",SG,SIN,Singapore,Singapore,,AI,1--4----,,SIN,0116N 10350E,\n"

	res := generate(t, body, locodegen.Options{})

	require.Len(t, res.Records, 1)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "SG", res.Skipped[0].Country)
	assert.Equal(t, "Singapore region", res.Skipped[0].Name)
}

func TestGenerateDropsDuplicateLocodes(t *testing.T) {
	body := csvHeader +
		",SG,SIN,Singapore,Singapore,,AI,1--4----,,SIN,0116N 10350E,\n" +
		",SG,SIN,Singapore Again,Singapore Again,,AI,1-------,,SIN,0116N 10350E,\n"

	res := generate(t, body, locodegen.Options{})

	require.Len(t, res.Records, 1)
	assert.Equal(t, "Singapore", res.Records[0].Port)
	assert.Equal(t, 1, res.Duplicates)
}

func TestGenerateNullCoordinates(t *testing.T) {
	body := csvHeader +
		",SG,SIN,Singapore,Singapore,,AI,1--4----,,SIN,,\n"

	res := generate(t, body, locodegen.Options{})

	require.Len(t, res.Records, 1)
	assert.Nil(t, res.Records[0].Lat)
	assert.Nil(t, res.Records[0].Lon)
}

func TestGenerateMissingColumn(t *testing.T) {
	body := "Change,Country,Location,Name\n,SG,SIN,Singapore\n"

	_, err := locodegen.Generate(strings.NewReader(body), locodegen.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Coordinates")
}

func TestGenerateEmptyDataset(t *testing.T) {
	_, err := locodegen.Generate(strings.NewReader(csvHeader), locodegen.Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	require.Error(t, err)
}

func TestFindNearDuplicates(t *testing.T) {
	records := []locodegen.Record{
		{Locode: "GBLON", Port: "London", CountryCode: "GB"},
		{Locode: "GBLOX", Port: "Londin", CountryCode: "GB"},
		{Locode: "CALON", Port: "London", CountryCode: "CA"}, // other country, never compared
		{Locode: "GBHUL", Port: "Hull", CountryCode: "GB"},
		{Locode: "GBHUX", Port: "Hull", CountryCode: "GB"}, // identical names ignored
	}

	dups := locodegen.FindNearDuplicates(records)

	require.Len(t, dups, 1)
	assert.Equal(t, "GBLON", dups[0].A.Locode)
	assert.Equal(t, "GBLOX", dups[0].B.Locode)
}
