// Package locodegen builds the port registry dataset (locode.json) from the
// raw UN/LOCODE code-list CSV.
package locodegen

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/biter777/countries"
)

// Record is one dataset row in the locode.json schema consumed by the
// registry loader. Coordinates are pointers so rows without a usable
// position serialize as null rather than (0,0).
type Record struct {
	Locode      string   `json:"locode"`
	PortCode    string   `json:"portCode"`
	Port        string   `json:"port"`
	CountryCode string   `json:"countryCode"`
	Country     string   `json:"country"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

// SkippedRow records a source row that could not be turned into a Record.
type SkippedRow struct {
	Country  string `json:"country"`
	Location string `json:"location"`
	Name     string `json:"name"`
}

// Options control dataset generation.
type Options struct {
	// SeaportsOnly keeps only rows whose UN/LOCODE Function column marks
	// the location as a seaport (contains "1").
	SeaportsOnly bool
	Logger       *slog.Logger
}

// Result is the outcome of a generation run.
type Result struct {
	Records []Record
	Skipped []SkippedRow

	// Filtered counts rows dropped by the seaport filter.
	Filtered int
	// Duplicates counts rows dropped because their locode was already seen.
	Duplicates int
}

// Generate reads a UN/LOCODE code-list CSV and produces dataset records.
// The CSV must carry a header row naming at least the Country, Location,
// Name, and Coordinates columns; column order does not matter.
func Generate(r io.Reader, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"Country", "Location", "Name", "Coordinates"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("CSV is missing required column %q", required)
		}
	}
	functionCol, hasFunction := cols["Function"]
	if opts.SeaportsOnly && !hasFunction {
		logger.Warn("Function column not found, seaport filter disabled")
	}

	res := &Result{}
	seen := make(map[string]struct{})

	field := func(row []string, name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}

		if opts.SeaportsOnly && hasFunction {
			fn := ""
			if functionCol < len(row) {
				fn = row[functionCol]
			}
			if !strings.Contains(fn, "1") {
				res.Filtered++
				continue
			}
		}

		countryCode := strings.ToUpper(field(row, "Country"))
		loc := strings.ToUpper(field(row, "Location"))
		name := field(row, "Name")

		if countryCode == "" || loc == "" {
			res.Skipped = append(res.Skipped, SkippedRow{Country: countryCode, Location: loc, Name: name})
			continue
		}

		code := countryCode + loc
		if _, dup := seen[code]; dup {
			res.Duplicates++
			continue
		}
		seen[code] = struct{}{}

		lat, lon := ParseCoordinates(field(row, "Coordinates"))

		res.Records = append(res.Records, Record{
			Locode:      code,
			PortCode:    loc,
			Port:        name,
			CountryCode: countryCode,
			Country:     countryName(countryCode),
			Lat:         lat,
			Lon:         lon,
		})
	}

	if len(res.Records) == 0 {
		return nil, errors.New("no usable rows in CSV")
	}
	return res, nil
}

// countryName resolves an ISO alpha-2 code to its English name, empty when
// the code is unknown.
func countryName(alpha2 string) string {
	c := countries.ByName(alpha2)
	if c == countries.Unknown {
		return ""
	}
	return c.Info().Name
}

// ParseCoordinates converts a UN/LOCODE coordinate string such as
// "4230N 00131E" (DDMM latitude, DDDMM longitude) to decimal degrees.
// Each axis parses independently; a nil pointer means that axis was absent
// or malformed.
func ParseCoordinates(coord string) (lat, lon *float64) {
	parts := strings.Fields(coord)
	if len(parts) != 2 {
		return nil, nil
	}
	return parseAxis(parts[0], 2, 'N', 'S'), parseAxis(parts[1], 3, 'E', 'W')
}

// parseAxis parses one coordinate half: degDigits degrees, two minute
// digits, then a hemisphere letter. negHemi flips the sign.
func parseAxis(raw string, degDigits int, posHemi, negHemi byte) *float64 {
	if len(raw) != degDigits+3 {
		return nil
	}
	deg, err := strconv.Atoi(raw[:degDigits])
	if err != nil {
		return nil
	}
	min, err := strconv.Atoi(raw[degDigits : degDigits+2])
	if err != nil {
		return nil
	}
	value := float64(deg) + float64(min)/60.0
	switch raw[degDigits+2] {
	case negHemi:
		value = -value
	case posHemi:
	default:
		return nil
	}
	return &value
}
