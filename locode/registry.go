package locode

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/golang/geo/s2"
)

// Registry holds every known location plus the derived lookup indices.
// It is built exactly once at startup and never mutated afterwards, so all
// query methods are safe for concurrent use without locking.
type Registry struct {
	records []Record

	byCode         map[string]int      // locode -> record index
	byPortName     map[string][]int    // upper port name -> indices, dataset order
	byCountryCode  map[string][]int    // alpha-2 -> indices, dataset order
	byLocationCode map[string][]int    // 3-letter location part -> indices
	countryNames   map[string]string   // upper country name -> alpha-2 code
	cellIndex      map[s2.CellID][]int // spatial index for NearestPort

	allIdx []int // every record index in dataset order, for the global fuzzy scan
}

// datasetRow mirrors the locode.json schema emitted by locodegen (and by the
// original dataset build). Coordinates are pointers so that rows with null
// coordinates can be detected and skipped rather than landing on (0,0).
type datasetRow struct {
	Locode      string   `json:"locode"`
	PortCode    string   `json:"portCode"`
	Port        string   `json:"port"`
	CountryCode string   `json:"countryCode"`
	Country     string   `json:"country"`
	Lat         *float64 `json:"lat"`
	Lon         *float64 `json:"lon"`
}

// LoadRegistry reads the dataset file and builds the registry. Individual
// malformed rows are skipped with a warning; an unreadable file, unparsable
// JSON, or a dataset with no usable rows is an error and the caller is
// expected to treat it as fatal.
func LoadRegistry(path string, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", path, err)
	}

	var rows []datasetRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
	}

	records := make([]Record, 0, len(rows))
	skipped := 0
	for i, row := range rows {
		rec, err := row.toRecord()
		if err != nil {
			skipped++
			logger.Warn("skipping dataset row", "row", i, "locode", row.Locode, "error", err)
			continue
		}
		records = append(records, rec)
	}
	if skipped > 0 {
		logger.Warn("dataset rows skipped", "skipped", skipped, "loaded", len(records))
	}

	return NewRegistry(records, logger)
}

// NewRegistry builds a registry from pre-validated records. Exposed so tests
// (and embedders) can construct small synthetic registries without a dataset
// file. Duplicate codes are rejected: the first occurrence wins and later
// ones are dropped with a warning, never silently merged.
func NewRegistry(records []Record, logger *slog.Logger) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	r := &Registry{
		byCode:         make(map[string]int, len(records)),
		byPortName:     make(map[string][]int, len(records)),
		byCountryCode:  make(map[string][]int),
		byLocationCode: make(map[string][]int),
		countryNames:   make(map[string]string),
		cellIndex:      make(map[s2.CellID][]int),
	}

	for _, rec := range records {
		if err := validateRecord(rec); err != nil {
			return nil, fmt.Errorf("record %q: %w", rec.Code, err)
		}
		if _, dup := r.byCode[rec.Code]; dup {
			logger.Warn("duplicate locode dropped", "locode", rec.Code)
			continue
		}
		idx := len(r.records)
		r.records = append(r.records, rec)
		r.allIdx = append(r.allIdx, idx)

		r.byCode[rec.Code] = idx
		nameKey := strings.ToUpper(rec.PortName)
		r.byPortName[nameKey] = append(r.byPortName[nameKey], idx)
		r.byCountryCode[rec.CountryCode] = append(r.byCountryCode[rec.CountryCode], idx)
		r.byLocationCode[rec.LocationCode] = append(r.byLocationCode[rec.LocationCode], idx)

		countryKey := strings.ToUpper(rec.Country)
		if _, ok := r.countryNames[countryKey]; !ok {
			r.countryNames[countryKey] = rec.CountryCode
		}

		ll := s2.LatLngFromDegrees(rec.Latitude, rec.Longitude)
		cell := s2.CellIDFromLatLng(ll).Parent(s2CellLevel)
		r.cellIndex[cell] = append(r.cellIndex[cell], idx)
	}

	if len(r.records) == 0 {
		return nil, fmt.Errorf("registry is empty")
	}
	return r, nil
}

// toRecord validates a raw dataset row and converts it into a Record.
func (row datasetRow) toRecord() (Record, error) {
	code := strings.ToUpper(strings.TrimSpace(row.Locode))
	cc := strings.ToUpper(strings.TrimSpace(row.CountryCode))
	lc := strings.ToUpper(strings.TrimSpace(row.PortCode))
	port := strings.TrimSpace(row.Port)
	country := strings.TrimSpace(row.Country)

	if port == "" || country == "" {
		return Record{}, fmt.Errorf("missing port or country name")
	}
	if row.Lat == nil || row.Lon == nil {
		return Record{}, fmt.Errorf("missing coordinates")
	}

	rec := Record{
		Code:         code,
		PortName:     port,
		Country:      country,
		CountryCode:  cc,
		LocationCode: lc,
		Latitude:     *row.Lat,
		Longitude:    *row.Lon,
	}
	if err := validateRecord(rec); err != nil {
		return Record{}, err
	}
	return rec, nil
}

func validateRecord(rec Record) error {
	if len(rec.CountryCode) != 2 || !isAlpha(rec.CountryCode) {
		return fmt.Errorf("invalid country code %q", rec.CountryCode)
	}
	if len(rec.LocationCode) != 3 || !isAlpha(rec.LocationCode) {
		return fmt.Errorf("invalid location code %q", rec.LocationCode)
	}
	if rec.Code != rec.CountryCode+rec.LocationCode {
		return fmt.Errorf("code %q does not match %s+%s", rec.Code, rec.CountryCode, rec.LocationCode)
	}
	if rec.PortName == "" || rec.Country == "" {
		return fmt.Errorf("missing port or country name")
	}
	if rec.Latitude < -90 || rec.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range", rec.Latitude)
	}
	if rec.Longitude < -180 || rec.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range", rec.Longitude)
	}
	return nil
}

// Len returns the number of records in the registry.
func (r *Registry) Len() int {
	return len(r.records)
}

// ByCode looks up a record by its 5-character locode (upper-cased exact match).
func (r *Registry) ByCode(code string) (*Record, bool) {
	idx, ok := r.byCode[code]
	if !ok {
		return nil, false
	}
	return &r.records[idx], true
}

// ByPortName returns all records sharing a port name, in dataset order.
// Port names are not unique: two countries can each have a "Victoria".
func (r *Registry) ByPortName(name string) []*Record {
	return r.resolve(r.byPortName[strings.ToUpper(name)])
}

// ByCountryCode returns all records for an alpha-2 country code, in dataset order.
func (r *Registry) ByCountryCode(cc string) []*Record {
	return r.resolve(r.byCountryCode[strings.ToUpper(cc)])
}

// ByLocationCode returns all records sharing a bare 3-letter location code.
// Location codes are not globally unique across countries.
func (r *Registry) ByLocationCode(lc string) []*Record {
	return r.resolve(r.byLocationCode[strings.ToUpper(lc)])
}

// CountryCodeForName returns the alpha-2 code for an exactly matching
// country name (case-insensitive).
func (r *Registry) CountryCodeForName(name string) (string, bool) {
	cc, ok := r.countryNames[strings.ToUpper(name)]
	return cc, ok
}

func (r *Registry) resolve(idxs []int) []*Record {
	if len(idxs) == 0 {
		return nil
	}
	out := make([]*Record, len(idxs))
	for i, idx := range idxs {
		out[i] = &r.records[idx]
	}
	return out
}
