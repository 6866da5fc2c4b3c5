package locode

import (
	"math"
	"sort"

	"github.com/golang/geo/s2"
)

// s2CellLevel sets the granularity of the spatial index used by NearestPort.
// Level 10 cells are roughly 10km x 10km at the equator: small enough to
// keep candidate lists short, coarse enough that the index stays compact for
// ~100K locations.
const s2CellLevel = 10

// maxNearestDistance is ~100km in radians on the unit sphere. Queries in the
// open ocean with no port within this radius return no result.
const maxNearestDistance = 0.0157

type nearestCandidate struct {
	idx  int
	dist float64
}

// NearestPort returns the registry record closest to the given coordinates,
// or false when no port lies within ~100km. Purely in-memory: it searches
// the query's S2 cell plus its edge and corner neighbors.
func (r *Registry) NearestPort(lat, lon float64) (*Record, bool) {
	if math.IsNaN(lat) || math.IsNaN(lon) ||
		math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return nil, false
	}

	queryLL := s2.LatLngFromDegrees(lat, lon)
	queryCell := s2.CellIDFromLatLng(queryLL).Parent(s2CellLevel)

	var candidates []nearestCandidate
	for _, cell := range cellAndNeighbors(queryCell) {
		for _, idx := range r.cellIndex[cell] {
			rec := &r.records[idx]
			recLL := s2.LatLngFromDegrees(rec.Latitude, rec.Longitude)
			candidates = append(candidates, nearestCandidate{
				idx:  idx,
				dist: float64(queryLL.Distance(recLL)),
			})
		}
	}
	if len(candidates) == 0 {
		return nil, false
	}

	// Distance first, then locode for full determinism on exact ties.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return r.records[candidates[i].idx].Code < r.records[candidates[j].idx].Code
	})

	best := candidates[0]
	if best.dist > maxNearestDistance {
		return nil, false
	}
	return &r.records[best.idx], true
}

// cellAndNeighbors returns the given cell plus its edge and corner neighbors.
func cellAndNeighbors(cell s2.CellID) []s2.CellID {
	cells := make([]s2.CellID, 0, 9)
	cells = append(cells, cell)

	edgeNeighbors := cell.EdgeNeighbors()
	for i := 0; i < 4; i++ {
		cells = append(cells, edgeNeighbors[i])
	}

	seen := make(map[s2.CellID]bool)
	for _, c := range cells {
		seen[c] = true
	}
	for i := 0; i < 4; i++ {
		for _, corner := range edgeNeighbors[i].EdgeNeighbors() {
			if !seen[corner] {
				cells = append(cells, corner)
				seen[corner] = true
			}
		}
	}
	return cells
}
