package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

// destinationRequest is the decode request body: {"destination": "..."}.
type destinationRequest struct {
	Destination *string `json:"destination"`
}

// destinationResponse mirrors the shape the map client has always consumed.
// Coordinates are pointers so a port on the equator or prime meridian still
// serializes, while unmatched responses omit the location fields entirely.
type destinationResponse struct {
	ReportedDestination string   `json:"reportedDestination"`
	Locode              string   `json:"locode,omitempty"`
	Port                string   `json:"port,omitempty"`
	Country             string   `json:"country,omitempty"`
	Lat                 *float64 `json:"lat,omitempty"`
	Lon                 *float64 `json:"lon,omitempty"`
	Matched             bool     `json:"matched"`
}

func (s *Server) handleDestination(w http.ResponseWriter, r *http.Request) {
	var req destinationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Destination == nil {
		writeError(w, http.StatusBadRequest, "Missing 'destination'")
		return
	}

	start := time.Now()
	result := s.decoder.Decode(*req.Destination)
	s.metrics.DecodeDuration.Observe(time.Since(start).Seconds())

	resp := destinationResponse{
		ReportedDestination: result.RawInput,
		Matched:             result.Matched(),
	}
	if result.Matched() {
		rec := result.Record
		resp.Locode = rec.Code
		resp.Port = rec.PortName
		resp.Country = rec.Country
		resp.Lat = &rec.Latitude
		resp.Lon = &rec.Longitude
		s.metrics.DecodeRequests.WithLabelValues("matched").Inc()
	} else {
		s.metrics.DecodeRequests.WithLabelValues("unmatched").Inc()
	}

	s.logger.Debug("destination decoded",
		"destination", result.RawInput, "matched", resp.Matched, "locode", resp.Locode)
	writeJSON(w, http.StatusOK, resp)
}

// nearestResponse is the nearest-port lookup result for a vessel position.
type nearestResponse struct {
	Locode  string  `json:"locode"`
	Port    string  `json:"port"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Found   bool    `json:"found"`
}

func (s *Server) handleNearest(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		writeError(w, http.StatusBadRequest, "lat and lon query parameters are required")
		return
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		writeError(w, http.StatusBadRequest, "lat/lon out of range")
		return
	}

	rec, ok := s.registry.NearestPort(lat, lon)
	if !ok {
		writeJSON(w, http.StatusOK, nearestResponse{Found: false})
		return
	}
	writeJSON(w, http.StatusOK, nearestResponse{
		Locode:  rec.Code,
		Port:    rec.PortName,
		Country: rec.Country,
		Lat:     rec.Latitude,
		Lon:     rec.Longitude,
		Found:   true,
	})
}
