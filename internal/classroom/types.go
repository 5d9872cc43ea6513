// Package classroom defines the classroom inventory types, the query
// parameter mapper, and the HTTP client for the backend inventory service.
package classroom

import "encoding/json"

// Record is one classroom returned by the backend. Building, Room and
// SeatCount are the fields the core reads; everything else rides along in
// Extra untouched.
type Record struct {
	Building  string `json:"building"`
	Room      string `json:"room"`
	SeatCount int    `json:"seatCount"`

	// Extra holds amenity fields the core passes through unmodified.
	Extra map[string]json.RawMessage `json:"-"`

	// Distance augmentation, populated by the ranker. Zero values mean
	// the record has not been ranked.
	DistanceMeters int    `json:"distanceMeters,omitempty"`
	DistanceText   string `json:"distanceText,omitempty"`
	DurationText   string `json:"durationText,omitempty"`
}

// knownKeys are the record fields decoded into struct fields rather than Extra.
var knownKeys = map[string]bool{
	"building":       true,
	"room":           true,
	"seatCount":      true,
	"distanceMeters": true,
	"distanceText":   true,
	"durationText":   true,
}

// UnmarshalJSON decodes the known fields and stashes everything else in Extra.
func (r *Record) UnmarshalJSON(data []byte) error {
	type plain Record
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for k := range raw {
		if knownKeys[k] {
			delete(raw, k)
		}
	}
	if len(raw) == 0 {
		raw = nil
	}

	*r = Record(p)
	r.Extra = raw
	return nil
}

// MarshalJSON re-inlines Extra alongside the known fields.
func (r Record) MarshalJSON() ([]byte, error) {
	type plain Record
	base, err := json.Marshal(plain(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range r.Extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// HasDistance reports whether the record carries distance augmentation.
func (r Record) HasDistance() bool {
	return r.DistanceText != "" || r.DurationText != "" || r.DistanceMeters > 0
}
