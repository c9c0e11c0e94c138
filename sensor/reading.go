package sensor

import "strconv"

// Reading is a single value reported by a sensor.
//
// The JSON shape matches the remote sensor API: {"id": "...", "data": 12.5}.
type Reading struct {
	ID   string  `json:"id"`
	Data float64 `json:"data"`
}

// IsZero reports whether r carries no reading at all.
func (r Reading) IsZero() bool { return r == Reading{} }

// String renders the reading as "<id>: <data>".
func (r Reading) String() string {
	return r.ID + ": " + strconv.FormatFloat(r.Data, 'f', -1, 64)
}
