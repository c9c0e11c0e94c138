package store

import (
	"context"

	"github.com/sghaida/principles/sensor"
)

// DummyData is the value every DummyStore reading carries.
const DummyData = 40

// DummyStore answers every id with {id: "dummy-sensor-<id>", data: 40}.
type DummyStore struct{}

// Fetch implements sensor.Fetcher.
func (DummyStore) Fetch(ctx context.Context, id string) (sensor.Reading, error) {
	return GetSensorDummy(ctx, id)
}

// GetSensorDummy is DummyStore as a plain function.
func GetSensorDummy(_ context.Context, id string) (sensor.Reading, error) {
	if id == "" {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: sensor.ErrEmptyID}
	}
	return sensor.Reading{ID: "dummy-sensor-" + id, Data: DummyData}, nil
}

// StaticStore returns Reading for every id. A zero Reading models a source
// that has nothing to report.
type StaticStore struct {
	Reading sensor.Reading
}

// Fetch implements sensor.Fetcher.
func (s StaticStore) Fetch(_ context.Context, id string) (sensor.Reading, error) {
	if id == "" {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: sensor.ErrEmptyID}
	}
	return s.Reading, nil
}
