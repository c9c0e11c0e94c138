// Package store contains the data-source variants used by the demos.
//
// Every variant satisfies sensor.Fetcher:
//
//   - HTTPStore:   live fetch of {baseURL}/{id} over HTTP + JSON
//   - DummyStore:  in-memory reading named after the requested id
//   - StaticStore: one fixed reading, whatever the id
//   - InfluxStore: last stored value from an InfluxDB bucket
//
// GetSensor and GetSensorDummy are the same capabilities shaped as plain
// functions, for the functional variants of the demos.
package store
