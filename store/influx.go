package store

import (
	"context"
	"strconv"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/rs/zerolog"

	"github.com/sghaida/principles/sensor"
)

// DefaultLookback is how far back InfluxStore searches for the last value.
const DefaultLookback = 30 * 24 * time.Hour

// Querier is the part of the InfluxDB query API InfluxStore needs.
// api.QueryAPI satisfies it.
type Querier interface {
	Query(ctx context.Context, query string) (*api.QueryTableResult, error)
}

// InfluxStore reads the latest "data" field of a measurement, tagged with
// sensor_id, from an InfluxDB bucket.
type InfluxStore struct {
	q           Querier
	bucket      string
	measurement string
	lookback    time.Duration
	log         zerolog.Logger
}

// NewInfluxStore builds a store on top of an existing query API.
func NewInfluxStore(q Querier, bucket, measurement string) *InfluxStore {
	return &InfluxStore{
		q:           q,
		bucket:      bucket,
		measurement: measurement,
		lookback:    DefaultLookback,
		log:         zerolog.Nop(),
	}
}

// NewInfluxStoreFromClient is NewInfluxStore on client.QueryAPI(org).
func NewInfluxStoreFromClient(client influxdb2.Client, org, bucket, measurement string) *InfluxStore {
	return NewInfluxStore(client.QueryAPI(org), bucket, measurement)
}

// SetLogger wires an optional logger.
func (s *InfluxStore) SetLogger(l zerolog.Logger) { s.log = l }

// SetLookback changes the search window; non-positive values are ignored.
func (s *InfluxStore) SetLookback(d time.Duration) {
	if d > 0 {
		s.lookback = d
	}
}

// Fetch implements sensor.Fetcher.
func (s *InfluxStore) Fetch(ctx context.Context, id string) (sensor.Reading, error) {
	if id == "" {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: sensor.ErrEmptyID}
	}

	res, err := s.q.Query(ctx, s.query(id))
	if err != nil {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: err}
	}
	defer res.Close()

	for res.Next() {
		v, ok := toFloat(res.Record().Value())
		if !ok {
			continue
		}
		s.log.Debug().Str("sensor_id", id).Float64("data", v).Msg("influx reading fetched")
		return sensor.Reading{ID: id, Data: v}, nil
	}
	if err := res.Err(); err != nil {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: err}
	}
	return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: sensor.ErrNoReading}
}

func (s *InfluxStore) query(id string) string {
	var b strings.Builder
	b.WriteString("from(bucket: ")
	b.WriteString(strconv.Quote(s.bucket))
	b.WriteString(")\n  |> range(start: -")
	b.WriteString(strconv.FormatInt(int64(s.lookback/time.Second), 10))
	b.WriteString("s)\n  |> filter(fn: (r) => r._measurement == ")
	b.WriteString(strconv.Quote(s.measurement))
	b.WriteString(" and r._field == \"data\" and r.sensor_id == ")
	b.WriteString(strconv.Quote(id))
	b.WriteString(")\n  |> last()")
	return b.String()
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
