package store_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/sghaida/principles/sensor"
	"github.com/sghaida/principles/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeQuerier answers every query with a canned annotated CSV response.
type fakeQuerier struct {
	csv     string
	err     error
	queries []string
}

func (f *fakeQuerier) Query(_ context.Context, q string) (*api.QueryTableResult, error) {
	f.queries = append(f.queries, q)
	if f.err != nil {
		return nil, f.err
	}
	return api.NewQueryTableResult(io.NopCloser(strings.NewReader(f.csv))), nil
}

const oneRowCSV = `#datatype,string,long,dateTime:RFC3339,dateTime:RFC3339,dateTime:RFC3339,double,string,string,string
#group,false,false,true,true,false,false,true,true,true
#default,_result,,,,,,,,
,result,table,_start,_stop,_time,_value,_field,_measurement,sensor_id
,,0,2020-02-17T22:19:49.747562847Z,2020-02-18T22:19:49.747562847Z,2020-02-18T10:34:08.135814545Z,42.5,data,sensor,acdc1

`

func TestInfluxStore_Fetch_LastValue(t *testing.T) {
	t.Parallel()

	q := &fakeQuerier{csv: oneRowCSV}
	s := store.NewInfluxStore(q, "sensors", "sensor")
	s.SetLookback(time.Hour)

	r, err := s.Fetch(context.Background(), "acdc1")
	require.NoError(t, err)
	assert.Equal(t, sensor.Reading{ID: "acdc1", Data: 42.5}, r)

	require.Len(t, q.queries, 1)
	assert.Contains(t, q.queries[0], `from(bucket: "sensors")`)
	assert.Contains(t, q.queries[0], `range(start: -3600s)`)
	assert.Contains(t, q.queries[0], `r._measurement == "sensor"`)
	assert.Contains(t, q.queries[0], `r.sensor_id == "acdc1"`)
	assert.Contains(t, q.queries[0], `|> last()`)
}

func TestInfluxStore_Fetch_Failures(t *testing.T) {
	t.Parallel()

	boom := errors.New("influx down")

	tests := []struct {
		name   string
		q      *fakeQuerier
		id     string
		wantIs error
	}{
		{name: "query error", q: &fakeQuerier{err: boom}, id: "acdc1", wantIs: boom},
		{name: "no rows", q: &fakeQuerier{csv: ""}, id: "acdc1", wantIs: sensor.ErrNoReading},
		{name: "empty id", q: &fakeQuerier{csv: oneRowCSV}, id: "", wantIs: sensor.ErrEmptyID},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := store.NewInfluxStore(tc.q, "sensors", "sensor").Fetch(context.Background(), tc.id)

			var re *sensor.RetrievalError
			require.True(t, errors.As(err, &re))
			assert.ErrorIs(t, err, tc.wantIs)
		})
	}
}
