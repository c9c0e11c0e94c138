package store_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/sghaida/principles/sensor"
	"github.com/sghaida/principles/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newSensorAPI answers every request with status and body and records the request paths.
func newSensorAPI(t *testing.T, status int, body string) (*httptest.Server, func() []string) {
	t.Helper()

	var (
		mu    sync.Mutex
		paths []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.URL.Path)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []string {
		mu.Lock()
		defer mu.Unlock()
		return append([]string(nil), paths...)
	}
}

func TestHTTPStore_Fetch_OK(t *testing.T) {
	t.Parallel()

	srv, paths := newSensorAPI(t, http.StatusOK, `{"id":"acdc1","data":31.5}`)

	s := store.NewHTTPStore(srv.URL+"/api/sensor/", srv.Client())
	assert.Equal(t, srv.URL+"/api/sensor", s.BaseURL())

	r, err := s.Fetch(context.Background(), "acdc1")
	require.NoError(t, err)
	assert.Equal(t, sensor.Reading{ID: "acdc1", Data: 31.5}, r)
	assert.Equal(t, []string{"/api/sensor/acdc1"}, paths())
}

func TestHTTPStore_Fetch_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		id     string
		check  func(t *testing.T, err error)
	}{
		{
			name:   "non 2xx status",
			status: http.StatusNotFound,
			body:   `{}`,
			id:     "missing",
			check: func(t *testing.T, err error) {
				var se store.StatusError
				require.True(t, errors.As(err, &se))
				assert.Equal(t, http.StatusNotFound, se.Code)
				assert.Equal(t, "store: unexpected status 404", se.Error())
			},
		},
		{
			name:   "unparseable body",
			status: http.StatusOK,
			body:   `not-json`,
			id:     "acdc1",
			check:  func(t *testing.T, err error) { assert.Contains(t, err.Error(), `retrieve "acdc1"`) },
		},
		{
			name:   "empty id",
			status: http.StatusOK,
			body:   `{"id":"x","data":1}`,
			id:     "",
			check:  func(t *testing.T, err error) { assert.ErrorIs(t, err, sensor.ErrEmptyID) },
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			srv, _ := newSensorAPI(t, tc.status, tc.body)
			_, err := store.NewHTTPStore(srv.URL, srv.Client()).Fetch(context.Background(), tc.id)
			require.Error(t, err)

			var re *sensor.RetrievalError
			require.True(t, errors.As(err, &re))
			assert.Equal(t, tc.id, re.ID)
			tc.check(t, err)
		})
	}
}

func TestHTTPStore_Fetch_TransportFailure(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	_, err := store.NewHTTPStore(base, nil).Fetch(context.Background(), "acdc1")

	var re *sensor.RetrievalError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, "acdc1", re.ID)
}

func TestGetSensor_FunctionMatchesStore(t *testing.T) {
	t.Parallel()

	srv, _ := newSensorAPI(t, http.StatusOK, `{"id":"iddqd","data":12}`)

	fromFunc, err := store.GetSensor(srv.URL, srv.Client())(context.Background(), "iddqd")
	require.NoError(t, err)

	fromStore, err := store.NewHTTPStore(srv.URL, srv.Client()).Fetch(context.Background(), "iddqd")
	require.NoError(t, err)

	assert.Equal(t, fromStore, fromFunc)
}
