package store

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/sghaida/principles/sensor"
)

// DefaultBaseURL is the public dummy sensor API the demos were written against.
const DefaultBaseURL = "https://dummy-sensors.azurewebsites.net/api/sensor"

// DefaultTimeout bounds a single HTTP fetch when no client is supplied.
const DefaultTimeout = 10 * time.Second

// StatusError reports a non-2xx answer from the sensor API.
type StatusError struct{ Code int }

// Error implements the error interface.
func (e StatusError) Error() string {
	return "store: unexpected status " + strconv.Itoa(e.Code)
}

// HTTPStore fetches readings from GET {baseURL}/{id}.
type HTTPStore struct {
	baseURL string
	client  *http.Client
	log     zerolog.Logger
}

// NewHTTPStore builds a store for baseURL. A nil client gets a default client
// with DefaultTimeout.
func NewHTTPStore(baseURL string, client *http.Client) *HTTPStore {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &HTTPStore{
		baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		client:  client,
		log:     zerolog.Nop(),
	}
}

// SetLogger wires an optional logger.
func (s *HTTPStore) SetLogger(l zerolog.Logger) { s.log = l }

// BaseURL returns the normalized base URL.
func (s *HTTPStore) BaseURL() string { return s.baseURL }

// Fetch implements sensor.Fetcher.
func (s *HTTPStore) Fetch(ctx context.Context, id string) (sensor.Reading, error) {
	if id == "" {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: sensor.ErrEmptyID}
	}

	target := s.baseURL + "/" + url.PathEscape(id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.log.Debug().Err(err).Str("url", target).Msg("sensor request failed")
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: StatusError{Code: resp.StatusCode}}
	}

	var r sensor.Reading
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return sensor.Reading{}, &sensor.RetrievalError{ID: id, Err: err}
	}

	s.log.Debug().Str("sensor_id", r.ID).Float64("data", r.Data).Msg("sensor reading fetched")
	return r, nil
}

// GetSensor returns the live HTTP fetch as a plain function.
func GetSensor(baseURL string, client *http.Client) sensor.FetchFunc {
	return NewHTTPStore(baseURL, client).Fetch
}
