package ioc

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/sghaida/principles/sensor"
)

// ErrNilHandler is returned when ExecuteLogic is called without a handler.
var ErrNilHandler = errors.New("ioc: nil handler")

// Handler receives a reading once it has been fetched.
type Handler func(ctx context.Context, r sensor.Reading) error

// Example fetches readings from an injected store and hands them to the
// caller's handler.
type Example struct {
	store sensor.Fetcher
}

// NewExample injects the data source.
func NewExample(store sensor.Fetcher) *Example {
	return &Example{store: store}
}

// ExecuteLogic fetches the reading for id and, if there is one, calls handle
// exactly once. handled reports whether handle was called.
func (e *Example) ExecuteLogic(ctx context.Context, id string, handle Handler) (handled bool, err error) {
	if handle == nil {
		return false, ErrNilHandler
	}

	r, err := e.store.Fetch(ctx, id)
	if err != nil {
		return false, err
	}
	if r.IsZero() {
		return false, nil
	}
	return true, handle(ctx, r)
}

// PrintHandler prints "<id>: hot|cold" to out (os.Stdout when nil).
func PrintHandler(out io.Writer) Handler {
	if out == nil {
		out = os.Stdout
	}
	return func(_ context.Context, r sensor.Reading) error {
		if _, err := io.WriteString(out, r.ID+": "+string(sensor.HotOrCold(r))+"\n"); err != nil {
			return &sensor.DeliveryError{ID: r.ID, Err: err}
		}
		return nil
	}
}
