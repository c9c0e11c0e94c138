package encapsulation

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/sghaida/principles/sensor"
	"github.com/sghaida/principles/store"
)

func writer(out io.Writer) io.Writer {
	if out == nil {
		return os.Stdout
	}
	return out
}

func printReading(out io.Writer, r sensor.Reading) error {
	_, err := io.WriteString(writer(out), r.String()+"\n")
	return err
}

// ExampleA knows the URL, the transport and the payload format.
type ExampleA struct {
	BaseURL string
	Out     io.Writer
}

// ExecuteLogic prints the reading for id.
func (e ExampleA) ExecuteLogic(ctx context.Context, id string) error {
	if id == "" {
		return &sensor.RetrievalError{ID: id, Err: sensor.ErrEmptyID}
	}
	base := e.BaseURL
	if base == "" {
		base = store.DefaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/"+url.PathEscape(id), nil)
	if err != nil {
		return &sensor.RetrievalError{ID: id, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return &sensor.RetrievalError{ID: id, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &sensor.RetrievalError{ID: id, Err: store.StatusError{Code: resp.StatusCode}}
	}
	var r sensor.Reading
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return &sensor.RetrievalError{ID: id, Err: err}
	}
	return printReading(e.Out, r)
}

// ExampleB uses the HTTPStore abstraction but still creates it.
type ExampleB struct {
	BaseURL string
	Out     io.Writer
}

// ExecuteLogic prints the reading for id.
func (e ExampleB) ExecuteLogic(ctx context.Context, id string) error {
	base := e.BaseURL
	if base == "" {
		base = store.DefaultBaseURL
	}
	r, err := store.NewHTTPStore(base, nil).Fetch(ctx, id)
	if err != nil {
		return err
	}
	return printReading(e.Out, r)
}

// ExampleC only sees a sensor.Fetcher; where the reading comes from does not matter.
type ExampleC struct {
	store sensor.Fetcher
	out   io.Writer
}

// NewExampleC builds the example; a nil out prints to os.Stdout.
func NewExampleC(fetcher sensor.Fetcher, out io.Writer) *ExampleC {
	return &ExampleC{store: fetcher, out: out}
}

// ExecuteLogic prints the reading for id.
func (e *ExampleC) ExecuteLogic(ctx context.Context, id string) error {
	r, err := e.store.Fetch(ctx, id)
	if err != nil {
		return err
	}
	return printReading(e.out, r)
}

// ExecuteLogicA is ExampleC with the capability passed as a function.
func ExecuteLogicA(ctx context.Context, id string, getSensor sensor.FetchFunc, out io.Writer) error {
	r, err := getSensor(ctx, id)
	if err != nil {
		return err
	}
	return printReading(out, r)
}

// Bind fixes getSensor and out, the functional counterpart of NewExampleC.
func Bind(getSensor sensor.FetchFunc, out io.Writer) func(ctx context.Context, id string) error {
	return func(ctx context.Context, id string) error {
		return ExecuteLogicA(ctx, id, getSensor, out)
	}
}
