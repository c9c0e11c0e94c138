package coupling

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

// ExampleStart does everything itself.
//
// Changing where readings come from or how messages leave means editing
// ExecuteLogic.
type ExampleStart struct {
	BaseURL string    // defaults to store.DefaultBaseURL
	Out     io.Writer // defaults to os.Stdout
}

// ExecuteLogic fetches the reading for id, decides the message and "sends" it.
func (e ExampleStart) ExecuteLogic(ctx context.Context, id string) (sensor.Category, error) {
	if id == "" {
		return "", &sensor.RetrievalError{ID: id, Err: sensor.ErrEmptyID}
	}
	base := e.BaseURL
	if base == "" {
		base = store.DefaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+"/"+url.PathEscape(id), nil) // <- bound to net/http
	if err != nil {
		return "", &sensor.RetrievalError{ID: id, Err: err}
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", &sensor.RetrievalError{ID: id, Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &sensor.RetrievalError{ID: id, Err: store.StatusError{Code: resp.StatusCode}}
	}
	var r sensor.Reading
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return "", &sensor.RetrievalError{ID: id, Err: err}
	}

	message := sensor.AlertOrOK(r)

	if r.ID == "" {
		return "", &sensor.DeliveryError{ID: r.ID, Err: sensor.ErrEmptyID}
	}
	msg := sensor.NewMessage(r.ID, string(message), "", "") // <- bound to the message format
	out := e.Out
	if out == nil {
		out = os.Stdout
	}
	if _, err := io.WriteString(out, "Sent: "+msg.String()); err != nil {
		return "", &sensor.DeliveryError{ID: r.ID, Err: err}
	}
	return message, nil
}
