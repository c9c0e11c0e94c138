package coupling

import (
	"context"
	"io"

	"github.com/sghaida/principles/notify"
	"github.com/sghaida/principles/sensor"
	"github.com/sghaida/principles/store"
)

// ExampleMiddle only decides; fetching and sending are delegated, but to
// implementations it picks on its own.
type ExampleMiddle struct {
	BaseURL string
	Out     io.Writer
}

// ExecuteLogic fetches the reading for id, decides the message and sends it.
func (e ExampleMiddle) ExecuteLogic(ctx context.Context, id string) (sensor.Category, error) {
	base := e.BaseURL
	if base == "" {
		base = store.DefaultBaseURL
	}
	sensors := store.NewHTTPStore(base, nil) // <- depends on HTTPStore
	r, err := sensors.Fetch(ctx, id)
	if err != nil {
		return "", err
	}

	message := sensor.AlertOrOK(r)

	sender := notify.NewConsoleSender(e.Out) // <- depends on ConsoleSender
	if err := sender.Send(ctx, r.ID, string(message)); err != nil {
		return "", err
	}
	return message, nil
}
