package coupling

import (
	"context"

	"github.com/sghaida/principles/sensor"
)

// ExampleEnd receives its store and sender; it neither knows nor cares which
// implementations they are.
type ExampleEnd struct {
	store  sensor.Fetcher
	sender sensor.Sender
}

// NewExampleEnd wires the two capabilities.
func NewExampleEnd(store sensor.Fetcher, sender sensor.Sender) *ExampleEnd {
	return &ExampleEnd{store: store, sender: sender}
}

// ExecuteLogic fetches the reading for id, decides the message and sends it.
// Errors from either capability are returned as-is.
func (e *ExampleEnd) ExecuteLogic(ctx context.Context, id string) (sensor.Category, error) {
	r, err := e.store.Fetch(ctx, id)
	if err != nil {
		return "", err
	}

	message := sensor.AlertOrOK(r)

	if err := e.sender.Send(ctx, r.ID, string(message)); err != nil {
		return "", err
	}
	return message, nil
}

// ExecuteLogic is ExampleEnd as a function: the capabilities are parameters.
func ExecuteLogic(ctx context.Context, id string, getSensor sensor.FetchFunc, sendMessage sensor.SendFunc) (sensor.Category, error) {
	r, err := getSensor(ctx, id)
	if err != nil {
		return "", err
	}

	message := sensor.AlertOrOK(r)

	if err := sendMessage(ctx, r.ID, string(message)); err != nil {
		return "", err
	}
	return message, nil
}

// Compose closes over both capabilities and returns a ready-to-call flow,
// the functional counterpart of NewExampleEnd(...).ExecuteLogic.
func Compose(getSensor sensor.FetchFunc, sendMessage sensor.SendFunc) func(ctx context.Context, id string) (sensor.Category, error) {
	return func(ctx context.Context, id string) (sensor.Category, error) {
		return ExecuteLogic(ctx, id, getSensor, sendMessage)
	}
}
