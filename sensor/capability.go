package sensor

import "context"

// Fetcher produces a Reading for a sensor identifier.
type Fetcher interface {
	Fetch(ctx context.Context, id string) (Reading, error)
}

// Sender delivers a message body about sensor id.
type Sender interface {
	Send(ctx context.Context, id, body string) error
}

// FetchFunc adapts a plain function to Fetcher.
type FetchFunc func(ctx context.Context, id string) (Reading, error)

// Fetch calls f(ctx, id).
func (f FetchFunc) Fetch(ctx context.Context, id string) (Reading, error) { return f(ctx, id) }

// SendFunc adapts a plain function to Sender.
type SendFunc func(ctx context.Context, id, body string) error

// Send calls f(ctx, id, body).
func (f SendFunc) Send(ctx context.Context, id, body string) error { return f(ctx, id, body) }
