package notify

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/sghaida/principles/sensor"
)

// ConsoleSender writes "Sent: <message>" to an io.Writer instead of talking
// to an SMTP server.
type ConsoleSender struct {
	out  io.Writer
	from string
	to   string
	log  zerolog.Logger
}

// NewConsoleSender builds a sender writing to out (os.Stdout when nil).
func NewConsoleSender(out io.Writer) *ConsoleSender {
	if out == nil {
		out = os.Stdout
	}
	return &ConsoleSender{out: out, log: zerolog.Nop()}
}

// SetAddresses overrides the From / To headers. Empty values keep the defaults.
func (s *ConsoleSender) SetAddresses(from, to string) {
	s.from = from
	s.to = to
}

// SetLogger wires an optional logger.
func (s *ConsoleSender) SetLogger(l zerolog.Logger) { s.log = l }

// Send implements sensor.Sender.
func (s *ConsoleSender) Send(_ context.Context, id, body string) error {
	if id == "" {
		return &sensor.DeliveryError{ID: id, Err: sensor.ErrEmptyID}
	}

	msg := sensor.NewMessage(id, body, s.from, s.to)
	if _, err := io.WriteString(s.out, "Sent: "+msg.String()); err != nil {
		return &sensor.DeliveryError{ID: id, Err: err}
	}

	s.log.Debug().Str("sensor_id", id).Str("body", body).Msg("message printed")
	return nil
}
