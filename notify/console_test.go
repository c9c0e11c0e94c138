package notify_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/sghaida/principles/notify"
	"github.com/sghaida/principles/sensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConsoleSender_Send(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := notify.NewConsoleSender(&buf)

	require.NoError(t, s.Send(context.Background(), "acdc1", "alert"))

	want := "Sent: Subject: Message from sensor: acdc1\n" +
		"From: alert@me.com\n" +
		"To: receiver@you.com\n" +
		"\n" +
		"alert\n"
	assert.Equal(t, want, buf.String())
}

func TestConsoleSender_CustomAddresses(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	s := notify.NewConsoleSender(&buf)
	s.SetAddresses("ops@site.io", "oncall@site.io")

	require.NoError(t, s.Send(context.Background(), "abba5", "ok"))
	assert.Contains(t, buf.String(), "From: ops@site.io\n")
	assert.Contains(t, buf.String(), "To: oncall@site.io\n")
}

func TestConsoleSender_Errors(t *testing.T) {
	t.Parallel()

	err := notify.NewConsoleSender(failingWriter{}).Send(context.Background(), "acdc1", "ok")
	var de *sensor.DeliveryError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, "acdc1", de.ID)

	err = notify.NewConsoleSender(&bytes.Buffer{}).Send(context.Background(), "", "ok")
	assert.ErrorIs(t, err, sensor.ErrEmptyID)
}
