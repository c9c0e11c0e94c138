package sensor

import (
	"errors"
	"strconv"
)

var (
	// ErrEmptyID is returned when a capability is called without an identifier.
	ErrEmptyID = errors.New("sensor: empty sensor id")

	// ErrNoReading is returned by sources that found nothing for the identifier.
	ErrNoReading = errors.New("sensor: no reading")
)

// RetrievalError is returned by a Fetcher when the reading could not be
// obtained (transport failure, bad status, unparseable payload, empty result).
type RetrievalError struct {
	ID  string
	Err error
}

// Error implements the error interface.
func (e *RetrievalError) Error() string {
	// Example: sensor: retrieve "acdc1": unexpected status 404
	return "sensor: retrieve " + strconv.Quote(e.ID) + ": " + errString(e.Err)
}

// Unwrap returns the underlying cause.
func (e *RetrievalError) Unwrap() error { return e.Err }

// DeliveryError is returned by a Sender (or result handler) when the
// notification could not be handed to its transport.
type DeliveryError struct {
	ID  string
	Err error
}

// Error implements the error interface.
func (e *DeliveryError) Error() string {
	// Example: sensor: deliver "acdc1": connection refused
	return "sensor: deliver " + strconv.Quote(e.ID) + ": " + errString(e.Err)
}

// Unwrap returns the underlying cause.
func (e *DeliveryError) Unwrap() error { return e.Err }

func errString(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
