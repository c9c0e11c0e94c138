package ioc

import (
	"context"
	"time"

	cloudevents "github.com/cloudevents/sdk-go/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/sghaida/principles/sensor"
)

// EventTypeClassified is the CloudEvents type of published readings.
const EventTypeClassified = "sensor.reading.classified"

// EventSender is the part of a CloudEvents client PublishHandler needs.
// cloudevents.Client satisfies it.
type EventSender interface {
	Send(ctx context.Context, event cloudevents.Event) cloudevents.Result
}

// ClassifiedReading is the data of a published event.
type ClassifiedReading struct {
	ID       string          `json:"id"`
	Data     float64         `json:"data"`
	Category sensor.Category `json:"category"`
}

// PublishHandler classifies each reading as hot or cold and publishes it as a
// CloudEvent from source. An event that fails validation is never sent; it and
// a result that is not an ACK become a DeliveryError.
func PublishHandler(sender EventSender, source string) Handler {
	return func(ctx context.Context, r sensor.Reading) error {
		e := cloudevents.NewEvent()
		e.SetID(uuid.NewString())
		e.SetSource(source)
		e.SetType(EventTypeClassified)
		e.SetSubject(r.ID)
		e.SetTime(time.Now().UTC())

		data := ClassifiedReading{ID: r.ID, Data: r.Data, Category: sensor.HotOrCold(r)}
		if err := e.SetData(cloudevents.ApplicationJSON, data); err != nil {
			return &sensor.DeliveryError{ID: r.ID, Err: err}
		}

		if err := e.Validate(); err != nil {
			return &sensor.DeliveryError{ID: r.ID, Err: err}
		}

		if res := sender.Send(ctx, e); !cloudevents.IsACK(res) {
			return &sensor.DeliveryError{ID: r.ID, Err: res}
		}
		return nil
	}
}

// LogEventSender "publishes" events by logging them. Every send is an ACK.
type LogEventSender struct {
	Log zerolog.Logger
}

// Send implements EventSender.
func (s LogEventSender) Send(_ context.Context, e cloudevents.Event) cloudevents.Result {
	s.Log.Info().
		Str("ce_id", e.ID()).
		Str("ce_type", e.Type()).
		Str("ce_source", e.Source()).
		Str("ce_subject", e.Subject()).
		RawJSON("data", e.Data()).
		Msg("event published")
	return nil
}
