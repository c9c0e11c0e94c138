package notify

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/sghaida/principles/sensor"
)

// Values of the outcome label.
const (
	// OutcomeDelivered counts sends that returned no error.
	OutcomeDelivered = "delivered"
	// OutcomeFailed counts sends that returned an error.
	OutcomeFailed = "failed"
)

// Metrics holds the notification counters.
type Metrics struct {
	notifications *prometheus.CounterVec
}

// NewMetrics registers the counters on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	cv := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sensor",
			Name:      "notifications_total",
			Help:      "Notifications handed to a sender, by message category and outcome.",
		},
		[]string{"category", "outcome"},
	)
	if err := reg.Register(cv); err != nil {
		return nil, err
	}
	return &Metrics{notifications: cv}, nil
}

// Notifications exposes the underlying counter vector.
func (m *Metrics) Notifications() *prometheus.CounterVec { return m.notifications }

// Instrument wraps next so every Send is counted by body and outcome.
// Errors from next are returned unchanged.
func Instrument(next sensor.Sender, m *Metrics) sensor.Sender {
	return sensor.SendFunc(func(ctx context.Context, id, body string) error {
		err := next.Send(ctx, id, body)
		outcome := OutcomeDelivered
		if err != nil {
			outcome = OutcomeFailed
		}
		m.notifications.WithLabelValues(body, outcome).Inc()
		return err
	})
}

// Totals gathers g and sums the notification counters into
// "<category>/<outcome>" keys.
func Totals(g prometheus.Gatherer) (map[string]float64, error) {
	mfs, err := g.Gather()
	if err != nil {
		return nil, err
	}

	out := map[string]float64{}
	for _, mf := range mfs {
		if mf.GetName() != "sensor_notifications_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			var category, outcome string
			for _, lp := range m.GetLabel() {
				switch lp.GetName() {
				case "category":
					category = lp.GetValue()
				case "outcome":
					outcome = lp.GetValue()
				}
			}
			out[category+"/"+outcome] += m.GetCounter().GetValue()
		}
	}
	return out, nil
}
