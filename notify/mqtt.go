package notify

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"github.com/sghaida/principles/sensor"
)

// DefaultPublishTimeout bounds how long MQTTSender waits for a publish ack.
const DefaultPublishTimeout = 5 * time.Second

// ErrPublishTimeout is returned when the broker does not complete a publish in time.
var ErrPublishTimeout = errors.New("notify: mqtt publish timeout")

// ErrTopicLevel is returned for ids that are not a single valid MQTT topic
// level: wildcards, separators and NUL are rejected.
var ErrTopicLevel = errors.New("notify: sensor id is not a valid mqtt topic level")

// Publisher is the part of mqtt.Client MQTTSender needs.
type Publisher interface {
	Publish(topic string, qos byte, retained bool, payload interface{}) mqtt.Token
}

// MQTTSender publishes each message as JSON on "<prefix>/<id>".
type MQTTSender struct {
	pub     Publisher
	prefix  string
	qos     byte
	timeout time.Duration
	from    string
	to      string
	log     zerolog.Logger
}

// NewMQTTSender builds a sender publishing with QoS 1.
func NewMQTTSender(pub Publisher, topicPrefix string) *MQTTSender {
	return &MQTTSender{
		pub:     pub,
		prefix:  strings.TrimRight(topicPrefix, "/"),
		qos:     1,
		timeout: DefaultPublishTimeout,
		log:     zerolog.Nop(),
	}
}

// SetAddresses overrides the From / To fields of published messages.
func (s *MQTTSender) SetAddresses(from, to string) {
	s.from = from
	s.to = to
}

// SetTimeout changes the publish timeout; non-positive values are ignored.
func (s *MQTTSender) SetTimeout(d time.Duration) {
	if d > 0 {
		s.timeout = d
	}
}

// SetLogger wires an optional logger.
func (s *MQTTSender) SetLogger(l zerolog.Logger) { s.log = l }

// Topic returns the topic messages about id are published on.
func (s *MQTTSender) Topic(id string) string { return s.prefix + "/" + id }

// Send implements sensor.Sender.
func (s *MQTTSender) Send(ctx context.Context, id, body string) error {
	if id == "" {
		return &sensor.DeliveryError{ID: id, Err: sensor.ErrEmptyID}
	}
	if strings.ContainsAny(id, "+#/\x00") {
		return &sensor.DeliveryError{ID: id, Err: ErrTopicLevel}
	}

	payload, err := json.Marshal(sensor.NewMessage(id, body, s.from, s.to))
	if err != nil {
		return &sensor.DeliveryError{ID: id, Err: err}
	}

	topic := s.Topic(id)
	tok := s.pub.Publish(topic, s.qos, false, payload)

	timer := time.NewTimer(s.timeout)
	defer timer.Stop()

	select {
	case <-tok.Done():
	case <-ctx.Done():
		return &sensor.DeliveryError{ID: id, Err: ctx.Err()}
	case <-timer.C:
		return &sensor.DeliveryError{ID: id, Err: ErrPublishTimeout}
	}
	if err := tok.Error(); err != nil {
		s.log.Debug().Err(err).Str("topic", topic).Msg("mqtt publish failed")
		return &sensor.DeliveryError{ID: id, Err: err}
	}

	s.log.Debug().Str("topic", topic).Str("body", body).Msg("message published")
	return nil
}

// DialMQTT connects a paho client to broker.
func DialMQTT(broker, clientID string, timeout time.Duration) (mqtt.Client, error) {
	opts := mqtt.NewClientOptions().
		AddBroker(broker).
		SetClientID(clientID).
		SetConnectTimeout(timeout).
		SetAutoReconnect(false)

	c := mqtt.NewClient(opts)
	tok := c.Connect()
	if !tok.WaitTimeout(timeout) {
		return nil, errors.New("notify: mqtt connect timeout for " + broker)
	}
	if err := tok.Error(); err != nil {
		return nil, err
	}
	return c, nil
}
