// Package config loads the settings the demo composition roots use to pick
// and build their capabilities.
//
// Values come from defaults, then an optional YAML file, then SENSORS_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Source names.
const (
	SourceStub   = "stub"
	SourceDummy  = "dummy"
	SourceLive   = "live"
	SourceInflux = "influx"
)

// Sender names.
const (
	SenderConsole = "console"
	SenderMQTT    = "mqtt"
)

// Config holds everything the demo binaries can be tuned with.
type Config struct {
	Env      string `yaml:"env"`
	LogLevel string `yaml:"log_level"`

	// Source selects the sensor.Fetcher: stub, dummy, live or influx.
	Source string `yaml:"source"`
	// Sender selects the sensor.Sender: console or mqtt.
	Sender string `yaml:"sender"`

	SensorBaseURL string        `yaml:"sensor_base_url"`
	HTTPTimeout   time.Duration `yaml:"http_timeout"`

	Mail   MailConfig   `yaml:"mail"`
	Influx InfluxConfig `yaml:"influx"`
	MQTT   MQTTConfig   `yaml:"mqtt"`
	Events EventsConfig `yaml:"events"`
}

// MailConfig sets the headers of outbound messages.
type MailConfig struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// InfluxConfig is only required when Source is influx.
type InfluxConfig struct {
	URL         string        `yaml:"url"`
	Token       string        `yaml:"token"`
	Org         string        `yaml:"org"`
	Bucket      string        `yaml:"bucket"`
	Measurement string        `yaml:"measurement"`
	Lookback    time.Duration `yaml:"lookback"`
}

// MQTTConfig is only required when Sender is mqtt.
type MQTTConfig struct {
	Broker         string        `yaml:"broker"`
	ClientID       string        `yaml:"client_id"`
	TopicPrefix    string        `yaml:"topic_prefix"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
}

// EventsConfig drives the CloudEvents publisher of the ioc example. An empty
// Target logs events instead of sending them.
type EventsConfig struct {
	Target string `yaml:"target"`
	Source string `yaml:"source"`
}

// Default returns the settings the demos run with out of the box: stub data,
// console output, no network.
func Default() Config {
	return Config{
		Env:           "local",
		LogLevel:      "info",
		Source:        SourceStub,
		Sender:        SenderConsole,
		SensorBaseURL: "https://dummy-sensors.azurewebsites.net/api/sensor",
		HTTPTimeout:   10 * time.Second,
		Mail: MailConfig{
			From: "alert@me.com",
			To:   "receiver@you.com",
		},
		Influx: InfluxConfig{
			Measurement: "sensor",
			Lookback:    30 * 24 * time.Hour,
		},
		MQTT: MQTTConfig{
			ClientID:       "sensor-alerts",
			TopicPrefix:    "sensors/alerts",
			PublishTimeout: 5 * time.Second,
		},
		Events: EventsConfig{
			Source: "/sensors/ioc",
		},
	}
}

// LoadFromEnv applies SENSORS_* variables on top of Default.
func LoadFromEnv() (Config, error) {
	cfg := Default()
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile reads a YAML file on top of Default, then applies SENSORS_* variables.
func LoadFile(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return parse(b)
}

// Load uses LoadFile when SENSORS_CONFIG names a file, LoadFromEnv otherwise.
func Load() (Config, error) {
	if p := os.Getenv("SENSORS_CONFIG"); p != "" {
		return LoadFile(p)
	}
	return LoadFromEnv()
}

func parse(b []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse yaml: %w", err)
	}
	applyEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the selected variants have what they need.
func (c Config) Validate() error {
	var errs []error

	switch c.Source {
	case SourceStub, SourceDummy:
	case SourceLive:
		if strings.TrimSpace(c.SensorBaseURL) == "" {
			errs = append(errs, errors.New("sensor_base_url is required for source live"))
		}
	case SourceInflux:
		if c.Influx.URL == "" || c.Influx.Token == "" || c.Influx.Org == "" || c.Influx.Bucket == "" {
			errs = append(errs, errors.New("influx url, token, org and bucket are required for source influx"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown source %q", c.Source))
	}

	switch c.Sender {
	case SenderConsole:
	case SenderMQTT:
		if c.MQTT.Broker == "" {
			errs = append(errs, errors.New("mqtt broker is required for sender mqtt"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown sender %q", c.Sender))
	}

	if strings.TrimSpace(c.Events.Source) == "" {
		errs = append(errs, errors.New("events source is required"))
	}

	if c.HTTPTimeout <= 0 {
		errs = append(errs, errors.New("http_timeout must be > 0"))
	}
	if c.MQTT.PublishTimeout <= 0 {
		errs = append(errs, errors.New("mqtt publish_timeout must be > 0"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func applyEnv(c *Config) {
	c.Env = getenv("SENSORS_ENV", c.Env)
	c.LogLevel = getenv("SENSORS_LOG_LEVEL", c.LogLevel)
	c.Source = getenv("SENSORS_SOURCE", c.Source)
	c.Sender = getenv("SENSORS_SENDER", c.Sender)
	c.SensorBaseURL = getenv("SENSORS_BASE_URL", c.SensorBaseURL)
	c.HTTPTimeout = getenvDuration("SENSORS_HTTP_TIMEOUT", c.HTTPTimeout)

	c.Mail.From = getenv("SENSORS_MAIL_FROM", c.Mail.From)
	c.Mail.To = getenv("SENSORS_MAIL_TO", c.Mail.To)

	c.Influx.URL = getenv("SENSORS_INFLUX_URL", c.Influx.URL)
	c.Influx.Token = getenv("SENSORS_INFLUX_TOKEN", c.Influx.Token)
	c.Influx.Org = getenv("SENSORS_INFLUX_ORG", c.Influx.Org)
	c.Influx.Bucket = getenv("SENSORS_INFLUX_BUCKET", c.Influx.Bucket)
	c.Influx.Measurement = getenv("SENSORS_INFLUX_MEASUREMENT", c.Influx.Measurement)

	c.MQTT.Broker = getenv("SENSORS_MQTT_BROKER", c.MQTT.Broker)
	c.MQTT.ClientID = getenv("SENSORS_MQTT_CLIENT_ID", c.MQTT.ClientID)
	c.MQTT.TopicPrefix = getenv("SENSORS_MQTT_TOPIC_PREFIX", c.MQTT.TopicPrefix)
	c.MQTT.PublishTimeout = getenvDuration("SENSORS_MQTT_PUBLISH_TIMEOUT", c.MQTT.PublishTimeout)

	c.Events.Target = getenv("SENSORS_EVENTS_TARGET", c.Events.Target)
	c.Events.Source = getenv("SENSORS_EVENTS_SOURCE", c.Events.Source)
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getenvDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	// bare numbers are milliseconds
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Millisecond
	}
	return def
}
