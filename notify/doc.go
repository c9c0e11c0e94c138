// Package notify contains the notification variants used by the demos.
//
// Every variant satisfies sensor.Sender:
//
//   - ConsoleSender: prints the email-shaped message (stand-in for SMTP)
//   - MQTTSender:    publishes the message as JSON on an MQTT topic
//
// Instrument decorates any Sender with Prometheus counters, which is also a
// convenient demonstration that orchestrators accept any Sender unchanged.
package notify
