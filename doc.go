// Package principles is a set of small, runnable demos of object-oriented
// design principles in Go, all built around one toy workflow: fetch a sensor
// reading, decide what message it deserves, send the message.
//
// Each demo package shows the same behaviour refactored step by step:
//
//   - coupling:      ExampleStart -> ExampleMiddle -> ExampleEnd (coupling and cohesion)
//   - encapsulation: ExampleA -> ExampleB -> ExampleC (encapsulation and abstraction)
//   - ioc:           constructor injection plus a per-call result callback
//
// Shared pieces:
//   - sensor: Reading, the decision rule, Message and the Fetcher / Sender capabilities
//   - store:  Fetcher variants (HTTP, dummy, static, InfluxDB)
//   - notify: Sender variants (console, MQTT) and Prometheus instrumentation
//   - config, logging, di: what the example binaries use to pick and wire variants
//
// Runnable composition roots live under examples/<demo>/main.
package principles
