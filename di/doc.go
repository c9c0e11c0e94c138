// Package di holds the small wiring helper the example composition roots use
// to turn configuration into capabilities.
//
// A Registry maps a name ("live", "stub", "mqtt", ...) to a factory. Mains
// resolve the configured name once and hand the result to an orchestrator's
// constructor; orchestrators never see the registry.
//
// There is no container, no reflection and no graph resolution: wiring stays
// explicit in main.
package di
