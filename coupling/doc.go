// Package coupling walks one workflow (fetch a reading, decide alert or ok,
// send a message) through three levels of coupling.
//
//   - ExampleStart: high coupling, low cohesion. HTTP fetch, decision and
//     message delivery all live in one method.
//   - ExampleMiddle: high cohesion, still coupled. Fetching and sending moved
//     to store.HTTPStore and notify.ConsoleSender, but the example builds them
//     itself.
//   - ExampleEnd: low coupling, high cohesion. The store and the sender are
//     handed in at construction time; any sensor.Fetcher / sensor.Sender works.
//
// ExecuteLogic and Compose are the same flow without structs: the two
// capabilities are plain functions and Compose closes over them.
package coupling
