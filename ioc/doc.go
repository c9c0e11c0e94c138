// Package ioc demonstrates inversion of control twice over.
//
// Normally an object finds the things it depends on and then calls them. Here:
//
//   - the data source is handed to Example at construction time
//     (dependency injection), and
//   - what to do with a reading is handed to ExecuteLogic on every call
//     (a callback), so Example never decides how results are reported.
//
// PrintHandler is the plain callback. PublishHandler reports the reading as a
// CloudEvent instead, the event-bus flavour of the same idea.
package ioc
