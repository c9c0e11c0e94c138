// Package encapsulation shows a data-fetch capability being hidden behind an
// abstraction, one step at a time. Every variant prints "<id>: <data>".
//
// Encapsulation hides how something is done; abstraction describes what is
// done. ExampleA shows neither, ExampleB hides the HTTP details inside
// store.HTTPStore, ExampleC depends only on the sensor.Fetcher abstraction.
//
// ExecuteLogicA and Bind express ExampleC with functions instead of types.
package encapsulation
