// Package sensor holds the shared vocabulary of the demos: the sensor Reading,
// the alert decision rule, the outbound Message and the two capabilities every
// variant is built around.
//
// The capabilities are deliberately tiny:
//
//   - Fetcher: given an identifier, produce a Reading.
//   - Sender:  given an identifier and a message body, deliver it.
//
// Orchestrators in the coupling, encapsulation and ioc packages depend on these
// interfaces (or on the FetchFunc / SendFunc adapters) and never on a concrete
// store or transport.
package sensor
