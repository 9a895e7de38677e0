// Package memory provides in-memory implementations of driven port
// interfaces. These adapters hold all data in process memory and are
// used in tests and as lightweight stand-ins during development.
package memory
