// Package sqlite provides a SQLite-backed implementation of the
// dictionary store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The dictionary
// holds per-token document frequencies over the whole corpus; it is
// built once by `wikifinder prepare` and read heavily by `wikifinder
// find`.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.wikifinder/data/dictionary.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
