// Package sqlite provides the durable key-value store backing all
// repositories.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation
// that requires no CGO, enabling easy cross-compilation. The store is a
// single key/value table: each logical collection (cards, contacts,
// settings, draft) serialises to JSON under one key, and every write
// replaces the whole value for that key. SQLite gives per-key write
// atomicity; there is deliberately no cross-key transactionality, which
// matches the storage contract the services are written against.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in
// the migrations/ directory.
//
// # Data Location
//
// By default, the database is stored at ~/.dropcard/data/dropcard.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
