// Package sqlite persists the catalog snapshot in a SQLite database.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that requires
// no CGO, enabling easy cross-compilation. It implements driven.SnapshotStore:
// imported documents and synced remote indexes are stored per source and back
// those sources on later runs.
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql files.
// Entries are stored as JSON alongside their source, position and name.
//
// # Data Location
//
// By default, the database is stored at ~/.capseek/data/catalog.db
//
// # Thread Safety
//
// Readers rely on SQLite in WAL mode. Replace additionally holds an exclusive
// file lock (catalog.lock) so that two processes importing at once are
// serialised instead of failing with a busy database.
package sqlite
