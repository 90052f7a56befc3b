// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - CatalogProvider: Lists the entries of one source
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - ResultCache: Bounded-lifetime cache of search results. Without it every search re-scores.
//   - SnapshotStore: Persisted catalog snapshot. Without it import and sync are disabled.
//   - Installer: Performs installation. The core never calls it; it is handed to callers.
//   - DocumentLoader: Reads catalog documents for import.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
