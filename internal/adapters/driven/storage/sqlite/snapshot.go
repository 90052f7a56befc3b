package sqlite

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofrs/flock"

	"github.com/custodia-labs/capseek/internal/core/domain"
	"github.com/custodia-labs/capseek/internal/core/ports/driven"
	"github.com/custodia-labs/capseek/internal/logger"
)

// lockRetryDelay is the pause between attempts to take the writer lock.
const lockRetryDelay = 100 * time.Millisecond

// snapshotStore implements driven.SnapshotStore.
type snapshotStore struct {
	store *Store
}

var _ driven.SnapshotStore = (*snapshotStore)(nil)

// Replace swaps the stored entries of one source in a single transaction.
// Writers in other processes are serialised through the lock file.
func (s *snapshotStore) Replace(ctx context.Context, source domain.Source, entries []domain.CatalogEntry) error {
	unlock, err := s.store.acquireLock(ctx)
	if err != nil {
		return err
	}
	defer unlock()

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM catalog_entries WHERE source = ?", string(source)); err != nil {
		return fmt.Errorf("clearing %s entries: %w", source, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO catalog_entries (source, position, name, category, data)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("marshalling entry %s: %w", e.Name, err)
		}
		if _, err := stmt.ExecContext(ctx, string(source), i, e.Name, e.Category, string(data)); err != nil {
			return fmt.Errorf("inserting entry %s: %w", e.Name, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO catalog_sources (source, entries, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(source) DO UPDATE SET
			entries = excluded.entries,
			updated_at = excluded.updated_at
	`, string(source), len(entries), time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("updating %s status: %w", source, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s entries: %w", source, err)
	}
	logger.Debug("snapshot: stored %d %s entries", len(entries), source)
	return nil
}

// Entries returns the stored entries of one source in insertion order.
func (s *snapshotStore) Entries(ctx context.Context, source domain.Source) ([]domain.CatalogEntry, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT data FROM catalog_entries WHERE source = ? ORDER BY position", string(source))
	if err != nil {
		return nil, fmt.Errorf("querying %s entries: %w", source, err)
	}
	defer rows.Close()

	var entries []domain.CatalogEntry //nolint:prealloc // size unknown from query
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		var e domain.CatalogEntry
		if err := json.Unmarshal([]byte(data), &e); err != nil {
			return nil, fmt.Errorf("unmarshalling entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

// Status summarises every source that has stored entries, in priority order.
func (s *snapshotStore) Status(ctx context.Context) ([]domain.SnapshotInfo, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT source, entries, updated_at FROM catalog_sources")
	if err != nil {
		return nil, fmt.Errorf("querying snapshot status: %w", err)
	}
	defer rows.Close()

	var infos []domain.SnapshotInfo //nolint:prealloc // size unknown from query
	for rows.Next() {
		var (
			source    string
			count     int
			updatedAt string
		)
		if err := rows.Scan(&source, &count, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning status: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing %s timestamp: %w", source, err)
		}
		infos = append(infos, domain.SnapshotInfo{
			Source:    domain.Source(source),
			Entries:   count,
			UpdatedAt: ts,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating status: %w", err)
	}

	sources := make([]domain.Source, len(infos))
	byName := make(map[domain.Source]domain.SnapshotInfo, len(infos))
	for i, info := range infos {
		sources[i] = info.Source
		byName[info.Source] = info
	}
	domain.SortSources(sources)
	for i, src := range sources {
		infos[i] = byName[src]
	}
	return infos, nil
}

// Close closes the underlying store.
func (s *snapshotStore) Close() error {
	return s.store.Close()
}

// acquireLock takes the cross-process writer lock, retrying until the
// store's lock timeout or ctx expires.
func (s *Store) acquireLock(ctx context.Context) (func(), error) {
	ctx, cancel := context.WithTimeout(ctx, s.lockTimeout)
	defer cancel()

	l := flock.New(s.lockPath)
	locked, err := l.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("another import is in progress (lock: %s): %w", s.lockPath, err)
	}
	if !locked {
		return nil, fmt.Errorf("another import is in progress (lock: %s)", s.lockPath)
	}
	return func() { _ = l.Unlock() }, nil
}
