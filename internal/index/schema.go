package index

import (
	"context"
	"errors"
	"fmt"
)

const schemaVersion = 1

// ErrSchemaMismatch is returned when an existing database was created by an
// incompatible version.
var ErrSchemaMismatch = errors.New("index schema version mismatch")

const schemaSQL = `
CREATE TABLE schema_version (
	version INTEGER NOT NULL
);

CREATE TABLE extractions (
	id TEXT PRIMARY KEY,
	source_path TEXT NOT NULL UNIQUE,
	file_name TEXT NOT NULL,
	run_id TEXT,
	created_at TEXT NOT NULL,
	metadata_json TEXT NOT NULL
);

CREATE INDEX idx_extractions_file_name ON extractions(file_name);

CREATE TABLE entries (
	extraction_id TEXT NOT NULL REFERENCES extractions(id) ON DELETE CASCADE,
	section TEXT NOT NULL,
	position INTEGER NOT NULL,
	key TEXT NOT NULL,
	value TEXT,
	PRIMARY KEY (extraction_id, section, position)
);

CREATE INDEX idx_entries_key ON entries(key);
`

func (s *Store) initSchema(ctx context.Context) error {
	var tableExists int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	).Scan(&tableExists)
	if err != nil {
		return fmt.Errorf("check schema_version table: %w", err)
	}
	if tableExists == 0 {
		return s.createSchema(ctx)
	}

	var version int
	if err := s.db.QueryRowContext(ctx, "SELECT version FROM schema_version LIMIT 1").Scan(&version); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	if version != schemaVersion {
		return fmt.Errorf("%w: database has version %d, expected %d (delete %s to rebuild)",
			ErrSchemaMismatch, version, schemaVersion, s.path)
	}
	return nil
}

func (s *Store) createSchema(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_version (version) VALUES (?)", schemaVersion); err != nil {
		return fmt.Errorf("record schema version: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema: %w", err)
	}
	return nil
}
