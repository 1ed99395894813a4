// Package index keeps a SQLite catalog of extraction results so that a
// single metadata key can be compared across many images.
package index

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/semtools/semmeta/internal/types"
)

// Sections of a stored extraction.
const (
	SectionInstrument = "instrument"
	SectionEXIF       = "exif"
)

const (
	sqliteBusyCode          = 5
	busyRetryAttempts       = 5
	busyRetryInitialBackoff = 10 * time.Millisecond
	busyRetryMaxBackoff     = 200 * time.Millisecond
	lockRetryDelay          = 50 * time.Millisecond

	// Fixed width so created_at sorts lexically.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

// ErrNotFound is returned by Get when no extraction matches.
var ErrNotFound = errors.New("extraction not found")

// Store is an extraction index backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Extraction is one stored extraction result.
type Extraction struct {
	ID         string
	SourcePath string
	RunID      string
	CreatedAt  time.Time
	Metadata   types.MergedMetadata
}

// Hit is one value of a queried key.
type Hit struct {
	SourcePath string `json:"source_path"`
	FileName   string `json:"file_name"`
	Section    string `json:"section"`
	Value      string `json:"value"`
	// Null is set when the EXIF value was absent from the image.
	Null bool `json:"null,omitempty"`
}

// Open creates or opens the index database at path.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("index path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create index directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.ExecContext(ctx, pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: path, lock: flock.New(path + ".lock")}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores m for sourcePath, replacing any earlier extraction of the
// same file. Writers from different processes are serialized with a file
// lock next to the database.
func (s *Store) Put(ctx context.Context, sourcePath, runID string, m types.MergedMetadata) (Extraction, error) {
	if sourcePath == "" {
		return Extraction{}, errors.New("source path is required")
	}
	doc, err := json.Marshal(m)
	if err != nil {
		return Extraction{}, fmt.Errorf("encode metadata for %s: %w", sourcePath, err)
	}

	ext := Extraction{
		ID:         uuid.NewString(),
		SourcePath: sourcePath,
		RunID:      runID,
		CreatedAt:  time.Now().UTC(),
		Metadata:   m,
	}

	err = s.withLock(ctx, func() error {
		return retryOnBusy(ctx, func() error {
			return s.put(ctx, ext, string(doc))
		})
	})
	if err != nil {
		return Extraction{}, fmt.Errorf("store %s: %w", sourcePath, err)
	}
	return ext, nil
}

func (s *Store) put(ctx context.Context, ext Extraction, doc string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := deleteSource(ctx, tx, ext.SourcePath); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO extractions (id, source_path, file_name, run_id, created_at, metadata_json) VALUES (?, ?, ?, ?, ?, ?)`,
		ext.ID, ext.SourcePath, ext.Metadata.FileName, nullString(ext.RunID),
		ext.CreatedAt.Format(timeLayout), doc,
	); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (extraction_id, section, position, key, value) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	pos := 0
	if ext.Metadata.Instrument != nil {
		for k, v := range ext.Metadata.Instrument.All() {
			if _, err := stmt.ExecContext(ctx, ext.ID, SectionInstrument, pos, k, v); err != nil {
				return err
			}
			pos++
		}
	}
	if ext.Metadata.EXIF != nil {
		for k, v := range ext.Metadata.EXIF.All() {
			text, err := entryValue(v)
			if err != nil {
				return fmt.Errorf("encode %s: %w", k, err)
			}
			if _, err := stmt.ExecContext(ctx, ext.ID, SectionEXIF, pos, k, text); err != nil {
				return err
			}
			pos++
		}
	}
	return tx.Commit()
}

// Get returns the latest extraction whose source path or file name is key.
func (s *Store) Get(ctx context.Context, key string) (Extraction, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, source_path, run_id, created_at, metadata_json FROM extractions
		 WHERE source_path = ? OR file_name = ?
		 ORDER BY created_at DESC LIMIT 1`, key, key)
	ext, err := scanExtraction(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Extraction{}, fmt.Errorf("%s: %w", key, ErrNotFound)
	}
	if err != nil {
		return Extraction{}, fmt.Errorf("get %s: %w", key, err)
	}
	return ext, nil
}

// List returns every stored extraction ordered by source path.
func (s *Store) List(ctx context.Context) ([]Extraction, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, run_id, created_at, metadata_json FROM extractions ORDER BY source_path`)
	if err != nil {
		return nil, fmt.Errorf("list extractions: %w", err)
	}
	defer rows.Close()

	var out []Extraction
	for rows.Next() {
		ext, err := scanExtraction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ext)
	}
	return out, rows.Err()
}

// Query returns every stored value of key. Instrument values come before
// EXIF values; within a section results are ordered by source path.
func (s *Store) Query(ctx context.Context, key string) ([]Hit, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT x.source_path, x.file_name, e.section, e.value
		 FROM entries e JOIN extractions x ON x.id = e.extraction_id
		 WHERE e.key = ?
		 ORDER BY CASE e.section WHEN 'instrument' THEN 0 ELSE 1 END, x.source_path`, key)
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", key, err)
	}
	defer rows.Close()

	var hits []Hit
	for rows.Next() {
		var (
			h     Hit
			value sql.NullString
		)
		if err := rows.Scan(&h.SourcePath, &h.FileName, &h.Section, &value); err != nil {
			return nil, err
		}
		h.Value = value.String
		h.Null = !value.Valid
		hits = append(hits, h)
	}
	return hits, rows.Err()
}

// Delete removes the extraction stored for sourcePath. It reports whether a
// row existed. Like Put it holds the index file lock.
func (s *Store) Delete(ctx context.Context, sourcePath string) (bool, error) {
	var removed int64
	err := s.withLock(ctx, func() error {
		return retryOnBusy(ctx, func() error {
			tx, err := s.db.BeginTx(ctx, nil)
			if err != nil {
				return err
			}
			defer func() { _ = tx.Rollback() }()
			if removed, err = deleteSource(ctx, tx, sourcePath); err != nil {
				return err
			}
			return tx.Commit()
		})
	})
	if err != nil {
		return false, fmt.Errorf("delete %s: %w", sourcePath, err)
	}
	return removed > 0, nil
}

// withLock runs fn while holding the file lock next to the database.
func (s *Store) withLock(ctx context.Context, fn func() error) error {
	locked, err := s.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock index: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock index %s: not acquired", s.path)
	}
	defer func() { _ = s.lock.Unlock() }()
	return fn()
}

// deleteSource removes the extraction row for sourcePath and its entries.
func deleteSource(ctx context.Context, tx *sql.Tx, sourcePath string) (int64, error) {
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM entries WHERE extraction_id IN (SELECT id FROM extractions WHERE source_path = ?)`,
		sourcePath); err != nil {
		return 0, err
	}
	res, err := tx.ExecContext(ctx, `DELETE FROM extractions WHERE source_path = ?`, sourcePath)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanExtraction(scanner interface{ Scan(dest ...any) error }) (Extraction, error) {
	var (
		ext        Extraction
		runID      sql.NullString
		createdRaw string
		doc        string
	)
	if err := scanner.Scan(&ext.ID, &ext.SourcePath, &runID, &createdRaw, &doc); err != nil {
		return Extraction{}, err
	}
	ext.RunID = runID.String
	if t, err := time.Parse(timeLayout, createdRaw); err == nil {
		ext.CreatedAt = t
	}
	if err := json.Unmarshal([]byte(doc), &ext.Metadata); err != nil {
		return Extraction{}, fmt.Errorf("decode metadata for %s: %w", ext.SourcePath, err)
	}
	if ext.Metadata.EXIF == nil {
		ext.Metadata.EXIF = types.NewRecord[any](0)
	}
	if ext.Metadata.Instrument == nil {
		ext.Metadata.Instrument = types.NewRecord[string](0)
	}
	return ext, nil
}

// entryValue renders an EXIF value as text. Absent values are stored as NULL.
func entryValue(v any) (sql.NullString, error) {
	switch val := v.(type) {
	case nil:
		return sql.NullString{}, nil
	case string:
		return sql.NullString{String: val, Valid: true}, nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	if string(data) == "null" {
		return sql.NullString{}, nil
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func isSQLiteBusy(err error) bool {
	if err == nil {
		return false
	}
	var coder interface{ Code() int }
	if errors.As(err, &coder) && coder.Code() == sqliteBusyCode {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "SQLITE_BUSY") || strings.Contains(msg, "database is locked")
}

func retryOnBusy(ctx context.Context, op func() error) error {
	delay := busyRetryInitialBackoff
	var lastErr error
	for attempt := range busyRetryAttempts {
		lastErr = op()
		if lastErr == nil {
			return nil
		}
		if !isSQLiteBusy(lastErr) || attempt == busyRetryAttempts-1 {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		delay = min(delay*2, busyRetryMaxBackoff)
	}
	return lastErr
}
