// Package export writes and cleans the JSON metadata sidecars.
package export

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"github.com/semtools/semmeta/internal/types"
)

const (
	// DefaultSuffix is appended to the image stem to name its sidecar.
	DefaultSuffix = "_metadata.json"
	// DefaultIndent is the number of spaces per JSON nesting level.
	DefaultIndent = 4

	lockName       = ".semmeta.lock"
	lockRetryDelay = 50 * time.Millisecond
)

// Options controls sidecar placement and formatting.
type Options struct {
	// Dir receives the sidecar. Empty means next to the image.
	Dir string
	// Suffix replaces the image extension. Empty means DefaultSuffix.
	Suffix string
	// Indent is spaces per level; zero writes compact JSON.
	Indent int
	// Clean drops null entries before writing.
	Clean bool
}

// SidecarPath returns where the sidecar for imagePath is written.
func SidecarPath(imagePath string, opts Options) string {
	suffix := opts.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	dir := opts.Dir
	if dir == "" {
		dir = filepath.Dir(imagePath)
	}
	base := filepath.Base(imagePath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(dir, stem+suffix)
}

// WriteSidecar writes m as JSON next to imagePath (or into opts.Dir) and
// returns the written path. Writers in the same directory are serialized
// with a file lock and each file is replaced atomically.
func WriteSidecar(ctx context.Context, m types.MergedMetadata, imagePath string, opts Options) (string, error) {
	if opts.Clean {
		m = Clean(m)
	}
	data, err := Marshal(m, opts.Indent)
	if err != nil {
		return "", err
	}

	target := SidecarPath(imagePath, opts)
	if err := writeLocked(ctx, target, data); err != nil {
		return "", err
	}
	return target, nil
}

// Marshal encodes m with indent spaces per level and a trailing newline.
func Marshal(m types.MergedMetadata, indent int) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if indent > 0 {
		data, err = json.MarshalIndent(m, "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(m)
	}
	if err != nil {
		return nil, fmt.Errorf("encode metadata for %s: %w", m.FileName, err)
	}
	return append(data, '\n'), nil
}

// ReadSidecar loads a sidecar written by WriteSidecar.
func ReadSidecar(path string) (types.MergedMetadata, error) {
	var m types.MergedMetadata
	data, err := os.ReadFile(path)
	if err != nil {
		return m, fmt.Errorf("read sidecar: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("parse sidecar %s: %w", path, err)
	}
	if m.EXIF == nil {
		m.EXIF = types.NewRecord[any](0)
	}
	if m.Instrument == nil {
		m.Instrument = types.NewRecord[string](0)
	}
	return m, nil
}

func writeLocked(ctx context.Context, target string, data []byte) error {
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, lockName))
	locked, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("lock output directory: %w", err)
	}
	if !locked {
		return fmt.Errorf("lock output directory %s: not acquired", dir)
	}
	defer func() { _ = lock.Unlock() }()

	return writeAtomic(target, data)
}

func writeAtomic(target string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(target), "."+filepath.Base(target)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("write %s: %w", target, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		cleanup()
		return fmt.Errorf("sync %s: %w", target, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close %s: %w", target, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		cleanup()
		return fmt.Errorf("chmod %s: %w", target, err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		cleanup()
		return fmt.Errorf("rename into %s: %w", target, err)
	}
	return nil
}
