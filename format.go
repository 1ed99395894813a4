package semmeta

import (
	"io"

	"github.com/semtools/semmeta/internal/types"
)

// Format is an alias to types.Format.
// Re-exporting from internal/types to maintain public API.
type Format = types.Format

// Re-export all format constants.
const (
	FormatUnknown = types.FormatUnknown
	FormatTIFF    = types.FormatTIFF
	FormatBigTIFF = types.FormatBigTIFF
)

// DetectFormat is a wrapper around types.DetectFormat.
// Maintains the public API while delegating to internal implementation.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	return types.DetectFormat(r, size, path)
}
