package semmeta

import (
	"github.com/semtools/semmeta/internal/types"
)

// OutOfBoundsError is an alias to types.OutOfBoundsError.
// Re-exporting from internal/types to maintain public API.
type OutOfBoundsError = types.OutOfBoundsError

// UnsupportedFormatError is an alias to types.UnsupportedFormatError.
// Re-exporting from internal/types to maintain public API.
type UnsupportedFormatError = types.UnsupportedFormatError

// CorruptedFileError is an alias to types.CorruptedFileError.
// Re-exporting from internal/types to maintain public API.
type CorruptedFileError = types.CorruptedFileError

// ImageUnreadableError is an alias to types.ImageUnreadableError.
// It is the only error class that aborts extraction of an image.
type ImageUnreadableError = types.ImageUnreadableError

// ErrKeyNotFound is returned by tag store lookups for absent tag ids.
var ErrKeyNotFound = types.ErrKeyNotFound

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning

// WarningCode is an alias to types.WarningCode.
type WarningCode = types.WarningCode

// Warning codes.
const (
	WarnTagAbsent      = types.WarnTagAbsent
	WarnDecodeDegraded = types.WarnDecodeDegraded
	WarnMalformedLine  = types.WarnMalformedLine
)
