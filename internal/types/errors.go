package types

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is returned when a tag id is looked up in a tag store
// that does not contain it.
var ErrKeyNotFound = errors.New("tag not found")

// OutOfBoundsError is returned when attempting to read beyond file bounds.
type OutOfBoundsError struct {
	Path   string
	What   string
	Offset int64
	Length int
	Size   int64
}

func (e *OutOfBoundsError) Error() string {
	if e.Offset >= e.Size {
		return fmt.Sprintf("%s: offset %d out of bounds (file size: %d) while reading %s",
			e.Path, e.Offset, e.Size, e.What)
	}
	return fmt.Sprintf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
		e.Path, e.Length, e.Offset, e.Size, e.What)
}

// UnsupportedFormatError is returned when the file is not a supported image container.
type UnsupportedFormatError struct {
	Path   string
	Reason string
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("%s: unsupported format: %s", e.Path, e.Reason)
}

// CorruptedFileError is returned when the container structure is invalid.
type CorruptedFileError struct {
	Path   string
	Reason string
	Offset int64
}

func (e *CorruptedFileError) Error() string {
	return fmt.Sprintf("%s: corrupted file at offset %d: %s", e.Path, e.Offset, e.Reason)
}

// ImageUnreadableError is returned when an image could not be opened or
// its tag directory could not be decoded. It is the only failure that
// aborts an extraction run.
type ImageUnreadableError struct {
	Path string
	Err  error
}

func (e *ImageUnreadableError) Error() string {
	return fmt.Sprintf("%s: image unreadable: %v", e.Path, e.Err)
}

func (e *ImageUnreadableError) Unwrap() error {
	return e.Err
}

// WarningCode classifies a non-fatal condition.
type WarningCode string

const (
	// WarnTagAbsent means a tag id the pipeline looked for is not present.
	WarnTagAbsent WarningCode = "tag_absent"
	// WarnDecodeDegraded means invalid byte sequences were replaced while decoding text.
	WarnDecodeDegraded WarningCode = "decode_degraded"
	// WarnMalformedLine means an instrument line fit neither parsing convention.
	WarnMalformedLine WarningCode = "malformed_line"
)

// Warning represents a non-fatal issue encountered during extraction.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - The vendor instrument tag is missing
//   - Invalid encoding in the instrument text
//   - A trailing line with no value
//
// Warnings are collected in Result.Warnings during extraction.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "container", "exif", "instrument"

	// Code identifies the class of issue so callers can branch on it
	Code WarningCode

	// Warning message
	Message string

	// File offset where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
