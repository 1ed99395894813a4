// Package binary provides type-safe binary reading primitives with bounds checking
package binary

import (
	"fmt"
	"io"
)

// SafeReader wraps io.ReaderAt with bounds checking and helpful error messages.
type SafeReader struct {
	r    io.ReaderAt
	path string
	size int64
}

// NewSafeReader creates a new SafeReader.
func NewSafeReader(r io.ReaderAt, size int64, path string) *SafeReader {
	return &SafeReader{
		r:    r,
		size: size,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (sr *SafeReader) Path() string {
	return sr.path
}

// Size returns the readable size in bytes.
func (sr *SafeReader) Size() int64 {
	return sr.size
}

// ReadAt reads bytes at the given offset with context for error messages.
func (sr *SafeReader) ReadAt(b []byte, off int64, what string) error {
	if off < 0 || off >= sr.size {
		return fmt.Errorf("%s: offset %d out of bounds (file size: %d) while reading %s",
			sr.path, off, sr.size, what)
	}

	if off+int64(len(b)) > sr.size {
		return fmt.Errorf("%s: read of %d bytes at offset %d would exceed file size %d while reading %s",
			sr.path, len(b), off, sr.size, what)
	}

	n, err := sr.r.ReadAt(b, off)
	if err != nil && err != io.EOF {
		return fmt.Errorf("%s: failed to read %s at offset %d: %w", sr.path, what, off, err)
	}

	if n < len(b) {
		return fmt.Errorf("%s: short read for %s at offset %d: got %d bytes, expected %d",
			sr.path, what, off, n, len(b))
	}

	return nil
}

// Reader provides sequential reading with automatic offset tracking in a
// fixed byte order.
type Reader struct {
	*SafeReader
	offset int64
	endian Endianness
}

// NewReader creates a new Reader starting at the given offset.
func NewReader(sr *SafeReader, offset int64, endian Endianness) *Reader {
	return &Reader{
		SafeReader: sr,
		offset:     offset,
		endian:     endian,
	}
}

// ReadValue reads a numeric value and advances the offset.
func ReadValue[T uint8 | uint16 | uint32 | uint64](r *Reader, what string) (T, error) {
	val, err := ReadEndian[T](r.SafeReader, r.offset, what, r.endian)
	if err != nil {
		var zero T
		return zero, err
	}

	r.offset += int64(sizeOf[T]())
	return val, nil
}

// ReadBytes reads length raw bytes and advances the offset.
func (r *Reader) ReadBytes(length int, what string) ([]byte, error) {
	buf := make([]byte, length)
	if err := r.SafeReader.ReadAt(buf, r.offset, what); err != nil {
		return nil, err
	}

	r.offset += int64(length)
	return buf, nil
}

// Seek moves the reader to an absolute offset.
func (r *Reader) Seek(offset int64) {
	r.offset = offset
}

// Offset returns the current offset.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ChainReader allows chaining multiple reads with deferred error checking.
// This avoids repetitive "if err != nil" checks.
type ChainReader struct {
	*Reader
	err error
}

// NewChainReader creates a new ChainReader.
func NewChainReader(r *Reader) *ChainReader {
	return &ChainReader{Reader: r}
}

// ReadChained reads a value with deferred error checking.
// If a previous read failed, returns zero value without attempting read.
func ReadChained[T uint8 | uint16 | uint32 | uint64](cr *ChainReader, what string) T {
	if cr.err != nil {
		var zero T
		return zero
	}

	val, err := ReadValue[T](cr.Reader, what)
	if err != nil {
		cr.err = err
		var zero T
		return zero
	}

	return val
}

// Error returns the accumulated error, if any.
func (cr *ChainReader) Error() error {
	return cr.err
}
