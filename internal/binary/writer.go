package binary

import (
	"io"
)

// SafeWriter wraps io.Writer with position tracking and a fixed byte order.
type SafeWriter struct {
	w      io.Writer
	offset int64
	endian Endianness
}

// NewSafeWriter creates a new SafeWriter.
func NewSafeWriter(w io.Writer, endian Endianness) *SafeWriter {
	return &SafeWriter{
		w:      w,
		endian: endian,
	}
}

// Offset returns the current position (number of bytes written).
func (sw *SafeWriter) Offset() int64 {
	return sw.offset
}

// WriteBytes writes raw bytes to the underlying writer.
func (sw *SafeWriter) WriteBytes(b []byte) error {
	n, err := sw.w.Write(b)
	sw.offset += int64(n)
	return err
}

// WriteString writes a string as bytes to the underlying writer.
func (sw *SafeWriter) WriteString(s string) error {
	return sw.WriteBytes([]byte(s))
}

// Write writes a value of type T in the writer's byte order.
func Write[T uint8 | uint16 | uint32 | uint64](sw *SafeWriter, val T) error {
	buf := make([]byte, sizeOf[T]())
	order := sw.endian.ByteOrder()

	var zero T
	switch any(zero).(type) {
	case uint8:
		buf[0] = byte(val)
	case uint16:
		order.PutUint16(buf, uint16(val))
	case uint32:
		order.PutUint32(buf, uint32(val))
	case uint64:
		order.PutUint64(buf, uint64(val))
	}

	return sw.WriteBytes(buf)
}

// Pad writes zero bytes until the offset is a multiple of align.
func (sw *SafeWriter) Pad(align int64) error {
	if align <= 1 {
		return nil
	}
	if rem := sw.offset % align; rem != 0 {
		return sw.WriteBytes(make([]byte, align-rem))
	}
	return nil
}
