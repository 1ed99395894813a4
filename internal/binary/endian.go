package binary

import "encoding/binary"

// Endianness represents byte order for multi-byte values.
type Endianness int

const (
	// LittleEndian uses little-endian byte order ("II" TIFF files).
	LittleEndian Endianness = iota

	// BigEndian uses big-endian byte order ("MM" TIFF files).
	BigEndian
)

// ByteOrder returns the encoding/binary order for e.
func (e Endianness) ByteOrder() binary.ByteOrder {
	if e == BigEndian {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// String returns the TIFF byte order mark for e.
func (e Endianness) String() string {
	if e == BigEndian {
		return "MM"
	}
	return "II"
}

// sizeOf returns the encoded size of T in bytes.
func sizeOf[T uint8 | uint16 | uint32 | uint64]() int {
	var zero T
	switch any(zero).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	case uint32:
		return 4
	default:
		return 8
	}
}

// ReadEndian reads a numeric value of type T at the given offset with specified byte order.
//
// Reader uses it for sequential reads.
//
// Example:
//
//	magic, err := binary.ReadEndian[uint16](sr, 2, "TIFF magic", binary.LittleEndian)
func ReadEndian[T uint8 | uint16 | uint32 | uint64](sr *SafeReader, off int64, what string, endian Endianness) (T, error) {
	var zero T
	buf := make([]byte, sizeOf[T]())
	if err := sr.ReadAt(buf, off, what); err != nil {
		return zero, err
	}

	order := endian.ByteOrder()
	var val T
	switch any(zero).(type) {
	case uint8:
		val = T(buf[0])
	case uint16:
		val = T(order.Uint16(buf))
	case uint32:
		val = T(order.Uint32(buf))
	case uint64:
		val = T(order.Uint64(buf))
	}

	return val, nil
}
