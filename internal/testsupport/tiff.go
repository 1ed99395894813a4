// Package testsupport builds in-memory TIFF fixtures for tests.
package testsupport

import (
	"bytes"
	"math"
	"os"
	"slices"
	"testing"

	"github.com/semtools/semmeta/internal/binary"
)

// TIFF data types.
const (
	TypeByte      uint16 = 1
	TypeASCII     uint16 = 2
	TypeShort     uint16 = 3
	TypeLong      uint16 = 4
	TypeRational  uint16 = 5
	TypeSByte     uint16 = 6
	TypeUndefined uint16 = 7
	TypeSShort    uint16 = 8
	TypeSLong     uint16 = 9
	TypeSRational uint16 = 10
	TypeFloat     uint16 = 11
	TypeDouble    uint16 = 12
	TypeIFD       uint16 = 13
)

// InstrumentTag is the vendor-private tag SEM vendors write instrument text to.
const InstrumentTag uint16 = 34118

// Entry is one IFD entry to be written.
type Entry struct {
	Tag   uint16
	Type  uint16
	Count uint32
	write func(*binary.SafeWriter) error
}

// ASCII returns a NUL-terminated ASCII entry.
func ASCII(tag uint16, s string) Entry {
	return Entry{Tag: tag, Type: TypeASCII, Count: uint32(len(s) + 1), write: func(w *binary.SafeWriter) error {
		return w.WriteBytes(append([]byte(s), 0))
	}}
}

// Byte returns a BYTE entry.
func Byte(tag uint16, b ...byte) Entry {
	return raw(tag, TypeByte, b)
}

// Undefined returns an UNDEFINED entry.
func Undefined(tag uint16, b []byte) Entry {
	return raw(tag, TypeUndefined, b)
}

func raw(tag, typ uint16, b []byte) Entry {
	return Entry{Tag: tag, Type: typ, Count: uint32(len(b)), write: func(w *binary.SafeWriter) error {
		return w.WriteBytes(b)
	}}
}

// Short returns a SHORT entry.
func Short(tag uint16, vals ...uint16) Entry {
	return Entry{Tag: tag, Type: TypeShort, Count: uint32(len(vals)), write: func(w *binary.SafeWriter) error {
		for _, v := range vals {
			if err := binary.Write(w, v); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Long returns a LONG entry.
func Long(tag uint16, vals ...uint32) Entry {
	return Entry{Tag: tag, Type: TypeLong, Count: uint32(len(vals)), write: func(w *binary.SafeWriter) error {
		for _, v := range vals {
			if err := binary.Write(w, v); err != nil {
				return err
			}
		}
		return nil
	}}
}

// SLong returns an SLONG entry.
func SLong(tag uint16, vals ...int32) Entry {
	return Entry{Tag: tag, Type: TypeSLong, Count: uint32(len(vals)), write: func(w *binary.SafeWriter) error {
		for _, v := range vals {
			if err := binary.Write(w, uint32(v)); err != nil {
				return err
			}
		}
		return nil
	}}
}

// Rational returns a RATIONAL entry with one num/den pair.
func Rational(tag uint16, num, den uint32) Entry {
	return Entry{Tag: tag, Type: TypeRational, Count: 1, write: func(w *binary.SafeWriter) error {
		if err := binary.Write(w, num); err != nil {
			return err
		}
		return binary.Write(w, den)
	}}
}

// SRational returns an SRATIONAL entry with one num/den pair.
func SRational(tag uint16, num, den int32) Entry {
	return Entry{Tag: tag, Type: TypeSRational, Count: 1, write: func(w *binary.SafeWriter) error {
		if err := binary.Write(w, uint32(num)); err != nil {
			return err
		}
		return binary.Write(w, uint32(den))
	}}
}

// Double returns a DOUBLE entry.
func Double(tag uint16, vals ...float64) Entry {
	return Entry{Tag: tag, Type: TypeDouble, Count: uint32(len(vals)), write: func(w *binary.SafeWriter) error {
		for _, v := range vals {
			if err := binary.Write(w, math.Float64bits(v)); err != nil {
				return err
			}
		}
		return nil
	}}
}

// IFD returns an entry of the TIFF-EP IFD type pointing at off.
func IFD(tag uint16, off uint32) Entry {
	e := Long(tag, off)
	e.Type = TypeIFD
	return e
}

// Empty returns an entry of type typ with a zero count.
func Empty(tag, typ uint16) Entry {
	return Entry{Tag: tag, Type: typ, write: func(*binary.SafeWriter) error { return nil }}
}

// LoopBack appends an empty second IFD to data, as produced by Build,
// whose next pointer leads back to IFD0.
func LoopBack(order binary.Endianness, data []byte) []byte {
	bo := order.ByteOrder()
	out := slices.Clone(data)
	n := int(bo.Uint16(out[8:]))
	bo.PutUint32(out[8+2+12*n:], uint32(len(out)))
	ifd := make([]byte, 6)
	bo.PutUint32(ifd[2:], 8)
	return append(out, ifd...)
}

// Build encodes a single-IFD TIFF with the given entries. Entries are
// sorted by tag as the format requires. Values longer than four bytes are
// stored after the IFD.
func Build(order binary.Endianness, entries ...Entry) []byte {
	entries = slices.Clone(entries)
	slices.SortStableFunc(entries, func(a, b Entry) int { return int(a.Tag) - int(b.Tag) })

	values := make([][]byte, len(entries))
	for i, e := range entries {
		var buf bytes.Buffer
		if err := e.write(binary.NewSafeWriter(&buf, order)); err != nil {
			panic(err)
		}
		values[i] = buf.Bytes()
	}

	var out bytes.Buffer
	w := binary.NewSafeWriter(&out, order)
	must(w.WriteString(order.String()))
	must(binary.Write(w, uint16(42)))
	must(binary.Write(w, uint32(8)))

	dataOffset := uint32(8 + 2 + 12*len(entries) + 4)
	must(binary.Write(w, uint16(len(entries))))
	var data [][]byte
	for i, e := range entries {
		must(binary.Write(w, e.Tag))
		must(binary.Write(w, e.Type))
		must(binary.Write(w, e.Count))

		v := values[i]
		if len(v) <= 4 {
			must(w.WriteBytes(v))
			must(w.WriteBytes(make([]byte, 4-len(v))))
			continue
		}
		must(binary.Write(w, dataOffset))
		if len(v)%2 == 1 {
			v = append(v, 0)
		}
		data = append(data, v)
		dataOffset += uint32(len(v))
	}
	must(binary.Write(w, uint32(0)))

	for _, v := range data {
		must(w.WriteBytes(v))
	}
	return out.Bytes()
}

// SEMImage returns a little-endian TIFF shaped like a typical SEM export:
// a few standard tags plus the instrument text under tag 34118.
func SEMImage(instrument string) []byte {
	return Build(binary.LittleEndian,
		Long(256, 1024),
		Long(257, 768),
		Short(258, 8),
		ASCII(271, "FEI Company"),
		ASCII(272, "Quanta 250"),
		Rational(282, 72, 1),
		Short(296, 2),
		ASCII(InstrumentTag, instrument),
	)
}

// WriteTemp writes data to a file in a per-test temporary directory and
// returns its path.
func WriteTemp(tb testing.TB, pattern string, data []byte) string {
	tb.Helper()

	f, err := os.CreateTemp(tb.TempDir(), pattern)
	if err != nil {
		tb.Fatal(err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		tb.Fatal(err)
	}
	if err := f.Close(); err != nil {
		tb.Fatal(err)
	}
	return f.Name()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
