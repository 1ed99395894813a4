package binary

import (
	"bytes"
	"testing"
)

func TestSafeWriter_Write(t *testing.T) {
	tests := []struct {
		name   string
		endian Endianness
		want   []byte
	}{
		{"little endian", LittleEndian, []byte{0x2A, 0x00, 0x08, 0x00, 0x00, 0x00}},
		{"big endian", BigEndian, []byte{0x00, 0x2A, 0x00, 0x00, 0x00, 0x08}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			sw := NewSafeWriter(buf, tt.endian)

			if err := Write[uint16](sw, 42); err != nil {
				t.Fatal(err)
			}
			if err := Write[uint32](sw, 8); err != nil {
				t.Fatal(err)
			}

			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("got % x, want % x", buf.Bytes(), tt.want)
			}
			if sw.Offset() != 6 {
				t.Errorf("Offset() = %d, want 6", sw.Offset())
			}
		})
	}
}

func TestSafeWriter_WriteStringAndPad(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf, LittleEndian)

	if err := sw.WriteString("abc"); err != nil {
		t.Fatal(err)
	}
	if err := sw.Pad(2); err != nil {
		t.Fatal(err)
	}
	if sw.Offset() != 4 {
		t.Errorf("Offset() = %d, want 4", sw.Offset())
	}
	if err := sw.Pad(2); err != nil {
		t.Fatal(err)
	}
	if sw.Offset() != 4 {
		t.Errorf("Pad on aligned offset should not write, got %d", sw.Offset())
	}
	if !bytes.Equal(buf.Bytes(), []byte("abc\x00")) {
		t.Errorf("got %q", buf.Bytes())
	}
}

func TestSafeWriter_RoundTrip(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf, BigEndian)
	_ = Write[uint64](sw, 0x0102030405060708)
	_ = Write[uint8](sw, 0xFF)

	data := buf.Bytes()
	sr := NewSafeReader(bytes.NewReader(data), int64(len(data)), "rt.tif")
	r := NewReader(sr, 0, BigEndian)

	wide, err := ReadValue[uint64](r, "wide")
	if err != nil || wide != 0x0102030405060708 {
		t.Errorf("uint64 = %#x, %v", wide, err)
	}
	b, err := ReadValue[uint8](r, "byte")
	if err != nil || b != 0xFF {
		t.Errorf("uint8 = %#x, %v", b, err)
	}
}
