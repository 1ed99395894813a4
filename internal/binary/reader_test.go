package binary

import (
	"encoding/binary"
	"io"
	"strings"
	"testing"
)

// mockReader implements io.ReaderAt for testing.
type mockReader struct {
	data []byte
}

func (m *mockReader) ReadAt(p []byte, off int64) (n int, err error) {
	if off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n = copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func TestSafeReader_ReadAt_Success(t *testing.T) {
	data := []byte{0x49, 0x49, 0x2A, 0x00}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.tif")

	buf := make([]byte, 2)
	if err := sr.ReadAt(buf, 0, "byte order"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if string(buf) != "II" {
		t.Errorf("expected II, got %q", buf)
	}
	if sr.Size() != 4 {
		t.Errorf("Size() = %d, want 4", sr.Size())
	}
}

func TestSafeReader_ReadAt_OutOfBounds(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.tif")

	tests := []struct {
		name string
		off  int64
		n    int
	}{
		{"offset past end", 10, 2},
		{"negative offset", -1, 1},
		{"read crosses end", 3, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sr.ReadAt(make([]byte, tt.n), tt.off, "IFD entry")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), "test.tif") {
				t.Errorf("error should contain filename: %v", err)
			}
			if !strings.Contains(err.Error(), "IFD entry") {
				t.Errorf("error should contain context: %v", err)
			}
		})
	}
}

func TestReader_Sequential(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	mock := &mockReader{data: data}
	sr := NewSafeReader(mock, int64(len(data)), "test.tif")
	r := NewReader(sr, 0, LittleEndian)

	val1, err := ReadValue[uint8](r, "first byte")
	if err != nil {
		t.Fatalf("read 1 failed: %v", err)
	}
	if val1 != 0x01 {
		t.Errorf("expected 0x01, got 0x%02x", val1)
	}

	val2, err := ReadValue[uint16](r, "second word")
	if err != nil {
		t.Fatalf("read 2 failed: %v", err)
	}
	expected := binary.LittleEndian.Uint16([]byte{0x02, 0x03})
	if val2 != expected {
		t.Errorf("expected 0x%04x, got 0x%04x", expected, val2)
	}

	if r.Offset() != 3 {
		t.Errorf("expected offset 3, got %d", r.Offset())
	}
}

func TestReader_Seek(t *testing.T) {
	data := make([]byte, 100)
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.tif")
	r := NewReader(sr, 10, BigEndian)

	r.Seek(4)
	if r.Offset() != 4 {
		t.Errorf("expected offset 4 after seek, got %d", r.Offset())
	}
}

func TestReader_ReadBytes(t *testing.T) {
	data := []byte("WD = 10mm")
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.tif")
	r := NewReader(sr, 0, LittleEndian)

	got, err := r.ReadBytes(2, "key")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != "WD" {
		t.Errorf("expected 'WD', got %q", got)
	}
	if r.Offset() != 2 {
		t.Errorf("expected offset 2, got %d", r.Offset())
	}
}

func TestChainReader_IFDEntry(t *testing.T) {
	// tag 0x0100, type 3, count 1, value 1024 (little-endian)
	data := []byte{0x00, 0x01, 0x03, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x04, 0x00, 0x00}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.tif")
	cr := NewChainReader(NewReader(sr, 0, LittleEndian))

	tag := ReadChained[uint16](cr, "tag")
	typ := ReadChained[uint16](cr, "type")
	count := ReadChained[uint32](cr, "count")
	value := ReadChained[uint32](cr, "value")

	if err := cr.Error(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tag != 0x0100 || typ != 3 || count != 1 || value != 1024 {
		t.Errorf("unexpected entry: tag=%#x type=%d count=%d value=%d", tag, typ, count, value)
	}
}

func TestChainReader_ErrorAccumulation(t *testing.T) {
	data := []byte{0x01, 0x02}
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "test.tif")
	cr := NewChainReader(NewReader(sr, 0, LittleEndian))

	_ = ReadChained[uint8](cr, "first")  // OK
	_ = ReadChained[uint8](cr, "second") // OK
	_ = ReadChained[uint8](cr, "third")  // Error - out of bounds

	if cr.Error() == nil {
		t.Fatal("expected error, got nil")
	}

	// Once error occurs, subsequent reads should not execute
	if v := ReadChained[uint8](cr, "fourth"); v != 0 {
		t.Errorf("expected zero value after error, got %d", v)
	}
	if cr.Error() == nil {
		t.Fatal("error should persist")
	}
}

func BenchmarkReadValue_Uint32(b *testing.B) {
	data := make([]byte, 4096)
	sr := NewSafeReader(&mockReader{data: data}, int64(len(data)), "bench.tif")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r := NewReader(sr, 0, LittleEndian)
		for j := 0; j < 100; j++ {
			_, _ = ReadValue[uint32](r, "bench")
		}
	}
}
