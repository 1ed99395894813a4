package semmeta

import (
	"bytes"
	"errors"
	"testing"

	"github.com/semtools/semmeta/internal/binary"
	"github.com/semtools/semmeta/internal/testsupport"
)

func TestDetectFormat_TIFF(t *testing.T) {
	for _, order := range []binary.Endianness{binary.LittleEndian, binary.BigEndian} {
		data := testsupport.Build(order, testsupport.Long(256, 1))

		format, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.tif")
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", order, err)
		}
		if format != FormatTIFF {
			t.Errorf("%s: expected FormatTIFF, got %v", order, format)
		}
	}
}

func TestDetectFormat_NotTIFF(t *testing.T) {
	data := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\x0dIHDR")

	_, err := DetectFormat(bytes.NewReader(data), int64(len(data)), "test.png")

	var unsupported *UnsupportedFormatError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedFormatError, got %v", err)
	}
}

func TestFormat_String(t *testing.T) {
	tests := []struct {
		format   Format
		expected string
	}{
		{FormatTIFF, "TIFF"},
		{FormatBigTIFF, "BigTIFF"},
		{FormatUnknown, "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.format.String(); got != tt.expected {
			t.Errorf("Format(%d).String() = %s, want %s", tt.format, got, tt.expected)
		}
	}
}

func TestFormat_Extensions(t *testing.T) {
	if got := FormatTIFF.Extensions(); len(got) != 2 || got[0] != ".tif" || got[1] != ".tiff" {
		t.Errorf("FormatTIFF.Extensions() = %v", got)
	}
	if got := FormatUnknown.Extensions(); got != nil {
		t.Errorf("FormatUnknown.Extensions() = %v, want nil", got)
	}
}
