package types

import (
	"io"

	"github.com/semtools/semmeta/internal/binary"
)

// Format represents the detected image container format.
type Format int

const (
	// FormatUnknown represents an unknown or unsupported format.
	FormatUnknown Format = iota
	// FormatTIFF represents classic TIFF files (including SEM TIFF exports).
	FormatTIFF
	// FormatBigTIFF represents 64-bit offset BigTIFF files.
	FormatBigTIFF
)

// String returns the display name of the format.
func (f Format) String() string {
	switch f {
	case FormatTIFF:
		return "TIFF"
	case FormatBigTIFF:
		return "BigTIFF"
	default:
		return "Unknown"
	}
}

// Extensions returns common file extensions for this format.
func (f Format) Extensions() []string {
	switch f {
	case FormatTIFF, FormatBigTIFF:
		return []string{".tif", ".tiff"}
	default:
		return nil
	}
}

// TIFF header constants.
const (
	tiffMagic    = 42
	bigTIFFMagic = 43
	// headerSize is byte order (2) + magic (2) + first IFD offset (4).
	headerSize = 8
)

// DetectFormat determines the image container format by examining magic bytes.
//
// Only the 8-byte TIFF header is inspected: byte order mark, the magic
// number, and that the first IFD offset points inside the file.
func DetectFormat(r io.ReaderAt, size int64, path string) (Format, error) {
	if size < headerSize {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "file too small",
		}
	}

	sr := binary.NewSafeReader(r, size, path)

	order := make([]byte, 2)
	if err := sr.ReadAt(order, 0, "byte order mark"); err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read file header",
		}
	}

	var endian binary.Endianness
	switch string(order) {
	case "II":
		endian = binary.LittleEndian
	case "MM":
		endian = binary.BigEndian
	default:
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "missing TIFF byte order mark",
		}
	}

	magic, err := binary.ReadEndian[uint16](sr, 2, "TIFF magic", endian)
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read TIFF magic",
		}
	}

	switch magic {
	case tiffMagic:
	case bigTIFFMagic:
		return FormatBigTIFF, nil
	default:
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "bad TIFF magic number",
		}
	}

	ifdOffset, err := binary.ReadEndian[uint32](sr, 4, "first IFD offset", endian)
	if err != nil {
		return FormatUnknown, &UnsupportedFormatError{
			Path:   path,
			Reason: "failed to read first IFD offset",
		}
	}
	if int64(ifdOffset) < headerSize || int64(ifdOffset) >= size {
		return FormatUnknown, &CorruptedFileError{
			Path:   path,
			Offset: 4,
			Reason: "first IFD offset outside file",
		}
	}

	return FormatTIFF, nil
}
