package tiff

import (
	"fmt"
	"io"

	"github.com/semtools/semmeta/internal/binary"
	"github.com/semtools/semmeta/internal/types"
)

// maxIFDs bounds the directory chain so a looping next-IFD pointer cannot
// stall a walk.
const maxIFDs = 64

// RawEntry is an undecoded IFD entry.
type RawEntry struct {
	IFD         int
	Offset      int64
	Tag         uint16
	Type        uint16
	Count       uint32
	ValueOffset uint32
	// Order is the byte order of the file.
	Order binary.Endianness
}

// Walk visits every entry of every IFD in file order without interpreting
// values. It stops at the first error returned by fn.
func Walk(r io.ReaderAt, size int64, path string, fn func(RawEntry) error) error {
	sr := binary.NewSafeReader(r, size, path)
	endian, next, err := readHeader(sr)
	if err != nil {
		return err
	}

	seen := make(map[uint32]bool)
	for ifd := 0; next != 0; ifd++ {
		if ifd >= maxIFDs || seen[next] {
			return &types.CorruptedFileError{Path: path, Offset: int64(next), Reason: "IFD chain loops"}
		}
		seen[next] = true

		if next, err = walkIFD(sr, endian, ifd, next, fn); err != nil {
			return err
		}
	}
	return nil
}

// readHeader returns the byte order and the offset of IFD0.
func readHeader(sr *binary.SafeReader) (binary.Endianness, uint32, error) {
	mark := make([]byte, 2)
	if err := sr.ReadAt(mark, 0, "byte order mark"); err != nil {
		return 0, 0, err
	}
	var endian binary.Endianness
	switch string(mark) {
	case "II":
		endian = binary.LittleEndian
	case "MM":
		endian = binary.BigEndian
	default:
		return 0, 0, &types.UnsupportedFormatError{Path: sr.Path(), Reason: "missing TIFF byte order mark"}
	}

	hdr := binary.NewChainReader(binary.NewReader(sr, 2, endian))
	magic := binary.ReadChained[uint16](hdr, "TIFF magic")
	first := binary.ReadChained[uint32](hdr, "first IFD offset")
	if err := hdr.Error(); err != nil {
		return 0, 0, err
	}
	if magic != 42 {
		return 0, 0, &types.UnsupportedFormatError{Path: sr.Path(), Reason: fmt.Sprintf("TIFF magic %d", magic)}
	}
	return endian, first, nil
}

// walkIFD visits the entries of the directory at off and returns the
// offset of the next one.
func walkIFD(sr *binary.SafeReader, endian binary.Endianness, ifd int, off uint32, fn func(RawEntry) error) (uint32, error) {
	cr := binary.NewChainReader(binary.NewReader(sr, int64(off), endian))
	count := binary.ReadChained[uint16](cr, "IFD entry count")
	if err := cr.Error(); err != nil {
		return 0, err
	}

	for range count {
		entry := RawEntry{IFD: ifd, Offset: cr.Offset(), Order: endian}
		entry.Tag = binary.ReadChained[uint16](cr, "IFD entry tag")
		entry.Type = binary.ReadChained[uint16](cr, "IFD entry type")
		entry.Count = binary.ReadChained[uint32](cr, "IFD entry count")
		entry.ValueOffset = binary.ReadChained[uint32](cr, "IFD entry value")
		if err := cr.Error(); err != nil {
			return 0, err
		}
		if err := fn(entry); err != nil {
			return 0, err
		}
	}

	next := binary.ReadChained[uint32](cr, "next IFD offset")
	if err := cr.Error(); err != nil {
		return 0, err
	}
	return next, nil
}
