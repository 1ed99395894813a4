// Package tiff decodes the primary image file directory of TIFF images,
// including SEM exports that carry instrument text in a private tag.
package tiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"unicode/utf8"

	goexif "github.com/rwcarlsen/goexif/tiff"

	"github.com/semtools/semmeta/internal/binary"
	"github.com/semtools/semmeta/internal/registry"
	"github.com/semtools/semmeta/internal/types"
)

func init() {
	registry.Register(types.FormatTIFF, Decoder{})
}

const stage = "container"

// Decoder implements registry.Decoder for classic TIFF.
type Decoder struct{}

// typeIFD is the TIFF-EP offset type. Its payload is laid out as LONG.
const typeIFD = 13

// Decode reads IFD0 and maps each entry to a tag value. Later directories
// and strip data are never read. Entries whose payload cannot be
// interpreted are skipped with a warning.
func (Decoder) Decode(r io.ReaderAt, size int64, path string) (types.TagSet, []types.Warning, error) {
	sr := binary.NewSafeReader(r, size, path)
	endian, first, err := readHeader(sr)
	if err != nil {
		return nil, nil, corrupted(path, 0, err)
	}
	if first == 0 {
		return nil, nil, &types.CorruptedFileError{
			Path:   path,
			Offset: 4,
			Reason: "no image file directory",
		}
	}

	file := io.NewSectionReader(r, 0, size)
	order := endian.ByteOrder()
	tags := make(types.TagSet)
	var warnings []types.Warning
	skip := func(e RawEntry, err error) {
		warnings = append(warnings, types.Warning{
			Stage:   stage,
			Code:    types.WarnDecodeDegraded,
			Message: fmt.Sprintf("tag %d: %v", e.Tag, err),
			Offset:  e.Offset,
		})
	}

	_, err = walkIFD(sr, endian, 0, first, func(e RawEntry) error {
		raw := make([]byte, 12)
		if err := sr.ReadAt(raw, e.Offset, "IFD entry"); err != nil {
			return err
		}
		if e.Type == typeIFD {
			order.PutUint16(raw[2:], uint16(goexif.DTLong))
		}

		tag, err := goexif.DecodeTag(entryReader{bytes.NewReader(raw), file}, order)
		if err != nil {
			skip(e, err)
			return nil
		}
		v, err := Value(tag)
		if err != nil {
			skip(e, err)
			return nil
		}
		tags[types.TagID(e.Tag)] = v
		return nil
	})
	if err != nil {
		return nil, nil, corrupted(path, int64(first), err)
	}
	return tags, warnings, nil
}

// entryReader reads the 12 entry bytes sequentially and resolves value
// offsets against the whole file.
type entryReader struct {
	io.Reader
	io.ReaderAt
}

func corrupted(path string, off int64, err error) error {
	var unsupported *types.UnsupportedFormatError
	var corrupt *types.CorruptedFileError
	if errors.As(err, &unsupported) || errors.As(err, &corrupt) {
		return err
	}
	return &types.CorruptedFileError{Path: path, Offset: off, Reason: err.Error()}
}

// Value converts a decoded TIFF entry to a tag value.
//
//   - ASCII becomes Text, or Bytes when it is not valid UTF-8
//   - BYTE and UNDEFINED become WrappedBytes
//   - integer types become Values of int64
//   - rational types become Values of Rational
//   - FLOAT and DOUBLE become Values of float64
func Value(tag *goexif.Tag) (types.TagValue, error) {
	switch tag.Type {
	case goexif.DTAscii:
		b := bytes.TrimRight(tag.Val, "\x00")
		if utf8.Valid(b) {
			return types.Text(b), nil
		}
		return types.Bytes(slices.Clone(b)), nil
	case goexif.DTByte, goexif.DTUndefined:
		return types.WrappedBytes{Data: slices.Clone(tag.Val)}, nil
	}

	n := int(tag.Count)
	vals := make(types.Values, 0, n)
	switch tag.Format() {
	case goexif.IntVal:
		for i := range n {
			v, err := tag.Int64(i)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	case goexif.RatVal:
		for i := range n {
			num, den, err := tag.Rat2(i)
			if err != nil {
				return nil, err
			}
			vals = append(vals, types.Rational{Num: num, Den: den})
		}
	case goexif.FloatVal:
		for i := range n {
			v, err := tag.Float(i)
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
		}
	default:
		return nil, fmt.Errorf("unsupported data type %d", tag.Type)
	}
	return vals, nil
}
