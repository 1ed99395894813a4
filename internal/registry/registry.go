// Package registry manages container decoders for image file types.
package registry

import (
	"io"

	"github.com/semtools/semmeta/internal/types"
)

// Decoder is the interface all container decoders implement.
type Decoder interface {
	// Decode reads the primary tag directory of an image and returns its
	// id→value mapping. Non-fatal problems are returned as warnings.
	Decode(r io.ReaderAt, size int64, path string) (types.TagSet, []types.Warning, error)
}

// DecoderFunc adapts a function to the Decoder interface.
type DecoderFunc func(r io.ReaderAt, size int64, path string) (types.TagSet, []types.Warning, error)

// Decode calls f.
func (f DecoderFunc) Decode(r io.ReaderAt, size int64, path string) (types.TagSet, []types.Warning, error) {
	return f(r, size, path)
}

// decoders maps formats to their decoders.
var decoders = make(map[types.Format]Decoder)

// Register registers a decoder for a format.
// This is called by format packages during initialization (init functions).
func Register(format types.Format, decoder Decoder) {
	decoders[format] = decoder
}

// Get returns the decoder for a given format.
// Returns nil if no decoder is registered for the format.
func Get(format types.Format) Decoder {
	return decoders[format]
}
