package semmeta

import (
	"github.com/semtools/semmeta/internal/instrument"
	"github.com/semtools/semmeta/internal/merge"
	"github.com/semtools/semmeta/internal/types"
)

// TagID is a numeric image tag identifier.
type TagID = types.TagID

// TagValue is the raw value stored under a tag id. See the variants
// Bytes, WrappedBytes, Text and Values.
type TagValue = types.TagValue

// Tag value variants.
type (
	Bytes        = types.Bytes
	WrappedBytes = types.WrappedBytes
	Text         = types.Text
	Values       = types.Values
	Rational     = types.Rational
)

// TagSet maps tag ids to raw values for one image.
type TagSet = types.TagSet

// Record is an insertion-ordered string-keyed map.
type Record[V any] = types.Record[V]

// ExifRecord maps standard tag names to a scalar or nil.
type ExifRecord = types.ExifRecord

// InstrumentRecord maps instrument keys to string values.
type InstrumentRecord = types.InstrumentRecord

// MergedMetadata is the persisted result of one extraction.
type MergedMetadata = types.MergedMetadata

// InstrumentTag is the vendor-private tag id that carries instrument text.
const InstrumentTag = instrument.Tag

// FinalLinePolicy controls what the instrument parser does with a line
// that has neither a separator nor a following value line.
type FinalLinePolicy = instrument.FinalLinePolicy

// Final-line policies.
const (
	FinalLineSynthesize = instrument.FinalLineSynthesize
	FinalLineDiscard    = instrument.FinalLineDiscard
)

// ParseFinalLinePolicy parses "synthesize" or "discard".
func ParseFinalLinePolicy(s string) (FinalLinePolicy, error) {
	return instrument.ParseFinalLinePolicy(s)
}

// Flatten folds a MergedMetadata into one namespace. Instrument keys take
// precedence over EXIF keys on collision.
func Flatten(m MergedMetadata) *Record[any] {
	return merge.Flatten(m)
}

// NewRecord returns an empty record with room for n entries.
func NewRecord[V any](n int) *Record[V] {
	return types.NewRecord[V](n)
}
