// Package merge combines EXIF and instrument records into the persisted
// metadata shape.
package merge

import "github.com/semtools/semmeta/internal/types"

// Merge builds the metadata value for one file. Inputs are copied, so the
// result does not alias caller-owned records. Nil records become empty.
func Merge(fileID string, exif *types.ExifRecord, inst *types.InstrumentRecord) types.MergedMetadata {
	return types.MergedMetadata{
		FileName:   fileID,
		EXIF:       exif.Clone(),
		Instrument: inst.Clone(),
	}
}

// Flatten folds both records into one namespace. EXIF entries come first;
// instrument entries overwrite EXIF entries with the same key.
func Flatten(m types.MergedMetadata) *types.Record[any] {
	out := types.NewRecord[any](m.EXIF.Len() + m.Instrument.Len())
	for k, v := range m.EXIF.All() {
		out.Set(k, v)
	}
	for k, v := range m.Instrument.All() {
		out.Set(k, v)
	}
	return out
}
