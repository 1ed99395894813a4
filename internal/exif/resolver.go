// Package exif resolves the standard tag catalog against an image's tags.
package exif

import (
	"math"
	"strings"

	"github.com/semtools/semmeta/internal/catalog"
	"github.com/semtools/semmeta/internal/types"
)

// TagLookup is the read side of an image tag store.
type TagLookup interface {
	Contains(id types.TagID) bool
	Get(id types.TagID) (types.TagValue, error)
}

// Found is a catalog tag present in the image.
type Found struct {
	Value types.TagValue
	Name  string
}

// Missing is a catalog tag declared by the dictionary but absent from the image.
type Missing struct {
	Name string
}

// Resolve splits the index-aligned catalog names and ids into tags present
// in store and tags absent from it. Both slices follow catalog order.
// Every name lands in exactly one of the two results.
func Resolve(store TagLookup, names []string, ids []types.TagID) ([]Found, []Missing) {
	n := min(len(names), len(ids))
	found := make([]Found, 0, n)
	var missing []Missing

	for i := range n {
		name, id := names[i], ids[i]
		if store.Contains(id) {
			v, err := store.Get(id)
			if err == nil {
				found = append(found, Found{Value: v, Name: name})
				continue
			}
		}
		missing = append(missing, Missing{Name: name})
	}
	return found, missing
}

// Merge flattens found and missing tags into one record. Found tags map to
// the first element of their raw value and come first; missing tags map to
// nil. The palette tag is dropped from both. A name present in both keeps
// its found value.
func Merge(found []Found, missing []Missing) *types.ExifRecord {
	rec := types.NewRecord[any](len(found) + len(missing))
	for _, f := range found {
		if f.Name == catalog.PaletteTagName {
			continue
		}
		rec.Set(f.Name, Scalar(f.Value))
	}
	for _, m := range missing {
		if m.Name == catalog.PaletteTagName {
			continue
		}
		rec.SetDefault(m.Name, nil)
	}
	return rec
}

// Scalar returns the first element of a raw tag value in a JSON-friendly
// form. Byte elements become text with NUL padding removed and invalid
// UTF-8 replaced. An empty value or a non-finite float yields nil.
func Scalar(v types.TagValue) any {
	if v == nil {
		return nil
	}
	elems := v.Elements()
	if len(elems) == 0 {
		return nil
	}
	switch e := elems[0].(type) {
	case []byte:
		return bytesToText(e)
	case string:
		return strings.TrimRight(e, "\x00")
	case float64:
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return nil
		}
		return e
	default:
		return e
	}
}

func bytesToText(b []byte) string {
	s := strings.TrimRight(string(b), "\x00")
	return strings.ToValidUTF8(s, "�")
}
