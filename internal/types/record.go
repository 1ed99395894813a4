package types

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"
)

// Record is an insertion-ordered string-keyed map.
//
// Setting an existing key replaces its value but keeps its original
// position, so repeated keys resolve last-write-wins without reordering.
// The zero value is an empty record ready to use; methods are safe to call
// on a nil *Record for reading.
type Record[V any] struct {
	keys   []string
	values map[string]V
}

// ExifRecord maps standard tag names to a scalar value, or nil when the
// tag is declared but absent from the image.
type ExifRecord = Record[any]

// InstrumentRecord maps parsed instrument keys to their string values.
type InstrumentRecord = Record[string]

// NewRecord returns an empty record with room for n entries.
func NewRecord[V any](n int) *Record[V] {
	return &Record[V]{
		keys:   make([]string, 0, n),
		values: make(map[string]V, n),
	}
}

// Set stores value under key.
func (r *Record[V]) Set(key string, value V) {
	if r.values == nil {
		r.values = make(map[string]V)
	}
	if _, ok := r.values[key]; !ok {
		r.keys = append(r.keys, key)
	}
	r.values[key] = value
}

// SetDefault stores value under key only if key is not yet present.
// It reports whether the value was stored.
func (r *Record[V]) SetDefault(key string, value V) bool {
	if r.Has(key) {
		return false
	}
	r.Set(key, value)
	return true
}

// Get returns the value stored under key.
func (r *Record[V]) Get(key string) (V, bool) {
	if r == nil {
		var zero V
		return zero, false
	}
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record[V]) Has(key string) bool {
	_, ok := r.Get(key)
	return ok
}

// Delete removes key, preserving the order of the remaining entries.
func (r *Record[V]) Delete(key string) {
	if !r.Has(key) {
		return
	}
	delete(r.values, key)
	r.keys = slices.DeleteFunc(r.keys, func(k string) bool { return k == key })
}

// Len returns the number of entries.
func (r *Record[V]) Len() int {
	if r == nil {
		return 0
	}
	return len(r.keys)
}

// Keys returns a copy of the keys in insertion order.
func (r *Record[V]) Keys() []string {
	if r == nil {
		return nil
	}
	return slices.Clone(r.keys)
}

// All returns an iterator over the entries in insertion order.
//
// Example:
//
//	for key, value := range result.Metadata.Instrument.All() {
//		fmt.Printf("%s = %s\n", key, value)
//	}
func (r *Record[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if r == nil {
			return
		}
		for _, key := range r.keys {
			if !yield(key, r.values[key]) {
				return
			}
		}
	}
}

// Clone returns a copy of the record. Values are copied shallowly.
func (r *Record[V]) Clone() *Record[V] {
	out := NewRecord[V](r.Len())
	for key, value := range r.All() {
		out.Set(key, value)
	}
	return out
}

// Equal reports whether both records hold the same keys in the same order
// with values that compare equal under eq.
func (r *Record[V]) Equal(other *Record[V], eq func(a, b V) bool) bool {
	if r.Len() != other.Len() {
		return false
	}
	for i, key := range r.Keys() {
		if other.keys[i] != key {
			return false
		}
		if !eq(r.values[key], other.values[key]) {
			return false
		}
	}
	return true
}

// MarshalJSON encodes the record as a JSON object in insertion order.
func (r *Record[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range r.Keys() {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(r.values[key])
		if err != nil {
			return nil, fmt.Errorf("marshal %q: %w", key, err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the document's key order.
// A JSON null yields an empty record.
func (r *Record[V]) UnmarshalJSON(data []byte) error {
	*r = Record[V]{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("record: expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("record: expected string key, got %v", tok)
		}
		var value V
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("record: decode %q: %w", key, err)
		}
		r.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

// MergedMetadata is the combined result of one extraction run.
type MergedMetadata struct {
	FileName   string            `json:"FileName"`
	EXIF       *ExifRecord       `json:"EXIF_Metadata"`
	Instrument *InstrumentRecord `json:"Instrument_Metadata"`
}
