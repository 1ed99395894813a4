package types

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"
	"strings"
)

// TagID is a numeric image tag identifier.
type TagID uint16

// TagValue is the raw value stored under a tag id.
//
// It is a closed set of variants:
//   - Bytes: bare byte data
//   - WrappedBytes: byte data wrapped in a single-element sequence
//   - Text: already-decoded text
//   - Values: a tuple of scalar elements (int64, float64, Rational)
//
// Every variant exposes its tuple view through Elements.
type TagValue interface {
	// Elements returns the value as a tuple of raw elements.
	Elements() []any

	tagValue()
}

// Bytes is bare byte data.
type Bytes []byte

// WrappedBytes is byte data wrapped in a single-element sequence,
// the shape containers use for UNDEFINED and BYTE entries.
type WrappedBytes struct {
	Data []byte
}

// Text is a value the container already stores as text.
type Text string

// Values is a tuple of scalar elements.
type Values []any

// Rational is a TIFF rational number.
type Rational struct {
	Num int64
	Den int64
}

func (Bytes) tagValue()        {}
func (WrappedBytes) tagValue() {}
func (Text) tagValue()         {}
func (Values) tagValue()       {}

// Elements returns the bytes as a one-element tuple.
func (b Bytes) Elements() []any { return []any{[]byte(b)} }

// Elements returns the wrapped bytes as a one-element tuple.
func (w WrappedBytes) Elements() []any { return []any{w.Data} }

// Elements returns the text as a one-element tuple.
func (t Text) Elements() []any { return []any{string(t)} }

// Elements returns the tuple itself.
func (v Values) Elements() []any { return []any(v) }

// MarshalBinary serializes the tuple to bytes when every element is an
// integer in the byte range. Other tuples report an error so callers can
// fall back to the textual form.
func (v Values) MarshalBinary() ([]byte, error) {
	out := make([]byte, 0, len(v))
	for i, elem := range v {
		n, ok := elem.(int64)
		if !ok || n < 0 || n > math.MaxUint8 {
			return nil, fmt.Errorf("element %d (%v) is not a byte", i, elem)
		}
		out = append(out, byte(n))
	}
	return out, nil
}

// String renders the tuple like "(1, 2, 3)".
func (v Values) String() string {
	parts := make([]string, len(v))
	for i, elem := range v {
		parts[i] = fmt.Sprint(elem)
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Float returns the rational as a float64. A zero denominator yields NaN.
func (r Rational) Float() float64 {
	if r.Den == 0 {
		return math.NaN()
	}
	return float64(r.Num) / float64(r.Den)
}

// String renders the rational as "num/den".
func (r Rational) String() string {
	return strconv.FormatInt(r.Num, 10) + "/" + strconv.FormatInt(r.Den, 10)
}

// MarshalJSON encodes the rational as its decimal value, or null when the
// denominator is zero.
func (r Rational) MarshalJSON() ([]byte, error) {
	if r.Den == 0 {
		return []byte("null"), nil
	}
	return strconv.AppendFloat(nil, r.Float(), 'g', -1, 64), nil
}

// TagSet maps tag ids to their raw values for one opened image.
type TagSet map[TagID]TagValue

// IDs returns the tag ids in ascending order.
func (s TagSet) IDs() []TagID {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns a shallow copy of the set.
func (s TagSet) Clone() TagSet {
	return maps.Clone(s)
}
