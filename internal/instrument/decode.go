// Package instrument decodes and parses the vendor-private instrument text
// that SEM vendors embed in TIFF tag 34118.
package instrument

import (
	"encoding"
	"fmt"
	"strings"
	"unicode/utf8"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/semtools/semmeta/internal/types"
)

// Tag is the vendor-private tag id carrying instrument settings.
const Tag types.TagID = 34118

// DefaultEncoding is the charset assumed for instrument bytes.
const DefaultEncoding = "utf-8"

const stage = "instrument"

// TagLookup is the read side of an image tag store.
type TagLookup interface {
	Contains(id types.TagID) bool
	Get(id types.TagID) (types.TagValue, error)
}

// Decoder turns the raw instrument tag value into clean text lines.
// The zero value reads tag 34118 as UTF-8.
type Decoder struct {
	// Tag overrides the instrument tag id when non-zero.
	Tag types.TagID

	// Encoding is a WHATWG charset label such as "utf-8" or "windows-1252".
	Encoding string
}

// LookupEncoding resolves a charset label. An empty label means UTF-8.
func LookupEncoding(name string) (xencoding.Encoding, error) {
	if strings.TrimSpace(name) == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("text encoding %q: %w", name, err)
	}
	return enc, nil
}

// Decode returns the non-empty, trimmed lines of the instrument text in
// their original order. A missing tag yields no lines and a tag_absent
// warning; undecodable bytes are replaced and reported as decode_degraded.
// Decode never fails.
func (d Decoder) Decode(store TagLookup) ([]string, []types.Warning) {
	tag := d.Tag
	if tag == 0 {
		tag = Tag
	}

	if store == nil || !store.Contains(tag) {
		return nil, []types.Warning{{
			Stage:   stage,
			Code:    types.WarnTagAbsent,
			Message: fmt.Sprintf("instrument tag %d not present", tag),
		}}
	}
	raw, err := store.Get(tag)
	if err != nil {
		return nil, []types.Warning{{
			Stage:   stage,
			Code:    types.WarnTagAbsent,
			Message: err.Error(),
		}}
	}

	var warnings []types.Warning
	enc, err := LookupEncoding(d.Encoding)
	if err != nil {
		warnings = append(warnings, types.Warning{
			Stage:   stage,
			Code:    types.WarnDecodeDegraded,
			Message: err.Error() + "; using utf-8",
		})
		enc = unicode.UTF8
	}

	text, degraded := ValueText(raw, enc)
	if degraded {
		warnings = append(warnings, types.Warning{
			Stage:   stage,
			Code:    types.WarnDecodeDegraded,
			Message: "invalid byte sequences replaced while decoding instrument text",
		})
	}
	return SplitLines(text), warnings
}

// ValueText converts a raw tag value to text. Wrapped bytes are unwrapped,
// byte data is decoded with enc, and values that can serialize themselves
// to bytes are decoded the same way. Anything else falls back to its
// printed form. The bool reports whether replacement characters were
// substituted.
func ValueText(v types.TagValue, enc xencoding.Encoding) (string, bool) {
	switch val := v.(type) {
	case nil:
		return "", false
	case types.WrappedBytes:
		return decodeBytes(val.Data, enc)
	case types.Bytes:
		return decodeBytes(val, enc)
	case types.Text:
		return string(val), false
	}

	if m, ok := v.(encoding.BinaryMarshaler); ok {
		if b, err := m.MarshalBinary(); err == nil {
			return decodeBytes(b, enc)
		}
	}
	return fmt.Sprint(v), false
}

func decodeBytes(b []byte, enc xencoding.Encoding) (string, bool) {
	if enc == nil {
		enc = unicode.UTF8
	}

	out, _, err := transform.Bytes(enc.NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError)), true
	}

	if name, _ := htmlindex.Name(enc); name == DefaultEncoding {
		return string(out), !utf8.Valid(b)
	}
	return string(out), strings.ContainsRune(string(out), utf8.RuneError)
}

var lineEndings = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// SplitLines normalizes instrument text and splits it into trimmed,
// non-empty lines. NUL bytes count as spaces.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\x00", " ")
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	text = lineEndings.Replace(text)

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
