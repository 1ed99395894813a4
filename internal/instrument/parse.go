package instrument

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/semtools/semmeta/internal/types"
)

// FinalLinePolicy decides what happens to a line that fits neither the
// "key = value" form nor identifier/value pairing.
type FinalLinePolicy int

const (
	// FinalLineSynthesize records the cleaned line under Unknown_<n>.
	FinalLineSynthesize FinalLinePolicy = iota
	// FinalLineDiscard drops the line.
	FinalLineDiscard
)

func (p FinalLinePolicy) String() string {
	switch p {
	case FinalLineSynthesize:
		return "synthesize"
	case FinalLineDiscard:
		return "discard"
	default:
		return fmt.Sprintf("FinalLinePolicy(%d)", int(p))
	}
}

// ParseFinalLinePolicy parses "synthesize" or "discard". An empty string
// selects the default.
func ParseFinalLinePolicy(s string) (FinalLinePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "synthesize":
		return FinalLineSynthesize, nil
	case "discard":
		return FinalLineDiscard, nil
	default:
		return 0, fmt.Errorf("invalid final line policy %q (want synthesize or discard)", s)
	}
}

var stripControl = strings.NewReplacer("\x00", "", "\r", "")

// Separators in order of preference.
var separators = []string{"=", ":"}

// Parser turns instrument lines into an ordered record.
type Parser struct {
	Policy FinalLinePolicy
}

// Parse parses lines with the default policy.
func Parse(lines []string) *types.InstrumentRecord {
	rec, _ := Parser{}.Parse(lines)
	return rec
}

// Parse scans lines in order. A line with a separator is split on its
// first occurrence. A line without one takes the following line as its
// value. A trailing line without a separator, or a line whose key is empty
// once cleaned, is handled by the final-line policy and reported as
// malformed. Later duplicate keys overwrite earlier ones.
func (p Parser) Parse(lines []string) (*types.InstrumentRecord, []types.Warning) {
	lines = cleanLines(lines)
	rec := types.NewRecord[string](len(lines))

	var warnings []types.Warning
	synthesized := 0
	malformed := func(i int, line string) {
		action := "discarded"
		if p.Policy == FinalLineSynthesize {
			synthesized++
			key := fmt.Sprintf("Unknown_%d", synthesized)
			rec.Set(key, clean(line))
			action = "stored as " + key
		}
		warnings = append(warnings, types.Warning{
			Stage:   stage,
			Code:    types.WarnMalformedLine,
			Message: fmt.Sprintf("line %d %q has no value; %s", i+1, line, action),
		})
	}

	for i := 0; i < len(lines); {
		line := lines[i]

		if key, value, ok := splitLine(line); ok {
			if key == "" {
				malformed(i, line)
			} else {
				rec.Set(key, value)
			}
			i++
			continue
		}

		key := clean(line)
		if key == "" || i+1 >= len(lines) {
			malformed(i, line)
			i++
			continue
		}
		rec.Set(key, clean(lines[i+1]))
		i += 2
	}
	return rec, warnings
}

// Serialize renders a record as "key=value" lines. Parsing the result
// reproduces the record.
func Serialize(rec *types.InstrumentRecord) []string {
	lines := make([]string, 0, rec.Len())
	for k, v := range rec.All() {
		lines = append(lines, k+"="+v)
	}
	return lines
}

func splitLine(line string) (key, value string, ok bool) {
	for _, sep := range separators {
		if k, v, found := strings.Cut(line, sep); found {
			return clean(k), clean(v), true
		}
	}
	return "", "", false
}

func clean(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == ';' || unicode.IsSpace(r)
	})
}

func cleanLines(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = stripControl.Replace(line)
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
