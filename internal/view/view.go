// Package view renders a short table of the most useful instrument
// settings of an extraction.
package view

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/semtools/semmeta/internal/types"
)

// DefaultFallbackLimit caps the rows shown when no preferred feature matches.
const DefaultFallbackLimit = 50

// Sources a row value can come from.
const (
	SourceInstrument = "instrument"
	SourceEXIF       = "exif"
)

// Row is one displayed feature.
type Row struct {
	Feature string
	Value   string
	Unit    string
	Source  string
}

// Options selects which features are shown.
type Options struct {
	Features      []string
	FallbackLimit int
}

// Select picks the preferred features from m. Each feature is looked up in
// the instrument record, then in EXIF, then without its "AP_" prefix in the
// instrument record. When none match, up to FallbackLimit non-empty
// instrument entries are returned instead.
func Select(m types.MergedMetadata, opts Options) []Row {
	var rows []Row
	for _, feature := range opts.Features {
		raw, source, ok := lookup(m, feature)
		if !ok {
			continue
		}
		value, unit := ParseValueUnit(raw)
		rows = append(rows, Row{Feature: feature, Value: value, Unit: unit, Source: source})
	}
	if len(rows) > 0 {
		return rows
	}

	limit := opts.FallbackLimit
	if limit <= 0 {
		limit = DefaultFallbackLimit
	}
	for k, v := range m.Instrument.All() {
		if strings.TrimSpace(v) == "" {
			continue
		}
		value, unit := ParseValueUnit(v)
		rows = append(rows, Row{Feature: k, Value: value, Unit: unit, Source: SourceInstrument})
		if len(rows) >= limit {
			break
		}
	}
	return rows
}

func lookup(m types.MergedMetadata, feature string) (any, string, bool) {
	if v, ok := m.Instrument.Get(feature); ok {
		return v, SourceInstrument, true
	}
	if v, ok := m.EXIF.Get(feature); ok && v != nil {
		return v, SourceEXIF, true
	}
	if alt, found := strings.CutPrefix(feature, "AP_"); found {
		if v, ok := m.Instrument.Get(alt); ok {
			return v, SourceInstrument, true
		}
	}
	return nil, "", false
}

var valueUnitPattern = regexp.MustCompile(`^([+-]?\d+[\d.,]*)\s*([A-Za-zµ%°/\-\w]*)$`)

// ParseValueUnit splits a reading such as "10.2 mm" or "WD = 1,024 nm"
// into its number and unit. Thousands separators are removed from the
// number. Values that do not look like a reading are returned whole with
// an empty unit.
func ParseValueUnit(v any) (string, string) {
	switch val := v.(type) {
	case nil:
		return "", ""
	case string:
		s := strings.TrimSpace(val)
		if _, after, found := strings.Cut(s, "="); found {
			s = strings.TrimSpace(after)
		}
		if m := valueUnitPattern.FindStringSubmatch(s); m != nil {
			return strings.ReplaceAll(m[1], ",", ""), strings.TrimSpace(m[2])
		}
		return s, ""
	case types.Rational:
		if val.Den == 0 {
			return "", ""
		}
		return fmt.Sprint(val.Float()), ""
	default:
		return fmt.Sprint(val), ""
	}
}

// Render draws rows as a rounded table. Colorize adds ANSI styling to the
// header row.
func Render(rows []Row, colorize bool) string {
	tw := table.NewWriter()
	style := table.StyleRounded
	if colorize {
		style.Color.Header = text.Colors{text.Bold, text.FgHiBlue}
	}
	tw.SetStyle(style)

	tw.AppendHeader(table.Row{"Feature", "Value", "Unit", "Source"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Feature, r.Value, r.Unit, r.Source})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

// ShouldColorize reports whether w is an interactive terminal.
func ShouldColorize(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
