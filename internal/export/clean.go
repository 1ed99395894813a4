package export

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/semtools/semmeta/internal/types"
)

const cleanedSuffix = "_cleaned.json"

// rawSuffixes are replaced by cleanedSuffix when naming a cleaned file.
var rawSuffixes = []string{"_raw.json", DefaultSuffix, ".json"}

// Clean returns a copy of m without EXIF entries whose value is null or
// the string "null", and without instrument entries equal to "null".
func Clean(m types.MergedMetadata) types.MergedMetadata {
	exif := types.NewRecord[any](m.EXIF.Len())
	for k, v := range m.EXIF.All() {
		if isNull(v) {
			continue
		}
		exif.Set(k, v)
	}

	inst := types.NewRecord[string](m.Instrument.Len())
	for k, v := range m.Instrument.All() {
		if v == "null" {
			continue
		}
		inst.Set(k, v)
	}

	return types.MergedMetadata{FileName: m.FileName, EXIF: exif, Instrument: inst}
}

func isNull(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && s == "null"
}

// CleanedPath names the cleaned counterpart of a sidecar.
func CleanedPath(path string) string {
	for _, suffix := range rawSuffixes {
		if strings.HasSuffix(path, suffix) && len(path) > len(suffix) {
			return strings.TrimSuffix(path, suffix) + cleanedSuffix
		}
	}
	return path + cleanedSuffix
}

// CleanFile reads the sidecar at path, drops null entries, and writes the
// result to CleanedPath(path). It returns the written path.
func CleanFile(ctx context.Context, path string, indent int) (string, error) {
	m, err := ReadSidecar(path)
	if err != nil {
		return "", err
	}

	data, err := Marshal(Clean(m), indent)
	if err != nil {
		return "", err
	}

	out := CleanedPath(path)
	if err := writeLocked(ctx, filepath.Clean(out), data); err != nil {
		return "", err
	}
	return out, nil
}
