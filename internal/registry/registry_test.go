package registry

import (
	"io"
	"testing"

	"github.com/semtools/semmeta/internal/types"
)

// mockDecoder implements Decoder for testing.
type mockDecoder struct {
	name string
}

func (m *mockDecoder) Decode(r io.ReaderAt, size int64, path string) (types.TagSet, []types.Warning, error) {
	return types.TagSet{305: types.Text(m.name)}, nil, nil
}

func TestRegisterAndGet(t *testing.T) {
	// Use a format that's unlikely to conflict with real registrations
	format := types.Format(999)
	decoder := &mockDecoder{name: "test"}

	Register(format, decoder)

	got := Get(format)
	if got == nil {
		t.Fatal("Get() returned nil for registered format")
	}

	md, ok := got.(*mockDecoder)
	if !ok {
		t.Fatal("Get() returned wrong decoder type")
	}
	if md.name != "test" {
		t.Errorf("Decoder name = %q, want %q", md.name, "test")
	}
}

func TestGet_Unregistered(t *testing.T) {
	format := types.Format(998)

	got := Get(format)
	if got != nil {
		t.Errorf("Get() = %v for unregistered format, want nil", got)
	}
}

func TestRegister_Overwrites(t *testing.T) {
	format := types.Format(997)

	Register(format, &mockDecoder{name: "first"})
	Register(format, &mockDecoder{name: "second"})

	md, ok := Get(format).(*mockDecoder)
	if !ok {
		t.Fatal("Get() returned wrong decoder type")
	}
	if md.name != "second" {
		t.Errorf("Decoder name = %q, want %q (should be overwritten)", md.name, "second")
	}
}

func TestDecoderFunc(t *testing.T) {
	format := types.Format(996)
	Register(format, DecoderFunc(func(r io.ReaderAt, size int64, path string) (types.TagSet, []types.Warning, error) {
		return types.TagSet{256: types.Values{size}}, nil, nil
	}))

	tags, warnings, err := Get(format).Decode(nil, 42, "x.tif")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}
	v, ok := tags[256].(types.Values)
	if !ok || len(v) != 1 || v[0] != int64(42) {
		t.Errorf("tags[256] = %#v", tags[256])
	}
}
