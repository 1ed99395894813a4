package merge

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/semtools/semmeta/internal/types"
)

func fixtures() (*types.ExifRecord, *types.InstrumentRecord) {
	exif := types.NewRecord[any](3)
	exif.Set("ImageWidth", int64(1024))
	exif.Set("Make", "FEI")
	exif.Set("Artist", nil)

	inst := types.NewRecord[string](2)
	inst.Set("AP_WD", "10.2 mm")
	inst.Set("Make", "Zeiss")
	return exif, inst
}

func TestMerge_Deterministic(t *testing.T) {
	exif, inst := fixtures()

	first, err := json.Marshal(Merge("sample.tif", exif, inst))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	for range 5 {
		again, err := json.Marshal(Merge("sample.tif", exif, inst))
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		if !bytes.Equal(first, again) {
			t.Fatalf("merge not deterministic:\n%s\n%s", first, again)
		}
	}
}

func TestMerge_DoesNotAlias(t *testing.T) {
	exif, inst := fixtures()
	m := Merge("sample.tif", exif, inst)

	exif.Set("Model", "Quanta")
	inst.Delete("AP_WD")

	if m.EXIF.Has("Model") {
		t.Error("merged EXIF record aliases the input")
	}
	if !m.Instrument.Has("AP_WD") {
		t.Error("merged instrument record aliases the input")
	}
}

func TestMerge_NilRecords(t *testing.T) {
	m := Merge("empty.tif", nil, nil)

	got, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"FileName":"empty.tif","EXIF_Metadata":{},"Instrument_Metadata":{}}`
	if string(got) != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestFlatten_InstrumentWins(t *testing.T) {
	exif, inst := fixtures()
	flat := Flatten(Merge("sample.tif", exif, inst))

	if v, _ := flat.Get("Make"); v != "Zeiss" {
		t.Errorf("Make = %v, want instrument value Zeiss", v)
	}
	if flat.Len() != 4 {
		t.Errorf("Len() = %d, want 4", flat.Len())
	}

	wantOrder := []string{"ImageWidth", "Make", "Artist", "AP_WD"}
	for i, k := range flat.Keys() {
		if k != wantOrder[i] {
			t.Errorf("key %d = %q, want %q", i, k, wantOrder[i])
		}
	}
}
