package tiff

import (
	"bytes"
	"errors"
	"testing"

	"github.com/semtools/semmeta/internal/binary"
	"github.com/semtools/semmeta/internal/testsupport"
	"github.com/semtools/semmeta/internal/types"
)

func TestWalk(t *testing.T) {
	data := testsupport.Build(binary.BigEndian,
		testsupport.ASCII(271, "FEI"),
		testsupport.Long(256, 1024),
		testsupport.ASCII(testsupport.InstrumentTag, "AP_WD=10.2 mm"),
	)

	var entries []RawEntry
	err := Walk(bytes.NewReader(data), int64(len(data)), "walk.tif", func(e RawEntry) error {
		entries = append(entries, e)
		return nil
	})
	if err != nil {
		t.Fatalf("Walk() error = %v", err)
	}

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	wantTags := []uint16{256, 271, testsupport.InstrumentTag}
	for i, e := range entries {
		if e.Tag != wantTags[i] {
			t.Errorf("entry %d tag = %d, want %d", i, e.Tag, wantTags[i])
		}
		if e.IFD != 0 {
			t.Errorf("entry %d IFD = %d, want 0", i, e.IFD)
		}
		if e.Order != binary.BigEndian {
			t.Errorf("entry %d order = %s, want MM", i, e.Order)
		}
		if want := int64(10 + 12*i); e.Offset != want {
			t.Errorf("entry %d offset = %d, want %d", i, e.Offset, want)
		}
	}
	if entries[0].ValueOffset != 1024 {
		t.Errorf("inline LONG value = %d, want 1024", entries[0].ValueOffset)
	}
	if entries[2].Count != uint32(len("AP_WD=10.2 mm")+1) {
		t.Errorf("ASCII count = %d", entries[2].Count)
	}
}

func TestWalk_StopsOnCallbackError(t *testing.T) {
	data := testsupport.SEMImage("A=1")
	stop := errors.New("stop")

	calls := 0
	err := Walk(bytes.NewReader(data), int64(len(data)), "walk.tif", func(RawEntry) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Walk() error = %v, want stop", err)
	}
	if calls != 1 {
		t.Errorf("callback called %d times, want 1", calls)
	}
}

func TestWalk_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"not tiff", []byte("GIF89a\x00\x00")},
		{"bad magic", []byte("II\x2b\x00\x08\x00\x00\x00")},
		{"truncated IFD", []byte("II*\x00\x08\x00\x00\x00\x05")},
		{"self loop", []byte("II*\x00\x08\x00\x00\x00\x00\x00\x08\x00\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Walk(bytes.NewReader(tt.data), int64(len(tt.data)), "bad.tif", func(RawEntry) error { return nil })
			if err == nil {
				t.Fatal("expected error")
			}
		})
	}

	loop := []byte("II*\x00\x08\x00\x00\x00\x00\x00\x08\x00\x00\x00")
	err := Walk(bytes.NewReader(loop), int64(len(loop)), "bad.tif", func(RawEntry) error { return nil })
	var corrupted *types.CorruptedFileError
	if !errors.As(err, &corrupted) {
		t.Errorf("loop error = %v, want CorruptedFileError", err)
	}
}
