package tagstore

import (
	"errors"
	"testing"

	"github.com/semtools/semmeta/internal/types"
)

type fakeImage struct {
	tags types.TagSet
}

func (f *fakeImage) Tags() types.TagSet { return f.tags }

func TestStore_ContainsAndGet(t *testing.T) {
	img := &fakeImage{tags: types.TagSet{
		256:   types.Values{int64(1024)},
		34118: types.Bytes("AP_WD\n10 mm"),
	}}
	s := New(img)

	if !s.Contains(256) || !s.Contains(34118) {
		t.Fatal("expected both tags present")
	}
	if s.Contains(257) {
		t.Error("257 should be absent")
	}

	v, err := s.Get(256)
	if err != nil {
		t.Fatalf("Get(256) error = %v", err)
	}
	if v.Elements()[0] != int64(1024) {
		t.Errorf("Get(256) = %v", v)
	}
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2", s.Len())
	}
}

func TestStore_GetMissing(t *testing.T) {
	s := New(&fakeImage{tags: types.TagSet{}})

	_, err := s.Get(34118)
	if !errors.Is(err, types.ErrKeyNotFound) {
		t.Fatalf("expected ErrKeyNotFound, got %v", err)
	}
}

func TestStore_IsSnapshot(t *testing.T) {
	img := &fakeImage{tags: types.TagSet{256: types.Values{int64(1)}}}
	s := New(img)

	img.tags[257] = types.Values{int64(2)}
	delete(img.tags, 256)

	if !s.Contains(256) {
		t.Error("snapshot lost a tag after the source changed")
	}
	if s.Contains(257) {
		t.Error("snapshot picked up a tag added after construction")
	}
}

func TestStore_NilSource(t *testing.T) {
	s := New(nil)
	if s.Len() != 0 || s.Contains(0) {
		t.Error("nil source should give an empty store")
	}
	if ids := FromTagSet(nil).IDs(); len(ids) != 0 {
		t.Errorf("IDs() = %v", ids)
	}
}
