// Package tagstore provides a read-only snapshot over the tags of an
// opened image.
package tagstore

import (
	"fmt"

	"github.com/semtools/semmeta/internal/types"
)

// Source is anything that exposes an image's id→value tag mapping.
type Source interface {
	Tags() types.TagSet
}

// Store is an immutable snapshot of an image's tags taken at construction.
// It is safe to share between goroutines.
type Store struct {
	tags types.TagSet
}

// New snapshots the tags of src. A nil source yields an empty store.
func New(src Source) *Store {
	if src == nil {
		return &Store{tags: types.TagSet{}}
	}
	return FromTagSet(src.Tags())
}

// FromTagSet snapshots an existing tag set.
func FromTagSet(set types.TagSet) *Store {
	tags := set.Clone()
	if tags == nil {
		tags = types.TagSet{}
	}
	return &Store{tags: tags}
}

// Contains reports whether id is present.
func (s *Store) Contains(id types.TagID) bool {
	_, ok := s.tags[id]
	return ok
}

// Get returns the value for id, or an error wrapping types.ErrKeyNotFound.
func (s *Store) Get(id types.TagID) (types.TagValue, error) {
	v, ok := s.tags[id]
	if !ok {
		return nil, fmt.Errorf("tag %d: %w", id, types.ErrKeyNotFound)
	}
	return v, nil
}

// IDs returns the ids present in ascending order.
func (s *Store) IDs() []types.TagID {
	return s.tags.IDs()
}

// Len returns the number of tags in the snapshot.
func (s *Store) Len() int {
	return len(s.tags)
}
