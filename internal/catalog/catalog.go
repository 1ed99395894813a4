// Package catalog provides the standard tag dictionary as an immutable,
// ordered name/id catalog.
package catalog

import (
	"slices"
	"sync"

	"github.com/semtools/semmeta/internal/types"
)

// PaletteTagName is the color-palette tag. Its value is a large lookup
// table rather than a scalar, so it is always dropped from EXIF output.
const PaletteTagName = "ColorMap"

// TagEntry pairs a standard tag name with its numeric id.
type TagEntry struct {
	Name string
	ID   types.TagID
}

// Catalog is an ordered, name-unique set of tag entries.
// A Catalog is immutable after construction and safe for concurrent use.
type Catalog struct {
	entries []TagEntry
	byName  map[string]int
	byID    map[types.TagID]string
}

// New builds a catalog from entries. Names are made unique: a repeated
// name keeps the position of its first occurrence and takes the id of its
// last occurrence.
func New(entries []TagEntry) *Catalog {
	c := &Catalog{
		entries: make([]TagEntry, 0, len(entries)),
		byName:  make(map[string]int, len(entries)),
		byID:    make(map[types.TagID]string, len(entries)),
	}
	for _, e := range entries {
		if i, ok := c.byName[e.Name]; ok {
			c.entries[i].ID = e.ID
			continue
		}
		c.byName[e.Name] = len(c.entries)
		c.entries = append(c.entries, e)
	}
	for _, e := range c.entries {
		c.byID[e.ID] = e.Name
	}
	return c
}

var standard = sync.OnceValue(func() *Catalog {
	return New(standardTags)
})

// Standard returns the process-wide standard tag catalog.
func Standard() *Catalog {
	return standard()
}

// NamesAndIDs returns the tag names and ids as index-aligned slices in
// catalog order. The slices are copies; callers may modify them.
func (c *Catalog) NamesAndIDs() ([]string, []types.TagID) {
	names := make([]string, len(c.entries))
	ids := make([]types.TagID, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
		ids[i] = e.ID
	}
	return names, ids
}

// Entries returns a copy of the catalog entries in order.
func (c *Catalog) Entries() []TagEntry {
	return slices.Clone(c.entries)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Lookup returns the id for a tag name.
func (c *Catalog) Lookup(name string) (types.TagID, bool) {
	i, ok := c.byName[name]
	if !ok {
		return 0, false
	}
	return c.entries[i].ID, true
}

// Name returns the tag name for an id.
func (c *Catalog) Name(id types.TagID) (string, bool) {
	name, ok := c.byID[id]
	return name, ok
}
