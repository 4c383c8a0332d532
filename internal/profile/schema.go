// Package profile implements the candidate profile tracks: a field schema per
// track, the in-memory Draft built from it, and the service that hydrates drafts
// from storage and writes them back whole.
package profile

import (
	"fmt"
	"strings"
)

// Track is one of the career-stage profile variants. The value doubles as the
// storage column name.
type Track string

const (
	TrackGettingStarted Track = "getting_started"
	TrackAscent         Track = "ascent"
	TrackCore           Track = "core"
	TrackEncore         Track = "encore"
	TrackPivot          Track = "pivot"
)

// Tracks returns every track in display order.
func Tracks() []Track {
	return []Track{TrackGettingStarted, TrackAscent, TrackCore, TrackEncore, TrackPivot}
}

// ParseTrack converts a raw string to a Track.
func ParseTrack(s string) (Track, error) {
	for _, t := range Tracks() {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown profile track %q", s)
}

// Column is the storage column holding the track's document.
func (t Track) Column() string {
	return string(t)
}

// Kind selects how a field's value is stored and edited.
type Kind string

const (
	KindText      Kind = "text"      // string, truncated to MaxLen runes
	KindChoice    Kind = "choice"    // one Option key or ""
	KindTags      Kind = "tags"      // unique Option keys, at most MaxItems
	KindFlag      Kind = "flag"      // bool
	KindEntries   Kind = "entries"   // []Entry, at most MaxItems
	KindSelection Kind = "selection" // cascade.Selection
)

// Option is one selectable value of a choice or tags field.
type Option struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Field declares one value inside a block.
type Field struct {
	Key     string
	Label   string
	Kind    Kind
	MaxLen  int
	Options []Option

	// MinItems only produces a warning; MaxItems is enforced.
	MinItems int
	MaxItems int

	Entry *EntrySchema

	// Default is the initial value for text, choice and flag fields.
	Default any
}

// SubField is a bounded text value inside an Entry.
type SubField struct {
	Key    string
	Label  string
	MaxLen int
}

// EntrySchema describes the repeated records of an entries field.
type EntrySchema struct {
	Fields []SubField

	// Dated entries carry "start" and "end" in YYYY-MM form. End may instead be
	// OngoingLabel, meaning the entry has not finished.
	Dated        bool
	OngoingLabel string
}

const (
	entryIDKey    = "id"
	entryStartKey = "start"
	entryEndKey   = "end"
	dateLayout    = "2006-01"
	maxDateLen    = 32
)

func (e *EntrySchema) subField(key string) (SubField, bool) {
	for _, sf := range e.Fields {
		if sf.Key == key {
			return sf, true
		}
	}
	if e.Dated && (key == entryStartKey || key == entryEndKey) {
		return SubField{Key: key, MaxLen: maxDateLen}, true
	}
	return SubField{}, false
}

func (e *EntrySchema) keys() []string {
	keys := make([]string, 0, len(e.Fields)+2)
	for _, sf := range e.Fields {
		keys = append(keys, sf.Key)
	}
	if e.Dated {
		keys = append(keys, entryStartKey, entryEndKey)
	}
	return keys
}

// Block is a named group of fields; it is one level of the stored document.
type Block struct {
	Key    string
	Title  string
	Fields []Field
}

// Template is the full field schema of a track.
type Template struct {
	Track  Track
	Blocks []Block

	fields map[string]*Field
}

func newTemplate(track Track, blocks ...Block) *Template {
	t := &Template{
		Track:  track,
		Blocks: blocks,
		fields: make(map[string]*Field),
	}
	for bi := range t.Blocks {
		b := &t.Blocks[bi]
		for fi := range b.Fields {
			t.fields[b.Key+"."+b.Fields[fi].Key] = &b.Fields[fi]
		}
	}
	return t
}

// Field looks up a field by its "block.field" path.
func (t *Template) Field(path string) (*Field, error) {
	f, ok := t.fields[path]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownField, path)
	}
	return f, nil
}

// Paths returns every field path in declaration order.
func (t *Template) Paths() []string {
	var paths []string
	for _, b := range t.Blocks {
		for _, f := range b.Fields {
			paths = append(paths, b.Key+"."+f.Key)
		}
	}
	return paths
}

func splitPath(path string) (block, field string) {
	block, field, _ = strings.Cut(path, ".")
	return block, field
}

func (f *Field) hasOption(key string) bool {
	for _, o := range f.Options {
		if o.Key == key {
			return true
		}
	}
	return false
}

func (f *Field) optionKeys() []string {
	keys := make([]string, len(f.Options))
	for i, o := range f.Options {
		keys[i] = o.Key
	}
	return keys
}
