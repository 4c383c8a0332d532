package profile

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/ianattheGrid/jobz/internal/cascade"
)

// Entry is one repeated record of an entries field. It always carries an "id"
// key that identifies it for edit and removal.
type Entry map[string]string

// ID returns the entry's list identity.
func (e Entry) ID() string {
	return e[entryIDKey]
}

// Draft is the in-memory profile of one track. Values are keyed by "block.field"
// path and are never mutated in place: every operation returns a new Draft that
// shares untouched values with its parent.
//
// Canonical value types per Kind: text and choice hold string, tags hold
// []string, flag holds bool, entries hold []Entry and selection holds
// cascade.Selection.
type Draft struct {
	tpl    *Template
	values map[string]any
}

// Track returns the track the draft belongs to.
func (d *Draft) Track() Track {
	return d.tpl.Track
}

// Template returns the schema the draft was built from.
func (d *Draft) Template() *Template {
	return d.tpl
}

// Get returns a copy of the value at path.
func (d *Draft) Get(path string) (any, error) {
	f, err := d.tpl.Field(path)
	if err != nil {
		return nil, err
	}
	return copyValue(f.Kind, d.values[path]), nil
}

// Text returns a text or choice value, or "" when path is not one.
func (d *Draft) Text(path string) string {
	s, _ := d.values[path].(string)
	return s
}

// Tags returns a copy of a tags value.
func (d *Draft) Tags(path string) []string {
	tags, _ := d.values[path].([]string)
	return slices.Clone(tags)
}

// Flag returns a flag value.
func (d *Draft) Flag(path string) bool {
	b, _ := d.values[path].(bool)
	return b
}

// Entries returns a deep copy of an entries value.
func (d *Draft) Entries(path string) []Entry {
	entries, _ := d.values[path].([]Entry)
	return copyEntries(entries)
}

// Selection returns a role selection value.
func (d *Draft) Selection(path string) cascade.Selection {
	sel, _ := d.values[path].(cascade.Selection)
	return sel
}

// Document returns the nested {block: {field: value}} form that is persisted.
func (d *Draft) Document() map[string]any {
	doc := make(map[string]any, len(d.tpl.Blocks))
	for _, b := range d.tpl.Blocks {
		block := make(map[string]any, len(b.Fields))
		for _, f := range b.Fields {
			path := b.Key + "." + f.Key
			block[f.Key] = documentValue(f.Kind, d.values[path])
		}
		doc[b.Key] = block
	}
	return doc
}

// MarshalJSON writes the persisted document.
func (d *Draft) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Document())
}

// Equal reports whether both drafts belong to the same track and hold the same
// values.
func (d *Draft) Equal(other *Draft) bool {
	if other == nil || d.tpl != other.tpl {
		return false
	}
	for _, path := range d.tpl.Paths() {
		f := d.tpl.fields[path]
		if !valuesEqual(f.Kind, d.values[path], other.values[path]) {
			return false
		}
	}
	return true
}

func (d *Draft) with(path string, value any) *Draft {
	next := &Draft{tpl: d.tpl, values: maps.Clone(d.values)}
	next.values[path] = value
	return next
}

// Defaults returns a draft holding every field's default value.
func (t *Template) Defaults() *Draft {
	d := &Draft{tpl: t, values: make(map[string]any, len(t.fields))}
	for path, f := range t.fields {
		d.values[path] = defaultValue(f)
	}
	return d
}

func defaultValue(f *Field) any {
	switch f.Kind {
	case KindText, KindChoice:
		s, _ := f.Default.(string)
		return s
	case KindTags:
		return []string{}
	case KindFlag:
		b, _ := f.Default.(bool)
		return b
	case KindEntries:
		return []Entry{}
	case KindSelection:
		return cascade.Selection{}
	default:
		panic(fmt.Sprintf("profile: field %q has unknown kind %q", f.Key, f.Kind))
	}
}

func copyValue(kind Kind, v any) any {
	switch kind {
	case KindTags:
		return slices.Clone(v.([]string))
	case KindEntries:
		return copyEntries(v.([]Entry))
	default:
		return v
	}
}

func documentValue(kind Kind, v any) any {
	switch kind {
	case KindTags:
		return slices.Clone(v.([]string))
	case KindEntries:
		entries := v.([]Entry)
		out := make([]map[string]string, len(entries))
		for i, e := range entries {
			out[i] = maps.Clone(e)
		}
		return out
	default:
		return v
	}
}

func copyEntries(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		out[i] = maps.Clone(e)
	}
	return out
}

func valuesEqual(kind Kind, a, b any) bool {
	switch kind {
	case KindTags:
		return slices.Equal(a.([]string), b.([]string))
	case KindEntries:
		return slices.EqualFunc(a.([]Entry), b.([]Entry), func(x, y Entry) bool {
			return maps.Equal(x, y)
		})
	default:
		return a == b
	}
}
