package profile

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"

	"github.com/google/uuid"

	"github.com/ianattheGrid/jobz/internal/cascade"
)

func (d *Draft) field(path string, kinds ...Kind) (*Field, error) {
	f, err := d.tpl.Field(path)
	if err != nil {
		return nil, err
	}
	if len(kinds) > 0 && !slices.Contains(kinds, f.Kind) {
		return nil, fmt.Errorf("%w: %s is a %s field", ErrTypeMismatch, path, f.Kind)
	}
	return f, nil
}

// UpdateField returns a new draft with the value at path replaced. Text is
// truncated to the field's limit; every other kind is checked and rejected
// rather than repaired. The receiver is never modified.
func (d *Draft) UpdateField(path string, value any) (*Draft, error) {
	f, err := d.field(path)
	if err != nil {
		return nil, err
	}

	mismatch := func() error {
		return fmt.Errorf("%w: %s expects %s, got %T", ErrTypeMismatch, path, f.Kind, value)
	}

	switch f.Kind {
	case KindText:
		s, ok := value.(string)
		if !ok {
			return nil, mismatch()
		}
		return d.with(path, truncate(s, f.MaxLen)), nil

	case KindChoice:
		s, ok := value.(string)
		if !ok {
			return nil, mismatch()
		}
		if s != "" && !f.hasOption(s) {
			return nil, fmt.Errorf("%w: %q for %s", ErrUnknownOption, s, path)
		}
		return d.with(path, s), nil

	case KindTags:
		tags, ok := value.([]string)
		if !ok {
			return nil, mismatch()
		}
		out := make([]string, 0, len(tags))
		for _, k := range tags {
			if !f.hasOption(k) {
				return nil, fmt.Errorf("%w: %q for %s", ErrUnknownOption, k, path)
			}
			if !slices.Contains(out, k) {
				out = append(out, k)
			}
		}
		if f.MaxItems > 0 && len(out) > f.MaxItems {
			return nil, fmt.Errorf("%w: %s takes at most %d", ErrLimitReached, path, f.MaxItems)
		}
		return d.with(path, out), nil

	case KindFlag:
		b, ok := value.(bool)
		if !ok {
			return nil, mismatch()
		}
		return d.with(path, b), nil

	case KindEntries:
		entries, ok := value.([]Entry)
		if !ok {
			return nil, mismatch()
		}
		if f.MaxItems > 0 && len(entries) > f.MaxItems {
			return nil, fmt.Errorf("%w: %s takes at most %d", ErrLimitReached, path, f.MaxItems)
		}
		out := make([]Entry, len(entries))
		for i, e := range entries {
			out[i] = coerceEntry(f.Entry, entryObject(e))
		}
		return d.with(path, out), nil

	case KindSelection:
		sel, ok := value.(cascade.Selection)
		if !ok {
			return nil, mismatch()
		}
		if err := cascade.Validate(sel); err != nil {
			return nil, err
		}
		return d.with(path, sel), nil
	}
	return nil, mismatch()
}

// ToggleTag removes key from a tags field when present, keeping the order of
// the remaining tags, and appends it otherwise. Adding to a full field returns
// ErrLimitReached and no draft.
func (d *Draft) ToggleTag(path, key string) (*Draft, error) {
	f, err := d.field(path, KindTags)
	if err != nil {
		return nil, err
	}
	if !f.hasOption(key) {
		return nil, fmt.Errorf("%w: %q for %s", ErrUnknownOption, key, path)
	}

	tags := d.values[path].([]string)
	if i := slices.Index(tags, key); i >= 0 {
		return d.with(path, slices.Delete(slices.Clone(tags), i, i+1)), nil
	}
	if f.MaxItems > 0 && len(tags) >= f.MaxItems {
		return nil, fmt.Errorf("%w: %s takes at most %d", ErrLimitReached, path, f.MaxItems)
	}
	return d.with(path, append(slices.Clone(tags), key)), nil
}

// CanAdd reports whether another tag or entry fits in the field at path.
func (d *Draft) CanAdd(path string) bool {
	f, err := d.field(path, KindTags, KindEntries)
	if err != nil {
		return false
	}
	if f.MaxItems <= 0 {
		return true
	}
	switch v := d.values[path].(type) {
	case []string:
		return len(v) < f.MaxItems
	case []Entry:
		return len(v) < f.MaxItems
	}
	return false
}

// AddEntry appends a new entry built from values and returns its generated id.
// Unknown keys in values are dropped and text is truncated.
func (d *Draft) AddEntry(path string, values map[string]string) (*Draft, string, error) {
	f, err := d.field(path, KindEntries)
	if err != nil {
		return nil, "", err
	}
	entries := d.values[path].([]Entry)
	if f.MaxItems > 0 && len(entries) >= f.MaxItems {
		return nil, "", fmt.Errorf("%w: %s takes at most %d", ErrLimitReached, path, f.MaxItems)
	}

	obj := entryObject(values)
	id := uuid.NewString()
	obj[entryIDKey] = id
	next := append(copyEntries(entries), coerceEntry(f.Entry, obj))
	return d.with(path, next), id, nil
}

// RemoveEntry drops the entry with the given id.
func (d *Draft) RemoveEntry(path, id string) (*Draft, error) {
	if _, err := d.field(path, KindEntries); err != nil {
		return nil, err
	}
	entries := d.values[path].([]Entry)
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.ID() == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrEntryNotFound, id, path)
	}
	return d.with(path, slices.Delete(copyEntries(entries), i, i+1)), nil
}

// EditEntry sets one subfield of the entry with the given id.
func (d *Draft) EditEntry(path, id, key, value string) (*Draft, error) {
	f, err := d.field(path, KindEntries)
	if err != nil {
		return nil, err
	}
	sf, ok := f.Entry.subField(key)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, path, key)
	}
	entries := d.values[path].([]Entry)
	i := slices.IndexFunc(entries, func(e Entry) bool { return e.ID() == id })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s in %s", ErrEntryNotFound, id, path)
	}

	next := slices.Clone(entries)
	edited := maps.Clone(entries[i])
	edited[key] = truncate(value, sf.MaxLen)
	next[i] = edited
	return d.with(path, next), nil
}

// ApplyCascade feeds one picker event into the selection at path. A rejected
// event returns the receiver and false.
func (d *Draft) ApplyCascade(path string, e cascade.Event) (*Draft, bool, error) {
	if _, err := d.field(path, KindSelection); err != nil {
		return nil, false, err
	}
	state := cascade.Replay(d.values[path].(cascade.Selection))
	next, applied := cascade.Apply(state, e)
	if !applied {
		return d, false, nil
	}
	return d.with(path, next.Selection), true, nil
}

func entryObject(values map[string]string) map[string]any {
	obj := make(map[string]any, len(values))
	for k, v := range values {
		obj[k] = v
	}
	return obj
}

// EditOp is one serialized draft operation.
type EditOp struct {
	Op    string          `json:"op" validate:"required,oneof=set toggle add_entry remove_entry edit_entry cascade"`
	Path  string          `json:"path" validate:"required"`
	Value json.RawMessage `json:"value,omitempty"`
	Key   string          `json:"key,omitempty"`
	ID    string          `json:"id,omitempty"`
}

// ApplyEdit runs op against the draft.
//
//	set           Value holds the whole field value
//	toggle        Key is the tag
//	add_entry     Value is an object of subfield values
//	remove_entry  ID names the entry
//	edit_entry    ID names the entry, Key the subfield, Value the string
//	cascade       Key is the event kind, Value the string
func (d *Draft) ApplyEdit(op EditOp) (*Draft, error) {
	if err := validate.Struct(op); err != nil {
		return nil, fmt.Errorf("invalid edit: %w", err)
	}

	switch op.Op {
	case "set":
		f, err := d.field(op.Path)
		if err != nil {
			return nil, err
		}
		v, err := decodeValue(f, op.Value)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, op.Path, err)
		}
		return d.UpdateField(op.Path, v)

	case "toggle":
		return d.ToggleTag(op.Path, op.Key)

	case "add_entry":
		var values map[string]string
		if err := json.Unmarshal(op.Value, &values); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, op.Path, err)
		}
		next, _, err := d.AddEntry(op.Path, values)
		return next, err

	case "remove_entry":
		return d.RemoveEntry(op.Path, op.ID)

	case "edit_entry":
		var s string
		if err := json.Unmarshal(op.Value, &s); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, op.Path, err)
		}
		return d.EditEntry(op.Path, op.ID, op.Key, s)

	case "cascade":
		if !cascade.EventKind(op.Key).Valid() {
			return nil, fmt.Errorf("%w: event kind %q", ErrUnknownOption, op.Key)
		}
		var s string
		if err := json.Unmarshal(op.Value, &s); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrTypeMismatch, op.Path, err)
		}
		next, applied, err := d.ApplyCascade(op.Path, cascade.Event{Kind: cascade.EventKind(op.Key), Value: s})
		if err != nil {
			return nil, err
		}
		if !applied {
			return nil, fmt.Errorf("%w: %s %q not on offer", cascade.ErrInconsistent, op.Key, s)
		}
		return next, nil
	}
	return nil, fmt.Errorf("unknown edit op %q", op.Op)
}

func decodeValue(f *Field, raw json.RawMessage) (any, error) {
	switch f.Kind {
	case KindText, KindChoice:
		var s string
		err := json.Unmarshal(raw, &s)
		return s, err
	case KindTags:
		var tags []string
		err := json.Unmarshal(raw, &tags)
		if tags == nil {
			tags = []string{}
		}
		return tags, err
	case KindFlag:
		var b bool
		err := json.Unmarshal(raw, &b)
		return b, err
	case KindEntries:
		var entries []Entry
		err := json.Unmarshal(raw, &entries)
		if entries == nil {
			entries = []Entry{}
		}
		return entries, err
	case KindSelection:
		var sel cascade.Selection
		err := json.Unmarshal(raw, &sel)
		return sel, err
	}
	return nil, fmt.Errorf("unknown kind %q", f.Kind)
}
