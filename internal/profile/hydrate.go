package profile

import (
	"encoding/json"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/ianattheGrid/jobz/internal/cascade"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
)

// Hydrate merges a persisted document over the template defaults. Keys the
// template does not declare are dropped; values of the wrong shape fall back
// to the default. Text is truncated, tags are filtered to known options,
// deduplicated and capped, entries are capped and given an id when missing,
// and selections are normalized through the cascade.
//
// Hydrate(Hydrate(x).Document()) equals Hydrate(x) for every x.
func (t *Template) Hydrate(persisted map[string]any) *Draft {
	d := t.Defaults()
	for _, b := range t.Blocks {
		block, ok := asObject(persisted[b.Key])
		if !ok {
			continue
		}
		for i := range b.Fields {
			f := &b.Fields[i]
			raw, present := block[f.Key]
			if !present || raw == nil {
				continue
			}
			if v, ok := coerce(f, raw); ok {
				d.values[b.Key+"."+f.Key] = v
			}
		}
	}
	return d
}

// HydrateJSON hydrates from a stored JSON document. Empty input and JSON null
// give the defaults.
func (t *Template) HydrateJSON(data []byte) (*Draft, error) {
	if len(data) == 0 {
		return t.Defaults(), nil
	}
	var persisted map[string]any
	if err := json.Unmarshal(data, &persisted); err != nil {
		return nil, fmt.Errorf("failed to decode %s profile: %w", t.Track, err)
	}
	return t.Hydrate(persisted), nil
}

func coerce(f *Field, raw any) (any, bool) {
	switch f.Kind {
	case KindText:
		s, ok := raw.(string)
		if !ok {
			return nil, false
		}
		return truncate(s, f.MaxLen), true

	case KindChoice:
		s, ok := raw.(string)
		if !ok || (s != "" && !f.hasOption(s)) {
			return nil, false
		}
		return s, true

	case KindTags:
		items, ok := asStrings(raw)
		if !ok {
			return nil, false
		}
		tags := make([]string, 0, len(items))
		for _, k := range items {
			if !f.hasOption(k) || slices.Contains(tags, k) {
				continue
			}
			if f.MaxItems > 0 && len(tags) == f.MaxItems {
				break
			}
			tags = append(tags, k)
		}
		return tags, true

	case KindFlag:
		b, ok := raw.(bool)
		return b, ok

	case KindEntries:
		items, ok := asObjects(raw)
		if !ok {
			return nil, false
		}
		entries := make([]Entry, 0, len(items))
		for _, item := range items {
			if f.MaxItems > 0 && len(entries) == f.MaxItems {
				break
			}
			entries = append(entries, coerceEntry(f.Entry, item))
		}
		return entries, true

	case KindSelection:
		obj, ok := asObject(raw)
		if !ok {
			return nil, false
		}
		return cascade.Replay(selectionFrom(obj)).Selection, true
	}
	return nil, false
}

func coerceEntry(schema *EntrySchema, item map[string]any) Entry {
	e := make(Entry, len(schema.Fields)+3)
	for _, key := range schema.keys() {
		sf, _ := schema.subField(key)
		s, _ := item[key].(string)
		e[key] = truncate(s, sf.MaxLen)
	}
	id, _ := item[entryIDKey].(string)
	if id == "" {
		id = uuid.NewString()
	}
	e[entryIDKey] = id
	return e
}

func selectionFrom(obj map[string]any) cascade.Selection {
	str := func(key string) string {
		s, _ := obj[key].(string)
		return s
	}
	return cascade.Selection{
		WorkArea:       taxonomy.WorkArea(str("work_area")),
		Specialization: taxonomy.Specialization(str("specialization")),
		JobTitle:       str("job_title"),
		OtherText:      str("other_text"),
	}
}

// asObject accepts the decoded-JSON object form as well as the typed forms that
// Document produces, so a draft's own document hydrates without a JSON round
// trip.
func asObject(v any) (map[string]any, bool) {
	switch o := v.(type) {
	case map[string]any:
		return o, true
	case map[string]string:
		out := make(map[string]any, len(o))
		for k, s := range o {
			out[k] = s
		}
		return out, true
	case Entry:
		return asObject(map[string]string(o))
	case cascade.Selection:
		return map[string]any{
			"work_area":      string(o.WorkArea),
			"specialization": string(o.Specialization),
			"job_title":      o.JobTitle,
			"other_text":     o.OtherText,
		}, true
	}
	return nil, false
}

func asObjects(v any) ([]map[string]any, bool) {
	var items []any
	switch l := v.(type) {
	case []any:
		items = l
	case []map[string]string:
		for _, m := range l {
			items = append(items, m)
		}
	case []Entry:
		for _, e := range l {
			items = append(items, e)
		}
	default:
		return nil, false
	}

	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if obj, ok := asObject(item); ok {
			out = append(out, obj)
		}
	}
	return out, true
}

func asStrings(v any) ([]string, bool) {
	switch l := v.(type) {
	case []string:
		return l, true
	case []any:
		out := make([]string, 0, len(l))
		for _, item := range l {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out, true
	}
	return nil, false
}

// truncate cuts s to max runes; max <= 0 means unbounded.
func truncate(s string, max int) string {
	if max <= 0 || utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
