package profile

import "github.com/ianattheGrid/jobz/internal/cascade"

// JSONSchema describes the persisted document of the template. Every level is
// closed, so a document with keys the template does not declare is rejected.
func (t *Template) JSONSchema() map[string]any {
	blocks := make(map[string]any, len(t.Blocks))
	for _, b := range t.Blocks {
		fields := make(map[string]any, len(b.Fields))
		for i := range b.Fields {
			fields[b.Fields[i].Key] = fieldSchema(&b.Fields[i])
		}
		blocks[b.Key] = object(fields)
	}
	s := object(blocks)
	s["$schema"] = "http://json-schema.org/draft-07/schema#"
	s["title"] = string(t.Track) + " profile"
	return s
}

func object(props map[string]any) map[string]any {
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"additionalProperties": false,
	}
}

func stringSchema(maxLen int) map[string]any {
	s := map[string]any{"type": "string"}
	if maxLen > 0 {
		s["maxLength"] = maxLen
	}
	return s
}

func fieldSchema(f *Field) map[string]any {
	switch f.Kind {
	case KindText:
		return stringSchema(f.MaxLen)
	case KindChoice:
		return map[string]any{"type": "string", "enum": append([]string{""}, f.optionKeys()...)}
	case KindTags:
		s := map[string]any{
			"type":        "array",
			"uniqueItems": true,
			"items":       map[string]any{"type": "string", "enum": f.optionKeys()},
		}
		if f.MaxItems > 0 {
			s["maxItems"] = f.MaxItems
		}
		return s
	case KindFlag:
		return map[string]any{"type": "boolean"}
	case KindEntries:
		props := map[string]any{entryIDKey: map[string]any{"type": "string"}}
		for _, key := range f.Entry.keys() {
			sf, _ := f.Entry.subField(key)
			props[key] = stringSchema(sf.MaxLen)
		}
		s := map[string]any{"type": "array", "items": object(props)}
		if f.MaxItems > 0 {
			s["maxItems"] = f.MaxItems
		}
		return s
	case KindSelection:
		return object(map[string]any{
			"work_area":      stringSchema(0),
			"specialization": stringSchema(0),
			"job_title":      stringSchema(0),
			"other_text":     stringSchema(cascade.MaxOtherTextLen),
		})
	}
	return map[string]any{}
}
