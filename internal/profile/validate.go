package profile

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ianattheGrid/jobz/internal/cascade"
)

var validate = validator.New()

// Validate re-checks every rule of the template against d. Drafts built through
// Hydrate and the edit operations already satisfy them; this guards drafts put
// together any other way before they are written. It returns a
// *ValidationError listing every failure.
func (t *Template) Validate(d *Draft) error {
	if d == nil || d.tpl != t {
		return fmt.Errorf("draft does not belong to the %s template", t.Track)
	}

	verr := &ValidationError{}
	for _, b := range t.Blocks {
		for i := range b.Fields {
			f := &b.Fields[i]
			path := b.Key + "." + f.Key
			validateField(verr, path, f, d.values[path])
		}
	}
	if len(verr.Errors) > 0 {
		return verr
	}
	return nil
}

func validateField(verr *ValidationError, path string, f *Field, v any) {
	check := func(p string, value any, tag string) {
		if err := validate.Var(value, tag); err != nil {
			verr.add(p, "%s", describe(err))
		}
	}

	switch f.Kind {
	case KindText:
		s, ok := v.(string)
		if !ok {
			verr.add(path, "expected text")
			return
		}
		if f.MaxLen > 0 {
			check(path, s, fmt.Sprintf("max=%d", f.MaxLen))
		}

	case KindChoice:
		s, ok := v.(string)
		if !ok {
			verr.add(path, "expected a choice")
			return
		}
		check(path, s, "omitempty,oneof="+strings.Join(f.optionKeys(), " "))

	case KindTags:
		tags, ok := v.([]string)
		if !ok {
			verr.add(path, "expected a tag list")
			return
		}
		tag := "unique"
		if f.MaxItems > 0 {
			tag = fmt.Sprintf("max=%d,unique", f.MaxItems)
		}
		check(path, tags, tag+",dive,oneof="+strings.Join(f.optionKeys(), " "))

	case KindFlag:
		if _, ok := v.(bool); !ok {
			verr.add(path, "expected a flag")
		}

	case KindEntries:
		entries, ok := v.([]Entry)
		if !ok {
			verr.add(path, "expected a list of entries")
			return
		}
		if f.MaxItems > 0 {
			check(path, entries, fmt.Sprintf("max=%d", f.MaxItems))
		}
		for i, e := range entries {
			validateEntry(verr, fmt.Sprintf("%s[%d]", path, i), f.Entry, e, check)
		}

	case KindSelection:
		sel, ok := v.(cascade.Selection)
		if !ok {
			verr.add(path, "expected a role selection")
			return
		}
		if err := cascade.Validate(sel); err != nil {
			verr.add(path, "%v", err)
		}
	}
}

func validateEntry(verr *ValidationError, path string, schema *EntrySchema, e Entry, check func(string, any, string)) {
	check(path+"."+entryIDKey, e.ID(), "required")
	for _, key := range slices.Sorted(maps.Keys(e)) {
		if key == entryIDKey {
			continue
		}
		sf, ok := schema.subField(key)
		if !ok {
			verr.add(path+"."+key, "unknown entry field")
			continue
		}
		check(path+"."+key, e[key], fmt.Sprintf("max=%d", sf.MaxLen))
	}
	if !schema.Dated {
		return
	}

	start, startOK := parseMonth(e[entryStartKey])
	if e[entryStartKey] != "" && !startOK {
		verr.add(path+"."+entryStartKey, "must be YYYY-MM")
	}
	end := e[entryEndKey]
	if end == "" || end == schema.OngoingLabel {
		return
	}
	endMonth, endOK := parseMonth(end)
	switch {
	case !endOK:
		verr.add(path+"."+entryEndKey, "must be YYYY-MM or %q", schema.OngoingLabel)
	case startOK && endMonth.Before(start):
		verr.add(path+"."+entryEndKey, "must not be before the start")
	}
}

func parseMonth(s string) (time.Time, bool) {
	t, err := time.Parse(dateLayout, s)
	return t, err == nil
}

func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}
	fe := verrs[0]
	switch fe.Tag() {
	case "max":
		return "exceeds the limit of " + fe.Param()
	case "oneof":
		return fmt.Sprintf("%v is not an allowed option", fe.Value())
	case "unique":
		return "contains duplicates"
	case "required":
		return "is required"
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}

// Warning is a soft constraint the draft does not yet meet. Warnings never
// block a save.
type Warning struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Warnings lists every tags or entries field below its minimum.
func (d *Draft) Warnings() []Warning {
	var out []Warning
	for _, b := range d.tpl.Blocks {
		for _, f := range b.Fields {
			if f.MinItems == 0 {
				continue
			}
			path := b.Key + "." + f.Key
			var n int
			switch v := d.values[path].(type) {
			case []string:
				n = len(v)
			case []Entry:
				n = len(v)
			default:
				continue
			}
			if n >= f.MinItems {
				continue
			}
			msg := fmt.Sprintf("Select at least %d %s (%d selected)", f.MinItems, strings.ToLower(f.Label), n)
			if f.MaxItems > 0 && f.MaxItems != f.MinItems {
				msg = fmt.Sprintf("Select %d-%d %s (%d selected)", f.MinItems, f.MaxItems, strings.ToLower(f.Label), n)
			}
			out = append(out, Warning{Path: path, Message: msg})
		}
	}
	return out
}
