package profile

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianattheGrid/jobz/internal/cascade"
	"github.com/ianattheGrid/jobz/internal/schemas"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
)

func mustTemplate(t *testing.T, track Track) *Template {
	t.Helper()
	tpl, err := TemplateFor(track)
	require.NoError(t, err)
	return tpl
}

func TestTemplates_AllTracksDeclared(t *testing.T) {
	for _, track := range Tracks() {
		tpl := mustTemplate(t, track)
		assert.Equal(t, track, tpl.Track)
		assert.NotEmpty(t, tpl.Paths())

		_, err := tpl.Field(RolePath(track))
		assert.NoError(t, err, "role path of %s", track)
	}

	_, err := TemplateFor("veteran")
	assert.Error(t, err)
}

func TestTemplates_OngoingSentinel(t *testing.T) {
	for _, track := range Tracks() {
		tpl := mustTemplate(t, track)
		f, err := tpl.Field("experience.entries")
		if err != nil {
			continue
		}
		want := OngoingCurrent
		if track == TrackEncore {
			want = OngoingRetired
		}
		assert.Equal(t, want, f.Entry.OngoingLabel, track)
	}
}

func TestDefaults(t *testing.T) {
	d := mustTemplate(t, TrackCore).Defaults()

	assert.Equal(t, "one_month", d.Text("essentials.notice_period"))
	assert.Equal(t, "", d.Text("essentials.headline"))
	assert.False(t, d.Flag("essentials.open_to_relocation"))
	assert.Empty(t, d.Tags("expertise.skills"))
	assert.Empty(t, d.Entries("experience.entries"))
	assert.True(t, d.Selection("current_role.role").IsZero())
}

func TestHydrate_MergesOverDefaults(t *testing.T) {
	tpl := mustTemplate(t, TrackCore)
	d := tpl.Hydrate(map[string]any{
		"essentials": map[string]any{
			"headline": "Operations lead",
			"unknown":  "dropped",
		},
		"expertise": map[string]any{
			"skills": []any{"budgeting", "not_an_option", "budgeting", "coaching"},
		},
		"not_a_block": map[string]any{"x": 1},
	})

	assert.Equal(t, "Operations lead", d.Text("essentials.headline"))
	assert.Equal(t, "one_month", d.Text("essentials.notice_period"), "missing keys fall back to defaults")
	assert.Equal(t, []string{"budgeting", "coaching"}, d.Tags("expertise.skills"))

	doc := d.Document()
	assert.NotContains(t, doc, "not_a_block")
	assert.NotContains(t, doc["essentials"], "unknown")
}

func TestHydrate_WrongTypesFallBack(t *testing.T) {
	tpl := mustTemplate(t, TrackCore)
	d := tpl.Hydrate(map[string]any{
		"essentials": map[string]any{
			"headline":           42,
			"notice_period":      "next_year",
			"open_to_relocation": "yes",
		},
		"expertise":  "not an object",
		"experience": map[string]any{"entries": "none"},
	})
	assert.True(t, d.Equal(tpl.Defaults()))
}

func TestHydrate_Nil(t *testing.T) {
	tpl := mustTemplate(t, TrackEncore)
	assert.True(t, tpl.Hydrate(nil).Equal(tpl.Defaults()))

	d, err := tpl.HydrateJSON(nil)
	require.NoError(t, err)
	assert.True(t, d.Equal(tpl.Defaults()))

	d, err = tpl.HydrateJSON([]byte("null"))
	require.NoError(t, err)
	assert.True(t, d.Equal(tpl.Defaults()))

	_, err = tpl.HydrateJSON([]byte("{"))
	assert.Error(t, err)
}

func TestHydrate_Idempotent(t *testing.T) {
	partials := []map[string]any{
		nil,
		{},
		{"essentials": map[string]any{"headline": strings.Repeat("h", 400)}},
		{
			"current_role": map[string]any{"role": map[string]any{
				"work_area": "IT", "specialization": "Cybersecurity", "job_title": "Web Developer",
			}},
			"experience": map[string]any{"entries": []any{
				map[string]any{"company": "Acme", "start": "2020-01", "end": "current"},
				map[string]any{"id": "keep-me", "title": strings.Repeat("t", 200), "extra": "x"},
				"not an object",
			}},
			"expertise": map[string]any{
				"values": []any{"purpose", "learning", "autonomy", "stability", "purpose"},
			},
		},
	}

	for _, track := range Tracks() {
		tpl := mustTemplate(t, track)
		for _, p := range partials {
			once := tpl.Hydrate(p)
			twice := tpl.Hydrate(once.Document())
			assert.True(t, once.Equal(twice), "%s: %v", track, p)

			data, err := json.Marshal(once)
			require.NoError(t, err)
			fromJSON, err := tpl.HydrateJSON(data)
			require.NoError(t, err)
			assert.True(t, once.Equal(fromJSON), "%s via JSON: %v", track, p)
		}
	}
}

func TestHydrate_NormalizesEntriesAndSelection(t *testing.T) {
	tpl := mustTemplate(t, TrackCore)
	d := tpl.Hydrate(map[string]any{
		"current_role": map[string]any{"role": map[string]any{
			"work_area": "IT", "specialization": "Cybersecurity", "job_title": "Web Developer",
		}},
		"experience": map[string]any{"entries": []any{
			map[string]any{"company": "Acme"},
			map[string]any{"id": "keep-me", "title": strings.Repeat("t", 200), "extra": "x"},
		}},
	})

	sel := d.Selection("current_role.role")
	assert.Equal(t, taxonomy.AreaIT, sel.WorkArea)
	assert.Equal(t, taxonomy.SpecCybersecurity, sel.Specialization)
	assert.Empty(t, sel.JobTitle, "title outside the specialization is dropped")

	entries := d.Entries("experience.entries")
	require.Len(t, entries, 2)
	assert.NotEmpty(t, entries[0].ID())
	assert.Equal(t, "keep-me", entries[1].ID())
	assert.Len(t, entries[1]["title"], 80)
	assert.NotContains(t, entries[1], "extra")
}

func TestHydrate_CapsLists(t *testing.T) {
	tpl := mustTemplate(t, TrackAscent)
	var items []any
	for range 10 {
		items = append(items, map[string]any{"name": "Ref"})
	}
	d := tpl.Hydrate(map[string]any{
		"references": map[string]any{"entries": items},
		"skills":     map[string]any{"tags": []any{"budgeting", "coaching", "negotiation", "data_analysis", "public_speaking", "product_thinking", "strategic_planning"}},
	})
	assert.Len(t, d.Entries("references.entries"), 3)
	assert.Len(t, d.Tags("skills.tags"), 6)
}

func TestUpdateField_TruncatesToExactMax(t *testing.T) {
	for _, track := range Tracks() {
		tpl := mustTemplate(t, track)
		d := tpl.Defaults()
		for _, path := range tpl.Paths() {
			f, _ := tpl.Field(path)
			if f.Kind != KindText || f.MaxLen == 0 {
				continue
			}
			next, err := d.UpdateField(path, strings.Repeat("é", f.MaxLen+25))
			require.NoError(t, err)
			assert.Equal(t, f.MaxLen, len([]rune(next.Text(path))), "%s %s", track, path)
		}
	}
}

func TestUpdateField_IsPure(t *testing.T) {
	d := mustTemplate(t, TrackCore).Defaults()

	next, err := d.UpdateField("essentials.headline", "Head of Ops")
	require.NoError(t, err)

	assert.Equal(t, "", d.Text("essentials.headline"))
	assert.Equal(t, "Head of Ops", next.Text("essentials.headline"))
	for _, path := range d.Template().Paths() {
		if path == "essentials.headline" {
			continue
		}
		v1, _ := d.Get(path)
		v2, _ := next.Get(path)
		assert.Equal(t, v1, v2, path)
	}
}

func TestUpdateField_Errors(t *testing.T) {
	d := mustTemplate(t, TrackCore).Defaults()

	tests := []struct {
		name  string
		path  string
		value any
		want  error
	}{
		{"unknown path", "essentials.nope", "x", ErrUnknownField},
		{"text gets int", "essentials.headline", 3, ErrTypeMismatch},
		{"unknown choice", "essentials.notice_period", "never", ErrUnknownOption},
		{"unknown tag", "expertise.skills", []string{"juggling"}, ErrUnknownOption},
		{"too many tags", "expertise.values", []string{"purpose", "learning", "autonomy", "stability"}, ErrLimitReached},
		{"flag gets string", "essentials.open_to_relocation", "true", ErrTypeMismatch},
		{"bad selection", "current_role.role", cascade.Selection{WorkArea: "IT", JobTitle: "Chef"}, cascade.ErrInconsistent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := d.UpdateField(tt.path, tt.value)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, next)
		})
	}
}

func TestToggleTag_TwiceRestoresMembership(t *testing.T) {
	d := mustTemplate(t, TrackGettingStarted).Defaults()
	path := "strengths.tags"

	d, err := d.UpdateField(path, []string{"teamwork", "numeracy", "creativity"})
	require.NoError(t, err)

	for _, key := range []string{"teamwork", "numeracy", "creativity", "leadership"} {
		once, err := d.ToggleTag(path, key)
		require.NoError(t, err)
		twice, err := once.ToggleTag(path, key)
		require.NoError(t, err)
		assert.ElementsMatch(t, d.Tags(path), twice.Tags(path), key)
	}
}

func TestToggleTag_OrderPolicy(t *testing.T) {
	d := mustTemplate(t, TrackGettingStarted).Defaults()
	path := "strengths.tags"
	d, err := d.UpdateField(path, []string{"teamwork", "numeracy", "creativity"})
	require.NoError(t, err)

	removed, err := d.ToggleTag(path, "numeracy")
	require.NoError(t, err)
	assert.Equal(t, []string{"teamwork", "creativity"}, removed.Tags(path))

	added, err := removed.ToggleTag(path, "numeracy")
	require.NoError(t, err)
	assert.Equal(t, []string{"teamwork", "creativity", "numeracy"}, added.Tags(path))
}

func TestToggleTag_FourthOnMaxThreeRejected(t *testing.T) {
	d := mustTemplate(t, TrackPivot).Defaults()
	path := "motivation.reasons"

	var err error
	for _, key := range []string{"new_challenge", "passion", "relocation"} {
		d, err = d.ToggleTag(path, key)
		require.NoError(t, err)
	}
	assert.False(t, d.CanAdd(path))

	next, err := d.ToggleTag(path, "health")
	assert.ErrorIs(t, err, ErrLimitReached)
	assert.Nil(t, next)
	assert.Equal(t, []string{"new_challenge", "passion", "relocation"}, d.Tags(path))
}

func TestToggleTag_Errors(t *testing.T) {
	d := mustTemplate(t, TrackPivot).Defaults()

	_, err := d.ToggleTag("motivation.reasons", "boredom")
	assert.ErrorIs(t, err, ErrUnknownOption)

	_, err = d.ToggleTag("motivation.story", "x")
	assert.ErrorIs(t, err, ErrTypeMismatch)
}

func TestEntries_AddEditRemove(t *testing.T) {
	d := mustTemplate(t, TrackEncore).Defaults()
	path := "experience.entries"

	d, id, err := d.AddEntry(path, map[string]string{
		"company": "Royal Mail",
		"title":   "Depot Manager",
		"start":   "1998-04",
		"end":     OngoingRetired,
		"salary":  "dropped",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	entries := d.Entries(path)
	require.Len(t, entries, 1)
	assert.Equal(t, id, entries[0].ID())
	assert.Equal(t, "Royal Mail", entries[0]["company"])
	assert.NotContains(t, entries[0], "salary")

	edited, err := d.EditEntry(path, id, "summary", strings.Repeat("s", 500))
	require.NoError(t, err)
	assert.Len(t, edited.Entries(path)[0]["summary"], 300)
	assert.Empty(t, d.Entries(path)[0]["summary"], "parent draft is untouched")

	_, err = d.EditEntry(path, id, "salary", "x")
	assert.ErrorIs(t, err, ErrUnknownField)
	_, err = d.EditEntry(path, "missing", "summary", "x")
	assert.ErrorIs(t, err, ErrEntryNotFound)

	removed, err := edited.RemoveEntry(path, id)
	require.NoError(t, err)
	assert.Empty(t, removed.Entries(path))

	_, err = removed.RemoveEntry(path, id)
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestEntries_MaxIsHard(t *testing.T) {
	d := mustTemplate(t, TrackGettingStarted).Defaults()
	path := "references.entries"

	var err error
	for range 2 {
		d, _, err = d.AddEntry(path, map[string]string{"name": "Ref"})
		require.NoError(t, err)
	}
	_, _, err = d.AddEntry(path, map[string]string{"name": "One too many"})
	assert.ErrorIs(t, err, ErrLimitReached)
	assert.Len(t, d.Entries(path), 2)
}

func TestApplyCascade(t *testing.T) {
	d := mustTemplate(t, TrackPivot).Defaults()
	path := "target_role.role"

	d, ok, err := d.ApplyCascade(path, cascade.Event{Kind: cascade.EventWorkArea, Value: "IT"})
	require.NoError(t, err)
	require.True(t, ok)
	d, ok, err = d.ApplyCascade(path, cascade.Event{Kind: cascade.EventSpecialization, Value: "Cybersecurity"})
	require.NoError(t, err)
	require.True(t, ok)

	same, ok, err := d.ApplyCascade(path, cascade.Event{Kind: cascade.EventJobTitle, Value: "Chef"})
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Same(t, d, same)

	d, ok, err = d.ApplyCascade(path, cascade.Event{Kind: cascade.EventJobTitle, Value: "Security Architect"})
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Security Architect", d.Selection(path).JobTitle)

	d, _, err = d.ApplyCascade(path, cascade.Event{Kind: cascade.EventWorkArea, Value: "Finance"})
	require.NoError(t, err)
	assert.Equal(t, cascade.Selection{WorkArea: taxonomy.AreaFinance}, d.Selection(path))
}

func TestApplyEdit(t *testing.T) {
	d := mustTemplate(t, TrackCore).Defaults()
	ops := []EditOp{
		{Op: "set", Path: "essentials.headline", Value: json.RawMessage(`"Finance director"`)},
		{Op: "set", Path: "essentials.open_to_relocation", Value: json.RawMessage(`true`)},
		{Op: "toggle", Path: "expertise.skills", Key: "budgeting"},
		{Op: "add_entry", Path: "references.entries", Value: json.RawMessage(`{"name":"J. Smith","relationship":"Former CFO"}`)},
		{Op: "cascade", Path: "current_role.role", Key: "work_area", Value: json.RawMessage(`"Finance"`)},
	}

	var err error
	for _, op := range ops {
		d, err = d.ApplyEdit(op)
		require.NoError(t, err, op.Op)
	}

	assert.Equal(t, "Finance director", d.Text("essentials.headline"))
	assert.True(t, d.Flag("essentials.open_to_relocation"))
	assert.Equal(t, []string{"budgeting"}, d.Tags("expertise.skills"))
	require.Len(t, d.Entries("references.entries"), 1)
	assert.Equal(t, taxonomy.AreaFinance, d.Selection("current_role.role").WorkArea)

	id := d.Entries("references.entries")[0].ID()
	d, err = d.ApplyEdit(EditOp{Op: "edit_entry", Path: "references.entries", ID: id, Key: "contact", Value: json.RawMessage(`"js@example.com"`)})
	require.NoError(t, err)
	assert.Equal(t, "js@example.com", d.Entries("references.entries")[0]["contact"])

	d, err = d.ApplyEdit(EditOp{Op: "remove_entry", Path: "references.entries", ID: id})
	require.NoError(t, err)
	assert.Empty(t, d.Entries("references.entries"))
}

func TestApplyEdit_Rejects(t *testing.T) {
	d := mustTemplate(t, TrackCore).Defaults()

	tests := []struct {
		name string
		op   EditOp
	}{
		{"unknown op", EditOp{Op: "rename", Path: "essentials.headline"}},
		{"missing path", EditOp{Op: "set"}},
		{"wrong value type", EditOp{Op: "set", Path: "essentials.headline", Value: json.RawMessage(`12`)}},
		{"unknown cascade kind", EditOp{Op: "cascade", Path: "current_role.role", Key: "colour", Value: json.RawMessage(`"IT"`)}},
		{"cascade value not offered", EditOp{Op: "cascade", Path: "current_role.role", Key: "job_title", Value: json.RawMessage(`"Chef"`)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := d.ApplyEdit(tt.op)
			assert.Error(t, err)
			assert.Nil(t, next)
		})
	}
}

func TestWarnings_SoftMinimums(t *testing.T) {
	d := mustTemplate(t, TrackGettingStarted).Defaults()

	paths := func(ws []Warning) []string {
		var out []string
		for _, w := range ws {
			out = append(out, w.Path)
		}
		return out
	}
	assert.Equal(t, []string{"aspirations.work_preferences", "strengths.tags"}, paths(d.Warnings()))

	d, err := d.UpdateField("strengths.tags", []string{"teamwork", "numeracy"})
	require.NoError(t, err)
	ws := d.Warnings()
	require.Len(t, ws, 2)
	assert.Equal(t, "Select 3-6 strengths (2 selected)", ws[1].Message)

	d, err = d.ToggleTag("strengths.tags", "creativity")
	require.NoError(t, err)
	d, err = d.ToggleTag("aspirations.work_preferences", "remote")
	require.NoError(t, err)
	assert.Empty(t, d.Warnings())

	assert.NoError(t, d.Template().Validate(mustTemplate(t, TrackGettingStarted).Defaults()), "minimums never fail validation")
}

func TestValidate(t *testing.T) {
	tpl := mustTemplate(t, TrackAscent)
	good := tpl.Hydrate(map[string]any{
		"essentials": map[string]any{"headline": "Analyst"},
		"experience": map[string]any{"entries": []any{
			map[string]any{"company": "Acme", "start": "2021-03", "end": "current"},
			map[string]any{"company": "Beta", "start": "2019-01", "end": "2021-02"},
		}},
	})
	assert.NoError(t, tpl.Validate(good))

	bad := tpl.Hydrate(map[string]any{
		"experience": map[string]any{"entries": []any{
			map[string]any{"company": "Acme", "start": "March 2021", "end": "now"},
			map[string]any{"company": "Beta", "start": "2021-01", "end": "2019-02"},
		}},
	})
	err := tpl.Validate(bad)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 3)
	assert.Equal(t, "experience.entries[0].start", verr.Errors[0].Path)

	// A draft assembled outside Hydrate and the edit operations.
	forged := tpl.Defaults().with("skills.tags", []string{"budgeting", "budgeting", "juggling"})
	forged = forged.with("essentials.headline", strings.Repeat("x", 121))
	err = tpl.Validate(forged)
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Errors, 2)

	assert.Error(t, tpl.Validate(mustTemplate(t, TrackCore).Defaults()), "draft from another template")
}

func TestJSONSchema_AcceptsOwnDocuments(t *testing.T) {
	for _, track := range Tracks() {
		tpl := mustTemplate(t, track)
		d := tpl.Defaults()
		data, err := json.Marshal(d)
		require.NoError(t, err)
		assert.NoError(t, schemas.ValidateDocument(tpl.JSONSchema(), data), track)
	}

	tpl := mustTemplate(t, TrackCore)
	err := schemas.ValidateDocument(tpl.JSONSchema(), []byte(`{"essentials":{"shoe_size":9}}`))
	assert.Error(t, err)
	err = schemas.ValidateDocument(tpl.JSONSchema(), []byte(`{"expertise":{"values":["purpose","purpose"]}}`))
	assert.Error(t, err)
}
