package server

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ianattheGrid/jobz/internal/profile"
	"github.com/ianattheGrid/jobz/internal/types"
)

// profileBody mirrors types.ProfileResponse with the draft left as a plain
// document.
type profileBody struct {
	Track    profile.Track              `json:"track"`
	Profile  map[string]map[string]any `json:"profile"`
	Warnings []profile.Warning          `json:"warnings"`
}

func edits(ops ...profile.EditOp) types.EditRequest {
	return types.EditRequest{Edits: ops}
}

func TestProfiles_GetDefaults(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "candidate")

	w := ts.do(t, http.MethodGet, "/v1/profiles/core", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body profileBody
	decode(t, w, &body)
	assert.Equal(t, profile.TrackCore, body.Track)
	assert.Equal(t, "", body.Profile["essentials"]["headline"])
	assert.Empty(t, body.Profile["expertise"]["values"])
	assert.NotEmpty(t, body.Warnings, "empty tag lists are below their minimum")

	assert.Equal(t, http.StatusNotFound, ts.do(t, http.MethodGet, "/v1/profiles/retired", token, nil).Code)
}

func TestProfiles_EmployersForbidden(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "employer")

	for _, req := range []struct{ method, path string }{
		{http.MethodGet, "/v1/profiles"},
		{http.MethodGet, "/v1/profiles/core"},
		{http.MethodPut, "/v1/profiles/core"},
		{http.MethodPost, "/v1/profiles/core/edits"},
	} {
		w := ts.do(t, req.method, req.path, token, `{}`)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", req.method, req.path)
	}
}

func TestProfiles_SchemaIsPublic(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/v1/profiles/pivot/schema", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var schema map[string]any
	decode(t, w, &schema)
	assert.Equal(t, false, schema["additionalProperties"])
	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "motivation")
	assert.Contains(t, props, "target_role")
}

func TestProfiles_PutDocument(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.register(t, "candidate")

	doc := `{"motivation":{"reasons":["passion","new_challenge"],"story":"Teacher to developer"}}`
	w := ts.do(t, http.MethodPut, "/v1/profiles/pivot", token, doc)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body profileBody
	decode(t, w, &body)
	assert.Equal(t, []any{"passion", "new_challenge"}, body.Profile["motivation"]["reasons"])

	stored, err := ts.store.LoadProfileColumn(t.Context(), userID, profile.TrackPivot.Column())
	require.NoError(t, err)
	assert.Contains(t, string(stored), "Teacher to developer")

	w = ts.do(t, http.MethodGet, "/v1/profiles/pivot", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	assert.Equal(t, "Teacher to developer", body.Profile["motivation"]["story"])
}

func TestProfiles_PutRejectsBadDocuments(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.register(t, "candidate")

	tests := []struct {
		name string
		doc  string
	}{
		{"unknown block", `{"hobbies":{"list":["chess"]}}`},
		{"unknown field", `{"motivation":{"mood":"great"}}`},
		{"unknown option", `{"motivation":{"reasons":["boredom"]}}`},
		{"too many tags", `{"motivation":{"reasons":["passion","health","relocation","redundancy"]}}`},
		{"wrong type", `{"motivation":{"story":42}}`},
		{"not json", `{"motivation":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := ts.do(t, http.MethodPut, "/v1/profiles/pivot", token, tt.doc)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}

	stored, err := ts.store.LoadProfileColumn(t.Context(), userID, profile.TrackPivot.Column())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestProfiles_EditBatch(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "candidate")

	w := ts.do(t, http.MethodPost, "/v1/profiles/core/edits", token, edits(
		profile.EditOp{Op: "set", Path: "essentials.headline", Value: json.RawMessage(`"Programme manager"`)},
		profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "purpose"},
		profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "learning"},
		profile.EditOp{Op: "cascade", Path: "current_role.role", Key: "work_area", Value: json.RawMessage(`"IT"`)},
		profile.EditOp{Op: "cascade", Path: "current_role.role", Key: "specialization", Value: json.RawMessage(`"Cybersecurity"`)},
		profile.EditOp{Op: "add_entry", Path: "experience.entries", Value: json.RawMessage(`{"company":"Grid Co","title":"PM","start":"2015-06","end":"current"}`)},
	))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body profileBody
	decode(t, w, &body)
	assert.Equal(t, "Programme manager", body.Profile["essentials"]["headline"])
	assert.Equal(t, []any{"purpose", "learning"}, body.Profile["expertise"]["values"])
	role, ok := body.Profile["current_role"]["role"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Cybersecurity", role["specialization"])

	// toggling again removes the tag and keeps the rest in order
	w = ts.do(t, http.MethodPost, "/v1/profiles/core/edits", token, edits(
		profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "purpose"},
	))
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &body)
	assert.Equal(t, []any{"learning"}, body.Profile["expertise"]["values"])
	assert.Equal(t, "Programme manager", body.Profile["essentials"]["headline"])
}

func TestProfiles_EditBatchIsAllOrNothing(t *testing.T) {
	ts := newTestServer(t)
	token, userID := ts.register(t, "candidate")

	w := ts.do(t, http.MethodPost, "/v1/profiles/core/edits", token, edits(
		profile.EditOp{Op: "set", Path: "essentials.headline", Value: json.RawMessage(`"Should not stick"`)},
		profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "purpose"},
		profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "learning"},
		profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "stability"},
		profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "autonomy"},
	))
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "edit 4")

	stored, err := ts.store.LoadProfileColumn(t.Context(), userID, profile.TrackCore.Column())
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestProfiles_EditErrors(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "candidate")

	tests := []struct {
		name     string
		body     any
		wantCode int
	}{
		{"empty batch", edits(), http.StatusBadRequest},
		{"unknown op", edits(profile.EditOp{Op: "rename", Path: "essentials.headline"}), http.StatusBadRequest},
		{"unknown field", edits(profile.EditOp{Op: "set", Path: "essentials.shoe_size", Value: json.RawMessage(`"9"`)}), http.StatusBadRequest},
		{"unknown option", edits(profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "fame"}), http.StatusBadRequest},
		{"type mismatch", edits(profile.EditOp{Op: "set", Path: "essentials.open_to_relocation", Value: json.RawMessage(`"yes"`)}), http.StatusBadRequest},
		{"unknown cascade kind", edits(profile.EditOp{Op: "cascade", Path: "current_role.role", Key: "colour", Value: json.RawMessage(`"IT"`)}), http.StatusBadRequest},
		{"cascade not on offer", edits(profile.EditOp{Op: "cascade", Path: "current_role.role", Key: "job_title", Value: json.RawMessage(`"Security Architect"`)}), http.StatusBadRequest},
		{"missing entry", edits(profile.EditOp{Op: "remove_entry", Path: "experience.entries", ID: "nope"}), http.StatusNotFound},
		{"unknown track", nil, http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := "/v1/profiles/core/edits"
			if tt.body == nil {
				path = "/v1/profiles/retired/edits"
				tt.body = edits(profile.EditOp{Op: "toggle", Path: "expertise.values", Key: "purpose"})
			}
			w := ts.do(t, http.MethodPost, path, token, tt.body)
			assert.Equal(t, tt.wantCode, w.Code, w.Body.String())
		})
	}
}

func TestProfiles_EditCascadeMetricsOnlyKnownKinds(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "candidate")

	for _, key := range []string{"junk-1", "junk-2", "junk-3", ""} {
		w := ts.do(t, http.MethodPost, "/v1/profiles/core/edits", token, edits(
			profile.EditOp{Op: "cascade", Path: "current_role.role", Key: key, Value: json.RawMessage(`"IT"`)},
		))
		assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	}
	assert.Equal(t, 0, testutil.CollectAndCount(ts.metrics.CascadeTransitions))

	w := ts.do(t, http.MethodPost, "/v1/profiles/core/edits", token, edits(
		profile.EditOp{Op: "cascade", Path: "current_role.role", Key: "work_area", Value: json.RawMessage(`"IT"`)},
	))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, 1, testutil.CollectAndCount(ts.metrics.CascadeTransitions))
	assert.Equal(t, 1.0, testutil.ToFloat64(ts.metrics.CascadeTransitions.WithLabelValues("work_area", "true")))
}

func TestProfiles_ListAll(t *testing.T) {
	ts := newTestServer(t)
	token, _ := ts.register(t, "candidate")

	require.Equal(t, http.StatusOK, ts.do(t, http.MethodPost, "/v1/profiles/encore/edits", token, edits(
		profile.EditOp{Op: "set", Path: "previous_role.role", Value: json.RawMessage(`{"work_area":"Customer Service","job_title":"Customer Service Advisor"}`)},
	)).Code)

	w := ts.do(t, http.MethodGet, "/v1/profiles", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Profiles map[profile.Track]profileBody `json:"profiles"`
	}
	decode(t, w, &resp)
	require.Len(t, resp.Profiles, len(profile.Tracks()))
	role, ok := resp.Profiles[profile.TrackEncore].Profile["previous_role"]["role"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Customer Service Advisor", role["job_title"])
}

func TestProfiles_PreviewSkipsRejectedEdits(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/profiles/pivot/preview", "", types.PreviewRequest{
		Profile: json.RawMessage(`{"motivation":{"reasons":["passion"]}}`),
		Edits: []profile.EditOp{
			{Op: "toggle", Path: "motivation.reasons", Key: "health"},
			{Op: "toggle", Path: "motivation.reasons", Key: "boredom"},
			{Op: "set", Path: "motivation.story", Value: json.RawMessage(`"Teacher to developer"`)},
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		profileBody
		Rejected []types.RejectedEdit `json:"rejected"`
	}
	decode(t, w, &resp)
	assert.Equal(t, []any{"passion", "health"}, resp.Profile["motivation"]["reasons"])
	assert.Equal(t, "Teacher to developer", resp.Profile["motivation"]["story"])
	require.Len(t, resp.Rejected, 1)
	assert.Equal(t, 1, resp.Rejected[0].Index)
	assert.Contains(t, resp.Rejected[0].Error, "boredom")
}

func TestProfiles_PreviewFromDefaults(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodPost, "/v1/profiles/core/preview", "", types.PreviewRequest{
		Edits: []profile.EditOp{{Op: "set", Path: "essentials.location", Value: json.RawMessage(`"Leeds"`)}},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var body profileBody
	decode(t, w, &body)
	assert.Equal(t, "Leeds", body.Profile["essentials"]["location"])

	w = ts.do(t, http.MethodPost, "/v1/profiles/core/preview", "", types.PreviewRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	w = ts.do(t, http.MethodPost, "/v1/profiles/core/preview", "", `{"profile":[1,2],"edits":[{"op":"toggle","path":"expertise.values","key":"purpose"}]}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
