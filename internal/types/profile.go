package types

import (
	"encoding/json"

	"github.com/ianattheGrid/jobz/internal/profile"
)

// ProfileResponse is one track draft with its soft-constraint warnings.
type ProfileResponse struct {
	Track    profile.Track     `json:"track"`
	Profile  *profile.Draft    `json:"profile"`
	Warnings []profile.Warning `json:"warnings"`
}

// NewProfileResponse wraps d.
func NewProfileResponse(d *profile.Draft) ProfileResponse {
	w := d.Warnings()
	if w == nil {
		w = []profile.Warning{}
	}
	return ProfileResponse{Track: d.Track(), Profile: d, Warnings: w}
}

// ProfilesResponse holds every track of a user, keyed by track.
type ProfilesResponse struct {
	Profiles map[profile.Track]ProfileResponse `json:"profiles"`
}

// EditRequest is a batch of edits applied in order to the stored draft. The
// batch is all or nothing.
type EditRequest struct {
	Edits []profile.EditOp `json:"edits" validate:"required,min=1,max=50,dive"`
}

// PreviewRequest applies edits to a client-held document without storing
// anything. An empty profile starts from the track defaults.
type PreviewRequest struct {
	Profile json.RawMessage  `json:"profile,omitempty"`
	Edits   []profile.EditOp `json:"edits" validate:"required,min=1,max=50"`
}

// RejectedEdit is an edit the preview skipped.
type RejectedEdit struct {
	Index int    `json:"index"`
	Op    string `json:"op"`
	Path  string `json:"path"`
	Error string `json:"error"`
}

// PreviewResponse is the draft after every accepted edit.
type PreviewResponse struct {
	ProfileResponse
	Rejected []RejectedEdit `json:"rejected"`
}
