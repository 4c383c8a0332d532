package types

import (
	"github.com/ianattheGrid/jobz/internal/cascade"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
)

// CascadeRequest applies one picker event to a selection. The selection is
// replayed first, so clients only need to send back what they stored.
type CascadeRequest struct {
	Selection cascade.Selection `json:"selection"`
	Event     cascade.Event     `json:"event"`
}

// CascadeResponse is the picker state after an event, with the dropdown
// options to render.
type CascadeResponse struct {
	State    cascade.State   `json:"state"`
	Applied  bool            `json:"applied"`
	Complete bool            `json:"complete"`
	Options  cascade.Options `json:"options"`
}

// NewCascadeResponse builds the response for s.
func NewCascadeResponse(s cascade.State, applied bool) CascadeResponse {
	return CascadeResponse{
		State:    s,
		Applied:  applied,
		Complete: s.Complete(),
		Options:  cascade.OptionsFor(s),
	}
}

// WorkAreaResponse describes one work area of the taxonomy.
type WorkAreaResponse struct {
	WorkArea        taxonomy.WorkArea         `json:"work_area"`
	Specializations []taxonomy.Specialization `json:"specializations"`
	JobTitles       []string                  `json:"job_titles"`
}

// NewWorkAreaResponse looks up area in the taxonomy.
func NewWorkAreaResponse(area taxonomy.WorkArea) WorkAreaResponse {
	return WorkAreaResponse{
		WorkArea:        area,
		Specializations: taxonomy.SpecializationsFor(area),
		JobTitles:       taxonomy.TitlesForArea(area),
	}
}

// TitlesResponse lists the titles of one specialization.
type TitlesResponse struct {
	Specialization taxonomy.Specialization `json:"specialization"`
	JobTitles      []string                `json:"job_titles"`
}
