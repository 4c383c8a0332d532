package cascade

import "github.com/ianattheGrid/jobz/internal/taxonomy"

// EventKind names the tier an Event targets.
type EventKind string

const (
	EventWorkArea       EventKind = "work_area"
	EventSpecialization EventKind = "specialization"
	EventJobTitle       EventKind = "job_title"
	EventOtherText      EventKind = "other_text"
)

// Valid reports whether k is one of the known event kinds.
func (k EventKind) Valid() bool {
	switch k {
	case EventWorkArea, EventSpecialization, EventJobTitle, EventOtherText:
		return true
	}
	return false
}

// Event is a single picker change, as sent by a form.
type Event struct {
	Kind  EventKind `json:"kind" validate:"required,oneof=work_area specialization job_title other_text"`
	Value string    `json:"value"`
}

// Apply is the reducer form of the transitions. Unknown kinds are ignored.
// A specialization event is accepted while the job title tier is showing as
// well, so a picked specialization can be replaced; the title is cleared.
func Apply(s State, e Event) (State, bool) {
	switch e.Kind {
	case EventWorkArea:
		return s.SelectWorkArea(taxonomy.WorkArea(e.Value))
	case EventSpecialization:
		return s.SelectSpecialization(taxonomy.Specialization(e.Value))
	case EventJobTitle:
		return s.SelectJobTitle(e.Value)
	case EventOtherText:
		return s.SetOtherText(e.Value)
	default:
		return s, false
	}
}

// Options is what a form should render for a State.
type Options struct {
	WorkAreas       []taxonomy.WorkArea       `json:"work_areas"`
	Specializations []taxonomy.Specialization `json:"specializations"`
	JobTitles       []string                  `json:"job_titles"`
}

// OptionsFor returns the option lists for every visible dropdown of s.
func OptionsFor(s State) Options {
	opts := Options{
		WorkAreas:       taxonomy.Areas(),
		Specializations: []taxonomy.Specialization{},
		JobTitles:       []string{},
	}
	if taxonomy.HasSpecializations(s.WorkArea) {
		opts.Specializations = taxonomy.SpecializationsFor(s.WorkArea)
	}
	if s.Visible == TierJobTitle {
		opts.JobTitles = s.titles()
	}
	return opts
}
