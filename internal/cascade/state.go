// Package cascade implements the dependent work area -> specialization -> job title
// picker as a value-typed state machine. Every transition returns a new State;
// changing an upstream tier clears everything below it in the same step.
package cascade

import (
	"errors"
	"fmt"
	"slices"
	"unicode/utf8"

	"github.com/ianattheGrid/jobz/internal/taxonomy"
)

// MaxOtherTextLen caps the free-text role entered under the Other work area.
const MaxOtherTextLen = 100

// ErrInconsistent is returned by Validate for a selection that could not have been
// produced by the transitions, e.g. a title outside its specialization's list.
var ErrInconsistent = errors.New("inconsistent role selection")

// Selection is the persisted part of the cascade.
type Selection struct {
	WorkArea       taxonomy.WorkArea       `json:"work_area"`
	Specialization taxonomy.Specialization `json:"specialization"`
	JobTitle       string                  `json:"job_title"`
	OtherText      string                  `json:"other_text"`
}

// IsZero reports whether nothing has been selected.
func (s Selection) IsZero() bool {
	return s == Selection{}
}

// State is a Selection plus the tier the picker is currently showing.
type State struct {
	Selection
	Visible Tier `json:"visible_tier"`
}

// SelectWorkArea restarts the cascade at area. Specialization, job title and
// other text are always cleared. An unknown area clears the whole state and
// reports false; an empty area is an explicit reset.
func (s State) SelectWorkArea(area taxonomy.WorkArea) (State, bool) {
	if area == "" {
		return State{}, true
	}
	if _, err := taxonomy.ParseWorkArea(string(area)); err != nil {
		return State{}, false
	}

	next := State{Selection: Selection{WorkArea: area}}
	switch {
	case area == taxonomy.AreaOther:
		next.Visible = TierOtherText
	case taxonomy.HasSpecializations(area):
		next.Visible = TierSpecialization
	case taxonomy.HasDirectTitles(area):
		next.Visible = TierJobTitle
	default:
		next.Visible = TierNone
	}
	return next, true
}

// SelectSpecialization picks spec within the current work area and clears the job
// title. It is accepted whenever the current area has a specialization tier and
// spec belongs to it, so the user can change their mind at this tier at any time.
func (s State) SelectSpecialization(spec taxonomy.Specialization) (State, bool) {
	if !taxonomy.HasSpecializations(s.WorkArea) {
		return s, false
	}
	if !slices.Contains(taxonomy.SpecializationsFor(s.WorkArea), spec) {
		return s, false
	}

	next := State{Selection: Selection{WorkArea: s.WorkArea, Specialization: spec}}
	if len(taxonomy.TitlesIn(s.WorkArea, spec)) > 0 {
		next.Visible = TierJobTitle
	} else {
		next.Visible = TierNone
	}
	return next, true
}

// SelectJobTitle sets the title when the title dropdown is showing and title is a
// member of the list currently on offer.
func (s State) SelectJobTitle(title string) (State, bool) {
	if s.Visible != TierJobTitle {
		return s, false
	}
	if !slices.Contains(s.titles(), title) {
		return s, false
	}
	next := s
	next.JobTitle = title
	return next, true
}

// SetOtherText records the free-text role under the Other work area.
func (s State) SetOtherText(text string) (State, bool) {
	if s.Visible != TierOtherText {
		return s, false
	}
	next := s
	next.OtherText = truncate(text, MaxOtherTextLen)
	return next, true
}

// Complete reports whether the selection has reached a leaf: a job title, a
// specialization with no title list, or non-empty text under Other.
func (s State) Complete() bool {
	switch {
	case s.JobTitle != "":
		return true
	case s.WorkArea == taxonomy.AreaOther:
		return s.OtherText != ""
	case s.Specialization != "":
		return s.Visible == TierNone
	default:
		return false
	}
}

func (s State) titles() []string {
	if s.Specialization != "" {
		return taxonomy.TitlesIn(s.WorkArea, s.Specialization)
	}
	return taxonomy.TitlesForArea(s.WorkArea)
}

// Replay rebuilds the State that the transitions would produce for sel, keeping
// the longest prefix of sel that the transitions accept.
func Replay(sel Selection) State {
	s, ok := State{}.SelectWorkArea(sel.WorkArea)
	if !ok || sel.WorkArea == "" {
		return State{}
	}
	if sel.Specialization != "" {
		next, ok := s.SelectSpecialization(sel.Specialization)
		if !ok {
			return s
		}
		s = next
	}
	if sel.JobTitle != "" {
		if next, ok := s.SelectJobTitle(sel.JobTitle); ok {
			s = next
		}
	}
	if sel.OtherText != "" {
		if next, ok := s.SetOtherText(sel.OtherText); ok {
			s = next
		}
	}
	return s
}

// Validate returns ErrInconsistent when sel is not reachable through the
// transitions.
func Validate(sel Selection) error {
	got := Replay(sel).Selection
	if got != sel {
		return fmt.Errorf("%w: %+v", ErrInconsistent, sel)
	}
	return nil
}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
