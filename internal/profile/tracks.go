package profile

import "fmt"

// Ongoing end-date sentinels for dated entries.
const (
	OngoingCurrent = "current"
	OngoingRetired = "Retired / Left"
)

func headlineField(max int) Field {
	return Field{Key: "headline", Label: "Headline", Kind: KindText, MaxLen: max}
}

func locationField() Field {
	return Field{Key: "location", Label: "Location", Kind: KindText, MaxLen: 80}
}

func roleField(key, label string) Field {
	return Field{Key: key, Label: label, Kind: KindSelection}
}

func experienceField(max int, ongoing string) Field {
	return Field{
		Key:      "entries",
		Label:    "Work experience",
		Kind:     KindEntries,
		MaxItems: max,
		Entry: &EntrySchema{
			Fields: []SubField{
				{Key: "company", Label: "Company", MaxLen: 80},
				{Key: "title", Label: "Job title", MaxLen: 80},
				{Key: "summary", Label: "What you did", MaxLen: 300},
			},
			Dated:        true,
			OngoingLabel: ongoing,
		},
	}
}

func referencesField(max int) Field {
	return Field{
		Key:      "entries",
		Label:    "References",
		Kind:     KindEntries,
		MaxItems: max,
		Entry: &EntrySchema{
			Fields: []SubField{
				{Key: "name", Label: "Name", MaxLen: 80},
				{Key: "relationship", Label: "Relationship", MaxLen: 80},
				{Key: "contact", Label: "Email or phone", MaxLen: 120},
			},
		},
	}
}

func hobbiesField(max int) Field {
	return Field{
		Key:      "entries",
		Label:    "Hobbies and interests",
		Kind:     KindEntries,
		MaxItems: max,
		Entry: &EntrySchema{
			Fields: []SubField{
				{Key: "name", Label: "Hobby", MaxLen: 60},
				{Key: "description", Label: "Tell us more", MaxLen: 200},
			},
		},
	}
}

var gettingStartedTemplate = newTemplate(TrackGettingStarted,
	Block{Key: "essentials", Title: "The essentials", Fields: []Field{
		headlineField(120),
		locationField(),
		{Key: "education_level", Label: "Highest education", Kind: KindChoice, Options: educationLevelOptions},
		{Key: "subject", Label: "Subject studied", Kind: KindText, MaxLen: 100},
	}},
	Block{Key: "aspirations", Title: "Where you want to go", Fields: []Field{
		roleField("target_role", "Role you are aiming for"),
		{Key: "work_preferences", Label: "How you want to work", Kind: KindTags, Options: workPreferenceOptions, MinItems: 1, MaxItems: 4},
	}},
	Block{Key: "strengths", Title: "Your strengths", Fields: []Field{
		{Key: "tags", Label: "Strengths", Kind: KindTags, Options: strengthOptions, MinItems: 3, MaxItems: 6},
		{Key: "about_me", Label: "About me", Kind: KindText, MaxLen: 500},
	}},
	Block{Key: "hobbies", Title: "Hobbies", Fields: []Field{hobbiesField(4)}},
	Block{Key: "references", Title: "References", Fields: []Field{referencesField(2)}},
)

var ascentTemplate = newTemplate(TrackAscent,
	Block{Key: "essentials", Title: "The essentials", Fields: []Field{
		headlineField(120),
		locationField(),
		{Key: "notice_period", Label: "Notice period", Kind: KindChoice, Options: noticePeriodOptions, Default: "one_month"},
	}},
	Block{Key: "current_role", Title: "Current role", Fields: []Field{
		roleField("role", "Current role"),
		{Key: "time_in_role", Label: "Time in role", Kind: KindChoice, Options: timeInRoleOptions},
	}},
	Block{Key: "skills", Title: "Skills and growth", Fields: []Field{
		{Key: "tags", Label: "Skills", Kind: KindTags, Options: professionalSkillOptions, MinItems: 3, MaxItems: 6},
		{Key: "growth_goals", Label: "Where you want to grow", Kind: KindText, MaxLen: 600},
	}},
	Block{Key: "experience", Title: "Experience", Fields: []Field{experienceField(4, OngoingCurrent)}},
	Block{Key: "references", Title: "References", Fields: []Field{referencesField(3)}},
)

var coreTemplate = newTemplate(TrackCore,
	Block{Key: "essentials", Title: "The essentials", Fields: []Field{
		headlineField(150),
		locationField(),
		{Key: "notice_period", Label: "Notice period", Kind: KindChoice, Options: noticePeriodOptions, Default: "one_month"},
		{Key: "open_to_relocation", Label: "Open to relocation", Kind: KindFlag},
	}},
	Block{Key: "current_role", Title: "Current role", Fields: []Field{
		roleField("role", "Current role"),
	}},
	Block{Key: "expertise", Title: "Expertise", Fields: []Field{
		{Key: "skills", Label: "Key skills", Kind: KindTags, Options: professionalSkillOptions, MinItems: 3, MaxItems: 6},
		{Key: "leadership_style", Label: "Leadership style", Kind: KindTags, Options: leadershipStyleOptions, MinItems: 1, MaxItems: 2},
		{Key: "values", Label: "What matters to you", Kind: KindTags, Options: workValueOptions, MinItems: 3, MaxItems: 3},
	}},
	Block{Key: "achievements", Title: "Achievements", Fields: []Field{
		{Key: "highlights", Label: "Career highlights", Kind: KindText, MaxLen: 1000},
	}},
	Block{Key: "experience", Title: "Experience", Fields: []Field{experienceField(6, OngoingCurrent)}},
	Block{Key: "references", Title: "References", Fields: []Field{referencesField(3)}},
)

var encoreTemplate = newTemplate(TrackEncore,
	Block{Key: "essentials", Title: "The essentials", Fields: []Field{
		headlineField(150),
		locationField(),
		{Key: "availability", Label: "Availability", Kind: KindChoice, Options: availabilityOptions, Default: "part_time"},
	}},
	Block{Key: "previous_role", Title: "Most recent role", Fields: []Field{
		roleField("role", "Most recent role"),
	}},
	Block{Key: "contributions", Title: "What you can offer", Fields: []Field{
		{Key: "offer", Label: "Ways to contribute", Kind: KindTags, Options: encoreContributionOptions, MinItems: 1, MaxItems: 4},
		{Key: "mentoring_note", Label: "What you could pass on", Kind: KindText, MaxLen: 500},
	}},
	Block{Key: "experience", Title: "Experience", Fields: []Field{experienceField(4, OngoingRetired)}},
	Block{Key: "hobbies", Title: "Hobbies", Fields: []Field{hobbiesField(4)}},
	Block{Key: "references", Title: "References", Fields: []Field{referencesField(2)}},
)

var pivotTemplate = newTemplate(TrackPivot,
	Block{Key: "essentials", Title: "The essentials", Fields: []Field{
		headlineField(120),
		locationField(),
		{Key: "readiness", Label: "Where you are in the change", Kind: KindChoice, Options: pivotReadinessOptions, Default: "exploring"},
	}},
	Block{Key: "current_role", Title: "Where you are now", Fields: []Field{
		roleField("role", "Current role"),
	}},
	Block{Key: "target_role", Title: "Where you want to be", Fields: []Field{
		roleField("role", "Target role"),
	}},
	Block{Key: "motivation", Title: "Why the change", Fields: []Field{
		{Key: "reasons", Label: "Reasons", Kind: KindTags, Options: pivotReasonOptions, MinItems: 1, MaxItems: 3},
		{Key: "story", Label: "Your story", Kind: KindText, MaxLen: 800},
	}},
	Block{Key: "transferable", Title: "Transferable skills", Fields: []Field{
		{Key: "skills", Label: "Skills you bring", Kind: KindTags, Options: professionalSkillOptions, MinItems: 3, MaxItems: 6},
	}},
	Block{Key: "experience", Title: "Experience", Fields: []Field{experienceField(4, OngoingCurrent)}},
	Block{Key: "references", Title: "References", Fields: []Field{referencesField(3)}},
)

var templates = map[Track]*Template{
	TrackGettingStarted: gettingStartedTemplate,
	TrackAscent:         ascentTemplate,
	TrackCore:           coreTemplate,
	TrackEncore:         encoreTemplate,
	TrackPivot:          pivotTemplate,
}

// TemplateFor returns the field schema of track.
func TemplateFor(track Track) (*Template, error) {
	t, ok := templates[track]
	if !ok {
		return nil, fmt.Errorf("unknown profile track %q", track)
	}
	return t, nil
}

// RolePath is the field holding the role a track is matched on: the target role
// for Getting Started and Pivot, the current or most recent role otherwise.
func RolePath(track Track) string {
	switch track {
	case TrackGettingStarted:
		return "aspirations.target_role"
	case TrackPivot:
		return "target_role.role"
	case TrackEncore:
		return "previous_role.role"
	default:
		return "current_role.role"
	}
}
