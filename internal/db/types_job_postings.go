package db

import (
	"time"

	"github.com/google/uuid"
)

// DefaultJobPostingLimit caps list queries without an explicit limit
const DefaultJobPostingLimit = 50

// JobPosting is a role advertised by an employer. The role is stored as its
// cascade selection columns.
type JobPosting struct {
	ID             uuid.UUID `json:"id"`
	EmployerID     uuid.UUID `json:"employer_id"`
	Headline       string    `json:"headline"`
	Description    string    `json:"description"`
	Location       string    `json:"location"`
	WorkArea       string    `json:"work_area"`
	Specialization string    `json:"specialization"`
	JobTitle       string    `json:"job_title"`
	OtherText      string    `json:"other_text"`
	CreatedAt      time.Time `json:"created_at"`
}

// JobPostingCreateInput contains fields for creating a job posting
type JobPostingCreateInput struct {
	EmployerID     uuid.UUID
	Headline       string
	Description    string
	Location       string
	WorkArea       string
	Specialization string
	JobTitle       string
	OtherText      string
}

// JobPostingFilter narrows a posting list. Empty fields match everything;
// Query is a case-insensitive substring of the headline or description.
type JobPostingFilter struct {
	WorkArea       string
	Specialization string
	JobTitle       string
	Query          string
	EmployerID     *uuid.UUID
	Limit          int
}

func (f JobPostingFilter) limit() int {
	if f.Limit <= 0 || f.Limit > DefaultJobPostingLimit {
		return DefaultJobPostingLimit
	}
	return f.Limit
}
