package types

import (
	"github.com/ianattheGrid/jobz/internal/jobs"
)

// JobListResponse is a page of postings.
type JobListResponse struct {
	Postings []jobs.Posting `json:"postings"`
	Count    int            `json:"count"`
}

// MatchListResponse is the ranked postings for a candidate track.
type MatchListResponse struct {
	Track   string       `json:"track"`
	Matches []jobs.Match `json:"matches"`
	Count   int          `json:"count"`
}
