package jobs

import (
	"cmp"
	"slices"

	"github.com/ianattheGrid/jobz/internal/cascade"
)

// Match scores.
const (
	ScoreWorkArea       = 1
	ScoreSpecialization = 2
	ScoreJobTitle       = 3
)

// Match is a posting with its relevance to a candidate role.
type Match struct {
	Posting Posting `json:"posting"`
	Score   int     `json:"score"`
}

// Score rates how closely a posting's role matches a candidate's: the same job
// title under the same specialization beats the same specialization, which
// beats the same work area. Zero means no match.
func Score(candidate, posting cascade.Selection) int {
	switch {
	case candidate.WorkArea == "" || candidate.WorkArea != posting.WorkArea:
		return 0
	case candidate.JobTitle != "" && candidate.JobTitle == posting.JobTitle &&
		candidate.Specialization == posting.Specialization:
		return ScoreJobTitle
	case candidate.Specialization != "" && candidate.Specialization == posting.Specialization:
		return ScoreSpecialization
	default:
		return ScoreWorkArea
	}
}

// Rank drops non-matching postings and orders the rest by score, then newest
// first.
func Rank(candidate cascade.Selection, postings []Posting) []Match {
	out := make([]Match, 0, len(postings))
	for _, p := range postings {
		if score := Score(candidate, p.Role); score > 0 {
			out = append(out, Match{Posting: p, Score: score})
		}
	}
	slices.SortStableFunc(out, func(a, b Match) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return b.Posting.CreatedAt.Compare(a.Posting.CreatedAt)
	})
	return out
}
