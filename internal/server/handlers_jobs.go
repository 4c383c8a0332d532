package server

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/ianattheGrid/jobz/internal/jobs"
	"github.com/ianattheGrid/jobz/internal/profile"
	"github.com/ianattheGrid/jobz/internal/server/middleware"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
	"github.com/ianattheGrid/jobz/internal/types"
)

// maxListLimit caps the limit query parameter.
const maxListLimit = 100

// parseQueryInt parses an integer query parameter, clamped to maxValue when
// maxValue > 0. Missing or malformed values give defaultValue.
func parseQueryInt(r *http.Request, key string, defaultValue, maxValue int) int {
	valStr := r.URL.Query().Get(key)
	if valStr == "" {
		return defaultValue
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val < 0 {
		return defaultValue
	}
	if maxValue > 0 && val > maxValue {
		return maxValue
	}
	return val
}

// ---------------------------------------------------------------------
// Job Posting Handlers
// ---------------------------------------------------------------------

func (s *Server) handleCreateJob(w http.ResponseWriter, r *http.Request) {
	var in jobs.CreateInput
	if !decodeJSON(w, r, &in) {
		return
	}
	employerID, _ := middleware.GetUserID(r)
	posting, err := s.jobs.Create(r.Context(), employerID, in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, posting)
}

// handleListJobs searches postings. Filters: work_area, specialization,
// job_title, q, employer_id and limit.
func (s *Server) handleListJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := jobs.Filter{
		WorkArea:       taxonomy.WorkArea(q.Get("work_area")),
		Specialization: taxonomy.Specialization(q.Get("specialization")),
		JobTitle:       q.Get("job_title"),
		Query:          q.Get("q"),
		Limit:          parseQueryInt(r, "limit", 0, maxListLimit),
	}
	if raw := q.Get("employer_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			s.errorResponse(w, http.StatusBadRequest, "Invalid employer_id")
			return
		}
		f.EmployerID = id
	}

	postings, err := s.jobs.Search(r.Context(), f)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.JobListResponse{Postings: postings, Count: len(postings)})
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}
	posting, err := s.jobs.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, posting)
}

func (s *Server) handleDeleteJob(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid job posting ID")
		return
	}
	employerID, _ := middleware.GetUserID(r)
	if err := s.jobs.Delete(r.Context(), id, employerID); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleJobMatches ranks postings against the role saved in a track.
func (s *Server) handleJobMatches(w http.ResponseWriter, r *http.Request) {
	track, err := profile.ParseTrack(r.URL.Query().Get("track"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "track query parameter must name a profile track")
		return
	}
	userID, _ := middleware.GetUserID(r)
	d, err := s.profiles.Load(r.Context(), userID, track)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	matches, err := s.jobs.MatchesFor(r.Context(), d.Selection(profile.RolePath(track)))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.MatchListResponse{
		Track:   string(track),
		Matches: matches,
		Count:   len(matches),
	})
}
