package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ianattheGrid/jobz/internal/cascade"
	"github.com/ianattheGrid/jobz/internal/profile"
	"github.com/ianattheGrid/jobz/internal/server/middleware"
	"github.com/ianattheGrid/jobz/internal/types"
)

var validate = validator.New()

// ---------------------------------------------------------------------
// Profile Handlers
// ---------------------------------------------------------------------

// pathTrack parses the {track} path value, writing a 404 for unknown tracks.
func (s *Server) pathTrack(w http.ResponseWriter, r *http.Request) (profile.Track, bool) {
	track, err := profile.ParseTrack(r.PathValue("track"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return "", false
	}
	return track, true
}

func (s *Server) handleProfileSchema(w http.ResponseWriter, r *http.Request) {
	track, ok := s.pathTrack(w, r)
	if !ok {
		return
	}
	tpl, err := profile.TemplateFor(track)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tpl.JSONSchema())
}

func (s *Server) handleListProfiles(w http.ResponseWriter, r *http.Request) {
	userID, _ := middleware.GetUserID(r)
	drafts, err := s.profiles.LoadAll(r.Context(), userID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	resp := types.ProfilesResponse{Profiles: make(map[profile.Track]types.ProfileResponse, len(drafts))}
	for track, d := range drafts {
		resp.Profiles[track] = types.NewProfileResponse(d)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	track, ok := s.pathTrack(w, r)
	if !ok {
		return
	}
	userID, _ := middleware.GetUserID(r)
	d, err := s.profiles.Load(r.Context(), userID, track)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.NewProfileResponse(d))
}

// handlePutProfile replaces the whole track document.
func (s *Server) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	track, ok := s.pathTrack(w, r)
	if !ok {
		return
	}
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil || !json.Valid(raw) {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	userID, _ := middleware.GetUserID(r)
	d, err := s.profiles.SaveDocument(r.Context(), userID, track, raw)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.NewProfileResponse(d))
}

// handleEditProfile applies a batch of edits to the stored draft and saves
// the result. Nothing is written unless every edit succeeds.
func (s *Server) handleEditProfile(w http.ResponseWriter, r *http.Request) {
	track, ok := s.pathTrack(w, r)
	if !ok {
		return
	}
	var req types.EditRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		s.fail(w, r, err)
		return
	}

	userID, _ := middleware.GetUserID(r)
	d, err := s.profiles.Load(r.Context(), userID, track)
	if err != nil {
		s.fail(w, r, err)
		return
	}

	for i, op := range req.Edits {
		next, err := d.ApplyEdit(op)
		if op.Op == "cascade" && cascade.EventKind(op.Key).Valid() {
			s.metrics.CascadeTransition(op.Key, err == nil)
		}
		if err != nil {
			s.fail(w, r, fmt.Errorf("edit %d (%s %s): %w", i, op.Op, op.Path, err))
			return
		}
		d = next
	}

	if err := s.profiles.Save(r.Context(), userID, d); err != nil {
		s.fail(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, types.NewProfileResponse(d))
}

// handlePreviewEdits applies edits to the posted document and returns the
// result without saving it. Unlike handleEditProfile a failing edit is skipped
// and reported, and the rest still apply.
func (s *Server) handlePreviewEdits(w http.ResponseWriter, r *http.Request) {
	track, ok := s.pathTrack(w, r)
	if !ok {
		return
	}
	var req types.PreviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		s.fail(w, r, err)
		return
	}

	tpl, err := profile.TemplateFor(track)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	d, err := tpl.HydrateJSON(req.Profile)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid profile document")
		return
	}

	rejected := []types.RejectedEdit{}
	for i, op := range req.Edits {
		next, err := d.ApplyEdit(op)
		if err != nil {
			rejected = append(rejected, types.RejectedEdit{Index: i, Op: op.Op, Path: op.Path, Error: err.Error()})
			continue
		}
		d = next
	}
	s.jsonResponse(w, http.StatusOK, types.PreviewResponse{
		ProfileResponse: types.NewProfileResponse(d),
		Rejected:        rejected,
	})
}
