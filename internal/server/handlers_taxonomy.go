package server

import (
	"net/http"

	"github.com/ianattheGrid/jobz/internal/cascade"
	"github.com/ianattheGrid/jobz/internal/taxonomy"
	"github.com/ianattheGrid/jobz/internal/types"
)

// ---------------------------------------------------------------------
// Taxonomy Handlers
// ---------------------------------------------------------------------

func (s *Server) handleListAreas(w http.ResponseWriter, _ *http.Request) {
	areas := taxonomy.Areas()
	out := make([]types.WorkAreaResponse, len(areas))
	for i, a := range areas {
		out[i] = types.NewWorkAreaResponse(a)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"work_areas": out})
}

func (s *Server) handleGetArea(w http.ResponseWriter, r *http.Request) {
	area, err := taxonomy.ParseWorkArea(r.PathValue("area"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, types.NewWorkAreaResponse(area))
}

func (s *Server) handleListTitles(w http.ResponseWriter, r *http.Request) {
	spec, err := taxonomy.ParseSpecialization(r.PathValue("spec"))
	if err != nil {
		s.errorResponse(w, http.StatusNotFound, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, types.TitlesResponse{
		Specialization: spec,
		JobTitles:      taxonomy.TitlesFor(spec),
	})
}

func (s *Server) handleListGaps(w http.ResponseWriter, _ *http.Request) {
	gaps := taxonomy.Gaps()
	if gaps == nil {
		gaps = []taxonomy.Gap{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"gaps": gaps})
}

// handleCascade replays the posted selection and applies one event to it. An
// event that is not on offer leaves the state unchanged with applied=false,
// except an unknown work area, which resets the picker.
func (s *Server) handleCascade(w http.ResponseWriter, r *http.Request) {
	var req types.CascadeRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req.Event); err != nil {
		s.fail(w, r, err)
		return
	}

	next, applied := cascade.Apply(cascade.Replay(req.Selection), req.Event)
	s.metrics.CascadeTransition(string(req.Event.Kind), applied)
	s.jsonResponse(w, http.StatusOK, types.NewCascadeResponse(next, applied))
}
