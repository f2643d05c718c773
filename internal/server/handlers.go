package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-tailor/internal/tailor"
)

// SubmitRequest is the body of POST /submit. It mirrors the backend request;
// role_title may be omitted or null.
type SubmitRequest struct {
	ResumeText     string  `json:"resume_text"`
	JobDescription string  `json:"job_description"`
	RoleTitle      *string `json:"role_title"`
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Backend string `json:"backend"`
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, HealthResponse{Status: "ok", Backend: s.backend})
}

// handleSubmit runs one submission through the session and reports its
// outcome.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	role := ""
	if req.RoleTitle != nil {
		role = *req.RoleTitle
	}

	st := s.session.Submit(r.Context(), req.ResumeText, req.JobDescription, role)
	s.jsonResponse(w, HTTPStatus(st), tailor.ViewOf(st))
}

// handleState returns the session's current state
func (s *Server) handleState(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, tailor.ViewOf(s.session.State()))
}

// handleStateStream sends the current state, then one event per transition
// until the client goes away.
func (s *Server) handleStateStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	updates, cancel := s.session.Subscribe()
	defer cancel()

	if err := sse.WriteState(s.session.State()); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case st, ok := <-updates:
			if !ok {
				return
			}
			if err := sse.WriteState(st); err != nil {
				s.log.Debug().Err(err).Msg("state stream closed")
				return
			}
		}
	}
}
