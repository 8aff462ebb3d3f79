package handler

import (
	"encoding/json"
	"net/http"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// CreateDraft handles POST /drafts, the agent-facing assembly entry point.
// The body is a free-form trip intent; every field is optional and malformed
// values degrade rather than fail. 201 when a draft trip was created, 200
// with an empty item list when no inventory matched.
func (s *Server) CreateDraft(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}

	var intent domain.TripIntent
	if err := json.NewDecoder(r.Body).Decode(&intent); err != nil {
		requestError(w, "malformed request body")
		return
	}

	result, err := s.drafts.AssembleDraft(r.Context(), userID, intent)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	status := http.StatusOK
	if result.Trip != nil {
		status = http.StatusCreated
	}
	writeJSON(w, status, result)
}
