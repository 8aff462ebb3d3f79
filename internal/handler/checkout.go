package handler

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/service"
)

// checkoutRequest is the request body for POST /checkout.
type checkoutRequest struct {
	TripID             uuid.UUID  `json:"trip_id"`
	PaymentMethodID    *uuid.UUID `json:"payment_method_id,omitempty"`
	ProceedIfConflicts bool       `json:"proceed_if_conflicts,omitempty"`
	IdempotencyKey     string     `json:"idempotency_key,omitempty"`
}

// conflictResponse is the 409 body when checkout is blocked on calendar
// conflicts. The client may re-submit with proceed_if_conflicts to override.
type conflictResponse struct {
	Error     ErrorDetail           `json:"error"`
	Conflicts []domain.ConflictPair `json:"conflicts"`
}

// Checkout handles POST /checkout. Success returns the confirmed trip with
// its bookings; a conflict-blocked attempt returns 409 with the conflict
// pairs and no state change.
func (s *Server) Checkout(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}

	var body checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "malformed request body")
		return
	}
	if body.TripID == uuid.Nil {
		requestError(w, "trip_id is required")
		return
	}

	result, err := s.checkout.Checkout(r.Context(), service.CheckoutParams{
		TripID:             body.TripID,
		ActingUserID:       userID,
		PaymentMethodID:    body.PaymentMethodID,
		ProceedIfConflicts: body.ProceedIfConflicts,
		IdempotencyKey:     body.IdempotencyKey,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	if result.Blocked() {
		writeJSON(w, http.StatusConflict, conflictResponse{
			Error: ErrorDetail{
				Code:    "calendar_conflict",
				Message: "trip bookings overlap existing calendar events",
			},
			Conflicts: result.Conflicts,
		})
		return
	}

	writeJSON(w, http.StatusOK, tripToResponse(result.Trip))
}

// PreviewConflicts handles GET /trips/{id}/conflicts: the read-only check a
// client runs before offering the checkout button.
func (s *Server) PreviewConflicts(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	conflicts, err := s.checkout.PreviewConflicts(r.Context(), userID, tripID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.ConflictPair]{Data: conflicts})
}
