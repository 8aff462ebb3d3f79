package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}

	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "malformed request body")
		return
	}

	created, err := s.trips.Create(r.Context(), userID, body.toDomain(uuid.Nil))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}

	trips, err := s.trips.ListByUser(r.Context(), userID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	data := make([]tripResponse, len(trips))
	for i, t := range trips {
		data[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, listResponse[tripResponse]{Data: data})
}

// GetTrip handles GET /trips/{id}. The response includes the trip's bookings.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	trip, err := s.trips.GetByID(r.Context(), userID, tripID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var body tripRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "malformed request body")
		return
	}

	updated, err := s.trips.Update(r.Context(), userID, body.toDomain(tripID))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.trips.Delete(r.Context(), userID, tripID); err != nil {
		s.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CompleteTrip handles POST /trips/{id}/complete.
func (s *Server) CompleteTrip(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	trip, err := s.trips.Complete(r.Context(), userID, tripID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// --- mapping ----------------------------------------------------------------

// listResponse wraps collection payloads so the top-level JSON value is
// always an object.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

// tripRequest is the request body for creating and updating trips. Dates are
// calendar dates, not instants.
type tripRequest struct {
	Name        string              `json:"name"`
	Description string              `json:"description,omitempty"`
	StartDate   *openapi_types.Date `json:"start_date,omitempty"`
	EndDate     *openapi_types.Date `json:"end_date,omitempty"`
}

func (b tripRequest) toDomain(id uuid.UUID) domain.Trip {
	t := domain.Trip{
		ID:          id,
		Name:        b.Name,
		Description: b.Description,
	}
	if b.StartDate != nil {
		sd := b.StartDate.Time
		t.StartDate = &sd
	}
	if b.EndDate != nil {
		ed := b.EndDate.Time
		t.EndDate = &ed
	}
	return t
}

type tripResponse struct {
	ID              uuid.UUID           `json:"id"`
	UserID          uuid.UUID           `json:"user_id"`
	Name            string              `json:"name"`
	Description     string              `json:"description,omitempty"`
	Status          domain.TripStatus   `json:"status"`
	StartDate       *openapi_types.Date `json:"start_date,omitempty"`
	EndDate         *openapi_types.Date `json:"end_date,omitempty"`
	PaymentMethodID *uuid.UUID          `json:"payment_method_id,omitempty"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
	Bookings        []domain.Booking    `json:"bookings,omitempty"`
}

func tripToResponse(t domain.Trip) tripResponse {
	resp := tripResponse{
		ID:              t.ID,
		UserID:          t.UserID,
		Name:            t.Name,
		Description:     t.Description,
		Status:          t.Status,
		PaymentMethodID: t.PaymentMethodID,
		CreatedAt:       t.CreatedAt,
		UpdatedAt:       t.UpdatedAt,
		Bookings:        t.Bookings,
	}
	if t.StartDate != nil {
		resp.StartDate = &openapi_types.Date{Time: *t.StartDate}
	}
	if t.EndDate != nil {
		resp.EndDate = &openapi_types.Date{Time: *t.EndDate}
	}
	return resp
}

// pathUUID parses a UUID path parameter, writing a 422 on failure.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		requestError(w, "malformed "+name+" path parameter")
		return uuid.Nil, false
	}
	return id, true
}
