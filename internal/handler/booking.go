package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/service"
)

// addBookingRequest is the request body for POST /trips/{id}/bookings.
// check_in/check_out (hotel) are calendar dates; date (activity) is a full
// instant because activities have a time of day.
type addBookingRequest struct {
	Type     string              `json:"type"`
	ItemID   uuid.UUID           `json:"item_id"`
	CheckIn  *openapi_types.Date `json:"check_in,omitempty"`
	CheckOut *openapi_types.Date `json:"check_out,omitempty"`
	Date     *time.Time          `json:"date,omitempty"`
	Details  json.RawMessage     `json:"details,omitempty"`
}

// AddBooking handles POST /trips/{id}/bookings.
func (s *Server) AddBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var body addBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "malformed request body")
		return
	}

	params := service.AddBookingParams{
		Type:    domain.BookingType(body.Type),
		ItemID:  body.ItemID,
		Date:    body.Date,
		Details: body.Details,
	}
	if body.CheckIn != nil {
		ci := body.CheckIn.Time
		params.CheckIn = &ci
	}
	if body.CheckOut != nil {
		co := body.CheckOut.Time
		params.CheckOut = &co
	}

	booking, err := s.bookings.AddToTrip(r.Context(), userID, tripID, params)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

// RemoveBooking handles DELETE /trips/{id}/bookings/{bookingID}.
func (s *Server) RemoveBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	tripID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	bookingID, ok := pathUUID(w, r, "bookingID")
	if !ok {
		return
	}

	if err := s.bookings.Remove(r.Context(), userID, tripID, bookingID); err != nil {
		s.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
