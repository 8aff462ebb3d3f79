package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// The /profile surface: the saved payment methods checkout draws from and
// the personal calendar it checks conflicts against. This is where the 402
// response's redirect hint points.

// ListPaymentMethods handles GET /profile/payment-methods.
func (s *Server) ListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}

	methods, err := s.profile.PaymentMethods(r.Context(), userID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.PaymentMethod]{Data: methods})
}

// ListCalendarEvents handles GET /profile/calendar.
func (s *Server) ListCalendarEvents(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}

	events, err := s.profile.CalendarEvents(r.Context(), userID)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.CalendarEvent]{Data: events})
}

// calendarEventRequest is the request body for POST /profile/calendar.
// Start/end are full instants; the interval is half-open.
type calendarEventRequest struct {
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	IsAllDay    bool      `json:"is_all_day,omitempty"`
	Description string    `json:"description,omitempty"`
}

// CreateCalendarEvent handles POST /profile/calendar.
func (s *Server) CreateCalendarEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}

	var body calendarEventRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		requestError(w, "malformed request body")
		return
	}

	created, err := s.profile.AddCalendarEvent(r.Context(), userID, domain.CalendarEvent{
		Title:       body.Title,
		Start:       body.Start,
		End:         body.End,
		IsAllDay:    body.IsAllDay,
		Description: body.Description,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// DeleteCalendarEvent handles DELETE /profile/calendar/{eventID}.
func (s *Server) DeleteCalendarEvent(w http.ResponseWriter, r *http.Request) {
	userID, ok := s.actingUser(w, r)
	if !ok {
		return
	}
	eventID, ok := pathUUID(w, r, "eventID")
	if !ok {
		return
	}

	if err := s.profile.RemoveCalendarEvent(r.Context(), userID, eventID); err != nil {
		s.serviceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
