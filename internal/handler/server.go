// Package handler implements the HTTP handlers for the travel agent API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (trip.go, checkout.go, etc.) but all share the same Server struct so
// they can access its dependencies.
//
// The acting user is taken from the X-User-ID header on every route that
// touches user-owned data. There is no session state in this service; an
// upstream gateway is expected to authenticate the caller and set the header.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	GetByID(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.Trip, error)
	ListByUser(ctx context.Context, actingUserID uuid.UUID) ([]domain.Trip, error)
	Update(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error)
	Delete(ctx context.Context, actingUserID, tripID uuid.UUID) error
	Complete(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.Trip, error)
}

// BookingServicer defines the operations the booking handlers depend on.
type BookingServicer interface {
	AddToTrip(ctx context.Context, actingUserID, tripID uuid.UUID, params service.AddBookingParams) (domain.Booking, error)
	Remove(ctx context.Context, actingUserID, tripID, bookingID uuid.UUID) error
}

// CheckoutServicer defines the operations the checkout handlers depend on.
type CheckoutServicer interface {
	Checkout(ctx context.Context, params service.CheckoutParams) (service.CheckoutResult, error)
	PreviewConflicts(ctx context.Context, actingUserID, tripID uuid.UUID) ([]domain.ConflictPair, error)
}

// DraftServicer defines the operations the draft handler depends on.
type DraftServicer interface {
	AssembleDraft(ctx context.Context, actingUserID uuid.UUID, intent domain.TripIntent) (service.DraftResult, error)
}

// ProfileServicer defines the operations the profile handlers depend on.
type ProfileServicer interface {
	PaymentMethods(ctx context.Context, actingUserID uuid.UUID) ([]domain.PaymentMethod, error)
	CalendarEvents(ctx context.Context, actingUserID uuid.UUID) ([]domain.CalendarEvent, error)
	AddCalendarEvent(ctx context.Context, actingUserID uuid.UUID, event domain.CalendarEvent) (domain.CalendarEvent, error)
	RemoveCalendarEvent(ctx context.Context, actingUserID, eventID uuid.UUID) error
}

// SearchServicer defines the operations the search handlers depend on.
type SearchServicer interface {
	Flights(ctx context.Context, f domain.FlightFilter, p domain.PaginationParams) ([]domain.Flight, error)
	Hotels(ctx context.Context, f domain.HotelFilter, p domain.PaginationParams) ([]domain.Hotel, error)
	Activities(ctx context.Context, f domain.ActivityFilter, p domain.PaginationParams) ([]domain.Activity, error)
	Locations(ctx context.Context) ([]domain.Location, error)
}

// Server holds the service dependencies for all API endpoints.
// Wire it into a chi router via Routes in main.go.
type Server struct {
	trips    TripServicer
	bookings BookingServicer
	checkout CheckoutServicer
	drafts   DraftServicer
	profile  ProfileServicer
	search   SearchServicer
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, bookings BookingServicer, checkout CheckoutServicer, drafts DraftServicer, profile ProfileServicer, search SearchServicer, log *slog.Logger) *Server {
	return &Server{
		trips:    trips,
		bookings: bookings,
		checkout: checkout,
		drafts:   drafts,
		profile:  profile,
		search:   search,
		log:      log,
	}
}

// userIDHeader carries the authenticated caller's identity, set by the
// upstream gateway.
const userIDHeader = "X-User-ID"

// actingUser extracts the acting user from the request header. On a missing
// or malformed header it writes a 401 response and returns ok=false; the
// handler must return without doing anything else.
func (s *Server) actingUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := r.Header.Get(userIDHeader)
	if raw == "" {
		writeError(w, http.StatusUnauthorized, "unauthorized", "missing "+userIDHeader+" header")
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "malformed "+userIDHeader+" header")
		return uuid.Nil, false
	}
	return id, true
}
