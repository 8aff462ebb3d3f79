package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/adiwidjaja/travelagent/spec"
)

// Routes builds the chi router for the API. Middleware is applied by the
// caller (main.go) so tests can mount the bare routes.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/trips", func(r chi.Router) {
		r.Post("/", s.CreateTrip)
		r.Get("/", s.ListTrips)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", s.GetTrip)
			r.Put("/", s.UpdateTrip)
			r.Delete("/", s.DeleteTrip)
			r.Post("/complete", s.CompleteTrip)
			r.Get("/conflicts", s.PreviewConflicts)
			r.Post("/bookings", s.AddBooking)
			r.Delete("/bookings/{bookingID}", s.RemoveBooking)
		})
	})

	r.Post("/checkout", s.Checkout)
	r.Post("/drafts", s.CreateDraft)

	r.Route("/profile", func(r chi.Router) {
		r.Get("/payment-methods", s.ListPaymentMethods)
		r.Get("/calendar", s.ListCalendarEvents)
		r.Post("/calendar", s.CreateCalendarEvent)
		r.Delete("/calendar/{eventID}", s.DeleteCalendarEvent)
	})

	r.Route("/search", func(r chi.Router) {
		r.Get("/flights", s.SearchFlights)
		r.Get("/hotels", s.SearchHotels)
		r.Get("/activities", s.SearchActivities)
	})

	r.Get("/locations", s.ListLocations)

	return r
}

// serveOpenAPI serves the embedded API contract, so the spec and the running
// code are always in sync.
func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(spec.OpenAPI)
}
