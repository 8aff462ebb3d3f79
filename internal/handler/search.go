package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// The search endpoints are public inventory reads: no X-User-ID required.
// Unknown or malformed query values are ignored, matching the filters' "zero
// value means unconstrained" contract.

// SearchFlights handles GET /search/flights.
// Query: origin, destination, airline, min_price, max_price, date
// (YYYY-MM-DD), page, limit.
func (s *Server) SearchFlights(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.FlightFilter{
		Origin:      q.Get("origin"),
		Destination: q.Get("destination"),
		Airline:     q.Get("airline"),
		MinPrice:    queryInt64(r, "min_price"),
		MaxPrice:    queryInt64(r, "max_price"),
	}
	if t, err := time.ParseInLocation("2006-01-02", q.Get("date"), time.UTC); err == nil {
		filter.Date = &t
	}

	flights, err := s.search.Flights(r.Context(), filter, queryPagination(r))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Flight]{Data: flights})
}

// SearchHotels handles GET /search/hotels.
// Query: location, min_price, max_price, page, limit.
func (s *Server) SearchHotels(w http.ResponseWriter, r *http.Request) {
	filter := domain.HotelFilter{
		Location: r.URL.Query().Get("location"),
		MinPrice: queryInt64(r, "min_price"),
		MaxPrice: queryInt64(r, "max_price"),
	}

	hotels, err := s.search.Hotels(r.Context(), filter, queryPagination(r))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Hotel]{Data: hotels})
}

// SearchActivities handles GET /search/activities.
// Query: location, category, min_price, max_price, page, limit.
func (s *Server) SearchActivities(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ActivityFilter{
		Location: q.Get("location"),
		Category: domain.NormalizeActivityType(q.Get("category")),
		MinPrice: queryInt64(r, "min_price"),
		MaxPrice: queryInt64(r, "max_price"),
	}

	activities, err := s.search.Activities(r.Context(), filter, queryPagination(r))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Activity]{Data: activities})
}

// ListLocations handles GET /locations: the catalog behind the location
// filters, so a client can offer codes and names instead of free text.
func (s *Server) ListLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := s.search.Locations(r.Context())
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, listResponse[domain.Location]{Data: locations})
}

func queryInt64(r *http.Request, name string) int64 {
	v, err := strconv.ParseInt(r.URL.Query().Get(name), 10, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

func queryPagination(r *http.Request) domain.PaginationParams {
	var page, limit *int
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil {
		page = &v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("limit")); err == nil {
		limit = &v
	}
	return domain.NewPaginationParams(page, limit)
}
