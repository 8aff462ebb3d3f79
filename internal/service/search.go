package service

import (
	"context"
	"fmt"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

// SearchService exposes the inventory search collaborator to the HTTP layer.
// Thin by design: filters are already validated by construction (zero values
// mean "unconstrained") and ranking is whatever the store returns.
type SearchService struct {
	inventory repo.InventoryRepo
}

// NewSearchService constructs a SearchService backed by the inventory repo.
func NewSearchService(inventory repo.InventoryRepo) *SearchService {
	return &SearchService{inventory: inventory}
}

// Flights returns a page of matching flights. Always non-nil.
func (s *SearchService) Flights(ctx context.Context, f domain.FlightFilter, p domain.PaginationParams) ([]domain.Flight, error) {
	flights, err := s.inventory.SearchFlights(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Flights: %w", err)
	}
	if flights == nil {
		flights = []domain.Flight{}
	}
	return flights, nil
}

// Hotels returns a page of matching hotels. Always non-nil.
func (s *SearchService) Hotels(ctx context.Context, f domain.HotelFilter, p domain.PaginationParams) ([]domain.Hotel, error) {
	hotels, err := s.inventory.SearchHotels(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Hotels: %w", err)
	}
	if hotels == nil {
		hotels = []domain.Hotel{}
	}
	return hotels, nil
}

// Locations returns the location catalog. Always non-nil.
func (s *SearchService) Locations(ctx context.Context) ([]domain.Location, error) {
	locations, err := s.inventory.Locations(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Locations: %w", err)
	}
	if locations == nil {
		locations = []domain.Location{}
	}
	return locations, nil
}

// Activities returns a page of matching activities. Always non-nil.
func (s *SearchService) Activities(ctx context.Context, f domain.ActivityFilter, p domain.PaginationParams) ([]domain.Activity, error) {
	activities, err := s.inventory.SearchActivities(ctx, f, p)
	if err != nil {
		return nil, fmt.Errorf("service.SearchService.Activities: %w", err)
	}
	if activities == nil {
		activities = []domain.Activity{}
	}
	return activities, nil
}
