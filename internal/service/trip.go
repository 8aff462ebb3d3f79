// Package service contains the business logic for the travel agent API.
// Services validate inputs, enforce ownership and the trip/booking state
// machine, and orchestrate repo calls. No SQL lives here — services depend
// on repo interfaces, not implementations.
//
// Every operation takes the acting user explicitly. There is no ambient
// "current user" anywhere in this package.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

// TripService implements business logic for Trip operations.
type TripService struct {
	trips repo.TripRepo
}

// NewTripService constructs a TripService backed by the provided TripRepo.
func NewTripService(trips repo.TripRepo) *TripService {
	return &TripService{trips: trips}
}

// Create validates and persists a new draft trip owned by actingUserID.
// Returns domain.ErrValidation if the name is missing or the dates are out
// of order.
func (s *TripService) Create(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	trip.UserID = actingUserID
	trip.Status = domain.TripStatusDraft

	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a trip with its bookings.
// Returns domain.ErrNotFound if absent and domain.ErrForbidden if the acting
// user is not the owner.
func (s *TripService) GetByID(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetWithBookings(ctx, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	if trip.UserID != actingUserID {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", domain.ErrForbidden)
	}
	return trip, nil
}

// ListByUser returns all of the acting user's trips.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListByUser(ctx context.Context, actingUserID uuid.UUID) ([]domain.Trip, error) {
	trips, err := s.trips.ListByUser(ctx, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListByUser: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Update overwrites the mutable fields of a draft trip.
// Returns domain.ErrInvalidState if the trip is no longer DRAFT — confirmed
// trips are immutable except for completion.
func (s *TripService) Update(ctx context.Context, actingUserID uuid.UUID, trip domain.Trip) (domain.Trip, error) {
	current, err := s.ownedTrip(ctx, actingUserID, trip.ID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	if !current.IsMutable() {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: trip is %s: %w", current.Status, domain.ErrInvalidState)
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes a draft trip and, via cascade, its bookings.
// Returns domain.ErrInvalidState for non-draft trips: committed money is
// never silently discarded.
func (s *TripService) Delete(ctx context.Context, actingUserID, tripID uuid.UUID) error {
	current, err := s.ownedTrip(ctx, actingUserID, tripID)
	if err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	if !current.IsMutable() {
		return fmt.Errorf("service.TripService.Delete: trip is %s: %w", current.Status, domain.ErrInvalidState)
	}

	if err := s.trips.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Complete moves a CONFIRMED trip to COMPLETED. The trigger is external
// (e.g. the trip's end date passing); this service only checks legality.
func (s *TripService) Complete(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.Trip, error) {
	current, err := s.ownedTrip(ctx, actingUserID, tripID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Complete: %w", err)
	}
	if !current.Status.CanTransitionTo(domain.TripStatusCompleted) {
		return domain.Trip{}, fmt.Errorf("service.TripService.Complete: trip is %s: %w", current.Status, domain.ErrInvalidState)
	}

	result, err := s.trips.UpdateStatus(ctx, tripID, domain.TripStatusCompleted)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Complete: %w", err)
	}
	return result, nil
}

// ownedTrip loads a trip and enforces ownership.
func (s *TripService) ownedTrip(ctx context.Context, actingUserID, tripID uuid.UUID) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Trip{}, err
	}
	if trip.UserID != actingUserID {
		return domain.Trip{}, domain.ErrForbidden
	}
	return trip, nil
}

// validateTrip enforces business rules common to Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - When both dates are set, EndDate must be after StartDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate != nil && trip.EndDate != nil && !trip.EndDate.After(*trip.StartDate) {
		return fmt.Errorf("%w: end date must be after start date", domain.ErrValidation)
	}
	return nil
}
