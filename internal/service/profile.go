package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

// ProfileService exposes the account-scoped resources behind the /profile
// surface: saved payment methods and the personal calendar. Checkout reads
// both; this service is how the owner sees and maintains them. Payment
// methods are read-only here (card management goes through the payment
// provider, not this API).
type ProfileService struct {
	payments repo.PaymentMethodRepo
	calendar repo.CalendarRepo
}

// NewProfileService constructs a ProfileService backed by the provided repos.
func NewProfileService(payments repo.PaymentMethodRepo, calendar repo.CalendarRepo) *ProfileService {
	return &ProfileService{payments: payments, calendar: calendar}
}

// PaymentMethods returns the acting user's saved payment methods, default
// first. Always non-nil.
func (s *ProfileService) PaymentMethods(ctx context.Context, actingUserID uuid.UUID) ([]domain.PaymentMethod, error) {
	methods, err := s.payments.ListByUser(ctx, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("service.ProfileService.PaymentMethods: %w", err)
	}
	if methods == nil {
		methods = []domain.PaymentMethod{}
	}
	return methods, nil
}

// CalendarEvents returns the acting user's events ordered by start time.
// Always non-nil.
func (s *ProfileService) CalendarEvents(ctx context.Context, actingUserID uuid.UUID) ([]domain.CalendarEvent, error) {
	events, err := s.calendar.ListByUser(ctx, actingUserID)
	if err != nil {
		return nil, fmt.Errorf("service.ProfileService.CalendarEvents: %w", err)
	}
	if events == nil {
		events = []domain.CalendarEvent{}
	}
	return events, nil
}

// AddCalendarEvent creates an event on the acting user's calendar. The
// owner is forced from the acting user; a client-supplied UserID is
// ignored. The event interval is half-open, so End must be strictly after
// Start.
func (s *ProfileService) AddCalendarEvent(ctx context.Context, actingUserID uuid.UUID, event domain.CalendarEvent) (domain.CalendarEvent, error) {
	if event.Title == "" {
		return domain.CalendarEvent{}, fmt.Errorf("service.ProfileService.AddCalendarEvent: %w: title is required", domain.ErrValidation)
	}
	if event.Start.IsZero() || event.End.IsZero() {
		return domain.CalendarEvent{}, fmt.Errorf("service.ProfileService.AddCalendarEvent: %w: start and end are required", domain.ErrValidation)
	}
	if !event.End.After(event.Start) {
		return domain.CalendarEvent{}, fmt.Errorf("service.ProfileService.AddCalendarEvent: %w: end must be after start", domain.ErrValidation)
	}

	event.UserID = actingUserID
	created, err := s.calendar.Create(ctx, event)
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("service.ProfileService.AddCalendarEvent: %w", err)
	}
	return created, nil
}

// RemoveCalendarEvent deletes one of the acting user's events. An event id
// belonging to someone else is indistinguishable from a missing one and
// returns domain.ErrNotFound.
func (s *ProfileService) RemoveCalendarEvent(ctx context.Context, actingUserID, eventID uuid.UUID) error {
	if err := s.calendar.Delete(ctx, actingUserID, eventID); err != nil {
		return fmt.Errorf("service.ProfileService.RemoveCalendarEvent: %w", err)
	}
	return nil
}
