package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

// AddBookingParams is the input for adding one inventory item to a draft
// trip. Which date fields are required depends on the type: hotels need
// CheckIn/CheckOut, activities need Date, flights carry their own times.
type AddBookingParams struct {
	Type     domain.BookingType
	ItemID   uuid.UUID
	CheckIn  *time.Time // hotel only
	CheckOut *time.Time // hotel only
	Date     *time.Time // activity only
	Details  json.RawMessage
}

// BookingService implements business logic for adding and removing bookings
// on draft trips. It holds the trip repo because every mutation must verify
// the parent trip's owner and DRAFT status first, and the inventory repo
// because intervals and amounts derive from the referenced item.
type BookingService struct {
	trips     repo.TripRepo
	bookings  repo.BookingRepo
	inventory repo.InventoryRepo
}

// NewBookingService constructs a BookingService backed by the provided repos.
func NewBookingService(trips repo.TripRepo, bookings repo.BookingRepo, inventory repo.InventoryRepo) *BookingService {
	return &BookingService{trips: trips, bookings: bookings, inventory: inventory}
}

// AddToTrip resolves the inventory item, derives the booking's interval and
// total, and persists it as PENDING_APPROVAL under the trip.
//
// Interval and amount per type:
//   - FLIGHT: the flight's own departure/arrival; price per booking.
//   - HOTEL: [CheckIn, CheckOut); total = pricePerNight × nights (ceil).
//   - ACTIVITY: [Date, Date + durationMin); price per booking.
//
// Returns domain.ErrForbidden when the acting user does not own the trip,
// domain.ErrInvalidState when the trip is not DRAFT, and
// domain.ErrNotFound when the inventory item does not exist.
func (s *BookingService) AddToTrip(ctx context.Context, actingUserID, tripID uuid.UUID, params AddBookingParams) (domain.Booking, error) {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.AddToTrip: %w", err)
	}
	if trip.UserID != actingUserID {
		return domain.Booking{}, fmt.Errorf("service.BookingService.AddToTrip: %w", domain.ErrForbidden)
	}
	if !trip.IsMutable() {
		return domain.Booking{}, fmt.Errorf("service.BookingService.AddToTrip: trip is %s: %w", trip.Status, domain.ErrInvalidState)
	}

	var (
		start, end  time.Time
		totalAmount int64
	)

	switch params.Type {
	case domain.BookingTypeFlight:
		flight, err := s.inventory.GetFlight(ctx, params.ItemID)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("service.BookingService.AddToTrip: flight: %w", err)
		}
		start, end = flight.Departure, flight.Arrival
		totalAmount = flight.Price

	case domain.BookingTypeHotel:
		hotel, err := s.inventory.GetHotel(ctx, params.ItemID)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("service.BookingService.AddToTrip: hotel: %w", err)
		}
		if params.CheckIn == nil || params.CheckOut == nil {
			return domain.Booking{}, fmt.Errorf("%w: check-in and check-out dates are required", domain.ErrValidation)
		}
		if !params.CheckOut.After(*params.CheckIn) {
			return domain.Booking{}, fmt.Errorf("%w: check-out must be after check-in", domain.ErrValidation)
		}
		start, end = *params.CheckIn, *params.CheckOut
		totalAmount = hotel.PricePerNight * nightsBetween(start, end)

	case domain.BookingTypeActivity:
		activity, err := s.inventory.GetActivity(ctx, params.ItemID)
		if err != nil {
			return domain.Booking{}, fmt.Errorf("service.BookingService.AddToTrip: activity: %w", err)
		}
		if params.Date == nil {
			return domain.Booking{}, fmt.Errorf("%w: activity date is required", domain.ErrValidation)
		}
		start = *params.Date
		end = start.Add(time.Duration(activity.DurationMin) * time.Minute)
		totalAmount = activity.Price

	default:
		return domain.Booking{}, fmt.Errorf("%w: unknown booking type %q", domain.ErrValidation, params.Type)
	}

	booking, err := domain.NewBooking(tripID, params.Type, params.ItemID, totalAmount, params.Details, start, end)
	if err != nil {
		return domain.Booking{}, err
	}

	result, err := s.bookings.Create(ctx, booking)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("service.BookingService.AddToTrip: %w", err)
	}
	return result, nil
}

// Remove deletes a booking from a draft trip. Mutating bookings of a
// CONFIRMED trip fails with domain.ErrInvalidState.
func (s *BookingService) Remove(ctx context.Context, actingUserID, tripID, bookingID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.BookingService.Remove: %w", err)
	}
	if trip.UserID != actingUserID {
		return fmt.Errorf("service.BookingService.Remove: %w", domain.ErrForbidden)
	}
	if !trip.IsMutable() {
		return fmt.Errorf("service.BookingService.Remove: trip is %s: %w", trip.Status, domain.ErrInvalidState)
	}

	if err := s.bookings.Delete(ctx, tripID, bookingID); err != nil {
		return fmt.Errorf("service.BookingService.Remove: %w", err)
	}
	return nil
}

// nightsBetween counts hotel nights for [checkIn, checkOut), rounding any
// partial night up and never returning less than one.
func nightsBetween(checkIn, checkOut time.Time) int64 {
	nights := int64(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}
	return nights
}
