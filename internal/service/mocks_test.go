package service_test

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

// Hand-written test doubles for the repo interfaces. Set only the method
// fields your test needs; unset methods return zero values.

type mockTripRepo struct {
	create          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID         func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	getWithBookings func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listByUser      func(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error)
	update          func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	updateStatus    func(ctx context.Context, id uuid.UUID, status domain.TripStatus) (domain.Trip, error)
	delete          func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if m.create == nil {
		return trip, nil
	}
	return m.create(ctx, trip)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	if m.getByID == nil {
		return domain.Trip{}, domain.ErrNotFound
	}
	return m.getByID(ctx, id)
}

func (m *mockTripRepo) GetWithBookings(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	if m.getWithBookings == nil {
		return domain.Trip{}, domain.ErrNotFound
	}
	return m.getWithBookings(ctx, id)
}

func (m *mockTripRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Trip, error) {
	if m.listByUser == nil {
		return nil, nil
	}
	return m.listByUser(ctx, userID)
}

func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if m.update == nil {
		return trip, nil
	}
	return m.update(ctx, trip)
}

func (m *mockTripRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TripStatus) (domain.Trip, error) {
	if m.updateStatus == nil {
		return domain.Trip{ID: id, Status: status}, nil
	}
	return m.updateStatus(ctx, id, status)
}

func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, id)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

type mockBookingRepo struct {
	create     func(ctx context.Context, booking domain.Booking) (domain.Booking, error)
	getByID    func(ctx context.Context, tripID, bookingID uuid.UUID) (domain.Booking, error)
	listByTrip func(ctx context.Context, tripID uuid.UUID) ([]domain.Booking, error)
	delete     func(ctx context.Context, tripID, bookingID uuid.UUID) error
}

func (m *mockBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	if m.create == nil {
		booking.ID = uuid.New()
		return booking, nil
	}
	return m.create(ctx, booking)
}

func (m *mockBookingRepo) GetByID(ctx context.Context, tripID, bookingID uuid.UUID) (domain.Booking, error) {
	if m.getByID == nil {
		return domain.Booking{}, domain.ErrNotFound
	}
	return m.getByID(ctx, tripID, bookingID)
}

func (m *mockBookingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Booking, error) {
	if m.listByTrip == nil {
		return nil, nil
	}
	return m.listByTrip(ctx, tripID)
}

func (m *mockBookingRepo) Delete(ctx context.Context, tripID, bookingID uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, tripID, bookingID)
}

var _ repo.BookingRepo = (*mockBookingRepo)(nil)

type mockPaymentRepo struct {
	getForUser   func(ctx context.Context, id, userID uuid.UUID) (domain.PaymentMethod, error)
	firstForUser func(ctx context.Context, userID uuid.UUID) (domain.PaymentMethod, error)
	listByUser   func(ctx context.Context, userID uuid.UUID) ([]domain.PaymentMethod, error)
}

func (m *mockPaymentRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (domain.PaymentMethod, error) {
	if m.getForUser == nil {
		return domain.PaymentMethod{}, domain.ErrNotFound
	}
	return m.getForUser(ctx, id, userID)
}

func (m *mockPaymentRepo) FirstForUser(ctx context.Context, userID uuid.UUID) (domain.PaymentMethod, error) {
	if m.firstForUser == nil {
		return domain.PaymentMethod{}, domain.ErrNotFound
	}
	return m.firstForUser(ctx, userID)
}

func (m *mockPaymentRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PaymentMethod, error) {
	if m.listByUser == nil {
		return nil, nil
	}
	return m.listByUser(ctx, userID)
}

var _ repo.PaymentMethodRepo = (*mockPaymentRepo)(nil)

type mockCalendarRepo struct {
	create     func(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error)
	listByUser func(ctx context.Context, userID uuid.UUID) ([]domain.CalendarEvent, error)
	delete     func(ctx context.Context, userID, eventID uuid.UUID) error
}

func (m *mockCalendarRepo) Create(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error) {
	if m.create == nil {
		event.ID = uuid.New()
		return event, nil
	}
	return m.create(ctx, event)
}

func (m *mockCalendarRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CalendarEvent, error) {
	if m.listByUser == nil {
		return nil, nil
	}
	return m.listByUser(ctx, userID)
}

func (m *mockCalendarRepo) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, userID, eventID)
}

var _ repo.CalendarRepo = (*mockCalendarRepo)(nil)

type mockIdempotencyRepo struct {
	find     func(ctx context.Context, key string) (domain.IdempotencyRecord, error)
	create   func(ctx context.Context, key string, metadata json.RawMessage) (bool, error)
	markUsed func(ctx context.Context, key string) error
}

func (m *mockIdempotencyRepo) Find(ctx context.Context, key string) (domain.IdempotencyRecord, error) {
	if m.find == nil {
		return domain.IdempotencyRecord{}, domain.ErrNotFound
	}
	return m.find(ctx, key)
}

func (m *mockIdempotencyRepo) Create(ctx context.Context, key string, metadata json.RawMessage) (bool, error) {
	if m.create == nil {
		return true, nil
	}
	return m.create(ctx, key, metadata)
}

func (m *mockIdempotencyRepo) MarkUsed(ctx context.Context, key string) error {
	if m.markUsed == nil {
		return nil
	}
	return m.markUsed(ctx, key)
}

var _ repo.IdempotencyRepo = (*mockIdempotencyRepo)(nil)

type mockCheckoutRepo struct {
	confirm func(ctx context.Context, params repo.ConfirmParams) (repo.ConfirmOutcome, error)
}

func (m *mockCheckoutRepo) Confirm(ctx context.Context, params repo.ConfirmParams) (repo.ConfirmOutcome, error) {
	if m.confirm == nil {
		return repo.ConfirmOutcome{}, nil
	}
	return m.confirm(ctx, params)
}

var _ repo.CheckoutRepo = (*mockCheckoutRepo)(nil)

type mockInventoryRepo struct {
	getFlight        func(ctx context.Context, id uuid.UUID) (domain.Flight, error)
	getHotel         func(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	getActivity      func(ctx context.Context, id uuid.UUID) (domain.Activity, error)
	searchFlights    func(ctx context.Context, f domain.FlightFilter, p domain.PaginationParams) ([]domain.Flight, error)
	searchHotels     func(ctx context.Context, f domain.HotelFilter, p domain.PaginationParams) ([]domain.Hotel, error)
	searchActivities func(ctx context.Context, f domain.ActivityFilter, p domain.PaginationParams) ([]domain.Activity, error)
	locations        func(ctx context.Context) ([]domain.Location, error)
}

func (m *mockInventoryRepo) GetFlight(ctx context.Context, id uuid.UUID) (domain.Flight, error) {
	if m.getFlight == nil {
		return domain.Flight{}, domain.ErrNotFound
	}
	return m.getFlight(ctx, id)
}

func (m *mockInventoryRepo) GetHotel(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	if m.getHotel == nil {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return m.getHotel(ctx, id)
}

func (m *mockInventoryRepo) GetActivity(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	if m.getActivity == nil {
		return domain.Activity{}, domain.ErrNotFound
	}
	return m.getActivity(ctx, id)
}

func (m *mockInventoryRepo) SearchFlights(ctx context.Context, f domain.FlightFilter, p domain.PaginationParams) ([]domain.Flight, error) {
	if m.searchFlights == nil {
		return nil, nil
	}
	return m.searchFlights(ctx, f, p)
}

func (m *mockInventoryRepo) SearchHotels(ctx context.Context, f domain.HotelFilter, p domain.PaginationParams) ([]domain.Hotel, error) {
	if m.searchHotels == nil {
		return nil, nil
	}
	return m.searchHotels(ctx, f, p)
}

func (m *mockInventoryRepo) SearchActivities(ctx context.Context, f domain.ActivityFilter, p domain.PaginationParams) ([]domain.Activity, error) {
	if m.searchActivities == nil {
		return nil, nil
	}
	return m.searchActivities(ctx, f, p)
}

func (m *mockInventoryRepo) Locations(ctx context.Context) ([]domain.Location, error) {
	if m.locations == nil {
		return nil, nil
	}
	return m.locations(ctx)
}

var _ repo.InventoryRepo = (*mockInventoryRepo)(nil)
