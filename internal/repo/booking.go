package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

const bookingColumns = `id, trip_id, type, flight_id, hotel_id, activity_id, total_amount, details, start_date, end_date, status, created_at, updated_at`

// BookingRepo defines the persistence operations for Bookings.
// Status changes at checkout do not go through this interface — they happen
// inside the CheckoutRepo transaction so the trip and its bookings move
// together.
type BookingRepo interface {
	// Create inserts a new booking under its trip and returns the persisted
	// record.
	Create(ctx context.Context, booking domain.Booking) (domain.Booking, error)

	// GetByID retrieves a booking scoped to the given trip.
	// Returns domain.ErrNotFound if no such booking exists under that trip.
	GetByID(ctx context.Context, tripID, bookingID uuid.UUID) (domain.Booking, error)

	// ListByTrip returns all bookings of a trip ordered by start_date.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Booking, error)

	// Delete removes a booking scoped to the given trip.
	// Returns domain.ErrNotFound if no such booking exists under that trip.
	Delete(ctx context.Context, tripID, bookingID uuid.UUID) error
}

type pgBookingRepo struct {
	db db
}

// NewBookingRepo constructs a BookingRepo backed by the provided db connection.
func NewBookingRepo(db db) BookingRepo {
	return &pgBookingRepo{db: db}
}

func (r *pgBookingRepo) Create(ctx context.Context, booking domain.Booking) (domain.Booking, error) {
	const q = `
		INSERT INTO bookings (trip_id, type, flight_id, hotel_id, activity_id, total_amount, details, start_date, end_date, status)
		VALUES (@trip_id, @type, @flight_id, @hotel_id, @activity_id, @total_amount, @details, @start_date, @end_date, @status)
		RETURNING ` + bookingColumns

	status := booking.Status
	if status == "" {
		status = domain.BookingStatusPending
	}

	args := pgx.NamedArgs{
		"trip_id":      booking.TripID,
		"type":         booking.Type,
		"flight_id":    booking.FlightID,
		"hotel_id":     booking.HotelID,
		"activity_id":  booking.ActivityID,
		"total_amount": booking.TotalAmount,
		"details":      booking.Details,
		"start_date":   booking.StartDate,
		"end_date":     booking.EndDate,
		"status":       status,
	}

	result, err := scanBooking(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgBookingRepo) GetByID(ctx context.Context, tripID, bookingID uuid.UUID) (domain.Booking, error) {
	const q = `SELECT ` + bookingColumns + ` FROM bookings WHERE id = @id AND trip_id = @trip_id`

	result, err := scanBooking(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": bookingID, "trip_id": tripID}))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("repo.BookingRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgBookingRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Booking, error) {
	bookings, err := listBookingsByTrip(ctx, r.db, tripID)
	if err != nil {
		return nil, fmt.Errorf("repo.BookingRepo.ListByTrip: %w", err)
	}
	return bookings, nil
}

func (r *pgBookingRepo) Delete(ctx context.Context, tripID, bookingID uuid.UUID) error {
	const q = `DELETE FROM bookings WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": bookingID, "trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.BookingRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.BookingRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// listBookingsByTrip is shared with TripRepo.GetWithBookings so both loads
// use the same column list and ordering.
func listBookingsByTrip(ctx context.Context, db db, tripID uuid.UUID) ([]domain.Booking, error) {
	const q = `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE trip_id = @trip_id
		ORDER BY start_date ASC`

	rows, err := db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return bookings, nil
}

// scanBooking maps a single database row into a domain.Booking.
func scanBooking(s scanner) (domain.Booking, error) {
	var b domain.Booking

	err := s.Scan(&b.ID, &b.TripID, &b.Type, &b.FlightID, &b.HotelID, &b.ActivityID,
		&b.TotalAmount, &b.Details, &b.StartDate, &b.EndDate, &b.Status, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Booking{}, domain.ErrNotFound
		}
		return domain.Booking{}, err
	}

	return b, nil
}
