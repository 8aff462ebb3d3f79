package repo

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// ConfirmParams carries the resolved inputs into the commit transaction.
type ConfirmParams struct {
	TripID          uuid.UUID
	UserID          uuid.UUID
	PaymentMethodID uuid.UUID
}

// ConfirmOutcome is the result of a committed (or short-circuited) checkout
// transaction.
type ConfirmOutcome struct {
	Trip domain.Trip

	// AlreadyConfirmed is true when the trip was found CONFIRMED inside the
	// transaction — a concurrent attempt won the race. No writes were made.
	AlreadyConfirmed bool
}

// CheckoutRepo runs the atomic commit of a checkout: trip status, booking
// statuses, and the trip's calendar event move together or not at all.
type CheckoutRepo interface {
	// Confirm re-reads the trip inside a fresh transaction with a row lock
	// (the status from any earlier read is NOT trusted — trusting it would
	// be a check-then-act race against a concurrent checkout), then:
	//
	//	(a) sets the trip CONFIRMED and attaches the payment method,
	//	(b) sets every booking in the trip CONFIRMED,
	//	(c) inserts one all-day calendar event spanning the trip's date
	//	    range, when both dates are set.
	//
	// A trip found already CONFIRMED is a no-op success. A trip in any
	// other non-DRAFT state returns domain.ErrInvalidState. Any failure
	// rolls back all three effects; none is ever observed partially
	// applied.
	Confirm(ctx context.Context, params ConfirmParams) (ConfirmOutcome, error)
}

type pgCheckoutRepo struct {
	db beginner
}

// NewCheckoutRepo constructs a CheckoutRepo. In production pass
// *pgxpool.Pool; in tests a pgx.Tx works too (the inner transaction becomes
// a savepoint).
func NewCheckoutRepo(db beginner) CheckoutRepo {
	return &pgCheckoutRepo{db: db}
}

func (r *pgCheckoutRepo) Confirm(ctx context.Context, params ConfirmParams) (ConfirmOutcome, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: begin: %w", err)
	}
	// Rollback after a successful commit is a no-op.
	defer tx.Rollback(ctx)

	// Re-read under FOR UPDATE: blocks a concurrent Confirm of the same
	// trip until this transaction finishes.
	const lockQ = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id FOR UPDATE`

	trip, err := scanTrip(tx.QueryRow(ctx, lockQ, pgx.NamedArgs{"id": params.TripID}))
	if err != nil {
		return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: lock trip: %w", err)
	}

	if trip.Status == domain.TripStatusConfirmed {
		// Lost the race to another checkout; its commit is the effect.
		bookings, err := listBookingsByTrip(ctx, tx, trip.ID)
		if err != nil {
			return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: load bookings: %w", err)
		}
		trip.Bookings = bookings
		return ConfirmOutcome{Trip: trip, AlreadyConfirmed: true}, nil
	}
	if trip.Status != domain.TripStatusDraft {
		return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: trip is %s: %w", trip.Status, domain.ErrInvalidState)
	}

	const confirmTripQ = `
		UPDATE trips
		SET status = @status, payment_method_id = @payment_method_id, updated_at = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	trip, err = scanTrip(tx.QueryRow(ctx, confirmTripQ, pgx.NamedArgs{
		"id":                params.TripID,
		"status":            domain.TripStatusConfirmed,
		"payment_method_id": params.PaymentMethodID,
	}))
	if err != nil {
		return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: confirm trip: %w", err)
	}

	const confirmBookingsQ = `
		UPDATE bookings
		SET status = @status, updated_at = now()
		WHERE trip_id = @trip_id`

	if _, err := tx.Exec(ctx, confirmBookingsQ, pgx.NamedArgs{
		"trip_id": params.TripID,
		"status":  domain.BookingStatusConfirmed,
	}); err != nil {
		return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: confirm bookings: %w", err)
	}

	// The confirmed trip becomes a calendar commitment of its own, so a
	// later overlapping trip is caught by the same conflict check.
	if trip.HasDateRange() {
		const eventQ = `
			INSERT INTO calendar_events (user_id, title, start_at, end_at, is_all_day, description)
			VALUES (@user_id, @title, @start_at, @end_at, true, @description)`

		if _, err := tx.Exec(ctx, eventQ, pgx.NamedArgs{
			"user_id":     params.UserID,
			"title":       "Trip: " + trip.Name,
			"start_at":    *trip.StartDate,
			"end_at":      *trip.EndDate,
			"description": trip.Description,
		}); err != nil {
			return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: create calendar event: %w", err)
		}
	}

	bookings, err := listBookingsByTrip(ctx, tx, params.TripID)
	if err != nil {
		return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: load bookings: %w", err)
	}
	trip.Bookings = bookings

	if err := tx.Commit(ctx); err != nil {
		return ConfirmOutcome{}, fmt.Errorf("repo.CheckoutRepo.Confirm: commit: %w", err)
	}

	return ConfirmOutcome{Trip: trip}, nil
}
