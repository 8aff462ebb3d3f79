// Package domain contains the core data types and pure business logic for
// the travel agent backend. This package depends on nothing but the standard
// library and google/uuid and is imported by every other internal package
// (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a Trip.
type TripStatus string

const (
	// TripStatusDraft is the initial state. Only draft trips are mutable:
	// bookings may be added or removed, and the trip may be deleted.
	TripStatusDraft TripStatus = "DRAFT"

	// TripStatusConfirmed is reached exclusively through checkout, which
	// moves the trip and all its bookings atomically.
	TripStatusConfirmed TripStatus = "CONFIRMED"

	// TripStatusCompleted marks a confirmed trip whose dates have passed.
	TripStatusCompleted TripStatus = "COMPLETED"

	// TripStatusCancelled is reserved for draft cancellation. Cancelling an
	// already-confirmed trip (refunds etc.) is not part of this system.
	TripStatusCancelled TripStatus = "CANCELLED"
)

// CanTransitionTo reports whether the status may legally move to next.
// DRAFT → CONFIRMED (checkout) or CANCELLED; CONFIRMED → COMPLETED.
// COMPLETED and CANCELLED are terminal.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	switch s {
	case TripStatusDraft:
		return next == TripStatusConfirmed || next == TripStatusCancelled
	case TripStatusConfirmed:
		return next == TripStatusCompleted
	default:
		return false
	}
}

// Trip is the top-level aggregate: a user-owned collection of bookings that
// is assembled while DRAFT and paid for as a single unit at checkout.
type Trip struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	Name            string     `json:"name"`
	Description     string     `json:"description,omitempty"`
	Status          TripStatus `json:"status"`
	StartDate       *time.Time `json:"start_date,omitempty"` // nil when the trip has no dates yet
	EndDate         *time.Time `json:"end_date,omitempty"`
	PaymentMethodID *uuid.UUID `json:"payment_method_id,omitempty"` // set by checkout
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Bookings is populated only by reads that explicitly load children.
	// Order is not significant.
	Bookings []Booking `json:"bookings,omitempty"`
}

// IsMutable reports whether bookings may be added to or removed from the
// trip and whether the trip itself may be edited or deleted.
func (t Trip) IsMutable() bool {
	return t.Status == TripStatusDraft
}

// HasDateRange reports whether both dates are set, which is the condition
// for writing the trip's calendar event at checkout.
func (t Trip) HasDateRange() bool {
	return t.StartDate != nil && t.EndDate != nil
}
