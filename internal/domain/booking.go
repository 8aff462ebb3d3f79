package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingType discriminates the inventory category a booking refers to.
type BookingType string

const (
	BookingTypeFlight   BookingType = "FLIGHT"
	BookingTypeHotel    BookingType = "HOTEL"
	BookingTypeActivity BookingType = "ACTIVITY"
)

// Valid reports whether t is one of the three known booking types.
func (t BookingType) Valid() bool {
	switch t {
	case BookingTypeFlight, BookingTypeHotel, BookingTypeActivity:
		return true
	}
	return false
}

// BookingStatus is the lifecycle state of a single booking.
type BookingStatus string

const (
	// BookingStatusPending is the state of every booking in a draft trip.
	BookingStatusPending BookingStatus = "PENDING_APPROVAL"

	// BookingStatusConfirmed is set by checkout, together with the parent
	// trip. A booking is never CONFIRMED under a non-CONFIRMED trip.
	BookingStatusConfirmed BookingStatus = "CONFIRMED"

	BookingStatusRejected  BookingStatus = "REJECTED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a tagged variant over {FLIGHT, HOTEL, ACTIVITY}: exactly one of
// FlightID/HotelID/ActivityID is set, matching Type. Use NewBooking to
// construct one; it makes the illegal combinations unrepresentable.
//
// StartDate/EndDate form a half-open interval [start, end): the end instant
// itself is not occupied, so a flight landing exactly when an event starts
// does not conflict with it.
type Booking struct {
	ID         uuid.UUID   `json:"id"`
	TripID     uuid.UUID   `json:"trip_id"`
	Type       BookingType `json:"type"`
	FlightID   *uuid.UUID  `json:"flight_id,omitempty"`
	HotelID    *uuid.UUID  `json:"hotel_id,omitempty"`
	ActivityID *uuid.UUID  `json:"activity_id,omitempty"`

	// TotalAmount is in the smallest currency unit. Integer arithmetic
	// avoids floating-point rounding on money.
	TotalAmount int64 `json:"total_amount"`

	// Details is an opaque structured blob (passenger name, room type,
	// ticket quantity, ...). This layer stores and returns it without
	// interpreting it.
	Details json.RawMessage `json:"details,omitempty"`

	StartDate time.Time     `json:"start_date"`
	EndDate   time.Time     `json:"end_date"`
	Status    BookingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// NewBooking builds a PENDING_APPROVAL booking for the given inventory item,
// enforcing the tagged-variant invariant and the interval ordering.
// A zero-length interval (start == end) is allowed: draft assembly uses it
// as a placeholder for activities whose time of day is not yet known.
func NewBooking(tripID uuid.UUID, typ BookingType, itemID uuid.UUID, totalAmount int64, details json.RawMessage, start, end time.Time) (Booking, error) {
	if !typ.Valid() {
		return Booking{}, fmt.Errorf("%w: unknown booking type %q", ErrValidation, typ)
	}
	if itemID == uuid.Nil {
		return Booking{}, fmt.Errorf("%w: item id is required", ErrValidation)
	}
	if end.Before(start) {
		return Booking{}, fmt.Errorf("%w: end date must not be before start date", ErrValidation)
	}
	if totalAmount < 0 {
		return Booking{}, fmt.Errorf("%w: total amount must not be negative", ErrValidation)
	}

	b := Booking{
		TripID:      tripID,
		Type:        typ,
		TotalAmount: totalAmount,
		Details:     details,
		StartDate:   start,
		EndDate:     end,
		Status:      BookingStatusPending,
	}
	switch typ {
	case BookingTypeFlight:
		b.FlightID = &itemID
	case BookingTypeHotel:
		b.HotelID = &itemID
	case BookingTypeActivity:
		b.ActivityID = &itemID
	}
	return b, nil
}

// ItemID returns the inventory reference matching the booking's type.
func (b Booking) ItemID() uuid.UUID {
	switch b.Type {
	case BookingTypeFlight:
		if b.FlightID != nil {
			return *b.FlightID
		}
	case BookingTypeHotel:
		if b.HotelID != nil {
			return *b.HotelID
		}
	case BookingTypeActivity:
		if b.ActivityID != nil {
			return *b.ActivityID
		}
	}
	return uuid.Nil
}
