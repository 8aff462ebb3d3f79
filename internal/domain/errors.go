package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrForbidden is returned when the acting user is not the owner of the
// entity being read or mutated. Ownership is checked on every mutating
// operation, before any state checks, and independently of whether the
// request could otherwise succeed.
// Handlers should map this to HTTP 403.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidState is returned when a transition or mutation is attempted on
// a Trip or Booking whose current status does not permit it — e.g. adding a
// booking to a CONFIRMED trip.
// Handlers should map this to HTTP 409.
var ErrInvalidState = errors.New("invalid state")

// ErrNoPaymentMethod is returned by checkout when the trip owner has no
// saved payment method at all. This is a recoverable, user-actionable
// failure, not a system error; the handler attaches a redirect hint to the
// payment-setup page.
var ErrNoPaymentMethod = errors.New("no payment method")

// ErrDuplicateOperation is returned when an idempotency key has already been
// accepted for a previous attempt of the same operation, whether that
// attempt completed or is still in flight. The caller should treat the
// original attempt's outcome as authoritative and must not re-execute.
var ErrDuplicateOperation = errors.New("duplicate operation")

// ErrCheckoutFailed is returned when the checkout commit transaction fails
// for a system-level reason (store unavailable, constraint violation,
// timeout). The transaction rolled back, nothing was committed, and the
// operation is safe to retry.
var ErrCheckoutFailed = errors.New("checkout failed")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
