package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

// CheckoutParams is the public input of the checkout operation.
type CheckoutParams struct {
	TripID       uuid.UUID
	ActingUserID uuid.UUID

	// PaymentMethodID, when set, must belong to the trip owner. When nil,
	// the owner's default (or oldest) saved method is used.
	PaymentMethodID *uuid.UUID

	// ProceedIfConflicts commits despite calendar conflicts. Without it,
	// any conflict aborts the checkout and is returned for explicit
	// override.
	ProceedIfConflicts bool

	// IdempotencyKey collapses retried attempts into one effect. Required
	// for agent-initiated checkout, where the runtime retries tool calls;
	// optional for direct human checkout, where the UI disables the button
	// instead (a human click is not automatically retried).
	IdempotencyKey string
}

// CheckoutResult is the outcome of a checkout attempt that did not fail
// outright. Exactly one of the two shapes is populated:
//   - Conflicts non-empty: the checkout was aborted without any mutation
//     and the caller may re-invoke with ProceedIfConflicts.
//   - otherwise: Trip holds the confirmed trip with its bookings.
type CheckoutResult struct {
	Trip      domain.Trip
	Conflicts []domain.ConflictPair
}

// Blocked reports whether the attempt was aborted on conflicts.
func (r CheckoutResult) Blocked() bool {
	return len(r.Conflicts) > 0
}

// CheckoutService orchestrates the irreversible commit of a draft trip:
// payment-method resolution → idempotency guard → conflict check → atomic
// multi-row transition → idempotency release.
type CheckoutService struct {
	trips    repo.TripRepo
	payments repo.PaymentMethodRepo
	calendar repo.CalendarRepo
	ledger   repo.IdempotencyRepo
	checkout repo.CheckoutRepo

	// commitTimeout bounds the commit transaction so checkout never blocks
	// indefinitely on the store; expiry surfaces as ErrCheckoutFailed.
	commitTimeout time.Duration

	log *slog.Logger
}

// NewCheckoutService constructs a CheckoutService backed by the provided
// repos. commitTimeout bounds the commit transaction (step 5).
func NewCheckoutService(
	trips repo.TripRepo,
	payments repo.PaymentMethodRepo,
	calendar repo.CalendarRepo,
	ledger repo.IdempotencyRepo,
	checkout repo.CheckoutRepo,
	commitTimeout time.Duration,
	log *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		trips:         trips,
		payments:      payments,
		calendar:      calendar,
		ledger:        ledger,
		checkout:      checkout,
		commitTimeout: commitTimeout,
		log:           log,
	}
}

// Checkout finalizes a trip. Steps, in order, each a potential exit point:
//
//  1. Resolve the trip with bookings; ErrNotFound / ErrForbidden.
//  2. Resolve the payment method; ErrNoPaymentMethod when the owner has
//     none saved at all.
//  3. Idempotency guard when a key is supplied; ErrDuplicateOperation for a
//     key already used or still in flight.
//  4. Conflict check over the owner's calendar, DRAFT trips only (a
//     CONFIRMED trip's own event would conflict with its own bookings).
//     Conflicts without override abort with a CheckoutResult carrying the
//     pairs — a business outcome, not an error, and nothing has been
//     mutated.
//  5. Atomic commit via CheckoutRepo.Confirm, bounded by commitTimeout.
//     System failures surface as ErrCheckoutFailed and are safe to retry:
//     the transaction rolled back.
//  6. Mark the idempotency key used — only after the commit is durable.
//  7. Return the confirmed trip.
//
// Note the accepted gap between steps 4 and 5: a calendar event written
// concurrently in that window is not detected. The cost is a missed warning
// the user can recover from, which does not justify a distributed lock.
func (s *CheckoutService) Checkout(ctx context.Context, params CheckoutParams) (CheckoutResult, error) {
	// 1. Trip + ownership.
	trip, err := s.trips.GetWithBookings(ctx, params.TripID)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w", err)
	}
	if trip.UserID != params.ActingUserID {
		return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w", domain.ErrForbidden)
	}
	// Only drafts can be checked out; an already-CONFIRMED trip is handled
	// by the no-op path inside the transaction.
	if trip.Status != domain.TripStatusDraft && trip.Status != domain.TripStatusConfirmed {
		return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: trip is %s: %w", trip.Status, domain.ErrInvalidState)
	}

	// 2. Payment method: explicit choice must belong to the owner,
	// otherwise fall back to the owner's first saved method.
	var method domain.PaymentMethod
	if params.PaymentMethodID != nil {
		method, err = s.payments.GetForUser(ctx, *params.PaymentMethodID, trip.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w: payment method does not belong to user", domain.ErrValidation)
			}
			return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w", err)
		}
	} else {
		method, err = s.payments.FirstForUser(ctx, trip.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w", domain.ErrNoPaymentMethod)
			}
			return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w", err)
		}
	}

	// 3. Idempotency guard.
	if params.IdempotencyKey != "" {
		if err := s.guardKey(ctx, params); err != nil {
			return CheckoutResult{}, err
		}
	}

	// 4. Conflict check over all bookings × all of the owner's events.
	// Skipped for an already-CONFIRMED trip: the first checkout wrote that
	// trip's own calendar event, which overlaps its own bookings and would
	// block the no-op retry as a conflict with itself.
	if trip.Status == domain.TripStatusDraft {
		events, err := s.calendar.ListByUser(ctx, trip.UserID)
		if err != nil {
			return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w", err)
		}
		conflicts := domain.DetectConflicts(domain.TripIntervals(trip.Bookings), domain.EventIntervals(events))
		if len(conflicts) > 0 && !params.ProceedIfConflicts {
			return CheckoutResult{Conflicts: conflicts}, nil
		}
	}

	// 5. Atomic commit, bounded.
	commitCtx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()

	outcome, err := s.checkout.Confirm(commitCtx, repo.ConfirmParams{
		TripID:          trip.ID,
		UserID:          trip.UserID,
		PaymentMethodID: method.ID,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidState) || errors.Is(err, domain.ErrNotFound) {
			return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %w", err)
		}
		// Store unavailable, constraint violation, timeout: rolled back,
		// retryable.
		return CheckoutResult{}, fmt.Errorf("service.CheckoutService.Checkout: %v: %w", err, domain.ErrCheckoutFailed)
	}
	if outcome.AlreadyConfirmed {
		s.log.InfoContext(ctx, "checkout no-op, trip already confirmed", "trip_id", trip.ID)
	}

	// 6. Release the key only now that the effects are durable. A failure
	// here is deliberately not fatal: the commit happened, and a retry of
	// the same key lands on the already-confirmed no-op path.
	if params.IdempotencyKey != "" {
		if err := s.ledger.MarkUsed(ctx, params.IdempotencyKey); err != nil {
			s.log.WarnContext(ctx, "failed to mark idempotency key used",
				"key", params.IdempotencyKey, "error", err)
		}
	}

	// 7.
	return CheckoutResult{Trip: outcome.Trip}, nil
}

// PreviewConflicts runs the conflict detector for a trip without attempting
// checkout, for UI pre-flight warnings. Read-only.
func (s *CheckoutService) PreviewConflicts(ctx context.Context, actingUserID, tripID uuid.UUID) ([]domain.ConflictPair, error) {
	trip, err := s.trips.GetWithBookings(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.CheckoutService.PreviewConflicts: %w", err)
	}
	if trip.UserID != actingUserID {
		return nil, fmt.Errorf("service.CheckoutService.PreviewConflicts: %w", domain.ErrForbidden)
	}

	events, err := s.calendar.ListByUser(ctx, trip.UserID)
	if err != nil {
		return nil, fmt.Errorf("service.CheckoutService.PreviewConflicts: %w", err)
	}

	conflicts := domain.DetectConflicts(domain.TripIntervals(trip.Bookings), domain.EventIntervals(events))
	if conflicts == nil {
		conflicts = []domain.ConflictPair{}
	}
	return conflicts, nil
}

// guardKey applies the ledger discipline for params.IdempotencyKey: a used
// key short-circuits, an unused-but-present key is treated as in flight
// (the cautious choice — executing alongside it risks a double effect),
// and an unseen key is claimed first-writer-wins before proceeding.
func (s *CheckoutService) guardKey(ctx context.Context, params CheckoutParams) error {
	rec, err := s.ledger.Find(ctx, params.IdempotencyKey)
	switch {
	case err == nil:
		if rec.Used {
			return fmt.Errorf("service.CheckoutService.Checkout: key %q already used: %w",
				params.IdempotencyKey, domain.ErrDuplicateOperation)
		}
		return fmt.Errorf("service.CheckoutService.Checkout: key %q still in flight: %w",
			params.IdempotencyKey, domain.ErrDuplicateOperation)
	case errors.Is(err, domain.ErrNotFound):
		// First sight of the key: claim it.
	default:
		return fmt.Errorf("service.CheckoutService.Checkout: %w", err)
	}

	metadata, _ := json.Marshal(map[string]string{"trip_id": params.TripID.String()})
	created, err := s.ledger.Create(ctx, params.IdempotencyKey, metadata)
	if err != nil {
		return fmt.Errorf("service.CheckoutService.Checkout: %w", err)
	}
	if !created {
		// Lost the insert race to a concurrent attempt with the same key.
		return fmt.Errorf("service.CheckoutService.Checkout: key %q claimed concurrently: %w",
			params.IdempotencyKey, domain.ErrDuplicateOperation)
	}
	return nil
}
