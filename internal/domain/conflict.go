package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BookingInterval is the slice of a booking the conflict detector needs.
type BookingInterval struct {
	ID    uuid.UUID
	Type  BookingType
	Start time.Time
	End   time.Time
}

// EventInterval is the slice of a calendar event the conflict detector needs.
type EventInterval struct {
	ID    uuid.UUID
	Title string
	Start time.Time
	End   time.Time
}

// ConflictPair records one overlap between a booking and a calendar event.
type ConflictPair struct {
	BookingID uuid.UUID `json:"booking_id"`
	EventID   uuid.UUID `json:"event_id"`
	Message   string    `json:"message"`
}

// DetectConflicts returns one ConflictPair per overlapping (booking, event)
// combination. Two half-open intervals [aStart, aEnd) and [bStart, bEnd)
// overlap iff aStart < bEnd && aEnd > bStart, so touching endpoints — a
// flight landing exactly when an event starts — are not a conflict.
//
// All instants are normalized to UTC before comparison; callers must supply
// absolute timestamps, never calendar-naive local times. The scan is a plain
// O(n·m) nested loop: bookings per trip and events per user are both small.
//
// Pure and deterministic; an empty result means no conflicts.
func DetectConflicts(bookings []BookingInterval, events []EventInterval) []ConflictPair {
	var conflicts []ConflictPair
	for _, b := range bookings {
		bStart, bEnd := b.Start.UTC(), b.End.UTC()
		for _, e := range events {
			eStart, eEnd := e.Start.UTC(), e.End.UTC()
			if bStart.Before(eEnd) && bEnd.After(eStart) {
				conflicts = append(conflicts, ConflictPair{
					BookingID: b.ID,
					EventID:   e.ID,
					Message: fmt.Sprintf("%s booking (%s – %s) overlaps event %q (%s)",
						b.Type,
						bStart.Format(time.RFC3339),
						bEnd.Format(time.RFC3339),
						e.Title,
						eStart.Format("2006-01-02")),
				})
			}
		}
	}
	return conflicts
}

// TripIntervals extracts the conflict-detector input from a trip's bookings.
func TripIntervals(bookings []Booking) []BookingInterval {
	intervals := make([]BookingInterval, 0, len(bookings))
	for _, b := range bookings {
		intervals = append(intervals, BookingInterval{
			ID:    b.ID,
			Type:  b.Type,
			Start: b.StartDate,
			End:   b.EndDate,
		})
	}
	return intervals
}

// EventIntervals extracts the conflict-detector input from calendar events.
func EventIntervals(events []CalendarEvent) []EventInterval {
	intervals := make([]EventInterval, 0, len(events))
	for _, e := range events {
		intervals = append(intervals, EventInterval{
			ID:    e.ID,
			Title: e.Title,
			Start: e.Start,
			End:   e.End,
		})
	}
	return intervals
}
