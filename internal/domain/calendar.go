package domain

import (
	"time"

	"github.com/google/uuid"
)

// CalendarEvent is a commitment on a user's calendar, independent of any
// trip. Events are the conflict surface for checkout, and checkout itself
// writes one all-day event per confirmed trip so that a later, unrelated
// trip overlapping this one is caught by the same check.
//
// Start/End form a half-open interval [start, end).
type CalendarEvent struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Title       string    `json:"title"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	IsAllDay    bool      `json:"is_all_day"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
