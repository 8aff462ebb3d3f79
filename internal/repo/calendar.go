package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

const calendarColumns = `id, user_id, title, start_at, end_at, is_all_day, description, created_at`

// CalendarRepo defines the persistence operations for CalendarEvents.
// Checkout reads the full event set for the conflict check; the confirmed
// trip's own event is written inside the CheckoutRepo transaction, not here.
type CalendarRepo interface {
	// Create inserts a new event and returns the persisted record.
	Create(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error)

	// ListByUser returns all of a user's events ordered by start time.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CalendarEvent, error)

	// Delete removes an event scoped to its owner.
	// Returns domain.ErrNotFound if no such event exists for that user.
	Delete(ctx context.Context, userID, eventID uuid.UUID) error
}

type pgCalendarRepo struct {
	db db
}

// NewCalendarRepo constructs a CalendarRepo backed by the provided db connection.
func NewCalendarRepo(db db) CalendarRepo {
	return &pgCalendarRepo{db: db}
}

func (r *pgCalendarRepo) Create(ctx context.Context, event domain.CalendarEvent) (domain.CalendarEvent, error) {
	const q = `
		INSERT INTO calendar_events (user_id, title, start_at, end_at, is_all_day, description)
		VALUES (@user_id, @title, @start_at, @end_at, @is_all_day, @description)
		RETURNING ` + calendarColumns

	args := pgx.NamedArgs{
		"user_id":     event.UserID,
		"title":       event.Title,
		"start_at":    event.Start,
		"end_at":      event.End,
		"is_all_day":  event.IsAllDay,
		"description": event.Description,
	}

	result, err := scanCalendarEvent(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.CalendarEvent{}, fmt.Errorf("repo.CalendarRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgCalendarRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.CalendarEvent, error) {
	const q = `
		SELECT ` + calendarColumns + `
		FROM calendar_events
		WHERE user_id = @user_id
		ORDER BY start_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.CalendarRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var events []domain.CalendarEvent
	for rows.Next() {
		e, err := scanCalendarEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CalendarRepo.ListByUser: scan: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CalendarRepo.ListByUser: rows: %w", err)
	}

	return events, nil
}

func (r *pgCalendarRepo) Delete(ctx context.Context, userID, eventID uuid.UUID) error {
	const q = `DELETE FROM calendar_events WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": eventID, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.CalendarRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.CalendarRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func scanCalendarEvent(s scanner) (domain.CalendarEvent, error) {
	var e domain.CalendarEvent

	err := s.Scan(&e.ID, &e.UserID, &e.Title, &e.Start, &e.End, &e.IsAllDay, &e.Description, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.CalendarEvent{}, domain.ErrNotFound
		}
		return domain.CalendarEvent{}, err
	}

	return e, nil
}
