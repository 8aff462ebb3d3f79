package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

const paymentColumns = `id, user_id, brand, last4, is_default, created_at`

// PaymentMethodRepo defines the read operations checkout needs. Payment
// methods are selection-only at this layer; nothing here mutates them.
type PaymentMethodRepo interface {
	// GetForUser retrieves a payment method only if it belongs to userID.
	// Returns domain.ErrNotFound otherwise — a method belonging to someone
	// else is indistinguishable from a missing one.
	GetForUser(ctx context.Context, id, userID uuid.UUID) (domain.PaymentMethod, error)

	// FirstForUser returns the user's default payment method, or the oldest
	// saved one when no default is flagged.
	// Returns domain.ErrNotFound when the user has none at all.
	FirstForUser(ctx context.Context, userID uuid.UUID) (domain.PaymentMethod, error)

	// ListByUser returns all of a user's payment methods, default first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PaymentMethod, error)
}

type pgPaymentMethodRepo struct {
	db db
}

// NewPaymentMethodRepo constructs a PaymentMethodRepo backed by the provided
// db connection.
func NewPaymentMethodRepo(db db) PaymentMethodRepo {
	return &pgPaymentMethodRepo{db: db}
}

func (r *pgPaymentMethodRepo) GetForUser(ctx context.Context, id, userID uuid.UUID) (domain.PaymentMethod, error) {
	const q = `SELECT ` + paymentColumns + ` FROM payment_methods WHERE id = @id AND user_id = @user_id`

	result, err := scanPaymentMethod(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("repo.PaymentMethodRepo.GetForUser: %w", err)
	}
	return result, nil
}

func (r *pgPaymentMethodRepo) FirstForUser(ctx context.Context, userID uuid.UUID) (domain.PaymentMethod, error) {
	const q = `
		SELECT ` + paymentColumns + `
		FROM payment_methods
		WHERE user_id = @user_id
		ORDER BY is_default DESC, created_at ASC
		LIMIT 1`

	result, err := scanPaymentMethod(r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}))
	if err != nil {
		return domain.PaymentMethod{}, fmt.Errorf("repo.PaymentMethodRepo.FirstForUser: %w", err)
	}
	return result, nil
}

func (r *pgPaymentMethodRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.PaymentMethod, error) {
	const q = `
		SELECT ` + paymentColumns + `
		FROM payment_methods
		WHERE user_id = @user_id
		ORDER BY is_default DESC, created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.PaymentMethodRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var methods []domain.PaymentMethod
	for rows.Next() {
		m, err := scanPaymentMethod(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PaymentMethodRepo.ListByUser: scan: %w", err)
		}
		methods = append(methods, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PaymentMethodRepo.ListByUser: rows: %w", err)
	}

	return methods, nil
}

func scanPaymentMethod(s scanner) (domain.PaymentMethod, error) {
	var m domain.PaymentMethod

	err := s.Scan(&m.ID, &m.UserID, &m.Brand, &m.Last4, &m.IsDefault, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PaymentMethod{}, domain.ErrNotFound
		}
		return domain.PaymentMethod{}, err
	}

	return m, nil
}
