package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

const idempotencyColumns = `key, used, metadata, created_at, used_at`

// IdempotencyRepo is the durable ledger of caller-supplied operation keys.
//
// The correctness-critical contract: Create is first-writer-wins and never
// overwrites an existing record, and callers MarkUsed only after the guarded
// operation has durably committed. Marking used before commit risks losing
// the effect on crash; committing but never marking is safe because the
// checkout transaction is itself idempotent in its target state.
type IdempotencyRepo interface {
	// Find returns the record for key.
	// Returns domain.ErrNotFound when the key has never been seen.
	Find(ctx context.Context, key string) (domain.IdempotencyRecord, error)

	// Create inserts a fresh unused record for key. If a record already
	// exists it is left untouched and created is false — first writer wins.
	Create(ctx context.Context, key string, metadata json.RawMessage) (created bool, err error)

	// MarkUsed marks the record used. Idempotent: repeated calls and calls
	// for unknown keys are harmless.
	MarkUsed(ctx context.Context, key string) error
}

type pgIdempotencyRepo struct {
	db db
}

// NewIdempotencyRepo constructs an IdempotencyRepo backed by the provided db
// connection.
func NewIdempotencyRepo(db db) IdempotencyRepo {
	return &pgIdempotencyRepo{db: db}
}

func (r *pgIdempotencyRepo) Find(ctx context.Context, key string) (domain.IdempotencyRecord, error) {
	const q = `SELECT ` + idempotencyColumns + ` FROM idempotency_keys WHERE key = @key`

	result, err := scanIdempotencyRecord(r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}))
	if err != nil {
		return domain.IdempotencyRecord{}, fmt.Errorf("repo.IdempotencyRepo.Find: %w", err)
	}
	return result, nil
}

func (r *pgIdempotencyRepo) Create(ctx context.Context, key string, metadata json.RawMessage) (bool, error) {
	// ON CONFLICT DO NOTHING makes the insert race-safe: of two concurrent
	// attempts with the same key exactly one reports RowsAffected == 1.
	const q = `
		INSERT INTO idempotency_keys (key, used, metadata)
		VALUES (@key, false, @metadata)
		ON CONFLICT (key) DO NOTHING`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key, "metadata": metadata})
	if err != nil {
		return false, fmt.Errorf("repo.IdempotencyRepo.Create: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func (r *pgIdempotencyRepo) MarkUsed(ctx context.Context, key string) error {
	const q = `
		UPDATE idempotency_keys
		SET used = true, used_at = coalesce(used_at, now())
		WHERE key = @key`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"key": key}); err != nil {
		return fmt.Errorf("repo.IdempotencyRepo.MarkUsed: %w", err)
	}
	return nil
}

func scanIdempotencyRecord(s scanner) (domain.IdempotencyRecord, error) {
	var rec domain.IdempotencyRecord

	err := s.Scan(&rec.Key, &rec.Used, &rec.Metadata, &rec.CreatedAt, &rec.UsedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.IdempotencyRecord{}, domain.ErrNotFound
		}
		return domain.IdempotencyRecord{}, err
	}

	return rec, nil
}
