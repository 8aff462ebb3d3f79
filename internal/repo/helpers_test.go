package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/testutil"
)

// testTx opens a transaction against the test database and rolls it back
// when the test finishes, giving free per-test isolation. All repos under
// test are constructed on top of this transaction.
//
// Requires TEST_DATABASE_URL to be set; the test is skipped otherwise.
func testTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// --- inventory seed helpers -------------------------------------------------
//
// Inventory rows are referenced by bookings via foreign keys, so most tests
// need at least one. These insert directly over the test transaction.

func seedLocation(t *testing.T, tx pgx.Tx, code, name string) {
	t.Helper()
	_, err := tx.Exec(context.Background(),
		`INSERT INTO locations (code, name, country) VALUES ($1, $2, 'Indonesia')
		 ON CONFLICT (code) DO NOTHING`, code, name)
	require.NoError(t, err, "seed location")
}

func seedFlight(t *testing.T, tx pgx.Tx, origin, dest string, departure time.Time, price int64) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := tx.QueryRow(context.Background(),
		`INSERT INTO flights (airline, flight_code, origin_code, dest_code, departure, arrival, price, available_seats)
		 VALUES ('Garuda', 'GA-100', $1, $2, $3, $4, $5, 30)
		 RETURNING id`,
		origin, dest, departure, departure.Add(2*time.Hour), price).Scan(&id)
	require.NoError(t, err, "seed flight")
	return id
}

func seedHotel(t *testing.T, tx pgx.Tx, location string, pricePerNight int64, rating float64) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := tx.QueryRow(context.Background(),
		`INSERT INTO hotels (name, location_code, price_per_night, rating)
		 VALUES ('Test Hotel', $1, $2, $3)
		 RETURNING id`,
		location, pricePerNight, rating).Scan(&id)
	require.NoError(t, err, "seed hotel")
	return id
}

func seedActivity(t *testing.T, tx pgx.Tx, location, category string, price int64, durationMin int) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	err := tx.QueryRow(context.Background(),
		`INSERT INTO activities (name, location_code, price, duration_min, category)
		 VALUES ('Test Activity', $1, $2, $3, $4)
		 RETURNING id`,
		location, price, durationMin, category).Scan(&id)
	require.NoError(t, err, "seed activity")
	return id
}

func seedPaymentMethod(t *testing.T, tx pgx.Tx, userID uuid.UUID, isDefault bool) uuid.UUID {
	t.Helper()
	var id uuid.UUID
	// clock_timestamp() instead of the now() default: now() is the
	// transaction timestamp, identical for every insert in a tx-isolated
	// test, which would make created_at ordering non-deterministic.
	err := tx.QueryRow(context.Background(),
		`INSERT INTO payment_methods (user_id, brand, last4, is_default, created_at)
		 VALUES ($1, 'visa', '4242', $2, clock_timestamp())
		 RETURNING id`,
		userID, isDefault).Scan(&id)
	require.NoError(t, err, "seed payment method")
	return id
}

// tripFixture returns a domain.Trip with sensible defaults for use in tests.
// Callers can override individual fields after calling this function.
func tripFixture(userID uuid.UUID) domain.Trip {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	return domain.Trip{
		UserID:      userID,
		Name:        "Summer in Bali",
		Description: "two weeks off",
		StartDate:   &start,
		EndDate:     &end,
	}
}
