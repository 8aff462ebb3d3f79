package repo_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

func TestBookingRepo_Create(t *testing.T) {
	tx := testTx(t)
	trips := repo.NewTripRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	seedLocation(t, tx, "DPS", "Bali")
	activityID := seedActivity(t, tx, "DPS", "adventure", 350_000, 120)

	trip, err := trips.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	start := time.Date(2025, 6, 3, 9, 0, 0, 0, time.UTC)
	b, err := domain.NewBooking(trip.ID, domain.BookingTypeActivity, activityID,
		350_000, json.RawMessage(`{"participants":2}`), start, start.Add(2*time.Hour))
	require.NoError(t, err)

	got, err := bookings.Create(ctx, b)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, trip.ID, got.TripID)
	assert.Equal(t, domain.BookingStatusPending, got.Status)
	assert.Equal(t, int64(350_000), got.TotalAmount)
	assert.True(t, got.StartDate.Equal(start))
	assert.JSONEq(t, `{"participants":2}`, string(got.Details))
	require.NotNil(t, got.ActivityID)
	assert.Equal(t, activityID, *got.ActivityID)
}

func TestBookingRepo_GetByID_WrongTrip(t *testing.T) {
	tx := testTx(t)
	trips := repo.NewTripRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	seedLocation(t, tx, "DPS", "Bali")
	hotelID := seedHotel(t, tx, "DPS", 800_000, 4.0)

	trip, err := trips.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	b, err := domain.NewBooking(trip.ID, domain.BookingTypeHotel, hotelID,
		800_000, nil, *trip.StartDate, *trip.EndDate)
	require.NoError(t, err)
	created, err := bookings.Create(ctx, b)
	require.NoError(t, err)

	// The booking is keyed by (trip, booking); a different trip never sees it.
	_, err = bookings.GetByID(ctx, uuid.New(), created.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	got, err := bookings.GetByID(ctx, trip.ID, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
}

func TestBookingRepo_ListByTrip(t *testing.T) {
	tx := testTx(t)
	trips := repo.NewTripRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	seedLocation(t, tx, "CGK", "Jakarta")
	seedLocation(t, tx, "DPS", "Bali")
	flightID := seedFlight(t, tx, "CGK", "DPS", time.Now().Add(24*time.Hour), 1_000_000)
	hotelID := seedHotel(t, tx, "DPS", 800_000, 4.0)

	trip, err := trips.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	for _, spec := range []struct {
		typ    domain.BookingType
		itemID uuid.UUID
	}{
		{domain.BookingTypeFlight, flightID},
		{domain.BookingTypeHotel, hotelID},
	} {
		b, err := domain.NewBooking(trip.ID, spec.typ, spec.itemID,
			1_000_000, nil, *trip.StartDate, *trip.EndDate)
		require.NoError(t, err)
		_, err = bookings.Create(ctx, b)
		require.NoError(t, err)
	}

	got, err := bookings.ListByTrip(ctx, trip.ID)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestBookingRepo_Delete(t *testing.T) {
	tx := testTx(t)
	trips := repo.NewTripRepo(tx)
	bookings := repo.NewBookingRepo(tx)
	ctx := context.Background()

	seedLocation(t, tx, "DPS", "Bali")
	hotelID := seedHotel(t, tx, "DPS", 800_000, 4.0)

	trip, err := trips.Create(ctx, tripFixture(uuid.New()))
	require.NoError(t, err)

	b, err := domain.NewBooking(trip.ID, domain.BookingTypeHotel, hotelID,
		800_000, nil, *trip.StartDate, *trip.EndDate)
	require.NoError(t, err)
	created, err := bookings.Create(ctx, b)
	require.NoError(t, err)

	require.NoError(t, bookings.Delete(ctx, trip.ID, created.ID))

	_, err = bookings.GetByID(ctx, trip.ID, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBookingRepo_Delete_NotFound(t *testing.T) {
	tx := testTx(t)
	bookings := repo.NewBookingRepo(tx)

	err := bookings.Delete(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
}
