package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/service"
)

func TestTripService_Create_OK(t *testing.T) {
	owner := uuid.New()
	trips := &mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			trip.ID = uuid.New()
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	created, err := svc.Create(context.Background(), owner, domain.Trip{
		Name:        "Bali Getaway",
		Description: "two weeks off",
	})

	require.NoError(t, err)
	assert.Equal(t, owner, created.UserID)
	assert.Equal(t, domain.TripStatusDraft, created.Status)
	assert.NotEqual(t, uuid.Nil, created.ID)
}

// Client-supplied owner and status are overwritten, never trusted.
func TestTripService_Create_ForcesOwnerAndDraftStatus(t *testing.T) {
	owner := uuid.New()
	var persisted domain.Trip
	trips := &mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			persisted = trip
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	_, err := svc.Create(context.Background(), owner, domain.Trip{
		Name:   "Bali Getaway",
		UserID: uuid.New(),
		Status: domain.TripStatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, owner, persisted.UserID)
	assert.Equal(t, domain.TripStatusDraft, persisted.Status)
}

func TestTripService_Create_RequiresName(t *testing.T) {
	called := false
	trips := &mockTripRepo{
		create: func(_ context.Context, trip domain.Trip) (domain.Trip, error) {
			called = true
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	_, err := svc.Create(context.Background(), uuid.New(), domain.Trip{Name: "   "})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.False(t, called)
}

func TestTripService_Create_DatesOutOfOrder(t *testing.T) {
	start := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	svc := service.NewTripService(&mockTripRepo{})

	_, err := svc.Create(context.Background(), uuid.New(), domain.Trip{
		Name:      "Backwards",
		StartDate: &start,
		EndDate:   &end,
	})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_GetByID_OK(t *testing.T) {
	owner := uuid.New()
	trip := draftTrip(owner)
	trips := &mockTripRepo{
		getWithBookings: func(_ context.Context, id uuid.UUID) (domain.Trip, error) {
			require.Equal(t, trip.ID, id)
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	got, err := svc.GetByID(context.Background(), owner, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.Len(t, got.Bookings, 1)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.New())

	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_GetByID_Forbidden(t *testing.T) {
	trip := draftTrip(uuid.New())
	trips := &mockTripRepo{
		getWithBookings: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	_, err := svc.GetByID(context.Background(), uuid.New(), trip.ID)

	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTripService_ListByUser_EmptyIsNotNil(t *testing.T) {
	svc := service.NewTripService(&mockTripRepo{})

	trips, err := svc.ListByUser(context.Background(), uuid.New())

	require.NoError(t, err)
	require.NotNil(t, trips)
	assert.Empty(t, trips)
}

func TestTripService_Update_OK(t *testing.T) {
	owner := uuid.New()
	trip := draftTrip(owner)
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
		update: func(_ context.Context, updated domain.Trip) (domain.Trip, error) {
			return updated, nil
		},
	}
	svc := service.NewTripService(trips)

	updated := trip
	updated.Name = "Bali, but longer"
	got, err := svc.Update(context.Background(), owner, updated)

	require.NoError(t, err)
	assert.Equal(t, "Bali, but longer", got.Name)
}

func TestTripService_Update_ConfirmedRejected(t *testing.T) {
	owner := uuid.New()
	trip := draftTrip(owner)
	trip.Status = domain.TripStatusConfirmed
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	_, err := svc.Update(context.Background(), owner, trip)

	require.ErrorIs(t, err, domain.ErrInvalidState)
}

func TestTripService_Update_Forbidden(t *testing.T) {
	trip := draftTrip(uuid.New())
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	_, err := svc.Update(context.Background(), uuid.New(), trip)

	require.ErrorIs(t, err, domain.ErrForbidden)
}

func TestTripService_Delete_OK(t *testing.T) {
	owner := uuid.New()
	trip := draftTrip(owner)
	deleted := false
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
		delete: func(_ context.Context, id uuid.UUID) error {
			deleted = true
			assert.Equal(t, trip.ID, id)
			return nil
		},
	}
	svc := service.NewTripService(trips)

	require.NoError(t, svc.Delete(context.Background(), owner, trip.ID))
	assert.True(t, deleted)
}

func TestTripService_Delete_ConfirmedRejected(t *testing.T) {
	owner := uuid.New()
	trip := draftTrip(owner)
	trip.Status = domain.TripStatusConfirmed
	deleted := false
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
		delete: func(_ context.Context, _ uuid.UUID) error {
			deleted = true
			return nil
		},
	}
	svc := service.NewTripService(trips)

	err := svc.Delete(context.Background(), owner, trip.ID)

	require.ErrorIs(t, err, domain.ErrInvalidState)
	assert.False(t, deleted)
}

func TestTripService_Complete_OK(t *testing.T) {
	owner := uuid.New()
	trip := draftTrip(owner)
	trip.Status = domain.TripStatusConfirmed
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
		updateStatus: func(_ context.Context, id uuid.UUID, status domain.TripStatus) (domain.Trip, error) {
			updated := trip
			updated.Status = status
			return updated, nil
		},
	}
	svc := service.NewTripService(trips)

	got, err := svc.Complete(context.Background(), owner, trip.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.TripStatusCompleted, got.Status)
}

func TestTripService_Complete_DraftRejected(t *testing.T) {
	owner := uuid.New()
	trip := draftTrip(owner)
	trips := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (domain.Trip, error) {
			return trip, nil
		},
	}
	svc := service.NewTripService(trips)

	_, err := svc.Complete(context.Background(), owner, trip.ID)

	require.ErrorIs(t, err, domain.ErrInvalidState)
}
