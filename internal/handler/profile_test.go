package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// ---- GET /profile/payment-methods ------------------------------------------

func TestListPaymentMethods_200(t *testing.T) {
	userID := uuid.New()
	svc := &mockProfileServicer{
		paymentMethods: func(_ context.Context, actingUserID uuid.UUID) ([]domain.PaymentMethod, error) {
			assert.Equal(t, userID, actingUserID)
			return []domain.PaymentMethod{
				{ID: uuid.New(), UserID: userID, Brand: "VISA", Last4: "4242", IsDefault: true},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/profile/payment-methods", nil)

	rec := doRequest(serverOpts{profile: svc}, req, userID)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []domain.PaymentMethod `json:"data"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "4242", resp.Data[0].Last4)
}

func TestListPaymentMethods_401_NoUser(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/profile/payment-methods", nil)

	rec := doRequest(serverOpts{profile: &mockProfileServicer{}}, req, uuid.Nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// ---- GET /profile/calendar -------------------------------------------------

func TestListCalendarEvents_200_EmptyIsArray(t *testing.T) {
	svc := &mockProfileServicer{
		calendarEvents: func(_ context.Context, _ uuid.UUID) ([]domain.CalendarEvent, error) {
			return []domain.CalendarEvent{}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/profile/calendar", nil)

	rec := doRequest(serverOpts{profile: svc}, req, uuid.New())

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":[]}`, rec.Body.String())
}

// ---- POST /profile/calendar ------------------------------------------------

func TestCreateCalendarEvent_201(t *testing.T) {
	userID := uuid.New()
	svc := &mockProfileServicer{
		addEvent: func(_ context.Context, actingUserID uuid.UUID, event domain.CalendarEvent) (domain.CalendarEvent, error) {
			assert.Equal(t, userID, actingUserID)
			assert.Equal(t, "Dentist", event.Title)
			assert.Equal(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC), event.Start)
			event.ID = uuid.New()
			event.UserID = actingUserID
			return event, nil
		},
	}

	body := jsonBody(t, map[string]any{
		"title": "Dentist",
		"start": "2025-03-01T09:00:00Z",
		"end":   "2025-03-01T10:00:00Z",
	})
	req := httptest.NewRequest(http.MethodPost, "/profile/calendar", body)

	rec := doRequest(serverOpts{profile: svc}, req, userID)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp domain.CalendarEvent
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, userID, resp.UserID)
}

func TestCreateCalendarEvent_422_Invalid(t *testing.T) {
	svc := &mockProfileServicer{
		addEvent: func(_ context.Context, _ uuid.UUID, _ domain.CalendarEvent) (domain.CalendarEvent, error) {
			return domain.CalendarEvent{}, fmt.Errorf("service.ProfileService.AddCalendarEvent: %w: title is required", domain.ErrValidation)
		},
	}

	body := jsonBody(t, map[string]any{
		"start": "2025-03-01T09:00:00Z",
		"end":   "2025-03-01T10:00:00Z",
	})
	req := httptest.NewRequest(http.MethodPost, "/profile/calendar", body)

	rec := doRequest(serverOpts{profile: svc}, req, uuid.New())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "validation_error", errorCode(t, rec))
}

// ---- DELETE /profile/calendar/{eventID} ------------------------------------

func TestDeleteCalendarEvent_204(t *testing.T) {
	userID := uuid.New()
	eventID := uuid.New()
	svc := &mockProfileServicer{
		removeEvent: func(_ context.Context, actingUserID, id uuid.UUID) error {
			assert.Equal(t, userID, actingUserID)
			assert.Equal(t, eventID, id)
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/profile/calendar/"+eventID.String(), nil)

	rec := doRequest(serverOpts{profile: svc}, req, userID)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteCalendarEvent_404(t *testing.T) {
	svc := &mockProfileServicer{
		removeEvent: func(_ context.Context, _, _ uuid.UUID) error {
			return fmt.Errorf("service.ProfileService.RemoveCalendarEvent: %w", domain.ErrNotFound)
		},
	}

	req := httptest.NewRequest(http.MethodDelete, "/profile/calendar/"+uuid.NewString(), nil)

	rec := doRequest(serverOpts{profile: svc}, req, uuid.New())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteCalendarEvent_422_MalformedID(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/profile/calendar/not-a-uuid", nil)

	rec := doRequest(serverOpts{profile: &mockProfileServicer{}}, req, uuid.New())

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
