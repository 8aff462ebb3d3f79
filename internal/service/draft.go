package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/adiwidjaja/travelagent/internal/domain"
	"github.com/adiwidjaja/travelagent/internal/repo"
)

// DraftItem is the per-category outcome of draft assembly: either a created
// booking or the reason that category was skipped or failed. Per-item
// failures never abort the rest of the draft.
type DraftItem struct {
	Category domain.BookingType `json:"category"`
	Booking  *domain.Booking    `json:"booking,omitempty"`
	Error    string             `json:"error,omitempty"`
}

// DraftResult is the outcome of assembling a draft from an intent.
// Trip is nil when no category produced a candidate.
type DraftResult struct {
	Trip  *domain.Trip `json:"trip,omitempty"`
	Items []DraftItem  `json:"items"`
}

// DraftService translates a coarse trip intent into a draft trip with at
// most one PENDING_APPROVAL booking per inventory category. It is the
// agent-facing assembly path.
type DraftService struct {
	trips     repo.TripRepo
	bookings  repo.BookingRepo
	inventory repo.InventoryRepo
	log       *slog.Logger
}

// NewDraftService constructs a DraftService backed by the provided repos.
func NewDraftService(trips repo.TripRepo, bookings repo.BookingRepo, inventory repo.InventoryRepo, log *slog.Logger) *DraftService {
	return &DraftService{trips: trips, bookings: bookings, inventory: inventory, log: log}
}

// AssembleDraft derives per-category search filters from the intent's single
// budget number, queries the three inventories concurrently, and — when at
// least one category returns a candidate — creates one DRAFT trip plus one
// booking from the first candidate of each non-empty category.
//
// The three searches are independent: each failure degrades that category to
// "no candidates" and is logged, never propagated. Booking creation is also
// attempted per category; a failure is reported on that item only.
func (s *DraftService) AssembleDraft(ctx context.Context, actingUserID uuid.UUID, intent domain.TripIntent) (DraftResult, error) {
	if actingUserID == uuid.Nil {
		return DraftResult{}, fmt.Errorf("%w: acting user is required", domain.ErrValidation)
	}

	intent.ActivityType = domain.NormalizeActivityType(intent.ActivityType)
	start, end := intent.Dates()

	flightFilter := domain.FlightFilter{
		Origin:      intent.Origin,
		Destination: intent.Destination,
		Date:        start,
	}
	hotelFilter := domain.HotelFilter{Location: intent.Destination}
	activityFilter := domain.ActivityFilter{Location: intent.Destination}
	if intent.ActivityType != "" {
		activityFilter.Category = intent.ActivityType
	}

	// One coarse budget number becomes the same proportional price band on
	// all three inventories. Approximate by design.
	if band, ok := domain.PriceBandForBudget(intent.Budget); ok {
		flightFilter.MinPrice, flightFilter.MaxPrice = band.Min, band.Max
		hotelFilter.MinPrice, hotelFilter.MaxPrice = band.Min, band.Max
		activityFilter.MinPrice, activityFilter.MaxPrice = band.Min, band.Max
	}

	// Three independent reads, no ordering dependency. Search errors are
	// swallowed per category, so g.Wait never returns one.
	page := domain.NewPaginationParams(nil, nil)
	var (
		flights    []domain.Flight
		hotels     []domain.Hotel
		activities []domain.Activity
	)
	g, searchCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if flights, err = s.inventory.SearchFlights(searchCtx, flightFilter, page); err != nil {
			s.log.WarnContext(searchCtx, "draft flight search failed", "error", err)
			flights = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if hotels, err = s.inventory.SearchHotels(searchCtx, hotelFilter, page); err != nil {
			s.log.WarnContext(searchCtx, "draft hotel search failed", "error", err)
			hotels = nil
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if activities, err = s.inventory.SearchActivities(searchCtx, activityFilter, page); err != nil {
			s.log.WarnContext(searchCtx, "draft activity search failed", "error", err)
			activities = nil
		}
		return nil
	})
	_ = g.Wait()

	if len(flights) == 0 && len(hotels) == 0 && len(activities) == 0 {
		return DraftResult{Items: []DraftItem{}}, nil
	}

	trip, err := s.trips.Create(ctx, domain.Trip{
		UserID:    actingUserID,
		Name:      fmt.Sprintf("Draft: %s-%s", intent.Origin, intent.Destination),
		Status:    domain.TripStatusDraft,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return DraftResult{}, fmt.Errorf("service.DraftService.AssembleDraft: %w", err)
	}

	result := DraftResult{Trip: &trip}

	// First candidate per non-empty category; the search collaborator's own
	// ordering is the only ranking.
	if len(flights) > 0 {
		result.Items = append(result.Items, s.draftFlight(ctx, trip.ID, flights[0]))
	}
	if len(hotels) > 0 {
		result.Items = append(result.Items, s.draftHotel(ctx, trip.ID, hotels[0], start, end))
	}
	if len(activities) > 0 {
		result.Items = append(result.Items, s.draftActivity(ctx, trip.ID, activities[0], start))
	}

	return result, nil
}

func (s *DraftService) draftFlight(ctx context.Context, tripID uuid.UUID, flight domain.Flight) DraftItem {
	details, _ := json.Marshal(map[string]string{"item_id": flight.ID.String()})
	booking, err := domain.NewBooking(tripID, domain.BookingTypeFlight, flight.ID,
		flight.Price, details, flight.Departure, flight.Arrival)
	if err == nil {
		booking, err = s.bookings.Create(ctx, booking)
	}
	return s.draftItem(ctx, domain.BookingTypeFlight, booking, err)
}

// draftHotel books the intent's date range, defaulting to one night from the
// available date (or today) when the range is absent.
func (s *DraftService) draftHotel(ctx context.Context, tripID uuid.UUID, hotel domain.Hotel, start, end *time.Time) DraftItem {
	checkIn := time.Now().UTC().Truncate(24 * time.Hour)
	if start != nil {
		checkIn = *start
	}
	checkOut := checkIn.AddDate(0, 0, 1)
	if end != nil && end.After(checkIn) {
		checkOut = *end
	}

	details, _ := json.Marshal(map[string]string{"item_id": hotel.ID.String()})
	booking, err := domain.NewBooking(tripID, domain.BookingTypeHotel, hotel.ID,
		hotel.PricePerNight*nightsBetween(checkIn, checkOut), details, checkIn, checkOut)
	if err == nil {
		booking, err = s.bookings.Create(ctx, booking)
	}
	return s.draftItem(ctx, domain.BookingTypeHotel, booking, err)
}

// draftActivity books a zero-duration placeholder on the intent's start date:
// the time of day is unknown until the user schedules it.
func (s *DraftService) draftActivity(ctx context.Context, tripID uuid.UUID, activity domain.Activity, start *time.Time) DraftItem {
	date := time.Now().UTC().Truncate(24 * time.Hour)
	if start != nil {
		date = *start
	}

	details, _ := json.Marshal(map[string]string{"item_id": activity.ID.String()})
	booking, err := domain.NewBooking(tripID, domain.BookingTypeActivity, activity.ID,
		activity.Price, details, date, date)
	if err == nil {
		booking, err = s.bookings.Create(ctx, booking)
	}
	return s.draftItem(ctx, domain.BookingTypeActivity, booking, err)
}

func (s *DraftService) draftItem(ctx context.Context, category domain.BookingType, booking domain.Booking, err error) DraftItem {
	if err != nil {
		s.log.WarnContext(ctx, "draft booking creation failed", "category", category, "error", err)
		return DraftItem{Category: category, Error: err.Error()}
	}
	return DraftItem{Category: category, Booking: &booking}
}
