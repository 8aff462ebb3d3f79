package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

// InventoryRepo is the search collaborator: read-only access to the flight,
// hotel, and activity inventory. Filters with zero values are ignored, so an
// empty filter lists everything (paged).
type InventoryRepo interface {
	GetFlight(ctx context.Context, id uuid.UUID) (domain.Flight, error)
	GetHotel(ctx context.Context, id uuid.UUID) (domain.Hotel, error)
	GetActivity(ctx context.Context, id uuid.UUID) (domain.Activity, error)

	SearchFlights(ctx context.Context, f domain.FlightFilter, p domain.PaginationParams) ([]domain.Flight, error)
	SearchHotels(ctx context.Context, f domain.HotelFilter, p domain.PaginationParams) ([]domain.Hotel, error)
	SearchActivities(ctx context.Context, f domain.ActivityFilter, p domain.PaginationParams) ([]domain.Activity, error)

	Locations(ctx context.Context) ([]domain.Location, error)
}

type pgInventoryRepo struct {
	db db
}

// NewInventoryRepo constructs an InventoryRepo backed by the provided db
// connection.
func NewInventoryRepo(db db) InventoryRepo {
	return &pgInventoryRepo{db: db}
}

const flightColumns = `f.id, f.airline, f.flight_code, f.origin_code, f.dest_code, f.departure, f.arrival, f.price, f.available_seats`

func (r *pgInventoryRepo) GetFlight(ctx context.Context, id uuid.UUID) (domain.Flight, error) {
	const q = `SELECT ` + flightColumns + ` FROM flights f WHERE f.id = @id`

	result, err := scanFlight(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Flight{}, fmt.Errorf("repo.InventoryRepo.GetFlight: %w", err)
	}
	return result, nil
}

func (r *pgInventoryRepo) SearchFlights(ctx context.Context, f domain.FlightFilter, p domain.PaginationParams) ([]domain.Flight, error) {
	// A location filter matches either the airport code or the location
	// name, case-insensitively, so "DPS" and "Bali" both work.
	clauses := []string{"f.departure >= now()", "f.available_seats > 0"}
	args := pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()}

	if f.Origin != "" {
		clauses = append(clauses, `(f.origin_code ILIKE @origin OR EXISTS (
			SELECT 1 FROM locations l WHERE l.code = f.origin_code AND l.name ILIKE @origin))`)
		args["origin"] = f.Origin
	}
	if f.Destination != "" {
		clauses = append(clauses, `(f.dest_code ILIKE @dest OR EXISTS (
			SELECT 1 FROM locations l WHERE l.code = f.dest_code AND l.name ILIKE @dest))`)
		args["dest"] = f.Destination
	}
	if f.Airline != "" {
		clauses = append(clauses, `f.airline ILIKE '%' || @airline || '%'`)
		args["airline"] = f.Airline
	}
	if f.MinPrice > 0 {
		clauses = append(clauses, `f.price >= @min_price`)
		args["min_price"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		clauses = append(clauses, `f.price <= @max_price`)
		args["max_price"] = f.MaxPrice
	}
	if f.Date != nil {
		clauses = append(clauses, `f.departure >= @day AND f.departure < @day + interval '1 day'`)
		args["day"] = f.Date.UTC().Truncate(24 * time.Hour)
	}

	q := `SELECT ` + flightColumns + ` FROM flights f WHERE ` + strings.Join(clauses, " AND ") + `
		ORDER BY f.departure ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.SearchFlights: %w", err)
	}
	defer rows.Close()

	var flights []domain.Flight
	for rows.Next() {
		fl, err := scanFlight(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.InventoryRepo.SearchFlights: scan: %w", err)
		}
		flights = append(flights, fl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.SearchFlights: rows: %w", err)
	}

	return flights, nil
}

const hotelColumns = `h.id, h.name, h.location_code, h.price_per_night, h.rating`

func (r *pgInventoryRepo) GetHotel(ctx context.Context, id uuid.UUID) (domain.Hotel, error) {
	const q = `SELECT ` + hotelColumns + ` FROM hotels h WHERE h.id = @id`

	result, err := scanHotel(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Hotel{}, fmt.Errorf("repo.InventoryRepo.GetHotel: %w", err)
	}
	return result, nil
}

func (r *pgInventoryRepo) SearchHotels(ctx context.Context, f domain.HotelFilter, p domain.PaginationParams) ([]domain.Hotel, error) {
	clauses := []string{"true"}
	args := pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()}

	if f.Location != "" {
		clauses = append(clauses, `(h.location_code ILIKE @location OR EXISTS (
			SELECT 1 FROM locations l WHERE l.code = h.location_code AND l.name ILIKE @location))`)
		args["location"] = f.Location
	}
	if f.MinPrice > 0 {
		clauses = append(clauses, `h.price_per_night >= @min_price`)
		args["min_price"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		clauses = append(clauses, `h.price_per_night <= @max_price`)
		args["max_price"] = f.MaxPrice
	}

	q := `SELECT ` + hotelColumns + ` FROM hotels h WHERE ` + strings.Join(clauses, " AND ") + `
		ORDER BY h.rating DESC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.SearchHotels: %w", err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.InventoryRepo.SearchHotels: scan: %w", err)
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.SearchHotels: rows: %w", err)
	}

	return hotels, nil
}

const activityColumns = `a.id, a.name, a.location_code, a.price, a.duration_min, a.category`

func (r *pgInventoryRepo) GetActivity(ctx context.Context, id uuid.UUID) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities a WHERE a.id = @id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.InventoryRepo.GetActivity: %w", err)
	}
	return result, nil
}

func (r *pgInventoryRepo) SearchActivities(ctx context.Context, f domain.ActivityFilter, p domain.PaginationParams) ([]domain.Activity, error) {
	clauses := []string{"true"}
	args := pgx.NamedArgs{"limit": p.Limit, "offset": p.Offset()}

	if f.Location != "" {
		clauses = append(clauses, `(a.location_code ILIKE @location OR EXISTS (
			SELECT 1 FROM locations l WHERE l.code = a.location_code AND l.name ILIKE @location))`)
		args["location"] = f.Location
	}
	if f.Category != "" {
		clauses = append(clauses, `a.category = @category`)
		args["category"] = f.Category
	}
	if f.MinPrice > 0 {
		clauses = append(clauses, `a.price >= @min_price`)
		args["min_price"] = f.MinPrice
	}
	if f.MaxPrice > 0 {
		clauses = append(clauses, `a.price <= @max_price`)
		args["max_price"] = f.MaxPrice
	}

	q := `SELECT ` + activityColumns + ` FROM activities a WHERE ` + strings.Join(clauses, " AND ") + `
		ORDER BY a.price ASC
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.SearchActivities: %w", err)
	}
	defer rows.Close()

	var activities []domain.Activity
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.InventoryRepo.SearchActivities: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.SearchActivities: rows: %w", err)
	}

	return activities, nil
}

// Locations lists every known location. The catalog is small and rarely
// changes, so there is no filter or paging.
func (r *pgInventoryRepo) Locations(ctx context.Context) ([]domain.Location, error) {
	const q = `SELECT l.id, l.code, l.name, l.country FROM locations l ORDER BY l.name ASC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.Locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.Location
	for rows.Next() {
		var l domain.Location
		if err := rows.Scan(&l.ID, &l.Code, &l.Name, &l.Country); err != nil {
			return nil, fmt.Errorf("repo.InventoryRepo.Locations: scan: %w", err)
		}
		locations = append(locations, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.InventoryRepo.Locations: rows: %w", err)
	}

	return locations, nil
}

func scanFlight(s scanner) (domain.Flight, error) {
	var f domain.Flight
	err := s.Scan(&f.ID, &f.Airline, &f.FlightCode, &f.OriginCode, &f.DestCode,
		&f.Departure, &f.Arrival, &f.Price, &f.AvailableSeats)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Flight{}, domain.ErrNotFound
		}
		return domain.Flight{}, err
	}
	return f, nil
}

func scanHotel(s scanner) (domain.Hotel, error) {
	var h domain.Hotel
	err := s.Scan(&h.ID, &h.Name, &h.LocationCode, &h.PricePerNight, &h.Rating)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Hotel{}, domain.ErrNotFound
		}
		return domain.Hotel{}, err
	}
	return h, nil
}

func scanActivity(s scanner) (domain.Activity, error) {
	var a domain.Activity
	err := s.Scan(&a.ID, &a.Name, &a.LocationCode, &a.Price, &a.DurationMin, &a.Category)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Activity{}, domain.ErrNotFound
		}
		return domain.Activity{}, err
	}
	return a, nil
}
