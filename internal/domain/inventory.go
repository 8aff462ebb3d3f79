package domain

import (
	"time"

	"github.com/google/uuid"
)

// Location is a searchable place (airport city, destination) referenced by
// flights, hotels, and activities.
type Location struct {
	ID      uuid.UUID `json:"id"`
	Code    string    `json:"code"` // e.g. "DPS"
	Name    string    `json:"name"` // e.g. "Bali"
	Country string    `json:"country"`
}

// Flight is an inventory item with its own fixed departure/arrival times.
// Price is per seat, in the smallest currency unit.
type Flight struct {
	ID             uuid.UUID `json:"id"`
	Airline        string    `json:"airline"`
	FlightCode     string    `json:"flight_code"`
	OriginCode     string    `json:"origin_code"`
	DestCode       string    `json:"dest_code"`
	Departure      time.Time `json:"departure"`
	Arrival        time.Time `json:"arrival"`
	Price          int64     `json:"price"`
	AvailableSeats int       `json:"available_seats"`
}

// Hotel is an inventory item priced per night; the stay interval comes from
// the booking, not the item.
type Hotel struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	LocationCode  string    `json:"location_code"`
	PricePerNight int64     `json:"price_per_night"`
	Rating        float64   `json:"rating"`
}

// Activity is an inventory item with a fixed duration; the booking supplies
// the date.
type Activity struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	LocationCode string    `json:"location_code"`
	Price        int64     `json:"price"`
	DurationMin  int       `json:"duration_min"`
	Category     string    `json:"category"` // adventure, culinary, shopping, culture, relax
}

// FlightFilter narrows a flight search. Zero values mean "no constraint".
type FlightFilter struct {
	Origin      string // matches origin code or location name
	Destination string
	Airline     string
	MinPrice    int64
	MaxPrice    int64
	Date        *time.Time // departure on this calendar day (UTC)
}

// HotelFilter narrows a hotel search.
type HotelFilter struct {
	Location string // matches location code or name
	MinPrice int64
	MaxPrice int64
}

// ActivityFilter narrows an activity search.
type ActivityFilter struct {
	Location string
	Category string
	MinPrice int64
	MaxPrice int64
}
