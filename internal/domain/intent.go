package domain

import (
	"math"
	"strings"
	"time"
)

// TripIntent is the loosely-typed trip request produced by the conversational
// agent. Every field is optional and the whole object is untrusted: date
// strings may be malformed, the budget may be absent, and the activity type
// is free text. Draft assembly normalizes what it can and degrades
// gracefully on the rest.
type TripIntent struct {
	Origin            string `json:"origin,omitempty"`
	Destination       string `json:"destination,omitempty"`
	StartDate         string `json:"start_date,omitempty"` // "2006-01-02"
	EndDate           string `json:"end_date,omitempty"`
	NumTravelers      int    `json:"num_travelers,omitempty"`
	Budget            int64  `json:"budget,omitempty"` // single coarse number, smallest currency unit
	HotelRequirements string `json:"hotel_requirements,omitempty"`
	ActivityType      string `json:"activity_type,omitempty"`
}

// Dates parses the intent's date strings as UTC calendar dates. Malformed or
// absent values yield nil — never an error, because intent fields are
// best-effort.
func (i TripIntent) Dates() (start, end *time.Time) {
	if t, err := time.ParseInLocation("2006-01-02", i.StartDate, time.UTC); err == nil {
		start = &t
	}
	if t, err := time.ParseInLocation("2006-01-02", i.EndDate, time.UTC); err == nil {
		end = &t
	}
	return start, end
}

// activityKeywords maps each canonical activity category to the substrings
// that classify free text into it. First match wins, in this order.
var activityKeywords = []struct {
	category string
	words    []string
}{
	{"adventure", []string{"advent", "hike", "hiking", "trek", "outdoor"}},
	{"culinary", []string{"food", "culin", "eat", "restaurant", "dine"}},
	{"shopping", []string{"shop", "mall"}},
	{"culture", []string{"culture", "museum", "history", "historic", "heritage", "art"}},
	{"relax", []string{"relax", "rest", "spa", "beach", "chill", "leisure"}},
}

// NormalizeActivityType maps free text like "hiking trip" onto the closed
// vocabulary {adventure, culinary, shopping, culture, relax} by keyword
// matching. Unrecognized text passes through unchanged: classification is
// best-effort, not authoritative.
func NormalizeActivityType(value string) string {
	raw := strings.ToLower(strings.TrimSpace(value))
	if raw == "" {
		return value
	}
	for _, entry := range activityKeywords {
		for _, w := range entry.words {
			if strings.Contains(raw, w) {
				return entry.category
			}
		}
	}
	return value
}

// PriceBand is a per-category [Min, Max] price filter derived from a budget.
type PriceBand struct {
	Min int64
	Max int64
}

// Band factors: a budget of 100_000_000 yields min 500_000 and max
// 3_000_000, matching the seeded inventory's price scale.
const (
	bandMinFactor = 0.005 // 0.5% of budget
	bandMaxFactor = 0.03  // 3% of budget
)

// PriceBandForBudget translates the single user-facing budget number into a
// price filter applied identically to flight, hotel-per-night, and activity
// searches. It is a deliberately crude bridge from one scalar to three
// independent inventories, not a pricing model. Max never drops below
// Min+1, so the band is never empty, and both bounds grow monotonically
// with the budget. ok is false when the budget is absent or non-positive.
func PriceBandForBudget(budget int64) (band PriceBand, ok bool) {
	if budget <= 0 {
		return PriceBand{}, false
	}
	min := int64(math.Round(float64(budget) * bandMinFactor))
	if min < 0 {
		min = 0
	}
	max := int64(math.Round(float64(budget) * bandMaxFactor))
	if max < min+1 {
		max = min + 1
	}
	return PriceBand{Min: min, Max: max}, true
}
