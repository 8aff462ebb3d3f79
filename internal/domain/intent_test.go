package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adiwidjaja/travelagent/internal/domain"
)

func TestNormalizeActivityType(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hiking trip", "adventure"},
		{"Trekking", "adventure"},
		{"outdoor stuff", "adventure"},
		{"street food tour", "culinary"},
		{"fine dining", "culinary"},
		{"shopping mall", "shopping"},
		{"museum visits", "culture"},
		{"historic sites", "culture"},
		{"beach and spa", "relax"},
		{"adventure", "adventure"},
		{"underwater basket weaving", "underwater basket weaving"}, // pass-through
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.NormalizeActivityType(tt.in))
		})
	}
}

func TestPriceBandForBudget(t *testing.T) {
	band, ok := domain.PriceBandForBudget(100_000_000)
	require.True(t, ok)
	assert.Equal(t, int64(500_000), band.Min)
	assert.Equal(t, int64(3_000_000), band.Max)
}

func TestPriceBandForBudget_NeverEmpty(t *testing.T) {
	band, ok := domain.PriceBandForBudget(10)
	require.True(t, ok)
	assert.Greater(t, band.Max, band.Min)
}

func TestPriceBandForBudget_NoBudget(t *testing.T) {
	_, ok := domain.PriceBandForBudget(0)
	assert.False(t, ok)

	_, ok = domain.PriceBandForBudget(-5)
	assert.False(t, ok)
}

// A larger budget must never produce a smaller upper bound.
func TestPriceBandForBudget_Monotonic(t *testing.T) {
	budgets := []int64{1, 100, 10_000, 1_000_000, 50_000_000, 100_000_000, 2_000_000_000}

	var prev domain.PriceBand
	for i, b := range budgets {
		band, ok := domain.PriceBandForBudget(b)
		require.True(t, ok)
		if i > 0 {
			assert.GreaterOrEqual(t, band.Max, prev.Max, "budget %d", b)
			assert.GreaterOrEqual(t, band.Min, prev.Min, "budget %d", b)
		}
		prev = band
	}
}

func TestTripIntent_Dates(t *testing.T) {
	intent := domain.TripIntent{StartDate: "2025-06-01", EndDate: "2025-06-05"}

	start, end := intent.Dates()
	require.NotNil(t, start)
	require.NotNil(t, end)
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), *start)
	assert.Equal(t, time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC), *end)
}

func TestTripIntent_Dates_Malformed(t *testing.T) {
	intent := domain.TripIntent{StartDate: "next tuesday", EndDate: ""}

	start, end := intent.Dates()
	assert.Nil(t, start)
	assert.Nil(t, end)
}
