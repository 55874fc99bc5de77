package budget

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	assert.Equal(t, "2024-05", MonthKey(time.Date(2024, 5, 17, 13, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-01", MonthKey(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "0900-12", MonthKey(time.Date(900, 12, 31, 0, 0, 0, 0, time.UTC)))
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		n     int
		want  time.Time
	}{
		{
			name:  "forward within year",
			start: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			n:     2,
			want:  time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "year rollover forward",
			start: time.Date(2024, 11, 1, 0, 0, 0, 0, time.UTC),
			n:     3,
			want:  time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "negative shift across year",
			start: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
			n:     -2,
			want:  time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:  "zero normalizes to first of month",
			start: time.Date(2024, 6, 28, 10, 30, 0, 0, time.UTC),
			n:     0,
			want:  time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AddMonths(tt.start, tt.n))
		})
	}
}

func TestParseYMD(t *testing.T) {
	t.Run("full date", func(t *testing.T) {
		assert.Equal(t, time.Date(2024, 5, 17, 0, 0, 0, 0, time.UTC), ParseYMD("2024-05-17"))
	})

	t.Run("month key defaults day to 1", func(t *testing.T) {
		assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), ParseYMD("2024-05"))
	})

	t.Run("bare year defaults month and day to 1", func(t *testing.T) {
		assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), ParseYMD("2024"))
	})

	t.Run("empty string falls back to today", func(t *testing.T) {
		got := ParseYMD("")
		assert.WithinDuration(t, time.Now(), got, time.Minute)
	})

	t.Run("garbage falls back to today", func(t *testing.T) {
		got := ParseYMD("not-a-date")
		assert.WithinDuration(t, time.Now(), got, time.Minute)
	})
}

func TestMonthKeyNavigation(t *testing.T) {
	assert.Equal(t, "2024-06", NextMonthKey("2024-05"))
	assert.Equal(t, "2025-01", NextMonthKey("2024-12"))
	assert.Equal(t, "2024-04", PrevMonthKey("2024-05"))
	assert.Equal(t, "2023-12", PrevMonthKey("2024-01"))
}

func TestMonthKeyNavigationRoundTrip(t *testing.T) {
	key := "2024-01"
	for i := 0; i < 24; i++ {
		key = NextMonthKey(key)
	}
	assert.Equal(t, "2026-01", key)
	for i := 0; i < 24; i++ {
		key = PrevMonthKey(key)
	}
	assert.Equal(t, "2024-01", key)
}
