package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radichu/radichu-serve/internal/apperrors"
)

func newTestResolver(t *testing.T) *Resolver {
	t.Helper()
	r, err := NewResolver("Asia/Tokyo")
	require.NoError(t, err)
	return r
}

func TestResolveExplicitDate(t *testing.T) {
	r := newTestResolver(t)

	tests := []struct {
		name     string
		explicit string
		expected string
	}{
		{name: "regular date", explicit: "20240115", expected: "20240115"},
		{name: "first of year", explicit: "20240101", expected: "20240101"},
		{name: "leap day", explicit: "20240229", expected: "20240229"},
		{name: "end of year", explicit: "20231231", expected: "20231231"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve(tt.explicit, time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveExplicitDateNormalizes(t *testing.T) {
	r := newTestResolver(t)

	// Out-of-range components are not rejected; they normalize the way
	// time.Date does.
	tests := []struct {
		explicit string
		expected string
	}{
		{explicit: "20241301", expected: "20250101"},
		{explicit: "20240132", expected: "20240201"},
		{explicit: "20230229", expected: "20230301"},
	}

	for _, tt := range tests {
		t.Run(tt.explicit, func(t *testing.T) {
			got, err := r.Resolve(tt.explicit, time.Now())
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveRejectsMalformedDate(t *testing.T) {
	r := newTestResolver(t)

	for _, explicit := range []string{"2024011", "202401155", "2024-01-15", "2024011a", "today"} {
		t.Run(explicit, func(t *testing.T) {
			_, err := r.Resolve(explicit, time.Now())
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.InvalidInput(""))
		})
	}
}

func TestResolveNowAppliesRollover(t *testing.T) {
	r := newTestResolver(t)
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	tests := []struct {
		name     string
		now      time.Time
		expected string
	}{
		{
			name:     "midnight belongs to previous day",
			now:      time.Date(2024, 1, 15, 0, 0, 0, 0, tokyo),
			expected: "20240114",
		},
		{
			name:     "4:59 belongs to previous day",
			now:      time.Date(2024, 1, 15, 4, 59, 59, 0, tokyo),
			expected: "20240114",
		},
		{
			name:     "5:00 belongs to the same day",
			now:      time.Date(2024, 1, 15, 5, 0, 0, 0, tokyo),
			expected: "20240115",
		},
		{
			name:     "evening belongs to the same day",
			now:      time.Date(2024, 1, 15, 23, 0, 0, 0, tokyo),
			expected: "20240115",
		},
		{
			name:     "rollover crosses month boundary",
			now:      time.Date(2024, 3, 1, 2, 0, 0, 0, tokyo),
			expected: "20240229",
		},
		{
			name:     "rollover crosses year boundary",
			now:      time.Date(2024, 1, 1, 3, 0, 0, 0, tokyo),
			expected: "20231231",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Resolve("", tt.now)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveNowConvertsToReferenceTimezone(t *testing.T) {
	r := newTestResolver(t)

	// 21:00 UTC on Jan 14 is 06:00 JST on Jan 15 — past the rollover hour.
	now := time.Date(2024, 1, 14, 21, 0, 0, 0, time.UTC)
	got, err := r.Resolve("", now)
	require.NoError(t, err)
	assert.Equal(t, "20240115", got)

	// 18:00 UTC on Jan 14 is 03:00 JST on Jan 15 — before the rollover hour.
	now = time.Date(2024, 1, 14, 18, 0, 0, 0, time.UTC)
	got, err = r.Resolve("", now)
	require.NoError(t, err)
	assert.Equal(t, "20240114", got)
}

func TestNewResolverRejectsUnknownTimezone(t *testing.T) {
	_, err := NewResolver("Not/AZone")
	assert.Error(t, err)
}
