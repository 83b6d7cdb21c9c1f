package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToInstant(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := ToInstant("2025-06-10", "09:00", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, ny).UTC(), got)
	assert.Equal(t, time.UTC, got.Location())
}

func TestToInstantErrors(t *testing.T) {
	_, err := ToInstant("2025-06-10", "09:00", "Mars/Olympus")
	assert.ErrorIs(t, err, ErrInvalidTimezone)

	_, err = ToInstant("2025-06-10", "09:00", "")
	assert.ErrorIs(t, err, ErrMissingTimezone)

	_, err = ToInstant("2025-02-30", "09:00", "UTC")
	assert.ErrorIs(t, err, ErrInvalidDateTime)

	_, err = ToInstant("2025-06-10", "25:00", "UTC")
	assert.ErrorIs(t, err, ErrInvalidDateTime)
}

// 2025-03-09 02:30 does not exist in New York; the clock jumps from 02:00
// EST straight to 03:00 EDT. The reading shifts forward past the gap.
func TestToInstantSpringForwardGap(t *testing.T) {
	got, err := ToInstant("2025-03-09", "02:30", "America/New_York")
	require.NoError(t, err)

	date, clock, err := ToWallClock(got, "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-09", date)
	assert.Equal(t, "03:30", clock)
	assert.Equal(t, time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC), got)
}

// 2025-11-02 01:30 happens twice in New York (once in EDT, once in EST an
// hour later). The earlier instant wins.
func TestToInstantFallBackAmbiguity(t *testing.T) {
	got, err := ToInstant("2025-11-02", "01:30", "America/New_York")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 11, 2, 5, 30, 0, 0, time.UTC), got)
}

func TestToWallClock(t *testing.T) {
	instant := time.Date(2025, 6, 10, 13, 0, 0, 0, time.UTC)

	date, clock, err := ToWallClock(instant, "Asia/Seoul")
	require.NoError(t, err)
	assert.Equal(t, "2025-06-10", date)
	assert.Equal(t, "22:00", clock)

	_, _, err = ToWallClock(instant, "Nowhere/Invalid")
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

// Converting out and back lands on the same instant for unambiguous times.
func TestWallClockRoundTrip(t *testing.T) {
	instant, err := ToInstant("2025-09-18", "16:45", "Europe/Paris")
	require.NoError(t, err)

	date, clock, err := ToWallClock(instant, "Europe/Paris")
	require.NoError(t, err)

	back, err := ToInstant(date, clock, "Europe/Paris")
	require.NoError(t, err)
	assert.True(t, instant.Equal(back))
}
