package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YCK-art/knowly/models"
)

// 2025-06-02 is a Monday, 2025-06-04 a Wednesday.
func weekdayAvailability() models.Availability {
	return models.Availability{
		Time: models.WeeklyAvailability{
			Mon: []models.TimeRange{{Start: "09:00", End: "12:00"}},
			Wed: []models.TimeRange{{Start: "14:00", End: "15:00"}},
		},
		Timezone: "America/New_York",
	}
}

func TestGenerateSlotsWalksWeek(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) // Sunday
	slots, err := GenerateSlots(weekdayAvailability(), 30, 7, "", now)
	require.NoError(t, err)

	// Six half-hour slots Monday morning plus two Wednesday afternoon.
	require.Len(t, slots, 8)
	assert.Equal(t, "2025-06-02", slots[0].Date)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "09:30", slots[0].End)
	assert.Equal(t, "2025-06-02", slots[5].Date)
	assert.Equal(t, "11:30", slots[5].Start)
	assert.Equal(t, "2025-06-04", slots[6].Date)
	assert.Equal(t, "14:00", slots[6].Start)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartsAt.Before(slots[i].StartsAt), "slots must ascend")
	}
}

func TestGenerateSlotsDropsPartialTail(t *testing.T) {
	av := models.Availability{
		Time:     models.WeeklyAvailability{Mon: []models.TimeRange{{Start: "09:00", End: "10:00"}}},
		Timezone: "America/New_York",
	}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(av, 45, 7, "", now)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "09:00", slots[0].Start)
	assert.Equal(t, "09:45", slots[0].End)

	// A 90-minute session cannot fit a one-hour range at all.
	slots, err = GenerateSlots(av, 90, 7, "", now)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlotsExcludesPast(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	// Mid-morning on the Monday itself.
	now := time.Date(2025, 6, 2, 10, 0, 0, 0, ny)

	slots, err := GenerateSlots(weekdayAvailability(), 30, 1, "", now)
	require.NoError(t, err)

	// The 09:00 and 09:30 slots are gone; one starting exactly at now stays.
	require.Len(t, slots, 4)
	assert.Equal(t, "10:00", slots[0].Start)
	assert.True(t, slots[0].StartsAt.Equal(now.UTC()))
	for _, s := range slots {
		assert.False(t, s.StartsAt.Before(now))
	}
}

func TestGenerateSlotsSkipsExceptionDates(t *testing.T) {
	av := weekdayAvailability()
	av.Exceptions = []string{"2025-06-02"}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := GenerateSlots(av, 30, 7, "", now)
	require.NoError(t, err)
	require.Len(t, slots, 2) // only Wednesday survives
	assert.Equal(t, "2025-06-04", slots[0].Date)
}

func TestGenerateSlotsRendersViewerZone(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	slots, err := GenerateSlots(weekdayAvailability(), 30, 2, "Asia/Seoul", now)
	require.NoError(t, err)
	require.NotEmpty(t, slots)

	// 09:00 Monday in New York is 22:00 the same Monday in Seoul.
	assert.Equal(t, "2025-06-02", slots[0].Date)
	assert.Equal(t, "22:00", slots[0].Start)
	// The instant itself is unchanged by the viewer's zone.
	assert.Equal(t, time.Date(2025, 6, 2, 13, 0, 0, 0, time.UTC), slots[0].StartsAt)
}

// The generation week spans the 2025-03-09 spring-forward in New York.
// Readings inside the missing hour shift forward rather than vanishing,
// and every produced instant is unique and ascending.
func TestGenerateSlotsAcrossSpringForward(t *testing.T) {
	av := models.Availability{
		Time:     models.WeeklyAvailability{Sun: []models.TimeRange{{Start: "01:00", End: "03:00"}}},
		Timezone: "America/New_York",
	}
	now := time.Date(2025, 3, 8, 12, 0, 0, 0, time.UTC) // Saturday

	slots, err := GenerateSlots(av, 30, 2, "", now)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	want := []time.Time{
		time.Date(2025, 3, 9, 6, 0, 0, 0, time.UTC),  // 01:00 EST
		time.Date(2025, 3, 9, 6, 30, 0, 0, time.UTC), // 01:30 EST
		time.Date(2025, 3, 9, 7, 0, 0, 0, time.UTC),  // 02:00 shifted to 03:00 EDT
		time.Date(2025, 3, 9, 7, 30, 0, 0, time.UTC), // 02:30 shifted to 03:30 EDT
	}
	for i, s := range slots {
		assert.Equal(t, want[i], s.StartsAt)
	}
}

func TestGenerateSlotsErrors(t *testing.T) {
	now := time.Now()

	_, err := GenerateSlots(models.Availability{Timezone: ""}, 30, 7, "", now)
	assert.ErrorIs(t, err, ErrMissingTimezone)

	_, err = GenerateSlots(weekdayAvailability(), 0, 7, "", now)
	assert.ErrorIs(t, err, ErrInvalidDuration)

	_, err = GenerateSlots(weekdayAvailability(), 30, 7, "Not/AZone", now)
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}

func TestContainsSlot(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	av := weekdayAvailability()

	ok, err := ContainsSlot(av, models.Slot{
		StartsAt:        time.Date(2025, 6, 2, 13, 30, 0, 0, time.UTC), // 09:30 NY
		DurationMinutes: 30,
	}, 7, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = ContainsSlot(av, models.Slot{
		StartsAt:        time.Date(2025, 6, 2, 13, 45, 0, 0, time.UTC), // off the grid
		DurationMinutes: 30,
	}, 7, now)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestValidateAvailability(t *testing.T) {
	good := weekdayAvailability()
	assert.NoError(t, ValidateAvailability(good))

	bad := weekdayAvailability()
	bad.Time.Mon = []models.TimeRange{{Start: "12:00", End: "09:00"}}
	assert.ErrorIs(t, ValidateAvailability(bad), ErrInvalidTimeRange)

	bad = weekdayAvailability()
	bad.Time.Mon = []models.TimeRange{{Start: "09:00", End: "11:00"}, {Start: "10:00", End: "12:00"}}
	assert.ErrorIs(t, ValidateAvailability(bad), ErrInvalidTimeRange)

	bad = weekdayAvailability()
	bad.Timezone = "Pluto/Dark"
	assert.ErrorIs(t, ValidateAvailability(bad), ErrInvalidTimezone)

	bad = weekdayAvailability()
	bad.Exceptions = []string{"2025-13-40"}
	assert.ErrorIs(t, ValidateAvailability(bad), ErrInvalidDateTime)
}

func TestValidatePricing(t *testing.T) {
	assert.NoError(t, ValidatePricing(models.Pricing{UnitPrice: 20, Durations: []int{15, 30}}))
	assert.NoError(t, ValidatePricing(models.Pricing{UnitPrice: 0, Durations: []int{15}}), "free sessions are allowed")
	assert.ErrorIs(t, ValidatePricing(models.Pricing{UnitPrice: 20}), ErrNoDurationsConfigured)
	assert.ErrorIs(t, ValidatePricing(models.Pricing{UnitPrice: 20, Durations: []int{0}}), ErrInvalidDuration)
	assert.ErrorIs(t, ValidatePricing(models.Pricing{UnitPrice: 20, Durations: []int{20}}), ErrInvalidDuration,
		"durations must be multiples of the pricing unit")
	assert.ErrorIs(t, ValidatePricing(models.Pricing{UnitPrice: 20, Durations: []int{15, 40}}), ErrInvalidDuration)
	assert.Error(t, ValidatePricing(models.Pricing{UnitPrice: -1, Durations: []int{15}}))
}
