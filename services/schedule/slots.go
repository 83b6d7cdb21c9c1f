package schedule

import (
	"sort"
	"time"

	"github.com/YCK-art/knowly/models"
)

// DefaultWindowDays bounds how far ahead slots are generated when the
// caller does not say otherwise.
const DefaultWindowDays = 30

// GenerateSlots expands an advisor's weekly availability into concrete
// bookable slots of the given duration, starting from now and covering
// windowDays calendar days in the advisor's zone.
//
// Days are walked in the advisor's timezone; exception dates and empty
// weekdays are skipped. Each range is cut into back-to-back slots of
// exactly durationMinutes; a tail shorter than the duration is dropped.
// Slots starting before now are excluded; one starting exactly at now is
// still offered. Results are rendered for viewerZone (the advisor's own
// zone when empty) and returned in ascending start order.
func GenerateSlots(av models.Availability, durationMinutes, windowDays int, viewerZone string, now time.Time) ([]models.Slot, error) {
	if durationMinutes <= 0 {
		return nil, ErrInvalidDuration
	}
	loc, err := LoadZone(av.Timezone)
	if err != nil {
		return nil, err
	}
	viewLoc := loc
	if viewerZone != "" {
		if viewLoc, err = LoadZone(viewerZone); err != nil {
			return nil, err
		}
	}
	if windowDays <= 0 {
		windowDays = DefaultWindowDays
	}

	closed := make(map[string]struct{}, len(av.Exceptions))
	for _, d := range av.Exceptions {
		closed[d] = struct{}{}
	}

	span := time.Duration(durationMinutes) * time.Minute
	first := now.In(loc)
	var slots []models.Slot

	for i := 0; i < windowDays; i++ {
		day := first.AddDate(0, 0, i)
		if _, skip := closed[day.Format(DateLayout)]; skip {
			continue
		}
		for _, r := range av.Time.ForWeekday(day.Weekday()) {
			startMin, err := ParseClock(r.Start)
			if err != nil {
				return nil, err
			}
			endMin, err := ParseClock(r.End)
			if err != nil {
				return nil, err
			}
			for m := startMin; m+durationMinutes <= endMin; m += durationMinutes {
				start := resolveWallClock(loc, day.Year(), day.Month(), day.Day(), m/60, m%60)
				if start.Before(now) {
					continue
				}
				local := start.In(viewLoc)
				slots = append(slots, models.Slot{
					StartsAt:        start.UTC(),
					EndsAt:          start.Add(span).UTC(),
					Date:            local.Format(DateLayout),
					Start:           local.Format(ClockLayout),
					End:             local.Add(span).Format(ClockLayout),
					DurationMinutes: durationMinutes,
				})
			}
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartsAt.Before(slots[j].StartsAt)
	})
	return slots, nil
}

// ContainsSlot reports whether the candidate slot is one the generator
// would offer for the given availability right now. Booking uses it to
// re-check a selection that may have gone stale while the seeker was
// filling in details.
func ContainsSlot(av models.Availability, candidate models.Slot, windowDays int, now time.Time) (bool, error) {
	slots, err := GenerateSlots(av, candidate.DurationMinutes, windowDays, "", now)
	if err != nil {
		return false, err
	}
	for _, s := range slots {
		if s.StartsAt.Equal(candidate.StartsAt) {
			return true, nil
		}
	}
	return false, nil
}
