package schedule

import (
	"fmt"
	"time"

	"github.com/YCK-art/knowly/models"
)

var weekdays = []time.Weekday{
	time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
	time.Thursday, time.Friday, time.Saturday,
}

// ParseClock converts an "HH:MM" string to minutes from midnight.
func ParseClock(clock string) (int, error) {
	t, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDateTime, clock)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// ValidateAvailability checks an availability document before it is saved:
// the timezone must resolve, every range must parse with start strictly
// before end, and exception dates must be real calendar dates. Ranges within
// a day may not overlap each other.
func ValidateAvailability(av models.Availability) error {
	if _, err := LoadZone(av.Timezone); err != nil {
		return err
	}
	for _, wd := range weekdays {
		ranges := av.Time.ForWeekday(wd)
		var prevEnd int
		for i, r := range ranges {
			start, err := ParseClock(r.Start)
			if err != nil {
				return err
			}
			end, err := ParseClock(r.End)
			if err != nil {
				return err
			}
			if start >= end {
				return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, r.Start, r.End)
			}
			if i > 0 && start < prevEnd {
				return fmt.Errorf("%w: %s overlaps previous range", ErrInvalidTimeRange, r.Start)
			}
			prevEnd = end
		}
	}
	for _, d := range av.Exceptions {
		if _, err := time.Parse(DateLayout, d); err != nil {
			return fmt.Errorf("%w: exception date %q", ErrInvalidDateTime, d)
		}
	}
	return nil
}

// ValidatePricing checks a pricing document before it is saved. Durations
// must be positive multiples of the 15-minute pricing unit; the unit price
// may be zero for free sessions but never negative.
func ValidatePricing(p models.Pricing) error {
	if p.UnitPrice < 0 {
		return fmt.Errorf("unit price must not be negative, got %.2f", p.UnitPrice)
	}
	if len(p.Durations) == 0 {
		return ErrNoDurationsConfigured
	}
	for _, d := range p.Durations {
		if d <= 0 || d%UnitMinutes != 0 {
			return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, d)
		}
	}
	return nil
}
