package schedule

import (
	"fmt"
	"time"
)

// Layouts used throughout scheduling. Dates and clocks always travel as
// strings in these forms; instants travel as time.Time in UTC.
const (
	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

// LoadZone resolves an IANA zone name, wrapping failures in
// ErrInvalidTimezone.
func LoadZone(name string) (*time.Location, error) {
	if name == "" {
		return nil, ErrMissingTimezone
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, name)
	}
	return loc, nil
}

// ToInstant converts a wall-clock date and time in the given zone to a UTC
// instant. DST transitions resolve deterministically: a repeated wall clock
// (fall back) maps to the earlier of the two instants, and a skipped wall
// clock (spring forward) shifts forward past the gap.
func ToInstant(date, clock, zone string) (time.Time, error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return time.Time{}, err
	}
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, date)
	}
	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateTime, clock)
	}
	t := resolveWallClock(loc, d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute())
	return t.UTC(), nil
}

// ToWallClock converts an instant into the date and clock strings a viewer
// in the given zone would see.
func ToWallClock(t time.Time, zone string) (date, clock string, err error) {
	loc, err := LoadZone(zone)
	if err != nil {
		return "", "", err
	}
	local := t.In(loc)
	return local.Format(DateLayout), local.Format(ClockLayout), nil
}

// resolveWallClock maps a wall-clock reading in loc to a single instant.
//
// time.Date already normalizes readings inside a spring-forward gap past the
// missing interval, which is the behavior we want; the extra probe below
// handles the fall-back case, where time.Date may hand back either of the
// two instants that share the wall clock. Preferring the earlier instant
// keeps repeated generation runs byte-identical.
func resolveWallClock(loc *time.Location, year int, month time.Month, day, hour, min int) time.Time {
	t := time.Date(year, month, day, hour, min, 0, 0, loc)
	if t.Hour() != hour || t.Minute() != min {
		// Reading fell in a gap and was normalized forward.
		return t
	}
	earlier := t.Add(-time.Hour)
	if earlier.Year() == year && earlier.Month() == month && earlier.Day() == day &&
		earlier.Hour() == hour && earlier.Minute() == min {
		return earlier
	}
	return t
}
