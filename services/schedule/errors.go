package schedule

import "errors"

var (
	// ErrInvalidTimezone means a zone name could not be resolved against the
	// IANA database.
	ErrInvalidTimezone = errors.New("invalid timezone")

	// ErrInvalidDateTime means a date or clock string was malformed or named
	// a calendar date that does not exist.
	ErrInvalidDateTime = errors.New("invalid date or time")

	// ErrMissingTimezone means the advisor saved weekly hours but never set
	// availableTimezone, so the hours cannot be anchored to instants.
	ErrMissingTimezone = errors.New("availability timezone not set")

	// ErrNoDurationsConfigured means the advisor has no session lengths on
	// offer, so there is nothing to generate slots for.
	ErrNoDurationsConfigured = errors.New("no session durations configured")

	// ErrInvalidDuration rejects non-positive session lengths.
	ErrInvalidDuration = errors.New("invalid session duration")

	// ErrDurationNotOffered means the requested length is positive but not
	// one the advisor sells.
	ErrDurationNotOffered = errors.New("session duration not offered")

	// ErrInvalidTimeRange rejects malformed or inverted availability ranges.
	ErrInvalidTimeRange = errors.New("invalid time range")
)
