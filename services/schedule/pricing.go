package schedule

import "math"

// UnitMinutes is the billing unit a unit price covers.
const UnitMinutes = 15

// Quote prices a session: unitPrice covers one 15-minute unit, longer
// sessions scale proportionally, and durations that are not unit multiples
// are priced by the same ratio. The result is rounded half-up to two
// decimals exactly once, after the full computation.
func Quote(unitPrice float64, durationMinutes int) (float64, error) {
	if durationMinutes <= 0 {
		return 0, ErrInvalidDuration
	}
	raw := unitPrice * float64(durationMinutes) / UnitMinutes
	return math.Floor(raw*100+0.5) / 100, nil
}
