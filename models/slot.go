package models

import "time"

// Slot is a single bookable session offered to a viewer. StartsAt/EndsAt
// are UTC instants; Date/Start/End render the same moment as wall-clock
// strings in the viewer's timezone.
type Slot struct {
	StartsAt        time.Time `json:"startsAt"`
	EndsAt          time.Time `json:"endsAt"`
	Date            string    `json:"date"`  // "YYYY-MM-DD" in viewer zone
	Start           string    `json:"start"` // "HH:MM" in viewer zone
	End             string    `json:"end"`   // "HH:MM" in viewer zone
	DurationMinutes int       `json:"durationMinutes"`
}
