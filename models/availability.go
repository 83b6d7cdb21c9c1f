package models

import "time"

// TimeRange is a wall-clock interval within a single day, half-open
// ("10:00"-"12:00" ends at 12:00 exactly). Times are "HH:MM" strings
// in the advisor's availability timezone.
type TimeRange struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// WeeklyAvailability maps each weekday to the advisor's open ranges.
// A missing or empty day means the advisor takes no sessions that day.
type WeeklyAvailability struct {
	Sun []TimeRange `bson:"sun,omitempty" json:"sun,omitempty"`
	Mon []TimeRange `bson:"mon,omitempty" json:"mon,omitempty"`
	Tue []TimeRange `bson:"tue,omitempty" json:"tue,omitempty"`
	Wed []TimeRange `bson:"wed,omitempty" json:"wed,omitempty"`
	Thu []TimeRange `bson:"thu,omitempty" json:"thu,omitempty"`
	Fri []TimeRange `bson:"fri,omitempty" json:"fri,omitempty"`
	Sat []TimeRange `bson:"sat,omitempty" json:"sat,omitempty"`
}

// ForWeekday returns the ranges configured for the given weekday.
func (w WeeklyAvailability) ForWeekday(d time.Weekday) []TimeRange {
	switch d {
	case time.Sunday:
		return w.Sun
	case time.Monday:
		return w.Mon
	case time.Tuesday:
		return w.Tue
	case time.Wednesday:
		return w.Wed
	case time.Thursday:
		return w.Thu
	case time.Friday:
		return w.Fri
	case time.Saturday:
		return w.Sat
	}
	return nil
}

// SetWeekday replaces the ranges for the given weekday.
func (w *WeeklyAvailability) SetWeekday(d time.Weekday, ranges []TimeRange) {
	switch d {
	case time.Sunday:
		w.Sun = ranges
	case time.Monday:
		w.Mon = ranges
	case time.Tuesday:
		w.Tue = ranges
	case time.Wednesday:
		w.Wed = ranges
	case time.Thursday:
		w.Thu = ranges
	case time.Friday:
		w.Fri = ranges
	case time.Saturday:
		w.Sat = ranges
	}
}

// Availability is the advisor's full schedule configuration. It is stored
// inline on the advisor document so each piece can be updated independently.
type Availability struct {
	Time       WeeklyAvailability `bson:"availableTime" json:"availableTime"`
	Timezone   string             `bson:"availableTimezone" json:"availableTimezone"`
	Exceptions []string           `bson:"availableExceptions,omitempty" json:"availableExceptions,omitempty"` // "YYYY-MM-DD" dates fully closed
}
