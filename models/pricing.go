package models

// Pricing holds an advisor's rate configuration. UnitPrice is the price of
// a single 15-minute unit; Durations lists the session lengths (in minutes)
// the advisor offers, e.g. [15, 30, 60].
type Pricing struct {
	UnitPrice float64 `bson:"unitPrice" json:"unitPrice"`
	Durations []int   `bson:"durations" json:"durations"`
}

// Offers reports whether the given session length is one the advisor sells.
func (p Pricing) Offers(durationMinutes int) bool {
	for _, d := range p.Durations {
		if d == durationMinutes {
			return true
		}
	}
	return false
}
