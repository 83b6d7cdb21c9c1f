package models

// ReminderPayload is the asynq task body for a session reminder push.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Target    string `json:"target"` // "seeker" or "advisor"
	ID        string `json:"id"`     // recipient account id
	Title     string `json:"title"`
	Body      string `json:"body"`
	FireDate  string `json:"fireDate"` // RFC3339
}
