package models

import "time"

// Booking statuses. A booking document is only written once the seeker
// reaches payment: CONFIRMED on success, FAILED when payment declines or
// the meeting link cannot be issued.
const (
	BookingConfirmed = "CONFIRMED"
	BookingFailed    = "FAILED"
	BookingCancelled = "CANCELLED"
)

// Booking is a finalized (or terminally failed) session reservation.
type Booking struct {
	ID              string    `bson:"id" json:"id"`
	AdvisorID       string    `bson:"advisorId" json:"advisorId"`
	SeekerID        string    `bson:"seekerId" json:"seekerId"`
	StartsAt        time.Time `bson:"startsAt" json:"startsAt"` // UTC
	EndsAt          time.Time `bson:"endsAt" json:"endsAt"`     // UTC
	DurationMinutes int       `bson:"durationMinutes" json:"durationMinutes"`
	Price           float64   `bson:"price" json:"price"`
	Currency        string    `bson:"currency" json:"currency"`
	Topic           string    `bson:"topic,omitempty" json:"topic,omitempty"`
	Message         string    `bson:"message,omitempty" json:"message,omitempty"`
	Status          string    `bson:"status" json:"status"`
	PaymentRef      string    `bson:"paymentRef,omitempty" json:"paymentRef,omitempty"`
	PaymentCaptured bool      `bson:"paymentCaptured" json:"paymentCaptured"`
	MeetingLink     string    `bson:"meetingLink,omitempty" json:"meetingLink,omitempty"`
	FailureReason   string    `bson:"failureReason,omitempty" json:"failureReason,omitempty"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt"`
}
