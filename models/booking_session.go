package models

import "time"

// Booking session states. A session walks SELECTING_SLOT ->
// AWAITING_DETAILS -> AWAITING_PAYMENT -> CONFIRMED; CANCELLED is reachable
// from any of the first three, FAILED only from AWAITING_PAYMENT.
const (
	StateSelectingSlot   = "SELECTING_SLOT"
	StateAwaitingDetails = "AWAITING_DETAILS"
	StateAwaitingPayment = "AWAITING_PAYMENT"
	StateConfirmed       = "CONFIRMED"
	StateCancelled       = "CANCELLED"
	StateFailed          = "FAILED"
)

// BookingSession is the in-flight checkout state, kept in the cache with a
// TTL so abandoned checkouts expire on their own.
type BookingSession struct {
	SessionID       string    `json:"sessionId"`
	SeekerID        string    `json:"seekerId"`
	AdvisorID       string    `json:"advisorId"`
	State           string    `json:"state"`
	Slot            *Slot     `json:"slot,omitempty"`
	Price           float64   `json:"price,omitempty"`
	Currency        string    `json:"currency,omitempty"`
	Topic           string    `json:"topic,omitempty"`
	Message         string    `json:"message,omitempty"`
	PaymentRef      string    `json:"paymentRef,omitempty"`
	PaymentCaptured bool      `json:"paymentCaptured"`
	MeetingLink     string    `json:"meetingLink,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
