package booking

import (
	"context"

	"github.com/YCK-art/knowly/models"
)

// SessionService drives a seeker's checkout from slot selection through
// payment and confirmation.
type SessionService interface {
	InitiateSession(ctx context.Context, seekerID, advisorID string) (*models.BookingSession, error)
	GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error)
	SelectSlot(ctx context.Context, sessionID string, slot models.Slot) (*models.BookingSession, error)
	SubmitDetails(ctx context.Context, sessionID string, details SessionDetails) (*models.BookingSession, error)
	Confirm(ctx context.Context, sessionID, paymentMethodID string) (*models.Booking, error)
	Cancel(ctx context.Context, sessionID string) error
}

// SessionDetails is what the seeker fills in between picking a slot and
// paying. Both fields are free text and may be left empty.
type SessionDetails struct {
	Topic   string `json:"topic"`
	Message string `json:"message"`
}

// PaymentRequest describes a charge to authorize.
type PaymentRequest struct {
	SeekerID        string
	Amount          float64
	Currency        string
	PaymentMethodID string
	Description     string
}

// PaymentProcessor is the two-phase card charge used during confirmation.
// Authorize places a hold and returns the processor's reference; Capture
// settles it; Cancel releases an uncaptured hold.
type PaymentProcessor interface {
	Authorize(ctx context.Context, req PaymentRequest) (string, error)
	Capture(ctx context.Context, ref string) error
	Cancel(ctx context.Context, ref string) error
}

// MeetingRequest describes the video call to create for a confirmed session.
type MeetingRequest struct {
	Topic        string
	AdvisorEmail string
	SeekerEmail  string
	StartsAt     string // RFC3339
	EndsAt       string // RFC3339
}

// MeetingIssuer creates the video-call link a confirmed booking hands to
// both parties.
type MeetingIssuer interface {
	IssueLink(ctx context.Context, req MeetingRequest) (string, error)
}
