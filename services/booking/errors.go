package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionNotFound means the checkout session expired or never existed.
	ErrSessionNotFound = errors.New("booking session not found or expired")

	// ErrSlotUnavailable means the selected slot is no longer offered or has
	// been taken by another seeker.
	ErrSlotUnavailable = errors.New("slot no longer available")
)

// TransitionError reports an operation attempted in the wrong session state.
type TransitionError struct {
	From string
	To   string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

// PaymentError wraps a processor failure. Captured distinguishes a decline
// (money never moved) from a failure after the charge went through.
type PaymentError struct {
	Captured bool
	Err      error
}

func (e *PaymentError) Error() string {
	if e.Captured {
		return fmt.Sprintf("booking failed after payment capture: %v", e.Err)
	}
	return fmt.Sprintf("payment failed: %v", e.Err)
}

func (e *PaymentError) Unwrap() error { return e.Err }
