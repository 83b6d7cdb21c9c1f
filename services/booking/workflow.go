package booking

import (
	"time"

	"github.com/YCK-art/knowly/models"
)

// allowedTransitions is the session state machine. Anything not listed is
// rejected with a TransitionError.
var allowedTransitions = map[string][]string{
	models.StateSelectingSlot:   {models.StateAwaitingDetails, models.StateCancelled},
	models.StateAwaitingDetails: {models.StateAwaitingPayment, models.StateCancelled},
	models.StateAwaitingPayment: {models.StateConfirmed, models.StateFailed, models.StateCancelled},
}

// CanTransition reports whether the state machine permits from -> to.
func CanTransition(from, to string) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// advance moves a session to the next state or returns a TransitionError.
func advance(sess *models.BookingSession, to string) error {
	if !CanTransition(sess.State, to) {
		return &TransitionError{From: sess.State, To: to}
	}
	sess.State = to
	sess.UpdatedAt = time.Now()
	return nil
}
