package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/YCK-art/knowly/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Confirm settles the session: it rechecks the slot, captures the charge,
// issues the meeting link, and writes the booking. Confirmation succeeds
// only when both the capture and the link exist; a link failure after the
// money moved lands the booking in FAILED with the captured payment ref
// kept for reconciliation, which is distinct from a plain decline.
func (s *DefaultSessionService) Confirm(ctx context.Context, sessionID, paymentMethodID string) (*models.Booking, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.State != models.StateAwaitingPayment {
		return nil, &TransitionError{From: sess.State, To: models.StateConfirmed}
	}

	advisor, err := s.Advisors.GetByID(sess.AdvisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisor %s: %w", sess.AdvisorID, err)
	}

	// No hold is placed at selection time, so the slot may have been taken
	// while the seeker typed. Recheck before any money moves.
	free, err := s.slotIsFree(ctx, advisor, *sess.Slot)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	ref, err := s.Payments.Authorize(ctx, PaymentRequest{
		SeekerID:        sess.SeekerID,
		Amount:          sess.Price,
		Currency:        sess.Currency,
		PaymentMethodID: paymentMethodID,
		Description:     fmt.Sprintf("Session with %s %s", advisor.FirstName, advisor.LastName),
	})
	if err != nil {
		return s.failBooking(ctx, sess, "", false, fmt.Sprintf("payment declined: %v", err))
	}

	if err := s.Payments.Capture(ctx, ref); err != nil {
		// The hold never settled; release it so the card isn't left blocked.
		if cancelErr := s.Payments.Cancel(ctx, ref); cancelErr != nil {
			s.Logger.Warn("failed to release payment hold", zap.String("ref", ref), zap.Error(cancelErr))
		}
		return s.failBooking(ctx, sess, ref, false, fmt.Sprintf("payment capture failed: %v", err))
	}

	seeker, err := s.Seekers.GetByID(sess.SeekerID)
	if err != nil {
		s.Logger.Warn("failed to fetch seeker for meeting invite", zap.String("seekerID", sess.SeekerID), zap.Error(err))
		seeker = &models.Seeker{ID: sess.SeekerID}
	}

	link, err := s.Meetings.IssueLink(ctx, MeetingRequest{
		Topic:        sess.Topic,
		AdvisorEmail: advisor.Email,
		SeekerEmail:  seeker.Email,
		StartsAt:     sess.Slot.StartsAt.Format(time.RFC3339),
		EndsAt:       sess.Slot.EndsAt.Format(time.RFC3339),
	})
	if err != nil {
		// Money has already moved. Keep the ref on the failed booking so the
		// charge can be reconciled manually.
		return s.failBooking(ctx, sess, ref, true, fmt.Sprintf("meeting link failed: %v", err))
	}

	record := s.bookingFromSession(sess)
	record.Status = models.BookingConfirmed
	record.PaymentRef = ref
	record.PaymentCaptured = true
	record.MeetingLink = link
	if err := s.Bookings.Create(record); err != nil {
		return nil, fmt.Errorf("failed to persist booking: %w", err)
	}

	s.dropSession(ctx, sessionID)
	s.notifyConfirmed(ctx, record, advisor)
	s.scheduleReminders(record)

	s.Logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("advisorID", record.AdvisorID),
		zap.Time("startsAt", record.StartsAt))
	return record, nil
}

// failBooking moves the session to FAILED and persists a terminal booking
// document recording how far the payment got.
func (s *DefaultSessionService) failBooking(ctx context.Context, sess *models.BookingSession, ref string, captured bool, reason string) (*models.Booking, error) {
	if err := advance(sess, models.StateFailed); err != nil {
		return nil, err
	}
	sess.PaymentRef = ref
	sess.PaymentCaptured = captured
	if err := s.saveSession(ctx, sess); err != nil {
		s.Logger.Warn("failed to save failed session", zap.String("sessionID", sess.SessionID), zap.Error(err))
	}

	record := s.bookingFromSession(sess)
	record.Status = models.BookingFailed
	record.PaymentRef = ref
	record.PaymentCaptured = captured
	record.FailureReason = reason
	if err := s.Bookings.Create(record); err != nil {
		s.Logger.Error("failed to persist failed booking", zap.String("sessionID", sess.SessionID), zap.Error(err))
	}

	s.Logger.Warn("booking failed",
		zap.String("sessionID", sess.SessionID),
		zap.Bool("paymentCaptured", captured),
		zap.String("reason", reason))
	return nil, &PaymentError{Captured: captured, Err: fmt.Errorf("%s", reason)}
}

func (s *DefaultSessionService) bookingFromSession(sess *models.BookingSession) *models.Booking {
	now := time.Now()
	return &models.Booking{
		ID:              uuid.New().String(),
		AdvisorID:       sess.AdvisorID,
		SeekerID:        sess.SeekerID,
		StartsAt:        sess.Slot.StartsAt,
		EndsAt:          sess.Slot.EndsAt,
		DurationMinutes: sess.Slot.DurationMinutes,
		Price:           sess.Price,
		Currency:        sess.Currency,
		Topic:           sess.Topic,
		Message:         sess.Message,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}
