package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/schedule"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession opens a checkout against an advisor. The advisor must
// exist and have both hours and pricing configured before seekers can book.
func (s *DefaultSessionService) InitiateSession(ctx context.Context, seekerID, advisorID string) (*models.BookingSession, error) {
	advisor, err := s.Advisors.GetByID(advisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisor %s: %w", advisorID, err)
	}
	if advisor.Timezone == "" {
		return nil, schedule.ErrMissingTimezone
	}
	if len(advisor.Pricing.Durations) == 0 {
		return nil, schedule.ErrNoDurationsConfigured
	}

	now := time.Now()
	sess := &models.BookingSession{
		SessionID: uuid.New().String(),
		SeekerID:  seekerID,
		AdvisorID: advisorID,
		State:     models.StateSelectingSlot,
		Currency:  s.Currency,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	s.Logger.Info("booking session initiated",
		zap.String("sessionID", sess.SessionID),
		zap.String("advisorID", advisorID),
		zap.String("seekerID", seekerID))
	return sess, nil
}

// GetSession returns the current session state.
func (s *DefaultSessionService) GetSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	return s.loadSession(ctx, sessionID)
}

// SelectSlot attaches a slot to the session and moves it to
// AWAITING_DETAILS. The slot is validated against the advisor's current
// availability and existing confirmed bookings; no hold is placed, the
// final recheck happens at confirmation.
func (s *DefaultSessionService) SelectSlot(ctx context.Context, sessionID string, slot models.Slot) (*models.BookingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	advisor, err := s.Advisors.GetByID(sess.AdvisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisor %s: %w", sess.AdvisorID, err)
	}
	if !advisor.Pricing.Offers(slot.DurationMinutes) {
		return nil, fmt.Errorf("%w: %d minutes", schedule.ErrDurationNotOffered, slot.DurationMinutes)
	}

	free, err := s.slotIsFree(ctx, advisor, slot)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrSlotUnavailable
	}

	if err := advance(sess, models.StateAwaitingDetails); err != nil {
		return nil, err
	}
	sess.Slot = &slot
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

// SubmitDetails records the seeker's topic and moves the session to
// AWAITING_PAYMENT. The price is computed here, from the advisor's current
// unit price and the selected slot's duration, and frozen on the session.
func (s *DefaultSessionService) SubmitDetails(ctx context.Context, sessionID string, details SessionDetails) (*models.BookingSession, error) {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Slot == nil {
		return nil, &TransitionError{From: sess.State, To: models.StateAwaitingPayment}
	}

	advisor, err := s.Advisors.GetByID(sess.AdvisorID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch advisor %s: %w", sess.AdvisorID, err)
	}
	price, err := schedule.Quote(advisor.Pricing.UnitPrice, sess.Slot.DurationMinutes)
	if err != nil {
		return nil, err
	}

	if err := advance(sess, models.StateAwaitingPayment); err != nil {
		return nil, err
	}
	sess.Topic = details.Topic
	sess.Message = details.Message
	sess.Price = price
	if err := s.saveSession(ctx, sess); err != nil {
		return nil, err
	}

	s.Logger.Info("booking details submitted",
		zap.String("sessionID", sess.SessionID),
		zap.Float64("price", price))
	return sess, nil
}

// Cancel abandons a session. Allowed from every pre-payment state; once the
// session is terminal the cancel is rejected.
func (s *DefaultSessionService) Cancel(ctx context.Context, sessionID string) error {
	sess, err := s.loadSession(ctx, sessionID)
	if err != nil {
		return err
	}
	if err := advance(sess, models.StateCancelled); err != nil {
		return err
	}
	s.dropSession(ctx, sessionID)
	s.Logger.Info("booking session cancelled", zap.String("sessionID", sessionID))
	return nil
}

// slotIsFree rechecks a slot against the advisor's live schedule and the
// bookings collection.
func (s *DefaultSessionService) slotIsFree(ctx context.Context, advisor *models.Advisor, slot models.Slot) (bool, error) {
	offered, err := schedule.ContainsSlot(advisor.Availability, slot, s.windowDays(), time.Now())
	if err != nil {
		return false, err
	}
	if !offered {
		return false, nil
	}
	taken, err := s.Bookings.ExistsOverlapping(advisor.ID, slot.StartsAt, slot.EndsAt)
	if err != nil {
		return false, fmt.Errorf("failed to check booking overlap: %w", err)
	}
	return !taken, nil
}
