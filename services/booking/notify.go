package booking

import (
	"context"
	"fmt"
	"time"

	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/tasks"

	"go.uber.org/zap"
)

// reminderLead is how long before the session start the reminder fires.
const reminderLead = 30 * time.Minute

// notifyConfirmed pushes the confirmation to both parties. Push failures
// are logged and swallowed; the booking is already committed.
func (s *DefaultSessionService) notifyConfirmed(ctx context.Context, b *models.Booking, advisor *models.Advisor) {
	if s.Notifications == nil {
		return
	}
	data := map[string]string{
		"bookingId":   b.ID,
		"startsAt":    b.StartsAt.Format(time.RFC3339),
		"meetingLink": b.MeetingLink,
	}

	title := "Session confirmed"
	body := fmt.Sprintf("Your session with %s %s is booked.", advisor.FirstName, advisor.LastName)
	if err := s.Notifications.SendSeekerPush(ctx, b.SeekerID, title, body, data); err != nil {
		s.Logger.Warn("seeker confirmation push failed", zap.String("bookingID", b.ID), zap.Error(err))
	}

	body = fmt.Sprintf("You have a new %d-minute session on %s.", b.DurationMinutes, b.StartsAt.Format("Jan 2 15:04 MST"))
	if err := s.Notifications.SendAdvisorPush(ctx, b.AdvisorID, title, body, data); err != nil {
		s.Logger.Warn("advisor confirmation push failed", zap.String("bookingID", b.ID), zap.Error(err))
	}
}

// scheduleReminders enqueues delayed reminder tasks for both parties.
func (s *DefaultSessionService) scheduleReminders(b *models.Booking) {
	if s.Tasks == nil {
		return
	}
	fireAt := b.StartsAt.Add(-reminderLead)
	if fireAt.Before(time.Now()) {
		return
	}

	payloads := []models.ReminderPayload{
		{
			BookingID: b.ID,
			Target:    "seeker",
			ID:        b.SeekerID,
			Title:     "Session starting soon",
			Body:      "Your session starts in 30 minutes.",
			FireDate:  fireAt.Format(time.RFC3339),
		},
		{
			BookingID: b.ID,
			Target:    "advisor",
			ID:        b.AdvisorID,
			Title:     "Session starting soon",
			Body:      "Your next session starts in 30 minutes.",
			FireDate:  fireAt.Format(time.RFC3339),
		},
	}

	for _, p := range payloads {
		task, opts, err := tasks.NewReminderTask(p, fireAt)
		if err != nil {
			s.Logger.Warn("failed to build reminder task", zap.String("bookingID", b.ID), zap.Error(err))
			continue
		}
		if _, err := s.Tasks.Enqueue(task, opts...); err != nil {
			s.Logger.Warn("failed to enqueue reminder", zap.String("bookingID", b.ID), zap.Error(err))
		}
	}
}
