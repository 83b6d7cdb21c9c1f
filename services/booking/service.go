package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	advisorRepo "github.com/YCK-art/knowly/database/repository/advisor"
	bookingRepo "github.com/YCK-art/knowly/database/repository/booking"
	seekerRepo "github.com/YCK-art/knowly/database/repository/seeker"
	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/notification"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// sessionTTL bounds how long an abandoned checkout lingers in the cache.
const sessionTTL = 30 * time.Minute

// DefaultSessionService is the production SessionService. Sessions live in
// Redis as JSON; bookings are only written to Mongo once the seeker reaches
// a terminal paid state.
type DefaultSessionService struct {
	Advisors      advisorRepo.AdvisorRepository
	Seekers       seekerRepo.SeekerRepository
	Bookings      bookingRepo.BookingRepository
	Payments      PaymentProcessor
	Meetings      MeetingIssuer
	Notifications notification.NotificationService
	Cache         *redis.Client
	Tasks         *asynq.Client // optional; reminders are skipped when nil
	Logger        *zap.Logger
	Currency      string
	WindowDays    int
}

func (s *DefaultSessionService) sessionKey(id string) string {
	return "booking:session:" + id
}

func (s *DefaultSessionService) loadSession(ctx context.Context, sessionID string) (*models.BookingSession, error) {
	data, err := s.Cache.Get(ctx, s.sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load booking session: %w", err)
	}
	var sess models.BookingSession
	if err := json.Unmarshal([]byte(data), &sess); err != nil {
		return nil, fmt.Errorf("failed to parse booking session: %w", err)
	}
	return &sess, nil
}

func (s *DefaultSessionService) saveSession(ctx context.Context, sess *models.BookingSession) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal booking session: %w", err)
	}
	if err := s.Cache.Set(ctx, s.sessionKey(sess.SessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to store booking session: %w", err)
	}
	return nil
}

func (s *DefaultSessionService) dropSession(ctx context.Context, sessionID string) {
	if err := s.Cache.Del(ctx, s.sessionKey(sessionID)).Err(); err != nil {
		s.Logger.Warn("failed to drop booking session", zap.String("sessionID", sessionID), zap.Error(err))
	}
}

func (s *DefaultSessionService) windowDays() int {
	if s.WindowDays > 0 {
		return s.WindowDays
	}
	return 30
}
