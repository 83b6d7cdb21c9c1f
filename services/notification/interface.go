package notification

import (
	"context"
	"fmt"

	advisorRepo "github.com/YCK-art/knowly/database/repository/advisor"
	seekerRepo "github.com/YCK-art/knowly/database/repository/seeker"
	"github.com/YCK-art/knowly/utils"

	"firebase.google.com/go/v4/messaging"
	"go.mongodb.org/mongo-driver/bson"
)

// NotificationService defines methods for sending FCM pushes.
type NotificationService interface {
	SendSeekerPush(ctx context.Context, seekerID, title, body string, data map[string]string) error
	SendAdvisorPush(ctx context.Context, advisorID, title, body string, data map[string]string) error
}

// DefaultNotificationService is the production implementation.
type DefaultNotificationService struct {
	Seekers  seekerRepo.SeekerRepository
	Advisors advisorRepo.AdvisorRepository
}

func NewDefaultNotificationService(seekers seekerRepo.SeekerRepository, advisors advisorRepo.AdvisorRepository) (*DefaultNotificationService, error) {
	if seekers == nil || advisors == nil {
		return nil, fmt.Errorf("notification service initialization error: repository is nil")
	}
	return &DefaultNotificationService{Seekers: seekers, Advisors: advisors}, nil
}

// SendSeekerPush looks up a seeker's FCM token and sends a push.
func (s *DefaultNotificationService) SendSeekerPush(ctx context.Context, seekerID, title, body string, data map[string]string) error {
	seeker, err := s.Seekers.GetByID(seekerID)
	if err != nil {
		return fmt.Errorf("SendSeekerPush: could not find seeker %s: %w", seekerID, err)
	}
	if seeker.FCMToken == "" {
		return fmt.Errorf("SendSeekerPush: seeker %s has no FCM token", seekerID)
	}
	return send(ctx, seeker.FCMToken, title, body, withRole(data, "seeker"))
}

// SendAdvisorPush looks up an advisor's FCM token and sends a push.
func (s *DefaultNotificationService) SendAdvisorPush(ctx context.Context, advisorID, title, body string, data map[string]string) error {
	advisor, err := s.Advisors.GetByIDWithProjection(advisorID, bson.M{"id": 1, "fcmToken": 1})
	if err != nil {
		return fmt.Errorf("SendAdvisorPush: could not find advisor %s: %w", advisorID, err)
	}
	if advisor.FCMToken == "" {
		return fmt.Errorf("SendAdvisorPush: advisor %s has no FCM token", advisorID)
	}
	return send(ctx, advisor.FCMToken, title, body, withRole(data, "advisor"))
}

func withRole(data map[string]string, role string) map[string]string {
	if data == nil {
		data = map[string]string{}
	}
	if _, ok := data["role"]; !ok {
		data["role"] = role
	}
	return data
}

func send(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}
