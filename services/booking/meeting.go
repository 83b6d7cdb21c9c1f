package booking

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// CalendarMeetingIssuer creates a Google Calendar event with an attached
// Meet conference and hands back the join link.
type CalendarMeetingIssuer struct {
	svc        *calendar.Service
	calendarID string
	logger     *zap.Logger
}

// NewCalendarMeetingIssuer builds the issuer from a service-account
// credentials file. calendarID is usually "primary" for the service
// account's own calendar.
func NewCalendarMeetingIssuer(ctx context.Context, credentialsFile, calendarID string, logger *zap.Logger) (*CalendarMeetingIssuer, error) {
	svc, err := calendar.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(calendar.CalendarEventsScope),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	if calendarID == "" {
		calendarID = "primary"
	}
	return &CalendarMeetingIssuer{svc: svc, calendarID: calendarID, logger: logger}, nil
}

// IssueLink inserts the event with a Meet conference request and returns
// the resulting hangout link.
func (m *CalendarMeetingIssuer) IssueLink(ctx context.Context, req MeetingRequest) (string, error) {
	event := &calendar.Event{
		Summary: req.Topic,
		Start:   &calendar.EventDateTime{DateTime: req.StartsAt},
		End:     &calendar.EventDateTime{DateTime: req.EndsAt},
		Attendees: []*calendar.EventAttendee{
			{Email: req.AdvisorEmail},
			{Email: req.SeekerEmail},
		},
		ConferenceData: &calendar.ConferenceData{
			CreateRequest: &calendar.CreateConferenceRequest{
				RequestId: uuid.New().String(),
				ConferenceSolutionKey: &calendar.ConferenceSolutionKey{
					Type: "hangoutsMeet",
				},
			},
		},
	}

	created, err := m.svc.Events.Insert(m.calendarID, event).
		ConferenceDataVersion(1).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("failed to create meeting event: %w", err)
	}
	if created.HangoutLink == "" {
		return "", fmt.Errorf("meeting event %s has no conference link", created.Id)
	}

	m.logger.Info("meeting link issued", zap.String("event", created.Id))
	return created.HangoutLink, nil
}
