package advisor

import (
	"context"
	"fmt"
	"time"

	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/schedule"
)

// maxWindowDays caps how far ahead a caller may ask the generator to look.
const maxWindowDays = 90

// ListSlots expands the advisor's availability into open slots of the
// requested duration, then drops any slot already intersecting a confirmed
// booking. The duration must be one the advisor actually sells.
func (s *DefaultAdvisorService) ListSlots(ctx context.Context, req SlotQuery) ([]models.Slot, error) {
	advisor, err := s.Repo.GetByID(req.AdvisorID)
	if err != nil {
		return nil, err
	}
	if len(advisor.Pricing.Durations) == 0 {
		return nil, schedule.ErrNoDurationsConfigured
	}
	if !advisor.Pricing.Offers(req.DurationMinutes) {
		return nil, fmt.Errorf("%w: %d minutes", schedule.ErrDurationNotOffered, req.DurationMinutes)
	}

	if req.WindowDays > maxWindowDays {
		req.WindowDays = maxWindowDays
	}

	now := time.Now()
	slots, err := schedule.GenerateSlots(advisor.Availability, req.DurationMinutes, req.WindowDays, req.ViewerZone, now)
	if err != nil {
		return nil, err
	}

	booked, err := s.Bookings.ListByAdvisor(req.AdvisorID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to load advisor bookings: %w", err)
	}
	if len(booked) == 0 {
		return slots, nil
	}

	open := slots[:0]
	for _, slot := range slots {
		if !overlapsAny(slot, booked) {
			open = append(open, slot)
		}
	}
	return open, nil
}

func overlapsAny(slot models.Slot, bookings []models.Booking) bool {
	for _, b := range bookings {
		if slot.StartsAt.Before(b.EndsAt) && slot.EndsAt.After(b.StartsAt) {
			return true
		}
	}
	return false
}
