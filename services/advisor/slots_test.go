package advisor

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/schedule"
)

type stubAdvisorRepo struct {
	advisor *models.Advisor
}

func (r *stubAdvisorRepo) Create(*models.Advisor) error               { return nil }
func (r *stubAdvisorRepo) Update(*models.Advisor) error               { return nil }
func (r *stubAdvisorRepo) UpdateSetDocument(string, bson.M) error     { return nil }
func (r *stubAdvisorRepo) Delete(string) error                        { return nil }
func (r *stubAdvisorRepo) GetByEmail(string) (*models.Advisor, error) { return nil, nil }
func (r *stubAdvisorRepo) Search(models.AdvisorFilter) ([]models.Advisor, error) {
	return nil, nil
}
func (r *stubAdvisorRepo) SetAvailability(string, models.Availability) error { return nil }
func (r *stubAdvisorRepo) SetPricing(string, models.Pricing) error           { return nil }
func (r *stubAdvisorRepo) GetByID(id string) (*models.Advisor, error) {
	if r.advisor == nil || r.advisor.ID != id {
		return nil, errors.New("advisor not found")
	}
	return r.advisor, nil
}
func (r *stubAdvisorRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Advisor, error) {
	return r.GetByID(id)
}

type stubBookingRepo struct {
	bookings []models.Booking
}

func (r *stubBookingRepo) Create(*models.Booking) error                  { return nil }
func (r *stubBookingRepo) GetByID(string) (*models.Booking, error)       { return nil, nil }
func (r *stubBookingRepo) ListBySeeker(string) ([]models.Booking, error) { return nil, nil }
func (r *stubBookingRepo) UpdateStatus(string, string) error             { return nil }
func (r *stubBookingRepo) ListByAdvisor(string, time.Time) ([]models.Booking, error) {
	return r.bookings, nil
}
func (r *stubBookingRepo) ExistsOverlapping(string, time.Time, time.Time) (bool, error) {
	return false, nil
}

func newService(advisor *models.Advisor, bookings []models.Booking) *DefaultAdvisorService {
	return &DefaultAdvisorService{
		Repo:     &stubAdvisorRepo{advisor: advisor},
		Bookings: &stubBookingRepo{bookings: bookings},
		Logger:   zap.NewNop(),
	}
}

func openAdvisor() *models.Advisor {
	allDay := []models.TimeRange{{Start: "00:00", End: "23:30"}}
	return &models.Advisor{
		ID: "adv-1",
		Availability: models.Availability{
			Time: models.WeeklyAvailability{
				Sun: allDay, Mon: allDay, Tue: allDay, Wed: allDay,
				Thu: allDay, Fri: allDay, Sat: allDay,
			},
			Timezone: "UTC",
		},
		Pricing: models.Pricing{UnitPrice: 20, Durations: []int{30, 60}},
	}
}

func TestListSlotsFiltersBookedTimes(t *testing.T) {
	advisor := openAdvisor()
	svc := newService(advisor, nil)

	all, err := svc.ListSlots(context.Background(), SlotQuery{
		AdvisorID: "adv-1", DurationMinutes: 30, WindowDays: 2,
	})
	require.NoError(t, err)
	require.NotEmpty(t, all)

	// Book the first open slot, then list again.
	taken := all[0]
	svc = newService(advisor, []models.Booking{{
		AdvisorID: "adv-1",
		StartsAt:  taken.StartsAt,
		EndsAt:    taken.EndsAt,
		Status:    models.BookingConfirmed,
	}})

	open, err := svc.ListSlots(context.Background(), SlotQuery{
		AdvisorID: "adv-1", DurationMinutes: 30, WindowDays: 2,
	})
	require.NoError(t, err)
	assert.Len(t, open, len(all)-1)
	for _, s := range open {
		assert.False(t, s.StartsAt.Equal(taken.StartsAt))
	}
}

func TestListSlotsErrors(t *testing.T) {
	advisor := openAdvisor()
	svc := newService(advisor, nil)
	ctx := context.Background()

	_, err := svc.ListSlots(ctx, SlotQuery{AdvisorID: "adv-1", DurationMinutes: 45})
	assert.ErrorIs(t, err, schedule.ErrDurationNotOffered)

	advisor.Pricing.Durations = nil
	_, err = svc.ListSlots(ctx, SlotQuery{AdvisorID: "adv-1", DurationMinutes: 30})
	assert.ErrorIs(t, err, schedule.ErrNoDurationsConfigured)
}

func TestSetAvailabilityValidates(t *testing.T) {
	svc := newService(openAdvisor(), nil)

	bad := models.Availability{
		Time:     models.WeeklyAvailability{Mon: []models.TimeRange{{Start: "18:00", End: "09:00"}}},
		Timezone: "UTC",
	}
	assert.ErrorIs(t, svc.SetAvailability(context.Background(), "adv-1", bad), schedule.ErrInvalidTimeRange)

	good := models.Availability{
		Time:     models.WeeklyAvailability{Mon: []models.TimeRange{{Start: "09:00", End: "18:00"}}},
		Timezone: "Asia/Seoul",
	}
	assert.NoError(t, svc.SetAvailability(context.Background(), "adv-1", good))
}

func TestSetPricingValidates(t *testing.T) {
	svc := newService(openAdvisor(), nil)
	ctx := context.Background()

	assert.ErrorIs(t, svc.SetPricing(ctx, "adv-1", models.Pricing{UnitPrice: 25}), schedule.ErrNoDurationsConfigured)
	assert.NoError(t, svc.SetPricing(ctx, "adv-1", models.Pricing{UnitPrice: 25, Durations: []int{15, 30}}))
}
