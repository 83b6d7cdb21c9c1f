package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/YCK-art/knowly/models"
	"github.com/YCK-art/knowly/services/schedule"
)

// --- fakes ---

type fakeAdvisorRepo struct {
	advisor *models.Advisor
}

func (f *fakeAdvisorRepo) Create(*models.Advisor) error                 { return nil }
func (f *fakeAdvisorRepo) Update(*models.Advisor) error                 { return nil }
func (f *fakeAdvisorRepo) UpdateSetDocument(string, bson.M) error       { return nil }
func (f *fakeAdvisorRepo) Delete(string) error                          { return nil }
func (f *fakeAdvisorRepo) GetByEmail(string) (*models.Advisor, error)   { return f.advisor, nil }
func (f *fakeAdvisorRepo) Search(models.AdvisorFilter) ([]models.Advisor, error) {
	return nil, nil
}
func (f *fakeAdvisorRepo) SetAvailability(string, models.Availability) error { return nil }
func (f *fakeAdvisorRepo) SetPricing(string, models.Pricing) error           { return nil }
func (f *fakeAdvisorRepo) GetByID(id string) (*models.Advisor, error) {
	if f.advisor == nil || f.advisor.ID != id {
		return nil, errors.New("advisor not found")
	}
	return f.advisor, nil
}
func (f *fakeAdvisorRepo) GetByIDWithProjection(id string, _ bson.M) (*models.Advisor, error) {
	return f.GetByID(id)
}

type fakeSeekerRepo struct {
	seeker *models.Seeker
}

func (f *fakeSeekerRepo) Create(*models.Seeker) error               { return nil }
func (f *fakeSeekerRepo) Update(*models.Seeker) error               { return nil }
func (f *fakeSeekerRepo) UpdateSetDocument(string, bson.M) error    { return nil }
func (f *fakeSeekerRepo) Delete(string) error                       { return nil }
func (f *fakeSeekerRepo) GetByEmail(string) (*models.Seeker, error) { return f.seeker, nil }
func (f *fakeSeekerRepo) AddFavorite(string, string) error          { return nil }
func (f *fakeSeekerRepo) RemoveFavorite(string, string) error       { return nil }
func (f *fakeSeekerRepo) GetByID(id string) (*models.Seeker, error) {
	if f.seeker == nil || f.seeker.ID != id {
		return nil, errors.New("seeker not found")
	}
	return f.seeker, nil
}

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*models.Booking
}

func (f *fakeBookingRepo) Create(b *models.Booking) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.bookings = append(f.bookings, b)
	return nil
}
func (f *fakeBookingRepo) GetByID(id string) (*models.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, errors.New("booking not found")
}
func (f *fakeBookingRepo) ListByAdvisor(string, time.Time) ([]models.Booking, error) {
	return nil, nil
}
func (f *fakeBookingRepo) ListBySeeker(string) ([]models.Booking, error) { return nil, nil }
func (f *fakeBookingRepo) UpdateStatus(string, string) error             { return nil }
func (f *fakeBookingRepo) ExistsOverlapping(advisorID string, start, end time.Time) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.bookings {
		if b.AdvisorID != advisorID || b.Status != models.BookingConfirmed {
			continue
		}
		if b.StartsAt.Before(end) && b.EndsAt.After(start) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBookingRepo) last() *models.Booking {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.bookings) == 0 {
		return nil
	}
	return f.bookings[len(f.bookings)-1]
}

type fakePayments struct {
	authorizeErr error
	captureErr   error
	authorized   int
	captured     int
	cancelled    int
}

func (f *fakePayments) Authorize(_ context.Context, _ PaymentRequest) (string, error) {
	if f.authorizeErr != nil {
		return "", f.authorizeErr
	}
	f.authorized++
	return "pi_test_1", nil
}
func (f *fakePayments) Capture(_ context.Context, _ string) error {
	if f.captureErr != nil {
		return f.captureErr
	}
	f.captured++
	return nil
}
func (f *fakePayments) Cancel(_ context.Context, _ string) error {
	f.cancelled++
	return nil
}

type fakeMeetings struct {
	err    error
	issued int
}

func (f *fakeMeetings) IssueLink(_ context.Context, _ MeetingRequest) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.issued++
	return "https://meet.google.com/abc-defg-hij", nil
}

// --- harness ---

type fixture struct {
	svc      *DefaultSessionService
	payments *fakePayments
	meetings *fakeMeetings
	bookings *fakeBookingRepo
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	mr := miniredis.RunT(t)
	cache := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	allDay := []models.TimeRange{{Start: "00:00", End: "23:30"}}
	advisor := &models.Advisor{
		ID:        "adv-1",
		Email:     "advisor@example.com",
		FirstName: "Mina",
		LastName:  "Park",
		Availability: models.Availability{
			Time: models.WeeklyAvailability{
				Sun: allDay, Mon: allDay, Tue: allDay, Wed: allDay,
				Thu: allDay, Fri: allDay, Sat: allDay,
			},
			Timezone: "UTC",
		},
		Pricing: models.Pricing{UnitPrice: 20, Durations: []int{15, 30, 60}},
	}

	payments := &fakePayments{}
	meetings := &fakeMeetings{}
	bookings := &fakeBookingRepo{}

	svc := &DefaultSessionService{
		Advisors:   &fakeAdvisorRepo{advisor: advisor},
		Seekers:    &fakeSeekerRepo{seeker: &models.Seeker{ID: "seek-1", Email: "seeker@example.com"}},
		Bookings:   bookings,
		Payments:   payments,
		Meetings:   meetings,
		Cache:      cache,
		Logger:     zap.NewNop(),
		Currency:   "usd",
		WindowDays: 7,
	}
	return &fixture{svc: svc, payments: payments, meetings: meetings, bookings: bookings}
}

// nextSlot returns the first slot the advisor currently offers.
func (f *fixture) nextSlot(t *testing.T, duration int) models.Slot {
	t.Helper()
	advisor, err := f.svc.Advisors.GetByID("adv-1")
	require.NoError(t, err)
	slots, err := schedule.GenerateSlots(advisor.Availability, duration, 7, "", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, slots)
	return slots[0]
}

// toPayment walks a fresh session to AWAITING_PAYMENT.
func (f *fixture) toPayment(t *testing.T) *models.BookingSession {
	t.Helper()
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)
	require.Equal(t, models.StateSelectingSlot, sess.State)

	sess, err = f.svc.SelectSlot(ctx, sess.SessionID, f.nextSlot(t, 30))
	require.NoError(t, err)
	require.Equal(t, models.StateAwaitingDetails, sess.State)

	sess, err = f.svc.SubmitDetails(ctx, sess.SessionID, SessionDetails{Topic: "Career switch"})
	require.NoError(t, err)
	require.Equal(t, models.StateAwaitingPayment, sess.State)
	return sess
}

// --- tests ---

func TestConfirmHappyPath(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.toPayment(t)

	// Price was frozen at the details step: 30 minutes at 20 per unit.
	assert.Equal(t, 40.0, sess.Price)

	booked, err := f.svc.Confirm(ctx, sess.SessionID, "pm_card_visa")
	require.NoError(t, err)

	assert.Equal(t, models.BookingConfirmed, booked.Status)
	assert.True(t, booked.PaymentCaptured)
	assert.Equal(t, "pi_test_1", booked.PaymentRef)
	assert.NotEmpty(t, booked.MeetingLink)
	assert.Equal(t, 40.0, booked.Price)
	assert.Equal(t, 1, f.payments.captured)
	assert.Equal(t, 1, f.meetings.issued)

	// The session is gone once the booking lands.
	_, err = f.svc.GetSession(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestConfirmPaymentDeclined(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.toPayment(t)

	f.payments.authorizeErr = errors.New("card declined")

	_, err := f.svc.Confirm(ctx, sess.SessionID, "pm_card_declined")
	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.False(t, payErr.Captured)

	// A terminal FAILED booking is written with no captured payment.
	failed := f.bookings.last()
	require.NotNil(t, failed)
	assert.Equal(t, models.BookingFailed, failed.Status)
	assert.False(t, failed.PaymentCaptured)
	assert.Empty(t, failed.PaymentRef)
	assert.Equal(t, 0, f.meetings.issued)

	// The session records the failure too.
	stored, err := f.svc.GetSession(ctx, sess.SessionID)
	require.NoError(t, err)
	assert.Equal(t, models.StateFailed, stored.State)
}

func TestConfirmLinkFailureAfterCapture(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.toPayment(t)

	f.meetings.err = errors.New("conference backend down")

	_, err := f.svc.Confirm(ctx, sess.SessionID, "pm_card_visa")
	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	// Not a decline: the charge went through before the link failed.
	assert.True(t, payErr.Captured)

	failed := f.bookings.last()
	require.NotNil(t, failed)
	assert.Equal(t, models.BookingFailed, failed.Status)
	assert.True(t, failed.PaymentCaptured)
	assert.Equal(t, "pi_test_1", failed.PaymentRef)
	assert.Equal(t, 1, f.payments.captured)
}

func TestConfirmReleasesHoldOnCaptureFailure(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.toPayment(t)

	f.payments.captureErr = errors.New("capture rejected")

	_, err := f.svc.Confirm(ctx, sess.SessionID, "pm_card_visa")
	var payErr *PaymentError
	require.ErrorAs(t, err, &payErr)
	assert.False(t, payErr.Captured)
	assert.Equal(t, 1, f.payments.cancelled)
}

func TestSelectSlotRejectsTakenSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	slot := f.nextSlot(t, 30)
	require.NoError(t, f.bookings.Create(&models.Booking{
		ID:        "existing",
		AdvisorID: "adv-1",
		StartsAt:  slot.StartsAt,
		EndsAt:    slot.EndsAt,
		Status:    models.BookingConfirmed,
	}))

	sess, err := f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)

	_, err = f.svc.SelectSlot(ctx, sess.SessionID, slot)
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestSelectSlotRejectsUnofferedDuration(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)

	slot := f.nextSlot(t, 30)
	slot.DurationMinutes = 45 // not in the advisor's duration list
	_, err = f.svc.SelectSlot(ctx, sess.SessionID, slot)
	assert.ErrorIs(t, err, schedule.ErrDurationNotOffered)
}

func TestConfirmRequiresAwaitingPayment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)

	_, err = f.svc.Confirm(ctx, sess.SessionID, "pm_card_visa")
	var trErr *TransitionError
	require.ErrorAs(t, err, &trErr)
	assert.Equal(t, models.StateSelectingSlot, trErr.From)
	assert.Equal(t, 0, f.payments.authorized)
}

func TestSubmitDetailsAllowsEmptyTopic(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)
	sess, err = f.svc.SelectSlot(ctx, sess.SessionID, f.nextSlot(t, 30))
	require.NoError(t, err)

	// The question is free text; a seeker may skip it entirely.
	sess, err = f.svc.SubmitDetails(ctx, sess.SessionID, SessionDetails{})
	require.NoError(t, err)
	assert.Equal(t, models.StateAwaitingPayment, sess.State)
	assert.Empty(t, sess.Topic)
	assert.Equal(t, 40.0, sess.Price)
}

func TestSubmitDetailsRequiresSlot(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	sess, err := f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)

	_, err = f.svc.SubmitDetails(ctx, sess.SessionID, SessionDetails{Topic: "hi"})
	var trErr *TransitionError
	assert.ErrorAs(t, err, &trErr)
}

func TestCancelFromEachOpenState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	// SELECTING_SLOT
	sess, err := f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)
	require.NoError(t, f.svc.Cancel(ctx, sess.SessionID))
	_, err = f.svc.GetSession(ctx, sess.SessionID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	// AWAITING_DETAILS
	sess, err = f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	require.NoError(t, err)
	_, err = f.svc.SelectSlot(ctx, sess.SessionID, f.nextSlot(t, 30))
	require.NoError(t, err)
	assert.NoError(t, f.svc.Cancel(ctx, sess.SessionID))

	// AWAITING_PAYMENT
	sess = f.toPayment(t)
	assert.NoError(t, f.svc.Cancel(ctx, sess.SessionID))

	// Cancelling an already-dropped session fails cleanly.
	assert.ErrorIs(t, f.svc.Cancel(ctx, sess.SessionID), ErrSessionNotFound)
}

func TestInitiateRequiresConfiguredAdvisor(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	advisor, err := f.svc.Advisors.GetByID("adv-1")
	require.NoError(t, err)

	advisor.Pricing.Durations = nil
	_, err = f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	assert.ErrorIs(t, err, schedule.ErrNoDurationsConfigured)

	advisor.Pricing.Durations = []int{30}
	advisor.Timezone = ""
	_, err = f.svc.InitiateSession(ctx, "seek-1", "adv-1")
	assert.ErrorIs(t, err, schedule.ErrMissingTimezone)
}

func TestCanTransitionTable(t *testing.T) {
	tests := []struct {
		from, to string
		ok       bool
	}{
		{models.StateSelectingSlot, models.StateAwaitingDetails, true},
		{models.StateSelectingSlot, models.StateCancelled, true},
		{models.StateSelectingSlot, models.StateConfirmed, false},
		{models.StateAwaitingDetails, models.StateAwaitingPayment, true},
		{models.StateAwaitingDetails, models.StateFailed, false},
		{models.StateAwaitingPayment, models.StateConfirmed, true},
		{models.StateAwaitingPayment, models.StateFailed, true},
		{models.StateAwaitingPayment, models.StateCancelled, true},
		{models.StateConfirmed, models.StateCancelled, false},
		{models.StateFailed, models.StateAwaitingPayment, false},
		{models.StateCancelled, models.StateSelectingSlot, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.ok, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}
