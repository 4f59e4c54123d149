package cron

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "consultly/database/repository/booking"
	"consultly/models"
)

// reminderRepo stubs the booking repository for scanner tests. Only the
// reminder methods do real work.
type reminderRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newReminderRepo(bookings ...*models.Booking) *reminderRepo {
	r := &reminderRepo{bookings: make(map[string]*models.Booking)}
	for _, b := range bookings {
		r.bookings[b.ID] = b
	}
	return r
}

func (r *reminderRepo) ListDueReminders(_ context.Context, now, until time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var due []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.BookingConfirmed && !b.ReminderSent &&
			!b.StartTime.Before(now) && b.StartTime.Before(until) {
			due = append(due, *b)
		}
	}
	return due, nil
}

func (r *reminderRepo) MarkReminderSent(_ context.Context, bookingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.ReminderSent {
		return false, nil
	}
	b.ReminderSent = true
	return true, nil
}

func (r *reminderRepo) Create(context.Context, *models.Booking) error { return nil }
func (r *reminderRepo) GetByID(context.Context, string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (r *reminderRepo) UpdateStatus(context.Context, string, models.BookingStatus, models.BookingStatus, string) (*models.Booking, error) {
	return nil, bookingRepo.ErrNotFound
}
func (r *reminderRepo) ExistsLive(context.Context, string, time.Time) (bool, error) {
	return false, nil
}
func (r *reminderRepo) ListBookedInstants(context.Context, string, time.Time, time.Time) ([]time.Time, error) {
	return nil, nil
}
func (r *reminderRepo) ListByProfessional(context.Context, string, models.BookingStatus) ([]models.Booking, error) {
	return nil, nil
}
func (r *reminderRepo) ListByClientEmail(context.Context, string) ([]models.Booking, error) {
	return nil, nil
}
func (r *reminderRepo) EnsureIndexes() error { return nil }

type recorderDispatcher struct {
	mu     sync.Mutex
	events []models.BookingEvent
}

func (d *recorderDispatcher) Dispatch(_ context.Context, event models.BookingEvent) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
	return nil
}

func confirmedBooking(id string, start time.Time) *models.Booking {
	return &models.Booking{
		ID:             id,
		ProfessionalID: "pro-1",
		StartTime:      start,
		Status:         models.BookingConfirmed,
	}
}

func TestScanOnce_EnqueuesRemindersForDueBookings(t *testing.T) {
	soon := time.Now().UTC().Add(2 * time.Hour)
	repo := newReminderRepo(
		confirmedBooking("due-1", soon),
		confirmedBooking("far-away", time.Now().UTC().Add(72*time.Hour)),
	)
	dispatcher := &recorderDispatcher{}

	scanOnce(repo, dispatcher, 24*time.Hour)

	require.Len(t, dispatcher.events, 1)
	assert.Equal(t, models.EventBookingReminder, dispatcher.events[0].Type)
	assert.Equal(t, "due-1", dispatcher.events[0].Booking.ID)
}

func TestScanOnce_RemindsEachBookingOnce(t *testing.T) {
	repo := newReminderRepo(confirmedBooking("due-1", time.Now().UTC().Add(2*time.Hour)))
	dispatcher := &recorderDispatcher{}

	scanOnce(repo, dispatcher, 24*time.Hour)
	scanOnce(repo, dispatcher, 24*time.Hour)

	assert.Len(t, dispatcher.events, 1, "overlapping scans must not double-remind")
}

func TestScanOnce_SkipsPendingBookings(t *testing.T) {
	pending := confirmedBooking("pending-1", time.Now().UTC().Add(2*time.Hour))
	pending.Status = models.BookingPending
	repo := newReminderRepo(pending)
	dispatcher := &recorderDispatcher{}

	scanOnce(repo, dispatcher, 24*time.Hour)

	assert.Empty(t, dispatcher.events)
}
