package scheduling

import (
	"context"
	"sync"
	"time"

	bookingRepo "consultly/database/repository/booking"
	"consultly/models"
)

// memBookingRepo is an in-memory BookingRepository that enforces the same
// uniqueness guarantee as the Mongo partial index: at most one non-cancelled
// booking per (professional, instant).
type memBookingRepo struct {
	mu       sync.Mutex
	bookings map[string]*models.Booking
}

func newMemBookingRepo() *memBookingRepo {
	return &memBookingRepo{bookings: make(map[string]*models.Booking)}
}

func slotKey(professionalID string, instant time.Time) string {
	return professionalID + "|" + instant.UTC().Format(time.RFC3339)
}

func (r *memBookingRepo) Create(_ context.Context, booking *models.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Status != models.BookingCancelled &&
			slotKey(b.ProfessionalID, b.StartTime) == slotKey(booking.ProfessionalID, booking.StartTime) {
			return bookingRepo.ErrDuplicateInstant
		}
	}
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r *memBookingRepo) GetByID(_ context.Context, bookingID string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	clone := *b
	return &clone, nil
}

func (r *memBookingRepo) UpdateStatus(_ context.Context, bookingID string, fromStatus, toStatus models.BookingStatus, meetingLink string) (*models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok {
		return nil, bookingRepo.ErrNotFound
	}
	if b.Status != fromStatus {
		return nil, bookingRepo.ErrStatusConflict
	}
	b.Status = toStatus
	if meetingLink != "" {
		b.MeetingLink = meetingLink
	}
	b.UpdatedAt = time.Now().UTC()
	clone := *b
	return &clone, nil
}

func (r *memBookingRepo) ExistsLive(_ context.Context, professionalID string, instant time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Status != models.BookingCancelled &&
			slotKey(b.ProfessionalID, b.StartTime) == slotKey(professionalID, instant) {
			return true, nil
		}
	}
	return false, nil
}

func (r *memBookingRepo) ListBookedInstants(_ context.Context, professionalID string, from, to time.Time) ([]time.Time, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var instants []time.Time
	for _, b := range r.bookings {
		if b.ProfessionalID != professionalID || b.Status == models.BookingCancelled {
			continue
		}
		if !b.StartTime.Before(from) && b.StartTime.Before(to) {
			instants = append(instants, b.StartTime)
		}
	}
	return instants, nil
}

func (r *memBookingRepo) ListByProfessional(_ context.Context, professionalID string, status models.BookingStatus) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.ProfessionalID != professionalID {
			continue
		}
		if status != "" && b.Status != status {
			continue
		}
		out = append(out, *b)
	}
	return out, nil
}

func (r *memBookingRepo) ListByClientEmail(_ context.Context, email string) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Client.Email == email {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) ListDueReminders(_ context.Context, now, until time.Time) ([]models.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []models.Booking
	for _, b := range r.bookings {
		if b.Status == models.BookingConfirmed && !b.ReminderSent &&
			!b.StartTime.Before(now) && b.StartTime.Before(until) {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (r *memBookingRepo) MarkReminderSent(_ context.Context, bookingID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.bookings[bookingID]
	if !ok || b.ReminderSent {
		return false, nil
	}
	b.ReminderSent = true
	return true, nil
}

func (r *memBookingRepo) EnsureIndexes() error { return nil }

// memAvailabilityRepo serves a fixed block set.
type memAvailabilityRepo struct {
	blocks []models.AvailabilityBlock
}

func (r *memAvailabilityRepo) GetByProfessionalID(_ context.Context, professionalID string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range r.blocks {
		if b.ProfessionalID == professionalID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memAvailabilityRepo) ReplaceForProfessional(_ context.Context, professionalID string, blocks []models.AvailabilityBlock) ([]models.AvailabilityBlock, error) {
	var kept []models.AvailabilityBlock
	for _, b := range r.blocks {
		if b.ProfessionalID != professionalID {
			kept = append(kept, b)
		}
	}
	for i := range blocks {
		blocks[i].ProfessionalID = professionalID
	}
	r.blocks = append(kept, blocks...)
	return blocks, nil
}

func (r *memAvailabilityRepo) DeleteByID(_ context.Context, professionalID, blockID string) error {
	return nil
}

func (r *memAvailabilityRepo) EnsureIndexes() error { return nil }

// recorderDispatcher captures dispatched events for assertions.
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

func (d *recorderDispatcher) byType(t models.BookingEventType) []models.BookingEvent {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []models.BookingEvent
	for _, e := range d.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}
