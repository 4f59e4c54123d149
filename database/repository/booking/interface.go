// File: database/repository/booking/interface.go
package bookingRepo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"consultly/database"
	"consultly/models"
)

// ErrDuplicateInstant is returned by Create when the partial unique index on
// (professional_id, start_time) rejects the insert: another non-cancelled
// booking already holds that instant.
var ErrDuplicateInstant = errors.New("instant already reserved")

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// ErrStatusConflict is returned by UpdateStatus when the booking exists but is
// no longer in the expected state.
var ErrStatusConflict = errors.New("booking not in expected status")

type BookingRepository interface {
	// Create inserts the booking. The store's uniqueness constraint is the
	// sole arbiter of slot freedom; a losing racer gets ErrDuplicateInstant.
	Create(ctx context.Context, booking *models.Booking) error

	GetByID(ctx context.Context, bookingID string) (*models.Booking, error)

	// UpdateStatus conditionally moves a booking out of fromStatus in one
	// document update, setting status, meeting link and updated_at. It
	// returns the post-update booking, ErrNotFound for an unknown id, or
	// ErrStatusConflict when the booking exists outside fromStatus.
	UpdateStatus(ctx context.Context, bookingID string, fromStatus, toStatus models.BookingStatus, meetingLink string) (*models.Booking, error)

	// ExistsLive reports whether a non-cancelled booking holds the instant.
	ExistsLive(ctx context.Context, professionalID string, instant time.Time) (bool, error)

	// ListBookedInstants returns the non-cancelled instants for the
	// professional in [from, to), for annotating a calendar in one query.
	ListBookedInstants(ctx context.Context, professionalID string, from, to time.Time) ([]time.Time, error)

	ListByProfessional(ctx context.Context, professionalID string, status models.BookingStatus) ([]models.Booking, error)
	ListByClientEmail(ctx context.Context, email string) ([]models.Booking, error)

	// ListDueReminders returns confirmed bookings starting within [now, until)
	// whose reminder has not fired yet.
	ListDueReminders(ctx context.Context, now, until time.Time) ([]models.Booking, error)
	// MarkReminderSent flips reminder_sent exactly once; the conditional
	// filter makes concurrent scans fire a single reminder.
	MarkReminderSent(ctx context.Context, bookingID string) (bool, error)

	EnsureIndexes() error
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a new instance of MongoBookingRepo.
func NewMongoBookingRepo() BookingRepository {
	return &MongoBookingRepo{
		coll: database.DB().Collection("bookings"),
	}
}
