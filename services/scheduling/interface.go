package scheduling

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	availabilityRepo "consultly/database/repository/availability"
	bookingRepo "consultly/database/repository/booking"
	"consultly/models"
	"consultly/services/notification"
	"consultly/services/payment"
)

// SchedulingService is the scheduling and booking-lifecycle core.
type SchedulingService interface {
	// GetCalendar expands availability over [from, to) and annotates each slot
	// with whether its instant is already reserved.
	GetCalendar(ctx context.Context, professionalID string, from, to time.Time) ([]models.CalendarDay, error)

	// NextAvailable reports the soonest free instant within the booking
	// horizon. Advisory only: the result must be re-validated at booking time.
	NextAvailable(ctx context.Context, professionalID string, now time.Time) (*models.Slot, error)

	// CreateBooking atomically reserves an instant. Exactly one of N
	// concurrent calls for the same (professional, instant) succeeds.
	CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error)

	// Approve moves a pending booking to confirmed and attaches the meeting
	// link. Reject moves a pending booking to cancelled. Both emit exactly one
	// notification after the durable status write.
	Approve(ctx context.Context, bookingID, meetingLink string) (*models.Booking, error)
	Reject(ctx context.Context, bookingID string) (*models.Booking, error)

	GetBooking(ctx context.Context, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, professionalID string, status models.BookingStatus) ([]models.Booking, error)
	ListClientBookings(ctx context.Context, email string) ([]models.Booking, error)
}

// DefaultSchedulingEngine is the production implementation.
type DefaultSchedulingEngine struct {
	Repo         bookingRepo.BookingRepository
	Availability availabilityRepo.AvailabilityRepository
	Calendar     *Calendar
	Checker      *AvailabilityChecker
	Payments     payment.Verifier
	Notifier     notification.Dispatcher

	// Cache holds expanded pure calendars. Optional; nil disables caching.
	Cache    *redis.Client
	CacheTTL time.Duration

	// HorizonDays bounds NextAvailable's forward scan.
	HorizonDays int
}

var _ SchedulingService = (*DefaultSchedulingEngine)(nil)
