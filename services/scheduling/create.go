package scheduling

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	bookingRepo "consultly/database/repository/booking"
	"consultly/models"
	"consultly/utils"
)

// CreateBookingRequest carries everything needed to reserve an instant. The
// payment reference must already have been obtained from the payment
// collaborator; this core never captures funds.
type CreateBookingRequest struct {
	ProfessionalID   string            `json:"professionalId" binding:"required"`
	StartTime        time.Time         `json:"startTime" binding:"required"`
	Client           models.ClientInfo `json:"client" binding:"required"`
	PaymentReference string            `json:"paymentReference" binding:"required"`
	Package          *models.Package   `json:"package,omitempty"`
}

// CreateBooking validates the request against declared availability, then
// inserts the booking in pending state. The store's partial unique index is
// the sole arbiter of the reservation race; the freedom pre-check is only a
// fast path that spares the losing caller an insert attempt.
func (se *DefaultSchedulingEngine) CreateBooking(ctx context.Context, req CreateBookingRequest) (*models.Booking, error) {
	logger := utils.GetLogger()

	if req.ProfessionalID == "" {
		return nil, NewValidationError("professional id is required")
	}
	if req.Client.Name == "" || req.Client.Email == "" {
		return nil, NewValidationError("client name and email are required")
	}
	if req.PaymentReference == "" {
		return nil, NewValidationError("payment reference is required; obtain one from the payment provider first")
	}

	instant := req.StartTime.UTC()
	if !instant.After(time.Now().UTC()) {
		return nil, NewValidationError("booking instant must be in the future")
	}

	blocks, err := se.Availability.GetByProfessionalID(ctx, req.ProfessionalID)
	if err != nil {
		return nil, err
	}
	if !se.Calendar.Produces(req.ProfessionalID, blocks, instant) {
		return nil, NewValidationError("requested instant is outside the professional's availability")
	}

	if err := se.Payments.Verify(ctx, req.PaymentReference); err != nil {
		return nil, NewValidationError("payment reference could not be verified: " + err.Error())
	}

	// Fast path: skip the insert when the instant is visibly taken. The index
	// still arbitrates for callers that pass this check concurrently.
	free, err := se.Checker.IsFree(ctx, req.ProfessionalID, instant)
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, NewConflictError("slot no longer available")
	}

	now := time.Now().UTC()
	booking := &models.Booking{
		ID:               uuid.New().String(),
		ProfessionalID:   req.ProfessionalID,
		Client:           req.Client,
		StartTime:        instant,
		Status:           models.BookingPending,
		PaymentReference: req.PaymentReference,
		Package:          req.Package,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := se.Repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingRepo.ErrDuplicateInstant) {
			return nil, NewConflictError("slot no longer available")
		}
		return nil, err
	}

	se.notify(ctx, models.EventBookingCreated, *booking)
	logger.Info("booking created",
		zap.String("bookingID", booking.ID),
		zap.String("professionalID", booking.ProfessionalID),
		zap.Time("startTime", booking.StartTime))
	return booking, nil
}

// notify emits one lifecycle event, best-effort. The durable transition is the
// authoritative fact; a failed dispatch is logged and left to the dispatcher's
// own retry policy, never re-run through the state machine.
func (se *DefaultSchedulingEngine) notify(ctx context.Context, eventType models.BookingEventType, booking models.Booking) {
	if se.Notifier == nil {
		return
	}
	event := models.BookingEvent{
		Type:      eventType,
		Booking:   booking,
		EmittedAt: time.Now().UTC(),
	}
	if err := se.Notifier.Dispatch(ctx, event); err != nil {
		utils.GetLogger().Warn("notification dispatch failed",
			zap.String("bookingID", booking.ID),
			zap.String("event", string(eventType)),
			zap.Error(err))
	}
}
