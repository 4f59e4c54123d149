package scheduling

import (
	"context"
	"errors"

	"go.uber.org/zap"

	bookingRepo "consultly/database/repository/booking"
	"consultly/models"
	"consultly/utils"
)

// Approve confirms a pending booking and attaches the meeting link. The
// conditional status update serializes concurrent admin actions on the same
// booking id, so exactly one transition and one notification happen.
func (se *DefaultSchedulingEngine) Approve(ctx context.Context, bookingID, meetingLink string) (*models.Booking, error) {
	if meetingLink == "" {
		return nil, NewValidationError("meeting link is required to approve a booking")
	}

	booking, err := se.transition(ctx, bookingID, models.BookingConfirmed, meetingLink)
	if err != nil {
		return nil, err
	}

	se.notify(ctx, models.EventBookingApproved, *booking)
	utils.GetLogger().Info("booking approved",
		zap.String("bookingID", booking.ID),
		zap.String("meetingLink", meetingLink))
	return booking, nil
}

// Reject cancels a pending booking. Cancellation is a status, not a removal:
// the document stays and its instant becomes bookable again.
func (se *DefaultSchedulingEngine) Reject(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := se.transition(ctx, bookingID, models.BookingCancelled, "")
	if err != nil {
		return nil, err
	}

	se.notify(ctx, models.EventBookingRejected, *booking)
	utils.GetLogger().Info("booking rejected", zap.String("bookingID", booking.ID))
	return booking, nil
}

func (se *DefaultSchedulingEngine) transition(ctx context.Context, bookingID string, to models.BookingStatus, meetingLink string) (*models.Booking, error) {
	booking, err := se.Repo.UpdateStatus(ctx, bookingID, models.BookingPending, to, meetingLink)
	if err == nil {
		return booking, nil
	}
	if errors.Is(err, bookingRepo.ErrNotFound) {
		return nil, NewNotFoundError("booking " + bookingID + " not found")
	}
	if errors.Is(err, bookingRepo.ErrStatusConflict) {
		return nil, NewIllegalStateError("booking " + bookingID + " is not pending")
	}
	return nil, err
}

func (se *DefaultSchedulingEngine) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	booking, err := se.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNotFound) {
			return nil, NewNotFoundError("booking " + bookingID + " not found")
		}
		return nil, err
	}
	return booking, nil
}

func (se *DefaultSchedulingEngine) ListBookings(ctx context.Context, professionalID string, status models.BookingStatus) ([]models.Booking, error) {
	if status != "" && !status.Valid() {
		return nil, NewValidationError("unknown booking status " + string(status))
	}
	return se.Repo.ListByProfessional(ctx, professionalID, status)
}

func (se *DefaultSchedulingEngine) ListClientBookings(ctx context.Context, email string) ([]models.Booking, error) {
	if email == "" {
		return nil, NewValidationError("client email is required")
	}
	return se.Repo.ListByClientEmail(ctx, email)
}
