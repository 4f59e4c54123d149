package scheduling

import (
	"context"
	"time"

	"consultly/models"
)

// NextAvailable scans forward day-by-day over the booking horizon and returns
// the soonest free slot. Within today only instants strictly after now are
// eligible; later days contribute all their slots. The result is advisory: it
// can be raced away before the caller submits, so CreateBooking re-validates.
func (se *DefaultSchedulingEngine) NextAvailable(ctx context.Context, professionalID string, now time.Time) (*models.Slot, error) {
	blocks, err := se.Availability.GetByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, err
	}

	horizon := se.HorizonDays
	if horizon <= 0 {
		horizon = 7
	}

	dayStart := se.Calendar.midnightOf(now)
	for offset := 0; offset < horizon; offset++ {
		day := dayStart.AddDate(0, 0, offset)
		next := day.AddDate(0, 0, 1)

		slots := se.Calendar.Expand(professionalID, blocks, day, next)
		if len(slots) == 0 {
			continue
		}

		booked, err := se.Checker.ListBooked(ctx, professionalID, day.UTC(), next.UTC())
		if err != nil {
			return nil, err
		}

		for _, slot := range slots {
			if offset == 0 && !slot.Start.After(now) {
				continue
			}
			if booked.Contains(slot.Start) {
				continue
			}
			return &slot, nil
		}
	}

	return nil, ErrNoSlotAvailable
}
