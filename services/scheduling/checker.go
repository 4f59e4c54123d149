package scheduling

import (
	"context"
	"time"

	bookingRepo "consultly/database/repository/booking"
)

// InstantSet is a set of UTC instants keyed by epoch seconds, so membership is
// exact-equality on the normalized timestamp and never tolerance-based.
type InstantSet map[int64]struct{}

func (s InstantSet) Add(t time.Time)           { s[t.UTC().Unix()] = struct{}{} }
func (s InstantSet) Contains(t time.Time) bool { _, ok := s[t.UTC().Unix()]; return ok }

// AvailabilityChecker decides whether a candidate instant is currently free by
// consulting existing non-cancelled bookings.
type AvailabilityChecker struct {
	Bookings bookingRepo.BookingRepository
}

// IsFree reports whether no non-cancelled booking holds the exact instant for
// the professional.
func (ch *AvailabilityChecker) IsFree(ctx context.Context, professionalID string, instant time.Time) (bool, error) {
	taken, err := ch.Bookings.ExistsLive(ctx, professionalID, instant.UTC())
	if err != nil {
		return false, err
	}
	return !taken, nil
}

// ListBooked returns the set of reserved instants in [from, to), for
// annotating a calendar view without a per-slot query.
func (ch *AvailabilityChecker) ListBooked(ctx context.Context, professionalID string, from, to time.Time) (InstantSet, error) {
	instants, err := ch.Bookings.ListBookedInstants(ctx, professionalID, from, to)
	if err != nil {
		return nil, err
	}
	set := make(InstantSet, len(instants))
	for _, t := range instants {
		set.Add(t)
	}
	return set, nil
}
