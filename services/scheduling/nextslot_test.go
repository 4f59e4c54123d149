package scheduling

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultly/models"
)

// nextSlotNow pins "now" to a Monday morning so the scan is deterministic
// regardless of when the tests run.
var nextSlotNow = time.Date(2026, time.September, 7, 8, 30, 0, 0, time.UTC)

func TestNextAvailable_EarliestFreeSlot(t *testing.T) {
	engine, _, _ := newTestEngine("pro-1")

	slot, err := engine.NextAvailable(context.Background(), "pro-1", nextSlotNow)
	require.NoError(t, err)

	// 08:30 Monday: the first producible slot after now is 09:00 today.
	assert.Equal(t, nextSlotNow.Truncate(24*time.Hour).Add(9*time.Hour), slot.Start)
	assert.Equal(t, "pro-1", slot.ProfessionalID)
}

func TestNextAvailable_SkipsInstantsNotAfterNow(t *testing.T) {
	engine, _, _ := newTestEngine("pro-1")

	// Exactly on a slot boundary: that slot has started, so it is not offered.
	now := nextSlotNow.Add(30 * time.Minute) // 09:00
	slot, err := engine.NextAvailable(context.Background(), "pro-1", now)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), slot.Start)
}

func TestNextAvailable_SkipsBookedSlots(t *testing.T) {
	engine, repo, _ := newTestEngine("pro-1")

	day := nextSlotNow.Truncate(24 * time.Hour)
	for _, hour := range []int{9, 10} {
		err := repo.Create(context.Background(), &models.Booking{
			ID:             fmt.Sprintf("seed-%d", hour),
			ProfessionalID: "pro-1",
			StartTime:      day.Add(time.Duration(hour) * time.Hour),
			Status:         models.BookingPending,
		})
		require.NoError(t, err)
	}

	slot, err := engine.NextAvailable(context.Background(), "pro-1", nextSlotNow)
	require.NoError(t, err)
	assert.Equal(t, day.Add(11*time.Hour), slot.Start)
}

func TestNextAvailable_CancelledBookingDoesNotBlock(t *testing.T) {
	engine, repo, _ := newTestEngine("pro-1")

	day := nextSlotNow.Truncate(24 * time.Hour)
	err := repo.Create(context.Background(), &models.Booking{
		ID:             "seed-cancelled",
		ProfessionalID: "pro-1",
		StartTime:      day.Add(9 * time.Hour),
		Status:         models.BookingCancelled,
	})
	require.NoError(t, err)

	slot, err := engine.NextAvailable(context.Background(), "pro-1", nextSlotNow)
	require.NoError(t, err)
	assert.Equal(t, day.Add(9*time.Hour), slot.Start)
}

func TestNextAvailable_RollsToFollowingDay(t *testing.T) {
	engine, _, _ := newTestEngine("pro-1")

	// Past the last slot of the day (16:00 is the final 1h slot in 09–17).
	now := nextSlotNow.Truncate(24 * time.Hour).Add(16 * time.Hour)
	slot, err := engine.NextAvailable(context.Background(), "pro-1", now)
	require.NoError(t, err)
	assert.Equal(t, now.Truncate(24*time.Hour).AddDate(0, 0, 1).Add(9*time.Hour), slot.Start)
}

func TestNextAvailable_HorizonExhausted(t *testing.T) {
	engine, repo, _ := newTestEngine("pro-1")

	// Book every slot across the whole horizon.
	day := nextSlotNow.Truncate(24 * time.Hour)
	for offset := 0; offset < 7; offset++ {
		for hour := 9; hour < 17; hour++ {
			err := repo.Create(context.Background(), &models.Booking{
				ID:             fmt.Sprintf("seed-%d-%d", offset, hour),
				ProfessionalID: "pro-1",
				StartTime:      day.AddDate(0, 0, offset).Add(time.Duration(hour) * time.Hour),
				Status:         models.BookingConfirmed,
			})
			require.NoError(t, err)
		}
	}

	_, err := engine.NextAvailable(context.Background(), "pro-1", nextSlotNow)
	require.ErrorIs(t, err, ErrNoSlotAvailable)
}

func TestNextAvailable_NoAvailabilityUsesFallbackHours(t *testing.T) {
	engine, _, _ := newTestEngine("pro-1")
	engine.Availability = &memAvailabilityRepo{}

	slot, err := engine.NextAvailable(context.Background(), "pro-1", nextSlotNow)
	require.NoError(t, err)
	// Monday is a fallback business day, so the 09:00 slot is offered.
	assert.Equal(t, nextSlotNow.Truncate(24*time.Hour).Add(9*time.Hour), slot.Start)
}
