package scheduling

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultly/models"
)

func pendingBooking(t *testing.T, engine *DefaultSchedulingEngine) *models.Booking {
	t.Helper()
	booking, err := engine.CreateBooking(context.Background(), validRequest("pro-1", tomorrowAt(10)))
	require.NoError(t, err)
	return booking
}

func TestApprove_ConfirmsAndNotifiesOnce(t *testing.T) {
	engine, _, dispatcher := newTestEngine("pro-1")
	booking := pendingBooking(t, engine)

	approved, err := engine.Approve(context.Background(), booking.ID, "https://meet.example/abc")
	require.NoError(t, err)

	assert.Equal(t, models.BookingConfirmed, approved.Status)
	assert.Equal(t, "https://meet.example/abc", approved.MeetingLink)

	events := dispatcher.byType(models.EventBookingApproved)
	require.Len(t, events, 1)
	assert.Equal(t, booking.ID, events[0].Booking.ID)
	assert.Equal(t, "https://meet.example/abc", events[0].Booking.MeetingLink)
}

func TestApprove_RequiresMeetingLink(t *testing.T) {
	engine, _, _ := newTestEngine("pro-1")
	booking := pendingBooking(t, engine)

	_, err := engine.Approve(context.Background(), booking.ID, "")
	require.Error(t, err)
	assert.True(t, IsValidation(err))

	// Still pending: the failed call must not have transitioned anything.
	current, err := engine.GetBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, current.Status)
}

func TestApprove_UnknownBooking(t *testing.T) {
	engine, _, _ := newTestEngine("pro-1")

	_, err := engine.Approve(context.Background(), "nope", "https://meet.example/abc")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestApprove_AlreadyConfirmed(t *testing.T) {
	engine, _, dispatcher := newTestEngine("pro-1")
	booking := pendingBooking(t, engine)

	_, err := engine.Approve(context.Background(), booking.ID, "https://meet.example/abc")
	require.NoError(t, err)

	_, err = engine.Approve(context.Background(), booking.ID, "https://meet.example/xyz")
	require.Error(t, err)
	assert.True(t, IsIllegalState(err))

	// One approval, one notification.
	assert.Len(t, dispatcher.byType(models.EventBookingApproved), 1)
}

func TestReject_CancelsAndNotifiesOnce(t *testing.T) {
	engine, _, dispatcher := newTestEngine("pro-1")
	booking := pendingBooking(t, engine)

	rejected, err := engine.Reject(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, rejected.Status)

	require.Len(t, dispatcher.byType(models.EventBookingRejected), 1)
}

func TestReject_SecondCallIsIllegalState(t *testing.T) {
	engine, _, dispatcher := newTestEngine("pro-1")
	booking := pendingBooking(t, engine)

	_, err := engine.Reject(context.Background(), booking.ID)
	require.NoError(t, err)

	_, err = engine.Reject(context.Background(), booking.ID)
	require.Error(t, err)
	assert.True(t, IsIllegalState(err))

	// State unchanged, no second notification.
	current, err := engine.GetBooking(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, current.Status)
	assert.Len(t, dispatcher.byType(models.EventBookingRejected), 1)
}

func TestReject_ConfirmedBookingStaysConfirmed(t *testing.T) {
	engine, _, _ := newTestEngine("pro-1")
	booking := pendingBooking(t, engine)

	_, err := engine.Approve(context.Background(), booking.ID, "https://meet.example/abc")
	require.NoError(t, err)

	_, err = engine.Reject(context.Background(), booking.ID)
	require.Error(t, err)
	assert.True(t, IsIllegalState(err))
}

func TestApproveReject_ConcurrentAdminActions(t *testing.T) {
	engine, _, dispatcher := newTestEngine("pro-1")
	booking := pendingBooking(t, engine)

	var wg sync.WaitGroup
	results := make(chan error, 2)
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := engine.Approve(context.Background(), booking.ID, "https://meet.example/abc")
		results <- err
	}()
	go func() {
		defer wg.Done()
		_, err := engine.Reject(context.Background(), booking.ID)
		results <- err
	}()
	wg.Wait()
	close(results)

	var successes, illegal int
	for err := range results {
		switch {
		case err == nil:
			successes++
		case IsIllegalState(err):
			illegal++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one admin action may win")
	assert.Equal(t, 1, illegal)

	total := len(dispatcher.byType(models.EventBookingApproved)) +
		len(dispatcher.byType(models.EventBookingRejected))
	assert.Equal(t, 1, total, "exactly one transition notification")
}
