package cron

import (
	"context"
	"log"
	"time"

	"consultly/config"
	bookingRepo "consultly/database/repository/booking"
	"consultly/models"
	"consultly/services/notification"
)

// StartReminderScanner periodically enqueues reminder notifications for
// confirmed bookings starting within the configured lead window. The
// conditional reminder_sent flip in the repository makes each booking remind
// exactly once even when scan cycles overlap.
func StartReminderScanner(repo bookingRepo.BookingRepository, dispatcher notification.Dispatcher) {
	period := time.Duration(config.AppConfig.ReminderScanPeriod) * time.Minute
	if period <= 0 {
		period = 15 * time.Minute
	}
	lead := time.Duration(config.AppConfig.ReminderLeadHours) * time.Hour
	if lead <= 0 {
		lead = 24 * time.Hour
	}

	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for range ticker.C {
			scanOnce(repo, dispatcher, lead)
		}
	}()
}

func scanOnce(repo bookingRepo.BookingRepository, dispatcher notification.Dispatcher, lead time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	now := time.Now().UTC()
	due, err := repo.ListDueReminders(ctx, now, now.Add(lead))
	if err != nil {
		log.Printf("[ReminderScanner] failed to list due reminders: %v", err)
		return
	}

	for _, booking := range due {
		marked, err := repo.MarkReminderSent(ctx, booking.ID)
		if err != nil {
			log.Printf("[ReminderScanner] failed to mark reminder for booking %s: %v", booking.ID, err)
			continue
		}
		if !marked {
			continue // another scanner got there first
		}

		event := models.BookingEvent{
			Type:      models.EventBookingReminder,
			Booking:   booking,
			EmittedAt: now,
		}
		if err := dispatcher.Dispatch(ctx, event); err != nil {
			log.Printf("[ReminderScanner] failed to enqueue reminder for booking %s: %v", booking.ID, err)
		}
	}
}
