package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"consultly/config"
	"consultly/models"
)

// TypeBookingEvent is the asynq task type for booking lifecycle notifications.
const TypeBookingEvent = "notification:booking_event"

// AsynqDispatcher hands events to a Redis-backed task queue. Enqueueing is
// cheap and happens on the request path; delivery (and its retries) run in the
// background worker, so a slow or failing delivery edge never blocks a booking
// decision.
type AsynqDispatcher struct {
	client *asynq.Client
}

// NewAsynqDispatcher builds a dispatcher against the configured queue Redis DB.
func NewAsynqDispatcher() *AsynqDispatcher {
	return &AsynqDispatcher{
		client: asynq.NewClient(asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisQueueDB,
		}),
	}
}

func (d *AsynqDispatcher) Dispatch(ctx context.Context, event models.BookingEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal booking event: %w", err)
	}
	task := asynq.NewTask(TypeBookingEvent, payload)
	if _, err := d.client.EnqueueContext(ctx, task, asynq.MaxRetry(5)); err != nil {
		return fmt.Errorf("failed to enqueue booking event: %w", err)
	}
	return nil
}

// Close releases the underlying queue client.
func (d *AsynqDispatcher) Close() error {
	return d.client.Close()
}
