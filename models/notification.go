package models

import "time"

// BookingEventType identifies the lifecycle transition a notification reports.
type BookingEventType string

const (
	EventBookingCreated  BookingEventType = "created"
	EventBookingApproved BookingEventType = "approved"
	EventBookingRejected BookingEventType = "rejected"
	EventBookingReminder BookingEventType = "reminder"
)

// BookingEvent is the fact handed to the notification dispatcher after a
// durable transition. Template rendering and delivery are the dispatcher's
// problem; this core only decides when to emit and with what snapshot.
type BookingEvent struct {
	Type      BookingEventType `json:"type"`
	Booking   Booking          `json:"booking"`
	EmittedAt time.Time        `json:"emittedAt"`
}
