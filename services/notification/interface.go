package notification

import (
	"context"

	"consultly/models"
)

// Dispatcher accepts booking lifecycle events after a durable transition.
// Delivery (template rendering, push, email) is the dispatcher's concern; the
// scheduling core only decides when to emit and with what facts. Dispatch is
// best-effort from the caller's point of view: a failure is logged by the
// caller and never rolls back the transition that produced the event.
type Dispatcher interface {
	Dispatch(ctx context.Context, event models.BookingEvent) error
}
