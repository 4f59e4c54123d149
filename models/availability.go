package models

import "time"

// AvailabilityBlock is a recurring weekly rule describing when a professional
// can be booked. Start and End are minutes from midnight in the operating
// timezone (e.g. 540 for 9:00 AM). Invariant: Start < End.
type AvailabilityBlock struct {
	ID             string       `bson:"id" json:"id"`
	ProfessionalID string       `bson:"professional_id" json:"professionalId"`
	Day            time.Weekday `bson:"day" json:"day"`
	Start          int          `bson:"start" json:"start"`
	End            int          `bson:"end" json:"end"`
}

// Slot is a derived candidate booking instant. Slots have no identity or
// lifecycle of their own and are never persisted.
type Slot struct {
	ProfessionalID string    `json:"professionalId"`
	Start          time.Time `json:"start"` // UTC instant
}

// SetupAvailabilityRequest defines the payload for replacing a professional's
// weekly availability blocks.
type SetupAvailabilityRequest struct {
	Blocks []AvailabilityBlock `json:"blocks" binding:"required"`
}

// CalendarDay groups a day's slots for the calendar view, annotated with the
// instants that are already taken.
type CalendarDay struct {
	Date  string         `json:"date"` // YYYY-MM-DD in the operating timezone
	Slots []CalendarSlot `json:"slots"`
}

// CalendarSlot is a single displayable slot with its booked flag.
type CalendarSlot struct {
	Start  time.Time `json:"start"`
	Booked bool      `json:"booked"`
}
