package models

import "time"

// BookingStatus enumerates the lifecycle states of a booking.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// Valid reports whether s is one of the known statuses.
func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition may leave s.
func (s BookingStatus) Terminal() bool {
	return s == BookingConfirmed || s == BookingCancelled
}

// CanTransitionTo reports whether the state machine permits moving from s to next.
// Only pending → confirmed and pending → cancelled are legal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return s == BookingPending && (next == BookingConfirmed || next == BookingCancelled)
}

// ClientInfo identifies the client who made a booking.
type ClientInfo struct {
	Name     string `bson:"name" json:"name" binding:"required"`
	Email    string `bson:"email" json:"email" binding:"required,email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	FCMToken string `bson:"fcm_token,omitempty" json:"fcmToken,omitempty"`
}

// Package is an optional pricing variant attached to a booking.
// It is descriptive payload only and does not affect scheduling.
type Package struct {
	Name  string  `bson:"name" json:"name"`
	Price float64 `bson:"price" json:"price"`
}

// Booking is the durable record of a reservation and its approval state.
type Booking struct {
	ID               string        `bson:"id" json:"id"`
	ProfessionalID   string        `bson:"professional_id" json:"professionalId"`
	Client           ClientInfo    `bson:"client" json:"client"`
	StartTime        time.Time     `bson:"start_time" json:"startTime"` // UTC instant
	Status           BookingStatus `bson:"status" json:"status"`
	PaymentReference string        `bson:"payment_reference" json:"paymentReference"`
	MeetingLink      string        `bson:"meeting_link,omitempty" json:"meetingLink,omitempty"`
	Package          *Package      `bson:"package,omitempty" json:"package,omitempty"`
	ReminderSent     bool          `bson:"reminder_sent,omitempty" json:"-"`
	CreatedAt        time.Time     `bson:"created_at" json:"createdAt"`
	UpdatedAt        time.Time     `bson:"updated_at" json:"updatedAt"`
}
