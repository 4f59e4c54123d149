package notification

import (
	"context"
	"fmt"

	"firebase.google.com/go/v4/messaging"

	professionalRepo "consultly/database/repository/professional"
	"consultly/models"
	"consultly/utils"
)

// FCMSender is the delivery edge the worker calls: it turns a booking event
// into push messages. A "created" event goes to the professional; approval,
// rejection and reminder events go to the client.
type FCMSender struct {
	Professionals professionalRepo.ProfessionalRepository
}

// Send delivers the event. A recipient without a push token is skipped
// silently; there is simply no delivery target.
func (s *FCMSender) Send(ctx context.Context, event models.BookingEvent) error {
	title, body := renderSummary(event)
	data := map[string]string{
		"type":      string(event.Type),
		"bookingId": event.Booking.ID,
		"startTime": event.Booking.StartTime.Format("2006-01-02 15:04"),
	}
	if event.Booking.MeetingLink != "" {
		data["meetingLink"] = event.Booking.MeetingLink
	}

	switch event.Type {
	case models.EventBookingCreated:
		return s.pushToProfessional(ctx, event.Booking.ProfessionalID, title, body, data)
	case models.EventBookingApproved, models.EventBookingRejected, models.EventBookingReminder:
		return s.pushToClient(ctx, event.Booking.Client, title, body, data)
	default:
		return fmt.Errorf("unknown booking event type %q", event.Type)
	}
}

func (s *FCMSender) pushToProfessional(ctx context.Context, professionalID, title, body string, data map[string]string) error {
	p, err := s.Professionals.GetByID(ctx, professionalID)
	if err != nil {
		return fmt.Errorf("could not resolve professional %s: %w", professionalID, err)
	}
	if p.FCMToken == "" {
		return nil
	}
	data["role"] = "professional"
	return s.push(ctx, p.FCMToken, title, body, data)
}

func (s *FCMSender) pushToClient(ctx context.Context, client models.ClientInfo, title, body string, data map[string]string) error {
	if client.FCMToken == "" {
		return nil
	}
	data["role"] = "client"
	return s.push(ctx, client.FCMToken, title, body, data)
}

func (s *FCMSender) push(ctx context.Context, token, title, body string, data map[string]string) error {
	msg := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := utils.FCMClient.Send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send FCM message: %w", err)
	}
	return nil
}

func renderSummary(event models.BookingEvent) (title, body string) {
	when := event.Booking.StartTime.Format("Mon Jan 2, 15:04")
	switch event.Type {
	case models.EventBookingCreated:
		return "New booking request",
			fmt.Sprintf("%s requested a session on %s. Review it in your dashboard.", event.Booking.Client.Name, when)
	case models.EventBookingApproved:
		return "Your session is confirmed",
			fmt.Sprintf("Your session on %s was approved. Join via %s.", when, event.Booking.MeetingLink)
	case models.EventBookingRejected:
		return "Your booking was declined",
			fmt.Sprintf("Your session request for %s could not be accommodated.", when)
	case models.EventBookingReminder:
		return "Upcoming session",
			fmt.Sprintf("Reminder: your session starts %s.", when)
	}
	return string(event.Type), when
}
