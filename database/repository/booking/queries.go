// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"consultly/models"
)

var liveStatuses = bson.A{models.BookingPending, models.BookingConfirmed}

// ExistsLive reports whether a non-cancelled booking holds the exact instant.
// Instant comparison is exact: all instants are normalized to UTC before they
// reach this layer, so equality on the stored timestamp is the whole check.
func (repo *MongoBookingRepo) ExistsLive(ctx context.Context, professionalID string, instant time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"start_time":      instant.UTC(),
		"status":          bson.M{"$in": liveStatuses},
	}
	count, err := repo.coll.CountDocuments(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("error checking live booking: %w", err)
	}
	return count > 0, nil
}

// ListBookedInstants returns the non-cancelled instants in [from, to).
func (repo *MongoBookingRepo) ListBookedInstants(ctx context.Context, professionalID string, from, to time.Time) ([]time.Time, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"professional_id": professionalID,
		"start_time":      bson.M{"$gte": from.UTC(), "$lt": to.UTC()},
		"status":          bson.M{"$in": liveStatuses},
	}
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding booked instants: %w", err)
	}
	defer cursor.Close(ctx)

	var instants []time.Time
	for cursor.Next(ctx) {
		var booking models.Booking
		if err := cursor.Decode(&booking); err != nil {
			return nil, fmt.Errorf("error decoding booking: %w", err)
		}
		instants = append(instants, booking.StartTime.UTC())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error: %w", err)
	}
	return instants, nil
}

// ListByProfessional returns the professional's bookings, optionally filtered
// by status, newest start first.
func (repo *MongoBookingRepo) ListByProfessional(ctx context.Context, professionalID string, status models.BookingStatus) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professional_id": professionalID}
	if status != "" {
		filter["status"] = status
	}
	return repo.findBookings(ctx, filter)
}

func (repo *MongoBookingRepo) ListByClientEmail(ctx context.Context, email string) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return repo.findBookings(ctx, bson.M{"client.email": email})
}

// ListDueReminders returns confirmed bookings starting within [now, until)
// whose reminder has not fired.
func (repo *MongoBookingRepo) ListDueReminders(ctx context.Context, now, until time.Time) ([]models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"status":        models.BookingConfirmed,
		"start_time":    bson.M{"$gte": now.UTC(), "$lt": until.UTC()},
		"reminder_sent": bson.M{"$ne": true},
	}
	return repo.findBookings(ctx, filter)
}

// MarkReminderSent flips the flag conditionally so the reminder fires once
// even when two scan cycles overlap.
func (repo *MongoBookingRepo) MarkReminderSent(ctx context.Context, bookingID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "reminder_sent": bson.M{"$ne": true}}
	update := bson.M{"$set": bson.M{"reminder_sent": true, "updated_at": time.Now().UTC()}}
	res, err := repo.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, fmt.Errorf("error marking reminder for booking %s: %w", bookingID, err)
	}
	return res.ModifiedCount > 0, nil
}

func (repo *MongoBookingRepo) findBookings(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	cursor, err := repo.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error finding bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
