// File: database/repository/booking/booking_mongo.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"consultly/models"
)

// Create inserts a new booking document. The live_slot partial unique index
// (see indexes.go) arbitrates concurrent inserts for the same instant: the
// loser's duplicate-key error is mapped to ErrDuplicateInstant and nothing is
// written for it.
func (repo *MongoBookingRepo) Create(ctx context.Context, booking *models.Booking) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := repo.coll.InsertOne(ctx, booking); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicateInstant
		}
		return fmt.Errorf("error creating booking: %w", err)
	}
	return nil
}

func (repo *MongoBookingRepo) GetByID(ctx context.Context, bookingID string) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var booking models.Booking
	filter := bson.M{"id": bookingID}
	if err := repo.coll.FindOne(ctx, filter).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error fetching booking %s: %w", bookingID, err)
	}
	return &booking, nil
}

// UpdateStatus performs the conditional transition in a single FindOneAndUpdate
// filtered on the current status, which serializes concurrent admin actions on
// the same booking id: exactly one of them matches the pending document.
func (repo *MongoBookingRepo) UpdateStatus(
	ctx context.Context,
	bookingID string,
	fromStatus, toStatus models.BookingStatus,
	meetingLink string,
) (*models.Booking, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": bookingID, "status": fromStatus}
	set := bson.M{
		"status":     toStatus,
		"updated_at": time.Now().UTC(),
	}
	if meetingLink != "" {
		set["meeting_link"] = meetingLink
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Booking
	err := repo.coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, fmt.Errorf("error updating booking %s: %w", bookingID, err)
	}

	// No pending document matched; distinguish unknown id from illegal state.
	count, cErr := repo.coll.CountDocuments(ctx, bson.M{"id": bookingID})
	if cErr != nil {
		return nil, fmt.Errorf("error checking booking %s: %w", bookingID, cErr)
	}
	if count == 0 {
		return nil, ErrNotFound
	}
	return nil, ErrStatusConflict
}
