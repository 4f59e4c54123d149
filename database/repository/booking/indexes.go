// File: database/repository/booking/indexes.go
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

// EnsureIndexes creates the necessary indexes on the bookings collection.
// The live_slot index is the reservation arbiter: it is unique over
// (professional_id, start_time) but only covers non-cancelled documents, so a
// cancelled booking frees its instant for re-booking while two live bookings
// can never share one.
func (repo *MongoBookingRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys: bson.D{{Key: "professional_id", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("live_slot").
				SetPartialFilterExpression(bson.M{
					"status": bson.M{"$in": bson.A{models.BookingPending, models.BookingConfirmed}},
				}),
		},
		{
			Keys:    bson.D{{Key: "professional_id", Value: 1}, {Key: "status", Value: 1}},
			Options: options.Index().SetName("professional_status_idx"),
		},
		{
			Keys:    bson.D{{Key: "status", Value: 1}, {Key: "start_time", Value: 1}},
			Options: options.Index().SetName("status_start_idx"),
		},
		{
			Keys:    bson.D{{Key: "client.email", Value: 1}},
			Options: options.Index().SetName("client_email_idx"),
		},
	}

	if _, err := repo.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
