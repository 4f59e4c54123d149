// File: database/repository/availability/availability_mongo.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"consultly/models"
)

func (r *mongoAvailabilityRepo) GetByProfessionalID(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"professional_id": professionalID}
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error fetching availability blocks: %w", err)
	}
	defer cursor.Close(ctx)

	var blocks []models.AvailabilityBlock
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("error decoding availability blocks: %w", err)
	}
	return blocks, nil
}

// ReplaceForProfessional swaps the full weekly rule set in one pass: delete
// then bulk insert. Assigns fresh IDs and stamps ownership on every block.
func (r *mongoAvailabilityRepo) ReplaceForProfessional(ctx context.Context, professionalID string, blocks []models.AvailabilityBlock) ([]models.AvailabilityBlock, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.coll.DeleteMany(ctx, bson.M{"professional_id": professionalID}); err != nil {
		return nil, fmt.Errorf("error clearing availability blocks: %w", err)
	}
	if len(blocks) == 0 {
		return nil, nil
	}

	docs := make([]interface{}, len(blocks))
	for i := range blocks {
		blocks[i].ID = uuid.New().String()
		blocks[i].ProfessionalID = professionalID
		docs[i] = blocks[i]
	}
	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, fmt.Errorf("error inserting availability blocks: %w", err)
	}
	return blocks, nil
}

func (r *mongoAvailabilityRepo) DeleteByID(ctx context.Context, professionalID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": blockID, "professional_id": professionalID}
	res, err := r.coll.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("error deleting availability block %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// EnsureIndexes creates the necessary indexes on the availability collection.
func (r *mongoAvailabilityRepo) EnsureIndexes() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		{
			Keys:    bson.D{{Key: "professional_id", Value: 1}, {Key: "day", Value: 1}},
			Options: options.Index().SetName("professional_day_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
