// File: database/repository/professional/professional_mongo.go
package professionalRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"consultly/database"
	"consultly/models"
)

// ProfessionalRepository is the minimal lookup surface the scheduling core
// needs; profile administration lives outside this service.
type ProfessionalRepository interface {
	GetByID(ctx context.Context, professionalID string) (*models.Professional, error)
	Upsert(ctx context.Context, professional *models.Professional) error
}

type mongoProfessionalRepo struct {
	coll *mongo.Collection
}

// NewMongoProfessionalRepo constructs a new MongoDB ProfessionalRepository.
func NewMongoProfessionalRepo() ProfessionalRepository {
	return &mongoProfessionalRepo{
		coll: database.DB().Collection("professionals"),
	}
}

func (r *mongoProfessionalRepo) GetByID(ctx context.Context, professionalID string) (*models.Professional, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var professional models.Professional
	filter := bson.M{"id": professionalID}
	if err := r.coll.FindOne(ctx, filter).Decode(&professional); err != nil {
		return nil, fmt.Errorf("error fetching professional %s: %w", professionalID, err)
	}
	return &professional, nil
}

func (r *mongoProfessionalRepo) Upsert(ctx context.Context, professional *models.Professional) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"id": professional.ID}
	update := bson.M{"$set": professional}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, filter, update, opts); err != nil {
		return fmt.Errorf("error upserting professional %s: %w", professional.ID, err)
	}
	return nil
}
