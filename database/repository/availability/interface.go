// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"consultly/database"
	"consultly/models"
)

type AvailabilityRepository interface {
	GetByProfessionalID(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error)
	// ReplaceForProfessional swaps the professional's full weekly rule set.
	ReplaceForProfessional(ctx context.Context, professionalID string, blocks []models.AvailabilityBlock) ([]models.AvailabilityBlock, error)
	DeleteByID(ctx context.Context, professionalID, blockID string) error
	EnsureIndexes() error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	return &mongoAvailabilityRepo{
		coll: database.DB().Collection("availability_blocks"),
	}
}
