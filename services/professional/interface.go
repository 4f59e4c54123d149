package professional

import (
	"context"

	availabilityRepo "consultly/database/repository/availability"
	professionalRepo "consultly/database/repository/professional"
	"consultly/models"
	"consultly/services/scheduling"
)

// AvailabilityService manages a professional's recurring weekly rules.
type AvailabilityService interface {
	SetupAvailability(ctx context.Context, professionalID string, req models.SetupAvailabilityRequest) ([]models.AvailabilityBlock, error)
	GetAvailability(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error)
	DeleteBlock(ctx context.Context, professionalID, blockID string) error
}

// DefaultAvailabilityService implements AvailabilityService.
type DefaultAvailabilityService struct {
	Repo      availabilityRepo.AvailabilityRepository
	Profiles  professionalRepo.ProfessionalRepository
	Scheduler *scheduling.DefaultSchedulingEngine
}
