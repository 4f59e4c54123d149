package professional

import (
	"context"
	"fmt"
	"time"

	"consultly/models"
	"consultly/services/scheduling"
)

const minutesPerDay = 24 * 60

// SetupAvailability validates and replaces the professional's full weekly rule
// set, then drops any cached calendars so new windows expand from the fresh
// rules.
func (s *DefaultAvailabilityService) SetupAvailability(ctx context.Context, professionalID string, req models.SetupAvailabilityRequest) ([]models.AvailabilityBlock, error) {
	if _, err := s.Profiles.GetByID(ctx, professionalID); err != nil {
		return nil, fmt.Errorf("professional not found: %w", err)
	}

	for i, b := range req.Blocks {
		if b.Day < time.Sunday || b.Day > time.Saturday {
			return nil, scheduling.NewValidationError(fmt.Sprintf("block %d: day must be 0 (Sunday) through 6 (Saturday)", i+1))
		}
		if b.Start < 0 || b.End > minutesPerDay {
			return nil, scheduling.NewValidationError(fmt.Sprintf("block %d: times must fall within the day", i+1))
		}
		if b.Start >= b.End {
			return nil, scheduling.NewValidationError(fmt.Sprintf("block %d: start must be before end", i+1))
		}
	}

	blocks, err := s.Repo.ReplaceForProfessional(ctx, professionalID, req.Blocks)
	if err != nil {
		return nil, fmt.Errorf("failed to replace availability blocks: %w", err)
	}

	if s.Scheduler != nil {
		s.Scheduler.InvalidateCalendar(ctx, professionalID)
	}
	return blocks, nil
}

func (s *DefaultAvailabilityService) GetAvailability(ctx context.Context, professionalID string) ([]models.AvailabilityBlock, error) {
	return s.Repo.GetByProfessionalID(ctx, professionalID)
}

func (s *DefaultAvailabilityService) DeleteBlock(ctx context.Context, professionalID, blockID string) error {
	if err := s.Repo.DeleteByID(ctx, professionalID, blockID); err != nil {
		return err
	}
	if s.Scheduler != nil {
		s.Scheduler.InvalidateCalendar(ctx, professionalID)
	}
	return nil
}

var _ AvailabilityService = (*DefaultAvailabilityService)(nil)
