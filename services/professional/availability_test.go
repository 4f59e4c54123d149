package professional

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"consultly/models"
	"consultly/services/scheduling"
)

type stubAvailabilityRepo struct {
	blocks  []models.AvailabilityBlock
	deleted []string
}

func (r *stubAvailabilityRepo) GetByProfessionalID(_ context.Context, professionalID string) ([]models.AvailabilityBlock, error) {
	var out []models.AvailabilityBlock
	for _, b := range r.blocks {
		if b.ProfessionalID == professionalID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *stubAvailabilityRepo) ReplaceForProfessional(_ context.Context, professionalID string, blocks []models.AvailabilityBlock) ([]models.AvailabilityBlock, error) {
	var kept []models.AvailabilityBlock
	for _, b := range r.blocks {
		if b.ProfessionalID != professionalID {
			kept = append(kept, b)
		}
	}
	for i := range blocks {
		blocks[i].ProfessionalID = professionalID
	}
	r.blocks = append(kept, blocks...)
	return blocks, nil
}

func (r *stubAvailabilityRepo) DeleteByID(_ context.Context, professionalID, blockID string) error {
	r.deleted = append(r.deleted, blockID)
	return nil
}

func (r *stubAvailabilityRepo) EnsureIndexes() error { return nil }

type stubProfessionalRepo struct {
	known map[string]bool
}

func (r *stubProfessionalRepo) GetByID(_ context.Context, professionalID string) (*models.Professional, error) {
	if !r.known[professionalID] {
		return nil, assert.AnError
	}
	return &models.Professional{ID: professionalID, Name: "Dr. Wanjiru"}, nil
}

func (r *stubProfessionalRepo) Upsert(_ context.Context, _ *models.Professional) error { return nil }

func newAvailabilityService() (*DefaultAvailabilityService, *stubAvailabilityRepo) {
	repo := &stubAvailabilityRepo{}
	svc := &DefaultAvailabilityService{
		Repo:     repo,
		Profiles: &stubProfessionalRepo{known: map[string]bool{"pro-1": true}},
	}
	return svc, repo
}

func TestSetupAvailability_ReplacesRules(t *testing.T) {
	svc, repo := newAvailabilityService()
	repo.blocks = []models.AvailabilityBlock{
		{ID: "old", ProfessionalID: "pro-1", Day: time.Monday, Start: 8 * 60, End: 12 * 60},
	}

	blocks, err := svc.SetupAvailability(context.Background(), "pro-1", models.SetupAvailabilityRequest{
		Blocks: []models.AvailabilityBlock{
			{Day: time.Tuesday, Start: 9 * 60, End: 17 * 60},
			{Day: time.Thursday, Start: 13 * 60, End: 16 * 60},
		},
	})
	require.NoError(t, err)
	require.Len(t, blocks, 2)

	stored, err := svc.GetAvailability(context.Background(), "pro-1")
	require.NoError(t, err)
	require.Len(t, stored, 2, "old rules must be replaced, not merged")
	assert.Equal(t, time.Tuesday, stored[0].Day)
}

func TestSetupAvailability_UnknownProfessional(t *testing.T) {
	svc, _ := newAvailabilityService()

	_, err := svc.SetupAvailability(context.Background(), "pro-missing", models.SetupAvailabilityRequest{
		Blocks: []models.AvailabilityBlock{{Day: time.Monday, Start: 9 * 60, End: 17 * 60}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "professional not found")
}

func TestSetupAvailability_RejectsInvalidBlocks(t *testing.T) {
	svc, _ := newAvailabilityService()

	cases := []struct {
		name  string
		block models.AvailabilityBlock
	}{
		{"day out of range", models.AvailabilityBlock{Day: 7, Start: 9 * 60, End: 17 * 60}},
		{"negative start", models.AvailabilityBlock{Day: time.Monday, Start: -10, End: 17 * 60}},
		{"end past midnight", models.AvailabilityBlock{Day: time.Monday, Start: 9 * 60, End: 25 * 60}},
		{"start not before end", models.AvailabilityBlock{Day: time.Monday, Start: 17 * 60, End: 9 * 60}},
		{"zero-width block", models.AvailabilityBlock{Day: time.Monday, Start: 9 * 60, End: 9 * 60}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.SetupAvailability(context.Background(), "pro-1", models.SetupAvailabilityRequest{
				Blocks: []models.AvailabilityBlock{tc.block},
			})
			require.Error(t, err)
			assert.True(t, scheduling.IsValidation(err))
		})
	}
}

func TestDeleteBlock(t *testing.T) {
	svc, repo := newAvailabilityService()

	require.NoError(t, svc.DeleteBlock(context.Background(), "pro-1", "block-1"))
	assert.Equal(t, []string{"block-1"}, repo.deleted)
}
