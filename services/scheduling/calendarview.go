package scheduling

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"

	"consultly/models"
	"consultly/utils"
)

const calendarCacheKeyFmt = "calendar:%s:%s:%s"

// GetCalendar expands the professional's availability over [from, to), grouped
// by operating-timezone date, with each slot annotated against the current
// booked set. The pure expansion may be served from cache (it only changes
// when blocks change, see InvalidateCalendar); the booked annotation is always
// read live so a stale cache can never hide a reservation.
func (se *DefaultSchedulingEngine) GetCalendar(ctx context.Context, professionalID string, from, to time.Time) ([]models.CalendarDay, error) {
	if !from.Before(to) {
		return nil, NewValidationError("calendar window start must precede its end")
	}

	slots, err := se.expandCached(ctx, professionalID, from, to)
	if err != nil {
		return nil, err
	}

	booked, err := se.Checker.ListBooked(ctx, professionalID, from.UTC(), to.UTC())
	if err != nil {
		return nil, err
	}

	var days []models.CalendarDay
	var current *models.CalendarDay
	for _, slot := range slots {
		date := slot.Start.In(se.Calendar.Location).Format("2006-01-02")
		if current == nil || current.Date != date {
			days = append(days, models.CalendarDay{Date: date})
			current = &days[len(days)-1]
		}
		current.Slots = append(current.Slots, models.CalendarSlot{
			Start:  slot.Start,
			Booked: booked.Contains(slot.Start),
		})
	}
	return days, nil
}

func (se *DefaultSchedulingEngine) expandCached(ctx context.Context, professionalID string, from, to time.Time) ([]models.Slot, error) {
	if se.Cache == nil {
		blocks, err := se.Availability.GetByProfessionalID(ctx, professionalID)
		if err != nil {
			return nil, err
		}
		return se.Calendar.Expand(professionalID, blocks, from, to), nil
	}

	key := fmt.Sprintf(calendarCacheKeyFmt, professionalID,
		from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339))

	if data, err := se.Cache.Get(ctx, key).Bytes(); err == nil {
		var cached []models.Slot
		if jsonErr := json.Unmarshal(data, &cached); jsonErr == nil {
			return cached, nil
		}
	}

	blocks, err := se.Availability.GetByProfessionalID(ctx, professionalID)
	if err != nil {
		return nil, err
	}
	slots := se.Calendar.Expand(professionalID, blocks, from, to)

	if data, err := json.Marshal(slots); err == nil {
		ttl := se.CacheTTL
		if ttl <= 0 {
			ttl = 10 * time.Minute
		}
		if err := se.Cache.Set(ctx, key, data, ttl).Err(); err != nil {
			utils.GetLogger().Warn("failed to cache calendar", zap.String("key", key), zap.Error(err))
		}
	}
	return slots, nil
}

// InvalidateCalendar drops every cached window for the professional. Called
// after the weekly blocks change.
func (se *DefaultSchedulingEngine) InvalidateCalendar(ctx context.Context, professionalID string) {
	if se.Cache == nil {
		return
	}
	pattern := fmt.Sprintf("calendar:%s:*", professionalID)
	iter := se.Cache.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		if err := se.Cache.Del(ctx, iter.Val()).Err(); err != nil {
			utils.GetLogger().Warn("failed to drop cached calendar", zap.String("key", iter.Val()), zap.Error(err))
		}
	}
	if err := iter.Err(); err != nil {
		utils.GetLogger().Warn("calendar cache scan failed", zap.String("professionalID", professionalID), zap.Error(err))
	}
}
