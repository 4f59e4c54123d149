package scheduling

import (
	"sort"
	"time"

	"consultly/config"
	"consultly/models"
)

// SlotInterval is the fixed booking increment. Every slot is exactly one hour
// and must fit entirely inside its owning block.
const SlotInterval = time.Hour

const slotIntervalMinutes = int(SlotInterval / time.Minute)

// Calendar expands recurring weekly availability rules into concrete bookable
// instants. Expansion is pure: no I/O, safe to call repeatedly and in parallel.
type Calendar struct {
	// Location is the single operating timezone all blocks are declared in.
	Location *time.Location

	// Fallback business hours, used when a professional has no blocks at all.
	FallbackStart int
	FallbackEnd   int
	FallbackDays  []time.Weekday
}

// NewCalendarFromConfig builds a Calendar from the loaded app configuration.
func NewCalendarFromConfig() *Calendar {
	return &Calendar{
		Location:      config.OperatingLocation(),
		FallbackStart: config.AppConfig.FallbackDayStart,
		FallbackEnd:   config.AppConfig.FallbackDayEnd,
		FallbackDays:  config.FallbackWeekdays(),
	}
}

// Expand generates the ordered slot sequence for [windowStart, windowEnd).
// For each day in the window it selects the blocks matching that weekday and
// steps them in SlotInterval increments from Start while the next increment
// still fits below End; a block ending mid-increment loses its trailing
// partial slot. Overlapping blocks may generate the same instant twice, so
// duplicates are collapsed. Instants come out in ascending order, as UTC.
//
// When blocks is empty the legacy default business hours apply (see
// FallbackStart/FallbackEnd/FallbackDays, overridable via configuration).
func (c *Calendar) Expand(professionalID string, blocks []models.AvailabilityBlock, windowStart, windowEnd time.Time) []models.Slot {
	if len(blocks) == 0 {
		blocks = c.fallbackBlocks(professionalID)
	}

	byDay := make(map[time.Weekday][]models.AvailabilityBlock)
	for _, b := range blocks {
		if b.Start >= b.End {
			continue
		}
		byDay[b.Day] = append(byDay[b.Day], b)
	}

	seen := make(map[int64]struct{})
	var slots []models.Slot

	day := c.midnightOf(windowStart)
	end := c.midnightOf(windowEnd)
	if windowEnd.After(end) {
		end = end.AddDate(0, 0, 1)
	}
	for ; day.Before(end); day = day.AddDate(0, 0, 1) {
		for _, b := range byDay[day.Weekday()] {
			for m := b.Start; m+slotIntervalMinutes <= b.End; m += slotIntervalMinutes {
				instant := day.Add(time.Duration(m) * time.Minute).UTC()
				if instant.Before(windowStart) || !instant.Before(windowEnd) {
					continue
				}
				key := instant.Unix()
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
				slots = append(slots, models.Slot{ProfessionalID: professionalID, Start: instant})
			}
		}
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].Start.Before(slots[j].Start)
	})
	return slots
}

// Produces reports whether instant is one of the instants Expand would
// generate for the professional. Used to reject bookings outside declared
// availability.
func (c *Calendar) Produces(professionalID string, blocks []models.AvailabilityBlock, instant time.Time) bool {
	dayStart := c.midnightOf(instant.In(c.Location))
	dayEnd := dayStart.AddDate(0, 0, 1)
	target := instant.UTC().Unix()
	for _, s := range c.Expand(professionalID, blocks, dayStart, dayEnd) {
		if s.Start.Unix() == target {
			return true
		}
	}
	return false
}

func (c *Calendar) fallbackBlocks(professionalID string) []models.AvailabilityBlock {
	blocks := make([]models.AvailabilityBlock, 0, len(c.FallbackDays))
	for _, d := range c.FallbackDays {
		blocks = append(blocks, models.AvailabilityBlock{
			ProfessionalID: professionalID,
			Day:            d,
			Start:          c.FallbackStart,
			End:            c.FallbackEnd,
		})
	}
	return blocks
}

// midnightOf truncates t to midnight in the operating timezone.
func (c *Calendar) midnightOf(t time.Time) time.Time {
	t = t.In(c.Location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.Location)
}
