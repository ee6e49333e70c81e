package planting

import (
	"sort"
	"time"

	"seedwizard/entities"
)

// DefaultWindowWeeks is the rolling eligibility window used when the caller
// does not supply one.
const DefaultWindowWeeks = 4

// PlantableResult is one seed that falls inside the plantable window.
// DaysUntil may be negative (planting date recently passed, still within its
// grace period), zero (today) or positive (due soon).
type PlantableResult struct {
	Seed         entities.Seed `json:"seed"`
	PlantingDate time.Time     `json:"planting_date"`
	EventType    EventType     `json:"event_type"`
	DaysUntil    int           `json:"days_until_planting"`
}

// PlantableNow filters seeds to those plantable within the rolling window
// anchored on the current date.
func PlantableNow(seeds []entities.Seed, lastFrost time.Time, windowWeeks int) []PlantableResult {
	return PlantableOn(seeds, lastFrost, windowWeeks, time.Now())
}

// PlantableOn applies the double-window rule with an explicit anchor date:
// a seed is retained when its planting date is no further in the future than
// today + windowWeeks (forward horizon) AND its own grace window,
// plantingDate + windowWeeks, has not yet expired. Both bounds are
// inclusive. A date three weeks past is still "plantable now" in practical
// gardening terms; one ten weeks out is not.
func PlantableOn(seeds []entities.Seed, lastFrost time.Time, windowWeeks int, today time.Time) []PlantableResult {
	if windowWeeks <= 0 {
		windowWeeks = DefaultWindowWeeks
	}
	day := Midnight(today)
	horizon := day.AddDate(0, 0, windowWeeks*7)

	out := make([]PlantableResult, 0, len(seeds))
	for i := range seeds {
		ev := Resolve(&seeds[i], lastFrost)
		if ev == nil {
			continue
		}
		grace := ev.Date.AddDate(0, 0, windowWeeks*7)
		if grace.Before(day) || ev.Date.After(horizon) {
			continue
		}
		out = append(out, PlantableResult{
			Seed:         seeds[i],
			PlantingDate: ev.Date,
			EventType:    ev.Type,
			DaysUntil:    daysBetween(day, ev.Date),
		})
	}

	// ties keep input order
	sort.SliceStable(out, func(i, j int) bool { return out[i].PlantingDate.Before(out[j].PlantingDate) })
	return out
}
