package planting

import (
	"time"

	"seedwizard/entities"
)

type EventType string

const (
	EventIndoor  EventType = "indoor"
	EventOutdoor EventType = "outdoor"
)

// Event is a single derived planting event for one seed. It is computed
// fresh from seed + profile state on every request and never persisted.
type Event struct {
	Date time.Time `json:"date"`
	Type EventType `json:"event_type"`
}

// Resolve derives the planting event for a seed from the last-frost anchor.
//
// Branch order: start_indoors uses weeks_before_last_frost; direct_sow uses
// weeks_before_last_frost_outdoor when the plant is cold hardy, otherwise
// weeks_after_last_frost. Zero weeks is a real value ("plant at last
// frost"), so presence is checked with explicit nil tests, never truthiness.
// Anything missing or ambiguous resolves to nil: incomplete seed data is
// routine, not an error.
func Resolve(seed *entities.Seed, lastFrost time.Time) *Event {
	anchor := Midnight(lastFrost)

	method := ""
	if seed.PlantingMethod != nil {
		method = *seed.PlantingMethod
	}

	switch method {
	case entities.MethodStartIndoors:
		if w, ok := weeks(seed.WeeksBeforeLastFrost); ok {
			return &Event{Date: anchor.AddDate(0, 0, -w*7), Type: EventIndoor}
		}
	case entities.MethodDirectSow:
		if seed.ColdHardy {
			if w, ok := weeks(seed.WeeksBeforeLastFrostOutdoor); ok {
				return &Event{Date: anchor.AddDate(0, 0, -w*7), Type: EventOutdoor}
			}
		} else if w, ok := weeks(seed.WeeksAfterLastFrost); ok {
			return &Event{Date: anchor.AddDate(0, 0, w*7), Type: EventOutdoor}
		}
	}
	return nil
}

// weeks reports a usable week count. Negative values should never pass the
// validation layer; if one does it is treated as unset rather than producing
// a negative offset.
func weeks(w *int) (int, bool) {
	if w == nil || *w < 0 {
		return 0, false
	}
	return *w, true
}
