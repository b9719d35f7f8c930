// Package activity holds the activity log: the append-only record of
// dated field operations per parcel. Filters here are pure functions over
// an already-fetched slice and keep its ordering.
package activity

import (
	"time"

	"plantlog/entities"
)

func FilterByType(in []entities.Activity, activityType string) []entities.Activity {
	out := make([]entities.Activity, 0, len(in))
	for _, a := range in {
		if a.ActivityType == activityType {
			out = append(out, a)
		}
	}
	return out
}

func FilterByCrop(in []entities.Activity, cropType string) []entities.Activity {
	out := make([]entities.Activity, 0, len(in))
	for _, a := range in {
		if a.CropType == cropType {
			out = append(out, a)
		}
	}
	return out
}

// FilterByDateRange keeps activities with from <= date <= to.
func FilterByDateRange(in []entities.Activity, from, to time.Time) []entities.Activity {
	out := make([]entities.Activity, 0, len(in))
	for _, a := range in {
		if a.Date.Before(from) || a.Date.After(to) {
			continue
		}
		out = append(out, a)
	}
	return out
}
