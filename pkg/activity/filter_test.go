package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"plantlog/entities"
)

func day(d int) time.Time { return time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC) }

func sample() []entities.Activity {
	return []entities.Activity{
		{ActivityID: 3, ActivityType: entities.ActivityHarvest, CropType: "Tomato", Date: day(20)},
		{ActivityID: 2, ActivityType: entities.ActivityWatering, CropType: "Tomato", Date: day(12)},
		{ActivityID: 1, ActivityType: entities.ActivitySowing, CropType: "Carrot", Date: day(3)},
	}
}

func TestFilterByType(t *testing.T) {
	got := FilterByType(sample(), entities.ActivityWatering)
	assert.Len(t, got, 1)
	assert.Equal(t, uint(2), got[0].ActivityID)
}

func TestFilterByCrop(t *testing.T) {
	got := FilterByCrop(sample(), "Tomato")
	assert.Len(t, got, 2)
	// Ordering of the input (date descending) is preserved.
	assert.Equal(t, uint(3), got[0].ActivityID)
	assert.Equal(t, uint(2), got[1].ActivityID)
}

func TestFilterByDateRange(t *testing.T) {
	got := FilterByDateRange(sample(), day(3), day(12))
	assert.Len(t, got, 2)
	assert.Equal(t, uint(2), got[0].ActivityID)
	assert.Equal(t, uint(1), got[1].ActivityID)
}

func TestFiltersOnEmptyInput(t *testing.T) {
	assert.Empty(t, FilterByType(nil, entities.ActivitySowing))
	assert.Empty(t, FilterByCrop(nil, "Tomato"))
	assert.Empty(t, FilterByDateRange(nil, day(1), day(30)))
}
