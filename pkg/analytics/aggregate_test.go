package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantlog/entities"
)

func f(v float64) *float64 { return &v }

func onDay(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRecentCount(t *testing.T) {
	today := onDay(2025, 6, 15)
	acts := []entities.Activity{
		{Date: today},                   // today, in
		{Date: today.AddDate(0, 0, -7)}, // window edge, in
		{Date: today.AddDate(0, 0, -8)}, // too old
		{Date: today.AddDate(0, 0, 1)},  // future, out
		{Date: today.AddDate(0, 0, -3)}, // in
	}
	assert.Equal(t, 3, RecentCount(acts, today))
}

func TestPendingCount(t *testing.T) {
	rems := []entities.Reminder{
		{IsCompleted: false},
		{IsCompleted: true},
		{IsCompleted: false},
	}
	assert.Equal(t, 2, PendingCount(rems))
}

func TestCosts(t *testing.T) {
	t.Run("zero and nil costs excluded from average", func(t *testing.T) {
		acts := []entities.Activity{
			{Cost: f(10)},
			{Cost: f(0)},
			{Cost: f(20)},
			{Cost: nil},
		}
		got := Costs(acts)
		require.True(t, got.OK)
		assert.Equal(t, 30.0, got.Total)
		assert.Equal(t, 15.0, got.Average)
	})

	t.Run("no cost-bearing rows reports no data", func(t *testing.T) {
		got := Costs([]entities.Activity{{Cost: nil}, {Cost: f(0)}})
		assert.False(t, got.OK)
	})

	t.Run("empty input reports no data", func(t *testing.T) {
		assert.False(t, Costs(nil).OK)
	})
}

func TestModeType(t *testing.T) {
	t.Run("most frequent wins", func(t *testing.T) {
		acts := []entities.Activity{
			{ActivityType: entities.ActivitySowing},
			{ActivityType: entities.ActivityWatering},
			{ActivityType: entities.ActivityWatering},
		}
		mode, ok := ModeType(acts)
		require.True(t, ok)
		assert.Equal(t, entities.ActivityWatering, mode)
	})

	t.Run("tie goes to first encountered", func(t *testing.T) {
		acts := []entities.Activity{
			{ActivityType: entities.ActivityHarvest},
			{ActivityType: entities.ActivitySowing},
			{ActivityType: entities.ActivitySowing},
			{ActivityType: entities.ActivityHarvest},
		}
		mode, ok := ModeType(acts)
		require.True(t, ok)
		assert.Equal(t, entities.ActivityHarvest, mode)
	})

	t.Run("empty input", func(t *testing.T) {
		_, ok := ModeType(nil)
		assert.False(t, ok)
	})
}

func TestMonthlyRollup(t *testing.T) {
	acts := []entities.Activity{
		{Date: onDay(2025, 3, 5), Cost: f(10)},
		{Date: onDay(2025, 3, 20), Cost: f(5)},
		{Date: onDay(2025, 1, 2)},
		{Date: onDay(2024, 12, 31), Cost: f(7)},
	}

	got := MonthlyRollup(acts)
	require.Len(t, got, 3) // February absent, not zero-filled
	assert.Equal(t, MonthlyPoint{Year: 2024, Month: 12, Count: 1, TotalCost: 7}, got[0])
	assert.Equal(t, MonthlyPoint{Year: 2025, Month: 1, Count: 1, TotalCost: 0}, got[1])
	assert.Equal(t, MonthlyPoint{Year: 2025, Month: 3, Count: 2, TotalCost: 15}, got[2])
}

func TestCrossTabulate(t *testing.T) {
	acts := []entities.Activity{
		{ActivityType: entities.ActivityWatering, Date: onDay(2025, 5, 1)},
		{ActivityType: entities.ActivitySowing, Date: onDay(2025, 3, 1)},
		{ActivityType: entities.ActivityWatering, Date: onDay(2025, 5, 9)},
	}

	got := CrossTabulate(acts)
	assert.Equal(t, []string{entities.ActivityWatering, entities.ActivitySowing}, got.Types)
	assert.Equal(t, []int{3, 5}, got.Months)
	// Watering: none in March, two in May. Sowing: one in March, none in May.
	assert.Equal(t, [][]int{{0, 2}, {1, 0}}, got.Cells)
}

func TestSummarize(t *testing.T) {
	today := onDay(2025, 6, 15)
	parcels := []entities.Parcel{{SurfaceHa: 2.5}, {SurfaceHa: 1.5}}
	acts := []entities.Activity{{Date: today}, {Date: today.AddDate(0, 0, -30)}}
	rems := []entities.Reminder{{IsCompleted: false}, {IsCompleted: true}}

	got := Summarize(parcels, acts, rems, today)
	assert.Equal(t, 2, got.ParcelCount)
	assert.Equal(t, 4.0, got.TotalSurfaceHa)
	assert.Equal(t, 1, got.RecentActivities)
	assert.Equal(t, 1, got.PendingReminders)
}

func TestCalendarEntries(t *testing.T) {
	acts := []entities.Activity{
		{ParcelID: 1, ActivityType: entities.ActivitySowing, Date: onDay(2025, 4, 20)},
		{ParcelID: 1, ActivityType: entities.ActivityWatering, Date: onDay(2025, 5, 2)},
	}
	rems := []entities.Reminder{
		{ParcelID: 1, Title: "Weed", ReminderDate: onDay(2025, 4, 10), IsCompleted: true},
		{ParcelID: 1, Title: "Water", ReminderDate: onDay(2025, 4, 25)},
	}

	got := CalendarEntries(acts, rems, 2025, 4)
	require.Len(t, got, 3)
	assert.Equal(t, "Weed", got[0].Title)
	assert.True(t, got[0].Completed)
	assert.Equal(t, entities.ActivitySowing, got[1].Title)
	assert.Equal(t, "Water", got[2].Title)
}
