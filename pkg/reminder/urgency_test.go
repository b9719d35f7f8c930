package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"plantlog/entities"
)

var today = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func TestClassifyBoundaries(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want Urgency
	}{
		{"yesterday is overdue", today.AddDate(0, 0, -1), Overdue},
		{"today is due today", today, DueToday},
		{"tomorrow is due soon", today.AddDate(0, 0, 1), DueSoon},
		{"in 3 days is due soon", today.AddDate(0, 0, 3), DueSoon},
		{"in 4 days is scheduled", today.AddDate(0, 0, 4), Scheduled},
		{"far past is overdue", today.AddDate(0, -2, 0), Overdue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.date, today))
		})
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	lateToday := time.Date(2025, 6, 15, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, DueToday, Classify(lateToday, today))

	earlyTomorrow := time.Date(2025, 6, 16, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, DueSoon, Classify(earlyTomorrow, today))
}

func TestUrgent(t *testing.T) {
	rems := []entities.Reminder{
		{ReminderID: 1, ReminderDate: today.AddDate(0, 0, -2)},                    // overdue
		{ReminderID: 2, ReminderDate: today},                                      // due today
		{ReminderID: 3, ReminderDate: today.AddDate(0, 0, 3)},                     // due soon
		{ReminderID: 4, ReminderDate: today.AddDate(0, 0, 5)},                     // scheduled
		{ReminderID: 5, ReminderDate: today, IsCompleted: true},                   // completed, excluded
		{ReminderID: 6, ReminderDate: today.AddDate(0, 0, -9), IsCompleted: true}, // completed, excluded
	}

	got := Urgent(rems, today)
	ids := make([]uint, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.ReminderID)
	}
	assert.Equal(t, []uint{1, 2, 3}, ids)
}
