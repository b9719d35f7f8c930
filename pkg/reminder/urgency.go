// Package reminder schedules parcel tasks and classifies how close a
// pending task is to its due date.
package reminder

import (
	"time"

	"plantlog/entities"
)

type Urgency string

const (
	Overdue   Urgency = "overdue"
	DueToday  Urgency = "due_today"
	DueSoon   Urgency = "due_soon"
	Scheduled Urgency = "scheduled"
)

// DaysLeft is the whole-day distance from today to the reminder date;
// time-of-day on either side is ignored.
func DaysLeft(reminderDate, today time.Time) int {
	rd := truncate(reminderDate)
	td := truncate(today)
	return int(rd.Sub(td).Hours() / 24)
}

func Classify(reminderDate, today time.Time) Urgency {
	d := DaysLeft(reminderDate, today)
	switch {
	case d < 0:
		return Overdue
	case d == 0:
		return DueToday
	case d <= 3:
		return DueSoon
	default:
		return Scheduled
	}
}

// Urgent keeps pending reminders due within the next 3 days (or already
// past due). Completed reminders never surface here.
func Urgent(in []entities.Reminder, today time.Time) []entities.Reminder {
	out := make([]entities.Reminder, 0, len(in))
	for _, r := range in {
		if r.IsCompleted {
			continue
		}
		if DaysLeft(r.ReminderDate, today) <= 3 {
			out = append(out, r)
		}
	}
	return out
}

func truncate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
