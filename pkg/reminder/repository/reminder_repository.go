package repository

import "plantlog/entities"

type ReminderRepository interface {
	Schedule(r *entities.Reminder) error
	// ListByParcel returns the parcel's reminders by reminder date
	// ascending.
	ListByParcel(parcelID uint) ([]entities.Reminder, error)
	// FindByID returns the reminder or entities.ErrNotFound.
	FindByID(reminderID uint) (*entities.Reminder, error)
	// Complete marks the reminder done. Completing an already-completed
	// reminder succeeds; an unknown id returns entities.ErrNotFound.
	Complete(reminderID uint) error
}
