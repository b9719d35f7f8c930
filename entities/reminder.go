package entities

import "time"

// Reminder is a scheduled task on a parcel. IsCompleted moves one way:
// pending reminders can be completed, completed ones stay completed.
type Reminder struct {
	ReminderID   uint      `gorm:"primaryKey" json:"reminder_id"`
	ParcelID     uint      `gorm:"index;not null" json:"parcel_id"`
	ActivityType string    `gorm:"not null" json:"activity_type"`
	ReminderDate time.Time `gorm:"not null" json:"reminder_date"`
	Title        string    `gorm:"not null" json:"title"`
	Description  string    `json:"description"`
	IsCompleted  bool      `gorm:"default:false" json:"is_completed"`
	CreatedAt    time.Time `json:"created_at"`
}
