package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"plantlog/entities"
	"plantlog/pkg/reminder/repository"
)

type reminderRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ReminderRepository { return &reminderRepo{db} }

func (r *reminderRepo) Schedule(rem *entities.Reminder) error { return r.db.Create(rem).Error }

func (r *reminderRepo) ListByParcel(parcelID uint) ([]entities.Reminder, error) {
	var out []entities.Reminder
	if err := r.db.Where("parcel_id = ?", parcelID).
		Order("reminder_date ASC, reminder_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *reminderRepo) FindByID(reminderID uint) (*entities.Reminder, error) {
	var rem entities.Reminder
	if err := r.db.Where("reminder_id = ?", reminderID).First(&rem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reminder %d: %w", reminderID, entities.ErrNotFound)
		}
		return nil, err
	}
	return &rem, nil
}

func (r *reminderRepo) Complete(reminderID uint) error {
	res := r.db.Model(&entities.Reminder{}).
		Where("reminder_id = ?", reminderID).
		Update("is_completed", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		// The update matches completed rows too, so zero rows means the
		// id does not exist, not a repeat completion.
		return fmt.Errorf("reminder %d: %w", reminderID, entities.ErrNotFound)
	}
	return nil
}
