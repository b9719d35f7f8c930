package repositoryImp

import (
	"gorm.io/gorm"

	"plantlog/entities"
	"plantlog/pkg/activity/repository"
)

type activityRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ActivityRepository { return &activityRepo{db} }

func (r *activityRepo) Append(a *entities.Activity) error { return r.db.Create(a).Error }

func (r *activityRepo) ListByParcel(parcelID uint) ([]entities.Activity, error) {
	var out []entities.Activity
	if err := r.db.Where("parcel_id = ?", parcelID).
		Order("date DESC, activity_id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
