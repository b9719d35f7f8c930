package repositoryImp

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"plantlog/entities"
	"plantlog/pkg/parcel/repository"
)

type parcelRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ParcelRepository { return &parcelRepo{db} }

func (r *parcelRepo) Create(p *entities.Parcel) error { return r.db.Create(p).Error }

func (r *parcelRepo) ListByOwner(ownerID uint) ([]entities.Parcel, error) {
	var out []entities.Parcel
	if err := r.db.Where("owner_id = ?", ownerID).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *parcelRepo) FindByID(id, ownerID uint) (*entities.Parcel, error) {
	var p entities.Parcel
	if err := r.db.Where("parcel_id = ? AND owner_id = ?", id, ownerID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("parcel %d: %w", id, entities.ErrNotFound)
		}
		return nil, err
	}
	return &p, nil
}
