package repository

import "plantlog/entities"

type ParcelRepository interface {
	Create(p *entities.Parcel) error
	ListByOwner(ownerID uint) ([]entities.Parcel, error)
	FindByID(id, ownerID uint) (*entities.Parcel, error)
}
