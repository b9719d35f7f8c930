package service

import "plantlog/entities"

type ParcelService interface {
	// Create validates the parcel fields before inserting. Returns
	// entities.ErrValidation on missing name/location/soil type or a
	// non-positive surface.
	Create(ownerID uint, name string, surfaceHa float64, location, soilType, description string) (uint, error)
	ListByOwner(ownerID uint) ([]entities.Parcel, error)
	FindByID(id, ownerID uint) (*entities.Parcel, error)
}
