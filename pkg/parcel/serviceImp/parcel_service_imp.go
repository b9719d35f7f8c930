package serviceImp

import (
	"fmt"

	"plantlog/entities"
	"plantlog/pkg/parcel/repository"
	svc "plantlog/pkg/parcel/service"
)

type parcelService struct{ repo repository.ParcelRepository }

func New(r repository.ParcelRepository) svc.ParcelService { return &parcelService{repo: r} }

func (s *parcelService) Create(ownerID uint, name string, surfaceHa float64, location, soilType, description string) (uint, error) {
	if name == "" || location == "" || soilType == "" {
		return 0, fmt.Errorf("name, location and soil type are required: %w", entities.ErrValidation)
	}
	if surfaceHa <= 0 {
		return 0, fmt.Errorf("surface must be positive: %w", entities.ErrValidation)
	}
	if !knownSoilType(soilType) {
		soilType = entities.SoilOther
	}

	p := &entities.Parcel{
		OwnerID:     ownerID,
		Name:        name,
		SurfaceHa:   surfaceHa,
		Location:    location,
		SoilType:    soilType,
		Description: description,
	}
	if err := s.repo.Create(p); err != nil {
		return 0, err
	}
	return p.ParcelID, nil
}

func (s *parcelService) ListByOwner(ownerID uint) ([]entities.Parcel, error) {
	return s.repo.ListByOwner(ownerID)
}

func (s *parcelService) FindByID(id, ownerID uint) (*entities.Parcel, error) {
	return s.repo.FindByID(id, ownerID)
}

func knownSoilType(t string) bool {
	for _, s := range entities.SoilTypes() {
		if s == t {
			return true
		}
	}
	return false
}
