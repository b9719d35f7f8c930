package repository

import "plantlog/entities"

type ActivityRepository interface {
	Append(a *entities.Activity) error
	// ListByParcel returns the parcel's activities newest-first; entries
	// on the same date keep insertion order.
	ListByParcel(parcelID uint) ([]entities.Activity, error)
}
