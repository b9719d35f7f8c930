package entities

import "time"

// Soil types offered by the parcel form; free entries fall back to Other.
const (
	SoilClay      = "Clay"
	SoilSilt      = "Silt"
	SoilSand      = "Sand"
	SoilClayLoam  = "Clay loam"
	SoilSandyClay = "Sandy clay"
	SoilSandyLoam = "Sandy loam"
	SoilOther     = "Other"
)

func SoilTypes() []string {
	return []string{SoilClay, SoilSilt, SoilSand, SoilClayLoam, SoilSandyClay, SoilSandyLoam, SoilOther}
}

type Parcel struct {
	ParcelID    uint      `gorm:"primaryKey" json:"parcel_id"`
	OwnerID     uint      `gorm:"index;not null" json:"owner_id"`
	Name        string    `gorm:"not null" json:"name"`
	SurfaceHa   float64   `json:"surface_ha"` // hectares
	Location    string    `json:"location"`
	SoilType    string    `json:"soil_type"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}
