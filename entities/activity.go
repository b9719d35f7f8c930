package entities

import "time"

// Activity types from the journal's log form.
const (
	ActivitySowing      = "Sowing"
	ActivityPlanting    = "Planting"
	ActivityWatering    = "Watering"
	ActivityFertilizing = "Fertilizing"
	ActivityTreatment   = "Treatment"
	ActivityWeeding     = "Weeding"
	ActivityHarvest     = "Harvest"
	ActivityPlowing     = "Plowing"
	ActivityHoeing      = "Hoeing"
	ActivityOther       = "Other"
)

func ActivityTypes() []string {
	return []string{
		ActivitySowing, ActivityPlanting, ActivityWatering, ActivityFertilizing,
		ActivityTreatment, ActivityWeeding, ActivityHarvest, ActivityPlowing,
		ActivityHoeing, ActivityOther,
	}
}

// Activity is one dated field operation on a parcel. Rows are immutable
// once inserted; Date carries calendar-day precision only.
type Activity struct {
	ActivityID   uint      `gorm:"primaryKey" json:"activity_id"`
	ParcelID     uint      `gorm:"index;not null" json:"parcel_id"`
	ActivityType string    `gorm:"not null" json:"activity_type"`
	Date         time.Time `gorm:"not null" json:"date"`
	CropType     string    `json:"crop_type"`
	Variety      string    `json:"variety"`
	Quantity     *float64  `json:"quantity"`
	Unit         string    `json:"unit"`
	Notes        string    `json:"notes"`
	Cost         *float64  `json:"cost"`
	Weather      string    `json:"weather_conditions"`
	CreatedAt    time.Time `json:"created_at"`
}
