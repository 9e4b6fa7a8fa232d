package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VehicleStatus string

const (
	VehicleStatusActive   VehicleStatus = "Active"
	VehicleStatusInactive VehicleStatus = "Inactive"
)

// Defaults applied when a vehicle is created without the optional fields.
const (
	DefaultCurrentFuelLevel  = 0.0
	DefaultTankCapacity      = 300.0
	DefaultFuelEfficiency    = 8.5
	DefaultEfficiencyRating  = "Good"
	DefaultSystemReliability = "Good"
)

type Vehicle struct {
	ID                uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	AssetID           string        `gorm:"type:varchar(64);uniqueIndex;not null" json:"asset_id"`
	VehiclePlate      string        `gorm:"type:varchar(32);not null" json:"vehicle_plate"`
	DriverName        string        `gorm:"type:varchar(128);not null" json:"driver_name"`
	Status            VehicleStatus `gorm:"type:varchar(16);not null;default:Active" json:"status"`
	CurrentFuelLevel  float64       `json:"current_fuel_level"`
	TankCapacity      float64       `json:"tank_capacity"`
	FuelEfficiency    float64       `json:"fuel_efficiency"`
	EfficiencyRating  string        `gorm:"type:varchar(32)" json:"efficiency_rating"`
	SystemReliability string        `gorm:"type:varchar(32)" json:"system_reliability"`
	TotalFuelUsed     *float64      `json:"total_fuel_used"`
	TotalDistance     *float64      `json:"total_distance"`
	TotalEngineHours  *float64      `json:"total_engine_hours"`
	CreatedAt         time.Time     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time     `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Vehicle) TableName() string {
	return "vehicles"
}

func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// VehicleRef is the read-only projection attached to fuel events.
type VehicleRef struct {
	AssetID      string `json:"asset_id"`
	VehiclePlate string `json:"vehicle_plate"`
	DriverName   string `json:"driver_name"`
}
