package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type FuelEventType string

const (
	FuelEventTypeRefill      FuelEventType = "refill"
	FuelEventTypeTheft       FuelEventType = "theft"
	FuelEventTypeConsumption FuelEventType = "consumption"
)

// FuelEvent is immutable once created; there is no update or delete path.
type FuelEvent struct {
	ID             uuid.UUID     `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	EventType      FuelEventType `gorm:"type:varchar(32);not null;index" json:"event_type"`
	VolumeLiters   float64       `gorm:"not null" json:"volume_liters"`
	CostKES        *float64      `gorm:"column:cost_kes" json:"cost_kes,omitempty"`
	CostUGX        *float64      `gorm:"column:cost_ugx" json:"cost_ugx,omitempty"`
	Location       *string       `gorm:"type:varchar(200)" json:"location,omitempty"`
	Notes          *string       `gorm:"type:text" json:"notes,omitempty"`
	EventTimestamp time.Time     `gorm:"not null;index" json:"event_timestamp"`
	CreatedAt      time.Time     `gorm:"autoCreateTime" json:"created_at"`
}

func (FuelEvent) TableName() string {
	return "fuel_events"
}

func (e *FuelEvent) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

// FuelEventWithVehicle carries the owning vehicle's projection alongside the
// event. Vehicle is nil when the referenced vehicle no longer resolves.
type FuelEventWithVehicle struct {
	FuelEvent
	Vehicle *VehicleRef `json:"vehicle"`
}
