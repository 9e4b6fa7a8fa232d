package model

import (
	"time"

	"github.com/google/uuid"
)

// DailyMetric rows are written by an external aggregation job; this service
// only reads them.
type DailyMetric struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()" json:"id"`
	VehicleID       uuid.UUID `gorm:"type:uuid;not null;index" json:"vehicle_id"`
	MetricDate      time.Time `gorm:"type:date;not null;index" json:"metric_date"`
	FuelConsumed    float64   `json:"fuel_consumed"`
	DistanceKM      float64   `gorm:"column:distance_km" json:"distance_km"`
	EngineHours     float64   `json:"engine_hours"`
	EfficiencyScore float64   `json:"efficiency_score"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (DailyMetric) TableName() string {
	return "daily_metrics"
}
