package model

import "time"

// DashboardKPI is recomputed on every request and never persisted.
type DashboardKPI struct {
	TotalVehicles    int64     `json:"totalVehicles"`
	ActiveVehicles   int64     `json:"activeVehicles"`
	TotalRefills     int64     `json:"totalRefills"`
	TotalThefts      int64     `json:"totalThefts"`
	TotalFuelUsed    float64   `json:"totalFuelUsed"`
	TotalDistance    float64   `json:"totalDistance"`
	TotalEngineHours float64   `json:"totalEngineHours"`
	FleetUtilization int       `json:"fleetUtilization"`
	LastUpdated      time.Time `json:"lastUpdated"`
}
