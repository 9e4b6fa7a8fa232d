package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"fleet-fuel-service/internal/model"
)

type FuelEventRepository struct {
	db *gorm.DB
}

func NewFuelEventRepository(db *gorm.DB) *FuelEventRepository {
	return &FuelEventRepository{db: db}
}

func (r *FuelEventRepository) Create(ctx context.Context, event *model.FuelEvent) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// FuelEventListFilter predicates are ANDed; nil fields contribute nothing.
// Date bounds are inclusive and independently optional; they are handed to
// the store as-is, so a malformed value fails the query rather than the parse.
type FuelEventListFilter struct {
	VehicleID *string
	EventType *model.FuelEventType
	StartDate *string
	EndDate   *string
	Limit     int
}

type fuelEventRow struct {
	ID                  uuid.UUID
	VehicleID           uuid.UUID
	EventType           model.FuelEventType
	VolumeLiters        float64
	CostKES             *float64 `gorm:"column:cost_kes"`
	CostUGX             *float64 `gorm:"column:cost_ugx"`
	Location            *string
	Notes               *string
	EventTimestamp      time.Time
	CreatedAt           time.Time
	VehicleAssetID      *string
	VehicleVehiclePlate *string
	VehicleDriverName   *string
}

func (row fuelEventRow) toEvent() model.FuelEventWithVehicle {
	event := model.FuelEventWithVehicle{
		FuelEvent: model.FuelEvent{
			ID:             row.ID,
			VehicleID:      row.VehicleID,
			EventType:      row.EventType,
			VolumeLiters:   row.VolumeLiters,
			CostKES:        row.CostKES,
			CostUGX:        row.CostUGX,
			Location:       row.Location,
			Notes:          row.Notes,
			EventTimestamp: row.EventTimestamp,
			CreatedAt:      row.CreatedAt,
		},
	}
	if row.VehicleAssetID != nil {
		event.Vehicle = &model.VehicleRef{
			AssetID:      *row.VehicleAssetID,
			VehiclePlate: derefString(row.VehicleVehiclePlate),
			DriverName:   derefString(row.VehicleDriverName),
		}
	}
	return event
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// List returns events newest first, each carrying the owning vehicle's
// projection. The join is a LEFT JOIN: an orphaned event is still returned,
// with a nil vehicle.
func (r *FuelEventRepository) List(ctx context.Context, filter FuelEventListFilter) ([]model.FuelEventWithVehicle, error) {
	query := r.db.WithContext(ctx).Table("fuel_events fe").
		Select(`
			fe.id,
			fe.vehicle_id,
			fe.event_type,
			fe.volume_liters,
			fe.cost_kes,
			fe.cost_ugx,
			fe.location,
			fe.notes,
			fe.event_timestamp,
			fe.created_at,
			v.asset_id AS vehicle_asset_id,
			v.vehicle_plate AS vehicle_vehicle_plate,
			v.driver_name AS vehicle_driver_name
		`).
		Joins("LEFT JOIN vehicles v ON v.id = fe.vehicle_id")

	if filter.VehicleID != nil {
		query = query.Where("fe.vehicle_id = ?", *filter.VehicleID)
	}
	if filter.EventType != nil {
		query = query.Where("fe.event_type = ?", *filter.EventType)
	}
	if filter.StartDate != nil {
		query = query.Where("fe.event_timestamp >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("fe.event_timestamp <= ?", *filter.EndDate)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var rows []fuelEventRow
	if err := query.Order("fe.event_timestamp DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	events := make([]model.FuelEventWithVehicle, 0, len(rows))
	for _, row := range rows {
		events = append(events, row.toEvent())
	}
	return events, nil
}

func (r *FuelEventRepository) Count(ctx context.Context, filter FuelEventListFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.FuelEvent{})

	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.EventType != nil {
		query = query.Where("event_type = ?", *filter.EventType)
	}
	if filter.StartDate != nil {
		query = query.Where("event_timestamp >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("event_timestamp <= ?", *filter.EndDate)
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
