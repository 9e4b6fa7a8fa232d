package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"fleet-fuel-service/internal/model"
)

type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) Create(ctx context.Context, vehicle *model.Vehicle) error {
	return r.db.WithContext(ctx).Create(vehicle).Error
}

func (r *VehicleRepository) GetByID(ctx context.Context, id string) (*model.Vehicle, error) {
	var vehicle model.Vehicle
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&vehicle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// VehicleListFilter predicates are ANDed; nil fields contribute nothing.
type VehicleListFilter struct {
	Status           *model.VehicleStatus
	EfficiencyRating *string
	DriverName       *string
	Limit            int
}

func (r *VehicleRepository) List(ctx context.Context, filter VehicleListFilter) ([]model.Vehicle, error) {
	vehicles := make([]model.Vehicle, 0)
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.EfficiencyRating != nil {
		query = query.Where("efficiency_rating = ?", *filter.EfficiencyRating)
	}
	if filter.DriverName != nil {
		query = query.Where("driver_name ILIKE ?", "%"+*filter.DriverName+"%")
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	if err := query.Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}

	return vehicles, nil
}

func (r *VehicleRepository) Count(ctx context.Context, filter VehicleListFilter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&model.Vehicle{})

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.EfficiencyRating != nil {
		query = query.Where("efficiency_rating = ?", *filter.EfficiencyRating)
	}
	if filter.DriverName != nil {
		query = query.Where("driver_name ILIKE ?", "%"+*filter.DriverName+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
