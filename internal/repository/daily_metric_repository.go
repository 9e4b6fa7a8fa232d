package repository

import (
	"context"

	"gorm.io/gorm"

	"fleet-fuel-service/internal/model"
)

type DailyMetricRepository struct {
	db *gorm.DB
}

func NewDailyMetricRepository(db *gorm.DB) *DailyMetricRepository {
	return &DailyMetricRepository{db: db}
}

type DailyMetricListFilter struct {
	VehicleID *string
	StartDate *string
	EndDate   *string
}

func (r *DailyMetricRepository) List(ctx context.Context, filter DailyMetricListFilter) ([]model.DailyMetric, error) {
	metrics := make([]model.DailyMetric, 0)
	query := r.db.WithContext(ctx).Model(&model.DailyMetric{})

	if filter.VehicleID != nil {
		query = query.Where("vehicle_id = ?", *filter.VehicleID)
	}
	if filter.StartDate != nil {
		query = query.Where("metric_date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("metric_date <= ?", *filter.EndDate)
	}

	if err := query.Order("metric_date DESC").Find(&metrics).Error; err != nil {
		return nil, err
	}

	return metrics, nil
}
