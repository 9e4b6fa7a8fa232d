package service

import (
	"context"

	"fleet-fuel-service/internal/model"
	"fleet-fuel-service/internal/repository"
)

type DailyMetricStore interface {
	List(ctx context.Context, filter repository.DailyMetricListFilter) ([]model.DailyMetric, error)
}

type DailyMetricService struct {
	metrics DailyMetricStore
}

func NewDailyMetricService(metrics DailyMetricStore) *DailyMetricService {
	return &DailyMetricService{metrics: metrics}
}

func (s *DailyMetricService) List(ctx context.Context, filter repository.DailyMetricListFilter) ([]model.DailyMetric, error) {
	return s.metrics.List(ctx, filter)
}
