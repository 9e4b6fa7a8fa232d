package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleet-fuel-service/internal/model"
	"fleet-fuel-service/internal/repository"
)

func dashboardFixture(total, active int64, fleet []model.Vehicle, refills, thefts int64) *DashboardService {
	vehicles := &fakeVehicleStore{
		countFn: func(ctx context.Context, filter repository.VehicleListFilter) (int64, error) {
			if filter.Status != nil && *filter.Status == model.VehicleStatusActive {
				return active, nil
			}
			return total, nil
		},
		listFn: func(ctx context.Context, filter repository.VehicleListFilter) ([]model.Vehicle, error) {
			return fleet, nil
		},
	}
	events := &fakeFuelEventStore{
		countFn: func(ctx context.Context, filter repository.FuelEventListFilter) (int64, error) {
			if filter.EventType != nil && *filter.EventType == model.FuelEventTypeTheft {
				return thefts, nil
			}
			return refills, nil
		},
	}
	return NewDashboardService(vehicles, events)
}

func TestDashboardKPIsUtilization(t *testing.T) {
	svc := dashboardFixture(10, 4, nil, 25, 3)

	kpi, err := svc.KPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(10), kpi.TotalVehicles)
	assert.Equal(t, int64(4), kpi.ActiveVehicles)
	assert.Equal(t, int64(25), kpi.TotalRefills)
	assert.Equal(t, int64(3), kpi.TotalThefts)
	assert.Equal(t, 40, kpi.FleetUtilization)
	assert.WithinDuration(t, time.Now().UTC(), kpi.LastUpdated, 2*time.Second)
}

func TestDashboardKPIsEmptyFleet(t *testing.T) {
	svc := dashboardFixture(0, 0, nil, 0, 0)

	kpi, err := svc.KPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), kpi.TotalVehicles)
	assert.Equal(t, 0, kpi.FleetUtilization)
	assert.Equal(t, 0.0, kpi.TotalFuelUsed)
}

func TestDashboardKPIsUtilizationRounds(t *testing.T) {
	svc := dashboardFixture(3, 1, nil, 0, 0)

	kpi, err := svc.KPIs(context.Background())
	require.NoError(t, err)

	// 1/3 of the fleet active rounds to 33%.
	assert.Equal(t, 33, kpi.FleetUtilization)
}

func TestDashboardKPIsFoldsUsageTotals(t *testing.T) {
	fleet := []model.Vehicle{
		{TotalFuelUsed: floatPtr(100), TotalDistance: floatPtr(1200), TotalEngineHours: floatPtr(80)},
		{TotalFuelUsed: floatPtr(50.5), TotalDistance: nil, TotalEngineHours: floatPtr(20)},
		{TotalFuelUsed: nil, TotalDistance: nil, TotalEngineHours: nil},
	}
	svc := dashboardFixture(3, 2, fleet, 0, 0)

	kpi, err := svc.KPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 150.5, kpi.TotalFuelUsed)
	assert.Equal(t, 1200.0, kpi.TotalDistance)
	assert.Equal(t, 100.0, kpi.TotalEngineHours)
}

func TestDashboardKPIsFailsWhenAnyQueryFails(t *testing.T) {
	storeErr := errors.New("connection reset")
	vehicles := &fakeVehicleStore{
		countFn: func(ctx context.Context, filter repository.VehicleListFilter) (int64, error) {
			return 10, nil
		},
		listFn: func(ctx context.Context, filter repository.VehicleListFilter) ([]model.Vehicle, error) {
			return nil, nil
		},
	}
	events := &fakeFuelEventStore{
		countFn: func(ctx context.Context, filter repository.FuelEventListFilter) (int64, error) {
			if filter.EventType != nil && *filter.EventType == model.FuelEventTypeTheft {
				return 0, storeErr
			}
			return 5, nil
		},
	}
	svc := NewDashboardService(vehicles, events)

	_, err := svc.KPIs(context.Background())
	assert.ErrorIs(t, err, storeErr)
}
