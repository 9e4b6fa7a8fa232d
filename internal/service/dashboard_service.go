package service

import (
	"context"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"fleet-fuel-service/internal/model"
	"fleet-fuel-service/internal/repository"
)

type DashboardService struct {
	vehicles VehicleStore
	events   FuelEventStore
}

func NewDashboardService(vehicles VehicleStore, events FuelEventStore) *DashboardService {
	return &DashboardService{vehicles: vehicles, events: events}
}

// KPIs recomputes the dashboard summary from scratch on every call. The five
// store reads are independent and run concurrently; if any of them fails the
// whole computation fails, since a partial summary would be misleading.
func (s *DashboardService) KPIs(ctx context.Context) (*model.DashboardKPI, error) {
	var (
		totalVehicles  int64
		activeVehicles int64
		totalRefills   int64
		totalThefts    int64
		fleet          []model.Vehicle
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		totalVehicles, err = s.vehicles.Count(ctx, repository.VehicleListFilter{})
		return err
	})
	g.Go(func() error {
		status := model.VehicleStatusActive
		var err error
		activeVehicles, err = s.vehicles.Count(ctx, repository.VehicleListFilter{Status: &status})
		return err
	})
	g.Go(func() error {
		eventType := model.FuelEventTypeRefill
		var err error
		totalRefills, err = s.events.Count(ctx, repository.FuelEventListFilter{EventType: &eventType})
		return err
	})
	g.Go(func() error {
		eventType := model.FuelEventTypeTheft
		var err error
		totalThefts, err = s.events.Count(ctx, repository.FuelEventListFilter{EventType: &eventType})
		return err
	})
	g.Go(func() error {
		var err error
		fleet, err = s.vehicles.List(ctx, repository.VehicleListFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	kpi := &model.DashboardKPI{
		TotalVehicles:  totalVehicles,
		ActiveVehicles: activeVehicles,
		TotalRefills:   totalRefills,
		TotalThefts:    totalThefts,
	}

	// Missing counters count as zero.
	for _, vehicle := range fleet {
		if vehicle.TotalFuelUsed != nil {
			kpi.TotalFuelUsed += *vehicle.TotalFuelUsed
		}
		if vehicle.TotalDistance != nil {
			kpi.TotalDistance += *vehicle.TotalDistance
		}
		if vehicle.TotalEngineHours != nil {
			kpi.TotalEngineHours += *vehicle.TotalEngineHours
		}
	}

	// Denominator floored at 1 so an empty fleet reads as 0% utilization.
	denominator := totalVehicles
	if denominator < 1 {
		denominator = 1
	}
	kpi.FleetUtilization = int(math.Round(float64(activeVehicles) / float64(denominator) * 100))

	kpi.LastUpdated = time.Now().UTC()
	return kpi, nil
}
