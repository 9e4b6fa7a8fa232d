package service

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"fleet-fuel-service/internal/model"
	"fleet-fuel-service/internal/repository"
	"fleet-fuel-service/internal/utils"
)

var vehicleRequiredFields = []string{"asset_id", "vehicle_plate", "driver_name", "status"}

// VehicleStore is the slice of the data gateway the vehicle service needs;
// tests substitute a fake.
type VehicleStore interface {
	Create(ctx context.Context, vehicle *model.Vehicle) error
	GetByID(ctx context.Context, id string) (*model.Vehicle, error)
	List(ctx context.Context, filter repository.VehicleListFilter) ([]model.Vehicle, error)
	Count(ctx context.Context, filter repository.VehicleListFilter) (int64, error)
}

type VehicleService struct {
	vehicles VehicleStore
}

func NewVehicleService(vehicles VehicleStore) *VehicleService {
	return &VehicleService{vehicles: vehicles}
}

type CreateVehicleInput struct {
	AssetID           string
	VehiclePlate      string
	DriverName        string
	Status            string
	CurrentFuelLevel  *float64
	TankCapacity      *float64
	FuelEfficiency    *float64
	EfficiencyRating  string
	SystemReliability string
}

func (s *VehicleService) Create(ctx context.Context, input CreateVehicleInput) (*model.Vehicle, error) {
	var missing []string
	if strings.TrimSpace(input.AssetID) == "" {
		missing = append(missing, "asset_id")
	}
	if strings.TrimSpace(input.VehiclePlate) == "" {
		missing = append(missing, "vehicle_plate")
	}
	if strings.TrimSpace(input.DriverName) == "" {
		missing = append(missing, "driver_name")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing, Required: vehicleRequiredFields}
	}

	vehicle := &model.Vehicle{
		AssetID:           input.AssetID,
		VehiclePlate:      utils.NormalizePlate(input.VehiclePlate),
		DriverName:        input.DriverName,
		Status:            model.VehicleStatusActive,
		CurrentFuelLevel:  model.DefaultCurrentFuelLevel,
		TankCapacity:      model.DefaultTankCapacity,
		FuelEfficiency:    model.DefaultFuelEfficiency,
		EfficiencyRating:  model.DefaultEfficiencyRating,
		SystemReliability: model.DefaultSystemReliability,
	}

	if input.Status != "" {
		vehicle.Status = model.VehicleStatus(input.Status)
	}
	if input.CurrentFuelLevel != nil {
		vehicle.CurrentFuelLevel = *input.CurrentFuelLevel
	}
	if input.TankCapacity != nil {
		vehicle.TankCapacity = *input.TankCapacity
	}
	if input.FuelEfficiency != nil {
		vehicle.FuelEfficiency = *input.FuelEfficiency
	}
	if input.EfficiencyRating != "" {
		vehicle.EfficiencyRating = input.EfficiencyRating
	}
	if input.SystemReliability != "" {
		vehicle.SystemReliability = input.SystemReliability
	}

	if err := s.vehicles.Create(ctx, vehicle); err != nil {
		return nil, err
	}

	return vehicle, nil
}

func (s *VehicleService) Get(ctx context.Context, id string) (*model.Vehicle, error) {
	vehicle, err := s.vehicles.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *VehicleService) List(ctx context.Context, filter repository.VehicleListFilter) ([]model.Vehicle, error) {
	return s.vehicles.List(ctx, filter)
}

func (s *VehicleService) Count(ctx context.Context, filter repository.VehicleListFilter) (int64, error) {
	return s.vehicles.Count(ctx, filter)
}
