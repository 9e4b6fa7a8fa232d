package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"fleet-fuel-service/internal/model"
	"fleet-fuel-service/internal/repository"
)

var fuelEventRequiredFields = []string{"vehicle_id", "event_type", "volume_liters"}

type FuelEventStore interface {
	Create(ctx context.Context, event *model.FuelEvent) error
	List(ctx context.Context, filter repository.FuelEventListFilter) ([]model.FuelEventWithVehicle, error)
	Count(ctx context.Context, filter repository.FuelEventListFilter) (int64, error)
}

type FuelEventService struct {
	events FuelEventStore
}

func NewFuelEventService(events FuelEventStore) *FuelEventService {
	return &FuelEventService{events: events}
}

type CreateFuelEventInput struct {
	VehicleID      string
	EventType      string
	VolumeLiters   *float64
	CostKES        *float64
	CostUGX        *float64
	Location       *string
	Notes          *string
	EventTimestamp string
}

// Create validates presence of the required fields only; whether vehicle_id
// references an existing vehicle is left to the store's foreign key.
func (s *FuelEventService) Create(ctx context.Context, input CreateFuelEventInput) (*model.FuelEvent, error) {
	var missing []string
	if strings.TrimSpace(input.VehicleID) == "" {
		missing = append(missing, "vehicle_id")
	}
	if strings.TrimSpace(input.EventType) == "" {
		missing = append(missing, "event_type")
	}
	if input.VolumeLiters == nil {
		missing = append(missing, "volume_liters")
	}
	if len(missing) > 0 {
		return nil, &ValidationError{Missing: missing, Required: fuelEventRequiredFields}
	}

	vehicleID, err := uuid.Parse(input.VehicleID)
	if err != nil {
		return nil, ErrInvalidInput
	}

	eventTimestamp := time.Now().UTC()
	if input.EventTimestamp != "" {
		eventTimestamp, err = time.Parse(time.RFC3339, input.EventTimestamp)
		if err != nil {
			return nil, ErrInvalidInput
		}
	}

	event := &model.FuelEvent{
		VehicleID:      vehicleID,
		EventType:      model.FuelEventType(input.EventType),
		VolumeLiters:   *input.VolumeLiters,
		CostKES:        input.CostKES,
		CostUGX:        input.CostUGX,
		Location:       input.Location,
		Notes:          input.Notes,
		EventTimestamp: eventTimestamp,
	}

	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}

	return event, nil
}

func (s *FuelEventService) List(ctx context.Context, filter repository.FuelEventListFilter) ([]model.FuelEventWithVehicle, error) {
	return s.events.List(ctx, filter)
}

func (s *FuelEventService) Count(ctx context.Context, filter repository.FuelEventListFilter) (int64, error) {
	return s.events.Count(ctx, filter)
}
