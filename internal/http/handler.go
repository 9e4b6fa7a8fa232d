package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"fleet-fuel-service/internal/model"
	"fleet-fuel-service/internal/repository"
	"fleet-fuel-service/internal/service"
)

const testDBSampleSize = 5

type Handler struct {
	vehicleService   *service.VehicleService
	fuelEventService *service.FuelEventService
	metricService    *service.DailyMetricService
	dashboardService *service.DashboardService
	log              zerolog.Logger
}

func NewHandler(
	vehicleService *service.VehicleService,
	fuelEventService *service.FuelEventService,
	metricService *service.DailyMetricService,
	dashboardService *service.DashboardService,
	log zerolog.Logger,
) *Handler {
	return &Handler{
		vehicleService:   vehicleService,
		fuelEventService: fuelEventService,
		metricService:    metricService,
		dashboardService: dashboardService,
		log:              log,
	}
}

// Register wires the endpoints. authMiddleware may be nil, in which case the
// write endpoints are open.
func (h *Handler) Register(r *gin.Engine, authMiddleware gin.HandlerFunc) {
	r.GET("/health", h.health)

	api := r.Group("/api")
	{
		api.GET("/test-db", h.testDB)
		api.GET("/vehicles", h.listVehicles)
		api.GET("/vehicles/:id", h.getVehicle)
		api.GET("/fuel-events", h.listFuelEvents)
		api.GET("/dashboard/kpis", h.dashboardKPIs)
		api.GET("/daily-metrics", h.listDailyMetrics)
	}

	writes := api.Group("")
	if authMiddleware != nil {
		writes.Use(authMiddleware)
	}
	writes.POST("/vehicles", h.createVehicle)
	writes.POST("/fuel-events", h.createFuelEvent)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Fleet fuel API is running",
		"timestamp": time.Now().UTC(),
		"store":     "Connected",
	})
}

func (h *Handler) testDB(c *gin.Context) {
	ctx := c.Request.Context()

	vehicles, err := h.vehicleService.List(ctx, repository.VehicleListFilter{Limit: testDBSampleSize})
	if err != nil {
		h.testDBError(c, err)
		return
	}
	vehicleCount, err := h.vehicleService.Count(ctx, repository.VehicleListFilter{})
	if err != nil {
		h.testDBError(c, err)
		return
	}
	events, err := h.fuelEventService.List(ctx, repository.FuelEventListFilter{Limit: testDBSampleSize})
	if err != nil {
		h.testDBError(c, err)
		return
	}
	eventCount, err := h.fuelEventService.Count(ctx, repository.FuelEventListFilter{})
	if err != nil {
		h.testDBError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"vehicles": gin.H{
			"count":  vehicleCount,
			"sample": vehicles,
		},
		"fuel_events": gin.H{
			"count":  eventCount,
			"sample": events,
		},
	})
}

func (h *Handler) testDBError(c *gin.Context, err error) {
	h.log.Error().Err(err).Msg("database test failed")
	c.JSON(http.StatusInternalServerError, gin.H{
		"error":   "Database test failed",
		"details": err.Error(),
		"tip":     "Check DB_DSN and that migrations have run",
	})
}

func (h *Handler) listVehicles(c *gin.Context) {
	filter := repository.VehicleListFilter{}

	if status := strings.TrimSpace(c.Query("status")); status != "" {
		vs := model.VehicleStatus(status)
		filter.Status = &vs
	}
	if rating := strings.TrimSpace(c.Query("efficiency_rating")); rating != "" {
		filter.EfficiencyRating = &rating
	}
	if driver := strings.TrimSpace(c.Query("driver_name")); driver != "" {
		filter.DriverName = &driver
	}

	vehicles, err := h.vehicleService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err, "Failed to fetch vehicles")
		return
	}

	c.JSON(http.StatusOK, vehicles)
}

func (h *Handler) getVehicle(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	vehicle, err := h.vehicleService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Vehicle not found"})
			return
		}
		h.handleError(c, err, "Failed to fetch vehicle")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}

func (h *Handler) createVehicle(c *gin.Context) {
	var req struct {
		AssetID           string   `json:"asset_id"`
		VehiclePlate      string   `json:"vehicle_plate"`
		DriverName        string   `json:"driver_name"`
		Status            string   `json:"status"`
		CurrentFuelLevel  *float64 `json:"current_fuel_level"`
		TankCapacity      *float64 `json:"tank_capacity"`
		FuelEfficiency    *float64 `json:"fuel_efficiency"`
		EfficiencyRating  string   `json:"efficiency_rating"`
		SystemReliability string   `json:"system_reliability"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), service.CreateVehicleInput{
		AssetID:           req.AssetID,
		VehiclePlate:      req.VehiclePlate,
		DriverName:        req.DriverName,
		Status:            req.Status,
		CurrentFuelLevel:  req.CurrentFuelLevel,
		TankCapacity:      req.TankCapacity,
		FuelEfficiency:    req.FuelEfficiency,
		EfficiencyRating:  req.EfficiencyRating,
		SystemReliability: req.SystemReliability,
	})
	if err != nil {
		h.handleError(c, err, "Failed to create vehicle")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Vehicle created successfully",
		"vehicle": vehicle,
	})
}

func (h *Handler) listFuelEvents(c *gin.Context) {
	filter := repository.FuelEventListFilter{}

	if vehicleID := strings.TrimSpace(c.Query("vehicle_id")); vehicleID != "" {
		filter.VehicleID = &vehicleID
	}
	if eventType := strings.TrimSpace(c.Query("event_type")); eventType != "" {
		et := model.FuelEventType(eventType)
		filter.EventType = &et
	}
	if startDate := strings.TrimSpace(c.Query("start_date")); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := strings.TrimSpace(c.Query("end_date")); endDate != "" {
		filter.EndDate = &endDate
	}

	events, err := h.fuelEventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err, "Failed to fetch fuel events")
		return
	}

	c.JSON(http.StatusOK, events)
}

func (h *Handler) createFuelEvent(c *gin.Context) {
	var req struct {
		VehicleID      string   `json:"vehicle_id"`
		EventType      string   `json:"event_type"`
		VolumeLiters   *float64 `json:"volume_liters"`
		CostKES        *float64 `json:"cost_kes"`
		CostUGX        *float64 `json:"cost_ugx"`
		Location       *string  `json:"location"`
		Notes          *string  `json:"notes"`
		EventTimestamp string   `json:"event_timestamp"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	event, err := h.fuelEventService.Create(c.Request.Context(), service.CreateFuelEventInput{
		VehicleID:      req.VehicleID,
		EventType:      req.EventType,
		VolumeLiters:   req.VolumeLiters,
		CostKES:        req.CostKES,
		CostUGX:        req.CostUGX,
		Location:       req.Location,
		Notes:          req.Notes,
		EventTimestamp: req.EventTimestamp,
	})
	if err != nil {
		h.handleError(c, err, "Failed to create fuel event")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Fuel event created successfully",
		"event":   event,
	})
}

func (h *Handler) dashboardKPIs(c *gin.Context) {
	kpis, err := h.dashboardService.KPIs(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "Failed to compute dashboard KPIs")
		return
	}

	c.JSON(http.StatusOK, kpis)
}

func (h *Handler) listDailyMetrics(c *gin.Context) {
	filter := repository.DailyMetricListFilter{}

	if vehicleID := strings.TrimSpace(c.Query("vehicle_id")); vehicleID != "" {
		filter.VehicleID = &vehicleID
	}
	if startDate := strings.TrimSpace(c.Query("start_date")); startDate != "" {
		filter.StartDate = &startDate
	}
	if endDate := strings.TrimSpace(c.Query("end_date")); endDate != "" {
		filter.EndDate = &endDate
	}

	metrics, err := h.metricService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err, "Failed to fetch daily metrics")
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// handleError converts service failures to the uniform response shapes. Store
// errors are logged with their root cause and surfaced as a generic message.
func (h *Handler) handleError(c *gin.Context, err error, storeMessage string) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":    validationErr.Error(),
			"required": validationErr.Required,
		})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.log.Error().Err(err).Str("message", storeMessage).Msg("store operation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": storeMessage})
	}
}
