package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"fleet-fuel-service/internal/auth"
	"fleet-fuel-service/internal/config"
	"fleet-fuel-service/internal/db"
	httphandler "fleet-fuel-service/internal/http"
	"fleet-fuel-service/internal/http/middleware"
	"fleet-fuel-service/internal/logger"
	"fleet-fuel-service/internal/repository"
	"fleet-fuel-service/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	appLogger := logger.New(cfg.Environment)

	database, err := db.New(cfg, appLogger)
	if err != nil {
		appLogger.Fatal().Err(err).Msg("failed to connect database")
	}

	vehicleRepo := repository.NewVehicleRepository(database)
	fuelEventRepo := repository.NewFuelEventRepository(database)
	metricRepo := repository.NewDailyMetricRepository(database)

	vehicleService := service.NewVehicleService(vehicleRepo)
	fuelEventService := service.NewFuelEventService(fuelEventRepo)
	metricService := service.NewDailyMetricService(metricRepo)
	dashboardService := service.NewDashboardService(vehicleRepo, fuelEventRepo)

	handler := httphandler.NewHandler(vehicleService, fuelEventService, metricService, dashboardService, appLogger)

	var authMiddleware gin.HandlerFunc
	if cfg.Auth.AccessSecret != "" {
		authMiddleware = middleware.Auth(auth.NewParser(cfg.Auth.AccessSecret))
	}

	router := httphandler.NewRouter(handler, authMiddleware, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	appLogger.Info().Str("addr", addr).Msg("starting fleet fuel service")

	if err := router.Run(addr); err != nil {
		appLogger.Error().Err(err).Msg("failed to start server")
		os.Exit(1)
	}
}
