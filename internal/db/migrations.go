package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
	`CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		asset_id VARCHAR(64) NOT NULL UNIQUE,
		vehicle_plate VARCHAR(32) NOT NULL,
		driver_name VARCHAR(128) NOT NULL,
		status VARCHAR(16) NOT NULL DEFAULT 'Active',
		current_fuel_level DOUBLE PRECISION NOT NULL DEFAULT 0,
		tank_capacity DOUBLE PRECISION NOT NULL DEFAULT 300,
		fuel_efficiency DOUBLE PRECISION NOT NULL DEFAULT 8.5,
		efficiency_rating VARCHAR(32) NOT NULL DEFAULT 'Good',
		system_reliability VARCHAR(32) NOT NULL DEFAULT 'Good',
		total_fuel_used DOUBLE PRECISION,
		total_distance DOUBLE PRECISION,
		total_engine_hours DOUBLE PRECISION,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_status ON vehicles (status);`,
	`CREATE INDEX IF NOT EXISTS idx_vehicles_efficiency_rating ON vehicles (efficiency_rating);`,
	`CREATE TABLE IF NOT EXISTS fuel_events (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		event_type VARCHAR(32) NOT NULL,
		volume_liters DOUBLE PRECISION NOT NULL,
		cost_kes DOUBLE PRECISION,
		cost_ugx DOUBLE PRECISION,
		location VARCHAR(200),
		notes TEXT,
		event_timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_events_vehicle_id ON fuel_events (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_events_event_type ON fuel_events (event_type);`,
	`CREATE INDEX IF NOT EXISTS idx_fuel_events_event_timestamp ON fuel_events (event_timestamp);`,
	`CREATE TABLE IF NOT EXISTS daily_metrics (
		id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
		vehicle_id UUID NOT NULL REFERENCES vehicles(id),
		metric_date DATE NOT NULL,
		fuel_consumed DOUBLE PRECISION NOT NULL DEFAULT 0,
		distance_km DOUBLE PRECISION NOT NULL DEFAULT 0,
		engine_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		efficiency_score DOUBLE PRECISION NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);`,
	`CREATE INDEX IF NOT EXISTS idx_daily_metrics_vehicle_id ON daily_metrics (vehicle_id);`,
	`CREATE INDEX IF NOT EXISTS idx_daily_metrics_metric_date ON daily_metrics (metric_date);`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_daily_metrics_vehicle_date ON daily_metrics (vehicle_id, metric_date);`,
	`CREATE OR REPLACE FUNCTION set_updated_at()
	RETURNS TRIGGER AS $$
	BEGIN
		NEW.updated_at = NOW();
		RETURN NEW;
	END;
	$$ LANGUAGE plpgsql;`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_trigger WHERE tgname = 'trg_vehicles_updated_at') THEN
			CREATE TRIGGER trg_vehicles_updated_at
				BEFORE UPDATE ON vehicles
				FOR EACH ROW
				EXECUTE PROCEDURE set_updated_at();
		END IF;
	END
	$$;`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
