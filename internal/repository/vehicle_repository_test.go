package repository

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleet-fuel-service/internal/model"
)

// capturedQuery records the SQL a repository call generated. The tests run
// against a dry-run gorm session over the postgres dialector, so statements
// are built with real dialect rules but never sent anywhere.
type capturedQuery struct {
	SQL  string
	Vars []interface{}
}

func newDryRunDB(t *testing.T, captured *capturedQuery) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=test dbname=test"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true},
	)
	require.NoError(t, err)

	err = db.Callback().Query().After("gorm:query").Register("test:capture_sql", func(tx *gorm.DB) {
		captured.SQL = tx.Statement.SQL.String()
		captured.Vars = tx.Statement.Vars
	})
	require.NoError(t, err)

	return db
}

func statusPtr(s model.VehicleStatus) *model.VehicleStatus { return &s }
func strPtr(s string) *string                              { return &s }

func TestVehicleRepositoryListNoFilters(t *testing.T) {
	var captured capturedQuery
	repo := NewVehicleRepository(newDryRunDB(t, &captured))

	_, err := repo.List(context.Background(), VehicleListFilter{})
	require.NoError(t, err)

	assert.NotContains(t, captured.SQL, "WHERE")
	assert.Contains(t, captured.SQL, "ORDER BY created_at DESC")
	assert.Empty(t, captured.Vars)
}

func TestVehicleRepositoryListAllFilters(t *testing.T) {
	var captured capturedQuery
	repo := NewVehicleRepository(newDryRunDB(t, &captured))

	_, err := repo.List(context.Background(), VehicleListFilter{
		Status:           statusPtr(model.VehicleStatusActive),
		EfficiencyRating: strPtr("Good"),
		DriverName:       strPtr("kamau"),
	})
	require.NoError(t, err)

	assert.Contains(t, captured.SQL, "status = $")
	assert.Contains(t, captured.SQL, "efficiency_rating = $")
	// Substring match must be case-insensitive.
	assert.Contains(t, captured.SQL, "driver_name ILIKE $")

	// Predicates are ANDed in declaration order.
	assert.Less(t, strings.Index(captured.SQL, "status ="), strings.Index(captured.SQL, "efficiency_rating ="))
	assert.Less(t, strings.Index(captured.SQL, "efficiency_rating ="), strings.Index(captured.SQL, "driver_name ILIKE"))

	require.Len(t, captured.Vars, 3)
	assert.Equal(t, model.VehicleStatusActive, captured.Vars[0])
	assert.Equal(t, "Good", captured.Vars[1])
	assert.Equal(t, "%kamau%", captured.Vars[2])
}

func TestVehicleRepositoryListSingleFilter(t *testing.T) {
	var captured capturedQuery
	repo := NewVehicleRepository(newDryRunDB(t, &captured))

	_, err := repo.List(context.Background(), VehicleListFilter{DriverName: strPtr("Auma")})
	require.NoError(t, err)

	assert.NotContains(t, captured.SQL, "status =")
	assert.NotContains(t, captured.SQL, "efficiency_rating =")
	assert.Contains(t, captured.SQL, "driver_name ILIKE $")
	assert.Equal(t, []interface{}{"%Auma%"}, captured.Vars)
}

func TestVehicleRepositoryListLimit(t *testing.T) {
	var captured capturedQuery
	repo := NewVehicleRepository(newDryRunDB(t, &captured))

	_, err := repo.List(context.Background(), VehicleListFilter{Limit: 5})
	require.NoError(t, err)

	assert.Contains(t, captured.SQL, "LIMIT")
}

func TestVehicleRepositoryCount(t *testing.T) {
	var captured capturedQuery
	repo := NewVehicleRepository(newDryRunDB(t, &captured))

	_, err := repo.Count(context.Background(), VehicleListFilter{Status: statusPtr(model.VehicleStatusActive)})
	require.NoError(t, err)

	assert.Contains(t, captured.SQL, "count(*)")
	assert.Contains(t, captured.SQL, "status = $")
	assert.NotContains(t, captured.SQL, "ORDER BY")
	assert.Equal(t, []interface{}{model.VehicleStatusActive}, captured.Vars)
}
