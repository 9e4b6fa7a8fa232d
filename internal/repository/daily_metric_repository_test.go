package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyMetricRepositoryListNoFilters(t *testing.T) {
	var captured capturedQuery
	repo := NewDailyMetricRepository(newDryRunDB(t, &captured))

	_, err := repo.List(context.Background(), DailyMetricListFilter{})
	require.NoError(t, err)

	assert.NotContains(t, captured.SQL, "WHERE")
	assert.Contains(t, captured.SQL, "ORDER BY metric_date DESC")
}

func TestDailyMetricRepositoryListAllFilters(t *testing.T) {
	var captured capturedQuery
	repo := NewDailyMetricRepository(newDryRunDB(t, &captured))

	_, err := repo.List(context.Background(), DailyMetricListFilter{
		VehicleID: strPtr("b94cdb84-1a54-4c35-9f4e-9d1a4f1a2b3c"),
		StartDate: strPtr("2026-01-01"),
		EndDate:   strPtr("2026-01-31"),
	})
	require.NoError(t, err)

	assert.Contains(t, captured.SQL, "vehicle_id = $")
	// Both bounds inclusive, each independently optional.
	assert.Contains(t, captured.SQL, "metric_date >= $")
	assert.Contains(t, captured.SQL, "metric_date <= $")
	assert.Equal(t, []interface{}{"b94cdb84-1a54-4c35-9f4e-9d1a4f1a2b3c", "2026-01-01", "2026-01-31"}, captured.Vars)
}

func TestDailyMetricRepositoryListRangeBoundsIndependent(t *testing.T) {
	var captured capturedQuery
	repo := NewDailyMetricRepository(newDryRunDB(t, &captured))

	_, err := repo.List(context.Background(), DailyMetricListFilter{EndDate: strPtr("2026-01-31")})
	require.NoError(t, err)

	assert.Contains(t, captured.SQL, "metric_date <= $")
	assert.NotContains(t, captured.SQL, ">=")
}
