//go:build integration

package repository

import (
	"context"
	"testing"
	"time"

	"github.com/guttosm/container-order-service/internal/circuitbreaker"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapacityTablesRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := openTestDB(t)

	repo := NewCapacityTablesRepository(db)

	active, err := repo.GetActive(ctx)
	require.NoError(t, err)
	assert.Nil(t, active, "empty collection has no active table")

	v1 := []model.CapacityClass{{Size: "20ft", MaxVolume: 33, MaxWeight: 18000}}
	first, err := repo.Create(ctx, "v1", v1, "defaults")
	require.NoError(t, err)
	assert.True(t, first.Active)

	time.Sleep(5 * time.Millisecond)

	v2 := []model.CapacityClass{
		{Size: "20ft", MaxVolume: 33, MaxWeight: 18000},
		{Size: "20ft", Refrigerated: true, MaxVolume: 28, MaxWeight: 17000},
	}
	second, err := repo.Create(ctx, "v2", v2, "capacity.yaml")
	require.NoError(t, err)

	active, err = repo.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, second.ID, active.ID)
	assert.Equal(t, "v2", active.Version)
	assert.Equal(t, v2, active.Classes)

	all, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "v2", all[0].Version, "newest first")
	assert.False(t, all[1].Active, "previous table is deactivated")

	limited, err := repo.List(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestCapacityTablesRepositoryWithCircuitBreaker_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := openTestDB(t)

	cb := circuitbreaker.New(circuitbreaker.DefaultConfig())
	wrapped := NewCapacityTablesRepositoryWithCircuitBreaker(NewCapacityTablesRepository(db), cb)

	_, err := wrapped.Create(ctx, "v1", []model.CapacityClass{{Size: "40ft", MaxVolume: 67, MaxWeight: 26000}}, "test")
	require.NoError(t, err)

	active, err := wrapped.GetActive(ctx)
	require.NoError(t, err)
	require.NotNil(t, active)
	assert.Equal(t, "40ft", active.Classes[0].Size)
	assert.Equal(t, circuitbreaker.StateClosed, cb.State())
}
