//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDestinationsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := openTestDB(t)

	repo := NewDestinationsRepository(db)

	require.NoError(t, repo.Upsert(ctx, DestinationDocument{
		ID:      "DST-ROTTERDAM",
		Name:    "Rotterdam",
		Country: "NL",
		Active:  true,
		Routes: []DestinationRoute{
			{TransportMode: model.TransportSea, Size: "20ft"},
			{TransportMode: model.TransportSea, Size: "40ft", Refrigerated: true},
		},
	}))
	require.NoError(t, repo.Upsert(ctx, DestinationDocument{
		ID:     "DST-CLOSED",
		Name:   "Closed port",
		Active: false,
		Routes: []DestinationRoute{{TransportMode: model.TransportSea, Size: "20ft"}},
	}))

	tests := []struct {
		name         string
		destination  string
		mode         model.TransportMode
		size         string
		refrigerated bool
		want         bool
	}{
		{name: "dry route", destination: "DST-ROTTERDAM", mode: model.TransportSea, size: "20ft", want: true},
		{name: "reefer route", destination: "DST-ROTTERDAM", mode: model.TransportSea, size: "40ft", refrigerated: true, want: true},
		{name: "fields must match on one route", destination: "DST-ROTTERDAM", mode: model.TransportSea, size: "20ft", refrigerated: true},
		{name: "unknown mode", destination: "DST-ROTTERDAM", mode: model.TransportAir, size: "20ft"},
		{name: "inactive destination", destination: "DST-CLOSED", mode: model.TransportSea, size: "20ft"},
		{name: "unknown destination", destination: "DST-NOWHERE", mode: model.TransportSea, size: "20ft"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := repo.Supports(ctx, tt.destination, tt.mode, tt.size, tt.refrigerated)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ok)
		})
	}

	t.Run("list returns active destinations", func(t *testing.T) {
		docs, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "DST-ROTTERDAM", docs[0].ID)
		assert.False(t, docs[0].UpdatedAt.IsZero())
	})

	t.Run("upsert replaces routes", func(t *testing.T) {
		require.NoError(t, repo.Upsert(ctx, DestinationDocument{
			ID:     "DST-ROTTERDAM",
			Name:   "Rotterdam",
			Active: true,
			Routes: []DestinationRoute{{TransportMode: model.TransportLand, Size: "20ft"}},
		}))
		ok, err := repo.Supports(ctx, "DST-ROTTERDAM", model.TransportSea, "20ft", false)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
