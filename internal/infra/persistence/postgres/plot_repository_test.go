package postgres

import (
	"context"
	"testing"
	"time"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plotNames(plots []*entity.Plot) []string {
	names := make([]string, 0, len(plots))
	for _, p := range plots {
		names = append(names, p.Name)
	}

	return names
}

func TestPlotRepository_ListScopes(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlotRepository(db)
	ctx := context.Background()

	l1 := seedUser(t, db, entity.RoleLandowner)
	l2 := seedUser(t, db, entity.RoleLandowner)
	f1 := seedUser(t, db, entity.RoleFarmer)
	f2 := seedUser(t, db, entity.RoleFarmer)

	p1 := seedPlot(t, db, l1.ID, "P1")
	seedPlot(t, db, l1.ID, "P2")
	p3 := seedPlot(t, db, l2.ID, "P3")
	seedLease(t, db, p1.ID, f1.ID)
	seedLease(t, db, p1.ID, f2.ID)
	seedLease(t, db, p3.ID, f1.ID)

	tests := []struct {
		name   string
		filter access.PlotFilter
		want   []string
	}{
		{name: "all", filter: access.PlotFilter{Scope: access.ScopeAll}, want: []string{"P1", "P2", "P3"}},
		{name: "owned", filter: access.PlotFilter{Scope: access.ScopeOwned, UserID: l1.ID}, want: []string{"P1", "P2"}},
		{name: "leased", filter: access.PlotFilter{Scope: access.ScopeLeased, UserID: f1.ID}, want: []string{"P1", "P3"}},
		{name: "leased by second farmer", filter: access.PlotFilter{Scope: access.ScopeLeased, UserID: f2.ID}, want: []string{"P1"}},
		{name: "landowner without plots", filter: access.PlotFilter{Scope: access.ScopeOwned, UserID: f1.ID}, want: []string{}},
		{name: "none", filter: access.PlotFilter{Scope: access.ScopeNone, UserID: l1.ID}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plots, err := repo.List(ctx, tt.filter, repository.PlotListOptions{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, plotNames(plots))
		})
	}
}

func TestPlotRepository_ListLoadsRelations(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlotRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, entity.RoleLandowner)
	farmer := seedUser(t, db, entity.RoleFarmer)
	plot := seedPlot(t, db, owner.ID, "Khet")
	seedLease(t, db, plot.ID, farmer.ID)

	crop := &entity.Crop{PlotID: plot.ID, Name: "Rice"}
	require.NoError(t, NewCropRepository(db).Create(ctx, crop))
	for _, qty := range []float64{10, 2.5} {
		require.NoError(t, NewYieldRepository(db).Create(ctx, &entity.Yield{CropID: crop.ID, Date: time.Now(), QuantityKg: qty}))
	}

	bare, err := repo.List(ctx, access.PlotFilter{Scope: access.ScopeAll}, repository.PlotListOptions{})
	require.NoError(t, err)
	require.Len(t, bare, 1)
	assert.Empty(t, bare[0].Crops)
	assert.Empty(t, bare[0].Leases)

	full, err := repo.List(ctx, access.PlotFilter{Scope: access.ScopeLeased, UserID: farmer.ID},
		repository.PlotListOptions{WithYields: true, WithLeases: true})
	require.NoError(t, err)
	require.Len(t, full, 1)
	require.Len(t, full[0].Crops, 1)
	assert.Len(t, full[0].Crops[0].Yields, 2)
	assert.InDelta(t, 12.5, full[0].TotalYieldKg(), 1e-9)
	assert.True(t, full[0].HasLeaseFor(farmer.ID))
}

func TestPlotRepository_CreateWithLocation(t *testing.T) {
	db := newTestDB(t)
	repo := NewPlotRepository(db)
	ctx := context.Background()
	owner := seedUser(t, db, entity.RoleLandowner)

	size := 1200.0
	plot := &entity.Plot{Name: "Hillside", OwnerID: owner.ID, SizeM2: &size, Location: &orb.Point{85.324, 27.7172}}
	require.NoError(t, repo.Create(ctx, plot))

	found, err := repo.FindByID(ctx, plot.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Location)
	assert.InDelta(t, 85.324, found.Location.Lon(), 1e-9)
	assert.InDelta(t, 27.7172, found.Location.Lat(), 1e-9)
	require.NotNil(t, found.SizeM2)
	assert.InDelta(t, 1200.0, *found.SizeM2, 1e-9)
}

func TestPlotRepository_FindByIDNotFound(t *testing.T) {
	_, err := NewPlotRepository(newTestDB(t)).FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrPlotNotFound)
}

func TestPlotRepository_CreateUnknownOwner(t *testing.T) {
	err := NewPlotRepository(newTestDB(t)).Create(context.Background(), &entity.Plot{Name: "Orphan", OwnerID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidReference)
}

func TestLeaseRepository_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewLeaseRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, entity.RoleLandowner)
	farmer := seedUser(t, db, entity.RoleFarmer)
	plot := seedPlot(t, db, owner.ID, "P1")

	require.NoError(t, repo.Create(ctx, &entity.Lease{PlotID: plot.ID, FarmerID: farmer.ID}))
	err := repo.Create(ctx, &entity.Lease{PlotID: plot.ID, FarmerID: farmer.ID})
	assert.ErrorIs(t, err, repository.ErrLeaseExists)

	leases, err := repo.ListByPlot(ctx, plot.ID)
	require.NoError(t, err)
	assert.Len(t, leases, 1)
}

func TestCropRepository_FindWithPlotAndLeases(t *testing.T) {
	db := newTestDB(t)
	repo := NewCropRepository(db)
	ctx := context.Background()

	owner := seedUser(t, db, entity.RoleLandowner)
	f1 := seedUser(t, db, entity.RoleFarmer)
	f2 := seedUser(t, db, entity.RoleFarmer)
	plot := seedPlot(t, db, owner.ID, "P1")
	seedLease(t, db, plot.ID, f1.ID)
	seedLease(t, db, plot.ID, f2.ID)

	crop := &entity.Crop{PlotID: plot.ID, Name: "Maize", Variety: "Rampur"}
	require.NoError(t, repo.Create(ctx, crop))

	found, err := repo.FindWithPlotAndLeases(ctx, crop.ID, f1.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Plot)
	assert.Equal(t, owner.ID, found.Plot.OwnerID)
	require.Len(t, found.Plot.Leases, 1)
	assert.Equal(t, f1.ID, found.Plot.Leases[0].FarmerID)

	stranger, err := repo.FindWithPlotAndLeases(ctx, crop.ID, uuid.New())
	require.NoError(t, err)
	assert.Empty(t, stranger.Plot.Leases)

	_, err = repo.FindWithPlotAndLeases(ctx, uuid.New(), f1.ID)
	assert.ErrorIs(t, err, repository.ErrCropNotFound)
}

func TestYieldRepository_UnknownCrop(t *testing.T) {
	err := NewYieldRepository(newTestDB(t)).Create(context.Background(), &entity.Yield{CropID: uuid.New(), Date: time.Now(), QuantityKg: 1})
	assert.ErrorIs(t, err, domainerrors.ErrCropNotFound)
}
