package access

import (
	"testing"

	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlot(ownerID uuid.UUID, farmerIDs ...uuid.UUID) *entity.Plot {
	plot := &entity.Plot{ID: uuid.New(), Name: "Terrace", OwnerID: ownerID}
	for _, farmerID := range farmerIDs {
		plot.Leases = append(plot.Leases, &entity.Lease{ID: uuid.New(), PlotID: plot.ID, FarmerID: farmerID})
	}

	return plot
}

func caller(id uuid.UUID, role entity.Role) *Caller {
	return &Caller{UserID: id, Role: role}
}

func TestListPlots(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name      string
		caller    *Caller
		wantScope Scope
		wantErr   error
	}{
		{name: "unauthenticated", caller: nil, wantErr: domainerrors.ErrUnauthenticated},
		{name: "admin sees all", caller: caller(userID, entity.RoleAdmin), wantScope: ScopeAll},
		{name: "landowner sees owned", caller: caller(userID, entity.RoleLandowner), wantScope: ScopeOwned},
		{name: "farmer sees leased", caller: caller(userID, entity.RoleFarmer), wantScope: ScopeLeased},
		{name: "unknown role sees nothing", caller: caller(userID, entity.Role("auditor")), wantScope: ScopeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter, err := ListPlots(tt.caller)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScope, filter.Scope)
			if tt.wantScope != ScopeAll {
				assert.Equal(t, userID, filter.UserID)
			}
		})
	}
}

func TestPlotFilter_Matches(t *testing.T) {
	landowner := uuid.New()
	farmer := uuid.New()
	otherFarmer := uuid.New()

	owned := newPlot(landowner)
	leased := newPlot(uuid.New(), otherFarmer, farmer)
	unrelated := newPlot(uuid.New(), otherFarmer)
	plots := []*entity.Plot{owned, leased, unrelated}

	collect := func(filter PlotFilter) []*entity.Plot {
		var matched []*entity.Plot
		for _, p := range plots {
			if filter.Matches(p) {
				matched = append(matched, p)
			}
		}

		return matched
	}

	farmerFilter, err := ListPlots(caller(farmer, entity.RoleFarmer))
	require.NoError(t, err)
	assert.Equal(t, []*entity.Plot{leased}, collect(farmerFilter))
	assert.Equal(t, collect(farmerFilter), collect(farmerFilter), "same leases yield the same set")

	ownerFilter, err := ListPlots(caller(landowner, entity.RoleLandowner))
	require.NoError(t, err)
	assert.Equal(t, []*entity.Plot{owned}, collect(ownerFilter))

	adminFilter, err := ListPlots(caller(uuid.New(), entity.RoleAdmin))
	require.NoError(t, err)
	assert.Equal(t, plots, collect(adminFilter))

	assert.Empty(t, collect(PlotFilter{Scope: ScopeNone, UserID: landowner}))
	assert.False(t, adminFilter.Matches(nil))
}

func TestCreatePlot(t *testing.T) {
	assert.ErrorIs(t, CreatePlot(nil), domainerrors.ErrUnauthenticated)
	assert.NoError(t, CreatePlot(caller(uuid.New(), entity.RoleAdmin)))
	assert.NoError(t, CreatePlot(caller(uuid.New(), entity.RoleLandowner)))
	assert.ErrorIs(t, CreatePlot(caller(uuid.New(), entity.RoleFarmer)), domainerrors.ErrForbidden)
	assert.ErrorIs(t, CreatePlot(caller(uuid.New(), entity.Role("guest"))), domainerrors.ErrForbidden)
}

func TestCreateCrop_AdminAlwaysAllowed(t *testing.T) {
	admin := caller(uuid.New(), entity.RoleAdmin)

	for _, plot := range []*entity.Plot{
		newPlot(uuid.New()),
		newPlot(uuid.New(), uuid.New()),
		newPlot(admin.UserID),
	} {
		assert.NoError(t, CreateCrop(admin, plot))
		assert.NoError(t, CreateYield(admin, &entity.Crop{ID: uuid.New(), PlotID: plot.ID, Plot: plot}))
	}
}

func TestCreateCrop(t *testing.T) {
	landowner := uuid.New()
	otherLandowner := uuid.New()
	leaseholder := uuid.New()
	stranger := uuid.New()
	plot := newPlot(landowner, leaseholder)

	tests := []struct {
		name    string
		caller  *Caller
		plot    *entity.Plot
		wantErr error
	}{
		{name: "unauthenticated", caller: nil, plot: plot, wantErr: domainerrors.ErrUnauthenticated},
		{name: "unauthenticated on missing plot", caller: nil, plot: nil, wantErr: domainerrors.ErrUnauthenticated},
		{name: "admin on missing plot", caller: caller(uuid.New(), entity.RoleAdmin), plot: nil, wantErr: domainerrors.ErrPlotNotFound},
		{name: "farmer on missing plot", caller: caller(leaseholder, entity.RoleFarmer), plot: nil, wantErr: domainerrors.ErrPlotNotFound},
		{name: "owner", caller: caller(landowner, entity.RoleLandowner), plot: plot},
		{name: "other landowner", caller: caller(otherLandowner, entity.RoleLandowner), plot: plot, wantErr: domainerrors.ErrForbidden},
		{name: "leaseholding farmer", caller: caller(leaseholder, entity.RoleFarmer), plot: plot},
		{name: "farmer without lease", caller: caller(stranger, entity.RoleFarmer), plot: plot, wantErr: domainerrors.ErrForbidden},
		{name: "lease without farmer role", caller: caller(leaseholder, entity.RoleLandowner), plot: plot, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CreateCrop(tt.caller, tt.plot)
			if tt.wantErr == nil {
				assert.NoError(t, err)

				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCreateYield(t *testing.T) {
	landowner := uuid.New()
	leaseholder := uuid.New()
	plot := newPlot(landowner, leaseholder)
	crop := &entity.Crop{ID: uuid.New(), PlotID: plot.ID, Name: "Rice", Plot: plot}

	assert.ErrorIs(t, CreateYield(nil, crop), domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, CreateYield(caller(uuid.New(), entity.RoleAdmin), nil), domainerrors.ErrCropNotFound)
	assert.NoError(t, CreateYield(caller(landowner, entity.RoleLandowner), crop))
	assert.NoError(t, CreateYield(caller(leaseholder, entity.RoleFarmer), crop))
	// The lease alone grants yield rights, whatever the role.
	assert.NoError(t, CreateYield(caller(leaseholder, entity.RoleLandowner), crop))
	assert.ErrorIs(t, CreateYield(caller(uuid.New(), entity.RoleFarmer), crop), domainerrors.ErrForbidden)
	assert.ErrorIs(t, CreateYield(caller(uuid.New(), entity.RoleLandowner), &entity.Crop{ID: uuid.New()}), domainerrors.ErrForbidden)
}

func TestLeaseScenario(t *testing.T) {
	l1, l2 := uuid.New(), uuid.New()
	f1, f2 := uuid.New(), uuid.New()
	p1 := newPlot(l1, f1)
	crop := &entity.Crop{ID: uuid.New(), PlotID: p1.ID, Name: "Maize", Plot: p1}

	assert.NoError(t, CreateCrop(caller(f1, entity.RoleFarmer), p1))
	assert.ErrorIs(t, CreateCrop(caller(f2, entity.RoleFarmer), p1), domainerrors.ErrForbidden)

	assert.NoError(t, CreateYield(caller(f1, entity.RoleFarmer), crop))
	assert.NoError(t, CreateYield(caller(uuid.New(), entity.RoleAdmin), crop))
	assert.ErrorIs(t, CreateYield(caller(l2, entity.RoleLandowner), crop), domainerrors.ErrForbidden)
}

func TestViewPlot(t *testing.T) {
	landowner := uuid.New()
	farmer := uuid.New()
	plot := newPlot(landowner, farmer)

	assert.ErrorIs(t, ViewPlot(nil, plot), domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, ViewPlot(caller(landowner, entity.RoleLandowner), nil), domainerrors.ErrPlotNotFound)
	assert.NoError(t, ViewPlot(caller(landowner, entity.RoleLandowner), plot))
	assert.NoError(t, ViewPlot(caller(farmer, entity.RoleFarmer), plot))
	assert.NoError(t, ViewPlot(caller(uuid.New(), entity.RoleAdmin), plot))
	assert.ErrorIs(t, ViewPlot(caller(uuid.New(), entity.RoleFarmer), plot), domainerrors.ErrForbidden)
}

func TestGrantLease(t *testing.T) {
	landowner := uuid.New()
	farmer := uuid.New()
	plot := newPlot(landowner, farmer)

	assert.ErrorIs(t, GrantLease(nil, plot), domainerrors.ErrUnauthenticated)
	assert.ErrorIs(t, GrantLease(caller(landowner, entity.RoleLandowner), nil), domainerrors.ErrPlotNotFound)
	assert.NoError(t, GrantLease(caller(landowner, entity.RoleLandowner), plot))
	assert.NoError(t, GrantLease(caller(uuid.New(), entity.RoleAdmin), plot))
	assert.ErrorIs(t, GrantLease(caller(farmer, entity.RoleFarmer), plot), domainerrors.ErrForbidden)
}
