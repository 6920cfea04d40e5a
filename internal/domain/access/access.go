// Package access decides who may see or change plots, crops and yields.
//
// Every function is a pure decision over the caller and an already-fetched
// resource. A nil *Caller is an unauthenticated request. Checks run in a fixed
// order: authentication, then existence of the resource, then permission.
// Admin passes every resource check; ownership and leases are OR-combined.
package access

import (
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"

	"github.com/google/uuid"
)

// Caller is the identity attached to an inbound request.
type Caller struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the caller holds the universal bypass.
func (c *Caller) IsAdmin() bool {
	return c != nil && c.Role == entity.RoleAdmin
}

// Scope selects which plots a listing query may return.
type Scope int

const (
	// ScopeNone matches no plot. Unknown roles fall through to it.
	ScopeNone Scope = iota
	// ScopeAll matches every plot.
	ScopeAll
	// ScopeOwned matches plots whose owner is PlotFilter.UserID.
	ScopeOwned
	// ScopeLeased matches plots with at least one lease held by PlotFilter.UserID.
	ScopeLeased
)

// String returns a stable name for logs.
func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeOwned:
		return "owned"
	case ScopeLeased:
		return "leased"
	default:
		return "none"
	}
}

// PlotFilter is the predicate a listing query pushes down to the store.
type PlotFilter struct {
	Scope  Scope
	UserID uuid.UUID
}

// Matches evaluates the filter in memory. For ScopeLeased the plot's leases
// must be loaded; one matching lease is enough.
func (f PlotFilter) Matches(plot *entity.Plot) bool {
	if plot == nil {
		return false
	}

	switch f.Scope {
	case ScopeAll:
		return true
	case ScopeOwned:
		return plot.OwnerID == f.UserID
	case ScopeLeased:
		return plot.HasLeaseFor(f.UserID)
	default:
		return false
	}
}

// ListPlots returns the scoping filter for the caller's plot listing.
func ListPlots(caller *Caller) (PlotFilter, error) {
	if caller == nil {
		return PlotFilter{}, domainerrors.ErrUnauthenticated
	}

	switch caller.Role {
	case entity.RoleAdmin:
		return PlotFilter{Scope: ScopeAll}, nil
	case entity.RoleLandowner:
		return PlotFilter{Scope: ScopeOwned, UserID: caller.UserID}, nil
	case entity.RoleFarmer:
		return PlotFilter{Scope: ScopeLeased, UserID: caller.UserID}, nil
	default:
		return PlotFilter{Scope: ScopeNone, UserID: caller.UserID}, nil
	}
}

// CreatePlot allows admins and landowners. The new plot is always owned by
// the caller, admins included.
func CreatePlot(caller *Caller) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}

	if caller.Role == entity.RoleAdmin || caller.Role == entity.RoleLandowner {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("only admins and landowners can create plots")
}

// ViewPlot allows the caller to read a single plot when the caller's listing
// filter would have returned it.
func ViewPlot(caller *Caller, plot *entity.Plot) error {
	filter, err := ListPlots(caller)
	if err != nil {
		return err
	}
	if plot == nil {
		return domainerrors.ErrPlotNotFound
	}

	if !filter.Matches(plot) {
		return domainerrors.ErrForbidden.WrapMessage("plot is not visible to caller")
	}

	return nil
}

// CreateCrop allows admins, the plot owner, and farmers holding a lease on
// the plot.
func CreateCrop(caller *Caller, plot *entity.Plot) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}
	if plot == nil {
		return domainerrors.ErrPlotNotFound
	}

	if caller.IsAdmin() ||
		caller.UserID == plot.OwnerID ||
		(caller.Role == entity.RoleFarmer && plot.HasLeaseFor(caller.UserID)) {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("caller cannot add crops to this plot")
}

// CreateYield allows admins, the owner of the crop's plot, and any caller
// holding a lease on that plot. Unlike CreateCrop the lease alone is enough;
// the role is not consulted.
func CreateYield(caller *Caller, crop *entity.Crop) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}
	if crop == nil {
		return domainerrors.ErrCropNotFound
	}
	if crop.Plot == nil {
		// A crop always belongs to a plot; a missing plot means the store
		// did not load it and permission cannot be derived.
		return domainerrors.ErrForbidden.WrapMessage("crop plot not loaded")
	}

	if caller.IsAdmin() ||
		caller.UserID == crop.Plot.OwnerID ||
		crop.Plot.HasLeaseFor(caller.UserID) {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("caller cannot record yields for this crop")
}

// GrantLease allows admins and the plot owner to lease the plot to a farmer.
func GrantLease(caller *Caller, plot *entity.Plot) error {
	if caller == nil {
		return domainerrors.ErrUnauthenticated
	}
	if plot == nil {
		return domainerrors.ErrPlotNotFound
	}

	if caller.IsAdmin() || caller.UserID == plot.OwnerID {
		return nil
	}

	return domainerrors.ErrForbidden.WrapMessage("only admins and the plot owner can grant leases")
}
