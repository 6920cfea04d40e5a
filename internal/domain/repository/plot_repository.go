package repository

import (
	"context"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"
	"farmlease/internal/errors"

	"github.com/google/uuid"
)

// ErrPlotNotFound is returned when no plot has the requested ID.
var ErrPlotNotFound = errors.New("plot not found")

// PlotListOptions controls which relations a plot listing loads.
type PlotListOptions struct {
	WithCrops  bool // Load crops of every plot.
	WithYields bool // Load yields of every crop; implies WithCrops.
	WithLeases bool // Load every lease of every plot.
}

// PlotRepository defines persistence operations for plots.
type PlotRepository interface {
	// Create persists a new plot.
	Create(ctx context.Context, plot *entity.Plot) error

	// FindByID retrieves a plot with all of its leases and crops loaded.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Plot, error)

	// List returns the plots matching filter, ordered by creation time.
	// ScopeLeased is an existential match: a plot is returned once however
	// many of its leases belong to the farmer.
	List(ctx context.Context, filter access.PlotFilter, opts PlotListOptions) ([]*entity.Plot, error)
}
