package repository

import (
	"context"

	"farmlease/internal/domain/entity"
	"farmlease/internal/errors"

	"github.com/google/uuid"
)

// ErrLeaseExists is returned when the farmer already holds a lease on the plot.
var ErrLeaseExists = errors.New("lease already exists")

// LeaseRepository defines persistence operations for leases.
type LeaseRepository interface {
	// Create persists a new lease. Returns ErrLeaseExists on a duplicate (plot, farmer) pair.
	Create(ctx context.Context, lease *entity.Lease) error

	// ListByPlot returns every lease on a plot.
	ListByPlot(ctx context.Context, plotID uuid.UUID) ([]*entity.Lease, error)
}
