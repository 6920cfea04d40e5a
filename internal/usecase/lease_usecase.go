package usecase

import (
	"context"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"

	"github.com/google/uuid"
)

// GrantLeaseInput names the farmer who receives rights on the plot.
type GrantLeaseInput struct {
	PlotID   uuid.UUID `json:"-" validate:"required"`
	FarmerID uuid.UUID `json:"farmerId" validate:"required"`
}

// LeaseUsecase manages leases.
type LeaseUsecase interface {
	GrantLease(ctx context.Context, caller *access.Caller, input *GrantLeaseInput) (*entity.Lease, error)
}
