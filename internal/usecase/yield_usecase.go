package usecase

import (
	"context"
	"time"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateYieldInput defines a harvest record. A nil Date means now.
type CreateYieldInput struct {
	CropID     uuid.UUID  `json:"cropId" validate:"required"`
	Date       *time.Time `json:"date"`
	QuantityKg *float64   `json:"quantityKg" validate:"required,gte=0"`
	RevenueNpr *float64   `json:"revenueNpr" validate:"omitempty,gte=0"`
}

// YieldUsecase records yields.
type YieldUsecase interface {
	CreateYield(ctx context.Context, caller *access.Caller, input *CreateYieldInput) (*entity.Yield, error)
}
