package usecase

import (
	"context"
	"time"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCropInput defines a new planting on a plot.
type CreateCropInput struct {
	PlotID       uuid.UUID  `json:"plotId" validate:"required"`
	Name         string     `json:"name" validate:"required,max=200"`
	Variety      string     `json:"variety" validate:"max=200"`
	PlantingDate *time.Time `json:"plantingDate"`
}

// CropUsecase creates crops.
type CropUsecase interface {
	CreateCrop(ctx context.Context, caller *access.Caller, input *CreateCropInput) (*entity.Crop, error)
}
