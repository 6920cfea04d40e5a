package repository

import (
	"context"

	"farmlease/internal/domain/entity"
	"farmlease/internal/errors"

	"github.com/google/uuid"
)

// ErrCropNotFound is returned when no crop has the requested ID.
var ErrCropNotFound = errors.New("crop not found")

// CropRepository defines persistence operations for crops.
type CropRepository interface {
	// Create persists a new crop.
	Create(ctx context.Context, crop *entity.Crop) error

	// FindWithPlotAndLeases retrieves a crop with its plot loaded and the
	// plot's leases filtered to farmerID.
	FindWithPlotAndLeases(ctx context.Context, id, farmerID uuid.UUID) (*entity.Crop, error)
}
