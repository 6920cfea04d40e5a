package usecase

import (
	"context"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationInput is a WGS84 coordinate.
type LocationInput struct {
	Lat *float64 `json:"lat" validate:"required,gte=-90,lte=90"`
	Lng *float64 `json:"lng" validate:"required,gte=-180,lte=180"`
}

// CreatePlotInput defines a new plot. The owner is always the caller.
type CreatePlotInput struct {
	Name     string         `json:"name" validate:"required,max=200"`
	SizeM2   *float64       `json:"sizeM2" validate:"omitempty,gte=0"`
	Location *LocationInput `json:"location" validate:"omitempty"`
}

// PlotQRCode is a PNG pointing at the plot's page.
type PlotQRCode struct {
	PlotID uuid.UUID
	PNG    []byte
}

// ScanPlotQRInput is the text decoded from a plot signage QR code.
type ScanPlotQRInput struct {
	Payload string `json:"payload" validate:"required,max=2048"`
}

// PlotUsecase lists, creates and reads plots on behalf of a caller.
type PlotUsecase interface {
	ListPlots(ctx context.Context, caller *access.Caller) ([]*entity.Plot, error)
	CreatePlot(ctx context.Context, caller *access.Caller, input *CreatePlotInput) (*entity.Plot, error)
	GetPlot(ctx context.Context, caller *access.Caller, plotID uuid.UUID) (*entity.Plot, error)
	GetPlotQRCode(ctx context.Context, caller *access.Caller, plotID uuid.UUID) (*PlotQRCode, error)

	// ScanPlotQR resolves a scanned signage payload to the plot, under the
	// same visibility rule as GetPlot.
	ScanPlotQR(ctx context.Context, caller *access.Caller, input *ScanPlotQRInput) (*entity.Plot, error)
}
