package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "farmlease/internal/delivery/context"
	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"
	"farmlease/internal/domain/service"
	"farmlease/internal/errors"
	"farmlease/internal/usecase"

	"go.uber.org/fx"
)

type cropService struct {
	plotRepo  repository.PlotRepository
	cropRepo  repository.CropRepository
	publisher service.EventPublisher
	logger    *slog.Logger
}

// CropServiceParams holds dependencies for CropService, injected by Fx.
type CropServiceParams struct {
	fx.In

	PlotRepo  repository.PlotRepository
	CropRepo  repository.CropRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewCropService creates a new CropUsecase.
func NewCropService(params CropServiceParams) usecase.CropUsecase {
	return &cropService{
		plotRepo:  params.PlotRepo,
		cropRepo:  params.CropRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *cropService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCrop adds a crop to a plot the caller owns or leases.
func (srv *cropService) CreateCrop(ctx context.Context, caller *access.Caller, input *usecase.CreateCropInput) (*entity.Crop, error) {
	if err := authorizeInput(caller, input); err != nil {
		return nil, err
	}

	plot, err := srv.plotRepo.FindByID(ctx, input.PlotID)
	if err != nil {
		if errors.Is(err, repository.ErrPlotNotFound) {
			return nil, domainerrors.ErrPlotNotFound.WrapMessage(input.PlotID.String())
		}

		return nil, errors.Wrap(err, "failed to find plot")
	}

	if err := access.CreateCrop(caller, plot); err != nil {
		srv.log(ctx).Debug("Crop creation denied", slog.Any("plotID", plot.ID), slog.Any("userID", caller.UserID))

		return nil, err
	}

	crop := &entity.Crop{
		PlotID:       plot.ID,
		Name:         strings.TrimSpace(input.Name),
		Variety:      strings.TrimSpace(input.Variety),
		PlantingDate: input.PlantingDate,
	}
	if err := srv.cropRepo.Create(ctx, crop); err != nil {
		if errors.Is(err, repository.ErrPlotNotFound) {
			return nil, domainerrors.ErrPlotNotFound.WrapMessage(input.PlotID.String())
		}

		return nil, errors.Wrap(err, "failed to create crop")
	}
	srv.log(ctx).Info("Crop created", slog.Any("cropID", crop.ID), slog.Any("plotID", crop.PlotID))

	publishFarmEvent(ctx, srv.publisher, srv.log(ctx), service.EventCropCreated, crop.PlotID, crop.ID, caller.UserID)

	return crop, nil
}
