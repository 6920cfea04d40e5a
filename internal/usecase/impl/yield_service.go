package impl

import (
	"context"
	"log/slog"
	"time"

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

type yieldService struct {
	cropRepo  repository.CropRepository
	yieldRepo repository.YieldRepository
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// YieldServiceParams holds dependencies for YieldService, injected by Fx.
type YieldServiceParams struct {
	fx.In

	CropRepo  repository.CropRepository
	YieldRepo repository.YieldRepository
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewYieldService creates a new YieldUsecase.
func NewYieldService(params YieldServiceParams) usecase.YieldUsecase {
	return &yieldService{
		cropRepo:  params.CropRepo,
		yieldRepo: params.YieldRepo,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *yieldService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateYield records a harvest on a crop whose plot the caller owns or leases.
func (srv *yieldService) CreateYield(ctx context.Context, caller *access.Caller, input *usecase.CreateYieldInput) (*entity.Yield, error) {
	if err := authorizeInput(caller, input); err != nil {
		return nil, err
	}

	// Only the caller's own leases are loaded.
	crop, err := srv.cropRepo.FindWithPlotAndLeases(ctx, input.CropID, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound.WrapMessage(input.CropID.String())
		}

		return nil, errors.Wrap(err, "failed to find crop")
	}

	if err := access.CreateYield(caller, crop); err != nil {
		return nil, err
	}

	date := srv.now().UTC()
	if input.Date != nil {
		date = *input.Date
	}

	yield := &entity.Yield{
		CropID:     crop.ID,
		Date:       date,
		QuantityKg: *input.QuantityKg,
		RevenueNpr: input.RevenueNpr,
	}
	if err := srv.yieldRepo.Create(ctx, yield); err != nil {
		if errors.Is(err, repository.ErrCropNotFound) {
			return nil, domainerrors.ErrCropNotFound.WrapMessage(input.CropID.String())
		}

		return nil, errors.Wrap(err, "failed to create yield")
	}
	srv.log(ctx).Info("Yield recorded",
		slog.Any("yieldID", yield.ID),
		slog.Any("cropID", yield.CropID),
		slog.Float64("quantityKg", yield.QuantityKg),
	)

	publishFarmEvent(ctx, srv.publisher, srv.log(ctx), service.EventYieldRecorded, crop.PlotID, yield.ID, caller.UserID)

	return yield, nil
}
