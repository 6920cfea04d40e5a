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

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"go.uber.org/fx"
)

type plotService struct {
	plotRepo  repository.PlotRepository
	qrCodes   service.QRCodeService
	publisher service.EventPublisher
	logger    *slog.Logger
}

// PlotServiceParams holds dependencies for PlotService, injected by Fx.
type PlotServiceParams struct {
	fx.In

	PlotRepo  repository.PlotRepository
	QRCodes   service.QRCodeService
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewPlotService creates a new PlotUsecase.
func NewPlotService(params PlotServiceParams) usecase.PlotUsecase {
	return &plotService{
		plotRepo:  params.PlotRepo,
		qrCodes:   params.QRCodes,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *plotService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListPlots returns the plots the caller may see, with crops and leases.
func (srv *plotService) ListPlots(ctx context.Context, caller *access.Caller) ([]*entity.Plot, error) {
	filter, err := access.ListPlots(caller)
	if err != nil {
		return nil, err
	}

	plots, err := srv.plotRepo.List(ctx, filter, repository.PlotListOptions{WithCrops: true, WithLeases: true})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list plots")
	}
	srv.log(ctx).Debug("Listed plots",
		slog.String("scope", filter.Scope.String()),
		slog.Int("count", len(plots)),
	)

	return plots, nil
}

// CreatePlot creates a plot owned by the caller.
func (srv *plotService) CreatePlot(ctx context.Context, caller *access.Caller, input *usecase.CreatePlotInput) (*entity.Plot, error) {
	if err := authorizeInput(caller, input); err != nil {
		return nil, err
	}
	if err := access.CreatePlot(caller); err != nil {
		return nil, err
	}

	plot := &entity.Plot{
		Name:    strings.TrimSpace(input.Name),
		SizeM2:  input.SizeM2,
		OwnerID: caller.UserID,
	}
	if input.Location != nil {
		plot.Location = &orb.Point{*input.Location.Lng, *input.Location.Lat}
	}

	if err := srv.plotRepo.Create(ctx, plot); err != nil {
		return nil, errors.Wrap(err, "failed to create plot")
	}
	srv.log(ctx).Info("Plot created", slog.Any("plotID", plot.ID), slog.Any("ownerID", plot.OwnerID))

	publishFarmEvent(ctx, srv.publisher, srv.log(ctx), service.EventPlotCreated, plot.ID, plot.ID, caller.UserID)

	return plot, nil
}

// GetPlot returns a single plot visible to the caller.
func (srv *plotService) GetPlot(ctx context.Context, caller *access.Caller, plotID uuid.UUID) (*entity.Plot, error) {
	if caller == nil {
		return nil, domainerrors.ErrUnauthenticated
	}

	plot, err := srv.findPlot(ctx, plotID)
	if err != nil {
		return nil, err
	}

	if err := access.ViewPlot(caller, plot); err != nil {
		return nil, err
	}

	return plot, nil
}

// GetPlotQRCode renders the signage QR code of a plot the caller may see.
func (srv *plotService) GetPlotQRCode(ctx context.Context, caller *access.Caller, plotID uuid.UUID) (*usecase.PlotQRCode, error) {
	plot, err := srv.GetPlot(ctx, caller, plotID)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GeneratePlotQR(plot.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate plot qr code")
	}

	return &usecase.PlotQRCode{PlotID: plot.ID, PNG: png}, nil
}

// ScanPlotQR resolves a scanned signage payload. A payload that is not a plot
// link is a validation failure.
func (srv *plotService) ScanPlotQR(ctx context.Context, caller *access.Caller, input *usecase.ScanPlotQRInput) (*entity.Plot, error) {
	if err := authorizeInput(caller, input); err != nil {
		return nil, err
	}

	plotID, err := srv.qrCodes.ParsePlotQR(input.Payload)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("payload is not a plot QR code")
	}

	return srv.GetPlot(ctx, caller, plotID)
}

func (srv *plotService) findPlot(ctx context.Context, plotID uuid.UUID) (*entity.Plot, error) {
	plot, err := srv.plotRepo.FindByID(ctx, plotID)
	if err != nil {
		if errors.Is(err, repository.ErrPlotNotFound) {
			return nil, domainerrors.ErrPlotNotFound.WrapMessage(plotID.String())
		}

		return nil, errors.Wrap(err, "failed to find plot")
	}

	return plot, nil
}
