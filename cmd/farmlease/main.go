package main

import (
	"context"
	"log/slog"
	"os"

	"farmlease/config"
	"farmlease/internal/delivery"
	"farmlease/internal/delivery/api"
	"farmlease/internal/delivery/api/middleware"
	"farmlease/internal/delivery/api/router/handler"
	"farmlease/internal/domain/lifecycle"
	"farmlease/internal/domain/service"
	"farmlease/internal/errors"
	"farmlease/internal/infra/auth"
	logs "farmlease/internal/infra/log"
	"farmlease/internal/infra/metrics"
	"farmlease/internal/infra/persistence/postgres"
	"farmlease/internal/infra/pubsub"
	"farmlease/internal/infra/qrcode"
	"farmlease/internal/usecase"
	"farmlease/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			bootstrapAdmin,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
		),
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewPlotRepository,
			postgres.NewLeaseRepository,
			postgres.NewCropRepository,
			postgres.NewYieldRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
			newQRCodeService,
		),
		pubsub.Module,
		// Every publish is counted on /metrics.
		fx.Decorate(metrics.InstrumentPublisher),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M", "")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewUserService,
			impl.NewPlotService,
			impl.NewLeaseService,
			impl.NewCropService,
			impl.NewYieldService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewPlotHandler,
			handler.NewCropHandler,
			handler.NewDashboardHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// bootstrapAdmin creates the configured admin account once the database is reachable.
func bootstrapAdmin(lc fx.Lifecycle, cfg *config.Config, users usecase.UserUsecase, logger *slog.Logger) {
	if cfg.Admin == nil || cfg.Admin.Email == "" {
		return
	}

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			admin, err := users.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
			if err != nil {
				return errors.Wrap(err, "failed to bootstrap admin")
			}
			logger.Info("Admin account ready", slog.Any("userID", admin.ID))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
