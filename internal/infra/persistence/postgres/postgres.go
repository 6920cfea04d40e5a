package postgres

import (
	"context"
	"log/slog"

	"farmlease/config"
	"farmlease/internal/domain/lifecycle"
	"farmlease/internal/errors"
	"farmlease/internal/infra/metrics"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Params are the dependencies of New.
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

// New opens the farm database, applies the schema when configured and ties
// the pool to the fx lifecycle: pinged on start, closed on stop.
func New(params Params) (*gorm.DB, error) {
	cfg := params.Config
	if cfg.Postgres == nil {
		return nil, errors.New("postgres configuration is missing")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	var observer QueryObserver
	if params.Metrics != nil {
		observer = params.Metrics
	}

	// Multi-step writes use TransactionManager explicitly.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, cfg.Env.Debug, cfg.Database.SlowQueryThreshold, observer),
	})

	if cfg.Database.AutoMigrate {
		if err := Migrate(db); err != nil {
			return nil, err
		}
		params.Logger.Info("Farm schema migrated")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	if params.Metrics != nil {
		if err := params.Metrics.RegisterDB(sqlDB, cfg.Env.ServiceName); err != nil {
			return nil, errors.Wrap(err, "failed to register pool metrics")
		}
	}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
