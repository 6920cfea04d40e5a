package impl

import (
	"context"
	"log/slog"

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

type leaseService struct {
	txManager repository.TransactionManager
	publisher service.EventPublisher
	logger    *slog.Logger
}

// LeaseServiceParams holds dependencies for LeaseService, injected by Fx.
type LeaseServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewLeaseService creates a new LeaseUsecase.
func NewLeaseService(params LeaseServiceParams) usecase.LeaseUsecase {
	return &leaseService{
		txManager: params.TxManager,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *leaseService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GrantLease leases a plot to a farmer. Only admins and the plot owner may grant.
func (srv *leaseService) GrantLease(ctx context.Context, caller *access.Caller, input *usecase.GrantLeaseInput) (*entity.Lease, error) {
	if err := authorizeInput(caller, input); err != nil {
		return nil, err
	}

	var lease *entity.Lease
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		plot, err := repoFactory.PlotRepo().FindByID(ctx, input.PlotID)
		if err != nil {
			if errors.Is(err, repository.ErrPlotNotFound) {
				return domainerrors.ErrPlotNotFound.WrapMessage(input.PlotID.String())
			}

			return errors.Wrap(err, "failed to find plot")
		}

		if err := access.GrantLease(caller, plot); err != nil {
			return err
		}

		farmer, err := repoFactory.UserRepo().FindByID(ctx, input.FarmerID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrValidationFailed.WithDetails("farmerId does not reference a user")
			}

			return errors.Wrap(err, "failed to find farmer")
		}
		if farmer.Role != entity.RoleFarmer {
			return domainerrors.ErrValidationFailed.WithDetails("farmerId must reference a farmer")
		}

		newLease := &entity.Lease{PlotID: plot.ID, FarmerID: farmer.ID}
		if err := repoFactory.LeaseRepo().Create(ctx, newLease); err != nil {
			if errors.Is(err, repository.ErrLeaseExists) {
				return domainerrors.ErrLeaseAlreadyExists.WrapMessage("grant lease failed")
			}

			return errors.Wrap(err, "failed to create lease")
		}
		lease = newLease

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute grant lease transaction")
	}
	srv.log(ctx).Info("Lease granted",
		slog.Any("plotID", lease.PlotID),
		slog.Any("farmerID", lease.FarmerID),
	)

	publishFarmEvent(ctx, srv.publisher, srv.log(ctx), service.EventLeaseGranted, lease.PlotID, lease.ID, caller.UserID)

	return lease, nil
}
