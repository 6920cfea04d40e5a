package postgres

import (
	"context"

	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"
	"farmlease/internal/errors"
	"farmlease/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// leaseRepository implements the domain.LeaseRepository interface.
type leaseRepository struct {
	db *gorm.DB
}

// NewLeaseRepository is the constructor for leaseRepository.
func NewLeaseRepository(db *gorm.DB) repository.LeaseRepository {
	return &leaseRepository{db: db}
}

// Create persists a new lease.
func (repo *leaseRepository) Create(ctx context.Context, lease *entity.Lease) error {
	leaseM := fromLeaseDomain(lease)

	if err := repo.db.WithContext(ctx).Create(leaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrLeaseExists
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("lease plot or farmer does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create lease")
	}

	lease.ID = leaseM.ID
	lease.CreatedAt = leaseM.CreatedAt

	return nil
}

// ListByPlot returns the leases on a plot, oldest first.
func (repo *leaseRepository) ListByPlot(ctx context.Context, plotID uuid.UUID) ([]*entity.Lease, error) {
	var leaseMs []model.LeaseModel
	if err := repo.db.WithContext(ctx).Where("plot_id = ?", plotID).Order("created_at").Find(&leaseMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list leases")
	}

	leases := make([]*entity.Lease, 0, len(leaseMs))
	for i := range leaseMs {
		leases = append(leases, toLeaseDomain(&leaseMs[i]))
	}

	return leases, nil
}

func toLeaseDomain(data *model.LeaseModel) *entity.Lease {
	if data == nil {
		return nil
	}

	return &entity.Lease{
		ID:        data.ID,
		PlotID:    data.PlotID,
		FarmerID:  data.FarmerID,
		CreatedAt: data.CreatedAt,
	}
}

func fromLeaseDomain(data *entity.Lease) *model.LeaseModel {
	if data == nil {
		return nil
	}

	return &model.LeaseModel{
		ID:       data.ID,
		PlotID:   data.PlotID,
		FarmerID: data.FarmerID,
	}
}
