package postgres

import (
	"context"

	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"
	"farmlease/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// yieldRepository implements the domain.YieldRepository interface.
type yieldRepository struct {
	db *gorm.DB
}

// NewYieldRepository is the constructor for yieldRepository.
func NewYieldRepository(db *gorm.DB) repository.YieldRepository {
	return &yieldRepository{db: db}
}

// Create persists a new yield record.
func (repo *yieldRepository) Create(ctx context.Context, y *entity.Yield) error {
	yieldM := fromYieldDomain(y)

	if err := repo.db.WithContext(ctx).Create(yieldM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrCropNotFound.WrapMessage("yield crop does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create yield")
	}

	y.ID = yieldM.ID
	y.CreatedAt = yieldM.CreatedAt

	return nil
}

func toYieldDomain(data *model.YieldModel) *entity.Yield {
	if data == nil {
		return nil
	}

	return &entity.Yield{
		ID:         data.ID,
		CropID:     data.CropID,
		Date:       data.Date,
		QuantityKg: data.QuantityKg,
		RevenueNpr: data.RevenueNpr,
		CreatedAt:  data.CreatedAt,
	}
}

func fromYieldDomain(data *entity.Yield) *model.YieldModel {
	if data == nil {
		return nil
	}

	return &model.YieldModel{
		ID:         data.ID,
		CropID:     data.CropID,
		Date:       data.Date,
		QuantityKg: data.QuantityKg,
		RevenueNpr: data.RevenueNpr,
	}
}
