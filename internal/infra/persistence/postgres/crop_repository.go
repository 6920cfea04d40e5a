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

// cropRepository implements the domain.CropRepository interface.
type cropRepository struct {
	db *gorm.DB
}

// NewCropRepository is the constructor for cropRepository.
func NewCropRepository(db *gorm.DB) repository.CropRepository {
	return &cropRepository{db: db}
}

// Create persists a new crop.
func (repo *cropRepository) Create(ctx context.Context, crop *entity.Crop) error {
	cropM := fromCropDomain(crop)

	if err := repo.db.WithContext(ctx).Omit("Plot", "Yields").Create(cropM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrPlotNotFound.WrapMessage("crop plot does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create crop")
	}

	crop.ID = cropM.ID
	crop.CreatedAt = cropM.CreatedAt
	crop.UpdatedAt = cropM.UpdatedAt

	return nil
}

// FindWithPlotAndLeases loads a crop, its plot, and only the plot's leases
// held by farmerID. A nil farmerID loads no leases.
func (repo *cropRepository) FindWithPlotAndLeases(ctx context.Context, id, farmerID uuid.UUID) (*entity.Crop, error) {
	var cropM model.CropModel
	err := repo.db.WithContext(ctx).
		Preload("Plot").
		Preload("Plot.Leases", "farmer_id = ?", farmerID).
		Where("id = ?", id).
		First(&cropM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrCropNotFound
		}

		return nil, errors.Wrap(err, "failed to find crop by id")
	}

	crop := toCropDomain(&cropM)
	crop.Plot = toPlotDomain(cropM.Plot)

	return crop, nil
}

// --- Mapper Functions ---

func toCropDomain(data *model.CropModel) *entity.Crop {
	if data == nil {
		return nil
	}

	crop := &entity.Crop{
		ID:           data.ID,
		PlotID:       data.PlotID,
		Name:         data.Name,
		Variety:      data.Variety,
		PlantingDate: data.PlantingDate,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	for i := range data.Yields {
		crop.Yields = append(crop.Yields, toYieldDomain(&data.Yields[i]))
	}

	return crop
}

func fromCropDomain(data *entity.Crop) *model.CropModel {
	if data == nil {
		return nil
	}

	return &model.CropModel{
		ID:           data.ID,
		PlotID:       data.PlotID,
		Name:         data.Name,
		Variety:      data.Variety,
		PlantingDate: data.PlantingDate,
	}
}
