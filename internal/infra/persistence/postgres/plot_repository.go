package postgres

import (
	"context"

	"farmlease/internal/domain/access"
	"farmlease/internal/domain/entity"
	domainerrors "farmlease/internal/domain/errors"
	"farmlease/internal/domain/repository"
	"farmlease/internal/errors"
	"farmlease/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"gorm.io/gorm"
)

const leasedByFarmerClause = "EXISTS (SELECT 1 FROM leases WHERE leases.plot_id = plots.id AND leases.farmer_id = ?)"

// plotRepository implements the domain.PlotRepository interface.
type plotRepository struct {
	db *gorm.DB
}

// NewPlotRepository is the constructor for plotRepository.
func NewPlotRepository(db *gorm.DB) repository.PlotRepository {
	return &plotRepository{db: db}
}

// Create persists a new plot.
func (repo *plotRepository) Create(ctx context.Context, plot *entity.Plot) error {
	plotM := fromPlotDomain(plot)

	if err := repo.db.WithContext(ctx).Omit("Owner", "Crops", "Leases").Create(plotM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrInvalidReference.WrapMessage("plot owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create plot")
	}

	plot.ID = plotM.ID
	plot.CreatedAt = plotM.CreatedAt
	plot.UpdatedAt = plotM.UpdatedAt

	return nil
}

// FindByID retrieves a plot with its leases and crops.
func (repo *plotRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Plot, error) {
	var plotM model.PlotModel
	err := repo.db.WithContext(ctx).
		Preload("Leases").
		Preload("Crops", func(db *gorm.DB) *gorm.DB { return db.Order("crops.created_at") }).
		Where("id = ?", id).
		First(&plotM).Error
	if err != nil {
		if isRecordNotFound(err) {
			return nil, repository.ErrPlotNotFound
		}

		return nil, errors.Wrap(err, "failed to find plot by id")
	}

	return toPlotDomain(&plotM), nil
}

// List returns the plots visible under filter. The scope is translated into a
// WHERE clause so rows outside it never leave the database.
func (repo *plotRepository) List(ctx context.Context, filter access.PlotFilter, opts repository.PlotListOptions) ([]*entity.Plot, error) {
	query := repo.db.WithContext(ctx).Model(&model.PlotModel{})

	switch filter.Scope {
	case access.ScopeAll:
	case access.ScopeOwned:
		query = query.Where("plots.owner_id = ?", filter.UserID)
	case access.ScopeLeased:
		query = query.Where(leasedByFarmerClause, filter.UserID)
	default:
		return []*entity.Plot{}, nil
	}

	if opts.WithLeases {
		query = query.Preload("Leases")
	}
	if opts.WithCrops || opts.WithYields {
		query = query.Preload("Crops", func(db *gorm.DB) *gorm.DB { return db.Order("crops.created_at") })
	}
	if opts.WithYields {
		query = query.Preload("Crops.Yields", func(db *gorm.DB) *gorm.DB { return db.Order("yields.date") })
	}

	var plotMs []model.PlotModel
	if err := query.Order("plots.created_at").Find(&plotMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list plots")
	}

	plots := make([]*entity.Plot, 0, len(plotMs))
	for i := range plotMs {
		plots = append(plots, toPlotDomain(&plotMs[i]))
	}

	return plots, nil
}

// --- Mapper Functions ---

func toPlotDomain(data *model.PlotModel) *entity.Plot {
	if data == nil {
		return nil
	}

	plot := &entity.Plot{
		ID:        data.ID,
		Name:      data.Name,
		SizeM2:    data.SizeM2,
		OwnerID:   data.OwnerID,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Latitude != nil && data.Longitude != nil {
		plot.Location = &orb.Point{*data.Longitude, *data.Latitude}
	}

	for i := range data.Leases {
		plot.Leases = append(plot.Leases, toLeaseDomain(&data.Leases[i]))
	}
	for i := range data.Crops {
		plot.Crops = append(plot.Crops, toCropDomain(&data.Crops[i]))
	}

	return plot
}

func fromPlotDomain(data *entity.Plot) *model.PlotModel {
	if data == nil {
		return nil
	}

	plotM := &model.PlotModel{
		ID:      data.ID,
		Name:    data.Name,
		SizeM2:  data.SizeM2,
		OwnerID: data.OwnerID,
	}
	if data.Location != nil {
		lng, lat := data.Location.Lon(), data.Location.Lat()
		plotM.Longitude = &lng
		plotM.Latitude = &lat
	}

	return plotM
}
