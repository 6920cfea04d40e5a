package postgres

import (
	"farmlease/internal/errors"
	"farmlease/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the service owns. Order matters
// for the foreign keys.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.AuthenticationModel{},
		&model.RefreshTokenModel{},
		&model.PlotModel{},
		&model.LeaseModel{},
		&model.CropModel{},
		&model.YieldModel{},
	); err != nil {
		return errors.Wrap(err, "failed to migrate schema")
	}

	return nil
}
