package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PlotModel mirrors the 'plots' table. Latitude and Longitude are stored as
// plain columns so the schema also runs on SQLite.
type PlotModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(200);not null"`
	SizeM2    *float64
	Latitude  *float64
	Longitude *float64
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Owner  *UserModel   `gorm:"foreignKey:OwnerID"`
	Crops  []CropModel  `gorm:"foreignKey:PlotID"`
	Leases []LeaseModel `gorm:"foreignKey:PlotID"`
}

// TableName explicitly sets the table name for GORM.
func (PlotModel) TableName() string {
	return "plots"
}

func (m *PlotModel) BeforeCreate(*gorm.DB) error {
	m.ID = ensureID(m.ID)

	return nil
}

// LeaseModel mirrors the 'leases' table. A farmer holds at most one lease per plot.
type LeaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlotID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leases_plot_farmer"`
	FarmerID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leases_plot_farmer;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LeaseModel) TableName() string {
	return "leases"
}

func (m *LeaseModel) BeforeCreate(*gorm.DB) error {
	m.ID = ensureID(m.ID)

	return nil
}
