package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CropModel mirrors the 'crops' table.
type CropModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	PlotID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Variety      string    `gorm:"type:varchar(200)"`
	PlantingDate *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Plot   *PlotModel   `gorm:"foreignKey:PlotID"`
	Yields []YieldModel `gorm:"foreignKey:CropID"`
}

// TableName explicitly sets the table name for GORM.
func (CropModel) TableName() string {
	return "crops"
}

func (m *CropModel) BeforeCreate(*gorm.DB) error {
	m.ID = ensureID(m.ID)

	return nil
}

// YieldModel mirrors the 'yields' table.
type YieldModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CropID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Date       time.Time `gorm:"not null;index"`
	QuantityKg float64   `gorm:"not null"`
	RevenueNpr *float64
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (YieldModel) TableName() string {
	return "yields"
}

func (m *YieldModel) BeforeCreate(*gorm.DB) error {
	m.ID = ensureID(m.ID)

	return nil
}
