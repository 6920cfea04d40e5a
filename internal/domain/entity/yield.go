// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Yield is a harvest record for a single crop.
type Yield struct {
	ID         uuid.UUID
	CropID     uuid.UUID
	Date       time.Time
	QuantityKg float64
	RevenueNpr *float64
	CreatedAt  time.Time
}
