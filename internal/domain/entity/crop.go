// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Crop is a planting record on a single plot.
type Crop struct {
	ID           uuid.UUID
	PlotID       uuid.UUID
	Name         string
	Variety      string
	PlantingDate *time.Time
	Plot         *Plot    // Owning plot, loaded for permission checks.
	Yields       []*Yield // Populated only when requested from the repository.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TotalYieldKg sums the quantities of the loaded yields.
func (c *Crop) TotalYieldKg() float64 {
	var total float64
	for _, y := range c.Yields {
		total += y.QuantityKg
	}

	return total
}
