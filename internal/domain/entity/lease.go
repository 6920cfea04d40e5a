// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lease grants a farmer operational rights over a plot's crops and yields.
// There is no expiry: the grant lasts as long as the row exists.
type Lease struct {
	ID        uuid.UUID
	PlotID    uuid.UUID
	FarmerID  uuid.UUID
	CreatedAt time.Time
}
