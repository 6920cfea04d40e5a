// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Plot is a parcel of land owned by exactly one user.
type Plot struct {
	ID        uuid.UUID
	Name      string
	SizeM2    *float64   // Optional, non-negative.
	Location  *orb.Point // Optional; X is longitude, Y is latitude.
	OwnerID   uuid.UUID
	Crops     []*Crop  // Populated only when requested from the repository.
	Leases    []*Lease // May be pre-filtered to a single farmer by the repository.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasLeaseFor reports whether at least one loaded lease belongs to farmerID.
func (p *Plot) HasLeaseFor(farmerID uuid.UUID) bool {
	for _, lease := range p.Leases {
		if lease != nil && lease.FarmerID == farmerID {
			return true
		}
	}

	return false
}

// TotalYieldKg sums the quantities of every loaded yield of every loaded crop.
func (p *Plot) TotalYieldKg() float64 {
	var total float64
	for _, crop := range p.Crops {
		total += crop.TotalYieldKg()
	}

	return total
}
