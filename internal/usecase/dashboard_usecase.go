package usecase

import (
	"context"

	"farmlease/internal/domain/access"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geojson"
)

// DashboardTotals aggregates every plot visible to the caller.
type DashboardTotals struct {
	Plots       int     `json:"plots"`
	Crops       int     `json:"crops"`
	YieldKg     float64 `json:"yieldKg"`
	RevenueNpr  float64 `json:"revenueNpr"`
	TotalAreaM2 float64 `json:"totalAreaM2"`
}

// YieldPoint is the yield summed over one calendar day (yyyy-MM-dd, UTC).
type YieldPoint struct {
	Date       string  `json:"date"`
	QuantityKg float64 `json:"quantityKg"`
	RevenueNpr float64 `json:"revenueNpr"`
}

// PlotSummary is one row of the dashboard's plot table.
type PlotSummary struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SizeM2       *float64  `json:"sizeM2,omitempty"`
	CropsCount   int       `json:"cropsCount"`
	TotalYieldKg float64   `json:"totalYieldKg"`
	LeaseCount   int       `json:"leaseCount"`
}

// Dashboard is the caller-scoped overview.
type Dashboard struct {
	Totals      DashboardTotals            `json:"totals"`
	YieldSeries []YieldPoint               `json:"yieldSeries"`
	Plots       []PlotSummary              `json:"plots"`
	Map         *geojson.FeatureCollection `json:"map"`
}

// DashboardUsecase builds the dashboard.
type DashboardUsecase interface {
	GetDashboard(ctx context.Context, caller *access.Caller) (*Dashboard, error)
}
