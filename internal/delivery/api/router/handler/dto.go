package handler

import (
	"time"

	"farmlease/internal/domain/entity"

	"github.com/google/uuid"
)

// UserResponse is the public view of an account.
type UserResponse struct {
	ID        uuid.UUID   `json:"id"`
	Email     string      `json:"email"`
	Name      string      `json:"name"`
	Role      entity.Role `json:"role"`
	CreatedAt time.Time   `json:"createdAt"`
}

// TokenResponse carries a token pair and, after login, the account.
type TokenResponse struct {
	AccessToken  string        `json:"accessToken"`
	RefreshToken string        `json:"refreshToken"`
	User         *UserResponse `json:"user,omitempty"`
}

// LocationResponse is a WGS84 coordinate.
type LocationResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PlotResponse is a plot with whatever relations were loaded.
type PlotResponse struct {
	ID        uuid.UUID         `json:"id"`
	Name      string            `json:"name"`
	SizeM2    *float64          `json:"sizeM2"`
	Location  *LocationResponse `json:"location"`
	OwnerID   uuid.UUID         `json:"ownerId"`
	Crops     []CropResponse    `json:"crops"`
	Leases    []LeaseResponse   `json:"leases"`
	CreatedAt time.Time         `json:"createdAt"`
}

// LeaseResponse is a farmer's grant on a plot.
type LeaseResponse struct {
	ID        uuid.UUID `json:"id"`
	PlotID    uuid.UUID `json:"plotId"`
	FarmerID  uuid.UUID `json:"farmerId"`
	CreatedAt time.Time `json:"createdAt"`
}

// CropResponse is a planting record.
type CropResponse struct {
	ID           uuid.UUID       `json:"id"`
	PlotID       uuid.UUID       `json:"plotId"`
	Name         string          `json:"name"`
	Variety      string          `json:"variety,omitempty"`
	PlantingDate *time.Time      `json:"plantingDate"`
	Yields       []YieldResponse `json:"yields,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

// YieldResponse is a harvest record.
type YieldResponse struct {
	ID         uuid.UUID `json:"id"`
	CropID     uuid.UUID `json:"cropId"`
	Date       time.Time `json:"date"`
	QuantityKg float64   `json:"quantityKg"`
	RevenueNpr *float64  `json:"revenueNpr"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toUserResponse(user *entity.User) *UserResponse {
	if user == nil {
		return nil
	}

	return &UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}

func toPlotResponse(plot *entity.Plot) PlotResponse {
	resp := PlotResponse{
		ID:        plot.ID,
		Name:      plot.Name,
		SizeM2:    plot.SizeM2,
		OwnerID:   plot.OwnerID,
		Crops:     make([]CropResponse, 0, len(plot.Crops)),
		Leases:    make([]LeaseResponse, 0, len(plot.Leases)),
		CreatedAt: plot.CreatedAt,
	}
	if plot.Location != nil {
		resp.Location = &LocationResponse{Lat: plot.Location.Lat(), Lng: plot.Location.Lon()}
	}
	for _, crop := range plot.Crops {
		resp.Crops = append(resp.Crops, toCropResponse(crop))
	}
	for _, lease := range plot.Leases {
		resp.Leases = append(resp.Leases, toLeaseResponse(lease))
	}

	return resp
}

func toPlotResponses(plots []*entity.Plot) []PlotResponse {
	out := make([]PlotResponse, 0, len(plots))
	for _, plot := range plots {
		out = append(out, toPlotResponse(plot))
	}

	return out
}

func toLeaseResponse(lease *entity.Lease) LeaseResponse {
	return LeaseResponse{
		ID:        lease.ID,
		PlotID:    lease.PlotID,
		FarmerID:  lease.FarmerID,
		CreatedAt: lease.CreatedAt,
	}
}

func toCropResponse(crop *entity.Crop) CropResponse {
	resp := CropResponse{
		ID:           crop.ID,
		PlotID:       crop.PlotID,
		Name:         crop.Name,
		Variety:      crop.Variety,
		PlantingDate: crop.PlantingDate,
		CreatedAt:    crop.CreatedAt,
	}
	for _, y := range crop.Yields {
		resp.Yields = append(resp.Yields, toYieldResponse(y))
	}

	return resp
}

func toYieldResponse(y *entity.Yield) YieldResponse {
	return YieldResponse{
		ID:         y.ID,
		CropID:     y.CropID,
		Date:       y.Date,
		QuantityKg: y.QuantityKg,
		RevenueNpr: y.RevenueNpr,
		CreatedAt:  y.CreatedAt,
	}
}
