package service

import (
	"github.com/google/uuid"
)

// QRCodeService renders QR codes for plot signage.
type QRCodeService interface {
	// GeneratePlotQR returns a PNG QR code linking to the plot's page.
	GeneratePlotQR(plotID uuid.UUID) ([]byte, error)

	// ParsePlotQR extracts the plot ID from the payload encoded by GeneratePlotQR.
	ParsePlotQR(payload string) (uuid.UUID, error)
}
