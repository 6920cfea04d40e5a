package qrcode

import (
	"strings"

	"farmlease/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const plotPathSegment = "/plots/"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that links to baseURL/plots/<id>.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "/"),
	}
}

// PlotURL is the payload encoded for a plot.
func (s *qrcodeService) PlotURL(plotID uuid.UUID) string {
	return s.baseURL + plotPathSegment + plotID.String()
}

// GeneratePlotQR renders the plot URL as a PNG.
func (s *qrcodeService) GeneratePlotQR(plotID uuid.UUID) ([]byte, error) {
	qrCode, err := qrcode.New(s.PlotURL(plotID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParsePlotQR returns the plot ID from a payload produced by GeneratePlotQR.
func (s *qrcodeService) ParsePlotQR(payload string) (uuid.UUID, error) {
	idx := strings.LastIndex(payload, plotPathSegment)
	if idx < 0 {
		return uuid.Nil, errors.Errorf("not a plot QR payload: %q", payload)
	}

	plotID, err := uuid.Parse(payload[idx+len(plotPathSegment):])
	if err != nil {
		return uuid.Nil, errors.Wrap(err, "failed to parse plot ID")
	}

	return plotID, nil
}
