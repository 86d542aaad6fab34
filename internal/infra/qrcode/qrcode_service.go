// Package qrcode renders QR codes for business pages.
package qrcode

import (
	"fmt"
	"strings"

	"weightwise/config"
	"weightwise/internal/domain/service"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

type qrcodeService struct {
	baseURL              string
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	// Set error correction level
	var level qrcode.RecoveryLevel
	switch qrCfg.ErrorCorrectionLevel {
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

	size := qrCfg.Size
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		baseURL:              strings.TrimRight(cfg.HTTP.BaseURL, "/"),
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateBusinessQR generates a PNG QR code encoding the business page URL
func (s *qrcodeService) GenerateBusinessQR(businessID uuid.UUID) ([]byte, error) {
	pageURL := fmt.Sprintf("%s/businesses/%s", s.baseURL, businessID)

	qrCode, err := qrcode.New(pageURL, s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
