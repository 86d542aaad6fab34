package qrcode

import (
	"testing"

	"weightwise/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func qrConfig(size int, level string) *config.Config {
	cfg := &config.Config{
		QRCode: &config.QRCodeConfig{
			Size:                 size,
			ErrorCorrectionLevel: level,
		},
	}
	cfg.HTTP.BaseURL = "http://localhost:5000"

	return cfg
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		size                 int
		errorCorrectionLevel string
	}{
		{"Low error correction", 256, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 256, "H"},
		{"Default error correction", 256, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, tt.errorCorrectionLevel))
			assert.NotNil(t, service)
		})
	}
}

func TestQRCodeService_GenerateBusinessQR(t *testing.T) {
	service := NewQRCodeService(qrConfig(256, "M"))
	businessID := uuid.New()

	qrBytes, err := service.GenerateBusinessQR(businessID)
	require.NoError(t, err)
	assert.NotEmpty(t, qrBytes)

	// Verify it's a valid PNG (starts with PNG magic number)
	assert.Equal(t, byte(0x89), qrBytes[0])
	assert.Equal(t, byte(0x50), qrBytes[1])
	assert.Equal(t, byte(0x4E), qrBytes[2])
	assert.Equal(t, byte(0x47), qrBytes[3])
}

func TestQRCodeService_GenerateBusinessQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewQRCodeService(qrConfig(tt.size, "M"))
			businessID := uuid.New()

			qrBytes, err := service.GenerateBusinessQR(businessID)
			require.NoError(t, err)
			assert.NotEmpty(t, qrBytes)
		})
	}
}
