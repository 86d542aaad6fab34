package service

import "github.com/google/uuid"

// QRCodeService renders QR codes pointing at a business's public page.
type QRCodeService interface {
	// GenerateBusinessQR returns a PNG QR code encoding the business page URL.
	GenerateBusinessQR(businessID uuid.UUID) ([]byte, error)
}
