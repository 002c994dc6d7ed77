package service

import "github.com/google/uuid"

// QRCodeService generates the storefront QR code handed to a vendor when the
// shop is approved. The code encodes the public shop page URL.
type QRCodeService interface {
	// GenerateShopQR renders a PNG QR code for the given shop.
	GenerateShopQR(shopID uuid.UUID) ([]byte, error)
}
