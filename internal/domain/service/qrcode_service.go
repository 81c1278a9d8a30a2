package service

// QRCodeService renders share codes for storefront pages.
type QRCodeService interface {
	// GenerateProductQR returns a PNG QR code that links to the product page.
	GenerateProductQR(productID string) ([]byte, error)

	// ParseProductQR extracts the product id from a link produced by GenerateProductQR.
	ParseProductQR(content string) (string, error)
}
