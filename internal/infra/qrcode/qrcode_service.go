package qrcode

import (
	"net/url"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize         = 256
	productIDQueryParam = "id"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a QR code service that encodes links of the form <baseURL>?id=<productID>.
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
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimRight(baseURL, "?"),
	}
}

// NewFromConfig builds the service from the qrcode config section.
func NewFromConfig(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return NewQRCodeService(defaultSize, "M", "")
	}

	return NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

// GenerateProductQR renders a PNG linking to the product page.
func (s *qrcodeService) GenerateProductQR(productID string) ([]byte, error) {
	if productID == "" {
		return nil, errors.New("product id is required")
	}

	qrCode, err := qrcode.New(s.productLink(productID), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseProductQR accepts only links under the configured base URL.
func (s *qrcodeService) ParseProductQR(content string) (string, error) {
	link, err := url.Parse(content)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code link")
	}

	query := link.Query()
	link.RawQuery = ""
	link.Fragment = ""
	if link.String() != s.baseURL {
		return "", errors.Errorf("QR code does not link to a product page: %s", content)
	}

	productID := query.Get(productIDQueryParam)
	if productID == "" {
		return "", errors.New("QR code link has no product id")
	}

	return productID, nil
}

func (s *qrcodeService) productLink(productID string) string {
	return s.baseURL + "?" + url.Values{productIDQueryParam: {productID}}.Encode()
}
