package service

import (
	"io"

	"storefront/internal/domain/entity"
)

// ProductExporter writes a product list as a downloadable document.
type ProductExporter interface {
	// ContentType is the MIME type of the exported document.
	ContentType() string

	// FileName is the suggested download name.
	FileName() string

	Export(w io.Writer, products []*entity.Product) error
}
