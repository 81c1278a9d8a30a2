// Package export renders catalog data as spreadsheets for admins.
package export

import (
	"io"
	"strings"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"
	"storefront/internal/errors"

	"github.com/tealeg/xlsx"
)

const (
	productSheetName = "Products"
	xlsxContentType  = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	productsFileName = "products.xlsx"
	imageSeparator   = ","
)

var productHeaders = []string{
	"ID", "Title", "SKU", "Price", "OriginalPrice", "DiscountRate", "CategoryID", "Images",
}

type xlsxProductExporter struct{}

// NewXLSXProductExporter returns an exporter that writes one sheet with a header row.
func NewXLSXProductExporter() service.ProductExporter {
	return &xlsxProductExporter{}
}

func (e *xlsxProductExporter) ContentType() string {
	return xlsxContentType
}

func (e *xlsxProductExporter) FileName() string {
	return productsFileName
}

func (e *xlsxProductExporter) Export(w io.Writer, products []*entity.Product) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet(productSheetName)
	if err != nil {
		return errors.Wrap(err, "failed to create products sheet")
	}

	header := sheet.AddRow()
	for _, h := range productHeaders {
		header.AddCell().SetValue(h)
	}

	for _, p := range products {
		if p == nil {
			continue
		}

		row := sheet.AddRow()
		row.AddCell().SetValue(p.ID)
		row.AddCell().SetValue(p.Title)
		row.AddCell().SetValue(p.SKU)
		row.AddCell().SetValue(p.Price)
		// Blank cell when there is no original price.
		if p.OriginalPrice != nil {
			row.AddCell().SetValue(*p.OriginalPrice)
		} else {
			row.AddCell().SetValue("")
		}
		row.AddCell().SetValue(p.DiscountRate)
		row.AddCell().SetValue(p.CategoryID)
		row.AddCell().SetValue(strings.Join(p.Images, imageSeparator))
	}

	if err := file.Write(w); err != nil {
		return errors.Wrap(err, "failed to write products workbook")
	}

	return nil
}
