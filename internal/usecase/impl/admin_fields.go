package impl

import (
	"math"
	"strings"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"
)

// Admin payload keys.
const (
	fieldID            = "id"
	fieldTitle         = "title"
	fieldSubtitle      = "subtitle"
	fieldImage         = "image"
	fieldText          = "text"
	fieldSKU           = "sku"
	fieldPrice         = "price"
	fieldOriginalPrice = "originalPrice"
	fieldDiscountRate  = "discountRate"
	fieldImages        = "images"
	fieldCategoryID    = "categoryId"
)

func trimmedString(v any) string {
	return strings.TrimSpace(util.ToStringOrEmpty(v))
}

func numberField(fields usecase.Fields, key string) (float64, error) {
	n, ok := util.ToNumber(fields[key])
	if !ok {
		return 0, domainerrors.Validation(key + " must be a number")
	}

	return n, nil
}

// integerID reads a numeric business id; fractional and non-numeric values are rejected.
func integerID(v any) (int64, error) {
	n, ok := util.ToNumber(v)
	if !ok || n != math.Trunc(n) {
		return 0, domainerrors.Validation("id must be an integer")
	}

	return int64(n), nil
}

// imageList keeps the non-empty string form of each entry; anything but a list yields no images.
func imageList(v any) []string {
	images := []string{}
	switch list := v.(type) {
	case []any:
		for _, item := range list {
			if s := util.ToStringOrEmpty(item); s != "" {
				images = append(images, s)
			}
		}
	case []string:
		for _, s := range list {
			if s != "" {
				images = append(images, s)
			}
		}
	}

	return images
}

// productFromFields builds a new product. id, title, price and categoryId are required;
// numeric fields accept numeric strings.
func productFromFields(fields usecase.Fields) (*entity.Product, error) {
	errRequired := domainerrors.Validation("id, title, price, categoryId are required")

	product := &entity.Product{
		ID:         trimmedString(fields[fieldID]),
		Title:      trimmedString(fields[fieldTitle]),
		SKU:        trimmedString(fields[fieldSKU]),
		Images:     imageList(fields[fieldImages]),
		CategoryID: trimmedString(fields[fieldCategoryID]),
	}
	if product.ID == "" || product.Title == "" || product.CategoryID == "" || fields[fieldPrice] == nil {
		return nil, errRequired
	}

	price, err := numberField(fields, fieldPrice)
	if err != nil {
		return nil, err
	}
	product.Price = price

	if fields[fieldOriginalPrice] != nil {
		originalPrice, err := numberField(fields, fieldOriginalPrice)
		if err != nil {
			return nil, err
		}
		product.OriginalPrice = &originalPrice
	}

	if fields[fieldDiscountRate] != nil {
		discountRate, err := numberField(fields, fieldDiscountRate)
		if err != nil {
			return nil, err
		}
		product.DiscountRate = discountRate
	}

	return product, nil
}

// productPatchFromFields maps present keys to a patch. Null clears optional fields
// (originalPrice, sku, images, discountRate) and is rejected for required ones.
func productPatchFromFields(fields usecase.Fields) (entity.ProductPatch, error) {
	var patch entity.ProductPatch

	if fields.Has(fieldTitle) {
		title := trimmedString(fields[fieldTitle])
		if title == "" {
			return patch, domainerrors.Validation("title cannot be empty")
		}
		patch.Title = entity.Some(title)
	}

	if fields.Has(fieldSKU) {
		patch.SKU = entity.Some(trimmedString(fields[fieldSKU]))
	}

	if fields.Has(fieldPrice) {
		if fields[fieldPrice] == nil {
			return patch, domainerrors.Validation("price cannot be null")
		}
		price, err := numberField(fields, fieldPrice)
		if err != nil {
			return patch, err
		}
		patch.Price = entity.Some(price)
	}

	if fields.Has(fieldOriginalPrice) {
		if fields[fieldOriginalPrice] == nil {
			patch.OriginalPrice = entity.Some[*float64](nil)
		} else {
			originalPrice, err := numberField(fields, fieldOriginalPrice)
			if err != nil {
				return patch, err
			}
			patch.OriginalPrice = entity.Some(&originalPrice)
		}
	}

	if fields.Has(fieldDiscountRate) {
		discountRate, err := numberField(fields, fieldDiscountRate)
		if err != nil {
			return patch, err
		}
		patch.DiscountRate = entity.Some(discountRate)
	}

	if fields.Has(fieldImages) {
		patch.Images = entity.Some(imageList(fields[fieldImages]))
	}

	if fields.Has(fieldCategoryID) {
		categoryID := trimmedString(fields[fieldCategoryID])
		if categoryID == "" {
			return patch, domainerrors.Validation("categoryId cannot be empty")
		}
		patch.CategoryID = entity.Some(categoryID)
	}

	return patch, nil
}

func adSlideFromFields(id int64, fields usecase.Fields) *entity.AdSlide {
	return &entity.AdSlide{
		ID:       id,
		Title:    util.ToStringOrEmpty(fields[fieldTitle]),
		Subtitle: util.ToStringOrEmpty(fields[fieldSubtitle]),
		Image:    util.ToStringOrEmpty(fields[fieldImage]),
	}
}
