package entity

// Product is a catalog item addressed by its business ID.
type Product struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	SKU           string   `json:"sku"`
	Price         float64  `json:"price"`
	OriginalPrice *float64 `json:"originalPrice,omitempty"`
	DiscountRate  float64  `json:"discountRate"`
	Images        []string `json:"images"`
	CategoryID    string   `json:"categoryId"`
}

// OnSale reports whether the product carries a positive discount.
func (p *Product) OnSale() bool {
	return p.DiscountRate > 0
}

// ProductPatch is a partial product update. Unset fields are left untouched.
type ProductPatch struct {
	Title         Optional[string]
	SKU           Optional[string]
	Price         Optional[float64]
	OriginalPrice Optional[*float64] // Set with a nil Value clears the field.
	DiscountRate  Optional[float64]
	Images        Optional[[]string]
	CategoryID    Optional[string]
}

// IsEmpty reports whether the patch changes nothing.
func (p ProductPatch) IsEmpty() bool {
	return !p.Title.Set && !p.SKU.Set && !p.Price.Set && !p.OriginalPrice.Set &&
		!p.DiscountRate.Set && !p.Images.Set && !p.CategoryID.Set
}
