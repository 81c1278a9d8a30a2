package entity

import (
	"storefront/internal/util"
)

// CartItem is one cart line. Title, price and SKU are snapshots taken when the cart was written.
type CartItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	SKU       string  `json:"sku"`
	Quantity  int     `json:"quantity"`
}

// NormalizeCartItems coerces loosely typed client lines into CartItems.
// Non-object entries and lines without a product id are dropped; quantity is at least 1.
func NormalizeCartItems(raw []any) []CartItem {
	items := make([]CartItem, 0, len(raw))
	for _, entry := range raw {
		fields, ok := entry.(map[string]any)
		if !ok {
			continue
		}

		productID := fields["productId"]
		if util.IsFalsy(productID) {
			productID = fields["id"]
		}

		item := CartItem{
			ProductID: util.ToStringOrEmpty(productID),
			Title:     util.ToStringOrEmpty(fields["title"]),
			SKU:       util.ToStringOrEmpty(fields["sku"]),
		}
		if item.ProductID == "" {
			continue
		}

		if price, ok := util.ToNumber(fields["price"]); ok {
			item.Price = price
		}

		item.Quantity = 1
		if quantity, ok := util.ToInt(fields["quantity"]); ok && quantity > 1 {
			item.Quantity = quantity
		}

		items = append(items, item)
	}

	return items
}
