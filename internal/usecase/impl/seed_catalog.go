package impl

import "storefront/internal/domain/entity"

// defaultCatalog is the data written by `storectl seed`. Each call returns fresh values
// so callers may mutate them.
type defaultCatalog struct {
	Categories []entity.CategoryNode
	Products   []*entity.Product
	Ads        []*entity.AdSlide
	Notices    []*entity.Notice
	Home       *entity.HomeSection
}

func floatPtr(v float64) *float64 {
	return &v
}

func newDefaultCatalog() *defaultCatalog {
	return &defaultCatalog{
		Categories: []entity.CategoryNode{
			{ID: "apparel", Label: "Apparel", Children: []entity.CategoryNode{
				{ID: "apparel-tops", Label: "Tops", Children: []entity.CategoryNode{}},
				{ID: "apparel-outerwear", Label: "Outerwear", Children: []entity.CategoryNode{}},
			}},
			{ID: "shoes", Label: "Shoes", Children: []entity.CategoryNode{
				{ID: "shoes-running", Label: "Running", Children: []entity.CategoryNode{}},
				{ID: "shoes-casual", Label: "Casual", Children: []entity.CategoryNode{}},
			}},
			{ID: "accessories", Label: "Accessories", Children: []entity.CategoryNode{}},
		},
		Products: []*entity.Product{
			{ID: "p-1001", Title: "Everyday Cotton Tee", SKU: "TEE-001", Price: 19.9, Images: []string{"/images/tee-white.jpg"}, CategoryID: "apparel"},
			{ID: "p-1002", Title: "Merino Crew Sweater", SKU: "SWT-014", Price: 79, OriginalPrice: floatPtr(99), DiscountRate: 0.2, Images: []string{"/images/sweater-grey.jpg"}, CategoryID: "apparel"},
			{ID: "p-1003", Title: "Packable Rain Jacket", SKU: "JKT-220", Price: 129, Images: []string{"/images/jacket-navy.jpg", "/images/jacket-navy-back.jpg"}, CategoryID: "apparel"},
			{ID: "p-2001", Title: "Tempo Road Runner", SKU: "RUN-310", Price: 119, OriginalPrice: floatPtr(149), DiscountRate: 0.2, Images: []string{"/images/runner-blue.jpg"}, CategoryID: "shoes"},
			{ID: "p-2002", Title: "Trail Runner GTX", SKU: "RUN-412", Price: 159, Images: []string{"/images/trail-green.jpg"}, CategoryID: "shoes"},
			{ID: "p-2003", Title: "Canvas Low Sneaker", SKU: "SNK-050", Price: 59, OriginalPrice: floatPtr(69), DiscountRate: 0.15, Images: []string{"/images/sneaker-white.jpg"}, CategoryID: "shoes"},
			{ID: "p-3001", Title: "Leather Card Wallet", SKU: "ACC-007", Price: 35, Images: []string{"/images/wallet-brown.jpg"}, CategoryID: "accessories"},
			{ID: "p-3002", Title: "Wool Beanie", SKU: "ACC-021", Price: 24, Images: []string{"/images/beanie-black.jpg"}, CategoryID: "accessories"},
		},
		Ads: []*entity.AdSlide{
			{ID: 1, Title: "Autumn Collection", Subtitle: "Layers for every forecast", Image: "/images/ads/autumn.jpg"},
			{ID: 2, Title: "Run Further", Subtitle: "Up to 20% off running shoes", Image: "/images/ads/running.jpg"},
			{ID: 3, Title: "Free Shipping", Subtitle: "On orders over $50", Image: "/images/ads/shipping.jpg"},
		},
		Notices: []*entity.Notice{
			{ID: 1, Text: "Orders placed before 2pm ship the same day."},
			{ID: 2, Text: "Returns are free within 30 days of delivery."},
			{ID: 3, Text: "Customer service is closed on public holidays."},
		},
		Home: &entity.HomeSection{
			RecommendedProductIDs: []string{"p-2001", "p-1002", "p-3001", "p-2003"},
			MostVisitedProductIDs: []string{"p-1001", "p-2002", "p-1003"},
			TrendingProductIDs:    []string{"p-2003", "p-3002", "p-1002"},
		},
	}
}
