package entity

// HomeSectionKey is the fixed key of the single stored home section record.
const HomeSectionKey = "default"

// HomeSection holds the curated product id lists for the storefront home page.
// The order of each list is the display order.
type HomeSection struct {
	RecommendedProductIDs []string `json:"recommendedProductIds"`
	MostVisitedProductIDs []string `json:"mostVisitedProductIds"`
	TrendingProductIDs    []string `json:"trendingProductIds"`
}

// AllProductIDs concatenates the three lists, keeping duplicates.
func (h *HomeSection) AllProductIDs() []string {
	if h == nil {
		return nil
	}

	ids := make([]string, 0, len(h.RecommendedProductIDs)+len(h.MostVisitedProductIDs)+len(h.TrendingProductIDs))
	ids = append(ids, h.RecommendedProductIDs...)
	ids = append(ids, h.MostVisitedProductIDs...)
	ids = append(ids, h.TrendingProductIDs...)

	return ids
}

// HomeFeed is the resolved home page: each list holds full products in curated order.
type HomeFeed struct {
	Recommended []*Product `json:"recommended"`
	MostVisited []*Product `json:"mostVisited"`
	Trending    []*Product `json:"trending"`
}
