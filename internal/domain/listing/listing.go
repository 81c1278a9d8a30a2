// Package listing filters and orders catalog products for storefront queries.
// Every function here is pure: inputs are never mutated and no I/O happens.
package listing

import (
	"cmp"
	"slices"
	"strings"

	"storefront/internal/domain/entity"
)

// Sort keys accepted by Apply. Any other value leaves the filtered order untouched.
const (
	SortPriceAsc       = "price_asc"
	SortPriceDesc      = "price_desc"
	SortRecommendation = "recommendation"
)

// onSaleFlag is the only value of Query.OnSale that enables the on-sale filter.
const onSaleFlag = "1"

// Query holds the raw listing parameters as received from the client.
type Query struct {
	Q        string // free text matched against title and SKU
	Category string // exact category id
	OnSale   string // "1" keeps discounted products only
	Sort     string
}

// Apply runs the listing pipeline: text filter, category filter, on-sale filter, then sort.
// All sorts are stable so equal keys keep their filtered order.
func Apply(products []*entity.Product, q Query, recommendedOrder []string) []*entity.Product {
	result := make([]*entity.Product, 0, len(products))

	term := strings.ToLower(strings.TrimSpace(q.Q))
	for _, p := range products {
		if p == nil {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if q.Category != "" && p.CategoryID != q.Category {
			continue
		}
		if q.OnSale == onSaleFlag && !p.OnSale() {
			continue
		}
		result = append(result, p)
	}

	switch q.Sort {
	case SortPriceAsc:
		slices.SortStableFunc(result, func(a, b *entity.Product) int {
			return cmp.Compare(a.Price, b.Price)
		})
	case SortPriceDesc:
		slices.SortStableFunc(result, func(a, b *entity.Product) int {
			return cmp.Compare(b.Price, a.Price)
		})
	case SortRecommendation:
		sortByRecommendation(result, recommendedOrder)
	}

	return result
}

func matchesTerm(p *entity.Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Title), term) ||
		strings.Contains(strings.ToLower(p.SKU), term)
}

// sortByRecommendation moves listed products to the front in list order.
// Unlisted products follow in their current order. An empty list is a no-op.
func sortByRecommendation(products []*entity.Product, order []string) {
	if len(order) == 0 {
		return
	}

	rank := make(map[string]int, len(order))
	for i, id := range order {
		// First occurrence wins, matching a positional lookup.
		if _, seen := rank[id]; !seen {
			rank[id] = i
		}
	}

	slices.SortStableFunc(products, func(a, b *entity.Product) int {
		i, aListed := rank[a.ID]
		j, bListed := rank[b.ID]

		switch {
		case !aListed && !bListed:
			return 0
		case !aListed:
			return 1
		case !bListed:
			return -1
		default:
			return cmp.Compare(i, j)
		}
	})
}

// ResolveOrderedIDs returns the products named by ids, in ids order.
// Ids without a matching product are dropped; a repeated id yields the product again.
func ResolveOrderedIDs(ids []string, products []*entity.Product) []*entity.Product {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		if p != nil {
			byID[p.ID] = p
		}
	}

	resolved := make([]*entity.Product, 0, len(ids))
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			resolved = append(resolved, p)
		}
	}

	return resolved
}

// ParseIDList splits a comma separated id parameter, trimming entries and dropping blanks.
func ParseIDList(raw string) []string {
	parts := strings.Split(raw, ",")
	ids := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			ids = append(ids, id)
		}
	}

	return ids
}
