package listing

import (
	"math/rand/v2"
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func product(id string, price float64) *entity.Product {
	return &entity.Product{ID: id, Title: "Product " + id, Price: price}
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}

	return out
}

func TestApply_PriceAscScenario(t *testing.T) {
	products := []*entity.Product{product("A", 30), product("B", 10), product("C", 20)}

	got := Apply(products, Query{Sort: SortPriceAsc}, nil)

	assert.Equal(t, []string{"B", "C", "A"}, ids(got))
	assert.Equal(t, []string{"A", "B", "C"}, ids(products), "input must not be reordered")
}

func TestApply_RecommendationScenario(t *testing.T) {
	products := []*entity.Product{product("A", 1), product("B", 2), product("C", 3)}

	got := Apply(products, Query{Sort: SortRecommendation}, []string{"C", "A"})

	assert.Equal(t, []string{"C", "A", "B"}, ids(got))
}

func TestApply_RecommendationKeepsUnlistedOrder(t *testing.T) {
	products := []*entity.Product{
		product("U1", 5), product("L2", 1), product("U2", 5), product("L1", 1), product("U3", 5),
	}

	got := Apply(products, Query{Sort: SortRecommendation}, []string{"L1", "missing", "L2"})

	assert.Equal(t, []string{"L1", "L2", "U1", "U2", "U3"}, ids(got))
}

func TestApply_RecommendationWithEmptyOrderIsNoop(t *testing.T) {
	products := []*entity.Product{product("B", 2), product("A", 1)}

	got := Apply(products, Query{Sort: SortRecommendation}, nil)

	assert.Equal(t, []string{"B", "A"}, ids(got))
}

func TestApply_UnknownSortKeepsFilteredOrder(t *testing.T) {
	products := []*entity.Product{product("B", 2), product("A", 1)}

	got := Apply(products, Query{Sort: "newest"}, []string{"A"})

	assert.Equal(t, []string{"B", "A"}, ids(got))
}

func TestApply_Filters(t *testing.T) {
	products := []*entity.Product{
		{ID: "1", Title: "Red Shirt", SKU: "RS-01", Price: 10, CategoryID: "men", DiscountRate: 0.2},
		{ID: "2", Title: "Blue Jeans", SKU: "BJ-02", Price: 40, CategoryID: "men"},
		{ID: "3", Title: "Summer Dress", SKU: "shirt-dress", Price: 30, CategoryID: "women", DiscountRate: 0.1},
		{ID: "4", Title: "Hat", SKU: "H-04", Price: 5, CategoryID: "women"},
	}

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "no filters", query: Query{}, want: []string{"1", "2", "3", "4"}},
		{name: "text matches title or sku case-insensitively", query: Query{Q: "  SHIRT "}, want: []string{"1", "3"}},
		{name: "blank text is ignored", query: Query{Q: "   "}, want: []string{"1", "2", "3", "4"}},
		{name: "category exact match", query: Query{Category: "women"}, want: []string{"3", "4"}},
		{name: "category is case sensitive", query: Query{Category: "Women"}, want: []string{}},
		{name: "on sale literal flag", query: Query{OnSale: "1"}, want: []string{"1", "3"}},
		{name: "on sale other values ignored", query: Query{OnSale: "true"}, want: []string{"1", "2", "3", "4"}},
		{name: "combined", query: Query{Q: "shirt", Category: "men", OnSale: "1"}, want: []string{"1"}},
		{name: "combined with sort", query: Query{Category: "women", Sort: SortPriceDesc}, want: []string{"3", "4"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Apply(products, tt.query, nil)))
		})
	}
}

func TestApply_PriceSortsAreMonotonicAndStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for round := 0; round < 50; round++ {
		products := make([]*entity.Product, 0, 30)
		for i := 0; i < 30; i++ {
			products = append(products, &entity.Product{
				ID:    string(rune('a' + i%26)) + string(rune('0'+i/26)),
				Price: float64(rng.IntN(5)),
			})
		}

		asc := Apply(products, Query{Sort: SortPriceAsc}, nil)
		desc := Apply(products, Query{Sort: SortPriceDesc}, nil)
		require.Len(t, asc, len(products))
		require.Len(t, desc, len(products))

		position := make(map[string]int, len(products))
		for i, p := range products {
			position[p.ID] = i
		}

		for i := 1; i < len(asc); i++ {
			assert.LessOrEqual(t, asc[i-1].Price, asc[i].Price)
			if asc[i-1].Price == asc[i].Price {
				assert.Less(t, position[asc[i-1].ID], position[asc[i].ID])
			}
			assert.GreaterOrEqual(t, desc[i-1].Price, desc[i].Price)
			if desc[i-1].Price == desc[i].Price {
				assert.Less(t, position[desc[i-1].ID], position[desc[i].ID])
			}
		}
	}
}

func TestResolveOrderedIDs(t *testing.T) {
	products := []*entity.Product{product("Z", 1), product("X", 2)}

	got := ResolveOrderedIDs([]string{"X", "Y", "Z"}, products)

	assert.Equal(t, []string{"X", "Z"}, ids(got))
}

func TestResolveOrderedIDs_NeverLongerThanIDs(t *testing.T) {
	products := []*entity.Product{product("A", 1), product("B", 2), product("C", 3)}

	cases := [][]string{
		nil,
		{"A"},
		{"C", "A", "C"},
		{"missing", "B"},
	}

	for _, idList := range cases {
		got := ResolveOrderedIDs(idList, products)
		assert.LessOrEqual(t, len(got), len(idList))

		// Output is the subsequence of idList that has a match.
		var want []string
		for _, id := range idList {
			if id == "A" || id == "B" || id == "C" {
				want = append(want, id)
			}
		}
		if want == nil {
			want = []string{}
		}
		assert.Equal(t, want, ids(got))
	}
}

func TestParseIDList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, ParseIDList(" a, b,,c ,"))
	assert.Empty(t, ParseIDList(""))
	assert.Empty(t, ParseIDList(" , "))
}
