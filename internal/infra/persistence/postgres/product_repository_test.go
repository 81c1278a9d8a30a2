package postgres

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestProductPatchColumns(t *testing.T) {
	original := 80.0

	tests := []struct {
		name  string
		patch entity.ProductPatch
		want  map[string]any
	}{
		{
			name:  "empty patch",
			patch: entity.ProductPatch{},
			want:  map[string]any{},
		},
		{
			name: "scalar fields",
			patch: entity.ProductPatch{
				Title: entity.Some("New"),
				Price: entity.Some(9.5),
			},
			want: map[string]any{"title": "New", "price": 9.5},
		},
		{
			name:  "original price set",
			patch: entity.ProductPatch{OriginalPrice: entity.Some(&original)},
			want:  map[string]any{"original_price": 80.0},
		},
		{
			name:  "original price cleared",
			patch: entity.ProductPatch{OriginalPrice: entity.Some[*float64](nil)},
			want:  map[string]any{"original_price": nil},
		},
		{
			name:  "nil images become empty array",
			patch: entity.ProductPatch{Images: entity.Some[[]string](nil)},
			want:  map[string]any{"images": pq.StringArray{}},
		},
		{
			name: "category and sku",
			patch: entity.ProductPatch{
				CategoryID: entity.Some("shoes"),
				SKU:        entity.Some(""),
			},
			want: map[string]any{"category_id": "shoes", "sku": ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, productPatchColumns(tt.patch))
		})
	}
}

func TestProductMappingRoundTrip(t *testing.T) {
	product := &entity.Product{ID: "p1", Title: "Runner", Price: 10, CategoryID: "shoes"}

	got := toProductDomain(fromProductDomain(product))

	assert.Equal(t, []string{}, got.Images)
	got.Images = nil
	assert.Equal(t, product, got)
}
