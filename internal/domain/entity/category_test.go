package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeCategoryTree_RendersEmptyChildren(t *testing.T) {
	tree := []CategoryNode{
		{ID: "men", Label: "Men", Children: []CategoryNode{{ID: "men-shoes", Label: "Shoes"}}},
		{ID: "sale", Label: "Sale"},
	}

	out, err := json.Marshal(NormalizeCategoryTree(tree))
	require.NoError(t, err)

	assert.JSONEq(t, `[
		{"id":"men","label":"Men","children":[{"id":"men-shoes","label":"Shoes","children":[]}]},
		{"id":"sale","label":"Sale","children":[]}
	]`, string(out))
}

func TestValidateCategoryTree(t *testing.T) {
	valid := []CategoryNode{
		{ID: "a", Label: "A", Children: []CategoryNode{{ID: "a1", Label: "A1"}}},
	}
	_, ok := ValidateCategoryTree(valid)
	assert.True(t, ok)

	invalid := []CategoryNode{
		{ID: "a", Label: "A", Children: []CategoryNode{{ID: "a1"}}},
	}
	bad, ok := ValidateCategoryTree(invalid)
	assert.False(t, ok)
	assert.Equal(t, "a1", bad.ID)
}
