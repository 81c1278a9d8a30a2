package model

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// cappedColumns are the only varchar columns; clients never write them directly.
var cappedColumns = map[string]bool{
	"users.role":         true,
	"category_trees.key": true,
	"home_sections.key":  true,
}

func TestModels_ClientWrittenStringsAreUncapped(t *testing.T) {
	cache := &sync.Map{}

	for _, m := range All() {
		s, err := schema.Parse(m, cache, schema.NamingStrategy{})
		require.NoError(t, err)

		for _, field := range s.Fields {
			columnType := strings.ToLower(field.TagSettings["TYPE"])
			if !strings.HasPrefix(columnType, "varchar") {
				continue
			}
			name := s.Table + "." + field.DBName
			assert.True(t, cappedColumns[name], "%s is %s", name, columnType)
		}
	}
}

func TestModels_CatalogTextColumns(t *testing.T) {
	cache := &sync.Map{}
	product, err := schema.Parse(&ProductModel{}, cache, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, name := range []string{"product_id", "title", "sku", "category_id"} {
		field := product.LookUpField(name)
		require.NotNil(t, field, name)
		assert.Equal(t, "text", field.TagSettings["TYPE"], name)
	}
}
