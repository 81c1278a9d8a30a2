package postgres

import (
	"context"
	"os"
	"strings"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const testDatabaseDSNEnv = "STOREFRONT_TEST_DATABASE_DSN"

// createTestTx opens the database named by STOREFRONT_TEST_DATABASE_DSN, migrates it and
// returns a transaction that is rolled back when the test ends.
func createTestTx(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv(testDatabaseDSNEnv)
	if dsn == "" {
		t.Skipf("%s not set", testDatabaseDSNEnv)
	}

	db, err := gorm.Open(pgdriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	tx := db.Begin()
	require.NoError(t, tx.Error)
	t.Cleanup(func() {
		tx.Rollback()
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return tx
}

func TestProductRepository_RoundTrip(t *testing.T) {
	tx := createTestTx(t)
	repo := NewProductRepository(tx)
	ctx := context.Background()

	original := 120.0
	longTitle := strings.Repeat("t", 400)
	require.NoError(t, repo.Create(ctx, &entity.Product{
		ID:            "P1",
		Title:         longTitle,
		SKU:           "SKU-1",
		Price:         99.5,
		OriginalPrice: &original,
		DiscountRate:  0.17,
		Images:        []string{"a.png", "b.png"},
		CategoryID:    "men",
	}))

	got, err := repo.FindByID(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, longTitle, got.Title)
	assert.Equal(t, []string{"a.png", "b.png"}, got.Images)
	require.NotNil(t, got.OriginalPrice)
	assert.InDelta(t, 120.0, *got.OriginalPrice, 1e-9)

	err = repo.Create(ctx, &entity.Product{ID: "P1", Title: "dup"})
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadyExists)

	updated, err := repo.Update(ctx, "P1", entity.ProductPatch{
		Price:         entity.Some(80.0),
		OriginalPrice: entity.Some[*float64](nil),
	})
	require.NoError(t, err)
	assert.InDelta(t, 80.0, updated.Price, 1e-9)
	assert.Nil(t, updated.OriginalPrice)
	assert.Equal(t, longTitle, updated.Title)
	assert.Equal(t, "SKU-1", updated.SKU)

	_, err = repo.Update(ctx, "missing", entity.ProductPatch{Price: entity.Some(1.0)})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestHomeSectionRepository_RemoveProductID(t *testing.T) {
	tx := createTestTx(t)
	repo := NewHomeSectionRepository(tx)
	ctx := context.Background()

	_, err := repo.Replace(ctx, &entity.HomeSection{
		RecommendedProductIDs: []string{"p-1", "p-2"},
		MostVisitedProductIDs: []string{"p-2"},
		TrendingProductIDs:    []string{"p-3"},
	})
	require.NoError(t, err)

	removed, err := repo.RemoveProductID(ctx, "p-2")
	require.NoError(t, err)
	assert.True(t, removed)

	section, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"p-1"}, section.RecommendedProductIDs)
	assert.Equal(t, []string{}, section.MostVisitedProductIDs)
	assert.Equal(t, []string{"p-3"}, section.TrendingProductIDs)

	removed, err = repo.RemoveProductID(ctx, "p-9")
	require.NoError(t, err)
	assert.False(t, removed)
}
