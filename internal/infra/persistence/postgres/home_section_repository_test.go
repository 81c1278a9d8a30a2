package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func createTestDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=storefront dbname=storefront sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	require.NoError(t, err)

	return db
}

func TestHomeSectionRepository_RemoveProductIDIsOneStatement(t *testing.T) {
	repo := &homeSectionRepository{db: createTestDryRunDB(t)}

	stmt := repo.removeProductIDQuery(repo.db, "p-2").Statement
	sql := stmt.SQL.String()

	assert.Contains(t, sql, `UPDATE "home_sections" SET`)
	for _, column := range []string{"recommended_product_ids", "most_visited_product_ids", "trending_product_ids"} {
		assert.Contains(t, sql, "array_remove("+column+", $")
		assert.Contains(t, sql, "= ANY("+column+")")
	}
	assert.Contains(t, sql, "now()")
	assert.NotContains(t, sql, "SELECT")

	var idArgs int
	for _, v := range stmt.Vars {
		if v == "p-2" {
			idArgs++
		}
	}
	assert.Equal(t, 6, idArgs)
	assert.Contains(t, stmt.Vars, "default")
}
