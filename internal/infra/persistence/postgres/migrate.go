package postgres

import (
	"context"

	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or alters every storefront table. It only adds; columns are never dropped.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate storefront schema")
	}

	return nil
}
