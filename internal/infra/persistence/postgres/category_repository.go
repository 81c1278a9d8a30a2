package postgres

import (
	"context"
	"encoding/json"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type categoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository returns a GORM-backed repository.CategoryRepository.
func NewCategoryRepository(db *gorm.DB) repository.CategoryRepository {
	return &categoryRepository{db: db}
}

func (repo *categoryRepository) GetTree(ctx context.Context) ([]entity.CategoryNode, error) {
	var treeM model.CategoryTreeModel
	err := repo.db.WithContext(ctx).Where("key = ?", entity.CategoryTreeKey).First(&treeM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entity.CategoryNode{}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load category tree")
	}

	var tree []entity.CategoryNode
	if len(treeM.Tree) > 0 {
		if err := json.Unmarshal(treeM.Tree, &tree); err != nil {
			return nil, errors.Wrap(err, "failed to decode category tree")
		}
	}

	return entity.NormalizeCategoryTree(tree), nil
}

func (repo *categoryRepository) ReplaceTree(ctx context.Context, tree []entity.CategoryNode) ([]entity.CategoryNode, error) {
	normalized := entity.NormalizeCategoryTree(tree)
	raw, err := json.Marshal(normalized)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode category tree")
	}

	treeM := model.CategoryTreeModel{
		Key:  entity.CategoryTreeKey,
		Tree: datatypes.JSON(raw),
	}
	err = repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"tree", "updated_at"}),
		}).
		Create(&treeM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save category tree")
	}

	return normalized, nil
}

func (repo *categoryRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Where("key = ?", entity.CategoryTreeKey).Delete(&model.CategoryTreeModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear category tree")
	}

	return nil
}
