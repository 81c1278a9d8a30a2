package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/lib/pq"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type homeSectionRepository struct {
	db *gorm.DB
}

// NewHomeSectionRepository returns a GORM-backed repository.HomeSectionRepository.
func NewHomeSectionRepository(db *gorm.DB) repository.HomeSectionRepository {
	return &homeSectionRepository{db: db}
}

func (repo *homeSectionRepository) Get(ctx context.Context) (*entity.HomeSection, error) {
	var sectionM model.HomeSectionModel
	err := repo.db.WithContext(ctx).Where("key = ?", entity.HomeSectionKey).First(&sectionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return toHomeSectionDomain(&model.HomeSectionModel{}), nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load home section")
	}

	return toHomeSectionDomain(&sectionM), nil
}

func (repo *homeSectionRepository) Replace(ctx context.Context, section *entity.HomeSection) (*entity.HomeSection, error) {
	sectionM := model.HomeSectionModel{
		Key:                   entity.HomeSectionKey,
		RecommendedProductIDs: pq.StringArray(nonNilStrings(section.RecommendedProductIDs)),
		MostVisitedProductIDs: pq.StringArray(nonNilStrings(section.MostVisitedProductIDs)),
		TrendingProductIDs:    pq.StringArray(nonNilStrings(section.TrendingProductIDs)),
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"recommended_product_ids",
				"most_visited_product_ids",
				"trending_product_ids",
				"updated_at",
			}),
		}).
		Create(&sectionM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save home section")
	}

	return toHomeSectionDomain(&sectionM), nil
}

func (repo *homeSectionRepository) RemoveProductID(ctx context.Context, id string) (bool, error) {
	result := repo.removeProductIDQuery(repo.db.WithContext(ctx), id)
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to remove product from home section")
	}

	return result.RowsAffected > 0, nil
}

func (repo *homeSectionRepository) removeProductIDQuery(db *gorm.DB, id string) *gorm.DB {
	return db.Model(&model.HomeSectionModel{}).
		Where("key = ?", entity.HomeSectionKey).
		Where("? = ANY(recommended_product_ids) OR ? = ANY(most_visited_product_ids) OR ? = ANY(trending_product_ids)", id, id, id).
		Updates(map[string]any{
			"recommended_product_ids":  gorm.Expr("array_remove(recommended_product_ids, ?)", id),
			"most_visited_product_ids": gorm.Expr("array_remove(most_visited_product_ids, ?)", id),
			"trending_product_ids":     gorm.Expr("array_remove(trending_product_ids, ?)", id),
			"updated_at":               gorm.Expr("now()"),
		})
}

func (repo *homeSectionRepository) Clear(ctx context.Context) error {
	err := repo.db.WithContext(ctx).Where("key = ?", entity.HomeSectionKey).Delete(&model.HomeSectionModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear home section")
	}

	return nil
}

func toHomeSectionDomain(sectionM *model.HomeSectionModel) *entity.HomeSection {
	return &entity.HomeSection{
		RecommendedProductIDs: nonNilStrings(sectionM.RecommendedProductIDs),
		MostVisitedProductIDs: nonNilStrings(sectionM.MostVisitedProductIDs),
		TrendingProductIDs:    nonNilStrings(sectionM.TrendingProductIDs),
	}
}
