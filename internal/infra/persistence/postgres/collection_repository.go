package postgres

import (
	"context"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository returns a GORM-backed repository.CartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{db: db}
}

func (repo *cartRepository) Get(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	var cartM model.CartModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&cartM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []entity.CartItem{}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load cart")
	}

	return toCartItems(cartM.Items), nil
}

// Replace upserts the cart row; the last writer wins.
func (repo *cartRepository) Replace(ctx context.Context, userID uuid.UUID, items []entity.CartItem) ([]entity.CartItem, error) {
	lines := make([]model.CartLine, 0, len(items))
	for _, item := range items {
		lines = append(lines, model.CartLine{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     item.Price,
			SKU:       item.SKU,
			Quantity:  item.Quantity,
		})
	}

	cartM := model.CartModel{
		UserID: userID,
		Items:  datatypes.JSONSlice[model.CartLine](lines),
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"items", "updated_at"}),
		}).
		Create(&cartM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save cart")
	}

	return toCartItems(cartM.Items), nil
}

func toCartItems(lines []model.CartLine) []entity.CartItem {
	items := make([]entity.CartItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, entity.CartItem{
			ProductID: line.ProductID,
			Title:     line.Title,
			Price:     line.Price,
			SKU:       line.SKU,
			Quantity:  line.Quantity,
		})
	}

	return items
}

type favoritesRepository struct {
	db *gorm.DB
}

// NewFavoritesRepository returns a GORM-backed repository.FavoritesRepository.
func NewFavoritesRepository(db *gorm.DB) repository.FavoritesRepository {
	return &favoritesRepository{db: db}
}

func (repo *favoritesRepository) Get(ctx context.Context, userID uuid.UUID) ([]string, error) {
	var favoritesM model.FavoritesModel
	err := repo.db.WithContext(ctx).Where("user_id = ?", userID).First(&favoritesM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []string{}, nil
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load favorites")
	}

	return nonNilStrings(favoritesM.ProductIDs), nil
}

func (repo *favoritesRepository) Replace(ctx context.Context, userID uuid.UUID, productIDs []string) ([]string, error) {
	favoritesM := model.FavoritesModel{
		UserID:     userID,
		ProductIDs: pq.StringArray(nonNilStrings(productIDs)),
	}
	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"product_ids", "updated_at"}),
		}).
		Create(&favoritesM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to save favorites")
	}

	return nonNilStrings(favoritesM.ProductIDs), nil
}
