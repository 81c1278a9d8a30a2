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

const productInsertBatchSize = 200

type productRepository struct {
	db *gorm.DB
}

// NewProductRepository returns a GORM-backed repository.ProductRepository.
func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	if err := repo.db.WithContext(ctx).Order("pk ASC").Find(&productMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list products")
	}

	return toProductDomains(productMs), nil
}

func (repo *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var productM model.ProductModel
	err := repo.db.WithContext(ctx).Where("product_id = ?", id).First(&productM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find product")
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	var productMs []model.ProductModel
	if err := repo.db.WithContext(ctx).Where("product_id IN ?", ids).Find(&productMs).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products by ids")
	}

	return toProductDomains(productMs), nil
}

func (repo *productRepository) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	var productMs []model.ProductModel
	err := repo.db.WithContext(ctx).
		Where("category_id = ?", categoryID).
		Order("pk ASC").
		Find(&productMs).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find products by category")
	}

	return toProductDomains(productMs), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	if err := repo.db.WithContext(ctx).Create(fromProductDomain(product)).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create product")
	}

	return nil
}

// Update writes only the columns set in patch, in one statement, and returns the stored row.
func (repo *productRepository) Update(ctx context.Context, id string, patch entity.ProductPatch) (*entity.Product, error) {
	updates := productPatchColumns(patch)
	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	var productM model.ProductModel
	result := repo.db.WithContext(ctx).
		Model(&productM).
		Clauses(clause.Returning{}).
		Where("product_id = ?", id).
		Updates(updates)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update product")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrProductNotFound
	}

	return toProductDomain(&productM), nil
}

func (repo *productRepository) Delete(ctx context.Context, id string) error {
	result := repo.db.WithContext(ctx).Where("product_id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete product")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}

	return nil
}

func (repo *productRepository) ReplaceAll(ctx context.Context, products []*entity.Product) error {
	db := repo.db.WithContext(ctx)
	if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.ProductModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear products")
	}
	if len(products) == 0 {
		return nil
	}

	productMs := make([]*model.ProductModel, 0, len(products))
	for _, product := range products {
		productMs = append(productMs, fromProductDomain(product))
	}
	if err := db.CreateInBatches(productMs, productInsertBatchSize).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrProductAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to insert products")
	}

	return nil
}

// productPatchColumns maps a patch to column updates. A nil original price writes NULL.
func productPatchColumns(patch entity.ProductPatch) map[string]any {
	updates := make(map[string]any)
	if v, ok := patch.Title.Get(); ok {
		updates["title"] = v
	}
	if v, ok := patch.SKU.Get(); ok {
		updates["sku"] = v
	}
	if v, ok := patch.Price.Get(); ok {
		updates["price"] = v
	}
	if v, ok := patch.OriginalPrice.Get(); ok {
		if v == nil {
			updates["original_price"] = nil
		} else {
			updates["original_price"] = *v
		}
	}
	if v, ok := patch.DiscountRate.Get(); ok {
		updates["discount_rate"] = v
	}
	if v, ok := patch.Images.Get(); ok {
		updates["images"] = pq.StringArray(nonNilStrings(v))
	}
	if v, ok := patch.CategoryID.Get(); ok {
		updates["category_id"] = v
	}

	return updates
}

func toProductDomains(productMs []model.ProductModel) []*entity.Product {
	products := make([]*entity.Product, 0, len(productMs))
	for i := range productMs {
		products = append(products, toProductDomain(&productMs[i]))
	}

	return products
}

func toProductDomain(productM *model.ProductModel) *entity.Product {
	return &entity.Product{
		ID:            productM.ProductID,
		Title:         productM.Title,
		SKU:           productM.SKU,
		Price:         productM.Price,
		OriginalPrice: productM.OriginalPrice,
		DiscountRate:  productM.DiscountRate,
		Images:        nonNilStrings(productM.Images),
		CategoryID:    productM.CategoryID,
	}
}

func fromProductDomain(product *entity.Product) *model.ProductModel {
	return &model.ProductModel{
		ProductID:     product.ID,
		Title:         product.Title,
		SKU:           product.SKU,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		DiscountRate:  product.DiscountRate,
		Images:        pq.StringArray(nonNilStrings(product.Images)),
		CategoryID:    product.CategoryID,
	}
}

func nonNilStrings(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
