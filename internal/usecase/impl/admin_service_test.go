package impl

import (
	"bytes"
	"context"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	adRepo       *mockRepo.MockAdSlideRepository
	noticeRepo   *mockRepo.MockNoticeRepository
	homeRepo     *mockRepo.MockHomeSectionRepository
	exporter     *mockService.MockProductExporter
	publisher    *mockService.MockEventPublisher
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	fx := adminServiceFixtures{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		adRepo:       mockRepo.NewMockAdSlideRepository(t),
		noticeRepo:   mockRepo.NewMockNoticeRepository(t),
		homeRepo:     mockRepo.NewMockHomeSectionRepository(t),
		exporter:     mockService.NewMockProductExporter(t),
		publisher:    mockService.NewMockEventPublisher(t),
	}
	fx.service = NewAdminService(AdminServiceParams{
		ProductRepo:  fx.productRepo,
		CategoryRepo: fx.categoryRepo,
		AdRepo:       fx.adRepo,
		NoticeRepo:   fx.noticeRepo,
		HomeRepo:     fx.homeRepo,
		Exporter:     fx.exporter,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func (fx adminServiceFixtures) expectEvent(eventType, entityID string) {
	fx.publisher.EXPECT().
		PublishCatalogEvent(mock.Anything, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.Type == eventType && event.EntityID == entityID && event.EventID != ""
		})).
		Return(nil)
}

func validationMessage(t *testing.T, err error) string {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "expected an AppError, got %v", err)
	require.Equal(t, 400, appErr.HTTPCode())

	return appErr.Message()
}

func TestAdminService_CreateProduct_CoercesNumbers(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	var stored *entity.Product
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).
		Run(func(_ context.Context, p *entity.Product) { stored = p }).
		Return(nil)
	fx.expectEvent(service.EventProductCreated, "p-9")

	product, err := fx.service.CreateProduct(ctx, usecase.Fields{
		"id":            " p-9 ",
		"title":         "Rain Boot",
		"price":         "49.5",
		"originalPrice": 60.0,
		"discountRate":  "0.1",
		"images":        []any{"/a.jpg", "", 7.0},
		"categoryId":    "shoes",
	})

	require.NoError(t, err)
	assert.Same(t, stored, product)
	assert.Equal(t, "p-9", product.ID)
	assert.InDelta(t, 49.5, product.Price, 1e-9)
	require.NotNil(t, product.OriginalPrice)
	assert.InDelta(t, 60.0, *product.OriginalPrice, 1e-9)
	assert.InDelta(t, 0.1, product.DiscountRate, 1e-9)
	assert.Equal(t, []string{"/a.jpg", "7"}, product.Images)
	assert.Equal(t, "", product.SKU)
}

func TestAdminService_CreateProduct_Validation(t *testing.T) {
	tests := []struct {
		name    string
		fields  usecase.Fields
		message string
	}{
		{
			name:    "missing price",
			fields:  usecase.Fields{"id": "p", "title": "T", "categoryId": "c"},
			message: "id, title, price, categoryId are required",
		},
		{
			name:    "blank title",
			fields:  usecase.Fields{"id": "p", "title": "  ", "price": 1.0, "categoryId": "c"},
			message: "id, title, price, categoryId are required",
		},
		{
			name:    "non numeric price",
			fields:  usecase.Fields{"id": "p", "title": "T", "price": "cheap", "categoryId": "c"},
			message: "price must be a number",
		},
		{
			name:    "non numeric discount",
			fields:  usecase.Fields{"id": "p", "title": "T", "price": 1.0, "categoryId": "c", "discountRate": "lots"},
			message: "discountRate must be a number",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAdminService(t)

			_, err := fx.service.CreateProduct(context.Background(), tt.fields)

			assert.Equal(t, tt.message, validationMessage(t, err))
		})
	}
}

func TestAdminService_CreateProduct_Duplicate(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Product")).Return(domainerrors.ErrProductAlreadyExists)

	_, err := fx.service.CreateProduct(ctx, usecase.Fields{"id": "p", "title": "T", "price": 1.0, "categoryId": "c"})

	assert.True(t, errors.Is(err, domainerrors.ErrProductAlreadyExists))
}

func TestAdminService_UpdateProduct_Patch(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	updated := &entity.Product{ID: "p-1", Title: "New", Price: 12}
	fx.productRepo.EXPECT().
		Update(ctx, "p-1", mock.MatchedBy(func(patch entity.ProductPatch) bool {
			price, priceSet := patch.Price.Get()
			original, originalSet := patch.OriginalPrice.Get()

			return patch.Title.Value == "New" && priceSet && price == 12 &&
				originalSet && original == nil && !patch.SKU.Set && !patch.CategoryID.Set
		})).
		Return(updated, nil)
	fx.expectEvent(service.EventProductUpdated, "p-1")

	product, err := fx.service.UpdateProduct(ctx, "p-1", usecase.Fields{
		"title":         "New",
		"price":         "12",
		"originalPrice": nil,
	})

	require.NoError(t, err)
	assert.Same(t, updated, product)
}

func TestAdminService_UpdateProduct_EmptyPatchPublishesNothing(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	current := &entity.Product{ID: "p-1"}
	fx.productRepo.EXPECT().Update(ctx, "p-1", entity.ProductPatch{}).Return(current, nil)

	product, err := fx.service.UpdateProduct(ctx, "p-1", usecase.Fields{"unknown": true})

	require.NoError(t, err)
	assert.Same(t, current, product)
}

func TestAdminService_UpdateProduct_RejectsNullRequiredFields(t *testing.T) {
	tests := map[string]usecase.Fields{
		"title cannot be empty":      {"title": nil},
		"price cannot be null":       {"price": nil},
		"categoryId cannot be empty": {"categoryId": ""},
	}

	for message, fields := range tests {
		t.Run(message, func(t *testing.T) {
			fx := createTestAdminService(t)

			_, err := fx.service.UpdateProduct(context.Background(), "p-1", fields)

			assert.Equal(t, message, validationMessage(t, err))
		})
	}
}

func TestAdminService_DeleteProduct_PublishFailureIgnored(t *testing.T) {
	fx := createTestAdminService(t)

	userID := uuid.New()
	ctx := deliverycontext.WithRequestID(context.Background(), "req-1")
	ctx = deliverycontext.WithUserID(ctx, userID)

	fx.productRepo.EXPECT().Delete(ctx, "p-1").Return(nil)
	fx.publisher.EXPECT().
		PublishCatalogEvent(ctx, mock.MatchedBy(func(event *service.CatalogEvent) bool {
			return event.RequestID == "req-1" && event.ActorID == userID.String() &&
				event.Type == service.EventProductDeleted
		})).
		Return(errors.New("topic not found"))

	err := fx.service.DeleteProduct(ctx, "p-1")

	assert.NoError(t, err)
}

func TestAdminService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().Delete(ctx, "ghost").Return(domainerrors.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestAdminService_CreateAd(t *testing.T) {
	t.Run("numeric string id", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		fx.adRepo.EXPECT().Create(ctx, &entity.AdSlide{ID: 4, Title: "Sale", Image: "/x.jpg"}).Return(nil)
		fx.expectEvent(service.EventAdChanged, "4")

		slide, err := fx.service.CreateAd(ctx, usecase.Fields{"id": "4", "title": "Sale", "image": "/x.jpg"})

		require.NoError(t, err)
		assert.Equal(t, int64(4), slide.ID)
		assert.Equal(t, "", slide.Subtitle)
	})

	t.Run("missing id", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.CreateAd(context.Background(), usecase.Fields{"title": "Sale"})

		assert.Equal(t, "id is required", validationMessage(t, err))
	})

	t.Run("fractional id", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.CreateAd(context.Background(), usecase.Fields{"id": 1.5})

		assert.Equal(t, "id must be an integer", validationMessage(t, err))
	})
}

func TestAdminService_CreateNotice_RequiresText(t *testing.T) {
	fx := createTestAdminService(t)

	_, err := fx.service.CreateNotice(context.Background(), usecase.Fields{"id": 1.0, "text": ""})

	assert.Equal(t, "id and text are required", validationMessage(t, err))
}

func TestAdminService_UpdateNotice_NotFound(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	fx.noticeRepo.EXPECT().Update(ctx, &entity.Notice{ID: 9, Text: "hi"}).Return(nil, domainerrors.ErrNoticeNotFound)

	_, err := fx.service.UpdateNotice(ctx, 9, usecase.Fields{"text": " hi "})

	assert.True(t, errors.Is(err, domainerrors.ErrNoticeNotFound))
}

func TestAdminService_ReplaceCategoryTree(t *testing.T) {
	t.Run("stores valid tree", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()
		tree := []entity.CategoryNode{{ID: "men", Label: "Men", Children: []entity.CategoryNode{{ID: "men-hats", Label: "Hats"}}}}
		fx.categoryRepo.EXPECT().ReplaceTree(ctx, tree).Return(entity.NormalizeCategoryTree(tree), nil)
		fx.expectEvent(service.EventCategoriesReplaced, entity.CategoryTreeKey)

		stored, err := fx.service.ReplaceCategoryTree(ctx, tree)

		require.NoError(t, err)
		assert.Len(t, stored, 1)
	})

	t.Run("rejects unlabeled node", func(t *testing.T) {
		fx := createTestAdminService(t)

		_, err := fx.service.ReplaceCategoryTree(context.Background(), []entity.CategoryNode{{ID: "men"}})

		assert.Equal(t, "every category needs an id and a label", validationMessage(t, err))
	})
}

func TestAdminService_ReplaceHomeSection_CleansIDs(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	want := &entity.HomeSection{
		RecommendedProductIDs: []string{"a", "b", "a"},
		MostVisitedProductIDs: []string{},
		TrendingProductIDs:    []string{"c"},
	}
	fx.homeRepo.EXPECT().Replace(ctx, want).Return(want, nil)
	fx.expectEvent(service.EventHomeReplaced, entity.HomeSectionKey)

	stored, err := fx.service.ReplaceHomeSection(ctx, &entity.HomeSection{
		RecommendedProductIDs: []string{" a ", "", "b", "a"},
		TrendingProductIDs:    []string{"c", "  "},
	})

	require.NoError(t, err)
	assert.Equal(t, want, stored)
}

func TestAdminService_ExportProducts(t *testing.T) {
	fx := createTestAdminService(t)

	ctx := context.Background()
	products := []*entity.Product{{ID: "p-1"}}
	var buf bytes.Buffer

	fx.productRepo.EXPECT().List(ctx).Return(products, nil)
	fx.exporter.EXPECT().Export(&buf, products).Return(nil)
	fx.exporter.EXPECT().ContentType().Return("application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	fx.exporter.EXPECT().FileName().Return("products.xlsx")

	contentType, fileName, err := fx.service.ExportProducts(ctx, &buf)

	require.NoError(t, err)
	assert.Equal(t, "products.xlsx", fileName)
	assert.Contains(t, contentType, "spreadsheetml")
}
