package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/listing"
	mockRepo "storefront/internal/mocks/repository"
	mockService "storefront/internal/mocks/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type catalogServiceFixtures struct {
	service      usecase.CatalogUsecase
	productRepo  *mockRepo.MockProductRepository
	categoryRepo *mockRepo.MockCategoryRepository
	adRepo       *mockRepo.MockAdSlideRepository
	noticeRepo   *mockRepo.MockNoticeRepository
	homeRepo     *mockRepo.MockHomeSectionRepository
	qrcode       *mockService.MockQRCodeService
}

func createTestCatalogService(t *testing.T) catalogServiceFixtures {
	fx := catalogServiceFixtures{
		productRepo:  mockRepo.NewMockProductRepository(t),
		categoryRepo: mockRepo.NewMockCategoryRepository(t),
		adRepo:       mockRepo.NewMockAdSlideRepository(t),
		noticeRepo:   mockRepo.NewMockNoticeRepository(t),
		homeRepo:     mockRepo.NewMockHomeSectionRepository(t),
		qrcode:       mockService.NewMockQRCodeService(t),
	}
	fx.service = NewCatalogService(CatalogServiceParams{
		ProductRepo:  fx.productRepo,
		CategoryRepo: fx.categoryRepo,
		AdRepo:       fx.adRepo,
		NoticeRepo:   fx.noticeRepo,
		HomeRepo:     fx.homeRepo,
		QRCode:       fx.qrcode,
		Logger:       newDiscardLogger(),
	})

	return fx
}

func productIDs(products []*entity.Product) []string {
	ids := make([]string, len(products))
	for i, p := range products {
		ids[i] = p.ID
	}

	return ids
}

func TestCatalogService_GetHomeFeed_KeepsCuratedOrder(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	section := &entity.HomeSection{
		RecommendedProductIDs: []string{"c", "missing", "a"},
		MostVisitedProductIDs: []string{"b"},
		TrendingProductIDs:    []string{"a", "a"},
	}
	fx.homeRepo.EXPECT().Get(ctx).Return(section, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []string{"c", "missing", "a", "b", "a", "a"}).Return([]*entity.Product{
		{ID: "a", Title: "A"},
		{ID: "b", Title: "B"},
		{ID: "c", Title: "C"},
	}, nil)

	feed, err := fx.service.GetHomeFeed(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a"}, productIDs(feed.Recommended))
	assert.Equal(t, []string{"b"}, productIDs(feed.MostVisited))
	assert.Equal(t, []string{"a", "a"}, productIDs(feed.Trending))
}

func TestCatalogService_GetHomeFeed_EmptySection(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.homeRepo.EXPECT().Get(ctx).Return(&entity.HomeSection{}, nil)
	fx.productRepo.EXPECT().FindByIDs(ctx, []string{}).Return([]*entity.Product{}, nil)

	feed, err := fx.service.GetHomeFeed(ctx)

	require.NoError(t, err)
	assert.Empty(t, feed.Recommended)
	assert.Empty(t, feed.MostVisited)
	assert.Empty(t, feed.Trending)
}

func TestCatalogService_GetProductsByIDs(t *testing.T) {
	t.Run("ordered by request", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()

		ids := []string{"p2", "nope", "p1"}
		fx.productRepo.EXPECT().FindByIDs(ctx, ids).Return([]*entity.Product{{ID: "p1"}, {ID: "p2"}}, nil)

		products, err := fx.service.GetProductsByIDs(ctx, ids)

		require.NoError(t, err)
		assert.Equal(t, []string{"p2", "p1"}, productIDs(products))
	})

	t.Run("no ids", func(t *testing.T) {
		fx := createTestCatalogService(t)

		products, err := fx.service.GetProductsByIDs(context.Background(), nil)

		require.NoError(t, err)
		assert.NotNil(t, products)
		assert.Empty(t, products)
	})
}

func TestCatalogService_ListCategoryProducts(t *testing.T) {
	t.Run("missing id", func(t *testing.T) {
		fx := createTestCatalogService(t)

		_, err := fx.service.ListCategoryProducts(context.Background(), "")

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, "Missing category id", appErr.Message())
	})

	t.Run("exact match", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		fx.productRepo.EXPECT().FindByCategory(ctx, "shoes").Return([]*entity.Product{{ID: "s1", CategoryID: "shoes"}}, nil)

		products, err := fx.service.ListCategoryProducts(ctx, "shoes")

		require.NoError(t, err)
		assert.Equal(t, []string{"s1"}, productIDs(products))
	})
}

func TestCatalogService_GetProduct_NotFound(t *testing.T) {
	fx := createTestCatalogService(t)

	ctx := context.Background()
	fx.productRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, domainerrors.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, "ghost")

	assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
}

func TestCatalogService_SearchProducts(t *testing.T) {
	catalog := []*entity.Product{
		{ID: "a", Title: "Red Shirt", Price: 30, CategoryID: "men"},
		{ID: "b", Title: "Blue Shirt", Price: 10, CategoryID: "men", DiscountRate: 0.1},
		{ID: "c", Title: "Green Hat", Price: 20, CategoryID: "hats"},
	}

	t.Run("price sort skips home section", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		fx.productRepo.EXPECT().List(ctx).Return(catalog, nil)

		products, err := fx.service.SearchProducts(ctx, listing.Query{Q: "shirt", Sort: listing.SortPriceAsc})

		require.NoError(t, err)
		assert.Equal(t, []string{"b", "a"}, productIDs(products))
	})

	t.Run("recommendation uses curated order", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		fx.productRepo.EXPECT().List(ctx).Return(catalog, nil)
		fx.homeRepo.EXPECT().Get(ctx).Return(&entity.HomeSection{RecommendedProductIDs: []string{"c", "b"}}, nil)

		products, err := fx.service.SearchProducts(ctx, listing.Query{Sort: listing.SortRecommendation})

		require.NoError(t, err)
		assert.Equal(t, []string{"c", "b", "a"}, productIDs(products))
	})

	t.Run("on sale", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		fx.productRepo.EXPECT().List(ctx).Return(catalog, nil)

		products, err := fx.service.SearchProducts(ctx, listing.Query{OnSale: "1"})

		require.NoError(t, err)
		assert.Equal(t, []string{"b"}, productIDs(products))
	})
}

func TestCatalogService_ProductQRCode(t *testing.T) {
	t.Run("renders for existing product", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		fx.productRepo.EXPECT().FindByID(ctx, "p-1").Return(&entity.Product{ID: "p-1"}, nil)
		fx.qrcode.EXPECT().GenerateProductQR("p-1").Return([]byte("png"), nil)

		png, err := fx.service.ProductQRCode(ctx, "p-1")

		require.NoError(t, err)
		assert.Equal(t, []byte("png"), png)
	})

	t.Run("unknown product", func(t *testing.T) {
		fx := createTestCatalogService(t)
		ctx := context.Background()
		fx.productRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, domainerrors.ErrProductNotFound)

		_, err := fx.service.ProductQRCode(ctx, "ghost")

		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}
