package handler

import (
	"net/http"
	"testing"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/listing"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestShopHandler(t *testing.T) (*ShopHandler, *mockUsecase.MockCatalogUsecase) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)

	return NewShopHandler(ShopHandlerParams{CatalogUC: catalogUC, Logger: newDiscardLogger()}), catalogUC
}

func TestShopHandler_Products_ByID(t *testing.T) {
	h, catalogUC := createTestShopHandler(t)

	catalogUC.EXPECT().GetProduct(mock.Anything, "p-1001").
		Return(&entity.Product{ID: "p-1001", Title: "Linen Shirt", Price: 39, Images: []string{}}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/shop/products?id=p-1001&ids=ignored", "")
	require.NoError(t, h.Products(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.ShopCacheControl, rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"id":"p-1001"`)
}

func TestShopHandler_Products_ByIDNotFound(t *testing.T) {
	h, catalogUC := createTestShopHandler(t)

	catalogUC.EXPECT().GetProduct(mock.Anything, "missing").Return(nil, domainerrors.ErrProductNotFound).Once()

	c, _ := newJSONContext(http.MethodGet, "/api/shop/products?id=missing", "")
	err := h.Products(c)

	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestShopHandler_Products_ByIDs(t *testing.T) {
	h, catalogUC := createTestShopHandler(t)

	catalogUC.EXPECT().GetProductsByIDs(mock.Anything, []string{"b", "a"}).Return(nil, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/shop/products?ids=b,%20,a,", "")
	require.NoError(t, h.Products(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestShopHandler_Products_Listing(t *testing.T) {
	h, catalogUC := createTestShopHandler(t)

	expectedQuery := listing.Query{Q: "shirt", Category: "tops", OnSale: "1", Sort: "price-asc"}
	catalogUC.EXPECT().SearchProducts(mock.Anything, expectedQuery).
		Return([]*entity.Product{{ID: "p-1", Images: []string{}}}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/shop/products?q=shirt&category=tops&onsale=1&sort=price-asc", "")
	require.NoError(t, h.Products(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, response.ListingCacheControl, rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), `"id":"p-1"`)
}

func TestShopHandler_Home_EmptyListsRenderAsArrays(t *testing.T) {
	h, catalogUC := createTestShopHandler(t)

	catalogUC.EXPECT().GetHomeFeed(mock.Anything).Return(&entity.HomeFeed{}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/shop/home", "")
	require.NoError(t, h.Home(c))

	assert.NotContains(t, rec.Body.String(), "null")
	assert.Equal(t, response.ShopCacheControl, rec.Header().Get("Cache-Control"))
}

func TestShopHandler_ProductQR(t *testing.T) {
	h, catalogUC := createTestShopHandler(t)
	png := []byte{0x89, 'P', 'N', 'G'}

	catalogUC.EXPECT().ProductQRCode(mock.Anything, "p-1001").Return(png, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/shop/products/qr?id=p-1001", "")
	require.NoError(t, h.ProductQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}
