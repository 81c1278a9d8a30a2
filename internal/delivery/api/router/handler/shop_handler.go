package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/listing"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShopHandlerParams holds dependencies for ShopHandler, injected by Fx.
type ShopHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
	Logger    *slog.Logger
}

// ShopHandler serves the public, cacheable catalog reads.
type ShopHandler struct {
	catalogUC usecase.CatalogUsecase
	logger    *slog.Logger
}

// NewShopHandler is the constructor for ShopHandler.
func NewShopHandler(params ShopHandlerParams) *ShopHandler {
	return &ShopHandler{
		catalogUC: params.CatalogUC,
		logger:    params.Logger,
	}
}

func (h *ShopHandler) Categories(c echo.Context) error {
	tree, err := h.catalogUC.GetCategoryTree(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, response.ShopCacheControl, nonNil(tree))
}

func (h *ShopHandler) Ads(c echo.Context) error {
	ads, err := h.catalogUC.ListAds(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, response.ShopCacheControl, nonNil(ads))
}

func (h *ShopHandler) Notices(c echo.Context) error {
	notices, err := h.catalogUC.ListNotices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, response.ShopCacheControl, nonNil(notices))
}

// Home returns the three curated product lists.
func (h *ShopHandler) Home(c echo.Context) error {
	feed, err := h.catalogUC.GetHomeFeed(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	feed.Recommended = nonNil(feed.Recommended)
	feed.MostVisited = nonNil(feed.MostVisited)
	feed.Trending = nonNil(feed.Trending)

	return response.Cached(c, response.ShopCacheControl, feed)
}

// Category lists the products of one category: GET /api/shop/category?id=
func (h *ShopHandler) Category(c echo.Context) error {
	products, err := h.catalogUC.ListCategoryProducts(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, response.ShopCacheControl, nonNil(products))
}

// Products serves three lookups on one path: a single product by id, an ordered
// batch by ids, or the filtered and sorted listing.
func (h *ShopHandler) Products(c echo.Context) error {
	ctx := c.Request().Context()

	if id := c.QueryParam("id"); id != "" {
		product, err := h.catalogUC.GetProduct(ctx, id)
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Cached(c, response.ShopCacheControl, product)
	}

	if raw := c.QueryParam("ids"); raw != "" {
		products, err := h.catalogUC.GetProductsByIDs(ctx, listing.ParseIDList(raw))
		if err != nil {
			return errors.WithStack(err)
		}

		return response.Cached(c, response.ShopCacheControl, nonNil(products))
	}

	products, err := h.catalogUC.SearchProducts(ctx, listing.Query{
		Q:        c.QueryParam("q"),
		Category: c.QueryParam("category"),
		OnSale:   c.QueryParam("onsale"),
		Sort:     c.QueryParam("sort"),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Cached(c, response.ListingCacheControl, nonNil(products))
}

// ProductQR renders a PNG share code: GET /api/shop/products/qr?id=
func (h *ShopHandler) ProductQR(c echo.Context) error {
	png, err := h.catalogUC.ProductQRCode(c.Request().Context(), c.QueryParam("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, response.ShopCacheControl)

	return c.Blob(http.StatusOK, "image/png", png)
}
