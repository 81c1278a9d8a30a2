package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/listing"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	adRepo       repository.AdSlideRepository
	noticeRepo   repository.NoticeRepository
	homeRepo     repository.HomeSectionRepository
	qrcode       service.QRCodeService
	logger       *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	AdRepo       repository.AdSlideRepository
	NoticeRepo   repository.NoticeRepository
	HomeRepo     repository.HomeSectionRepository
	QRCode       service.QRCodeService
	Logger       *slog.Logger
}

// NewCatalogService creates the storefront read service.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		adRepo:       params.AdRepo,
		noticeRepo:   params.NoticeRepo,
		homeRepo:     params.HomeRepo,
		qrcode:       params.QRCode,
		logger:       params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *catalogService) GetCategoryTree(ctx context.Context) ([]entity.CategoryNode, error) {
	tree, err := srv.categoryRepo.GetTree(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category tree")
	}

	return tree, nil
}

func (srv *catalogService) ListAds(ctx context.Context) ([]*entity.AdSlide, error) {
	ads, err := srv.adRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return ads, nil
}

func (srv *catalogService) ListNotices(ctx context.Context) ([]*entity.Notice, error) {
	notices, err := srv.noticeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notices")
	}

	return notices, nil
}

// GetHomeFeed loads the curated lists and resolves all ids with a single product lookup.
func (srv *catalogService) GetHomeFeed(ctx context.Context) (*entity.HomeFeed, error) {
	section, err := srv.homeRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load home section")
	}

	products, err := srv.productRepo.FindByIDs(ctx, section.AllProductIDs())
	if err != nil {
		return nil, errors.Wrap(err, "failed to load home products")
	}

	return &entity.HomeFeed{
		Recommended: listing.ResolveOrderedIDs(section.RecommendedProductIDs, products),
		MostVisited: listing.ResolveOrderedIDs(section.MostVisitedProductIDs, products),
		Trending:    listing.ResolveOrderedIDs(section.TrendingProductIDs, products),
	}, nil
}

func (srv *catalogService) ListCategoryProducts(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	if categoryID == "" {
		return nil, domainerrors.Validation("Missing category id")
	}

	products, err := srv.productRepo.FindByCategory(ctx, categoryID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list category products")
	}

	return products, nil
}

func (srv *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *catalogService) GetProductsByIDs(ctx context.Context, ids []string) ([]*entity.Product, error) {
	if len(ids) == 0 {
		return []*entity.Product{}, nil
	}

	products, err := srv.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find products by ids")
	}

	return listing.ResolveOrderedIDs(ids, products), nil
}

// SearchProducts filters and sorts the full catalog; recommendation order comes from the home section.
func (srv *catalogService) SearchProducts(ctx context.Context, query listing.Query) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	var recommendedOrder []string
	if query.Sort == listing.SortRecommendation {
		section, err := srv.homeRepo.Get(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to load recommendation order")
		}
		recommendedOrder = section.RecommendedProductIDs
	}

	result := listing.Apply(products, query, recommendedOrder)
	srv.log(ctx).Debug("Product listing evaluated",
		slog.String("q", query.Q),
		slog.String("category", query.Category),
		slog.String("sort", query.Sort),
		slog.Int("matched", len(result)),
		slog.Int("total", len(products)),
	)

	return result, nil
}

func (srv *catalogService) ProductQRCode(ctx context.Context, id string) ([]byte, error) {
	if id == "" {
		return nil, domainerrors.Validation("Missing product id")
	}

	if _, err := srv.productRepo.FindByID(ctx, id); err != nil {
		return nil, errors.Wrap(err, "failed to find product for QR code")
	}

	png, err := srv.qrcode.GenerateProductQR(id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render product QR code")
	}

	return png, nil
}
