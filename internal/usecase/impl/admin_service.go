package impl

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"go.uber.org/fx"
)

type adminService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	adRepo       repository.AdSlideRepository
	noticeRepo   repository.NoticeRepository
	homeRepo     repository.HomeSectionRepository
	exporter     service.ProductExporter
	events       *catalogEventNotifier
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	ProductRepo  repository.ProductRepository
	CategoryRepo repository.CategoryRepository
	AdRepo       repository.AdSlideRepository
	NoticeRepo   repository.NoticeRepository
	HomeRepo     repository.HomeSectionRepository
	Exporter     service.ProductExporter
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAdminService creates the admin mutation service.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		productRepo:  params.ProductRepo,
		categoryRepo: params.CategoryRepo,
		adRepo:       params.AdRepo,
		noticeRepo:   params.NoticeRepo,
		homeRepo:     params.HomeRepo,
		exporter:     params.Exporter,
		events: &catalogEventNotifier{
			publisher: params.Publisher,
			logger:    params.Logger,
			now:       time.Now,
		},
		logger: params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// --- Categories ---

func (srv *adminService) GetCategoryTree(ctx context.Context) ([]entity.CategoryNode, error) {
	tree, err := srv.categoryRepo.GetTree(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load category tree")
	}

	return tree, nil
}

func (srv *adminService) ReplaceCategoryTree(ctx context.Context, tree []entity.CategoryNode) ([]entity.CategoryNode, error) {
	if bad, ok := entity.ValidateCategoryTree(tree); !ok {
		srv.log(ctx).Warn("Rejected category tree", slog.String("nodeID", bad.ID), slog.String("label", bad.Label))

		return nil, domainerrors.Validation("every category needs an id and a label")
	}

	stored, err := srv.categoryRepo.ReplaceTree(ctx, tree)
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace category tree")
	}

	srv.log(ctx).Info("Category tree replaced", slog.Int("roots", len(stored)))
	srv.events.notify(ctx, service.EventCategoriesReplaced, entity.CategoryTreeKey)

	return stored, nil
}

// --- Ads ---

func (srv *adminService) ListAds(ctx context.Context) ([]*entity.AdSlide, error) {
	ads, err := srv.adRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ads")
	}

	return ads, nil
}

func (srv *adminService) CreateAd(ctx context.Context, fields usecase.Fields) (*entity.AdSlide, error) {
	if fields[fieldID] == nil {
		return nil, domainerrors.Validation("id is required")
	}
	id, err := integerID(fields[fieldID])
	if err != nil {
		return nil, err
	}

	slide := adSlideFromFields(id, fields)
	if err := srv.adRepo.Create(ctx, slide); err != nil {
		return nil, errors.Wrap(err, "failed to create ad")
	}

	srv.log(ctx).Info("Ad created", slog.Int64("adID", id))
	srv.events.notify(ctx, service.EventAdChanged, formatID(id))

	return slide, nil
}

// UpdateAd overwrites title, subtitle and image; absent fields become empty strings.
func (srv *adminService) UpdateAd(ctx context.Context, id int64, fields usecase.Fields) (*entity.AdSlide, error) {
	slide, err := srv.adRepo.Update(ctx, adSlideFromFields(id, fields))
	if err != nil {
		return nil, errors.Wrap(err, "failed to update ad")
	}

	srv.events.notify(ctx, service.EventAdChanged, formatID(id))

	return slide, nil
}

func (srv *adminService) DeleteAd(ctx context.Context, id int64) error {
	if err := srv.adRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete ad")
	}

	srv.log(ctx).Info("Ad deleted", slog.Int64("adID", id))
	srv.events.notify(ctx, service.EventAdChanged, formatID(id))

	return nil
}

// --- Products ---

func (srv *adminService) ListProducts(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *adminService) CreateProduct(ctx context.Context, fields usecase.Fields) (*entity.Product, error) {
	product, err := productFromFields(fields)
	if err != nil {
		return nil, err
	}

	if err := srv.productRepo.Create(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.log(ctx).Info("Product created", slog.String("productID", product.ID))
	srv.events.notify(ctx, service.EventProductCreated, product.ID)

	return product, nil
}

func (srv *adminService) UpdateProduct(ctx context.Context, id string, fields usecase.Fields) (*entity.Product, error) {
	patch, err := productPatchFromFields(fields)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update product")
	}

	if !patch.IsEmpty() {
		srv.events.notify(ctx, service.EventProductUpdated, id)
	}

	return product, nil
}

func (srv *adminService) DeleteProduct(ctx context.Context, id string) error {
	if err := srv.productRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Product deleted", slog.String("productID", id))
	srv.events.notify(ctx, service.EventProductDeleted, id)

	return nil
}

func (srv *adminService) ExportProducts(ctx context.Context, w io.Writer) (string, string, error) {
	products, err := srv.productRepo.List(ctx)
	if err != nil {
		return "", "", errors.Wrap(err, "failed to list products for export")
	}

	if err := srv.exporter.Export(w, products); err != nil {
		return "", "", errors.Wrap(err, "failed to export products")
	}

	srv.log(ctx).Info("Products exported", slog.Int("count", len(products)))

	return srv.exporter.ContentType(), srv.exporter.FileName(), nil
}

// --- Notices ---

func (srv *adminService) ListNotices(ctx context.Context) ([]*entity.Notice, error) {
	notices, err := srv.noticeRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list notices")
	}

	return notices, nil
}

func (srv *adminService) CreateNotice(ctx context.Context, fields usecase.Fields) (*entity.Notice, error) {
	if fields[fieldID] == nil || util.IsFalsy(fields[fieldText]) {
		return nil, domainerrors.Validation("id and text are required")
	}
	id, err := integerID(fields[fieldID])
	if err != nil {
		return nil, err
	}

	notice := &entity.Notice{ID: id, Text: trimmedString(fields[fieldText])}
	if err := srv.noticeRepo.Create(ctx, notice); err != nil {
		return nil, errors.Wrap(err, "failed to create notice")
	}

	srv.log(ctx).Info("Notice created", slog.Int64("noticeID", id))
	srv.events.notify(ctx, service.EventNoticeChanged, formatID(id))

	return notice, nil
}

func (srv *adminService) UpdateNotice(ctx context.Context, id int64, fields usecase.Fields) (*entity.Notice, error) {
	notice, err := srv.noticeRepo.Update(ctx, &entity.Notice{ID: id, Text: trimmedString(fields[fieldText])})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update notice")
	}

	srv.events.notify(ctx, service.EventNoticeChanged, formatID(id))

	return notice, nil
}

func (srv *adminService) DeleteNotice(ctx context.Context, id int64) error {
	if err := srv.noticeRepo.Delete(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete notice")
	}

	srv.log(ctx).Info("Notice deleted", slog.Int64("noticeID", id))
	srv.events.notify(ctx, service.EventNoticeChanged, formatID(id))

	return nil
}

// --- Home sections ---

func (srv *adminService) GetHomeSection(ctx context.Context) (*entity.HomeSection, error) {
	section, err := srv.homeRepo.Get(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load home section")
	}

	return section, nil
}

func (srv *adminService) ReplaceHomeSection(ctx context.Context, section *entity.HomeSection) (*entity.HomeSection, error) {
	if section == nil {
		section = &entity.HomeSection{}
	}

	cleaned := &entity.HomeSection{
		RecommendedProductIDs: cleanIDList(section.RecommendedProductIDs),
		MostVisitedProductIDs: cleanIDList(section.MostVisitedProductIDs),
		TrendingProductIDs:    cleanIDList(section.TrendingProductIDs),
	}

	stored, err := srv.homeRepo.Replace(ctx, cleaned)
	if err != nil {
		return nil, errors.Wrap(err, "failed to replace home section")
	}

	srv.events.notify(ctx, service.EventHomeReplaced, entity.HomeSectionKey)

	return stored, nil
}

// cleanIDList trims ids and drops blanks, keeping order and duplicates.
func cleanIDList(ids []string) []string {
	cleaned := make([]string, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			cleaned = append(cleaned, id)
		}
	}

	return cleaned
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}
