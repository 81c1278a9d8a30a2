package impl

import (
	"context"
	"log/slog"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

type collectionService struct {
	cartRepo      repository.CartRepository
	favoritesRepo repository.FavoritesRepository
	logger        *slog.Logger
}

// CollectionServiceParams holds dependencies for CollectionService, injected by Fx.
type CollectionServiceParams struct {
	fx.In

	CartRepo      repository.CartRepository
	FavoritesRepo repository.FavoritesRepository
	Logger        *slog.Logger
}

// NewCollectionService creates the cart and favorites service.
func NewCollectionService(params CollectionServiceParams) usecase.CollectionUsecase {
	return &collectionService{
		cartRepo:      params.CartRepo,
		favoritesRepo: params.FavoritesRepo,
		logger:        params.Logger,
	}
}

func (srv *collectionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *collectionService) GetCart(ctx context.Context, userID uuid.UUID) ([]entity.CartItem, error) {
	items, err := srv.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	srv.log(ctx).Debug("Cart loaded", slog.Any("userID", userID), slog.Int("items", len(items)))

	return items, nil
}

func (srv *collectionService) ReplaceCart(ctx context.Context, userID uuid.UUID, rawItems []any) ([]entity.CartItem, error) {
	items, err := srv.cartRepo.Replace(ctx, userID, entity.NormalizeCartItems(rawItems))
	if err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.log(ctx).Info("Cart replaced", slog.Any("userID", userID), slog.Int("items", len(items)))

	return items, nil
}

func (srv *collectionService) GetFavorites(ctx context.Context, userID uuid.UUID) ([]string, error) {
	ids, err := srv.favoritesRepo.Get(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load favorites")
	}

	srv.log(ctx).Debug("Favorites loaded", slog.Any("userID", userID), slog.Int("count", len(ids)))

	return ids, nil
}

func (srv *collectionService) ReplaceFavorites(ctx context.Context, userID uuid.UUID, rawIDs []any) ([]string, error) {
	ids, err := srv.favoritesRepo.Replace(ctx, userID, entity.NormalizeProductIDs(rawIDs))
	if err != nil {
		return nil, errors.Wrap(err, "failed to save favorites")
	}

	srv.log(ctx).Info("Favorites replaced", slog.Any("userID", userID), slog.Int("count", len(ids)))

	return ids, nil
}
