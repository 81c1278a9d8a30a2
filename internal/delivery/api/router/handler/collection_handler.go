package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CollectionHandlerParams holds dependencies for CollectionHandler, injected by Fx.
type CollectionHandlerParams struct {
	fx.In

	CollectionUC usecase.CollectionUsecase
	Logger       *slog.Logger
}

// CollectionHandler serves the caller's cart and favorites.
type CollectionHandler struct {
	collectionUC usecase.CollectionUsecase
	logger       *slog.Logger
}

// NewCollectionHandler is the constructor for CollectionHandler.
func NewCollectionHandler(params CollectionHandlerParams) *CollectionHandler {
	return &CollectionHandler{
		collectionUC: params.CollectionUC,
		logger:       params.Logger,
	}
}

func currentUserID(c echo.Context) (uuid.UUID, error) {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthenticated
	}

	return userID, nil
}

func (h *CollectionHandler) GetCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.collectionUC.GetCart(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, CartResponse{Items: nonNil(items)})
}

// ReplaceCart stores the submitted lines; a missing or non-array items field empties the cart.
func (h *CollectionHandler) ReplaceCart(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	items, err := h.collectionUC.ReplaceCart(c.Request().Context(), userID, listOrEmpty(fields["items"]))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, CartResponse{Items: nonNil(items)})
}

func (h *CollectionHandler) GetFavorites(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ids, err := h.collectionUC.GetFavorites(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, FavoritesResponse{ProductIDs: nonNil(ids)})
}

func (h *CollectionHandler) ReplaceFavorites(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	ids, err := h.collectionUC.ReplaceFavorites(c.Request().Context(), userID, listOrEmpty(fields["productIds"]))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, FavoritesResponse{ProductIDs: nonNil(ids)})
}
