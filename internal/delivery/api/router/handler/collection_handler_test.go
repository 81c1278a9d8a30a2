package handler

import (
	"net/http"
	"testing"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestCollectionHandler(t *testing.T) (*CollectionHandler, *mockUsecase.MockCollectionUsecase) {
	collectionUC := mockUsecase.NewMockCollectionUsecase(t)

	return NewCollectionHandler(CollectionHandlerParams{CollectionUC: collectionUC, Logger: newDiscardLogger()}), collectionUC
}

func TestCollectionHandler_RequiresIdentity(t *testing.T) {
	h, _ := createTestCollectionHandler(t)

	c, _ := newJSONContext(http.MethodGet, "/api/cart", "")
	err := h.GetCart(c)

	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestCollectionHandler_GetCart_EmptyRendersArray(t *testing.T) {
	h, collectionUC := createTestCollectionHandler(t)
	userID := uuid.New()

	collectionUC.EXPECT().GetCart(mock.Anything, userID).Return(nil, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/cart", "")
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.GetCart(c))
	assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
}

func TestCollectionHandler_ReplaceCart(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		expectedItems []any
	}{
		{
			name:          "items array is passed through",
			body:          `{"items":[{"productId":"p-1","quantity":2}]}`,
			expectedItems: []any{map[string]any{"productId": "p-1", "quantity": float64(2)}},
		},
		{
			name:          "non-array items empties the cart",
			body:          `{"items":"p-1"}`,
			expectedItems: []any{},
		},
		{
			name:          "missing items empties the cart",
			body:          `{}`,
			expectedItems: []any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, collectionUC := createTestCollectionHandler(t)
			userID := uuid.New()

			collectionUC.EXPECT().ReplaceCart(mock.Anything, userID, tt.expectedItems).
				Return([]entity.CartItem{}, nil).Once()

			c, rec := newJSONContext(http.MethodPut, "/api/cart", tt.body)
			deliverycontext.SetUserID(c, userID)

			require.NoError(t, h.ReplaceCart(c))
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
		})
	}
}

func TestCollectionHandler_ReplaceFavorites(t *testing.T) {
	h, collectionUC := createTestCollectionHandler(t)
	userID := uuid.New()

	collectionUC.EXPECT().ReplaceFavorites(mock.Anything, userID, []any{"p-1", float64(0), "p-2"}).
		Return([]string{"p-1", "p-2"}, nil).Once()

	c, rec := newJSONContext(http.MethodPut, "/api/favorites", `{"productIds":["p-1",0,"p-2"]}`)
	deliverycontext.SetUserID(c, userID)

	require.NoError(t, h.ReplaceFavorites(c))
	assert.JSONEq(t, `{"productIds":["p-1","p-2"]}`, rec.Body.String())
}
