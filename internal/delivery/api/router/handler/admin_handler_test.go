package handler

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminHandlerFixtures struct {
	adminUC *mockUsecase.MockAdminUsecase
	userUC  *mockUsecase.MockUserUsecase
}

func createTestAdminHandler(t *testing.T) (*AdminHandler, *adminHandlerFixtures) {
	fx := &adminHandlerFixtures{
		adminUC: mockUsecase.NewMockAdminUsecase(t),
		userUC:  mockUsecase.NewMockUserUsecase(t),
	}

	h := NewAdminHandler(AdminHandlerParams{
		AdminUC: fx.adminUC,
		UserUC:  fx.userUC,
		Logger:  newDiscardLogger(),
	})

	return h, fx
}

func TestAdminHandler_ReplaceCategories(t *testing.T) {
	expectedTree := []entity.CategoryNode{
		{ID: "apparel", Label: "Apparel", Children: []entity.CategoryNode{{ID: "tops", Label: "Tops", Children: []entity.CategoryNode{}}}},
	}

	tests := []struct {
		name string
		body string
	}{
		{name: "bare array", body: `[{"id":"apparel","label":"Apparel","children":[{"id":"tops","label":"Tops"}]}]`},
		{name: "tree object", body: `{"tree":[{"id":"apparel","label":"Apparel","children":[{"id":"tops","label":"Tops"}]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fx := createTestAdminHandler(t)

			fx.adminUC.EXPECT().ReplaceCategoryTree(mock.Anything, expectedTree).Return(expectedTree, nil).Once()

			c, rec := newJSONContext(http.MethodPut, "/api/admin/categories", tt.body)
			require.NoError(t, h.ReplaceCategories(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Body.String(), `"id":"tops"`)
		})
	}
}

func TestAdminHandler_ReplaceCategories_Rejected(t *testing.T) {
	tests := []struct {
		name            string
		body            string
		expectedMessage string
	}{
		{name: "object without tree", body: `{"nodes":[]}`, expectedMessage: "tree must be an array"},
		{name: "tree is not an array", body: `{"tree":"apparel"}`, expectedMessage: "tree must be an array"},
		{name: "empty body", body: "", expectedMessage: "tree must be an array"},
		{name: "malformed json", body: `{"tree":[`, expectedMessage: "Invalid JSON body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := createTestAdminHandler(t)

			c, _ := newJSONContext(http.MethodPut, "/api/admin/categories", tt.body)
			err := h.ReplaceCategories(c)

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Equal(t, tt.expectedMessage, err.Error())
		})
	}
}

func TestAdminHandler_CreateAd(t *testing.T) {
	h, fx := createTestAdminHandler(t)

	fx.adminUC.EXPECT().CreateAd(mock.Anything, usecase.Fields{"id": float64(4), "title": "Autumn"}).
		Return(&entity.AdSlide{ID: 4, Title: "Autumn"}, nil).Once()

	c, rec := newJSONContext(http.MethodPost, "/api/admin/ads", `{"id":4,"title":"Autumn"}`)
	require.NoError(t, h.CreateAd(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"id":4,"title":"Autumn","subtitle":"","image":""}`, rec.Body.String())
}

func TestAdminHandler_DeleteAd(t *testing.T) {
	t.Run("non-integer id", func(t *testing.T) {
		h, _ := createTestAdminHandler(t)

		c, _ := newJSONContext(http.MethodDelete, "/api/admin/ads/abc", "")
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := h.DeleteAd(c)

		require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		assert.Equal(t, "id must be an integer", err.Error())
	})

	t.Run("deleted", func(t *testing.T) {
		h, fx := createTestAdminHandler(t)

		fx.adminUC.EXPECT().DeleteAd(mock.Anything, int64(2)).Return(nil).Once()

		c, rec := newJSONContext(http.MethodDelete, "/api/admin/ads/2", "")
		c.SetParamNames("id")
		c.SetParamValues("2")

		require.NoError(t, h.DeleteAd(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestAdminHandler_UpdateProduct_PassesPresentFieldsOnly(t *testing.T) {
	h, fx := createTestAdminHandler(t)

	fx.adminUC.EXPECT().UpdateProduct(mock.Anything, "p-1001", usecase.Fields{"price": "12.5", "originalPrice": nil}).
		Return(&entity.Product{ID: "p-1001", Price: 12.5, Images: []string{}}, nil).Once()

	c, rec := newJSONContext(http.MethodPut, "/api/admin/products/p-1001", `{"price":"12.5","originalPrice":null}`)
	c.SetParamNames("id")
	c.SetParamValues("p-1001")

	require.NoError(t, h.UpdateProduct(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_ExportProducts(t *testing.T) {
	h, fx := createTestAdminHandler(t)

	fx.adminUC.EXPECT().ExportProducts(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, w io.Writer) (string, string, error) {
			_, err := w.Write([]byte("xlsx-bytes"))

			return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", "products.xlsx", err
		}).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/admin/products/export", "")
	require.NoError(t, h.ExportProducts(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="products.xlsx"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "xlsx-bytes", rec.Body.String())
}

func TestAdminHandler_ReplaceHome(t *testing.T) {
	h, fx := createTestAdminHandler(t)

	expected := &entity.HomeSection{
		RecommendedProductIDs: []string{"p-1", "2"},
		MostVisitedProductIDs: []string{},
		TrendingProductIDs:    []string{},
	}
	fx.adminUC.EXPECT().ReplaceHomeSection(mock.Anything, expected).Return(expected, nil).Once()

	c, rec := newJSONContext(http.MethodPut, "/api/admin/home",
		`{"recommendedProductIds":["p-1","",2],"mostVisitedProductIds":"p-3"}`)
	require.NoError(t, h.ReplaceHome(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAdminHandler_ListUsers(t *testing.T) {
	h, fx := createTestAdminHandler(t)
	createdAt := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	user := &entity.User{ID: uuid.New(), Email: "a@example.com", Name: "A", Role: entity.RoleUser, CreatedAt: createdAt}

	fx.userUC.EXPECT().ListUsers(mock.Anything).Return([]*entity.User{user}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/api/admin/users", "")
	require.NoError(t, h.ListUsers(c))

	assert.JSONEq(t,
		`[{"id":"`+user.ID.String()+`","email":"a@example.com","name":"A","role":"user","createdAt":"2024-05-01T08:00:00Z"}]`,
		rec.Body.String())
}

func TestAdminHandler_UpdateUser(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name        string
		id          string
		body        string
		setupMocks  func(fx *adminHandlerFixtures)
		expectedErr error
		expectedMsg string
		expectedRes string
	}{
		{
			name:        "malformed id is not found",
			id:          "not-a-uuid",
			body:        `{"role":"admin"}`,
			expectedErr: domainerrors.ErrUserNotFound,
			expectedMsg: "User not found",
		},
		{
			name:        "unknown role",
			id:          userID.String(),
			body:        `{"role":"owner"}`,
			expectedErr: domainerrors.ErrValidationFailed,
			expectedMsg: "role must be user or admin",
		},
		{
			name:        "non-string role",
			id:          userID.String(),
			body:        `{"role":1}`,
			expectedErr: domainerrors.ErrValidationFailed,
			expectedMsg: "role must be user or admin",
		},
		{
			name: "empty patch is passed through",
			id:   userID.String(),
			body: `{}`,
			setupMocks: func(fx *adminHandlerFixtures) {
				fx.userUC.EXPECT().UpdateUser(mock.Anything, userID, usecase.UpdateUserInput{}).
					Return(nil, domainerrors.Validation("No valid fields to update")).Once()
			},
			expectedErr: domainerrors.ErrValidationFailed,
			expectedMsg: "No valid fields to update",
		},
		{
			name: "promoted",
			id:   userID.String(),
			body: `{"role":"admin"}`,
			setupMocks: func(fx *adminHandlerFixtures) {
				fx.userUC.EXPECT().UpdateUser(mock.Anything, userID, mock.MatchedBy(func(input usecase.UpdateUserInput) bool {
					return input.Role != nil && *input.Role == "admin"
				})).Return(&entity.User{ID: userID, Email: "a@example.com", Name: "A", Role: entity.RoleAdmin}, nil).Once()
			},
			expectedRes: `{"id":"` + userID.String() + `","email":"a@example.com","name":"A","role":"admin"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, fx := createTestAdminHandler(t)
			if tt.setupMocks != nil {
				tt.setupMocks(fx)
			}

			c, rec := newJSONContext(http.MethodPatch, "/api/admin/users/"+tt.id, tt.body)
			c.SetParamNames("id")
			c.SetParamValues(tt.id)

			err := h.UpdateUser(c)

			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				var appErr domainerrors.AppError
				require.ErrorAs(t, err, &appErr)
				assert.Equal(t, tt.expectedMsg, appErr.Message())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, tt.expectedRes, rec.Body.String())
		})
	}
}
