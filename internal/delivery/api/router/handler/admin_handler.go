package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/api/response"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	UserUC  usecase.UserUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the catalog and user management routes under /api/admin.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	userUC  usecase.UserUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler.
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		userUC:  params.UserUC,
		logger:  params.Logger,
	}
}

// UpdateUserRequest is the body of PATCH /api/admin/users/:id.
type UpdateUserRequest struct {
	Role *string `json:"role" validate:"omitempty,oneof=user admin"`
}

// --- Categories ---

func (h *AdminHandler) GetCategories(c echo.Context) error {
	tree, err := h.adminUC.GetCategoryTree(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, nonNil(tree))
}

// ReplaceCategories accepts either {"tree": [...]} or a bare array.
func (h *AdminHandler) ReplaceCategories(c echo.Context) error {
	var body any
	if err := bindBody(c, &body); err != nil {
		return err
	}

	raw, ok := body.([]any)
	if obj, isObj := body.(map[string]any); isObj {
		raw, ok = obj["tree"].([]any)
	}
	if !ok {
		return domainerrors.Validation("tree must be an array")
	}

	tree, err := h.adminUC.ReplaceCategoryTree(c.Request().Context(), categoryNodes(raw))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, nonNil(tree))
}

// categoryNodes converts decoded JSON nodes, coercing ids and labels to strings.
func categoryNodes(raw []any) []entity.CategoryNode {
	nodes := make([]entity.CategoryNode, 0, len(raw))
	for _, item := range raw {
		obj, _ := item.(map[string]any)
		children, _ := obj["children"].([]any)
		nodes = append(nodes, entity.CategoryNode{
			ID:       util.ToStringOrEmpty(obj["id"]),
			Label:    util.ToStringOrEmpty(obj["label"]),
			Children: categoryNodes(children),
		})
	}

	return nodes
}

// --- Ads ---

func (h *AdminHandler) ListAds(c echo.Context) error {
	ads, err := h.adminUC.ListAds(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, nonNil(ads))
}

func (h *AdminHandler) CreateAd(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	ad, err := h.adminUC.CreateAd(c.Request().Context(), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, ad)
}

func (h *AdminHandler) UpdateAd(c echo.Context) error {
	id, err := integerParam(c, "id")
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	ad, err := h.adminUC.UpdateAd(c.Request().Context(), id, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, ad)
}

func (h *AdminHandler) DeleteAd(c echo.Context) error {
	id, err := integerParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminUC.DeleteAd(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// --- Products ---

func (h *AdminHandler) ListProducts(c echo.Context) error {
	products, err := h.adminUC.ListProducts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, nonNil(products))
}

func (h *AdminHandler) CreateProduct(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	product, err := h.adminUC.CreateProduct(c.Request().Context(), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, product)
}

// UpdateProduct applies only the fields present in the body.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	product, err := h.adminUC.UpdateProduct(c.Request().Context(), c.Param("id"), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, product)
}

func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	if err := h.adminUC.DeleteProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// ExportProducts downloads the catalog as a spreadsheet.
func (h *AdminHandler) ExportProducts(c echo.Context) error {
	var buf bytes.Buffer
	contentType, fileName, err := h.adminUC.ExportProducts(c.Request().Context(), &buf)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, "attachment; filename="+strconv.Quote(fileName))

	return c.Blob(http.StatusOK, contentType, buf.Bytes())
}

// --- Notices ---

func (h *AdminHandler) ListNotices(c echo.Context) error {
	notices, err := h.adminUC.ListNotices(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, nonNil(notices))
}

func (h *AdminHandler) CreateNotice(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	notice, err := h.adminUC.CreateNotice(c.Request().Context(), fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, notice)
}

func (h *AdminHandler) UpdateNotice(c echo.Context) error {
	id, err := integerParam(c, "id")
	if err != nil {
		return err
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	notice, err := h.adminUC.UpdateNotice(c.Request().Context(), id, fields)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, notice)
}

func (h *AdminHandler) DeleteNotice(c echo.Context) error {
	id, err := integerParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.adminUC.DeleteNotice(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// --- Home section ---

func (h *AdminHandler) GetHome(c echo.Context) error {
	section, err := h.adminUC.GetHomeSection(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, section)
}

// ReplaceHome overwrites the three curated lists; a missing list is stored empty.
func (h *AdminHandler) ReplaceHome(c echo.Context) error {
	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	section, err := h.adminUC.ReplaceHomeSection(c.Request().Context(), &entity.HomeSection{
		RecommendedProductIDs: stringList(fields["recommendedProductIds"]),
		MostVisitedProductIDs: stringList(fields["mostVisitedProductIds"]),
		TrendingProductIDs:    stringList(fields["trendingProductIds"]),
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, section)
}

// --- Users ---

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.userUC.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toAdminUserResponses(users))
}

// UpdateUser patches a user's role. Unknown or malformed ids are reported as not found.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrUserNotFound
	}

	fields, err := bindFields(c)
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if fields.Has("role") {
		// Non-string roles become "" and fail the role check.
		role, _ := fields["role"].(string)
		req.Role = &role
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateUser(c.Request().Context(), userID, usecase.UpdateUserInput{Role: req.Role})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.JSON(c, http.StatusOK, toUserResponse(user))
}
