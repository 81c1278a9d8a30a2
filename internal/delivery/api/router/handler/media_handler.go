package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/api/response"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	uploadFormField    = "file"
	uploadCacheControl = "public, max-age=31536000, immutable"
)

// MediaHandlerParams holds dependencies for MediaHandler, injected by Fx.
type MediaHandlerParams struct {
	fx.In

	MediaUC usecase.MediaUsecase
	Logger  *slog.Logger
}

// MediaHandler accepts admin image uploads and serves them back.
type MediaHandler struct {
	mediaUC usecase.MediaUsecase
	logger  *slog.Logger
}

// NewMediaHandler is the constructor for MediaHandler.
func NewMediaHandler(params MediaHandlerParams) *MediaHandler {
	return &MediaHandler{
		mediaUC: params.MediaUC,
		logger:  params.Logger,
	}
}

// Upload stores the multipart field "file" and returns 201 {url}.
func (h *MediaHandler) Upload(c echo.Context) error {
	input := usecase.UploadImageInput{}

	fileHeader, err := c.FormFile(uploadFormField)
	switch {
	case err == nil:
		file, openErr := fileHeader.Open()
		if openErr != nil {
			return errors.Wrap(openErr, "failed to open uploaded file")
		}
		defer file.Close()

		input.FileName = fileHeader.Filename
		input.Size = fileHeader.Size
		input.Content = file
	case !errors.IsAny(err, http.ErrMissingFile, http.ErrNotMultipart):
		return errors.Wrap(err, "failed to read multipart form")
	}

	url, err := h.mediaUC.UploadImage(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Created(c, UploadResponse{URL: url})
}

// Serve streams a stored upload: GET /uploads/:key
func (h *MediaHandler) Serve(c echo.Context) error {
	obj, err := h.mediaUC.OpenImage(c.Request().Context(), c.Param("key"))
	if err != nil {
		return errors.WithStack(err)
	}
	defer obj.Body.Close()

	c.Response().Header().Set(echo.HeaderCacheControl, uploadCacheControl)

	return c.Stream(http.StatusOK, obj.ContentType, obj.Body)
}
