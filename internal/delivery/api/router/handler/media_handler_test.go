package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	mockUsecase "storefront/internal/mocks/usecase"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestMediaHandler(t *testing.T) (*MediaHandler, *mockUsecase.MockMediaUsecase) {
	mediaUC := mockUsecase.NewMockMediaUsecase(t)

	return NewMediaHandler(MediaHandlerParams{MediaUC: mediaUC, Logger: newDiscardLogger()}), mediaUC
}

func newMultipartContext(t *testing.T, field, fileName string, content []byte) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile(field, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/admin/upload", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestMediaHandler_Upload(t *testing.T) {
	h, mediaUC := createTestMediaHandler(t)
	content := []byte("fake image bytes")

	mediaUC.EXPECT().UploadImage(mock.Anything, mock.MatchedBy(func(input usecase.UploadImageInput) bool {
		if input.FileName != "banner.png" || input.Size != int64(len(content)) || input.Content == nil {
			return false
		}
		data, err := io.ReadAll(input.Content)

		return err == nil && bytes.Equal(data, content)
	})).Return("/uploads/1700000000000-banner.png", nil).Once()

	c, rec := newMultipartContext(t, "file", "banner.png", content)
	require.NoError(t, h.Upload(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"url":"/uploads/1700000000000-banner.png"}`, rec.Body.String())
}

func TestMediaHandler_Upload_MissingFile(t *testing.T) {
	tests := []struct {
		name   string
		newCtx func(t *testing.T) echo.Context
	}{
		{
			name: "multipart without the file field",
			newCtx: func(t *testing.T) echo.Context {
				c, _ := newMultipartContext(t, "image", "banner.png", []byte("x"))

				return c
			},
		},
		{
			name: "not a multipart request",
			newCtx: func(_ *testing.T) echo.Context {
				c, _ := newJSONContext(http.MethodPost, "/api/admin/upload", `{}`)

				return c
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mediaUC := createTestMediaHandler(t)
			rejected := domainerrors.ErrUploadRejected.WithMessage("No file uploaded")

			mediaUC.EXPECT().UploadImage(mock.Anything, usecase.UploadImageInput{}).Return("", rejected).Once()

			err := h.Upload(tt.newCtx(t))

			assert.ErrorIs(t, err, domainerrors.ErrUploadRejected)
		})
	}
}

func TestMediaHandler_Serve(t *testing.T) {
	h, mediaUC := createTestMediaHandler(t)

	mediaUC.EXPECT().OpenImage(mock.Anything, "42-banner.png").Return(&service.StoredObject{
		Body:        io.NopCloser(bytes.NewReader([]byte("png-bytes"))),
		ContentType: "image/png",
		Size:        9,
	}, nil).Once()

	c, rec := newJSONContext(http.MethodGet, "/uploads/42-banner.png", "")
	c.SetParamNames("key")
	c.SetParamValues("42-banner.png")

	require.NoError(t, h.Serve(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "public, max-age=31536000, immutable", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "png-bytes", rec.Body.String())
}
