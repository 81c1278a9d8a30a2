package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/fx"
)

const (
	defaultUploadMaxBytes = 5 << 20
	defaultUploadBaseName = "image"
)

// allowedImageTypes maps accepted MIME types to the extension used for the stored object.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

type mediaService struct {
	storage  service.ImageStorage
	maxBytes int64
	now      func() time.Time
	logger   *slog.Logger
}

// MediaServiceParams holds dependencies for MediaService, injected by Fx.
type MediaServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Config  *config.Config
	Logger  *slog.Logger
}

// NewMediaService creates the upload service.
func NewMediaService(params MediaServiceParams) usecase.MediaUsecase {
	maxBytes := int64(defaultUploadMaxBytes)
	if params.Config != nil && params.Config.Upload != nil && params.Config.Upload.MaxBytes > 0 {
		maxBytes = params.Config.Upload.MaxBytes
	}

	return &mediaService{
		storage:  params.Storage,
		maxBytes: maxBytes,
		now:      time.Now,
		logger:   params.Logger,
	}
}

func (srv *mediaService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UploadImage sniffs the content rather than trusting the client's declared type.
func (srv *mediaService) UploadImage(ctx context.Context, input usecase.UploadImageInput) (string, error) {
	if input.Content == nil {
		return "", domainerrors.ErrUploadRejected.WithMessage("No file uploaded")
	}

	tooLarge := domainerrors.ErrUploadRejected.WithMessage(fmt.Sprintf("File too large (max %s)", util.FormatBytes(srv.maxBytes)))
	if input.Size > srv.maxBytes {
		return "", tooLarge
	}

	data, err := io.ReadAll(io.LimitReader(input.Content, srv.maxBytes+1))
	if err != nil {
		return "", errors.Wrap(err, "failed to read upload")
	}
	if int64(len(data)) > srv.maxBytes {
		return "", tooLarge
	}

	contentType := mimetype.Detect(data).String()
	if i := strings.IndexByte(contentType, ';'); i >= 0 {
		contentType = contentType[:i]
	}
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		srv.log(ctx).Warn("Upload rejected", slog.String("fileName", input.FileName), slog.String("detectedType", contentType))

		return "", domainerrors.ErrUploadRejected.WithMessage("Only images (jpeg, png, gif, webp) are allowed")
	}

	key := objectKey(srv.now(), input.FileName, ext)
	url, err := srv.storage.Save(ctx, key, data, contentType)
	if err != nil {
		return "", errors.Wrap(err, "failed to store upload")
	}

	srv.log(ctx).Info("Image uploaded",
		slog.String("key", key),
		slog.String("contentType", contentType),
		slog.String("size", util.FormatBytes(int64(len(data)))),
	)

	return url, nil
}

func (srv *mediaService) OpenImage(ctx context.Context, key string) (*service.StoredObject, error) {
	obj, err := srv.storage.Open(ctx, key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open image")
	}

	return obj, nil
}

// objectKey builds "<unix millis>-<sanitized base name><ext>".
func objectKey(now time.Time, fileName, ext string) string {
	base := filepath.Base(strings.ReplaceAll(fileName, `\`, "/"))
	if base == "." || base == "/" || base == "" {
		base = defaultUploadBaseName
	}
	base = unsafeNameChars.ReplaceAllString(base, "_")
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" {
		base = defaultUploadBaseName
	}

	return fmt.Sprintf("%d-%s%s", now.UnixMilli(), base, ext)
}
