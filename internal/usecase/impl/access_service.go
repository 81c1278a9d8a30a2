package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const bearerPrefix = "Bearer "

// Rejection reasons logged by the access guard.
const (
	reasonMissingToken = "missing_token"
	reasonInvalidToken = "invalid_token"
	reasonNotAdmin     = "not_admin"
)

type accessService struct {
	userRepo     repository.UserRepository
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccessServiceParams holds dependencies for AccessService, injected by Fx.
type AccessServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccessService creates the access guard.
func NewAccessService(params AccessServiceParams) usecase.AccessUsecase {
	return &accessService{
		userRepo:     params.UserRepo,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *accessService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *accessService) reject(ctx context.Context, reason string, err domainerrors.AppError, attrs ...slog.Attr) error {
	attrs = append(attrs,
		slog.String("reason", reason),
		slog.String("code", err.ErrorCode()),
	)
	srv.log(ctx).LogAttrs(ctx, slog.LevelWarn, "Access rejected", attrs...)

	return err
}

func (srv *accessService) Authenticate(ctx context.Context, authorizationHeader string) (*usecase.Identity, error) {
	if !strings.HasPrefix(authorizationHeader, bearerPrefix) {
		return nil, srv.reject(ctx, reasonMissingToken, domainerrors.ErrUnauthenticated)
	}

	token := strings.TrimPrefix(authorizationHeader, bearerPrefix)
	if token == "" {
		return nil, srv.reject(ctx, reasonMissingToken, domainerrors.ErrUnauthenticated)
	}

	result := srv.tokenService.Verify(token)
	if !result.Valid || result.Claims == nil || result.Claims.UserID == uuid.Nil {
		return nil, srv.reject(ctx, reasonInvalidToken, domainerrors.ErrInvalidToken,
			slog.String("tokenReason", result.Reason),
		)
	}

	return &usecase.Identity{UserID: result.Claims.UserID}, nil
}

func (srv *accessService) AuthorizeAdmin(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return nil, srv.reject(ctx, reasonNotAdmin, domainerrors.ErrAdminRequired, slog.Any("userID", userID))
		}

		return nil, errors.Wrap(err, "failed to load user for admin check")
	}

	if !user.IsAdmin() {
		return nil, srv.reject(ctx, reasonNotAdmin, domainerrors.ErrAdminRequired, slog.Any("userID", userID))
	}

	return user, nil
}
